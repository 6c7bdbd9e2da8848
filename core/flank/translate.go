// core/flank/translate.go
package flank

import (
	"fmt"

	"repaln-core/alignment"
)

// Side says which edge of the aligned core a window extends.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Window is one genomic flank region for one row: 1-based, fully closed,
// with End > Start guaranteed by construction. Windows that would violate
// that after clamping are omitted rather than emitted zero-length.
type Window struct {
	RowIndex int
	Side     Side
	Name     string
	Start    int
	End      int
}

// Tag is the opaque identifier correlating this window with its fetched
// sequence across the external store call.
func (w Window) Tag() string {
	return fmt.Sprintf("r%d/%s/%s:%d-%d", w.RowIndex, w.Side, w.Name, w.Start, w.End)
}

// Translate computes the 0–2 genomic flank windows of a single row. The
// row must have a resolved Coord; slen is the total length of the genome
// sequence the row lies on. Windows come back left first, then right.
//
// For reverse-oriented rows the genome-left window sits past the row's end
// coordinate and vice versa, because alignment-left is genome-right on the
// other strand. Note the reverse right-flank arithmetic runs off LocalEnd
// where the forward case uses LocalStart; that asymmetry follows from how
// local positions are assigned on reverse-oriented rows and is kept as is.
func Translate(rowIndex int, row *alignment.Row, slen, flankLeft, flankRight int) []Window {
	c := row.Coord
	var out []Window

	if !row.Reverse {
		leftEnd := c.Start + row.LocalStart - 2
		leftStart := leftEnd + 1 - flankLeft
		if leftStart < 1 {
			leftStart = 1
		}
		if leftEnd-leftStart > 0 {
			out = append(out, Window{rowIndex, Left, c.Name, leftStart, leftEnd})
		}

		rightStart := c.End + row.LocalStart
		rightEnd := rightStart - 1 + flankRight
		if rightEnd > slen {
			rightEnd = slen
		}
		if rightEnd-rightStart > 0 {
			out = append(out, Window{rowIndex, Right, c.Name, rightStart, rightEnd})
		}
		return out
	}

	leftStart := c.End - row.LocalStart
	leftEnd := leftStart - 1 + flankLeft
	if leftEnd > slen {
		leftEnd = slen
	}
	if leftEnd-leftStart > 0 {
		out = append(out, Window{rowIndex, Left, c.Name, leftStart, leftEnd})
	}

	rightEnd := c.End - row.LocalEnd + 2
	rightStart := rightEnd + 1 - flankRight
	if rightStart < 1 {
		rightStart = 1
	}
	if rightEnd-rightStart > 0 {
		out = append(out, Window{rowIndex, Right, c.Name, rightStart, rightEnd})
	}
	return out
}
