// core/alignment/transform.go
package alignment

import (
	"fmt"

	"repaln-core/dna"
)

// ReverseComplement flips the whole alignment onto the opposite strand:
// every row's residues are reverse-complemented, column offsets are
// mirrored against the shared column space, and each row's orientation and
// local coordinates are inverted. Must run before any flank computation.
func (a *Alignment) ReverseComplement() {
	width := a.MaxCoreLen()
	for i := range a.Rows {
		r := &a.Rows[i]
		r.AlignedSeq = dna.RevComp(r.AlignedSeq)
		r.ColumnOffset = width - r.ColumnOffset - len(r.AlignedSeq)
		r.Reverse = !r.Reverse
		r.LocalStart, r.LocalEnd = r.LocalEnd, r.LocalStart
	}
}

// Trim removes left alignment columns from the start and right columns from
// the end of the shared column space. Residues falling inside a trimmed
// region are dropped and the row's local coordinates advance past them;
// gaps dropped this way do not move local coordinates.
func (a *Alignment) Trim(left, right int) error {
	width := a.MaxCoreLen()
	if left < 0 || right < 0 || left+right >= width {
		return fmt.Errorf("cannot trim %d+%d columns from a %d-column alignment",
			left, right, width)
	}
	hi := width - right
	for i := range a.Rows {
		r := &a.Rows[i]
		start, end := r.ColumnOffset, r.ColumnOffset+len(r.AlignedSeq)

		cutL, cutR := 0, 0
		if start < left {
			cutL = left - start
			if cutL > len(r.AlignedSeq) {
				cutL = len(r.AlignedSeq)
			}
		}
		if end > hi {
			cutR = end - hi
			if cutR > len(r.AlignedSeq)-cutL {
				cutR = len(r.AlignedSeq) - cutL
			}
		}

		for _, b := range r.AlignedSeq[:cutL] {
			if b != '-' && b != '.' {
				r.LocalStart++
			}
		}
		for _, b := range r.AlignedSeq[len(r.AlignedSeq)-cutR:] {
			if b != '-' && b != '.' {
				r.LocalEnd--
			}
		}

		r.AlignedSeq = r.AlignedSeq[cutL : len(r.AlignedSeq)-cutR]
		r.ColumnOffset = start + cutL - left
		if r.ColumnOffset < 0 {
			r.ColumnOffset = 0
		}
	}
	return nil
}
