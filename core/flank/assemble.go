// core/flank/assemble.go
package flank

import (
	"bytes"

	"repaln-core/alignment"
	"repaln-core/dna"
	"repaln-core/genome"
)

// Pad is the filler written where no genome sequence exists: boundary
// truncation and skipped windows produce gap characters, never errors.
const Pad = '-'

// FlankedRow is one fully assembled output row. Left is exactly flankLeft
// characters, Core exactly maxCoreLen, Right exactly flankRight, so that
// every concatenated row of a run has identical total length.
type FlankedRow struct {
	ID    string
	Left  []byte
	Core  []byte
	Right []byte
}

// Seq returns the complete output line, left ++ core ++ right.
func (f FlankedRow) Seq() []byte {
	out := make([]byte, 0, len(f.Left)+len(f.Core)+len(f.Right))
	out = append(out, f.Left...)
	out = append(out, f.Core...)
	out = append(out, f.Right...)
	return out
}

// assemble pairs fetched sequences with their originating windows and
// builds the uniform-width output rows.
func assemble(aln *alignment.Alignment, windows []Window, results []genome.Result,
	flankLeft, flankRight int) []FlankedRow {

	lefts := make([][]byte, len(aln.Rows))
	rights := make([][]byte, len(aln.Rows))
	for i, w := range windows {
		seq := dna.Upper(results[i].Seq)
		if aln.Rows[w.RowIndex].Reverse {
			seq = dna.RevComp(seq)
		}
		if w.Side == Left {
			lefts[w.RowIndex] = seq
		} else {
			rights[w.RowIndex] = seq
		}
	}

	maxCore := aln.MaxCoreLen()
	out := make([]FlankedRow, len(aln.Rows))
	for i := range aln.Rows {
		row := &aln.Rows[i]
		core := make([]byte, 0, maxCore)
		core = append(core, bytes.Repeat([]byte{Pad}, row.ColumnOffset)...)
		core = append(core, row.AlignedSeq...)
		core = append(core, bytes.Repeat([]byte{Pad}, maxCore-len(core))...)

		out[i] = FlankedRow{
			ID:    row.RawID,
			Left:  padLeft(lefts[i], flankLeft),
			Core:  core,
			Right: padRight(rights[i], flankRight),
		}
	}
	return out
}

// padLeft left-pads seq with gap filler to exactly width characters.
func padLeft(seq []byte, width int) []byte {
	if len(seq) >= width {
		return seq[len(seq)-width:]
	}
	out := bytes.Repeat([]byte{Pad}, width-len(seq))
	return append(out, seq...)
}

// padRight right-pads seq with gap filler to exactly width characters.
func padRight(seq []byte, width int) []byte {
	if len(seq) >= width {
		return seq[:width]
	}
	return append(seq[:len(seq):len(seq)], bytes.Repeat([]byte{Pad}, width-len(seq))...)
}
