// core/alignment/alignment.go
package alignment

// Row is one aligned sequence of an MSA. AlignedSeq holds gapped residues;
// leading/trailing spacer is represented by the surrounding ColumnOffset and
// padding applied at export time, never stored in AlignedSeq itself.
//
// LocalStart/LocalEnd give the position of the aligned subsequence within
// the row's own residue numbering (1-based, fully closed). They are not
// genome coordinates; the genomic location lives in Coord.
type Row struct {
	RawID      string
	AlignedSeq []byte
	// ColumnOffset is the first alignment column this row occupies.
	ColumnOffset int
	LocalStart   int
	LocalEnd     int
	// Reverse is the authoritative orientation, resolved once at load time:
	// true iff the RawID suffix marks reverse OR the parser's orientation
	// flag was reverse. Never re-derived from RawID downstream.
	Reverse bool
	// Coord is parsed once from RawID. Nil when RawID carries no
	// recognizable embedded coordinates.
	Coord *Coord
}

// Alignment is the canonical in-memory MSA: ordered rows over a shared
// column space. It is mutated only by whole-alignment transforms applied
// before flank computation; after that it is read-only.
type Alignment struct {
	Rows []Row
}

// MaxCoreLen returns the greatest ColumnOffset + len(AlignedSeq) over all
// rows, i.e. the padded core width every exported row must have.
func (a *Alignment) MaxCoreLen() int {
	max := 0
	for i := range a.Rows {
		if l := a.Rows[i].ColumnOffset + len(a.Rows[i].AlignedSeq); l > max {
			max = l
		}
	}
	return max
}
