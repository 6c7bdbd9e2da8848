// core/stockholm/stockholm.go

// Package stockholm reads and writes the Stockholm alignment format.
// Markup (#=GF/#=GC/#=GS/#=GR) is ignored on read and not produced on
// write; only the minimal header, sequence lines and terminator are used.
package stockholm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"repaln-core/alignment"
)

// Read parses a Stockholm file into the alignment model. Interleaved
// blocks are concatenated per identifier. Leading and trailing gap runs
// become the row's column offset and export-time padding; identifiers
// embedding genomic coordinates are resolved opportunistically (rows
// without them are fine for plain format conversion).
func Read(r io.Reader) (*alignment.Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		return nil, errors.New("empty input")
	}
	first := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(first, "# STOCKHOLM") {
		return nil, errors.Errorf("first line %q is not a Stockholm header", first)
	}

	var order []string
	seqs := map[string][]byte{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "//" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("malformed sequence line %q", line)
		}
		name := fields[0]
		if _, seen := seqs[name]; !seen {
			order = append(order, name)
		}
		seqs[name] = append(seqs[name], fields[1]...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, errors.New("no sequences in Stockholm input")
	}

	aln := &alignment.Alignment{}
	width := -1
	for _, name := range order {
		seq := seqs[name]
		if width == -1 {
			width = len(seq)
		} else if len(seq) != width {
			return nil, errors.Errorf(
				"sequence %q has length %d, other rows have %d", name, len(seq), width)
		}
		aln.Rows = append(aln.Rows, NewRow(name, seq))
	}
	return aln, nil
}

// NewRow builds a model row from a full-width aligned string: leading and
// trailing gap/spacer runs are folded into the column offset and implicit
// padding, local coordinates count the residues that remain.
func NewRow(name string, full []byte) alignment.Row {
	lead := 0
	for lead < len(full) && isPad(full[lead]) {
		lead++
	}
	trail := len(full)
	for trail > lead && isPad(full[trail-1]) {
		trail--
	}
	seq := append([]byte(nil), full[lead:trail]...)

	residues := 0
	for _, b := range seq {
		if !isPad(b) {
			residues++
		}
	}

	row := alignment.Row{
		RawID:        name,
		AlignedSeq:   seq,
		ColumnOffset: lead,
		LocalStart:   1,
		LocalEnd:     residues,
	}
	// Coordinates are optional outside the flanking path.
	_ = row.Resolve()
	return row
}

func isPad(b byte) bool { return b == '-' || b == '.' || b == ' ' }

// Write emits a minimal valid Stockholm file: header, one padded line per
// row, terminator.
func Write(w io.Writer, aln *alignment.Alignment) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	nameWidth := 0
	for i := range aln.Rows {
		if l := len(aln.Rows[i].RawID); l > nameWidth {
			nameWidth = l
		}
	}
	width := aln.MaxCoreLen()
	pf("# STOCKHOLM 1.0\n")
	for i := range aln.Rows {
		pf("%-*s %s\n", nameWidth, aln.Rows[i].RawID, PaddedSeq(&aln.Rows[i], width))
	}
	pf("//\n")
	return err
}

// PaddedSeq renders a row at full alignment width: offset gaps, residues,
// trailing gaps.
func PaddedSeq(r *alignment.Row, width int) []byte {
	out := make([]byte, 0, width)
	out = append(out, bytes.Repeat([]byte{'-'}, r.ColumnOffset)...)
	out = append(out, r.AlignedSeq...)
	out = append(out, bytes.Repeat([]byte{'-'}, width-len(out))...)
	return out
}
