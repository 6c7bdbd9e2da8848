// core/msafasta/msafasta.go

// Package msafasta reads and writes gapped aligned-FASTA: one record per
// alignment row, all sequence lines of a record concatenated, every row the
// same width.
package msafasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"repaln-core/alignment"
	"repaln-core/stockholm"
)

// Read parses aligned FASTA into the alignment model. Identifier handling
// and leading/trailing padding folding match the Stockholm reader.
func Read(r io.Reader) (*alignment.Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var names []string
	var seqs [][]byte
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, errors.New("FASTA header with no identifier")
			}
			names = append(names, fields[0])
			seqs = append(seqs, nil)
			continue
		}
		if len(seqs) == 0 {
			return nil, errors.Errorf("sequence data %q before any FASTA header", line)
		}
		seqs[len(seqs)-1] = append(seqs[len(seqs)-1], line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.New("no FASTA records in input")
	}

	aln := &alignment.Alignment{}
	width := len(seqs[0])
	for i, name := range names {
		if len(seqs[i]) != width {
			return nil, errors.Errorf(
				"record %q has width %d, other rows have %d", name, len(seqs[i]), width)
		}
		aln.Rows = append(aln.Rows, stockholm.NewRow(name, seqs[i]))
	}
	return aln, nil
}

// Write emits the alignment as gapped FASTA, one record per row, padded to
// uniform width.
func Write(w io.Writer, aln *alignment.Alignment) error {
	width := aln.MaxCoreLen()
	for i := range aln.Rows {
		r := &aln.Rows[i]
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.RawID, stockholm.PaddedSeq(r, width)); err != nil {
			return err
		}
	}
	return nil
}
