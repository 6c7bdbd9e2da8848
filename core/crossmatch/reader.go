// core/crossmatch/reader.go

// Package crossmatch loads cross_match alignment output into the alignment
// model. Each hit of the repeat family search contributes one row: the
// query is a genomic copy whose identifier embeds its location, the subject
// is the family consensus whose positions define the shared column space.
package crossmatch

import (
	"bufio"
	"io"
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"repaln-core/alignment"
)

// Score record, e.g.
//
//	239 29.42 1.92 0.97 chr1:100-200 1 98 (3) rep#LINE 1 99 (401)
//	239 29.42 1.92 0.97 chr1:100-200 1 98 (3) C rep#LINE (401) 99 1
//
// The C flag marks a reverse-orientation hit; the subject coordinate trio
// is then listed remainder-first.
var scoreRe = regexp.MustCompile(`^\s*(\d+)\s+(\d+\.\d+)\s+(\d+\.\d+)\s+(\d+\.\d+)\s+` +
	`(\S+)\s+(\d+)\s+(\d+)\s+\((\d+)\)\s+(C\s+)?(\S+)\s+(\(?\d+\)?)\s+(\(?\d+\)?)\s+(\(?\d+\)?)`)

// Aligned block line: optional complement flag, name, start, residues, end.
var blockRe = regexp.MustCompile(`^(?:C\s+)?(\S+)\s+(\d+)\s+([A-Za-z.\-]+)\s+(\d+)\s*$`)

type hit struct {
	rawID      string
	localStart int
	localEnd   int
	reverse    bool
	subjStart  int
	querySegs  [][]byte
	subjSegs   [][]byte
	queryName  string
	subjName   string
}

// Read parses cross_match output (with alignments) into an Alignment. Every
// row identifier must embed genomic coordinates; an identifier matching
// neither recognized pattern aborts the load, since the coordinates cannot
// be recovered later.
func Read(r io.Reader) (*alignment.Alignment, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	aln := &alignment.Alignment{}
	var cur *hit

	flush := func() error {
		if cur == nil {
			return nil
		}
		row, err := cur.toRow()
		if err != nil {
			return err
		}
		aln.Rows = append(aln.Rows, row)
		cur = nil
		return nil
	}

	for sc.Scan() {
		line := sc.Text()

		if m := scoreRe.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return nil, err
			}
			h, err := newHit(m)
			if err != nil {
				return nil, err
			}
			cur = h
			continue
		}
		if cur == nil {
			continue
		}
		if m := blockRe.FindStringSubmatch(line); m != nil {
			switch m[1] {
			case cur.queryName:
				cur.querySegs = append(cur.querySegs, []byte(m[3]))
			case cur.subjName:
				cur.subjSegs = append(cur.subjSegs, []byte(m[3]))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(aln.Rows) == 0 {
		return nil, errors.New("no crossmatch hits found")
	}
	return aln, nil
}

func newHit(m []string) (*hit, error) {
	qStart, _ := strconv.Atoi(m[6])
	qEnd, _ := strconv.Atoi(m[7])

	reverse := m[9] != ""
	sFields := []string{m[11], m[12], m[13]}
	sStart := 0
	for _, f := range sFields {
		if f[0] == '(' {
			continue // remainder field
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "subject position %q", f)
		}
		if sStart == 0 || n < sStart {
			sStart = n
		}
	}
	if sStart == 0 {
		return nil, errors.Errorf("no subject positions in score record for %q", m[5])
	}
	return &hit{
		rawID:      m[5],
		localStart: qStart,
		localEnd:   qEnd,
		reverse:    reverse,
		subjStart:  sStart,
		queryName:  m[5],
		subjName:   m[10],
	}, nil
}

// toRow projects the query's gapped residues onto the subject's column
// space: columns where the consensus has a gap are dropped, so that row
// placement needs only the subject start offset. Merging insertions across
// hits into new alignment columns is deliberately not done here.
func (h *hit) toRow() (alignment.Row, error) {
	var q, s []byte
	for _, seg := range h.querySegs {
		q = append(q, seg...)
	}
	for _, seg := range h.subjSegs {
		s = append(s, seg...)
	}
	if len(q) == 0 || len(q) != len(s) {
		return alignment.Row{}, errors.Errorf(
			"hit %s: query/subject alignment blocks disagree (%d vs %d residues)",
			h.rawID, len(q), len(s))
	}

	seq := make([]byte, 0, len(q))
	for i := range q {
		if s[i] == '-' {
			continue
		}
		seq = append(seq, q[i])
	}

	row := alignment.Row{
		RawID:        h.rawID,
		AlignedSeq:   seq,
		ColumnOffset: h.subjStart - 1,
		LocalStart:   h.localStart,
		LocalEnd:     h.localEnd,
		Reverse:      h.reverse,
	}
	if err := row.Resolve(); err != nil {
		return alignment.Row{}, err
	}
	return row, nil
}
