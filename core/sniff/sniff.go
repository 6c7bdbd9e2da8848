// core/sniff/sniff.go
package sniff

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Format is the classification of an alignment input file.
type Format int

const (
	Unknown Format = iota
	Crossmatch
	Stockholm
	MSAFasta
	Dump
)

func (f Format) String() string {
	switch f {
	case Crossmatch:
		return "crossmatch"
	case Stockholm:
		return "stockholm"
	case MSAFasta:
		return "msa-fasta"
	case Dump:
		return "dump"
	}
	return "unknown"
}

// maxLines bounds the scan: a file not classified within this many
// non-skipped lines is Unknown.
const maxLines = 10000

var (
	// Crossmatch hit record: score, three percentage fields, query name,
	// two positions and a parenthesized remainder. The tail (orientation
	// and subject fields) varies, so it is not pinned down here.
	crossmatchRe = regexp.MustCompile(
		`^\s*\d+\s+\d+\.\d+\s+\d+\.\d+\s+\d+\.\d+\s+\S+\s+\d+\s+\d+\s+\(\d+\)`)

	// Residue line following a FASTA header: nucleotides, ambiguity codes,
	// gaps and spacers only.
	residueRe = regexp.MustCompile(`^[ACGTURYSWKMBDHVNXacgturyswkmbdhvnx.\- ]+$`)

	// Marker of a serialized alignment dump, either the legacy
	// 'alignCol' => layout or this tool's own JSON field.
	dumpRe = regexp.MustCompile(`'alignCol'\s*=>|"alignCol"\s*:`)

	// Diagnostic summary lines crossmatch emits between hits; never
	// classifying on their own.
	scoreSummaryRe = regexp.MustCompile(
		`^(Maximal single base matches|Num\. pairs|Discrepancy summary|Transitions)`)
)

// Detect classifies r by scanning a bounded prefix of its lines against
// ordered pattern rules, first match wins. Blank and score-summary lines
// are skipped. Unknown is not an error here; callers decide how fatal an
// unclassifiable input is.
func Detect(r io.Reader) (Format, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	sawFastaHeader := false
	for n := 0; n < maxLines && sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || scoreSummaryRe.MatchString(line) {
			continue
		}

		switch {
		case strings.HasPrefix(line, "# STOCKHOLM"):
			return Stockholm, nil
		case crossmatchRe.MatchString(line):
			return Crossmatch, nil
		case dumpRe.MatchString(line):
			return Dump, nil
		case strings.HasPrefix(line, ">"):
			sawFastaHeader = true
		case sawFastaHeader && residueRe.MatchString(line):
			return MSAFasta, nil
		}
	}
	if err := sc.Err(); err != nil {
		return Unknown, err
	}
	return Unknown, nil
}
