// core/alignment/coord.go
package alignment

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Coord is a genomic location parsed out of a row identifier: 1-based,
// fully closed, both endpoints included.
type Coord struct {
	Name  string
	Start int
	End   int
}

// Identifiers embed coordinates in one of two recognized layouts, with an
// optional reverse-orientation suffix:
//
//	chr1:100-200      chr1:100-200_R
//	chr1_100_200      chr1_100_200_R
var (
	colonCoordRe = regexp.MustCompile(`^(\S+):(\d+)-(\d+)(_R)?$`)
	underCoordRe = regexp.MustCompile(`^(\S+?)_(\d+)_(\d+)(_R)?$`)
)

// ParseRawID extracts the embedded genomic coordinate and suffix-encoded
// orientation from a raw row identifier. The returned bool reports whether
// the suffix marks the reverse orientation. An identifier matching neither
// pattern is an error: coordinates cannot be recovered from it.
func ParseRawID(rawID string) (Coord, bool, error) {
	m := colonCoordRe.FindStringSubmatch(rawID)
	if m == nil {
		m = underCoordRe.FindStringSubmatch(rawID)
	}
	if m == nil {
		return Coord{}, false, errors.Errorf(
			"identifier %q does not embed genomic coordinates", rawID)
	}
	start, err := strconv.Atoi(m[2])
	if err != nil {
		return Coord{}, false, errors.Wrapf(err, "identifier %q", rawID)
	}
	end, err := strconv.Atoi(m[3])
	if err != nil {
		return Coord{}, false, errors.Wrapf(err, "identifier %q", rawID)
	}
	return Coord{Name: m[1], Start: start, End: end}, m[4] == "_R", nil
}

// Resolve parses the row's RawID into Coord and folds the suffix into the
// authoritative Reverse flag. Call once at load time.
func (r *Row) Resolve() error {
	c, revSuffix, err := ParseRawID(r.RawID)
	if err != nil {
		return err
	}
	r.Coord = &c
	r.Reverse = r.Reverse || revSuffix
	return nil
}
