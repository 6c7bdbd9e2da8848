// core/genome/store.go
package genome

import (
	"context"
	"fmt"
)

// Region addresses a genome subsequence in the store's native 0-based
// half-open coordinates. Tag is an opaque correlation identifier carried
// through the store call; implementations must echo it back unchanged so
// callers can verify that responses line up with requests.
type Region struct {
	Name  string
	Start int
	End   int
	Tag   string
}

// Spec renders the region in the conventional name:start-end form.
func (r Region) Spec() string {
	return fmt.Sprintf("%s:%d-%d", r.Name, r.Start, r.End)
}

// Result is one fetched subsequence, tagged with the Region.Tag it answers.
type Result struct {
	Tag string
	Seq []byte
}

// Store is an indexed random-access genome sequence store. Both operations
// block; Fetch must return exactly one Result per Region, in request order,
// with no reordering and no deduplication.
type Store interface {
	// Lengths returns the total length of every sequence in the store.
	Lengths(ctx context.Context) (map[string]int, error)

	// Fetch retrieves all regions in one batch.
	Fetch(ctx context.Context, regions []Region) ([]Result, error)
}
