// core/flank/flank.go

// Package flank extends the rows of a repeat alignment with genomic
// context. Per row it translates the embedded genomic coordinates into
// strand-corrected, boundary-clamped upstream/downstream windows, batches
// every window of the run into a single genome-store fetch, and reassembles
// uniform-width output rows from the response.
package flank

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/pkg/errors"

	"repaln-core/alignment"
	"repaln-core/genome"
)

// Flank runs the whole flanking pass over aln against store. Every row must
// already have a resolved Coord (alignment load guarantees this for the
// crossmatch path). Rows whose sequence is absent from the store's length
// index get no flank windows at all; that is a logged warning, not an
// error, and padding fills the missing context.
//
// The store is called exactly twice: once for the length index and once for
// the batched fetch. The response is correlated positionally and verified
// by tag; any count or tag mismatch is a fatal integrity error because
// nothing else ties a returned sequence to its row and side.
func Flank(ctx context.Context, aln *alignment.Alignment, store genome.Store,
	flankLeft, flankRight int) ([]FlankedRow, error) {

	lengths, err := store.Lengths(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "genome length index")
	}

	var windows []Window
	for i := range aln.Rows {
		row := &aln.Rows[i]
		if row.Coord == nil {
			return nil, errors.Errorf("row %d (%s) has no genomic coordinates",
				i, row.RawID)
		}
		slen, ok := lengths[row.Coord.Name]
		if !ok {
			log.Warnf("sequence %q not in genome length index; skipping flanks for row %d (%s)",
				row.Coord.Name, i, row.RawID)
			continue
		}
		windows = append(windows, Translate(i, row, slen, flankLeft, flankRight)...)
	}

	var results []genome.Result
	if len(windows) > 0 {
		regions := make([]genome.Region, len(windows))
		for i, w := range windows {
			// The store speaks 0-based half-open coordinates.
			regions[i] = genome.Region{
				Name:  w.Name,
				Start: w.Start - 1,
				End:   w.End,
				Tag:   w.Tag(),
			}
		}
		results, err = store.Fetch(ctx, regions)
		if err != nil {
			return nil, errors.Wrap(err, "batched region fetch")
		}
		if len(results) != len(windows) {
			return nil, errors.Errorf(
				"genome store integrity error: %d windows requested, %d sequences returned",
				len(windows), len(results))
		}
		for i := range results {
			if results[i].Tag != windows[i].Tag() {
				return nil, errors.Errorf(
					"genome store integrity error: response %d tagged %q, want %q",
					i, results[i].Tag, windows[i].Tag())
			}
		}
	}

	return assemble(aln, windows, results, flankLeft, flankRight), nil
}
