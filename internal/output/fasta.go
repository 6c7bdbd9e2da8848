// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"repaln-core/flank"
)

// WriteFlankedFASTA writes one FASTA record per assembled row: the
// identifier as originally given, then the uniform-width flanked line.
func WriteFlankedFASTA(w io.Writer, rows []flank.FlankedRow) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq()); err != nil {
			return err
		}
	}
	return nil
}
