// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repaln/internal/app"
)

// Two hits against the rep#L consensus; chr1 below is "ACGT" repeated, so
// every expected base is computable from its position.
const crossmatchSample = `  239 29.42 1.92 0.97 chr1:21-30 1 10 (0) rep#L 1 10 (0)

chr1:21-30        1 ACGTACGTAC 10
rep#L             1 ACGTACGTAC 10

  180 30.00 0.00 0.00 chr1:41-44 1 4 (0) rep#L 3 6 (4)

chr1:41-44        1 ACGT 4
rep#L             3 ACGT 6
`

func write(t *testing.T, dir, fn, data string) string {
	t.Helper()
	path := filepath.Join(dir, fn)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func genomeFasta(t *testing.T, dir string) string {
	t.Helper()
	return write(t, dir, "genome.fa", ">chr1\n"+strings.Repeat("ACGT", 15)+"\n")
}

func TestEndToEndFlanking(t *testing.T) {
	dir := t.TempDir()
	cm := write(t, dir, "aln.cm", crossmatchSample)
	fa := genomeFasta(t, dir)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"-genome", fa,
		"-includeFlanking", "5",
		cm,
	}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}

	// Row 1 spans genome 21-30; with a 5-base flank the window is 16-35
	// and chr1 repeats ACGT, so the whole line is read off the pattern.
	want1 := ">chr1:21-30\nTACGTACGTACGTACGTACG\n"
	if !strings.Contains(out.String(), want1) {
		t.Errorf("missing first flanked record\nwant: %s\ngot:\n%s", want1, out.String())
	}

	// Every record line has the same width: 5 + 10 (max core span) + 5.
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if strings.HasPrefix(line, ">") {
			continue
		}
		if len(line) != 20 {
			t.Errorf("line %q has width %d, want 20", line, len(line))
		}
	}
}

func TestEndToEndStockholmConversion(t *testing.T) {
	dir := t.TempDir()
	cm := write(t, dir, "aln.cm", crossmatchSample)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-stockholm", cm}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.HasPrefix(out.String(), "# STOCKHOLM 1.0") {
		t.Errorf("missing Stockholm header:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "chr1:21-30") {
		t.Errorf("missing row identifier:\n%s", out.String())
	}
}

func TestEndToEndDumpRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cm := write(t, dir, "aln.cm", crossmatchSample)

	var dumped, errBuf bytes.Buffer
	if code := app.Run([]string{"-dump", cm}, &dumped, &errBuf); code != 0 {
		t.Fatalf("dump exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(dumped.String(), `"alignCol"`) {
		t.Fatalf("dump output lacks alignCol:\n%s", dumped.String())
	}

	// The dump itself must be recognized and loadable as input.
	dj := write(t, dir, "aln.json", dumped.String())
	var out, errBuf2 bytes.Buffer
	if code := app.Run([]string{"-msa", dj}, &out, &errBuf2); code != 0 {
		t.Fatalf("reload exit %d, err=%s", code, errBuf2.String())
	}
	if !strings.Contains(out.String(), ">chr1:21-30") {
		t.Errorf("reloaded MSA-FASTA lacks row:\n%s", out.String())
	}
}

func TestUnknownFormatExitsUsage(t *testing.T) {
	dir := t.TempDir()
	junk := write(t, dir, "junk.txt", "this is not an alignment\nat all\n")

	var out, errBuf bytes.Buffer
	if code := app.Run([]string{junk}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2 for unknown format, got %d (err=%s)", code, errBuf.String())
	}
}

func TestFlankingRejectsNonCrossmatchInput(t *testing.T) {
	dir := t.TempDir()
	sto := write(t, dir, "aln.sto",
		"# STOCKHOLM 1.0\nchr1:21-30 ACGTACGTAC\n//\n")
	fa := genomeFasta(t, dir)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-genome", fa, "-includeFlanking", "5", sto}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("want exit 2, got %d (out=%s err=%s)", code, out.String(), errBuf.String())
	}
}

func TestNamelessFastaHeaderExitsUsage(t *testing.T) {
	dir := t.TempDir()
	bad := write(t, dir, "bad.fa", ">\nACGT\n")

	var out, errBuf bytes.Buffer
	if code := app.Run([]string{bad}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2 for a nameless FASTA header, got %d", code)
	}
}

func TestMissingInputIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run([]string{"-msa"}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2 for missing input, got %d", code)
	}
}
