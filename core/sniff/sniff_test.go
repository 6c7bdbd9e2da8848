// core/sniff/sniff_test.go
package sniff

import (
	"strings"
	"testing"
)

func detect(t *testing.T, in string) Format {
	t.Helper()
	f, err := Detect(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	return f
}

func TestDetectStockholm(t *testing.T) {
	in := "# STOCKHOLM 1.0\nseq1 ACGT\n//\n"
	if f := detect(t, in); f != Stockholm {
		t.Errorf("got %v, want stockholm", f)
	}
}

func TestDetectCrossmatch(t *testing.T) {
	in := "\n" +
		"  239 29.42 1.92 0.97 chr1:100-200 1 98 (3) rep#LINE 1 99 (401)\n"
	if f := detect(t, in); f != Crossmatch {
		t.Errorf("got %v, want crossmatch", f)
	}
}

func TestDetectCrossmatchReverseHit(t *testing.T) {
	in := " 1234 10.00 0.50 0.25 chr2:5-90 2 80 (6) C rep#LTR (0) 85 5\n"
	if f := detect(t, in); f != Crossmatch {
		t.Errorf("got %v, want crossmatch", f)
	}
}

func TestDetectMSAFasta(t *testing.T) {
	in := ">chr1:100-200\nACGT--ACGTN\n>chr2:5-90_R\nACGTTTACG-A\n"
	if f := detect(t, in); f != MSAFasta {
		t.Errorf("got %v, want msa-fasta", f)
	}
}

func TestDetectDump(t *testing.T) {
	for _, in := range []string{
		"$VAR1 = {\n  'alignCol' => 12,\n};\n",
		"{\n  \"alignCol\": 12,\n",
	} {
		if f := detect(t, in); f != Dump {
			t.Errorf("detect(%q) = %v, want dump", in, f)
		}
	}
}

func TestDetectUnknown(t *testing.T) {
	if f := detect(t, "nothing to see here\n12345\n"); f != Unknown {
		t.Errorf("got %v, want unknown", f)
	}
	if f := detect(t, ""); f != Unknown {
		t.Errorf("empty input: got %v, want unknown", f)
	}
}

// A bare FASTA header without a residue line is not enough to classify.
func TestDetectHeaderOnly(t *testing.T) {
	if f := detect(t, ">just-a-name\n"); f != Unknown {
		t.Errorf("got %v, want unknown", f)
	}
}

func TestDetectSkipsSummaryLines(t *testing.T) {
	in := "Maximal single base matches\n\n" +
		"  239 29.42 1.92 0.97 chr1:100-200 1 98 (3) rep#LINE 1 99 (401)\n"
	if f := detect(t, in); f != Crossmatch {
		t.Errorf("got %v, want crossmatch", f)
	}
}
