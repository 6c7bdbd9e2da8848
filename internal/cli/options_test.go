// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaultsToMSAFasta(t *testing.T) {
	o := mustParse(t, "aln.cm")
	if o.Input != "aln.cm" || !o.MSA || o.Stockholm || o.Dump {
		t.Errorf("want MSA-FASTA default, got %+v", o)
	}
}

func TestFlankingOK(t *testing.T) {
	o := mustParse(t, "-genome", "hg38.2bit", "-includeFlanking", "50", "aln.cm")
	if o.Genome != "hg38.2bit" || o.Flanking != 50 || !o.MSA {
		t.Errorf("bad flanking parse %+v", o)
	}
}

func TestStdinInput(t *testing.T) {
	o := mustParse(t, "-stockholm", "-")
	if o.Input != "-" || !o.Stockholm {
		t.Errorf("bad stdin parse %+v", o)
	}
}

func TestErrorNoInput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-msa"})
	if err == nil {
		t.Fatalf("expected error with no input file")
	}
}

func TestErrorTwoInputs(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"a.cm", "b.cm"})
	if err == nil {
		t.Fatalf("expected error with two input files")
	}
}

func TestErrorOutputMutualExclusion(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-stockholm", "-dump", "aln.cm"})
	if err == nil {
		t.Fatalf("expected mutual-exclusion error")
	}
}

func TestErrorFlankingWithoutGenome(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-includeFlanking", "50", "aln.cm"})
	if err == nil {
		t.Fatalf("expected error when genome not supplied")
	}
}

func TestErrorFlankingWithStockholm(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"-genome", "hg38.2bit", "-includeFlanking", "50", "-stockholm", "aln.cm",
	})
	if err == nil {
		t.Fatalf("expected error combining flanking and stockholm output")
	}
}

func TestErrorNegativeFlanking(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"-genome", "hg38.2bit", "-includeFlanking", "-5", "aln.cm",
	})
	if err == nil {
		t.Fatalf("expected error for negative flank width")
	}
}

func TestErrorNegativeTrim(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-trimLeft", "-1", "aln.cm"})
	if err == nil {
		t.Fatalf("expected error for negative trim")
	}
}

func TestVersionShortCircuits(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-v"})
	if err != nil || !o.Version {
		t.Fatalf("want version flag with no error, got %+v err=%v", o, err)
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}
