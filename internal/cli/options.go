// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"repaln/internal/cliutil"
	"repaln/internal/version"
)

// Options holds all CLI flags and the single positional input path.
type Options struct {
	Input string

	// Flanking
	Genome   string
	Flanking int

	// Output format (at most one; MSA-FASTA is the default)
	MSA       bool
	Stockholm bool
	Dump      bool

	// Pre-export transforms
	RevComp   bool
	TrimLeft  int
	TrimRight int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: repeat alignment converter with genomic flanking

Converts multiple sequence alignments of repeat families between
crossmatch, Stockholm, aligned-FASTA and JSON dump encodings, and can
extend each aligned copy with flanking sequence from a genome store.

Version: %s

Usage: %s [options] <alignment-file>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Genome, "genome", "", "genome sequence store (.2bit for the external tools, otherwise indexed FASTA)")
	fs.IntVar(&opt.Flanking, "includeFlanking", 0, "symmetric flank width in bases (requires -genome and -msa) [0]")

	fs.BoolVar(&opt.MSA, "msa", false, "write MSA-FASTA output (default; flanking-enabled path)")
	fs.BoolVar(&opt.Stockholm, "stockholm", false, "write Stockholm output")
	fs.BoolVar(&opt.Dump, "dump", false, "write a JSON alignment dump")

	fs.BoolVar(&opt.RevComp, "revcomp", false, "reverse-complement the whole alignment before export [false]")
	fs.IntVar(&opt.TrimLeft, "trimLeft", 0, "trim N alignment columns from the left edge [0]")
	fs.IntVar(&opt.TrimRight, "trimRight", 0, "trim N alignment columns from the right edge [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	expanded, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	switch len(expanded) {
	case 0:
		return opt, errors.New("an alignment file (or '-') is required")
	case 1:
		opt.Input = expanded[0]
	default:
		return opt, fmt.Errorf("exactly one alignment file expected, got %d", len(expanded))
	}

	// Validation
	outputs := 0
	for _, b := range []bool{opt.MSA, opt.Stockholm, opt.Dump} {
		if b {
			outputs++
		}
	}
	switch {
	case outputs > 1:
		return opt, errors.New("-msa, -stockholm and -dump are mutually exclusive")
	case opt.Flanking < 0:
		return opt, errors.New("-includeFlanking must be ≥ 0")
	case opt.Flanking > 0 && opt.Genome == "":
		return opt, errors.New("-includeFlanking requires -genome")
	case opt.Flanking > 0 && (opt.Stockholm || opt.Dump):
		return opt, errors.New("-includeFlanking is only valid with MSA-FASTA output (-msa)")
	case opt.TrimLeft < 0 || opt.TrimRight < 0:
		return opt, errors.New("-trimLeft/-trimRight must be ≥ 0")
	}
	if !opt.Stockholm && !opt.Dump {
		opt.MSA = true
	}
	return opt, nil
}
