// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"repaln-core/alignment"
	"repaln-core/crossmatch"
	"repaln-core/dump"
	"repaln-core/fileio"
	"repaln-core/flank"
	"repaln-core/genome"
	"repaln-core/msafasta"
	"repaln-core/sniff"
	"repaln-core/stockholm"
	"repaln/internal/cli"
	"repaln/internal/output"
	"repaln/internal/seqstore"
	"repaln/internal/version"
	"repaln/internal/writers"
)

// RunContext is the whole single-shot pipeline: sniff, load, transform,
// optionally flank, write. Exit codes: 0 success, 2 usage or input error,
// 3 runtime/integrity error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("repaln")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "repaln version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if opts.Quiet {
		log.SetLevel(log.ErrorLevel)
	}

	data, err := fileio.ReadAll(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "read %s: %v\n", opts.Input, err)
		return 2
	}

	format, err := sniff.Detect(bytes.NewReader(data))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "classify %s: %v\n", opts.Input, err)
		return 2
	}
	if format == sniff.Unknown {
		_, _ = fmt.Fprintf(stderr, "%s: unrecognized alignment format\n", opts.Input)
		return 2
	}
	if opts.Flanking > 0 && format != sniff.Crossmatch {
		_, _ = fmt.Fprintf(stderr,
			"-includeFlanking is only supported for crossmatch input; %s looks like %s\n",
			opts.Input, format)
		return 2
	}

	aln, err := load(format, data)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "load %s (%s): %v\n", opts.Input, format, err)
		return 2
	}

	if opts.RevComp {
		aln.ReverseComplement()
	}
	if opts.TrimLeft > 0 || opts.TrimRight > 0 {
		if err := aln.Trim(opts.TrimLeft, opts.TrimRight); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	if opts.Flanking > 0 {
		if err := runFlanking(parent, outw, aln, opts); err != nil {
			if writers.IsBrokenPipe(err) {
				return 0
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return flushCode(outw, stderr)
	}

	switch {
	case opts.Stockholm:
		err = stockholm.Write(outw, aln)
	case opts.Dump:
		err = dump.Write(outw, aln)
	default:
		err = msafasta.Write(outw, aln)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func load(format sniff.Format, data []byte) (*alignment.Alignment, error) {
	r := bytes.NewReader(data)
	switch format {
	case sniff.Crossmatch:
		return crossmatch.Read(r)
	case sniff.Stockholm:
		return stockholm.Read(r)
	case sniff.MSAFasta:
		return msafasta.Read(r)
	case sniff.Dump:
		return dump.Read(r)
	}
	return nil, fmt.Errorf("unsupported format %v", format)
}

func runFlanking(ctx context.Context, w io.Writer, aln *alignment.Alignment, opts cli.Options) error {
	store, cleanup, err := openStore(opts.Genome)
	if err != nil {
		return err
	}
	defer cleanup()

	rows, err := flank.Flank(ctx, aln, store, opts.Flanking, opts.Flanking)
	if err != nil {
		return err
	}
	return output.WriteFlankedFASTA(w, rows)
}

// openStore picks the store implementation by extension: .2bit goes to the
// external twoBit tools, anything else is read in-process as indexed FASTA.
func openStore(path string) (genome.Store, func(), error) {
	if strings.HasSuffix(path, ".2bit") {
		return seqstore.New(path), func() {}, nil
	}
	s, err := genome.OpenFaidx(path)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
