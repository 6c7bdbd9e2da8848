// internal/seqstore/twobit.go

// Package seqstore adapts external genome sequence store tooling to the
// genome.Store interface. The twoBit flavor shells out to the UCSC-style
// command line tools: one process for the length index, one process for
// the whole batched fetch. Regions go through a temporary seqList file so
// an alignment with thousands of rows still costs two invocations total.
package seqstore

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"repaln-core/genome"
)

// TwoBit implements genome.Store on top of a .2bit file.
type TwoBit struct {
	Path string

	// Executable names, overridable for nonstandard installs.
	InfoExec string
	ToFaExec string
}

// New returns a TwoBit store with the standard tool names.
func New(path string) *TwoBit {
	return &TwoBit{Path: path, InfoExec: "twoBitInfo", ToFaExec: "twoBitToFa"}
}

// Lengths runs the info tool and parses its name/length table.
func (t *TwoBit) Lengths(ctx context.Context) (map[string]int, error) {
	out, err := exec.CommandContext(ctx, t.InfoExec, t.Path, "stdout").Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", t.InfoExec, t.Path, err)
	}
	return parseLengths(out)
}

// Fetch writes every region to a seqList temp file, runs the extraction
// tool once, and correlates its FASTA output back to the request by header.
// The tools already speak 0-based half-open coordinates, so region specs
// pass through unchanged.
func (t *TwoBit) Fetch(ctx context.Context, regions []genome.Region) ([]genome.Result, error) {
	if len(regions) == 0 {
		return nil, nil
	}

	list, err := os.CreateTemp("", "repaln-seqlist")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(list.Name()) }()
	for _, r := range regions {
		if _, err := fmt.Fprintln(list, r.Spec()); err != nil {
			_ = list.Close()
			return nil, err
		}
	}
	if err := list.Close(); err != nil {
		return nil, err
	}

	out, err := exec.CommandContext(ctx,
		t.ToFaExec, "-seqList="+list.Name(), t.Path, "stdout").Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", t.ToFaExec, t.Path, err)
	}
	return parseFetch(out, regions)
}

func parseLengths(out []byte) (map[string]int, error) {
	lengths := map[string]int{}
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("unexpected length-index line %q", line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("unexpected length-index line %q: %v", line, err)
		}
		lengths[fields[0]] = n
	}
	return lengths, sc.Err()
}

// parseFetch pairs the tool's FASTA records with the requested regions in
// order. Each record header must spell the region it answers; a count or
// header mismatch means the correlation is broken and the batch is bad.
func parseFetch(out []byte, regions []genome.Region) ([]genome.Result, error) {
	var results []genome.Result
	var header string
	var seq []byte

	flush := func() error {
		if header == "" {
			return nil
		}
		i := len(results)
		if i >= len(regions) {
			return fmt.Errorf("store returned more records than the %d requested", len(regions))
		}
		if header != regions[i].Spec() {
			return fmt.Errorf("store response %d is %q, want %q", i, header, regions[i].Spec())
		}
		results = append(results, genome.Result{Tag: regions[i].Tag, Seq: seq})
		header, seq = "", nil
		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("store returned a FASTA record with no name")
			}
			header = fields[0]
			continue
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(results) != len(regions) {
		return nil, fmt.Errorf("store returned %d records for %d regions",
			len(results), len(regions))
	}
	return results, nil
}
