// core/genome/faidx.go
package genome

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// faiEntry mirrors one line of an htslib-style .fai index:
// name, sequence length, byte offset of the first base, bases per line,
// bytes per line (including the newline).
type faiEntry struct {
	Name         string
	Length       int
	Offset       int64
	BasesPerLine int
	BytesPerLine int
}

// FaidxStore serves subsequences straight out of a plain FASTA file,
// mmap-backed so arbitrary windows never force reading the whole genome.
// The index is loaded from a .fai sidecar when present and computed by a
// single scan otherwise.
type FaidxStore struct {
	f       *os.File
	data    mmap.MMap
	entries map[string]faiEntry
}

// OpenFaidx opens path and its index.
func OpenFaidx(path string) (*FaidxStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open genome")
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "mmap %s", path)
	}
	s := &FaidxStore{f: f, data: data}

	if fai, err := os.Open(path + ".fai"); err == nil {
		defer func() { _ = fai.Close() }()
		s.entries, err = parseFai(fai)
		if err != nil {
			_ = s.Close()
			return nil, errors.Wrapf(err, "parse %s.fai", path)
		}
	} else {
		s.entries, err = buildIndex(data)
		if err != nil {
			_ = s.Close()
			return nil, errors.Wrapf(err, "index %s", path)
		}
	}
	return s, nil
}

// Close unmaps and closes the underlying file.
func (s *FaidxStore) Close() error {
	err := s.data.Unmap()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *FaidxStore) Lengths(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(s.entries))
	for name, e := range s.entries {
		out[name] = e.Length
	}
	return out, nil
}

func (s *FaidxStore) Fetch(ctx context.Context, regions []Region) ([]Result, error) {
	out := make([]Result, 0, len(regions))
	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seq, err := s.get(r)
		if err != nil {
			return nil, err
		}
		out = append(out, Result{Tag: r.Tag, Seq: seq})
	}
	return out, nil
}

func (s *FaidxStore) get(r Region) ([]byte, error) {
	e, ok := s.entries[r.Name]
	if !ok {
		return nil, errors.Errorf("sequence %q not in genome", r.Name)
	}
	if r.Start < 0 || r.End > e.Length || r.Start >= r.End {
		return nil, errors.Errorf("region %s outside sequence of length %d",
			r.Spec(), e.Length)
	}
	seq := make([]byte, 0, r.End-r.Start)
	for pos := r.Start; pos < r.End; pos++ {
		off := e.Offset +
			int64(pos/e.BasesPerLine)*int64(e.BytesPerLine) +
			int64(pos%e.BasesPerLine)
		seq = append(seq, s.data[off])
	}
	return seq, nil
}

func parseFai(f *os.File) (map[string]faiEntry, error) {
	entries := map[string]faiEntry{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 {
			continue
		}
		nums := make([]int64, 4)
		for i, fd := range fields[1:5] {
			n, err := strconv.ParseInt(fd, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "bad index line %q", sc.Text())
			}
			nums[i] = n
		}
		entries[fields[0]] = faiEntry{
			Name:         fields[0],
			Length:       int(nums[0]),
			Offset:       nums[1],
			BasesPerLine: int(nums[2]),
			BytesPerLine: int(nums[3]),
		}
	}
	return entries, sc.Err()
}

// buildIndex derives faidx entries from the mapped FASTA itself. Sequence
// lines within one record must share a uniform width except the last, which
// may only be shorter; the offset arithmetic in get depends on it. A blank
// line ends a record, so sequence data after one is an error, not silently
// misplaced bases.
func buildIndex(data []byte) (map[string]faiEntry, error) {
	entries := map[string]faiEntry{}
	var cur *faiEntry
	var lastLine int
	var sealed bool

	flush := func() {
		if cur != nil {
			entries[cur.Name] = *cur
		}
	}

	offset := int64(0)
	for offset < int64(len(data)) {
		nl := bytes.IndexByte(data[offset:], '\n')
		lineEnd := int64(len(data))
		next := int64(len(data))
		if nl >= 0 {
			lineEnd = offset + int64(nl)
			next = lineEnd + 1
		}
		line := data[offset:lineEnd]

		switch {
		case len(line) > 0 && line[0] == '>':
			flush()
			fields := bytes.Fields(line[1:])
			if len(fields) == 0 {
				return nil, errors.New("FASTA header with no name")
			}
			cur = &faiEntry{Name: string(fields[0]), Offset: next}
			lastLine = 0
			sealed = false
		case cur != nil && len(line) == 0:
			sealed = true
		case cur != nil:
			if sealed {
				return nil, errors.Errorf(
					"blank line inside record %q", cur.Name)
			}
			switch {
			case cur.BasesPerLine == 0:
				cur.BasesPerLine = len(line)
				cur.BytesPerLine = int(next - offset)
			case len(line) > cur.BasesPerLine, lastLine != cur.BasesPerLine:
				return nil, errors.Errorf(
					"ragged sequence lines in record %q", cur.Name)
			}
			cur.Length += len(line)
			lastLine = len(line)
		}
		offset = next
	}
	flush()
	return entries, nil
}
