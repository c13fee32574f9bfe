// Package edgelist reads and writes the line-oriented edge-list format used by
// SNAP and KONECT dumps: one undirected edge per line, two whitespace-separated
// non-negative integers.
//
// Blank lines and lines starting with '#' or '%' are skipped. Any other line
// with the wrong token count or a token that is not a non-negative integer is
// malformed: Read fails with ErrMalformedLine (wrapped with the line number),
// or, WithLenient, skips and counts it.
//
// ReadFile and WriteFile transparently (de)compress paths ending in ".gz".
package edgelist

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/socialnet/core"
)

// ErrMalformedLine is returned for a line that is not a valid edge.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// gzipExt marks compressed files.
const gzipExt = ".gz"

// maxLineBytes bounds a single line; edge lines are a few dozen bytes.
const maxLineBytes = 1 << 20

// Stats counts what Read saw.
type Stats struct {
	Lines    int `json:"lines"`
	Edges    int `json:"edges"`
	Comments int `json:"comments"`
	Blank    int `json:"blank"`
	Skipped  int `json:"skipped"`
}

// Option configures Read.
type Option func(*options)

type options struct {
	lenient bool
}

// WithLenient skips malformed lines instead of failing; they are counted in Stats.Skipped.
func WithLenient() Option {
	return func(o *options) { o.lenient = true }
}

// Read parses edges from r until EOF.
func Read(r io.Reader, opts ...Option) ([]core.Edge, Stats, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		edges []core.Edge
		st    Stats
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			st.Blank++
			continue
		case line[0] == '#' || line[0] == '%':
			st.Comments++
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			if o.lenient {
				st.Skipped++
				continue
			}
			return nil, st, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, st.Lines, err)
		}
		edges = append(edges, e)
		st.Edges++
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("edgelist: reading line %d: %w", st.Lines+1, err)
	}

	return edges, st, nil
}

// parseLine splits one non-comment line into an edge.
func parseLine(line string) (core.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return core.Edge{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	u, err := parseID(fields[0])
	if err != nil {
		return core.Edge{}, err
	}
	v, err := parseID(fields[1])
	if err != nil {
		return core.Edge{}, err
	}

	return core.Edge{U: u, V: v}, nil
}

// parseID accepts decimal non-negative integers only.
func parseID(tok string) (int, error) {
	id, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("node id %q is not an integer", tok)
	}
	if id < 0 {
		return 0, fmt.Errorf("node id %d is negative", id)
	}

	return id, nil
}

// ReadFile opens path (gunzipping "*.gz") and calls Read.
func ReadFile(path string, opts ...Option) ([]core.Edge, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("edgelist: opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzipExt) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("edgelist: gzip header of %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return Read(r, opts...)
}

// Write emits one "u v" line per edge.
func Write(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("edgelist: writing: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile writes edges to path, gzip-compressed when path ends in ".gz".
func WriteFile(path string, edges []core.Edge) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("edgelist: closing %s: %w", path, cerr)
		}
	}()

	if !strings.HasSuffix(path, gzipExt) {
		return Write(f, edges)
	}
	zw := gzip.NewWriter(f)
	if err := Write(zw, edges); err != nil {
		return err
	}

	return zw.Close()
}
