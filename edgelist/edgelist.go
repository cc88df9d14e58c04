// Package edgelist reads and writes the plain directed edge-list format:
//
//	<source> <target>
//
// one edge per line, tokens separated by any run of whitespace. Blank lines
// are ignored; every other line must hold exactly two tokens. There is no
// comment syntax, so "#alice bob" is an edge from the vertex "#alice".
//
// Vertex identities are the raw tokens. Because Go strings compare by
// value, the same token in the training and testing files always denotes
// the same vertex, which is the identity precondition of package evaluate.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/katalvlaran/socialgraph/core"
)

// ErrMalformedLine is wrapped by every *ParseError.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// maxLineBytes caps a single line; longer lines fail with bufio.ErrTooLong.
const maxLineBytes = 1 << 20

// ParseError reports a line whose token count is not 2.
type ParseError struct {
	Source string // file name, or "" for a bare reader
	Line   int    // 1-based
	Text   string
	Tokens int
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Source != "" {
		where = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}

	return fmt.Sprintf("%s: %s: want 2 tokens, got %d in %q", ErrMalformedLine, where, e.Tokens, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrMalformedLine }

// Parse reads edges from r into g, failing fast on the first malformed line.
func Parse(r io.Reader, g *core.Graph[string]) error {
	return parse(r, "", g)
}

func parse(r io.Reader, source string, g *core.Graph[string]) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cols := strings.Fields(text)
		if len(cols) != 2 {
			return &ParseError{Source: source, Line: line, Text: text, Tokens: len(cols)}
		}
		g.AddEdge(cols[0], cols[1])
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("edgelist: read %s after line %d: %w", nameOr(source), line, err)
	}

	return nil
}

// LoadFile parses the edge list at path into a new graph.
func LoadFile(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g := core.NewGraph[string]()
	if err := parse(f, path, g); err != nil {
		return nil, err
	}

	return g, nil
}

// LoadPair loads the training and testing graphs. Both share the token
// identity space.
func LoadPair(trainPath, testPath string) (train, test *core.Graph[string], err error) {
	if train, err = LoadFile(trainPath); err != nil {
		return nil, nil, err
	}
	if test, err = LoadFile(testPath); err != nil {
		return nil, nil, err
	}

	return train, test, nil
}

// Write emits g as "u v" lines sorted by source then target, so equal
// graphs always serialize identically.
func Write(w io.Writer, g *core.Graph[string]) error {
	edges := g.EdgeSet().Slice()
	slices.SortFunc(edges, func(a, b core.Edge[string]) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})

	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.From, e.To); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.Graph[string]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("edgelist: close %s: %w", path, cerr)
		}
	}()

	return Write(f, g)
}

func nameOr(source string) string {
	if source == "" {
		return "input"
	}

	return source
}
