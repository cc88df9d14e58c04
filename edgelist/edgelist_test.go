package edgelist_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/edgelist"
)

type edge = core.Edge[string]

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestParse(t *testing.T) {
	in := "alice bob\n\n  \t\n  bob\tcarol  \nalice bob\ncarol carol\n"
	g := core.NewGraph[string]()

	require.NoError(t, edgelist.Parse(strings.NewReader(in), g))
	assert.Equal(t, core.NewSet(edge{From: "alice", To: "bob"}, edge{From: "bob", To: "carol"}, edge{From: "carol", To: "carol"}), g.EdgeSet())
	assert.Equal(t, 3, g.VertexCount())
}

func TestParse_HashIsAnOrdinaryToken(t *testing.T) {
	g := core.NewGraph[string]()

	require.NoError(t, edgelist.Parse(strings.NewReader("#alice bob\nbob carol\n"), g))
	assert.True(t, g.HasEdge("#alice", "bob"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]struct {
		in     string
		line   int
		tokens int
	}{
		"one token":     {in: "a b\nlonely\n", line: 2, tokens: 1},
		"three tokens":  {in: "a b c\n", line: 1, tokens: 3},
		"hash prefixed": {in: "a b\n#x y z\n", line: 2, tokens: 3},
		"lone hash":     {in: "# a b\n", line: 1, tokens: 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := edgelist.Parse(strings.NewReader(tc.in), core.NewGraph[string]())
			require.ErrorIs(t, err, edgelist.ErrMalformedLine)

			var pe *edgelist.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.tokens, pe.Tokens)
		})
	}
}

func TestLoadPair_SharedIdentities(t *testing.T) {
	train := writeTemp(t, "train.txt", "u1 u2\nu2 u3\n")
	test := writeTemp(t, "test.txt", "u1 u3\nu4 u1\n")

	g, gt, err := edgelist.LoadPair(train, test)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, gt.EdgeCount())
	// the same token is the same vertex in both graphs
	assert.True(t, g.HasVertex("u1") && gt.HasVertex("u1"))
	assert.True(t, gt.HasEdge("u1", "u3"))
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := edgelist.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeTemp(t, "bad.txt", "a b\nc\n")
	_, err = edgelist.LoadFile(bad)
	require.ErrorIs(t, err, edgelist.ErrMalformedLine)
	assert.Contains(t, err.Error(), "bad.txt:2")

	good := writeTemp(t, "good.txt", "a b\n")
	_, _, err = edgelist.LoadPair(good, bad)
	assert.ErrorIs(t, err, edgelist.ErrMalformedLine)
}

func TestWrite_SortedRoundTrip(t *testing.T) {
	g := core.FromEdges(edge{From: "b", To: "a"}, edge{From: "a", To: "c"}, edge{From: "a", To: "b"})

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))
	assert.Equal(t, "a b\na c\nb a\n", buf.String())

	back := core.NewGraph[string]()
	require.NoError(t, edgelist.Parse(&buf, back))
	assert.Equal(t, g.EdgeSet(), back.EdgeSet())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, edgelist.WriteFile(path, core.FromEdges(edge{From: "x", To: "y"})))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x y\n", string(raw))
}
