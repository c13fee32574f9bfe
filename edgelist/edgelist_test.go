package edgelist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/edgelist"
)

const snapSample = `# Undirected graph: facebook_combined.txt
# Nodes: 5 Edges: 4
0 1
0	2

  1 3
% konect-style comment
3 4
`

func TestRead_Sample(t *testing.T) {
	edges, st, err := edgelist.Read(strings.NewReader(snapSample))
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 3, V: 4}}, edges)
	assert.Equal(t, edgelist.Stats{Lines: 8, Edges: 4, Comments: 3, Blank: 1}, st)
}

func TestRead_Malformed(t *testing.T) {
	cases := map[string]string{
		"one token":      "0 1\n7\n",
		"three tokens":   "0 1 2\n",
		"not an integer": "0 x\n",
		"negative id":    "-1 3\n",
		"float id":       "1.5 2\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			edges, _, err := edgelist.Read(strings.NewReader(input))
			assert.ErrorIs(t, err, edgelist.ErrMalformedLine)
			assert.Nil(t, edges)
		})
	}
}

func TestRead_MalformedReportsLine(t *testing.T) {
	_, _, err := edgelist.Read(strings.NewReader("0 1\n# c\n2 b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestRead_Lenient(t *testing.T) {
	input := "0 1\n7\n0 x 2\n2 3\n-4 5\n"
	edges, st, err := edgelist.Read(strings.NewReader(input), edgelist.WithLenient())
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, edges)
	assert.Equal(t, 3, st.Skipped)
	assert.Equal(t, 2, st.Edges)
}

func TestRead_Empty(t *testing.T) {
	edges, st, err := edgelist.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, st.Lines)
}

func TestWrite_RoundTrip(t *testing.T) {
	want := []core.Edge{{U: 0, V: 1}, {U: 10, V: 2}, {U: 3, V: 3}}

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, want))
	assert.Equal(t, "0 1\n10 2\n3 3\n", buf.String())

	got, _, err := edgelist.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFile_RoundTrip(t *testing.T) {
	want := []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 4039, V: 17}}
	dir := t.TempDir()

	for _, name := range []string{"edges.txt", "edges.txt.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, edgelist.WriteFile(path, want))

			got, st, err := edgelist.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, 3, st.Edges)
		})
	}

	raw, err := os.ReadFile(filepath.Join(dir, "edges.txt.gz"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")
}

func TestReadFile_Errors(t *testing.T) {
	_, _, err := edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "plain.gz")
	require.NoError(t, os.WriteFile(bad, []byte("0 1\n"), 0o644))
	_, _, err = edgelist.ReadFile(bad)
	assert.Error(t, err)
}
