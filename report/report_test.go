package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/report"
	"github.com/katalvlaran/socialnet/similarity"
)

func TestHistogram_Scaling(t *testing.T) {
	rows := report.Histogram(map[int]int{3: 1, 1: 100, 2: 50}, 0)

	require.Len(t, rows, 3)
	assert.Equal(t, report.HistogramRow{Degree: 1, Count: 100, Stars: 50}, rows[0])
	assert.Equal(t, report.HistogramRow{Degree: 2, Count: 50, Stars: 25}, rows[1])
	assert.Equal(t, report.HistogramRow{Degree: 3, Count: 1, Stars: 1}, rows[2], "rounded-down bar keeps one star")
}

func TestHistogram_CustomWidthAndEmpty(t *testing.T) {
	rows := report.Histogram(map[int]int{0: 4, 7: 2}, 10)
	assert.Equal(t, []report.HistogramRow{{Degree: 0, Count: 4, Stars: 10}, {Degree: 7, Count: 2, Stars: 5}}, rows)

	assert.Empty(t, report.Histogram(nil, 10))
	assert.Empty(t, report.Histogram(map[int]int{}, 10))
}

func TestWriteHistogram_Format(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteHistogram(&buf, []report.HistogramRow{{Degree: 1, Count: 2, Stars: 3}, {Degree: 120, Count: 1, Stars: 1}})
	require.NoError(t, err)

	assert.Equal(t, "  1 friend(s): ***\n120 friend(s): *\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriters_PropagateErrors(t *testing.T) {
	rows := []report.HistogramRow{{Degree: 1, Count: 1, Stars: 1}}
	assert.EqualError(t, report.WriteHistogram(failWriter{}, rows), "disk full")
	assert.EqualError(t, report.WriteText(failWriter{}, report.Summary{}), "disk full")
	assert.Error(t, report.WriteJSON(failWriter{}, report.Summary{}))
}

func sampleSummary() report.Summary {
	return report.Summary{
		Dataset:      "facebook_combined.txt",
		Stats:        core.Stats{NodeCount: 5, EdgeCount: 4, MinDegree: 1, MaxDegree: 4, MeanDegree: 1.6},
		Components:   1,
		Source:       0,
		SourceDegree: 4,
		Path:         &bfs.PathLength{Source: 0, Mean: 1, Reached: 4, Total: 4, Defined: true},
		Histogram:    report.Histogram(map[int]int{1: 4, 4: 1}, 8),
		TopK:         []similarity.Score{{Node: 1, Value: 0}},
		Pair:         &similarity.Pair{A: 1, B: 2, Value: 1},
	}
}

func TestWriteJSON_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, sampleSummary()))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.Contains(t, buf.String(), "\n  \"stats\": {")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "facebook_combined.txt", decoded["dataset"])
	assert.Equal(t, map[string]any{"a": 1.0, "b": 2.0, "score": 1.0}, decoded["most_similar_pair"])
	assert.Contains(t, decoded, "histogram")
}

func TestWriteJSON_OmitsSkippedSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, report.Summary{Stats: core.Stats{NodeCount: 2}}))

	out := buf.String()
	for _, key := range []string{"path", "histogram", "top_similar", "most_similar_pair", "dataset"} {
		assert.NotContains(t, out, "\""+key+"\"")
	}
}

func TestWriteText_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, sampleSummary()))
	out := buf.String()

	for _, want := range []string{
		"Graph", "nodes:", "Shortest paths", "1.0000",
		"Degree distribution", "  1 friend(s): ********", "  4 friend(s): **\n",
		"Most similar to 0", " 1. node 1  0.0000",
		"Most similar pair", "(1, 2)  1.0000",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteText_UndefinedPath(t *testing.T) {
	var buf bytes.Buffer
	s := report.Summary{Source: 9, Path: &bfs.PathLength{Source: 9}}
	require.NoError(t, report.WriteText(&buf, s))

	assert.Contains(t, buf.String(), "undefined")
	assert.NotContains(t, buf.String(), "Most similar pair")
}
