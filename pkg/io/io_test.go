package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{2.0 / 3.0, "0.6666666666666666"},
		{1e-07, "1e-07"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.in))
	}
}

func TestWriteCentralityCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := centrality.Ranking{{Repo: "X", Closeness: 1}, {Repo: "Y", Closeness: 0.25}}
	require.NoError(t, WriteCentralityCSV(&buf, rows))

	assert.Equal(t, ",repo,closeness\n0,X,1.0\n1,Y,0.25\n", buf.String())
}

func TestCentralityCSVRoundTrip(t *testing.T) {
	rows := centrality.Ranking{
		{Repo: "go-ethereum", Closeness: 0.7142857142857143},
		{Repo: "needs,quoting", Closeness: 1.0 / 3.0},
		{Repo: "isolated", Closeness: 0},
	}
	path := filepath.Join(t.TempDir(), "closeness_centrality.csv")
	require.NoError(t, ExportCentralityCSV(path, rows))

	got, err := ImportCentralityCSV(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadCentralityCSVWithoutIndex(t *testing.T) {
	got, err := ReadCentralityCSV(strings.NewReader("repo,closeness\nX,0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, centrality.Ranking{{Repo: "X", Closeness: 0.5}}, got)
}

func TestReadCentralityCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad header", "name,score\nX,1\n"},
		{"bad score", ",repo,closeness\n0,X,high\n"},
		{"ragged", ",repo,closeness\n0,X\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCentralityCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeParse), "code = %v", errs.GetCode(err))
		})
	}
}

func TestExportCentralityCSVReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, ExportCentralityCSV(path, centrality.Ranking{{Repo: "X", Closeness: 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ",repo,closeness\n0,X,1.0\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExportCentralityCSVMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.csv")
	err := ExportCentralityCSV(path, nil)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound) || errs.Is(err, errs.ErrCodeIO))
}

func TestImportCentralityCSVMissing(t *testing.T) {
	_, err := ImportCentralityCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound))
}

func TestGraphJSONRoundTrip(t *testing.T) {
	g := network.NewRepoGraph([]string{"X", "Y", "Z"})
	require.NoError(t, g.SetWeight("X", "Y", 2))
	scores := centrality.Scores{"X": 0.5, "Y": 0.5, "Z": 0}

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, ExportGraphJSON(path, g, network.WeightSharedUsers, scores))

	got, weighting, gotScores, err := ImportGraphJSON(path)
	require.NoError(t, err)
	assert.Equal(t, network.WeightSharedUsers, weighting)
	assert.Equal(t, g.Nodes(), got.Nodes())
	assert.Equal(t, g.Edges(), got.Edges())
	assert.Equal(t, scores, gotScores)
}

func TestWriteGraphJSONWithoutScores(t *testing.T) {
	g := network.NewRepoGraph([]string{"X"})
	var buf bytes.Buffer
	require.NoError(t, WriteGraphJSON(&buf, g, "", nil))

	assert.NotContains(t, buf.String(), "closeness")
	assert.NotContains(t, buf.String(), "weighting")
	assert.Contains(t, buf.String(), `"id": "X"`)
}

func TestReadGraphJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", "{"},
		{"missing id", `{"nodes":[{"degree":0}],"edges":[]}`},
		{"unknown endpoint", `{"nodes":[{"id":"X"}],"edges":[{"source":"X","target":"Q","weight":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ReadGraphJSON(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeParse))
		})
	}
}
