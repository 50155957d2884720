package contrib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

const scenarioCSV = `user,X,Y
A,5,3
B,2,0
C,0,1
`

func TestReadWide(t *testing.T) {
	tbl, err := ReadWide(strings.NewReader(scenarioCSV))
	require.NoError(t, err)

	assert.Equal(t, "user", tbl.IDColumn)
	assert.Equal(t, []string{"X", "Y"}, tbl.Repos)
	require.Equal(t, 3, tbl.UserCount())
	assert.Equal(t, 2, tbl.RepoCount())
	assert.Equal(t, Row{User: "A", Cells: []Cell{{5, true}, {3, true}}}, tbl.Rows[0])
	assert.Equal(t, Row{User: "C", Cells: []Cell{{0, true}, {1, true}}}, tbl.Rows[2])
}

func TestReadWideAbsentCells(t *testing.T) {
	in := "user,X,Y,Z\nA,,NA,2.5\nB,NaN, 4 ,null\n"
	tbl, err := ReadWide(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []Cell{{}, {}, {2.5, true}}, tbl.Rows[0].Cells)
	assert.Equal(t, []Cell{{}, {4, true}, {}}, tbl.Rows[1].Cells)
}

func TestReadWideBOMAndIDColumn(t *testing.T) {
	tbl, err := ReadWide(strings.NewReader("\ufefflogin,X\nA,1\n"))
	require.NoError(t, err)
	assert.Equal(t, "login", tbl.IDColumn)
}

func TestReadWideHeaderOnly(t *testing.T) {
	tbl, err := ReadWide(strings.NewReader("user,X,Y\n"))
	require.NoError(t, err)
	assert.Zero(t, tbl.UserCount())
	assert.Empty(t, Reshape(tbl))
}

func TestReadWideErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", "missing header row"},
		{"ragged row", "user,X,Y\nA,1\n", "wrong number of fields"},
		{"non-numeric", "user,X\nA,lots\n", `column "X"`},
		{"infinite", "user,X\nA,inf\n", "not finite"},
		{"duplicate column", "user,X,X\nA,1,2\n", "duplicate repository column"},
		{"empty repo header", "user,X,\nA,1,2\n", "repo identifier cannot be empty"},
		{"empty user header", ",X\nA,1\n", "user column header is empty"},
		{"empty user id", "user,X\n,1\n", "user identifier cannot be empty"},
		{"bad quoting", "user,X\n\"A,1\n", "line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadWide(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeParse), "code = %v", errs.GetCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadWideErrorLine(t *testing.T) {
	_, err := ReadWide(strings.NewReader("user,X\nA,1\nB,2\nC,oops\n"))
	require.Error(t, err)

	var pe *errs.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, "X", pe.Column)
}

func TestLoadWide(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commits.csv")
	require.NoError(t, os.WriteFile(path, []byte(scenarioCSV), 0o644))

	tbl, err := LoadWide(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.UserCount())

	_, err = LoadWide(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound))

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("user,X\nA,x\n"), 0o644))
	_, err = LoadWide(bad)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeParse))
	assert.Contains(t, err.Error(), bad)
}

func TestMeltColumnMajor(t *testing.T) {
	tbl, err := ReadWide(strings.NewReader(scenarioCSV))
	require.NoError(t, err)

	got := Melt(tbl)
	want := []Record{
		{"A", "X", 5}, {"B", "X", 2}, {"C", "X", 0},
		{"A", "Y", 3}, {"B", "Y", 0}, {"C", "Y", 1},
	}
	assert.Equal(t, want, got)
}

func TestReshapeScenario(t *testing.T) {
	tbl, err := ReadWide(strings.NewReader(scenarioCSV))
	require.NoError(t, err)

	got := Reshape(tbl)
	want := []Record{{"A", "X", 5}, {"B", "X", 2}, {"A", "Y", 3}, {"C", "Y", 1}}
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"A", "B", "C"}, Users(got))
	assert.Equal(t, []string{"X", "Y"}, Repos(got))
}

func TestFilterKeepsOnlyPositive(t *testing.T) {
	in := []Record{
		{"a", "r", 0}, {"a", "s", -3}, {"b", "r", 0.5}, {"c", "s", 12},
	}
	got := Filter(in)

	require.Len(t, got, 2)
	for _, r := range got {
		assert.Greater(t, r.Commits, 0.0)
	}
	assert.LessOrEqual(t, len(got), len(in))
	assert.Equal(t, float64(0), in[0].Commits, "input must not be modified")
}

func TestReshapeDropsInactiveUsers(t *testing.T) {
	in := "user,X,Y\nidle,0,\nbusy,1,1\n"
	tbl, err := ReadWide(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"busy"}, Users(Reshape(tbl)))
}
