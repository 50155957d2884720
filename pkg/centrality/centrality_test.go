package centrality

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

func build(t *testing.T, nodes []string, edges [][2]string) *network.RepoGraph {
	t.Helper()
	g := network.NewRepoGraph(nodes)
	for _, e := range edges {
		require.NoError(t, g.SetWeight(e[0], e[1], 1))
	}
	return g
}

func TestClosenessScenario(t *testing.T) {
	g := build(t, []string{"X", "Y"}, [][2]string{{"X", "Y"}})

	scores, err := Closeness(g)
	require.NoError(t, err)
	assert.Equal(t, Scores{"X": 1, "Y": 1}, scores)
}

func TestClosenessPath(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	scores, err := Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, scores["a"], 1e-12)
	assert.InDelta(t, 1.0, scores["b"], 1e-12)
	assert.InDelta(t, 2.0/3.0, scores["c"], 1e-12)
}

func TestClosenessDisconnectedScaling(t *testing.T) {
	// a-b and c-d-e in a five node graph.
	g := build(t, []string{"a", "b", "c", "d", "e"}, [][2]string{{"a", "b"}, {"c", "d"}, {"d", "e"}})

	scores, err := Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, scores["a"], 1e-12)
	assert.InDelta(t, 0.5, scores["d"], 1e-12)
	assert.InDelta(t, 1.0/3.0, scores["c"], 1e-12)
}

func TestClosenessIgnoresWeights(t *testing.T) {
	g := network.NewRepoGraph([]string{"a", "b", "c"})
	require.NoError(t, g.SetWeight("a", "b", 100))
	require.NoError(t, g.SetWeight("b", "c", 0.01))

	scores, err := Closeness(g)
	require.NoError(t, err)
	assert.InDelta(t, scores["a"], scores["c"], 1e-12)
}

func TestClosenessIsolatedNode(t *testing.T) {
	g := build(t, []string{"X", "Y", "Z"}, [][2]string{{"X", "Y"}})

	scores, err := Closeness(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores["Z"])
	assert.InDelta(t, 0.5, scores["X"], 1e-12)
}

func TestClosenessSingleNode(t *testing.T) {
	scores, err := Closeness(network.NewRepoGraph([]string{"only"}))
	require.NoError(t, err)
	assert.Equal(t, Scores{"only": 0}, scores)
}

func TestClosenessEmptyGraph(t *testing.T) {
	_, err := Closeness(network.NewRepoGraph(nil))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeData))
}

func TestComponentsOrdering(t *testing.T) {
	g := build(t,
		[]string{"d", "c", "b", "a", "e", "f", "g"},
		[][2]string{{"c", "d"}, {"a", "b"}, {"e", "f"}, {"f", "g"}},
	)

	comps := Components(g)
	assert.Equal(t, [][]string{{"e", "f", "g"}, {"a", "b"}, {"c", "d"}}, comps)
}

func TestLargestComponentTieBreak(t *testing.T) {
	g := build(t, []string{"zed", "yak", "bee", "ant"}, [][2]string{{"zed", "yak"}, {"bee", "ant"}})

	for i := 0; i < 20; i++ {
		got, err := LargestComponent(g)
		require.NoError(t, err)
		assert.Equal(t, []string{"ant", "bee"}, got)
	}
}

func TestLargestComponentEmptyGraph(t *testing.T) {
	_, err := LargestComponent(network.NewRepoGraph(nil))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeData))

	_, err = GiantComponent(network.NewRepoGraph(nil))
	assert.True(t, errs.Is(err, errs.ErrCodeData))
}

func TestGiantComponentDropsIsolated(t *testing.T) {
	g := build(t, []string{"X", "Y", "Z"}, [][2]string{{"X", "Y"}})

	giant, err := GiantComponent(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, giant.Nodes())

	scores, err := Closeness(giant)
	require.NoError(t, err)
	assert.Equal(t, Scores{"X": 1, "Y": 1}, scores)
	assert.NotContains(t, scores, "Z")
}

func TestRandomGraphProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(30)
		nodes := make([]string, n)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("r%02d", i)
		}
		g := network.NewRepoGraph(nodes)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.08 {
					require.NoError(t, g.SetWeight(nodes[i], nodes[j], 1))
				}
			}
		}

		scores, err := Closeness(g)
		require.NoError(t, err)
		require.Len(t, scores, n)
		for id, c := range scores {
			assert.GreaterOrEqual(t, c, 0.0, id)
			assert.LessOrEqual(t, c, 1.0, id)
			if g.Degree(id) == 0 {
				assert.Equal(t, 0.0, c, id)
			}
		}

		comps := Components(g)
		largest, err := LargestComponent(g)
		require.NoError(t, err)
		total := 0
		for _, c := range comps {
			assert.GreaterOrEqual(t, len(largest), len(c))
			total += len(c)
		}
		assert.Equal(t, n, total, "components partition the nodes")
	}
}

func TestRank(t *testing.T) {
	r := Rank(Scores{"b": 0.5, "a": 0.5, "c": 1, "d": 0})

	assert.Equal(t, Ranking{{"c", 1}, {"a", 0.5}, {"b", 0.5}, {"d", 0}}, r)
	assert.Equal(t, Ranking{{"c", 1}, {"a", 0.5}}, r.Top(2))
	assert.Len(t, r.Top(10), 4)
	assert.Len(t, r.Top(-1), 4)
	assert.Empty(t, r.Top(0))
}

func TestScoresInOrder(t *testing.T) {
	s := Scores{"x": 0.1, "y": 0.2}
	assert.Equal(t, Ranking{{"y", 0.2}, {"x", 0.1}}, s.InOrder([]string{"y", "missing", "x"}))
}
