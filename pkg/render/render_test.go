package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

func sampleGraph(t *testing.T) *network.RepoGraph {
	t.Helper()
	g := network.NewRepoGraph([]string{"geth", "solidity", "lonely"})
	require.NoError(t, g.SetWeight("geth", "solidity", 2))
	return g
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(sampleGraph(t), Options{})

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"lonely" [label="lonely"];`)
	assert.Contains(t, dot, `"geth" -- "solidity" [weight=2.0, penwidth=6.00];`)
	assert.NotContains(t, dot, "->")
}

func TestToDOTScoresAndHighlight(t *testing.T) {
	dot := ToDOT(sampleGraph(t), Options{
		Scores:    centrality.Scores{"geth": 0.5},
		Highlight: []string{"geth"},
	})

	assert.Contains(t, dot, `"geth" [label="geth\n0.5000", fillcolor="#cfe8ff"];`)
	assert.Contains(t, dot, `"solidity" [label="solidity"];`)
}

func TestToDOTDeterministic(t *testing.T) {
	g := sampleGraph(t)
	assert.Equal(t, ToDOT(g, Options{}), ToDOT(g, Options{}))
}

func TestPenWidth(t *testing.T) {
	assert.Equal(t, minPenWidth, penWidth(3, 0))
	assert.Equal(t, maxPenWidth, penWidth(4, 4))
	assert.InDelta(t, 3.5, penWidth(2, 4), 1e-9)
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleGraph(t), Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "solidity")
}
