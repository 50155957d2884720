package centrality

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

// Scores maps repository identifiers to closeness centrality.
type Scores map[string]float64

// Closeness computes the closeness centrality of every node of g.
// An empty graph is a DATA_ERROR: there is nothing to rank.
func Closeness(g *network.RepoGraph) (Scores, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, errs.New(errs.ErrCodeData, "closeness centrality of an empty graph")
	}

	gg := g.Undirected()
	scores := make(Scores, n)
	for _, id := range g.Nodes() {
		node, _ := g.Node(id)
		reachable, total := distances(gg, node)
		scores[id] = closeness(reachable, total, n)
	}
	return scores, nil
}

// distances runs a breadth-first search from start and returns the number of
// nodes reached (start included) and the sum of their hop distances.
func distances(g graph.Graph, start graph.Node) (reachable, total int) {
	bf := traverse.BreadthFirst{}
	bf.Walk(g, start, func(_ graph.Node, depth int) bool {
		reachable++
		total += depth
		return false
	})
	return reachable, total
}

// closeness applies the disconnected-graph scaled formula.
func closeness(reachable, total, n int) float64 {
	if total <= 0 || n <= 1 {
		return 0
	}
	r := float64(reachable - 1)
	return (r / float64(total)) * (r / float64(n-1))
}
