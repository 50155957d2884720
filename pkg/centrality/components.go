package centrality

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/topo"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

// Components returns the connected components of g. Each component is sorted
// by identifier; components are ordered by size, largest first, and then by
// their smallest identifier.
func Components(g *network.RepoGraph) [][]string {
	raw := topo.ConnectedComponents(g.Undirected())

	out := make([][]string, 0, len(raw))
	for _, comp := range raw {
		ids := make([]string, len(comp))
		for i, n := range comp {
			ids[i] = g.Label(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}

	slices.SortFunc(out, func(a, b []string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})
	return out
}

// LargestComponent returns the node set of the largest connected component
// of g, sorted by identifier. Ties go to the component holding the smallest
// identifier. An empty graph is a DATA_ERROR.
func LargestComponent(g *network.RepoGraph) ([]string, error) {
	if g.NodeCount() == 0 {
		return nil, errs.New(errs.ErrCodeData, "largest connected component of an empty graph")
	}
	return Components(g)[0], nil
}

// GiantComponent returns the subgraph induced by [LargestComponent].
func GiantComponent(g *network.RepoGraph) (*network.RepoGraph, error) {
	ids, err := LargestComponent(g)
	if err != nil {
		return nil, err
	}
	return g.Subgraph(ids)
}
