package network

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

// Edge is an undirected weighted link between two repositories.
// From precedes To in node insertion order.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// RepoGraph is the simple undirected weighted graph of repositories.
//
// The zero value is not usable; use [NewRepoGraph] or [ProjectRepos].
type RepoGraph struct {
	g     *simple.WeightedUndirectedGraph
	nodes []Node // indexed by node ID
	index map[string]int64
	edges int
}

// NewRepoGraph returns a graph with the given repositories as isolated nodes,
// in the given order. Duplicate identifiers are added once.
func NewRepoGraph(repos []string) *RepoGraph {
	r := &RepoGraph{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		index: make(map[string]int64, len(repos)),
	}
	for _, id := range repos {
		if _, ok := r.index[id]; ok {
			continue
		}
		n := Node{id: int64(len(r.nodes)), Label: id, Kind: KindRepo}
		r.nodes = append(r.nodes, n)
		r.index[id] = n.id
		r.g.AddNode(n)
	}
	return r
}

// SetWeight links repositories a and b with weight w, replacing any existing
// weight. Unknown repositories and self loops are rejected with DATA_ERROR.
func (r *RepoGraph) SetWeight(a, b string, w float64) error {
	x, ok := r.index[a]
	if !ok {
		return errs.New(errs.ErrCodeData, "unknown repository %q", a)
	}
	y, ok := r.index[b]
	if !ok {
		return errs.New(errs.ErrCodeData, "unknown repository %q", b)
	}
	if x == y {
		return errs.New(errs.ErrCodeData, "self loop on repository %q", a)
	}
	if !r.g.HasEdgeBetween(x, y) {
		r.edges++
	}
	r.g.SetWeightedEdge(r.g.NewWeightedEdge(r.nodes[x], r.nodes[y], w))
	return nil
}

// Nodes returns the repository identifiers in insertion order.
func (r *RepoGraph) Nodes() []string {
	out := make([]string, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = n.Label
	}
	return out
}

// Has reports whether id is a node of the graph.
func (r *RepoGraph) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// NodeCount returns the number of repositories.
func (r *RepoGraph) NodeCount() int { return len(r.nodes) }

// EdgeCount returns the number of repository pairs that share contributors.
func (r *RepoGraph) EdgeCount() int { return r.edges }

// Weight returns the weight of the edge between a and b.
// The boolean is false when there is no such edge.
func (r *RepoGraph) Weight(a, b string) (float64, bool) {
	x, ok := r.index[a]
	if !ok {
		return 0, false
	}
	y, ok := r.index[b]
	if !ok || x == y {
		return 0, false
	}
	return r.g.Weight(x, y)
}

// Neighbors returns the repositories linked to id, in insertion order.
func (r *RepoGraph) Neighbors(id string) []string {
	x, ok := r.index[id]
	if !ok {
		return nil
	}
	ids := sortedIDs(r.g.From(x))
	out := make([]string, len(ids))
	for i, nid := range ids {
		out[i] = r.nodes[nid].Label
	}
	return out
}

// Degree returns the number of repositories linked to id.
func (r *RepoGraph) Degree(id string) int {
	x, ok := r.index[id]
	if !ok {
		return 0
	}
	return r.g.From(x).Len()
}

// Edges returns every edge once, ordered by the insertion index of From and
// then of To.
func (r *RepoGraph) Edges() []Edge {
	out := make([]Edge, 0, r.edges)
	for _, n := range r.nodes {
		for _, nid := range sortedIDs(r.g.From(n.id)) {
			if nid < n.id {
				continue
			}
			w, _ := r.g.Weight(n.id, nid)
			out = append(out, Edge{From: n.Label, To: r.nodes[nid].Label, Weight: w})
		}
	}
	return out
}

// Subgraph returns an independent copy of the subgraph induced by ids.
// Nodes keep the receiver's relative order; ids may be given in any order.
// Unknown identifiers are rejected with DATA_ERROR.
func (r *RepoGraph) Subgraph(ids []string) (*RepoGraph, error) {
	keep := make(map[int64]bool, len(ids))
	for _, id := range ids {
		x, ok := r.index[id]
		if !ok {
			return nil, errs.New(errs.ErrCodeData, "unknown repository %q", id)
		}
		keep[x] = true
	}

	var order []string
	for _, n := range r.nodes {
		if keep[n.id] {
			order = append(order, n.Label)
		}
	}
	sub := NewRepoGraph(order)
	for _, e := range r.Edges() {
		if keep[r.index[e.From]] && keep[r.index[e.To]] {
			if err := sub.SetWeight(e.From, e.To, e.Weight); err != nil {
				return nil, err
			}
		}
	}
	return sub, nil
}

// Label returns the repository identifier of a gonum node ID.
func (r *RepoGraph) Label(id int64) string {
	if id < 0 || int(id) >= len(r.nodes) {
		return ""
	}
	return r.nodes[id].Label
}

// Node returns the gonum node of a repository identifier.
func (r *RepoGraph) Node(id string) (graph.Node, bool) {
	x, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.nodes[x], true
}

// Graph returns the underlying gonum graph. Nodes are of type [Node] and
// their IDs are insertion indexes, so sorting by ID restores node order.
func (r *RepoGraph) Graph() graph.WeightedUndirected { return r.g }

// Undirected returns the same graph as the unweighted [graph.Undirected]
// view required by gonum's topo and traverse packages.
func (r *RepoGraph) Undirected() graph.Undirected { return r.g }

// SortedNodeIDs is a helper for gonum consumers that need deterministic
// iteration: it returns the node IDs of it in ascending order.
func SortedNodeIDs(it graph.Nodes) []int64 {
	return sortedIDs(it)
}

