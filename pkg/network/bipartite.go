package network

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/contrib"
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

// Bipartite is the weighted user–repository contribution graph.
//
// The zero value is not usable; use [BuildBipartite].
// Bipartite is not safe for concurrent modification.
type Bipartite struct {
	g          *simple.WeightedUndirectedGraph
	nodes      []Node // indexed by node ID
	users      map[string]int64
	repos      map[string]int64
	userOrder  []string
	repoOrder  []string
	edges      int
	overwrites int
}

// BuildBipartite builds the contribution graph from filtered records.
//
// Every distinct user becomes a [KindUser] node and every distinct repository
// a [KindRepo] node, each in first-seen order with all users added before any
// repository. Then one edge per record is added with weight = commits. A
// repeated (user, repo) pair overwrites the earlier weight.
//
// Records with a non-positive commit count are rejected with DATA_ERROR:
// callers are expected to pass the output of [contrib.Filter].
func BuildBipartite(records []contrib.Record) (*Bipartite, error) {
	b := &Bipartite{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		users: make(map[string]int64),
		repos: make(map[string]int64),
	}

	for _, r := range records {
		if r.Commits <= 0 {
			return nil, errs.New(errs.ErrCodeData, "record (%s, %s) has %v commits; filter records before building the graph", r.User, r.Repo, r.Commits)
		}
	}
	for _, user := range contrib.Users(records) {
		b.users[user] = b.addNode(user, KindUser)
		b.userOrder = append(b.userOrder, user)
	}
	for _, repo := range contrib.Repos(records) {
		b.repos[repo] = b.addNode(repo, KindRepo)
		b.repoOrder = append(b.repoOrder, repo)
	}

	for _, r := range records {
		u, v := b.nodes[b.users[r.User]], b.nodes[b.repos[r.Repo]]
		if b.g.HasEdgeBetween(u.ID(), v.ID()) {
			b.overwrites++
		} else {
			b.edges++
		}
		b.g.SetWeightedEdge(b.g.NewWeightedEdge(u, v, r.Commits))
	}

	return b, nil
}

func (b *Bipartite) addNode(label string, kind Kind) int64 {
	n := Node{id: int64(len(b.nodes)), Label: label, Kind: kind}
	b.nodes = append(b.nodes, n)
	b.g.AddNode(n)
	return n.id
}

// Users returns the user identifiers in insertion order.
func (b *Bipartite) Users() []string { return slices.Clone(b.userOrder) }

// Repos returns the repository identifiers in insertion order.
func (b *Bipartite) Repos() []string { return slices.Clone(b.repoOrder) }

// HasUser reports whether id is a user node.
func (b *Bipartite) HasUser(id string) bool {
	_, ok := b.users[id]
	return ok
}

// HasRepo reports whether id is a repository node.
func (b *Bipartite) HasRepo(id string) bool {
	_, ok := b.repos[id]
	return ok
}

// NodeCount returns the number of user and repository nodes.
func (b *Bipartite) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the number of distinct user–repository edges.
func (b *Bipartite) EdgeCount() int { return b.edges }

// Overwrites returns how many records replaced the weight of an existing
// edge because their (user, repo) pair had been seen before.
func (b *Bipartite) Overwrites() int { return b.overwrites }

// Weight returns the commit count on the edge between user and repo.
func (b *Bipartite) Weight(user, repo string) (float64, bool) {
	u, ok := b.users[user]
	if !ok {
		return 0, false
	}
	r, ok := b.repos[repo]
	if !ok {
		return 0, false
	}
	return b.g.Weight(u, r)
}

// RepoNeighbors returns the repositories user contributed to, in repository
// insertion order. Unknown users have no neighbors.
func (b *Bipartite) RepoNeighbors(user string) []string {
	id, ok := b.users[user]
	if !ok {
		return nil
	}
	return b.neighbors(id)
}

// UserNeighbors returns the users who contributed to repo, in user insertion
// order. Unknown repositories have no neighbors.
func (b *Bipartite) UserNeighbors(repo string) []string {
	id, ok := b.repos[repo]
	if !ok {
		return nil
	}
	return b.neighbors(id)
}

func (b *Bipartite) neighbors(id int64) []string {
	ids := sortedIDs(b.g.From(id))
	out := make([]string, len(ids))
	for i, nid := range ids {
		out[i] = b.nodes[nid].Label
	}
	return out
}

// Graph returns the underlying gonum graph. Nodes are of type [Node].
func (b *Bipartite) Graph() graph.WeightedUndirected { return b.g }

// sortedIDs drains a gonum node iterator into ascending IDs. gonum's simple
// graphs iterate in map order; sorting restores insertion order.
func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)
	return ids
}
