package network

import (
	"cmp"
	"math"
	"slices"
	"strings"

	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
)

// Weighting selects how shared contributors turn into projection weights.
type Weighting string

const (
	// WeightSharedUsers weights an edge by the number of shared contributors.
	WeightSharedUsers Weighting = "shared_users"
	// WeightMinCommits sums, over shared contributors, the smaller of their
	// commit counts to the two repositories.
	WeightMinCommits Weighting = "min_commits"
	// WeightSumCommits sums, over shared contributors, their commit counts to
	// both repositories.
	WeightSumCommits Weighting = "sum_commits"
)

// DefaultWeighting is the scheme used when none is configured.
const DefaultWeighting = WeightSharedUsers

// Weightings lists the supported schemes.
var Weightings = []Weighting{WeightSharedUsers, WeightMinCommits, WeightSumCommits}

// ParseWeighting resolves a scheme name. The empty string selects
// [DefaultWeighting]; matching ignores case and accepts '-' for '_'.
func ParseWeighting(s string) (Weighting, error) {
	if s == "" {
		return DefaultWeighting, nil
	}
	w := Weighting(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !slices.Contains(Weightings, w) {
		return "", errs.New(errs.ErrCodeInvalidConfig, "invalid weighting %q (must be one of: shared_users, min_commits, sum_commits)", s)
	}
	return w, nil
}

// contribution is the amount one shared user adds to an edge weight, given
// their commit counts to the two repositories.
func (w Weighting) contribution(c1, c2 float64) float64 {
	switch w {
	case WeightMinCommits:
		return math.Min(c1, c2)
	case WeightSumCommits:
		return c1 + c2
	default:
		return 1
	}
}

// ProjectRepos projects b onto the repositories in repos.
//
// The result has exactly repos as its nodes, in the given order. Two of them
// are linked when at least one user contributed to both, weighted according
// to scheme. Only contributions to repositories in repos are considered.
// Identifiers that are not repository nodes of b are rejected with DATA_ERROR.
func ProjectRepos(b *Bipartite, repos []string, scheme Weighting) (*RepoGraph, error) {
	if scheme == "" {
		scheme = DefaultWeighting
	}
	if !slices.Contains(Weightings, scheme) {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "invalid weighting %q", scheme)
	}
	for _, id := range repos {
		if !b.HasRepo(id) {
			return nil, errs.New(errs.ErrCodeData, "%q is not a repository node", id)
		}
	}

	p := NewRepoGraph(repos)
	type pair struct{ a, b int64 }
	weights := make(map[pair]float64)
	var order []pair

	for _, user := range b.userOrder {
		uid := b.users[user]
		var mine []int64
		for _, rid := range sortedIDs(b.g.From(uid)) {
			if p.Has(b.nodes[rid].Label) {
				mine = append(mine, rid)
			}
		}
		for i := 0; i < len(mine); i++ {
			for j := i + 1; j < len(mine); j++ {
				c1, _ := b.g.Weight(uid, mine[i])
				c2, _ := b.g.Weight(uid, mine[j])
				x := p.index[b.nodes[mine[i]].Label]
				y := p.index[b.nodes[mine[j]].Label]
				if x > y {
					x, y = y, x
				}
				k := pair{x, y}
				if _, ok := weights[k]; !ok {
					order = append(order, k)
				}
				weights[k] += scheme.contribution(c1, c2)
			}
		}
	}

	slices.SortFunc(order, func(l, r pair) int {
		if c := cmp.Compare(l.a, r.a); c != 0 {
			return c
		}
		return cmp.Compare(l.b, r.b)
	})
	for _, k := range order {
		if err := p.SetWeight(p.nodes[k.a].Label, p.nodes[k.b].Label, weights[k]); err != nil {
			return nil, err
		}
	}
	return p, nil
}
