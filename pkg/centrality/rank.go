package centrality

import (
	"cmp"
	"slices"
)

// Score is one ranked repository.
type Score struct {
	Repo      string
	Closeness float64
}

// Ranking is an ordered list of scores.
type Ranking []Score

// Rank sorts scores by closeness, highest first, and by repository identifier
// among equal scores.
func Rank(scores Scores) Ranking {
	out := make(Ranking, 0, len(scores))
	for repo, c := range scores {
		out = append(out, Score{Repo: repo, Closeness: c})
	}
	slices.SortFunc(out, func(a, b Score) int {
		if c := cmp.Compare(b.Closeness, a.Closeness); c != 0 {
			return c
		}
		return cmp.Compare(a.Repo, b.Repo)
	})
	return out
}

// Top returns at most n leading entries. A negative n returns everything.
func (r Ranking) Top(n int) Ranking {
	if n < 0 || n >= len(r) {
		return r
	}
	return r[:n]
}

// InOrder lists scores following order, skipping identifiers without a score.
// It is used to write results in graph node order.
func (s Scores) InOrder(order []string) Ranking {
	out := make(Ranking, 0, len(s))
	for _, id := range order {
		if c, ok := s[id]; ok {
			out = append(out, Score{Repo: id, Closeness: c})
		}
	}
	return out
}
