// Package network builds the user–repository contribution graph and its
// projection onto repositories.
//
// # Bipartite Graph
//
// [BuildBipartite] turns contribution records into a weighted bipartite
// graph: one [KindUser] node per distinct user, one [KindRepo] node per
// distinct repository, and one edge per record weighted by its commit count.
// Users and repositories have separate identifier namespaces, so a user and a
// repository with the same name are still two nodes and the graph never has
// an edge inside one partition.
//
// If a (user, repo) pair occurs more than once, the later record overwrites
// the earlier weight. [Bipartite.Overwrites] reports how often that happened.
//
// # Projection
//
// [ProjectRepos] derives the one-mode repository graph: two repositories are
// linked when at least one user contributed to both. The edge weight depends
// on the [Weighting] scheme:
//
//   - [WeightSharedUsers]: the number of shared contributors (the standard
//     weighted bipartite projection, and the default)
//   - [WeightMinCommits]: the sum over shared contributors of the smaller of
//     their two commit counts
//   - [WeightSumCommits]: the sum over shared contributors of both commit counts
//
// The schemes are not interchangeable; each produces different weights for
// the same graph. Repositories without shared contributors stay in the
// projection as isolated nodes.
//
// Both graphs are stored in gonum simple graphs; [RepoGraph.Graph] exposes
// the underlying graph to gonum algorithms.
//
// # Ordering
//
// Node iteration order is insertion order everywhere in this package, which
// makes every derived result reproducible for a fixed input.
package network
