// Package centrality ranks repositories of a projected contribution graph.
//
// # Closeness
//
// [Closeness] scores each node by how close it sits to the nodes it can
// reach, counting hops (edge weights are not distances):
//
//	C(u) = (r-1)/Σd(u,v) · (r-1)/(n-1)
//
// where r is the number of nodes reachable from u (u included), n the number
// of nodes in the graph, and the sum runs over the reachable nodes. The
// second factor scales scores down in disconnected graphs so that nodes in
// small components do not outrank nodes in large ones. In a connected graph
// it is 1 and C(u) is the reciprocal of the average distance. Scores are in
// [0, 1]; isolated nodes score exactly 0.
//
// # Components
//
// [Components] lists connected components largest first and
// [LargestComponent] picks the first one. When several components share the
// maximum size, the one holding the lexicographically smallest repository
// identifier wins, so the choice does not depend on map iteration order.
//
// # Ranking
//
// [Rank] orders scores descending, breaking ties by repository identifier.
//
//	scores, err := centrality.Closeness(g)
//	if err != nil {
//	    return err
//	}
//	for _, s := range centrality.Rank(scores).Top(10) {
//	    fmt.Println(s.Repo, s.Closeness)
//	}
package centrality
