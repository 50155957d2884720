// Package pkg holds the libraries behind contribnet, which ranks repositories
// by how centrally they sit in a network of shared contributors.
//
// # Overview
//
// Data flows through the packages in one direction:
//
//	wide commit-count CSV
//	         ↓
//	    [contrib] (load the table, melt it into positive records)
//	         ↓
//	    [network] (bipartite user/repo graph, projection onto repos)
//	         ↓
//	    [centrality] (closeness, connected components, ranking)
//	         ↓
//	    [io] / [render] (centrality CSV, graph JSON, DOT, SVG)
//
// [pipeline] runs these stages in order and [observability] exposes hooks
// around them. [errors] defines the coded errors every package returns.
//
// # Quick Start
//
//	table, err := contrib.LoadWide("contributions.csv")
//	if err != nil {
//	    return err
//	}
//	b, err := network.BuildBipartite(contrib.Reshape(table))
//	if err != nil {
//	    return err
//	}
//	repos, err := network.ProjectRepos(b, b.Repos(), network.WeightSharedUsers)
//	if err != nil {
//	    return err
//	}
//	scores, err := centrality.Closeness(repos)
//	if err != nil {
//	    return err
//	}
//	for _, s := range centrality.Rank(scores).Top(10) {
//	    fmt.Println(s.Repo, s.Closeness)
//	}
//
// [contrib]: github.com/ZacharySOlsen/weighting-ethereum/pkg/contrib
// [network]: github.com/ZacharySOlsen/weighting-ethereum/pkg/network
// [centrality]: github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality
// [io]: github.com/ZacharySOlsen/weighting-ethereum/pkg/io
// [render]: github.com/ZacharySOlsen/weighting-ethereum/pkg/render
// [pipeline]: github.com/ZacharySOlsen/weighting-ethereum/pkg/pipeline
// [observability]: github.com/ZacharySOlsen/weighting-ethereum/pkg/observability
// [errors]: github.com/ZacharySOlsen/weighting-ethereum/pkg/errors
package pkg
