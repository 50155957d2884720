// Package io reads and writes analysis results.
//
// # Centrality CSV
//
// Closeness scores are written as a three-column CSV with an unnamed 0-based
// index column, the repository identifier and its score:
//
//	,repo,closeness
//	0,go-ethereum,1.0
//	1,solidity,0.6666666666666666
//
// Scores use the shortest representation that reads back to the same
// float64, with integral values written as "1.0" rather than "1".
// [ReadCentralityCSV] accepts this layout as well as the same file without
// the index column, so written results round-trip exactly.
//
// [ExportCentralityCSV] writes to a temporary file in the destination
// directory and renames it into place: a failed run never leaves a truncated
// result behind, and a previous result is only replaced by a complete one.
//
// # Graph JSON
//
// The projected repository graph can be exported for other tools:
//
//	{
//	  "weighting": "shared_users",
//	  "nodes": [
//	    {"id": "go-ethereum", "degree": 1, "closeness": 1.0},
//	    {"id": "solidity", "degree": 1, "closeness": 1.0}
//	  ],
//	  "edges": [
//	    {"source": "go-ethereum", "target": "solidity", "weight": 1}
//	  ]
//	}
//
// "closeness" is omitted when no scores are given. [ReadGraphJSON] rebuilds a
// [network.RepoGraph] from this format.
//
// [network.RepoGraph]: github.com/ZacharySOlsen/weighting-ethereum/pkg/network
package io
