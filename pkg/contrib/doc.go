// Package contrib loads wide commit-count tables and reshapes them into
// contribution records.
//
// # Input Format
//
// The input is a CSV file with one row per user and one column per
// repository. The first column holds the user identifier, every other cell
// holds the number of commits that user made to the repository named in the
// header:
//
//	user,go-ethereum,solidity,web3.js
//	alice,5,3,0
//	bob,2,,0
//	carol,0,1,
//
// Cells may be integers or floats. Empty cells and the usual spreadsheet
// placeholders (NA, NaN, null, ...) are treated as absent rather than zero.
//
// # Reshaping
//
// [Melt] converts the wide table into long form, one [Record] per present
// cell, walking the table column by column. [Filter] drops records without
// commits, and [Reshape] does both:
//
//	t, err := contrib.LoadWide("main_repos_commits_count.csv")
//	if err != nil {
//	    return err
//	}
//	records := contrib.Reshape(t)
//
// Users whose commits are all zero or absent produce no records and so never
// appear in the contribution graph.
package contrib
