package centrality_test

import (
	"fmt"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

func ExampleCloseness() {
	// geth - solidity - remix, plus an unrelated repository.
	g := network.NewRepoGraph([]string{"geth", "solidity", "remix", "lonely"})
	_ = g.SetWeight("geth", "solidity", 3)
	_ = g.SetWeight("solidity", "remix", 1)

	scores, _ := centrality.Closeness(g)
	for _, s := range centrality.Rank(scores) {
		fmt.Printf("%s %.4f\n", s.Repo, s.Closeness)
	}
	// Output:
	// solidity 0.6667
	// geth 0.4444
	// remix 0.4444
	// lonely 0.0000
}

func ExampleLargestComponent() {
	g := network.NewRepoGraph([]string{"a", "b", "c", "d", "e"})
	_ = g.SetWeight("a", "b", 1)
	_ = g.SetWeight("c", "d", 1)
	_ = g.SetWeight("d", "e", 1)

	ids, _ := centrality.LargestComponent(g)
	fmt.Println(ids)
	// Output:
	// [c d e]
}
