package contrib_test

import (
	"fmt"
	"strings"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/contrib"
)

func ExampleReshape() {
	in := "user,go-ethereum,solidity\nalice,5,3\nbob,2,0\ncarol,,1\n"
	t, err := contrib.ReadWide(strings.NewReader(in))
	if err != nil {
		panic(err)
	}

	for _, r := range contrib.Reshape(t) {
		fmt.Println(r.User, r.Repo, r.Commits)
	}
	// Output:
	// alice go-ethereum 5
	// bob go-ethereum 2
	// alice solidity 3
	// carol solidity 1
}
