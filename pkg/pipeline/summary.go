package pipeline

import (
	"fmt"
	"io"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	rio "github.com/ZacharySOlsen/weighting-ethereum/pkg/io"
)

// WriteSummary prints the header line and the first top entries of ranking
// as "<repo> <score>" lines.
func WriteSummary(w io.Writer, ranking centrality.Ranking, top int) error {
	if top <= 0 {
		top = DefaultTop
	}
	if _, err := fmt.Fprintf(w, "Top %d repos by closeness (largest connected component):\n", top); err != nil {
		return err
	}
	for _, s := range ranking.Top(top) {
		if _, err := fmt.Fprintf(w, "%s %s\n", s.Repo, rio.FormatScore(s.Closeness)); err != nil {
			return err
		}
	}
	return nil
}
