package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/io"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

const (
	minPenWidth = 1.0
	maxPenWidth = 6.0
)

// Options configures DOT output.
type Options struct {
	// Scores, when set, appends each repo's closeness to its label.
	Scores centrality.Scores

	// Highlight lists repos drawn filled, typically the largest component.
	Highlight []string
}

// ToDOT converts g to an undirected Graphviz graph. Nodes appear in g's
// insertion order and edges in [network.RepoGraph.Edges] order, so equal
// graphs produce identical text.
func ToDOT(g *network.RepoGraph, opts Options) string {
	highlight := make(map[string]bool, len(opts.Highlight))
	for _, id := range opts.Highlight {
		highlight[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(id, opts.Scores))}
		if highlight[id] {
			attrs = append(attrs, "fillcolor=\"#cfe8ff\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	edges := g.Edges()
	var heaviest float64
	for _, e := range edges {
		heaviest = max(heaviest, e.Weight)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -- %q [weight=%s, penwidth=%.2f];\n",
			e.From, e.To, io.FormatScore(e.Weight), penWidth(e.Weight, heaviest))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(id string, scores centrality.Scores) string {
	c, ok := scores[id]
	if !ok {
		return id
	}
	return fmt.Sprintf("%s\n%.4f", id, c)
}

func penWidth(w, heaviest float64) float64 {
	if heaviest <= 0 {
		return minPenWidth
	}
	return minPenWidth + (maxPenWidth-minPenWidth)*w/heaviest
}
