package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

type graphDoc struct {
	Weighting network.Weighting `json:"weighting,omitempty"`
	Nodes     []nodeDoc         `json:"nodes"`
	Edges     []edgeDoc         `json:"edges"`
}

type nodeDoc struct {
	ID        string   `json:"id"`
	Degree    int      `json:"degree"`
	Closeness *float64 `json:"closeness,omitempty"`
}

type edgeDoc struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// WriteGraphJSON encodes g as JSON. scores is optional; when set, each node
// with a score carries it. weighting records how edge weights were derived.
func WriteGraphJSON(w io.Writer, g *network.RepoGraph, weighting network.Weighting, scores centrality.Scores) error {
	out := graphDoc{
		Weighting: weighting,
		Nodes:     make([]nodeDoc, 0, g.NodeCount()),
		Edges:     make([]edgeDoc, 0, g.EdgeCount()),
	}
	for _, id := range g.Nodes() {
		nd := nodeDoc{ID: id, Degree: g.Degree(id)}
		if c, ok := scores[id]; ok {
			nd.Closeness = &c
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeDoc{Source: e.From, Target: e.To, Weight: e.Weight})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errs.WrapIO(err, "encode graph")
	}
	return nil
}

// ExportGraphJSON atomically writes g as JSON to path.
func ExportGraphJSON(path string, g *network.RepoGraph, weighting network.Weighting, scores centrality.Scores) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return WriteGraphJSON(w, g, weighting, scores)
	})
}

// ReadGraphJSON decodes a graph written by [WriteGraphJSON]. It returns the
// graph, its weighting and the scores present in the document (possibly
// empty). Edges naming unknown nodes are a PARSE_ERROR.
func ReadGraphJSON(r io.Reader) (*network.RepoGraph, network.Weighting, centrality.Scores, error) {
	var doc graphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, "", nil, errs.Wrap(errs.ErrCodeParse, err, "decode graph")
	}

	ids := make([]string, len(doc.Nodes))
	scores := make(centrality.Scores)
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, "", nil, errs.New(errs.ErrCodeParse, "node %d has no id", i)
		}
		ids[i] = n.ID
		if n.Closeness != nil {
			scores[n.ID] = *n.Closeness
		}
	}

	g := network.NewRepoGraph(ids)
	for _, e := range doc.Edges {
		if err := g.SetWeight(e.Source, e.Target, e.Weight); err != nil {
			return nil, "", nil, errs.Wrap(errs.ErrCodeParse, err, "edge %s-%s", e.Source, e.Target)
		}
	}
	return g, doc.Weighting, scores, nil
}

// ImportGraphJSON reads a graph JSON file at path.
func ImportGraphJSON(path string) (*network.RepoGraph, network.Weighting, centrality.Scores, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, errs.WrapIO(err, "open %s", path)
	}
	defer f.Close()

	g, w, s, err := ReadGraphJSON(f)
	if err != nil {
		return nil, "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, w, s, nil
}
