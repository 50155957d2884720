// Package pipeline runs the contributor network analysis end to end.
//
// A run has these stages, executed in order on one goroutine:
//
//  1. load: read the wide user × repo commit table
//  2. reshape: melt it into (user, repo, commits) records with commits > 0
//  3. build: construct the bipartite user/repo graph
//  4. project: project it onto repos
//  5. closeness: score the full projection
//  6. component: extract the largest connected component
//  7. component-closeness: score the component on its own
//  8. write: replace the result files
//
// Files are written only once every computation has succeeded, so a failed
// run leaves earlier outputs untouched.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{InputPath: "contributions.csv"})
//	if err != nil {
//	    return err
//	}
//	pipeline.WriteSummary(os.Stdout, result.GiantRanking, 10)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/contrib"
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
)

const (
	// DefaultFullOutput receives closeness on the full projected graph.
	DefaultFullOutput = "closeness_centrality.csv"

	// DefaultGiantOutput receives closeness on the largest component.
	DefaultGiantOutput = "closeness_giant_centrality.csv"

	// DefaultTop is the number of summary lines.
	DefaultTop = 10
)

// Stage names reported to logs and hooks.
const (
	StageLoad               = "load"
	StageReshape            = "reshape"
	StageBuild              = "build"
	StageProject            = "project"
	StageCloseness          = "closeness"
	StageComponent          = "component"
	StageComponentCloseness = "component-closeness"
	StageWrite              = "write"
)

// Options configures a run.
type Options struct {
	// InputPath is the wide CSV to analyze. Required.
	InputPath string

	FullOutput  string
	GiantOutput string

	// Top bounds the summary. Zero means DefaultTop.
	Top int

	Weighting network.Weighting

	// Optional artifacts of the projected graph; empty paths are skipped.
	GraphJSON string
	GraphDOT  string
	GraphSVG  string

	// MetricsFile is written by the caller once the run ends. It is only
	// checked here so it cannot collide with the input or another output.
	MetricsFile string

	// SkipCentrality stops after projection and writes only the graph
	// artifacts. The project command uses it.
	SkipCentrality bool

	Logger *log.Logger

	validated bool
}

// Result holds everything a run computed.
type Result struct {
	RunID string

	Table     *contrib.Table
	Records   []contrib.Record
	Bipartite *network.Bipartite
	Projected *network.RepoGraph

	// Component lists the repos of the largest connected component.
	Component []string
	Giant     *network.RepoGraph

	FullScores  centrality.Scores
	GiantScores centrality.Scores

	// FullRanking is in projected node order, as written to FullOutput.
	// GiantRanking is sorted by score and feeds the summary.
	FullRanking  centrality.Ranking
	GiantRanking centrality.Ranking

	// Written lists the files replaced by the run, in write order.
	Written []string

	Stats Stats
}

// Stats records sizes and timings of a run.
type Stats struct {
	Users          int
	Repos          int
	Records        int
	BipartiteEdges int
	Overwrites     int
	ProjectedEdges int
	Components     int
	ComponentSize  int
	Stages         map[string]time.Duration
	Total          time.Duration
}

// ValidateAndSetDefaults checks required fields and fills defaults. Calling it
// again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.InputPath == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "input path is required")
	}
	if o.FullOutput == "" {
		o.FullOutput = DefaultFullOutput
	}
	if o.GiantOutput == "" {
		o.GiantOutput = DefaultGiantOutput
	}
	if o.Top < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "top must not be negative, got %d", o.Top)
	}
	if o.Top == 0 {
		o.Top = DefaultTop
	}
	if o.Weighting == "" {
		o.Weighting = network.DefaultWeighting
	}
	w, err := network.ParseWeighting(string(o.Weighting))
	if err != nil {
		return err
	}
	o.Weighting = w

	if err := errs.ValidateOutputPaths(o.InputPath, o.outputs()...); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) outputs() []string {
	var out []string
	if !o.SkipCentrality {
		out = append(out, o.FullOutput, o.GiantOutput)
	}
	for _, p := range []string{o.GraphJSON, o.GraphDOT, o.GraphSVG, o.MetricsFile} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
