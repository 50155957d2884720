package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/contrib"
	errs "github.com/ZacharySOlsen/weighting-ethereum/pkg/errors"
	rio "github.com/ZacharySOlsen/weighting-ethereum/pkg/io"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/observability"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/render"
)

// Runner executes analysis runs. It keeps no state between runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// run carries per-execution state through the stages.
type run struct {
	id     string
	opts   Options
	logger *log.Logger
	res    *Result
}

// Execute validates opts and runs every stage. The context is checked before
// each stage; cancellation aborts the run before any file is written.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	id := uuid.NewString()
	x := &run{
		id:     id,
		opts:   opts,
		logger: opts.Logger.With("run", id[:8]),
		res: &Result{
			RunID: id,
			Stats: Stats{Stages: make(map[string]time.Duration)},
		},
	}

	start := time.Now()
	if err := x.analyze(ctx); err != nil {
		return nil, err
	}
	if err := x.stage(ctx, StageWrite, x.write); err != nil {
		return nil, err
	}
	x.res.Stats.Total = time.Since(start)

	x.logger.Debug("run complete", "duration", x.res.Stats.Total, "files", len(x.res.Written))
	return x.res, nil
}

func (x *run) analyze(ctx context.Context) error {
	res := x.res

	if err := x.stage(ctx, StageLoad, func(context.Context) error {
		t, err := contrib.LoadWide(x.opts.InputPath)
		if err != nil {
			return err
		}
		res.Table = t
		x.logger.Info("loaded contributions", "users", t.UserCount(), "repos", t.RepoCount())
		return nil
	}); err != nil {
		return err
	}

	if err := x.stage(ctx, StageReshape, func(context.Context) error {
		res.Records = contrib.Reshape(res.Table)
		if len(res.Records) == 0 {
			return errs.New(errs.ErrCodeData, "%s has no positive commit counts", x.opts.InputPath)
		}
		res.Stats.Records = len(res.Records)
		return nil
	}); err != nil {
		return err
	}

	if err := x.stage(ctx, StageBuild, func(context.Context) error {
		b, err := network.BuildBipartite(res.Records)
		if err != nil {
			return err
		}
		res.Bipartite = b
		res.Stats.Users = len(b.Users())
		res.Stats.Repos = len(b.Repos())
		res.Stats.BipartiteEdges = b.EdgeCount()
		res.Stats.Overwrites = b.Overwrites()
		if n := b.Overwrites(); n > 0 {
			x.logger.Warn("duplicate user/repo pairs, later counts kept", "pairs", n)
		}
		x.logger.Info("built contribution graph",
			"users", res.Stats.Users,
			"repos", res.Stats.Repos,
			"edges", res.Stats.BipartiteEdges)
		return nil
	}); err != nil {
		return err
	}

	if err := x.stage(ctx, StageProject, func(context.Context) error {
		g, err := network.ProjectRepos(res.Bipartite, res.Bipartite.Repos(), x.opts.Weighting)
		if err != nil {
			return err
		}
		res.Projected = g
		res.Stats.ProjectedEdges = g.EdgeCount()
		x.logger.Info("projected onto repos",
			"repos", g.NodeCount(),
			"edges", g.EdgeCount(),
			"weighting", x.opts.Weighting)
		return nil
	}); err != nil {
		return err
	}

	if x.opts.SkipCentrality {
		return nil
	}

	if err := x.stage(ctx, StageCloseness, func(context.Context) error {
		scores, err := centrality.Closeness(res.Projected)
		if err != nil {
			return err
		}
		res.FullScores = scores
		res.FullRanking = scores.InOrder(res.Projected.Nodes())
		return nil
	}); err != nil {
		return err
	}

	if err := x.stage(ctx, StageComponent, func(context.Context) error {
		comps := centrality.Components(res.Projected)
		giant, err := res.Projected.Subgraph(comps[0])
		if err != nil {
			return err
		}
		res.Component = comps[0]
		res.Giant = giant
		res.Stats.Components = len(comps)
		res.Stats.ComponentSize = len(comps[0])
		x.logger.Info("largest connected component",
			"components", len(comps),
			"repos", giant.NodeCount(),
			"edges", giant.EdgeCount())
		return nil
	}); err != nil {
		return err
	}

	return x.stage(ctx, StageComponentCloseness, func(context.Context) error {
		scores, err := centrality.Closeness(res.Giant)
		if err != nil {
			return err
		}
		res.GiantScores = scores
		res.GiantRanking = centrality.Rank(scores)
		return nil
	})
}

// write replaces the result files. DOT and SVG are rendered before anything
// touches disk, so a rendering failure leaves every output untouched.
func (x *run) write(ctx context.Context) error {
	res := x.res

	var dot string
	var svg []byte
	if x.opts.GraphDOT != "" || x.opts.GraphSVG != "" {
		dot = render.ToDOT(res.Projected, render.Options{
			Scores:    res.FullScores,
			Highlight: res.Component,
		})
	}
	if x.opts.GraphSVG != "" {
		var err error
		if svg, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
	}

	if !x.opts.SkipCentrality {
		if err := x.output(ctx, "full", x.opts.FullOutput, func(p string) error {
			return rio.ExportCentralityCSV(p, res.FullRanking)
		}); err != nil {
			return err
		}
		if err := x.output(ctx, "component", x.opts.GiantOutput, func(p string) error {
			return rio.ExportCentralityCSV(p, res.GiantScores.InOrder(res.Giant.Nodes()))
		}); err != nil {
			return err
		}
	}
	if x.opts.GraphJSON != "" {
		if err := x.output(ctx, "graph-json", x.opts.GraphJSON, func(p string) error {
			return rio.ExportGraphJSON(p, res.Projected, x.opts.Weighting, res.FullScores)
		}); err != nil {
			return err
		}
	}
	if x.opts.GraphDOT != "" {
		if err := x.output(ctx, "graph-dot", x.opts.GraphDOT, func(p string) error {
			return rio.WriteFile(p, []byte(dot))
		}); err != nil {
			return err
		}
	}
	if x.opts.GraphSVG != "" {
		return x.output(ctx, "graph-svg", x.opts.GraphSVG, func(p string) error {
			return rio.WriteFile(p, svg)
		})
	}
	return nil
}

func (x *run) output(ctx context.Context, kind, path string, write func(string) error) error {
	if err := write(path); err != nil {
		return err
	}
	x.res.Written = append(x.res.Written, path)
	observability.Output().OnOutputWritten(ctx, x.id, kind, path)
	x.logger.Debug("wrote output", "kind", kind, "path", path)
	return nil
}

// stage runs fn as the named stage, timing it and reporting hooks. Errors
// are prefixed with the stage name.
func (x *run) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, x.id, name)
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	hooks.OnStageComplete(ctx, x.id, name, elapsed, err)

	x.res.Stats.Stages[name] = elapsed
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	x.logger.Debug("stage done", "stage", name, "duration", elapsed)
	return nil
}

// applyLogger sets the runner's logger on opts when none is set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
