package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// defaultGraphJSON is written by project when no graph output is requested.
const defaultGraphJSON = "repo_graph.json"

// projectCommand creates the project command that stops after projection.
func (c *CLI) projectCommand() *cobra.Command {
	var (
		flags      Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "project [input.csv]",
		Short: "Write the projected repository graph",
		Long: `Build the repository graph from a commit-count CSV and write it without
computing centrality.

Without --graph-json, --graph-dot or --graph-svg the graph is written as JSON
to ` + defaultGraphJSON + `. A saved JSON graph can be drawn later with 'render'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, flags, args)
			if err != nil {
				return err
			}
			return c.runProject(cmd.Context(), cfg)
		},
	}

	outputFlags(cmd, &flags, &configPath)
	return cmd
}

func (c *CLI) runProject(ctx context.Context, cfg Config) error {
	if cfg.GraphJSON == "" && cfg.GraphDOT == "" && cfg.GraphSVG == "" {
		cfg.GraphJSON = defaultGraphJSON
	}

	if err := cfg.ensureOutDir(); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	opts := cfg.options()
	opts.SkipCentrality = true
	opts.Logger = logger

	opts.MetricsFile = cfg.under(cfg.MetricsFile)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	flush := startMetrics(opts.MetricsFile)
	prog := newProgress(logger)
	res, err := c.newRunner().Execute(ctx, opts)
	if ferr := flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Projected %d repos", res.Projected.NodeCount()))

	printSuccess(c.Err, "Repository graph written")
	printStats(c.Err,
		stat{res.Projected.NodeCount(), "repos"},
		stat{res.Projected.EdgeCount(), "links"},
	)
	for _, p := range res.Written {
		printFile(c.Err, p)
	}
	return nil
}
