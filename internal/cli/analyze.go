package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/network"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/pipeline"
)

// outputFlags registers the flags shared by analyze and project.
func outputFlags(cmd *cobra.Command, flags *Config, configPath *string) {
	cmd.Flags().StringVarP(&flags.InputPath, "input", "i", "", "wide user × repo commit-count CSV")
	cmd.Flags().StringVarP(configPath, "config", "c", "", "config file (default ./"+defaultConfigFile+" if present)")
	cmd.Flags().StringVarP(&flags.OutDir, "out-dir", "o", "", "directory for relative output paths")
	cmd.Flags().StringVar(&flags.Weighting, "weighting", "", "projection edge weight: "+weightingList()+" (default "+string(network.DefaultWeighting)+")")
	cmd.Flags().StringVar(&flags.GraphJSON, "graph-json", "", "also write the projected graph as JSON")
	cmd.Flags().StringVar(&flags.GraphDOT, "graph-dot", "", "also write the projected graph as Graphviz DOT")
	cmd.Flags().StringVar(&flags.GraphSVG, "graph-svg", "", "also render the projected graph as SVG")
	cmd.Flags().StringVar(&flags.MetricsFile, "metrics-file", "", "write run metrics in Prometheus text format")
}

func weightingList() string {
	names := make([]string, len(network.Weightings))
	for i, w := range network.Weightings {
		names[i] = string(w)
	}
	return strings.Join(names, ", ")
}

// analyzeCommand creates the analyze command that runs the full pipeline.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		flags      Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "analyze [input.csv]",
		Short: "Compute closeness centrality of repositories",
		Long: `Compute closeness centrality of repositories in their shared-contributor network.

The input is a CSV with one row per user and one column per repository holding
commit counts. Repositories are linked when at least one user committed to
both. Closeness is computed on the whole network and on its largest connected
component; both results are written as CSV and the top of the component
ranking is printed to stdout.`,
		Example: `  contribnet analyze contributions.csv
  contribnet analyze -o results --graph-svg network.svg contributions.csv
  contribnet analyze --config contribnet.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, flags, args)
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), cfg)
		},
	}

	outputFlags(cmd, &flags, &configPath)
	cmd.Flags().StringVar(&flags.FullOutput, "full-output", "", "closeness over the full network (default "+pipeline.DefaultFullOutput+")")
	cmd.Flags().StringVar(&flags.GiantOutput, "giant-output", "", "closeness over the largest component (default "+pipeline.DefaultGiantOutput+")")
	cmd.Flags().IntVarP(&flags.Top, "top", "n", 0, fmt.Sprintf("summary length (default %d)", pipeline.DefaultTop))

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, cfg Config) error {
	if err := cfg.ensureOutDir(); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	opts := cfg.options()
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
	prog.done(fmt.Sprintf("Analyzed %d repos", res.Projected.NodeCount()))

	if res.Stats.Overwrites > 0 {
		printWarning(c.Err, "%d duplicate user/repo pairs, later counts kept", res.Stats.Overwrites)
	}
	printSuccess(c.Err, "Closeness computed")
	printStats(c.Err,
		stat{res.Stats.Users, "users"},
		stat{res.Stats.Repos, "repos"},
		stat{res.Stats.ProjectedEdges, "links"},
		stat{res.Stats.Components, "components"},
	)
	printKeyValue(c.Err, "component", fmt.Sprintf("%d of %d repos", res.Stats.ComponentSize, res.Stats.Repos))
	for _, p := range res.Written {
		printFile(c.Err, p)
	}

	return pipeline.WriteSummary(c.Out, res.GiantRanking, opts.Top)
}
