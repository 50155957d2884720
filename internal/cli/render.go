package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/centrality"
	rio "github.com/ZacharySOlsen/weighting-ethereum/pkg/io"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/render"
)

type renderFlags struct {
	dot      string
	svg      string
	noScores bool
}

// renderCommand creates the render command that draws a saved graph JSON.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Draw a saved repository graph as DOT or SVG",
		Long: `Draw a repository graph written by 'analyze --graph-json' or 'project'.

With neither --dot nor --svg the DOT document is printed to stdout. Closeness
scores stored in the JSON are shown in node labels unless --no-scores is set,
and the largest connected component is highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.dot, "dot", "", "write Graphviz DOT to this path")
	cmd.Flags().StringVar(&flags.svg, "svg", "", "write SVG to this path")
	cmd.Flags().BoolVar(&flags.noScores, "no-scores", false, "omit closeness scores from labels")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, flags renderFlags) error {
	logger := loggerFromContext(ctx)

	g, weighting, scores, err := rio.ImportGraphJSON(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("loaded graph", "repos", g.NodeCount(), "edges", g.EdgeCount(), "weighting", weighting)

	opts := render.Options{}
	if !flags.noScores && len(scores) > 0 {
		opts.Scores = scores
	}
	if g.NodeCount() > 0 {
		if comp, err := centrality.LargestComponent(g); err == nil {
			opts.Highlight = comp
		}
	}
	dot := render.ToDOT(g, opts)

	if flags.dot == "" && flags.svg == "" {
		_, err := io.WriteString(c.Out, dot)
		return err
	}

	if flags.dot != "" {
		if err := rio.WriteFile(flags.dot, []byte(dot)); err != nil {
			return err
		}
		printFile(c.Err, flags.dot)
	}
	if flags.svg != "" {
		printInfo(c.Err, "Rendering %d repos with Graphviz", g.NodeCount())
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := rio.WriteFile(flags.svg, svg); err != nil {
			return err
		}
		printFile(c.Err, flags.svg)
	}
	return nil
}
