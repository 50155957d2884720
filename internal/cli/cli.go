// Package cli implements the contribnet command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ZacharySOlsen/weighting-ethereum/pkg/buildinfo"
	"github.com/ZacharySOlsen/weighting-ethereum/pkg/pipeline"
)

const appName = "contribnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands. Out receives the result summary
// and nothing else; logs and status lines go to Err.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// New creates a CLI writing results to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &CLI{
		Logger: newLogger(stderr, level),
		Out:    stdout,
		Err:    stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Rank repositories by closeness in their shared-contributor network",
		Long: `contribnet reads a user × repository commit-count table, links repositories
that share contributors and ranks them by closeness centrality, both over the
whole network and over its largest connected component.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		// main prints failures itself.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.projectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
