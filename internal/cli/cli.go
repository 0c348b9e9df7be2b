// Package cli implements the latab command-line interface.
//
// Commands read a dataset file, render it and write the result to stdout or,
// with --output, atomically to a file:
//
//   - latex: LaTeX table body, optionally transposed
//   - text: fixed-width plain-text table
//   - transpose: transpose an already rendered LaTeX table
//
// All commands support --verbose (-v) for debug-level logging on stderr.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/latab/internal/dataset"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "latab",
		Short:        "latab renders datasets as LaTeX or plain-text tables",
		Long:         `latab reads numeric datasets from JSON, YAML, TOML, CSV or TSV files and renders them as LaTeX table bodies or fixed-width text tables.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.latexCommand())
	root.AddCommand(c.textCommand())
	root.AddCommand(c.transposeCommand())
	return root
}

// emit writes data to the command's stdout, or to path when it is set.
func (c *CLI) emit(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := dataset.Save(path, data); err != nil {
		return err
	}
	c.Logger.Info("saved", "path", path, "bytes", len(data))
	return nil
}
