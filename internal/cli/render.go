package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/latab"
	"github.com/bjaus/latab/internal/dataset"
)

// latexOpts holds the flags of the latex command.
type latexOpts struct {
	output    string // output file path, stdout when empty
	best      string // "none", "max" or "min"
	axis      string // "column" or "row"
	window    int    // comparison window length, <= 0 for the whole axis
	precision int    // digits after the decimal point
	hline     int    // \hline interval, <= 0 disables
	transpose bool   // transpose the rendered body
}

func (c *CLI) latexCommand() *cobra.Command {
	opts := latexOpts{best: "none", axis: "column", precision: latab.DefaultLatexOptions().Precision}

	cmd := &cobra.Command{
		Use:   "latex [file]",
		Short: "Render a dataset as a LaTeX table body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLatex(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.best, "best", opts.best, "highlight best value: none, max or min")
	cmd.Flags().StringVar(&opts.axis, "axis", opts.axis, "comparison axis: column or row")
	cmd.Flags().IntVar(&opts.window, "window", 0, "comparison window length (0 = whole axis)")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", opts.precision, "digits after the decimal point")
	cmd.Flags().IntVar(&opts.hline, "hline", 0, "insert \\hline every N rows (0 = never)")
	cmd.Flags().BoolVarP(&opts.transpose, "transpose", "t", false, "transpose the rendered table")

	return cmd
}

func (c *CLI) runLatex(cmd *cobra.Command, path string, opts latexOpts) error {
	best, err := latab.ParseBest(opts.best)
	if err != nil {
		return err
	}
	axis, err := latab.ParseAxis(opts.axis)
	if err != nil {
		return err
	}

	doc, err := c.load(path)
	if err != nil {
		return err
	}

	format := latab.Latex
	if opts.transpose {
		format = latab.Transpose
	}
	render := latab.DefaultOptions()
	render.Latex = latab.LatexOptions{
		Labels:    doc.LabelCells(),
		Best:      best,
		Axis:      axis,
		Window:    opts.window,
		Precision: opts.precision,
		HLine:     opts.hline,
	}

	prog := newProgress(c.Logger)
	data, err := latab.Marshal(format, doc.Table(), render)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d rows as %s", len(doc.Rows), format))
	return c.emit(cmd, opts.output, data)
}

// textOpts holds the flags of the text command.
type textOpts struct {
	output    string   // output file path, stdout when empty
	title     string   // overrides the dataset title
	header    []string // overrides the dataset header
	width     int      // column width
	precision int      // digits after the decimal point
}

func (c *CLI) textCommand() *cobra.Command {
	defaults := latab.DefaultTextOptions()
	opts := textOpts{width: defaults.Width, precision: defaults.Precision}

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Render a dataset as a fixed-width text table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runText(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.title, "title", "", "table title (default from dataset)")
	cmd.Flags().StringSliceVar(&opts.header, "header", nil, "column headers (default from dataset)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "column width")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", opts.precision, "digits after the decimal point")

	return cmd
}

func (c *CLI) runText(cmd *cobra.Command, path string, opts textOpts) error {
	doc, err := c.load(path)
	if err != nil {
		return err
	}

	render := latab.DefaultOptions()
	render.Text = latab.TextOptions{
		Title:     doc.Title,
		Header:    doc.Header,
		Width:     opts.width,
		Precision: opts.precision,
		Logger:    c.Logger,
	}
	if opts.title != "" {
		render.Text.Title = opts.title
	}
	if len(opts.header) > 0 {
		render.Text.Header = opts.header
	}

	data, err := latab.Marshal(latab.Text, doc.Table(), render)
	if err != nil {
		return err
	}
	return c.emit(cmd, opts.output, data)
}

func (c *CLI) transposeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transpose [file]",
		Short: "Transpose a rendered LaTeX table",
		Long:  `Transpose reads the "&"-separated rows of a LaTeX table and writes them transposed with \toprule, \midrule and \bottomrule. Backslashes inside cells are dropped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := latab.TransposeLatex(string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return c.emit(cmd, output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) load(path string) (*dataset.Document, error) {
	doc, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded dataset", "path", path, "rows", len(doc.Rows))
	return doc, nil
}
