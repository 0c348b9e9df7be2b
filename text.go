package latab

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
)

// TextOptions controls the plain-text renderer.
type TextOptions struct {
	// Title is the first line of the output.
	Title string
	// Header holds the column names. Its length sets the divider width.
	Header []string
	// Width is the display width every cell is right-justified to.
	Width int
	// Precision is the number of digits after the decimal point.
	Precision int
	// Logger receives diagnostics about cells that cannot be rendered.
	// Default: log.Default().
	Logger *log.Logger
}

// DefaultTextOptions returns options with a column width of 10 and two digits
// of precision.
func DefaultTextOptions() TextOptions {
	return TextOptions{Width: 10, Precision: 2}
}

// colGap follows every cell and header entry.
const colGap = "     "

type textRenderer struct {
	opts    TextOptions
	divider string
	logger  *log.Logger
}

func newTextRenderer(opts TextOptions) *textRenderer {
	opts.Width = max(opts.Width, 0)
	opts.Precision = max(opts.Precision, 0)
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	n := (opts.Width+len(colGap))*len(opts.Header) - (len(colGap) - 1)
	return &textRenderer{
		opts:    opts,
		divider: strings.Repeat("-", max(n, 0)),
		logger:  logger,
	}
}

func (r *textRenderer) head() []string {
	var sb strings.Builder
	for _, h := range r.opts.Header {
		sb.WriteString(padLeft(h, r.opts.Width))
		sb.WriteString(colGap)
	}
	return []string{r.opts.Title, r.divider, sb.String(), r.divider}
}

func (r *textRenderer) row(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		switch c.Kind() {
		case KindNumber:
			sb.WriteString(padLeft(formatFixed(c.num, r.opts.Precision), r.opts.Width))
		case KindText:
			sb.WriteString(padLeft(c.text, r.opts.Width))
		default:
			r.logger.Warn("could not render cell", "value", c.text)
			continue
		}
		sb.WriteString(colGap)
	}
	return sb.String()
}

// TextLines renders t as a fixed-width text table: title, divider, header,
// divider, one line per row and a closing divider. Cells that are neither
// numbers nor text are logged and left out of their row.
func TextLines(t Table, opts TextOptions) []string {
	r := newTextRenderer(opts)
	lines := r.head()
	for _, row := range t {
		lines = append(lines, r.row(row))
	}
	return append(lines, r.divider)
}

// WriteText writes the lines of [TextLines] to w, each followed by a newline.
func WriteText(w io.Writer, t Table, opts TextOptions) error {
	for _, line := range TextLines(t, opts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// padLeft right-justifies s to width display columns. Longer strings are
// returned unchanged.
func padLeft(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
