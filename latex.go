package latab

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Best selects which extremal value, if any, is set in bold.
type Best int

const (
	BestNone Best = iota
	BestMax
	BestMin
)

func (b Best) String() string {
	switch b {
	case BestMax:
		return "max"
	case BestMin:
		return "min"
	default:
		return "none"
	}
}

// ParseBest parses "none", "max" or "min".
func ParseBest(s string) (Best, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BestNone, nil
	case "max":
		return BestMax, nil
	case "min":
		return BestMin, nil
	}
	return BestNone, fmt.Errorf("%w: best %q", ErrInvalidOption, s)
}

// Axis selects the direction a comparison window slides in.
type Axis int

const (
	ByColumn Axis = iota // fixed column, window over rows
	ByRow                // fixed row, window over columns
)

func (a Axis) String() string {
	if a == ByRow {
		return "row"
	}
	return "column"
}

// ParseAxis parses "column" or "row".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "column", "col":
		return ByColumn, nil
	case "row":
		return ByRow, nil
	}
	return ByColumn, fmt.Errorf("%w: axis %q", ErrInvalidOption, s)
}

// LatexOptions controls [WriteLatex].
type LatexOptions struct {
	// Labels are written at the start of each row. Rows without a label get
	// an empty one.
	Labels []Cell
	// Best enables bold highlighting of the maximum or minimum.
	Best Best
	// Axis is the direction the comparison window slides in.
	Axis Axis
	// Window is the length of the comparison window. Zero or negative
	// compares against the whole axis.
	Window int
	// Precision is the number of digits after the decimal point.
	Precision int
	// HLine appends \hline after every HLine-th row. Zero or negative
	// disables it.
	HLine int
}

// DefaultLatexOptions returns options with one digit of precision and no
// highlighting or rules.
func DefaultLatexOptions() LatexOptions {
	return LatexOptions{Precision: 1}
}

const (
	latexSep       = " & "
	latexLineBreak = `\\`
	latexHLine     = `\hline`
)

var latexEscaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
	`\`, `\textbackslash{}`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
)

// Escape replaces LaTeX special characters in s with their safe forms.
// Replacement is single-pass, so inserted backslashes and braces are never
// escaped again.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}

// RenderLatex renders t as a LaTeX table body and returns it.
func RenderLatex(t Table, opts LatexOptions) (string, error) {
	var sb strings.Builder
	if err := WriteLatex(&sb, t, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteLatex writes one LaTeX row per table row to w. Each row starts with
// its label followed by the "&"-separated cells and ends with a line break.
func WriteLatex(w io.Writer, t Table, opts LatexOptions) error {
	grid, err := latexGrid(t, opts)
	if err != nil {
		return err
	}
	for i, row := range grid {
		line := strings.Join(row, latexSep) + " " + latexLineBreak
		if opts.HLine > 0 && (i+1)%opts.HLine == 0 {
			line += latexHLine
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// latexGrid formats every row of t as its label followed by the formatted,
// escaped and possibly bold cells.
func latexGrid(t Table, opts LatexOptions) ([][]string, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	highlight := (opts.Best == BestMax || opts.Best == BestMin) && t.Numeric()
	prec := max(opts.Precision, 0)

	grid := make([][]string, len(t))
	for i, row := range t {
		out := make([]string, 0, len(row)+1)
		label := ""
		if i < len(opts.Labels) {
			label = formatLatexCell(opts.Labels[i], prec)
		}
		out = append(out, label)
		for j, c := range row {
			s := formatLatexCell(c, prec)
			if highlight && isBest(t, i, j, opts) {
				s = `\bf{` + s + `}`
			}
			out = append(out, s)
		}
		grid[i] = out
	}
	return grid, nil
}

// formatLatexCell renders numbers in fixed notation and escapes text.
// Invalid cells render empty.
func formatLatexCell(c Cell, prec int) string {
	if c.Kind() == KindInvalid {
		return ""
	}
	if f, ok := c.Float(); ok {
		return formatFixed(f, prec)
	}
	return Escape(c.String())
}

// formatFixed formats f with prec digits after the decimal point. Infinities
// and NaN are spelled inf, -inf and nan.
func formatFixed(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// isBest reports whether cell (i, j) holds the extremal value of its window.
// t must be numeric and rectangular. A NaN anywhere in the window makes the
// window have no best value.
func isBest(t Table, i, j int, opts LatexOptions) bool {
	var pos, n int
	var at func(k int) float64
	switch opts.Axis {
	case ByColumn:
		pos, n = i, len(t)
		at = func(k int) float64 { return t[k][j].num }
	case ByRow:
		pos, n = j, len(t[i])
		at = func(k int) float64 { return t[i][k].num }
	default:
		return false
	}

	start, end := WindowBounds(pos, opts.Window)
	end = min(end, n)
	if start >= end {
		return false
	}
	best := at(start)
	for k := start; k < end; k++ {
		v := at(k)
		if math.IsNaN(v) {
			return false
		}
		if (opts.Best == BestMax && v > best) || (opts.Best == BestMin && v < best) {
			best = v
		}
	}
	return at(pos) == best
}
