package latab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNotRectangular    = errors.New("table is not rectangular")
	ErrInvalidOption     = errors.New("invalid option")
)

// Format represents an output format.
type Format string

const (
	Latex     Format = "latex"
	Text      Format = "text"
	Transpose Format = "transpose"
)

var formats = []Format{Latex, Text, Transpose}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options bundles the settings of every renderer. Each format reads only the
// part it needs.
type Options struct {
	Latex LatexOptions
	Text  TextOptions
}

// DefaultOptions returns the defaults of every renderer.
func DefaultOptions() Options {
	return Options{Latex: DefaultLatexOptions(), Text: DefaultTextOptions()}
}

// Write renders t in format f and writes it to w. Transpose formats the LaTeX
// cells of t and writes them transposed; HLine does not apply to it.
func Write(w io.Writer, f Format, t Table, opts Options) error {
	switch f {
	case Latex:
		return WriteLatex(w, t, opts.Latex)
	case Text:
		return WriteText(w, t, opts.Text)
	case Transpose:
		grid, err := latexGrid(t, opts.Latex)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, transposeGrid(grid))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
