package latab

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CellKind identifies the variant held by a [Cell].
type CellKind int

const (
	KindInvalid CellKind = iota // unsupported source value
	KindNumber                  // float64 value
	KindText                    // string value
)

// Cell is a single table value. It is either a number, a piece of text, or an
// invalid cell wrapping a value of a type the renderers cannot format.
type Cell struct {
	kind CellKind
	num  float64
	text string
}

// Num returns a numeric cell.
func Num(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// Str returns a text cell.
func Str(s string) Cell { return Cell{kind: KindText, text: s} }

// CellOf converts a loosely typed value into a Cell. Integers, floats and
// [json.Number] become numbers and strings become text. Every other type
// yields an invalid cell that remembers its fmt.Sprint form.
func CellOf(v any) Cell {
	switch x := v.(type) {
	case Cell:
		return x
	case float64:
		return Num(x)
	case float32:
		return Num(float64(x))
	case int:
		return Num(float64(x))
	case int8:
		return Num(float64(x))
	case int16:
		return Num(float64(x))
	case int32:
		return Num(float64(x))
	case int64:
		return Num(float64(x))
	case uint:
		return Num(float64(x))
	case uint8:
		return Num(float64(x))
	case uint16:
		return Num(float64(x))
	case uint32:
		return Num(float64(x))
	case uint64:
		return Num(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Num(f)
		}
		return Str(x.String())
	case string:
		return Str(x)
	default:
		return Cell{kind: KindInvalid, text: fmt.Sprint(v)}
	}
}

// Cells converts each value with [CellOf]. It is handy for label lists.
func Cells(vals ...any) []Cell {
	out := make([]Cell, len(vals))
	for i, v := range vals {
		out[i] = CellOf(v)
	}
	return out
}

// Kind returns the variant held by c.
func (c Cell) Kind() CellKind { return c.kind }

// Float coerces c to a number. Text cells are parsed; invalid cells never
// coerce.
func (c Cell) Float() (float64, bool) {
	switch c.kind {
	case KindNumber:
		return c.num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String returns the raw, unformatted text of c.
func (c Cell) String() string {
	if c.kind == KindNumber {
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	}
	return c.text
}

// Table is a row-major grid of cells. Renderers treat it as read-only.
type Table [][]Cell

// NewTable converts loosely typed rows with [CellOf].
func NewTable(rows [][]any) Table {
	t := make(Table, len(rows))
	for i, row := range rows {
		t[i] = Cells(row...)
	}
	return t
}

// Validate returns [ErrNotRectangular] if the rows differ in length.
func (t Table) Validate() error {
	for i, row := range t {
		if len(row) != len(t[0]) {
			return fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrNotRectangular, i, len(row), len(t[0]))
		}
	}
	return nil
}

// Numeric reports whether every cell in t is a number. A single text or
// invalid cell turns the whole table into a text grid.
func (t Table) Numeric() bool {
	for _, row := range t {
		for _, c := range row {
			if c.kind != KindNumber {
				return false
			}
		}
	}
	return true
}

// Cols returns the number of columns, taken from the first row.
func (t Table) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}
