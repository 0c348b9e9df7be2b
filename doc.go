// Package latab renders numeric tables for scientific reports.
//
// A [Table] is a rectangular grid of [Cell] values, each either a number or a
// piece of text. Build one from loosely typed rows with [NewTable]:
//
//	t := latab.NewTable([][]any{{1, 2, 3}, {4, 5, 6}})
//
// # LaTeX
//
// [WriteLatex] and [RenderLatex] produce the body of a LaTeX tabular: one line per
// row, cells separated by " & ", each line ending in \\. [LatexOptions]
// controls:
//
//   - Labels — a leading cell per row
//   - Precision — fixed digits after the decimal point
//   - HLine — \hline after every n-th row
//   - Best, Axis, Window — bold the maximum or minimum of each window
//
// Text cells are escaped with [Escape]. Highlighting only applies to tables
// whose cells are all numbers.
//
// # Windows
//
// [WindowBounds] splits an axis into consecutive windows of equal length.
// With Axis set to [ByColumn] the window slides down each column; with
// [ByRow] it slides across each row. A non-positive Window compares against
// the whole axis.
//
// # Plain text
//
// [TextLines] and [WriteText] render a fixed-width table with a title,
// header and dividers. [WriteTextIter] and [WriteTextChan] stream rows.
//
// # Transposition
//
// [TransposeLatex] re-parses rendered LaTeX rows and emits them transposed
// with booktabs rules. The parse strips backslashes, so bold markup is lost.
//
// # Errors
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrNotRectangular] — rows of different lengths
//   - [ErrInvalidOption] — unknown best or axis name
package latab
