package latab

import (
	"fmt"
	"strings"
)

const (
	latexTopRule    = `\toprule`
	latexMidRule    = `\midrule`
	latexBottomRule = `\bottomrule`
	latexRowEnd     = ` \\ ` + "\n"
)

// TransposeLatex parses the "&"-separated rows of a rendered LaTeX table and
// emits them transposed, framed by \toprule, \midrule and \bottomrule.
//
// Lines without an "&" are dropped. Backslashes are stripped from every cell,
// so bold markup and line breaks do not survive the round trip.
func TransposeLatex(s string) (string, error) {
	grid := parseLatexGrid(s)
	for i, row := range grid {
		if len(row) != len(grid[0]) {
			return "", fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrNotRectangular, i, len(row), len(grid[0]))
		}
	}

	return transposeGrid(grid), nil
}

// transposeGrid emits column j of the rectangular grid as output row j,
// framed by booktabs rules.
func transposeGrid(grid [][]string) string {
	var sb strings.Builder
	sb.WriteString(latexTopRule + "\n")
	if len(grid) > 0 {
		col := make([]string, len(grid))
		for j := range grid[0] {
			if j == 1 {
				sb.WriteString(latexMidRule + "\n")
			}
			for i := range grid {
				col[i] = grid[i][j]
			}
			sb.WriteString(strings.Join(col, latexSep))
			sb.WriteString(latexRowEnd)
		}
	}
	sb.WriteString(latexBottomRule)
	return sb.String()
}

func parseLatexGrid(s string) [][]string {
	var grid [][]string
	for _, line := range strings.Split(s, "\n") {
		parts := strings.Split(line, "&")
		if len(parts) < 2 {
			continue
		}
		row := make([]string, len(parts))
		for i, p := range parts {
			row[i] = strings.TrimSpace(strings.ReplaceAll(p, `\`, ""))
		}
		grid = append(grid, row)
	}
	return grid
}
