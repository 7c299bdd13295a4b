package gridio

import (
	"strings"

	"svw.info/sudoku-solve/internal/domain"
)

// Separator divides consecutive solutions in rendered output.
const Separator = "---------"

// Render formats g as 9 lines of 9 characters, a space per empty cell.
func Render(g *domain.Grid) string {
	var b strings.Builder
	for i := 1; i <= 9; i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		for j := 1; j <= 9; j++ {
			if v := g.Get(i, j); v == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteByte('0' + v)
			}
		}
	}
	return b.String()
}

// RenderAll formats every solution in deterministic order, separated by
// Separator lines. An empty set renders as the empty string.
func RenderAll(sols domain.SolutionSet) string {
	grids := sols.Grids()
	parts := make([]string, len(grids))
	for i, g := range grids {
		parts[i] = Render(g)
	}
	return strings.Join(parts, "\n"+Separator+"\n")
}
