package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solve/internal/domain"
)

// Singles suggests the next naked or hidden single, the same deductions
// the propagation engine applies.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order, falling back
// to the first hidden single found scanning rows, columns, then boxes.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	for i := 1; i <= 9; i++ {
		for j := 1; j <= 9; j++ {
			if g.Get(i, j) != 0 {
				continue
			}
			if c := g.Candidates(i, j); c.Count() == 1 {
				v := c.Sole()
				return domain.Hint{
					Message:   fmt.Sprintf("Only %d fits at row %d, column %d", v, i, j),
					Cells:     []domain.CellCoord{{Row: i, Col: j}},
					Technique: domain.NakedSingle,
				}, true, nil
			}
		}
	}
	for _, u := range g.Units() {
		var present domain.CandidateSet
		for k := 1; k <= 9; k++ {
			present = present.With(u.Get(k))
		}
		for v := uint8(1); v <= 9; v++ {
			if present.Has(v) {
				continue
			}
			home, n := 0, 0
			for k := 1; k <= 9; k++ {
				if u.Get(k) != 0 {
					continue
				}
				i, j := u.Coords(k)
				if g.Candidates(i, j).Has(v) {
					home = k
					n++
				}
			}
			if n != 1 {
				continue
			}
			i, j := u.Coords(home)
			return domain.Hint{
				Message:   fmt.Sprintf("In %s, %d can only go at row %d, column %d", u, v, i, j),
				Cells:     []domain.CellCoord{{Row: i, Col: j}},
				Technique: domain.HiddenSingle,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
