package validator

import (
	"context"

	"svw.info/sudoku-solve/internal/domain"
)

// UnitValidator checks the 27 units of a grid for duplicate values and
// reports the coordinates of each conflicting cell.
type UnitValidator struct{}

func New() *UnitValidator { return &UnitValidator{} }

func (v *UnitValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, u := range g.Units() {
		var seen domain.CandidateSet
		for k := 1; k <= 9; k++ {
			val := u.Get(k)
			if val == 0 {
				continue
			}
			if seen.Has(val) {
				i, j := u.Coords(k)
				conf = append(conf, domain.CellCoord{Row: i, Col: j})
			}
			seen = seen.With(val)
		}
	}
	return len(conf) == 0, conf, nil
}
