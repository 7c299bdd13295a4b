package solver

import (
	"errors"
	"fmt"

	"svw.info/sudoku-solve/internal/domain"
)

// ErrContradiction marks a grid state with no legal continuation: some
// cell has no candidate, or some value has no home in a unit. Inside the
// search it prunes the branch that raised it; only at the top level does
// it mean the puzzle has no solution.
var ErrContradiction = errors.New("contradiction")

// fillUnit runs one deduction pass over a unit and returns how many
// cells it filled.
//
// The forward pass records already-filled values as seen, places naked
// singles immediately, and defers cells with two or more candidates. A
// second pass then looks for hidden singles: values not yet seen whose
// deferred candidate sets name exactly one index. The deferred sets are
// the ones captured during the forward pass; they are not recomputed
// after naked-single placements within the same call.
func fillUnit(g *domain.Grid, u domain.Unit) (int, error) {
	filled := 0
	var seen domain.CandidateSet
	var deferred [10]domain.CandidateSet // keyed by unit index; a deferred set is never empty

	for k := 1; k <= 9; k++ {
		if v := u.Get(k); v != 0 {
			seen = seen.With(v)
			continue
		}
		i, j := u.Coords(k)
		cands := g.Candidates(i, j)
		switch cands.Count() {
		case 0:
			return filled, fmt.Errorf("%w: no candidate for cell (%d,%d)", ErrContradiction, i, j)
		case 1:
			v := cands.Sole()
			g.Set(i, j, v)
			seen = seen.With(v)
			filled++
		default:
			deferred[k] = cands
		}
	}

	for v := uint8(1); v <= 9; v++ {
		if seen.Has(v) {
			continue
		}
		home, n := 0, 0
		for k := 1; k <= 9; k++ {
			if deferred[k].Has(v) {
				home = k
				n++
			}
		}
		if n == 0 {
			return filled, fmt.Errorf("%w: no cell in %s can hold %d", ErrContradiction, u, v)
		}
		if n > 1 {
			continue
		}
		// The deferred sets are stale: an earlier hidden single may
		// already have claimed this cell. Two values whose only home
		// is the same cell cannot both be placed, so the unit is
		// unsatisfiable.
		if prev := u.Get(home); prev != 0 {
			i, j := u.Coords(home)
			return filled, fmt.Errorf("%w: cell (%d,%d) is the only home for both %d and %d in %s", ErrContradiction, i, j, prev, v, u)
		}
		u.Set(home, v)
		filled++
	}
	return filled, nil
}

// SimpleFill repeats deduction rounds over all 27 units (rows, then
// columns, then boxes) until a full round fills nothing, and returns the
// total number of cells filled. No guessing happens here; each round
// either strictly advances the fill count or reaches the fixpoint, so
// the loop terminates.
func SimpleFill(g *domain.Grid) (int, error) {
	total := 0
	for {
		n, err := singlePass(g)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}

func singlePass(g *domain.Grid) (int, error) {
	filled := 0
	for _, u := range g.Units() {
		n, err := fillUnit(g, u)
		filled += n
		if err != nil {
			return filled, err
		}
	}
	return filled, nil
}
