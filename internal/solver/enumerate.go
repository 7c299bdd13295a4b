package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// Enumerator finds every completion of a puzzle by constraint
// propagation plus depth-first trial of branch candidates. Each branch
// works on its own clone, so the search needs no synchronization and
// never backtracks a write.
type Enumerator struct{}

func NewEnumerator() *Enumerator { return &Enumerator{} }

// SolveAll returns the set of all distinct completions of g. The input
// grid is not modified. A puzzle with no completion yields an empty set
// and a nil error; only context cancellation surfaces as an error.
func (e *Enumerator) SolveAll(ctx context.Context, g *domain.Grid) (domain.SolutionSet, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	sols := domain.NewSolutionSet()
	err := e.solve(ctx, g.Clone(), sols, 0, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil && !errors.Is(err, ErrContradiction) {
		return nil, st, err
	}
	return sols, st, nil
}

// Unique reports whether g has exactly one completion. Enumeration stops
// as soon as a second solution is found.
func (e *Enumerator) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	sols := domain.NewSolutionSet()
	err := e.solve(ctx, g.Clone(), sols, 2, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil && !errors.Is(err, ErrContradiction) {
		return false, st, err
	}
	return sols.Len() == 1, st, nil
}

// solve recurses on an exclusively-owned grid, adding completions to
// out. It returns ErrContradiction when its subtree holds no completion.
// limit > 0 stops the search once out reaches that many solutions.
func (e *Enumerator) solve(ctx context.Context, g *domain.Grid, out domain.SolutionSet, limit int, nodes *int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	*nodes++

	if _, err := SimpleFill(g); err != nil {
		return err
	}
	if !g.IsValid() {
		return fmt.Errorf("%w: duplicate value after propagation", ErrContradiction)
	}
	if g.IsComplete() {
		out.Add(g)
		return nil
	}

	// Branch cell: scan empty cells row-major. A cell with two
	// candidates is taken on sight; otherwise the first strictly
	// smallest candidate set wins.
	var bi, bj int
	var best domain.CandidateSet
	found := false
scan:
	for i := 1; i <= 9; i++ {
		for j := 1; j <= 9; j++ {
			if g.Get(i, j) != 0 {
				continue
			}
			c := g.Candidates(i, j)
			switch {
			case c.Count() == 0:
				return fmt.Errorf("%w: no candidate for cell (%d,%d)", ErrContradiction, i, j)
			case c.Count() == 2:
				bi, bj, best, found = i, j, c, true
				break scan
			case !found || c.Count() < best.Count():
				bi, bj, best, found = i, j, c, true
			}
		}
	}

	solved := false
	for _, v := range best.Values() {
		child := g.Clone()
		child.Set(bi, bj, v)
		err := e.solve(ctx, child, out, limit, nodes)
		if err != nil {
			if errors.Is(err, ErrContradiction) {
				continue // dead end for this candidate only
			}
			return err
		}
		solved = true
		if limit > 0 && out.Len() >= limit {
			return nil
		}
	}
	if !solved {
		return fmt.Errorf("%w: no candidate for cell (%d,%d) completes the grid", ErrContradiction, bi, bj)
	}
	return nil
}
