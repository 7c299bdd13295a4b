package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solve/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver enumerates completions of a puzzle and can test uniqueness.
type Solver interface {
	// SolveAll returns every distinct completion of g. An unsolvable
	// puzzle yields an empty set and a nil error.
	SolveAll(ctx context.Context, g *domain.Grid) (domain.SolutionSet, Stats, error)
	// Unique reports whether g has exactly one completion.
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next single-candidate deduction, if any.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
