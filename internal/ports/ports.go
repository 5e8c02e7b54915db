package ports

import (
	"context"
	"time"

	"svw.info/diagoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a diagonal Sudoku grid and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, grid string) (domain.Values, Stats, error)
	Unique(ctx context.Context, grid string) (bool, Stats, error)
}

// Validator checks givens for duplicates across rows, columns, boxes
// and both diagonals.
type Validator interface {
	Validate(ctx context.Context, grid string) (ok bool, conflicts []domain.Cell, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, grid string, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
