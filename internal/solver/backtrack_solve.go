package solver

import (
	"context"
	"time"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
	"svw.info/diagoku/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, gridStr string) (domain.Values, ports.Stats, error) {
	start := time.Now()
	grid, err := board.ParseArray(gridStr)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	nodes := 0
	if conflicted(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return board.FromArray(grid), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
