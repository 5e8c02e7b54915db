package solver

import (
	"context"
	"time"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
	"svw.info/diagoku/internal/ports"
)

// ConstraintSolver solves by constraint propagation (eliminate, only
// choice, naked twins) with depth-first search over the remaining
// candidates. Each branch works on its own copy of the candidate map.
type ConstraintSolver struct {
	tables *board.Tables
}

func NewConstraintSolver(t *board.Tables) *ConstraintSolver {
	return &ConstraintSolver{tables: t}
}

// pickCell returns the unsolved cell with the fewest candidates, first
// one found in a single scan winning ties.
func (s *ConstraintSolver) pickCell(v domain.Values) domain.Cell {
	var best domain.Cell
	bestLen := 10
	for _, cell := range s.tables.Cells {
		if l := len(v[cell]); l > 1 && l < bestLen {
			best, bestLen = cell, l
		}
	}
	return best
}

func (s *ConstraintSolver) Solve(ctx context.Context, grid string) (domain.Values, ports.Stats, error) {
	start := time.Now()
	v, err := s.tables.Parse(grid)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	nodes := 0
	var dfs func(domain.Values) domain.Values
	dfs = func(v domain.Values) domain.Values {
		if ctx.Err() != nil {
			return nil
		}
		if !s.propagate(v) {
			return nil
		}
		if v.Solved() {
			return v
		}
		cell := s.pickCell(v)
		for _, d := range v[cell] {
			nodes++
			branch := v.Copy()
			branch[cell] = string(d)
			if sol := dfs(branch); sol != nil {
				return sol
			}
		}
		return nil
	}
	sol := dfs(v)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if sol == nil {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return sol, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *ConstraintSolver) Unique(ctx context.Context, grid string) (bool, ports.Stats, error) {
	start := time.Now()
	v, err := s.tables.Parse(grid)
	if err != nil {
		return false, ports.Stats{}, err
	}
	nodes := 0
	count := 0
	var dfs func(domain.Values) bool
	dfs = func(v domain.Values) bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		if !s.propagate(v) {
			return false
		}
		if v.Solved() {
			count++
			return count >= 2
		}
		cell := s.pickCell(v)
		for _, d := range v[cell] {
			nodes++
			branch := v.Copy()
			branch[cell] = string(d)
			if dfs(branch) {
				return true
			}
		}
		return false
	}
	_ = dfs(v)
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
