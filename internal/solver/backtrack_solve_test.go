package solver

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBacktrackingSolve(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tables := newTestSolver(t).tables
	v, st, err := s.Solve(ctx, checkerGrid)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if got := tables.Grid(v); got != diagSolution {
		t.Fatalf("wrong solution:\n got %s\nwant %s", got, diagSolution)
	}
	assertAllUnits(t, tables, v)
}

func TestBacktrackingRejectsDiagonalDuplicate(t *testing.T) {
	// two 5s on the main diagonal, nowhere else in conflict
	grid := []byte(emptyGrid)
	grid[0] = '5'  // A1
	grid[80] = '5' // I9
	s := NewBacktrackingSolver()
	_, _, err := s.Solve(context.Background(), string(grid))
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
}

func TestBacktrackingUnsolvable(t *testing.T) {
	s := NewBacktrackingSolver()
	_, _, err := s.Solve(context.Background(), badGrid)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
}

func TestBacktrackingUnique(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ok, st, err := s.Unique(ctx, checkerGrid)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !ok {
		t.Fatalf("checker grid should be unique (nodes=%d)", st.Nodes)
	}
}
