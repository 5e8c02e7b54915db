// Package solver implements diagonal Sudoku solvers: a constraint
// propagation engine with backtracking search (the default), a plain
// recursive backtracker, and a DLX exact-cover solver. All honor the
// two diagonal units in addition to rows, columns and boxes.
package solver

import "errors"

// ErrUnsolvable is returned when a grid has no solution. It is a normal
// outcome, not a fault: callers distinguish "solved" from "no solution"
// with errors.Is.
var ErrUnsolvable = errors.New("no solution")
