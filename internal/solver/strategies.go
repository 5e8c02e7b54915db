package solver

import (
	"strings"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
)

// eliminate removes every solved cell's digit from all of its peers.
// Idempotent: with no newly solved cells a second call changes nothing.
func (s *ConstraintSolver) eliminate(v domain.Values) {
	for _, cell := range s.tables.Cells {
		cand := v[cell]
		if len(cand) != 1 {
			continue
		}
		for _, p := range s.tables.Peers[cell] {
			if strings.Contains(v[p], cand) {
				v[p] = strings.ReplaceAll(v[p], cand, "")
			}
		}
	}
}

// onlyChoice assigns a digit to any cell that is the only place in one
// of its units where that digit can still go.
func (s *ConstraintSolver) onlyChoice(v domain.Values) {
	for _, unit := range s.tables.Unitlist {
		for _, d := range board.Digits {
			digit := string(d)
			var place domain.Cell
			n := 0
			for _, cell := range unit {
				if strings.Contains(v[cell], digit) {
					place = cell
					n++
				}
			}
			if n == 1 {
				v[place] = digit
			}
		}
	}
}

// nakedTwins finds two cells in a unit sharing the same two candidates
// and removes those digits from the rest of the unit. Twin pairs are
// discovered from a snapshot of the unit taken before any removal in
// this pass, each unordered pair considered once; the strategy runs a
// single pass per call. The twin cells themselves are never touched.
// Reports whether any candidate was removed.
func (s *ConstraintSolver) nakedTwins(v domain.Values) bool {
	changed := false
	for _, unit := range s.tables.Unitlist {
		type twin struct {
			cell domain.Cell
			cand string
		}
		var pairs []twin
		for _, cell := range unit {
			if len(v[cell]) == 2 {
				pairs = append(pairs, twin{cell, v[cell]})
			}
		}
		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				if pairs[i].cand != pairs[j].cand {
					continue
				}
				for _, cell := range unit {
					if cell == pairs[i].cell || cell == pairs[j].cell {
						continue
					}
					for _, d := range pairs[i].cand {
						digit := string(d)
						if strings.Contains(v[cell], digit) {
							v[cell] = strings.ReplaceAll(v[cell], digit, "")
							changed = true
						}
					}
				}
			}
		}
	}
	return changed
}
