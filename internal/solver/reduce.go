package solver

import "svw.info/diagoku/internal/domain"

// reduce alternates eliminate and onlyChoice until a full pass adds no
// newly solved cell. Terminates because the solved count is bounded by
// 81 and never decreases. Returns false on contradiction (a cell with
// no candidates left).
func (s *ConstraintSolver) reduce(v domain.Values) bool {
	for {
		before := v.SolvedCount()
		s.eliminate(v)
		s.onlyChoice(v)
		for _, cand := range v {
			if len(cand) == 0 {
				return false
			}
		}
		if v.SolvedCount() == before {
			return true
		}
	}
}

// propagate runs the reducer, then naked twins, and loops while the
// twins pass keeps finding eliminations. Twins stay outside the tight
// reducer loop: the strategy only fires when duplicate pairs exist, so
// scanning for it on every reducer round would be wasted work.
func (s *ConstraintSolver) propagate(v domain.Values) bool {
	for {
		if !s.reduce(v) {
			return false
		}
		if !s.nakedTwins(v) {
			return true
		}
	}
}
