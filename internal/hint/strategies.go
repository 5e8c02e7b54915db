package hint

import (
	"context"
	"fmt"
	"strings"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
)

// Strategies implements a Hinter over the propagation strategies:
// naked singles, only choice, and naked twins, gated by tier.
type Strategies struct {
	tables *board.Tables
}

func NewStrategies(t *board.Tables) *Strategies { return &Strategies{tables: t} }

// Hint returns the first applicable suggestion at or below the max tier,
// scanning cheapest strategy first.
func (h *Strategies) Hint(ctx context.Context, grid string, max domain.StrategyTier) (domain.Hint, bool, error) {
	vals, err := h.tables.Parse(grid)
	if err != nil {
		return domain.Hint{}, false, err
	}
	cand := h.candidates(vals)

	// naked single: a cell with one candidate left
	for _, cell := range h.tables.Cells {
		if len(vals[cell]) == 1 {
			continue // given
		}
		if len(cand[cell]) == 1 {
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %s fits here", cand[cell]),
				Cells:    []domain.Cell{cell},
				Digit:    cand[cell],
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}

	if max >= domain.StrategyOnlyChoice {
		for _, unit := range h.tables.Unitlist {
			for _, d := range board.Digits {
				digit := string(d)
				var place domain.Cell
				n := 0
				for _, cell := range unit {
					if strings.Contains(cand[cell], digit) {
						place = cell
						n++
					}
				}
				if n == 1 && len(vals[place]) != 1 {
					return domain.Hint{
						Message:  fmt.Sprintf("Only choice: %s is the only place for %s in one of its units", place, digit),
						Cells:    []domain.Cell{place},
						Digit:    digit,
						Strategy: domain.StrategyOnlyChoice,
					}, true, nil
				}
			}
		}
	}

	if max >= domain.StrategyTwins {
		if hh, ok := h.twins(vals, cand); ok {
			return hh, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// twins looks for a naked twin pair whose digits still appear elsewhere
// in the pair's unit, so the hint points at a real elimination.
func (h *Strategies) twins(vals, cand domain.Values) (domain.Hint, bool) {
	for _, unit := range h.tables.Unitlist {
		var pair []domain.Cell
		for _, a := range unit {
			if len(vals[a]) == 1 || len(cand[a]) != 2 {
				continue
			}
			pair = append(pair, a)
		}
		for i := 0; i < len(pair); i++ {
			for j := i + 1; j < len(pair); j++ {
				if cand[pair[i]] != cand[pair[j]] {
					continue
				}
				digits := cand[pair[i]]
				for _, cell := range unit {
					if cell == pair[i] || cell == pair[j] || len(vals[cell]) == 1 {
						continue
					}
					if strings.ContainsAny(cand[cell], digits) {
						return domain.Hint{
							Message:  fmt.Sprintf("Naked twins: %s and %s lock %s in their unit", pair[i], pair[j], digits),
							Cells:    []domain.Cell{pair[i], pair[j]},
							Digit:    digits,
							Strategy: domain.StrategyTwins,
						}, true
					}
				}
			}
		}
	}
	return domain.Hint{}, false
}

// candidates runs a single elimination pass: each given digit removed
// from the candidates of its peers.
func (h *Strategies) candidates(vals domain.Values) domain.Values {
	out := vals.Copy()
	for _, cell := range h.tables.Cells {
		given := vals[cell]
		if len(given) != 1 {
			continue
		}
		for _, p := range h.tables.Peers[cell] {
			out[p] = strings.ReplaceAll(out[p], given, "")
		}
	}
	return out
}
