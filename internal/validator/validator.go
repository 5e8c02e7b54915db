package validator

import (
	"context"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
)

// UnitValidator checks givens against every unit, including both
// diagonals, using a digit bitmask per unit.
type UnitValidator struct {
	tables *board.Tables
}

func New(t *board.Tables) *UnitValidator { return &UnitValidator{tables: t} }

func (v *UnitValidator) Validate(ctx context.Context, grid string) (bool, []domain.Cell, error) {
	vals, err := v.tables.Parse(grid)
	if err != nil {
		return false, nil, err
	}
	conf := make([]domain.Cell, 0, 8)
	for _, unit := range v.tables.Unitlist {
		m := 0
		for _, cell := range unit {
			cand := vals[cell]
			if len(cand) != 1 {
				continue
			}
			bit := 1 << (cand[0] - '0')
			if m&bit != 0 {
				conf = append(conf, cell)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
