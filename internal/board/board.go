// Package board defines the static structure of a diagonal Sudoku board:
// cell names, the 29 units (9 rows, 9 columns, 9 boxes, 2 main diagonals)
// and the peers derived from them. The tables are built once and shared
// read-only by every solver.
package board

import "svw.info/diagoku/internal/domain"

const (
	rowLetters = "ABCDEFGHI"
	colDigits  = "123456789"

	// Digits are the candidate characters of an unsolved cell.
	Digits = "123456789"
)

// Tables holds the unit and peer structure of the board. Never mutated
// after New returns.
type Tables struct {
	Cells    []domain.Cell                  // all 81 cells, row-major
	Unitlist [][]domain.Cell                // the 29 units
	Units    map[domain.Cell][][]domain.Cell // units containing a given cell
	Peers    map[domain.Cell][]domain.Cell  // all other cells sharing a unit
}

func cross(a, b string) []domain.Cell {
	out := make([]domain.Cell, 0, len(a)*len(b))
	for _, r := range a {
		for _, c := range b {
			out = append(out, domain.Cell(string(r)+string(c)))
		}
	}
	return out
}

func cellAt(r, c int) domain.Cell {
	return domain.Cell(string(rowLetters[r]) + string(colDigits[c]))
}

// New builds the unit and peer tables.
func New() *Tables {
	t := &Tables{
		Cells: cross(rowLetters, colDigits),
		Units: make(map[domain.Cell][][]domain.Cell, 81),
		Peers: make(map[domain.Cell][]domain.Cell, 81),
	}

	for _, r := range rowLetters {
		t.Unitlist = append(t.Unitlist, cross(string(r), colDigits))
	}
	for _, c := range colDigits {
		t.Unitlist = append(t.Unitlist, cross(rowLetters, string(c)))
	}
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			t.Unitlist = append(t.Unitlist, cross(rs, cs))
		}
	}
	// the two main diagonals
	var main, anti []domain.Cell
	for i := 0; i < 9; i++ {
		main = append(main, cellAt(i, i))
		anti = append(anti, cellAt(i, 8-i))
	}
	t.Unitlist = append(t.Unitlist, main, anti)

	for _, cell := range t.Cells {
		for _, unit := range t.Unitlist {
			if !contains(unit, cell) {
				continue
			}
			t.Units[cell] = append(t.Units[cell], unit)
		}
		seen := map[domain.Cell]bool{cell: true}
		for _, unit := range t.Units[cell] {
			for _, p := range unit {
				if !seen[p] {
					seen[p] = true
					t.Peers[cell] = append(t.Peers[cell], p)
				}
			}
		}
	}
	return t
}

func contains(unit []domain.Cell, c domain.Cell) bool {
	for _, u := range unit {
		if u == c {
			return true
		}
	}
	return false
}
