package board

import (
	"fmt"
	"strings"

	"svw.info/diagoku/internal/domain"
)

// Parse turns an 81-character grid string into a candidate map. Givens
// ('1'-'9') become single-candidate cells; '.' and '0' mark unknowns and
// get all nine digits.
func (t *Tables) Parse(grid string) (domain.Values, error) {
	if len(grid) != 81 {
		return nil, fmt.Errorf("grid must be 81 characters, got %d", len(grid))
	}
	v := make(domain.Values, 81)
	for i, ch := range []byte(grid) {
		switch {
		case ch >= '1' && ch <= '9':
			v[t.Cells[i]] = string(rune(ch))
		case ch == '.' || ch == '0':
			v[t.Cells[i]] = Digits
		default:
			return nil, fmt.Errorf("invalid grid character %q at position %d", ch, i)
		}
	}
	return v, nil
}

// Grid renders a candidate map back to an 81-character string, with '.'
// for any cell that is not down to a single digit.
func (t *Tables) Grid(v domain.Values) string {
	var b strings.Builder
	b.Grow(81)
	for _, cell := range t.Cells {
		if cand := v[cell]; len(cand) == 1 {
			b.WriteString(cand)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Display renders the board for terminals, one column per cell wide
// enough for its largest candidate set, with box separators.
func (t *Tables) Display(v domain.Values) string {
	width := 0
	for _, cell := range t.Cells {
		if l := len(v[cell]); l > width {
			width = l
		}
	}
	width++
	dash := strings.Repeat("-", width*3)
	line := dash + "+" + dash + "+" + dash

	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cand := v[cellAt(r, c)]
			if cand == "" {
				cand = "!"
			}
			b.WriteString(center(cand, width))
			if c == 2 || c == 5 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if r == 2 || r == 5 {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// ParseArray reads a grid string into the numeric form used by the
// backtracking and DLX solvers, 0 for unknown.
func ParseArray(grid string) ([9][9]uint8, error) {
	var out [9][9]uint8
	if len(grid) != 81 {
		return out, fmt.Errorf("grid must be 81 characters, got %d", len(grid))
	}
	for i := 0; i < 81; i++ {
		ch := grid[i]
		switch {
		case ch >= '1' && ch <= '9':
			out[i/9][i%9] = ch - '0'
		case ch == '.' || ch == '0':
			// empty
		default:
			return out, fmt.Errorf("invalid grid character %q at position %d", ch, i)
		}
	}
	return out, nil
}

// FromArray converts a numeric grid to a candidate map. Zero cells get
// all nine digits.
func FromArray(g [9][9]uint8) domain.Values {
	v := make(domain.Values, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				v[cellAt(r, c)] = Digits
			} else {
				v[cellAt(r, c)] = string(rune('0' + g[r][c]))
			}
		}
	}
	return v
}
