package solver

// BacktrackingSolver is a straightforward recursive solver, kept as a
// cross-check for the constraint solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers used by Solve/Unique (in other files) ---
func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	// diagonal units
	if r == c {
		for i := 0; i < 9; i++ {
			if b[i][i] == v {
				return false
			}
		}
	}
	if r+c == 8 {
		for i := 0; i < 9; i++ {
			if b[i][8-i] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// conflicted reports whether any given already violates a unit. The
// dfs below never places a conflicting digit, so duplicated givens
// must be rejected up front.
func conflicted(b *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b[r][c]; v != 0 {
				b[r][c] = 0
				ok := isValid(b, r, c, v)
				b[r][c] = v
				if !ok {
					return true
				}
			}
		}
	}
	return false
}
