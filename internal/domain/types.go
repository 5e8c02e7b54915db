package domain

// Cell identifies one of the 81 board positions, row letter plus
// column digit ("A1" through "I9").
type Cell string

// Values maps every Cell to the digit characters still possible there.
// A length-1 entry is a solved cell; an empty entry is a contradiction.
type Values map[Cell]string

// Copy returns an independent copy. Search branches each work on their
// own copy so siblings never observe each other's eliminations.
func (v Values) Copy() Values {
	out := make(Values, len(v))
	for c, cand := range v {
		out[c] = cand
	}
	return out
}

// SolvedCount reports how many cells are down to a single candidate.
func (v Values) SolvedCount() int {
	n := 0
	for _, cand := range v {
		if len(cand) == 1 {
			n++
		}
	}
	return n
}

// Solved reports whether every cell has exactly one candidate.
func (v Values) Solved() bool {
	for _, cand := range v {
		if len(cand) != 1 {
			return false
		}
	}
	return true
}

// Hint describes a strategy suggestion for a caller.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []Cell       `json:"cells,omitempty"`
	Digit    string       `json:"digit,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted diagonal Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Grid      string `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
