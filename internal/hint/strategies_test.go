package hint

import (
	"context"
	"testing"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
)

const diagSolution = "267945381853716249491823576576438192384192657129657438642379815935281764718564923"

func TestHintNakedSingle(t *testing.T) {
	h := NewStrategies(board.New())
	// blank the center cell of the full solution: only its own digit fits
	grid := []byte(diagSolution)
	grid[40] = '.' // E5 = 9

	hh, found, err := h.Hint(context.Background(), string(grid), domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatal("no hint found for an obvious single")
	}
	if hh.Strategy != domain.StrategySingles {
		t.Errorf("strategy = %v, want singles", hh.Strategy)
	}
	if len(hh.Cells) != 1 || hh.Cells[0] != "E5" {
		t.Errorf("cells = %v, want [E5]", hh.Cells)
	}
	if hh.Digit != "9" {
		t.Errorf("digit = %q, want 9", hh.Digit)
	}
}

func TestHintNoneOnSolvedGrid(t *testing.T) {
	h := NewStrategies(board.New())
	_, found, err := h.Hint(context.Background(), diagSolution, domain.StrategyTwins)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("hint offered for a finished grid")
	}
}

func TestHintBadGrid(t *testing.T) {
	h := NewStrategies(board.New())
	if _, _, err := h.Hint(context.Background(), "123", domain.StrategySingles); err == nil {
		t.Fatal("want parse error for short grid")
	}
}

func TestTwinsDetection(t *testing.T) {
	tables := board.New()
	h := NewStrategies(tables)
	vals := make(domain.Values, 81)
	cand := make(domain.Values, 81)
	for _, c := range tables.Cells {
		vals[c] = board.Digits
		cand[c] = board.Digits
	}
	cand["A1"] = "23"
	cand["A2"] = "23"

	hh, ok := h.twins(vals, cand)
	if !ok {
		t.Fatal("twin pair not detected")
	}
	if hh.Strategy != domain.StrategyTwins {
		t.Errorf("strategy = %v, want twins", hh.Strategy)
	}
	if len(hh.Cells) != 2 || hh.Cells[0] != "A1" || hh.Cells[1] != "A2" {
		t.Errorf("cells = %v, want [A1 A2]", hh.Cells)
	}
	if hh.Digit != "23" {
		t.Errorf("digit = %q, want 23", hh.Digit)
	}
}

func TestTwinsIgnoredWithoutElimination(t *testing.T) {
	tables := board.New()
	h := NewStrategies(tables)
	vals := make(domain.Values, 81)
	cand := make(domain.Values, 81)
	for _, c := range tables.Cells {
		vals[c] = "1" // treat everything else as given
		cand[c] = "1"
	}
	// a twin pair whose digits appear nowhere else in its units
	vals["A1"], cand["A1"] = board.Digits, "23"
	vals["A2"], cand["A2"] = board.Digits, "23"

	if _, ok := h.twins(vals, cand); ok {
		t.Fatal("twins hinted with nothing to eliminate")
	}
}
