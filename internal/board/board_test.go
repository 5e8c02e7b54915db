package board

import (
	"strings"
	"testing"

	"svw.info/diagoku/internal/domain"
)

const diagGrid = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"

func TestTablesShape(t *testing.T) {
	tb := New()
	if len(tb.Cells) != 81 {
		t.Fatalf("want 81 cells, got %d", len(tb.Cells))
	}
	if len(tb.Unitlist) != 29 {
		t.Fatalf("want 29 units (9 rows + 9 cols + 9 boxes + 2 diagonals), got %d", len(tb.Unitlist))
	}
	for i, unit := range tb.Unitlist {
		if len(unit) != 9 {
			t.Fatalf("unit %d has %d cells", i, len(unit))
		}
	}

	// membership: corner and center sit on diagonals, A2 does not
	unitCounts := map[domain.Cell]int{"A1": 4, "A2": 3, "E5": 5}
	for cell, want := range unitCounts {
		if got := len(tb.Units[cell]); got != want {
			t.Errorf("units[%s] = %d, want %d", cell, got, want)
		}
	}
	peerCounts := map[domain.Cell]int{"A1": 26, "A2": 20, "E5": 32}
	for cell, want := range peerCounts {
		if got := len(tb.Peers[cell]); got != want {
			t.Errorf("peers[%s] = %d, want %d", cell, got, want)
		}
	}
}

func TestPeersExcludeSelf(t *testing.T) {
	tb := New()
	for _, cell := range tb.Cells {
		for _, p := range tb.Peers[cell] {
			if p == cell {
				t.Fatalf("%s is its own peer", cell)
			}
		}
	}
}

func TestParseAndGrid(t *testing.T) {
	tb := New()
	v, err := tb.Parse(diagGrid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v["A1"] != "2" {
		t.Errorf(`v[A1] = %q, want "2"`, v["A1"])
	}
	if v["A2"] != Digits {
		t.Errorf("v[A2] = %q, want all digits", v["A2"])
	}
	if v["I9"] != "3" {
		t.Errorf(`v[I9] = %q, want "3"`, v["I9"])
	}
	if got := tb.Grid(v); got != diagGrid {
		t.Errorf("Grid round trip mismatch:\n got %s\nwant %s", got, diagGrid)
	}
}

func TestParseErrors(t *testing.T) {
	tb := New()
	if _, err := tb.Parse("123"); err == nil {
		t.Error("want error for short grid")
	}
	bad := strings.Replace(diagGrid, ".", "x", 1)
	if _, err := tb.Parse(bad); err == nil {
		t.Error("want error for invalid character")
	}
}

func TestParseArray(t *testing.T) {
	g, err := ParseArray(diagGrid)
	if err != nil {
		t.Fatalf("ParseArray failed: %v", err)
	}
	if g[0][0] != 2 || g[8][8] != 3 {
		t.Errorf("corners = %d,%d, want 2,3", g[0][0], g[8][8])
	}
	if g[0][1] != 0 {
		t.Errorf("empty cell parsed as %d", g[0][1])
	}
	v := FromArray(g)
	if v["A1"] != "2" || v["A2"] != Digits {
		t.Errorf("FromArray: v[A1]=%q v[A2]=%q", v["A1"], v["A2"])
	}
}

func TestDisplay(t *testing.T) {
	tb := New()
	v, err := tb.Parse(diagGrid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := tb.Display(v)
	if n := strings.Count(out, "\n"); n != 11 {
		t.Errorf("Display has %d lines, want 11 (9 rows + 2 separators)", n)
	}
}
