package validator

import (
	"context"
	"strings"
	"testing"

	"svw.info/diagoku/internal/board"
	"svw.info/diagoku/internal/domain"
)

const (
	diagGrid     = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"
	diagSolution = "267945381853716249491823576576438192384192657129657438642379815935281764718564923"
)

func TestValidate(t *testing.T) {
	v := New(board.New())
	empty := strings.Repeat(".", 81)

	rowDup := []byte(diagGrid)
	rowDup[5] = '2' // second 2 in row A

	diagDup := []byte(empty)
	diagDup[0] = '5'  // A1
	diagDup[80] = '5' // I9, same main diagonal

	cases := []struct {
		name     string
		grid     string
		ok       bool
		conflict domain.Cell
	}{
		{"empty", empty, true, ""},
		{"givens", diagGrid, true, ""},
		{"solved", diagSolution, true, ""},
		{"row duplicate", string(rowDup), false, "A6"},
		{"diagonal duplicate", string(diagDup), false, "I9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conflicts, err := v.Validate(context.Background(), tc.grid)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v (conflicts=%v)", ok, tc.ok, conflicts)
			}
			if tc.conflict == "" {
				return
			}
			found := false
			for _, c := range conflicts {
				if c == tc.conflict {
					found = true
				}
			}
			if !found {
				t.Fatalf("conflicts %v missing %s", conflicts, tc.conflict)
			}
		})
	}
}

func TestValidateBadGrid(t *testing.T) {
	v := New(board.New())
	if _, _, err := v.Validate(context.Background(), "123"); err == nil {
		t.Fatal("want parse error for short grid")
	}
}
