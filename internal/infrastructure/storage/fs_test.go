package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/diagoku/internal/domain"
)

const diagGrid = "2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3"

func TestSaveLoadList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:        "p1",
		Grid:      diagGrid,
		Name:      "canonical",
		Notes:     "solver smoke puzzle",
		CreatedAt: 100,
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, &domain.Puzzle{ID: "p2", Grid: diagGrid, CreatedAt: 200}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Grid != p.Grid || got.Name != p.Name || got.Notes != p.Notes {
		t.Fatalf("Load mismatch: %+v", got)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(list))
	}
	// newest first
	if list[0].ID != "p2" || list[1].ID != "p1" {
		t.Fatalf("List order: %+v", list)
	}
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{Grid: diagGrid}); err == nil {
		t.Fatal("want error for missing ID")
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/missing")
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("List returned %d entries, want 0", len(list))
	}
}
