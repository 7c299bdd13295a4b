package storage

import (
	"context"
	"testing"

	"svw.info/sudoku-solve/internal/domain"
)

func TestSaveMintsIDAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	var rows [9][9]uint8
	rows[0][0] = 5
	p := &domain.Puzzle{
		Seed:       42,
		Difficulty: domain.Hard,
		Givens:     domain.GridFromRows(rows),
		CreatedAt:  1,
		Name:       "fixture",
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("Save did not mint an ID")
	}

	got, err := s.Load(ctx, p.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Givens != p.Givens || got.Difficulty != domain.Hard || got.Name != "fixture" {
		t.Fatalf("loaded puzzle differs: %+v", got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != p.ID {
		t.Fatalf("List: %+v", metas)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); err == nil {
		t.Fatalf("Load of missing id succeeded")
	}
}
