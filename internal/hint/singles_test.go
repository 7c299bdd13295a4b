package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-solve/internal/domain"
)

func TestHintNakedSingle(t *testing.T) {
	var rows [9][9]uint8
	copy(rows[0][:], []uint8{1, 2, 3, 4, 5, 6, 7, 8, 0})
	g := domain.GridFromRows(rows)

	h, ok, err := NewSingles().Hint(context.Background(), &g)
	if err != nil || !ok {
		t.Fatalf("Hint: ok=%v err=%v", ok, err)
	}
	if h.Technique != domain.NakedSingle {
		t.Fatalf("technique: got %v, want naked single", h.Technique)
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 1, Col: 9}) {
		t.Fatalf("cells: %v", h.Cells)
	}
}

func TestHintHiddenSingle(t *testing.T) {
	// A 5 in every column but the first confines 5 to (1,1) within row 1,
	// while no cell anywhere has a sole candidate.
	var rows [9][9]uint8
	rows[1][3] = 5
	rows[2][6] = 5
	rows[3][1] = 5
	rows[4][4] = 5
	rows[5][7] = 5
	rows[6][2] = 5
	rows[7][5] = 5
	rows[8][8] = 5
	g := domain.GridFromRows(rows)

	h, ok, err := NewSingles().Hint(context.Background(), &g)
	if err != nil || !ok {
		t.Fatalf("Hint: ok=%v err=%v", ok, err)
	}
	if h.Technique != domain.HiddenSingle {
		t.Fatalf("technique: got %v, want hidden single", h.Technique)
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 1, Col: 1}) {
		t.Fatalf("cells: %v", h.Cells)
	}
}

func TestHintNoneAvailable(t *testing.T) {
	var g domain.Grid // empty grid: nothing is forced
	_, ok, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if ok {
		t.Fatalf("hint offered for an empty grid")
	}
}
