package domain

import "fmt"

// Grid is a 9x9 Sudoku board. Cell values are 0 (empty) or 1-9.
// Coordinates are 1-based: i is the row, j is the column, both in 1..9.
//
// Grid is a plain value over a fixed array, so == compares cell-by-cell
// content and a Grid can key a map. Filled cells are write-once: Set
// panics on an attempt to overwrite, which is a caller bug rather than a
// puzzle condition.
type Grid struct {
	cells [9][9]uint8
}

// GridFromRows builds a Grid from row-major values. Values above 9 are a
// programming error and panic.
func GridFromRows(rows [9][9]uint8) Grid {
	for i := range rows {
		for j, v := range rows[i] {
			if v > 9 {
				panic(fmt.Sprintf("domain: cell (%d,%d) value %d out of range", i+1, j+1, v))
			}
		}
	}
	return Grid{cells: rows}
}

// Rows returns a copy of the cell values in row-major order.
func (g *Grid) Rows() [9][9]uint8 { return g.cells }

func checkIndex(i, j int) {
	if i < 1 || i > 9 || j < 1 || j > 9 {
		panic(fmt.Sprintf("domain: cell index (%d,%d) out of range", i, j))
	}
}

// Get returns the value at row i, column j.
func (g *Grid) Get(i, j int) uint8 {
	checkIndex(i, j)
	return g.cells[i-1][j-1]
}

// Set places v at row i, column j. The cell must be empty and v must be
// in 1..9; anything else is a contract violation and panics.
func (g *Grid) Set(i, j int, v uint8) {
	checkIndex(i, j)
	if v < 1 || v > 9 {
		panic(fmt.Sprintf("domain: value %d out of range for cell (%d,%d)", v, i, j))
	}
	if g.cells[i-1][j-1] != 0 {
		panic(fmt.Sprintf("domain: cell (%d,%d) already holds %d", i, j, g.cells[i-1][j-1]))
	}
	g.cells[i-1][j-1] = v
}

// Clone returns an independent copy of the grid. Search branches clone
// before writing so siblings never observe each other's placements.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// FillCount reports the number of non-empty cells.
func (g *Grid) FillCount() int {
	n := 0
	for i := range g.cells {
		for _, v := range g.cells[i] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// IsComplete reports whether every cell is filled.
func (g *Grid) IsComplete() bool { return g.FillCount() == 81 }

// IsValid reports whether no row, column, or box repeats a non-zero
// value. Empty cells are ignored.
func (g *Grid) IsValid() bool {
	for _, u := range g.Units() {
		if !u.IsValid() {
			return false
		}
	}
	return true
}

// Candidates returns the legal values for the empty cell at (i,j): 1..9
// minus everything present in its row, column, and box. The set is
// computed fresh on every call; nothing is cached across mutations.
func (g *Grid) Candidates(i, j int) CandidateSet {
	s := FullCandidates
	row, col, box := g.UnitsCovering(i, j)
	for k := 1; k <= 9; k++ {
		s = s.Without(row.Get(k)).Without(col.Get(k)).Without(box.Get(k))
	}
	return s
}
