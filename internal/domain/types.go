package domain

import (
	"encoding/json"
	"fmt"
)

// CellCoord identifies a cell with 1-based row and column.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a deduced placement for presentation.
type Hint struct {
	Message   string      `json:"message,omitempty"`
	Cells     []CellCoord `json:"cells,omitempty"`
	Technique Technique   `json:"technique,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Givens     Grid       `json:"givens"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// MarshalJSON encodes the grid as a 9x9 array of cell values.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.cells)
}

// UnmarshalJSON decodes a 9x9 array of cell values, rejecting values
// above 9.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [9][9]uint8
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	for i := range rows {
		for j, v := range rows[i] {
			if v > 9 {
				return fmt.Errorf("cell (%d,%d): value %d out of range", i+1, j+1, v)
			}
		}
	}
	g.cells = rows
	return nil
}
