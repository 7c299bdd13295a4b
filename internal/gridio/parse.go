// Package gridio reads and renders puzzles in the plain 9-line text
// format: digits 1-9 are givens; '0', '-', and space are empty cells;
// every other character is ignored.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"svw.info/sudoku-solve/internal/domain"
)

// FormatError reports malformed puzzle input. Line is the 1-based
// non-blank line number for a per-line error, or 0 when the puzzle as a
// whole has the wrong number of rows; Got is the offending value count
// or row count.
type FormatError struct {
	Line int
	Got  int
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %d cell values, want 9", e.Line, e.Got)
	}
	return fmt.Sprintf("%d rows, want 9", e.Got)
}

// Read parses a puzzle from r. Blank lines are skipped; each remaining
// line must yield exactly 9 recognized values.
func Read(r io.Reader) (*domain.Grid, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Parse builds a Grid from non-blank puzzle lines.
func Parse(lines []string) (*domain.Grid, error) {
	var rows [9][9]uint8
	n := 0
	for ln, line := range lines {
		vals := make([]uint8, 0, 9)
		for _, r := range line {
			switch {
			case r == '0' || r == '-' || r == ' ':
				vals = append(vals, 0)
			case r >= '1' && r <= '9':
				vals = append(vals, uint8(r-'0'))
			}
		}
		if len(vals) != 9 {
			return nil, &FormatError{Line: ln + 1, Got: len(vals)}
		}
		if n < 9 {
			copy(rows[n][:], vals)
		}
		n++
	}
	if n != 9 {
		return nil, &FormatError{Got: n}
	}
	g := domain.GridFromRows(rows)
	return &g, nil
}
