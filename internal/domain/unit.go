package domain

import "fmt"

// UnitKind selects the coordinate mapping of a Unit.
type UnitKind uint8

const (
	RowUnit UnitKind = iota
	ColumnUnit
	BoxUnit
)

// Unit is a view over the 9 cells of one row, column, or 3x3 box of a
// Grid, addressed by a local index 1..9. It owns no cells; it is a
// coordinate-mapping lens over the grid it was created from.
type Unit struct {
	grid  *Grid
	kind  UnitKind
	index int // 1..9
}

// Row returns the view over row i.
func (g *Grid) Row(i int) Unit { return Unit{grid: g, kind: RowUnit, index: i} }

// Column returns the view over column j.
func (g *Grid) Column(j int) Unit { return Unit{grid: g, kind: ColumnUnit, index: j} }

// Box returns the view over box b. Boxes are numbered 1..9 left to
// right, top to bottom.
func (g *Grid) Box(b int) Unit { return Unit{grid: g, kind: BoxUnit, index: b} }

// Units returns all 27 unit views in sweep order: rows 1-9, columns 1-9,
// boxes 1-9.
func (g *Grid) Units() []Unit {
	us := make([]Unit, 0, 27)
	for i := 1; i <= 9; i++ {
		us = append(us, g.Row(i))
	}
	for j := 1; j <= 9; j++ {
		us = append(us, g.Column(j))
	}
	for b := 1; b <= 9; b++ {
		us = append(us, g.Box(b))
	}
	return us
}

// UnitsCovering returns the row, column, and box views containing cell
// (i,j).
func (g *Grid) UnitsCovering(i, j int) (row, col, box Unit) {
	checkIndex(i, j)
	b := ((i-1)/3)*3 + (j-1)/3 + 1
	return g.Row(i), g.Column(j), g.Box(b)
}

// Coords maps local index k (1..9) to grid coordinates. The mapping is
// pure: it depends only on the unit's kind and index.
func (u Unit) Coords(k int) (i, j int) {
	if k < 1 || k > 9 {
		panic(fmt.Sprintf("domain: unit index %d out of range", k))
	}
	switch u.kind {
	case RowUnit:
		return u.index, k
	case ColumnUnit:
		return k, u.index
	default:
		bi, bj := (u.index-1)/3, (u.index-1)%3
		return bi*3 + (k-1)/3 + 1, bj*3 + (k-1)%3 + 1
	}
}

// Get returns the value at local index k.
func (u Unit) Get(k int) uint8 {
	i, j := u.Coords(k)
	return u.grid.Get(i, j)
}

// Set places v at local index k, subject to the grid's write-once rule.
func (u Unit) Set(k int, v uint8) {
	i, j := u.Coords(k)
	u.grid.Set(i, j, v)
}

// Values returns the unit's 9 values in index order.
func (u Unit) Values() [9]uint8 {
	var vs [9]uint8
	for k := 1; k <= 9; k++ {
		vs[k-1] = u.Get(k)
	}
	return vs
}

// IsValid reports whether no non-zero value repeats within the unit.
func (u Unit) IsValid() bool {
	var seen CandidateSet
	for k := 1; k <= 9; k++ {
		v := u.Get(k)
		if v == 0 {
			continue
		}
		if seen.Has(v) {
			return false
		}
		seen = seen.With(v)
	}
	return true
}

func (u Unit) String() string {
	switch u.kind {
	case RowUnit:
		return fmt.Sprintf("row %d", u.index)
	case ColumnUnit:
		return fmt.Sprintf("column %d", u.index)
	default:
		return fmt.Sprintf("box %d", u.index)
	}
}
