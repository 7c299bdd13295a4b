package domain

import "testing"

var sampleRows = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestUnitCoords(t *testing.T) {
	g := GridFromRows(sampleRows)
	cases := []struct {
		unit Unit
		k    int
		i, j int
	}{
		{g.Row(3), 7, 3, 7},
		{g.Column(5), 2, 2, 5},
		{g.Box(1), 1, 1, 1},
		{g.Box(2), 1, 1, 4},
		{g.Box(2), 5, 2, 5},
		{g.Box(7), 9, 9, 3},
		{g.Box(9), 1, 7, 7},
	}
	for _, tc := range cases {
		i, j := tc.unit.Coords(tc.k)
		if i != tc.i || j != tc.j {
			t.Errorf("%s index %d: got (%d,%d), want (%d,%d)", tc.unit, tc.k, i, j, tc.i, tc.j)
		}
	}
}

func TestUnitValues(t *testing.T) {
	g := GridFromRows(sampleRows)
	want := [9]uint8{5, 6, 0, 8, 4, 7, 0, 0, 0}
	if got := g.Column(1).Values(); got != want {
		t.Errorf("column 1 values: got %v, want %v", got, want)
	}
	want = [9]uint8{0, 0, 0, 4, 1, 9, 0, 8, 0}
	if got := g.Box(8).Values(); got != want {
		t.Errorf("box 8 values: got %v, want %v", got, want)
	}
}

func TestUnitsCovering(t *testing.T) {
	g := GridFromRows(sampleRows)
	row, col, box := g.UnitsCovering(5, 7)
	if got := row.String(); got != "row 5" {
		t.Errorf("row unit: got %s", got)
	}
	if got := col.String(); got != "column 7" {
		t.Errorf("column unit: got %s", got)
	}
	if got := box.String(); got != "box 6" {
		t.Errorf("box unit: got %s", got)
	}
}

func TestSetWriteOnce(t *testing.T) {
	g := GridFromRows(sampleRows)
	g.Set(1, 3, 4) // empty, fine
	if g.Get(1, 3) != 4 {
		t.Fatalf("Set did not stick")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("overwriting a filled cell did not panic")
		}
	}()
	g.Set(1, 1, 2)
}

func TestSetRejectsOutOfRangeValue(t *testing.T) {
	g := GridFromRows(sampleRows)
	defer func() {
		if recover() == nil {
			t.Fatalf("value 10 did not panic")
		}
	}()
	g.Set(1, 3, 10)
}

func TestCloneIsIndependent(t *testing.T) {
	g := GridFromRows(sampleRows)
	c := g.Clone()
	c.Set(1, 3, 4)
	if g.Get(1, 3) != 0 {
		t.Fatalf("mutating the clone changed the original")
	}
	if c.FillCount() != g.FillCount()+1 {
		t.Fatalf("clone fill count: got %d, want %d", c.FillCount(), g.FillCount()+1)
	}
}

func TestFillCountAndComplete(t *testing.T) {
	g := GridFromRows(sampleRows)
	if got := g.FillCount(); got != 30 {
		t.Errorf("FillCount: got %d, want 30", got)
	}
	if g.IsComplete() {
		t.Errorf("incomplete grid reported complete")
	}
}

func TestIsValid(t *testing.T) {
	g := GridFromRows(sampleRows)
	if !g.IsValid() {
		t.Fatalf("valid grid reported invalid")
	}
	bad := sampleRows
	bad[0][2] = 5 // duplicates the 5 in row 1
	bg := GridFromRows(bad)
	if bg.IsValid() {
		t.Fatalf("row duplicate not detected")
	}
	bad = sampleRows
	bad[2][0] = 6 // duplicates the 6 in column 1 and box 1
	bg = GridFromRows(bad)
	if bg.IsValid() {
		t.Fatalf("column duplicate not detected")
	}
}

func TestCandidates(t *testing.T) {
	g := GridFromRows(sampleRows)
	// Cell (1,3): row has 5,3,7; column has 8; box has 6,9,8.
	c := g.Candidates(1, 3)
	want := []uint8{1, 2, 4}
	got := c.Values()
	if len(got) != len(want) {
		t.Fatalf("candidates (1,3): got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates (1,3): got %v, want %v", got, want)
		}
	}
}

func TestCandidateSetOps(t *testing.T) {
	var s CandidateSet
	s = s.With(3).With(7).With(3).With(0)
	if s.Count() != 2 || !s.Has(3) || !s.Has(7) || s.Has(5) {
		t.Fatalf("set after inserts: %b", s)
	}
	if s.Sole() != 0 {
		t.Fatalf("Sole on two-element set: got %d", s.Sole())
	}
	s = s.Without(7).Without(0)
	if s.Sole() != 3 {
		t.Fatalf("Sole: got %d, want 3", s.Sole())
	}
	if FullCandidates.Count() != 9 {
		t.Fatalf("FullCandidates count: got %d", FullCandidates.Count())
	}
}

func TestSolutionSetDeduplicates(t *testing.T) {
	a := GridFromRows(sampleRows)
	b := GridFromRows(sampleRows)
	s := NewSolutionSet()
	s.Add(&a)
	s.Add(&b)
	if s.Len() != 1 {
		t.Fatalf("identical grids not deduplicated: len=%d", s.Len())
	}
	if !s.Contains(&a) {
		t.Fatalf("Contains missed a member")
	}

	other := sampleRows
	other[0][2] = 4
	c := GridFromRows(other)
	s.Add(&c)
	if s.Len() != 2 {
		t.Fatalf("distinct grid collapsed: len=%d", s.Len())
	}

	s2 := NewSolutionSet()
	s2.Add(&a)
	s2.Union(s)
	if s2.Len() != 2 {
		t.Fatalf("union: len=%d, want 2", s2.Len())
	}
}

func TestSolutionSetGridsOrdered(t *testing.T) {
	low := sampleRows
	low[0][2] = 1
	high := sampleRows
	high[0][2] = 4
	lg, hg := GridFromRows(low), GridFromRows(high)

	s := NewSolutionSet()
	s.Add(&hg)
	s.Add(&lg)
	grids := s.Grids()
	if len(grids) != 2 {
		t.Fatalf("got %d grids", len(grids))
	}
	if grids[0].Get(1, 3) != 1 || grids[1].Get(1, 3) != 4 {
		t.Fatalf("grids not in row-major order: %d then %d", grids[0].Get(1, 3), grids[1].Get(1, 3))
	}
}
