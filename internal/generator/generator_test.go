package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewEnumerator()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			givens := p.Givens.FillCount()
			if givens < 17 || givens > 81 {
				t.Fatalf("implausible givens count for %s: %d", tc.name, givens)
			}
			if !p.Givens.IsValid() {
				t.Fatalf("generated puzzle has conflicts")
			}
			unique, _, err := s.Unique(ctx, &p.Givens)
			if err != nil {
				t.Fatalf("uniqueness check failed: %v", err)
			}
			if !unique {
				t.Fatalf("puzzle for %s is not unique", tc.name)
			}
			t.Logf("%s: %d givens, %d nodes, %v", tc.name, givens, st.Nodes, st.Duration)
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	s := solver.NewEnumerator()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 99, domain.Easy)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	b, _, err := g.Generate(ctx, 99, domain.Easy)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if a.Givens != b.Givens {
		t.Fatalf("same seed produced different puzzles")
	}
}
