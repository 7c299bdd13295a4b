package domain

import "sort"

// SolutionSet collects distinct completed grids. Membership is keyed by
// Grid value equality, so the same completion reached through different
// search branches collapses to one entry.
type SolutionSet map[Grid]struct{}

// NewSolutionSet returns an empty, non-nil set.
func NewSolutionSet() SolutionSet { return make(SolutionSet) }

// Add inserts g. Duplicates are absorbed silently.
func (s SolutionSet) Add(g *Grid) { s[*g] = struct{}{} }

// Union inserts every member of other into s.
func (s SolutionSet) Union(other SolutionSet) {
	for g := range other {
		s[g] = struct{}{}
	}
}

// Contains reports whether g is a member.
func (s SolutionSet) Contains(g *Grid) bool {
	_, ok := s[*g]
	return ok
}

// Len returns the number of distinct solutions.
func (s SolutionSet) Len() int { return len(s) }

// Grids returns the members ordered by row-major cell comparison, so
// callers get reproducible output despite map iteration order.
func (s SolutionSet) Grids() []*Grid {
	out := make([]*Grid, 0, len(s))
	for g := range s {
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(a, b int) bool {
		ga, gb := out[a].cells, out[b].cells
		for i := range ga {
			for j := range ga[i] {
				if ga[i][j] != gb[i][j] {
					return ga[i][j] < gb[i][j]
				}
			}
		}
		return false
	})
	return out
}
