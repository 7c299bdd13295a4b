package domain

import "math/bits"

// CandidateSet is a set of Sudoku values 1..9 packed into a bitmask,
// bit v representing value v. The zero value is the empty set.
type CandidateSet uint16

// FullCandidates contains all nine values.
const FullCandidates CandidateSet = 0x3fe

// Has reports whether v is in the set.
func (s CandidateSet) Has(v uint8) bool { return s&(1<<v) != 0 }

// With returns the set including v. v == 0 is a no-op so unit values can
// be folded in without filtering empties.
func (s CandidateSet) With(v uint8) CandidateSet {
	if v == 0 {
		return s
	}
	return s | 1<<v
}

// Without returns the set excluding v. v == 0 is a no-op.
func (s CandidateSet) Without(v uint8) CandidateSet {
	if v == 0 {
		return s
	}
	return s &^ (1 << v)
}

// Count returns the number of values in the set.
func (s CandidateSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single value of a one-element set, or 0 otherwise.
func (s CandidateSet) Sole() uint8 {
	if s.Count() != 1 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(s)))
}

// Values returns the members in ascending order.
func (s CandidateSet) Values() []uint8 {
	vs := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			vs = append(vs, v)
		}
	}
	return vs
}
