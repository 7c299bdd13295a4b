package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Technique names the deduction behind a hint.
type Technique int

const (
	NakedSingle  Technique = iota // a cell with exactly one candidate
	HiddenSingle                  // a value with exactly one home in a unit
)
