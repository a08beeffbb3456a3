// Package align type surface: symbols, the cost-source interface, and the
// alignment result.
package align

import "math"

// Symbol is one phoneme label. It is opaque to the engine beyond equality;
// multi-rune IPA labels are ordinary Symbols.
type Symbol string

// Gap marks a position where one sequence has no counterpart symbol.
// It never appears on both sides of the same position.
const Gap Symbol = "-"

// Costs answers the two pricing questions of the algorithm. Implementations
// must be pure: repeated queries for the same pair return the same value.
//
// Penalty is looked up ordered as (seq1 symbol, seq2 symbol); the engine
// never assumes a symmetric model. A pair the model cannot price must
// return a non-nil error — never a default value.
type Costs interface {
	Penalty(a, b Symbol) (float64, error)
	GapPenalty() float64
}

// Result is one optimal global alignment.
//
// Aligned1 and Aligned2 have equal length; stripping Gap from Aligned1
// reproduces the first input exactly, and likewise for Aligned2.
// Score is the exact, unrounded sum of per-position costs.
type Result struct {
	Aligned1 []Symbol
	Aligned2 []Symbol
	Score    float64
}

// Rounded returns Score rounded to two decimal places, the reporting form.
// Internal comparisons always use the exact Score.
func (r Result) Rounded() float64 {
	return math.Round(r.Score*100) / 100
}

// op records which move produced a cell's optimal score. One byte per cell
// is all backtracking needs.
type op byte

const (
	opNone   op = iota // only cell (0,0)
	opMatch            // consumed one symbol from each sequence
	opInsert           // consumed a seq2 symbol, gap in seq1
	opDelete           // consumed a seq1 symbol, gap in seq2
)
