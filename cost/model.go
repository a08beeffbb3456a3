// Model type, sentinel errors, and explicit constructors.
package cost

import (
	"errors"
	"fmt"

	"github.com/junebaxter/phonalign/align"
)

// Sentinel errors for model construction and lookup. Wrapped forms carry
// context (the pair, the table line); match with errors.Is.
var (
	// ErrMissingPenalty indicates the model has no entry for a requested pair.
	ErrMissingPenalty = errors.New("cost: no penalty for phoneme pair")

	// ErrBadTable indicates the weights table could not be parsed.
	ErrBadTable = errors.New("cost: malformed weights table")

	// ErrNegativeGap indicates a negative gap penalty was supplied.
	ErrNegativeGap = errors.New("cost: gap penalty must be non-negative")
)

// Pair is an ordered phoneme pair, the key of one substitution entry.
type Pair struct {
	A, B align.Symbol
}

// Model holds the gap penalty and the substitution-penalty table.
// Immutable after construction; safe for concurrent readers.
type Model struct {
	gap   float64
	pairs map[Pair]float64
}

// New builds a Model from an explicit pair map. The map is copied, so the
// caller's map cannot mutate the model afterwards.
func New(gap float64, pairs map[Pair]float64) (*Model, error) {
	if gap < 0 {
		return nil, fmt.Errorf("cost: gap %v: %w", gap, ErrNegativeGap)
	}
	cp := make(map[Pair]float64, len(pairs))
	for k, v := range pairs {
		cp[k] = v
	}
	return &Model{gap: gap, pairs: cp}, nil
}

// Uniform builds a model over the given alphabet with zero self-substitution
// cost and one flat mismatch cost for every other ordered pair.
func Uniform(gap, mismatch float64, symbols ...align.Symbol) *Model {
	pairs := make(map[Pair]float64, len(symbols)*len(symbols))
	for _, a := range symbols {
		for _, b := range symbols {
			if a == b {
				pairs[Pair{a, b}] = 0
			} else {
				pairs[Pair{a, b}] = mismatch
			}
		}
	}
	return &Model{gap: gap, pairs: pairs}
}

// Penalty returns the substitution cost of aligning a (from the first
// sequence) with b (from the second). The lookup is ordered; an absent pair
// is ErrMissingPenalty, never a default.
func (m *Model) Penalty(a, b align.Symbol) (float64, error) {
	p, ok := m.pairs[Pair{A: a, B: b}]
	if !ok {
		return 0, fmt.Errorf("cost: pair (%q, %q): %w", a, b, ErrMissingPenalty)
	}
	return p, nil
}

// GapPenalty returns the cost of aligning any symbol against a gap.
func (m *Model) GapPenalty() float64 {
	return m.gap
}

// Len reports the number of substitution entries.
func (m *Model) Len() int {
	return len(m.pairs)
}
