// Package phonalign aligns phonological strings — sequences of phoneme
// labels — under a weighted substitution-and-gap cost model, using exact
// Needleman-Wunsch global alignment.
//
// 🚀 What is phonalign?
//
//	A small, pure-Go toolkit for measuring how similar two pronunciations
//	are. Given two phoneme sequences and a table of per-feature mismatch
//	weights, it finds the single optimal end-to-end alignment:
//		• Cost model: per-pair substitution penalties + one scalar gap penalty
//		• Engine: O(N·M) dynamic programming with deterministic tie-breaking
//		• Backtracking via compact per-cell origin tags, not stored strings
//		• Score-only mode with two-row O(N) memory
//
// ✨ Why choose phonalign?
//
//   - Exact – no heuristics, the returned alignment is provably optimal
//   - Deterministic – equal-cost paths resolve Match, then Insert, then Delete
//   - Loud failures – a missing pair penalty is an error, never a default
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two library packages and one command:
//
//	align/         — the Needleman-Wunsch engine (Align, Score)
//	cost/          — the penalty model and its weights-table loader
//	cmd/phonalign/ — CLI: align two space-separated phoneme strings
//
// Quick ASCII example, aligning "a b c" with "a c":
//
//	a b c
//	a - c
//
//	one gap, score = 1 × gap penalty.
//
// Dive into each package's doc.go for the full contract and examples.
package phonalign
