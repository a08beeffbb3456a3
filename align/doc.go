// Package align computes optimal global alignments between two phoneme
// sequences with the Needleman-Wunsch algorithm, in minimization form
// (lower score means more similar).
//
// 🚀 What is global alignment?
//
//	Both sequences are consumed end-to-end; every position of the result
//	pairs either two phonemes (a match/substitution, priced by the cost
//	model) or one phoneme against a gap (priced by the gap penalty).
//	It's the standard tool for:
//	  • Phonological similarity scoring across dialects or cognates
//	  • Pronunciation-error analysis against a reference transcription
//	  • Any discrete-symbol comparison needing an exact, whole-string match
//
// ✨ Key features:
//   - exact O(N·M) time dynamic programming, no heuristics
//   - per-cell one-byte origin tags for backtracking (never partial strings)
//   - deterministic tie-break: Match, then Insert, then Delete
//   - Score: two-row variant when only the distance is needed
//   - any cost source via the Costs interface; see the cost package
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/junebaxter/phonalign/align"
//	  "github.com/junebaxter/phonalign/cost"
//	)
//
//	model := cost.Uniform(1.0, 2.0, "a", "b", "c")
//	res, err := align.Align(
//	  []align.Symbol{"a", "b", "c"},
//	  []align.Symbol{"a", "c"},
//	  model,
//	)
//	if err != nil {
//	  // cost.ErrMissingPenalty if the model lacks a needed pair
//	}
//	fmt.Println(res.Aligned1, res.Aligned2, res.Rounded())
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) origin tags for Align, O(N) for Score
//
// See examples in example_test.go for full walkthroughs.
package align
