// Package cost builds and serves the penalty model the alignment engine
// prices moves with: a substitution penalty per ordered phoneme pair, plus
// one scalar gap penalty.
//
// A model comes from one of three constructors:
//
//   - Load / LoadFile — parse a segment-difference weights table: a header
//     line, a line of feature weights whose first value is the gap penalty,
//     then one row per phoneme pair holding a binary feature-mismatch
//     vector. A pair's penalty is the weighted sum of its mismatch vector.
//     Rows naming the GAP placeholder are skipped; gaps are priced by the
//     scalar alone.
//   - New — wrap an explicit pair→penalty map, for embedders and tests.
//   - Uniform — zero on the diagonal, one flat mismatch cost elsewhere.
//
// Models are immutable once built and safe for concurrent readers. Penalty
// lookups are ordered — (a, b) and (b, a) are distinct entries — and an
// absent pair is a hard ErrMissingPenalty, never a defaulted value: a made-up
// penalty would silently corrupt the optimality of every alignment using it.
//
// Usage:
//
//	model, err := cost.LoadFile("SegmentDifferenceList.txt")
//	if err != nil {
//	  // cost.ErrBadTable with the offending line, or an os open error
//	}
//	res, err := align.Align(seq1, seq2, model)
package cost
