package align

import "errors"

// Align — Needleman-Wunsch global alignment
//
// Description:
//
//	Align finds the single optimal end-to-end alignment of seq1 and seq2
//	under costs, minimizing the summed penalty. Substituting seq1[i] for
//	seq2[j] costs costs.Penalty(seq1[i], seq2[j]); aligning any symbol
//	against a gap costs costs.GapPenalty().
//
// Algorithm Outline:
//  1. Let n = len(seq1), m = len(seq2). Row j tracks the first j symbols
//     of seq2, column i the first i symbols of seq1.
//  2. Initialize: cell(0,0) = 0; row 0 is pure deletions (i × gap);
//     column 0 is pure insertions (j × gap).
//  3. For j = 1..m, i = 1..n:
//     match  = cell(j-1,i-1) + Penalty(seq1[i-1], seq2[j-1])
//     insert = cell(j-1,i)   + gap
//     delete = cell(j,i-1)   + gap
//     cell(j,i) = min of the three; on equal scores Match wins over
//     Insert, Insert over Delete.
//  4. Score = cell(m,n).
//  5. Backtrack over the recorded origin tags from (m,n) to (0,0),
//     then reverse the emitted pairs.
//
// Scores live in two rolling rows; only the one-byte origin tags are kept
// for the whole grid, so memory is O(N·M) bytes rather than O(N·M) partial
// alignments.
//
// Complexity:
//
//	Time   = O(N·M)
//	Memory = O(N·M) origin tags + O(N) scores
//
// Errors:
//   - ErrNilCosts — costs is nil.
//   - any error returned by costs.Penalty, unchanged; the alignment is
//     abandoned on the first failed lookup.
//
// Empty inputs are valid: both empty yields an empty alignment with score
// 0, one empty yields an all-gap counterpart priced at len × gap.

// ErrNilCosts indicates Align or Score was called without a cost source.
var ErrNilCosts = errors.New("align: nil cost source")

// Align computes the optimal global alignment of seq1 and seq2 under costs.
func Align(seq1, seq2 []Symbol, costs Costs) (Result, error) {
	if costs == nil {
		return Result{}, ErrNilCosts
	}
	n, m := len(seq1), len(seq2)
	gap := costs.GapPenalty()

	ops := make([][]op, m+1)
	for j := range ops {
		ops[j] = make([]op, n+1)
	}

	// Row 0: consume seq1 against gaps.
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		prev[i] = float64(i) * gap
		ops[0][i] = opDelete
	}

	for j := 1; j <= m; j++ {
		// Column 0: consume seq2 against gaps.
		curr[0] = float64(j) * gap
		ops[j][0] = opInsert
		for i := 1; i <= n; i++ {
			p, err := costs.Penalty(seq1[i-1], seq2[j-1])
			if err != nil {
				return Result{}, err
			}
			best, origin := prev[i-1]+p, opMatch
			if ins := prev[i] + gap; ins < best {
				best, origin = ins, opInsert
			}
			if del := curr[i-1] + gap; del < best {
				best, origin = del, opDelete
			}
			curr[i], ops[j][i] = best, origin
		}
		prev, curr = curr, prev
	}
	score := prev[n]

	// Backtrack from (m,n); emitted pairs run end-to-start.
	a1 := make([]Symbol, 0, n+m)
	a2 := make([]Symbol, 0, n+m)
	for i, j := n, m; i > 0 || j > 0; {
		switch ops[j][i] {
		case opMatch:
			a1 = append(a1, seq1[i-1])
			a2 = append(a2, seq2[j-1])
			i--
			j--
		case opInsert:
			a1 = append(a1, Gap)
			a2 = append(a2, seq2[j-1])
			j--
		case opDelete:
			a1 = append(a1, seq1[i-1])
			a2 = append(a2, Gap)
			i--
		}
	}
	reverse(a1)
	reverse(a2)

	return Result{Aligned1: a1, Aligned2: a2, Score: score}, nil
}

// Score computes only the optimal alignment score, with two rolling rows.
// It agrees exactly with Align(...).Score.
func Score(seq1, seq2 []Symbol, costs Costs) (float64, error) {
	if costs == nil {
		return 0, ErrNilCosts
	}
	n, m := len(seq1), len(seq2)
	gap := costs.GapPenalty()

	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		prev[i] = float64(i) * gap
	}

	for j := 1; j <= m; j++ {
		curr[0] = float64(j) * gap
		for i := 1; i <= n; i++ {
			p, err := costs.Penalty(seq1[i-1], seq2[j-1])
			if err != nil {
				return 0, err
			}
			best := prev[i-1] + p
			if ins := prev[i] + gap; ins < best {
				best = ins
			}
			if del := curr[i-1] + gap; del < best {
				best = del
			}
			curr[i] = best
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}

// reverse flips s in place.
func reverse(s []Symbol) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
