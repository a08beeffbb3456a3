package align_test

import (
	"testing"

	"github.com/junebaxter/phonalign/align"
	"github.com/junebaxter/phonalign/cost"
)

// benchAlphabet keeps benchmark inputs inside one small phoneme inventory.
var benchAlphabet = []align.Symbol{"p", "b", "t", "d", "k", "g", "a", "i", "u"}

// benchSequences builds two deterministic sequences of lengths n and m by
// cycling the alphabet at different strides, so the alignment is nontrivial.
func benchSequences(n, m int) ([]align.Symbol, []align.Symbol) {
	seq1 := make([]align.Symbol, n)
	seq2 := make([]align.Symbol, m)
	for i := 0; i < n; i++ {
		seq1[i] = benchAlphabet[i%len(benchAlphabet)]
	}
	for j := 0; j < m; j++ {
		seq2[j] = benchAlphabet[(j*2)%len(benchAlphabet)]
	}
	return seq1, seq2
}

// benchmarkAlign runs the full engine on n×m sequences, failing on any
// unexpected error.
func benchmarkAlign(b *testing.B, n, m int) {
	seq1, seq2 := benchSequences(n, m)
	model := cost.Uniform(1.0, 2.0, benchAlphabet...)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(seq1, seq2, model); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// benchmarkScore runs the two-row score-only variant on n×m sequences.
func benchmarkScore(b *testing.B, n, m int) {
	seq1, seq2 := benchSequences(n, m)
	model := cost.Uniform(1.0, 2.0, benchAlphabet...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Score(seq1, seq2, model); err != nil {
			b.Fatalf("Score failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks full alignment on 100×100 sequences.
func BenchmarkAlign_Small(b *testing.B) {
	benchmarkAlign(b, 100, 100)
}

// BenchmarkAlign_Medium benchmarks full alignment on 500×500 sequences.
func BenchmarkAlign_Medium(b *testing.B) {
	benchmarkAlign(b, 500, 500)
}

// BenchmarkAlign_Skewed benchmarks a long-vs-short pair, gap heavy.
func BenchmarkAlign_Skewed(b *testing.B) {
	benchmarkAlign(b, 500, 50)
}

// BenchmarkScore_Small benchmarks score-only mode on 100×100 sequences.
func BenchmarkScore_Small(b *testing.B) {
	benchmarkScore(b, 100, 100)
}

// BenchmarkScore_Medium benchmarks score-only mode on 500×500 sequences.
func BenchmarkScore_Medium(b *testing.B) {
	benchmarkScore(b, 500, 500)
}
