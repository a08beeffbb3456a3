package cost

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/junebaxter/phonalign/align"
)

// gapMarker is the placeholder symbol the table uses for gap-involving rows.
// Those rows are skipped: gaps are priced by the scalar gap penalty, not by
// a pair entry.
const gapMarker = "GAP"

// Load parses a segment-difference weights table.
//
// Layout:
//
//	line 1    header, ignored
//	line 2    whitespace-separated feature weights; weights[0] is the
//	          gap penalty
//	line 3+   symbolA symbolB <ignored> b1 b2 ... — a binary feature-mismatch
//	          vector; the pair's penalty is Σ b[k] × weights[k], truncated to
//	          the shorter of the two vectors
//
// Blank lines are skipped, as are rows where either symbol is the GAP
// placeholder. Any unparsable number or a row without a vector fails with
// ErrBadTable wrapped with the line number.
func Load(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, fmt.Errorf("cost: missing header line: %w", ErrBadTable)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("cost: missing feature-weights line: %w", ErrBadTable)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) == 0 {
		return nil, fmt.Errorf("cost: empty feature-weights line: %w", ErrBadTable)
	}
	weights := make([]float64, len(fields))
	for k, f := range fields {
		w, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cost: line 2: bad weight %q: %w", f, ErrBadTable)
		}
		weights[k] = w
	}

	pairs := make(map[Pair]float64)
	lineNo := 2
	for sc.Scan() {
		lineNo++
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("cost: line %d: want two symbols and a mismatch vector: %w", lineNo, ErrBadTable)
		}
		if fields[0] == gapMarker || fields[1] == gapMarker {
			continue
		}

		var sum float64
		vec := fields[3:]
		for k := 0; k < len(vec) && k < len(weights); k++ {
			bit, err := strconv.Atoi(vec[k])
			if err != nil {
				return nil, fmt.Errorf("cost: line %d: bad mismatch value %q: %w", lineNo, vec[k], ErrBadTable)
			}
			sum += float64(bit) * weights[k]
		}
		pairs[Pair{A: align.Symbol(fields[0]), B: align.Symbol(fields[1])}] = sum
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cost: reading weights table: %w", err)
	}

	if weights[0] < 0 {
		return nil, fmt.Errorf("cost: gap %v: %w", weights[0], ErrNegativeGap)
	}
	return &Model{gap: weights[0], pairs: pairs}, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cost: open weights table: %w", err)
	}
	defer f.Close()

	return Load(f)
}
