// Command phonalign aligns two phonological strings and prints the optimal
// alignment with its score.
//
// Usage:
//
//	phonalign [-weights file] "s t r i ŋ" "s t r o ŋ"
//
// Each argument is one string, its phonemes separated by spaces. The weights
// table prices every substitution; see the cost package for its format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/junebaxter/phonalign/align"
	"github.com/junebaxter/phonalign/cost"
)

const defaultWeights = "SegmentDifferenceListForCatalanPolymorphemic.txt"

func main() {
	weights := flag.String("weights", defaultWeights, "path to the segment-difference weights table")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	model, err := cost.LoadFile(*weights)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	res, err := align.Align(phonemes(flag.Arg(0)), phonemes(flag.Arg(1)), model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	render(os.Stdout, res)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Give two strings as arguments to find their optimal alignment.")
	fmt.Fprintln(os.Stderr, "The phonemes of each should be separated with spaces.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "usage: %s [-weights file] \"p h o n e m e s\" \"p h o n e m s\"\n", os.Args[0])
}

// phonemes splits one command-line argument into a symbol sequence.
func phonemes(arg string) []align.Symbol {
	fields := strings.Fields(arg)
	seq := make([]align.Symbol, len(fields))
	for i, f := range fields {
		seq[i] = align.Symbol(f)
	}
	return seq
}

// render prints the alignment with each position padded to a common width so
// the two rows line up column by column.
func render(w io.Writer, res align.Result) {
	top := make([]string, len(res.Aligned1))
	bottom := make([]string, len(res.Aligned2))
	for i := range res.Aligned1 {
		a, b := string(res.Aligned1[i]), string(res.Aligned2[i])
		width := utf8.RuneCountInString(a)
		if n := utf8.RuneCountInString(b); n > width {
			width = n
		}
		top[i] = pad(a, width)
		bottom[i] = pad(b, width)
	}

	fmt.Fprintln(w, "Alignment:")
	fmt.Fprintln(w, " ", strings.Join(top, " "))
	fmt.Fprintln(w, " ", strings.Join(bottom, " "))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score: %.2f\n", res.Rounded())
}

// pad right-pads s with spaces to width runes. Rune count, not bytes:
// IPA labels are multi-byte.
func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
