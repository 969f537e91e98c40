package solver

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// NoGuess is returned as the guess when no candidate passes the filters.
const NoGuess = "no guess"

// PreviewSize is how many possibilities are listed with a guess.
const PreviewSize = 10

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a deterministic Picker for seed.
func NewPicker(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GuessResult is the outcome of one guess selection.
type GuessResult struct {
	Word          string
	Solved        bool
	Count         int
	Possibilities []string
	Remaining     int
}

// Found reports whether a guess was produced.
func (g GuessResult) Found() bool {
	return g.Count > 0
}

// Rate scores a word by its number of distinct letters.
func Rate(word string) int {
	return len(lo.Uniq([]byte(word)))
}

// Candidates returns the words passing every filter, in input order.
func Candidates(words []string, filters []Filter) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return MatchAll(w, filters)
	})
}

// SelectGuess applies filters to words and picks the candidate with the most
// distinct letters. Ties are broken by picker.
func SelectGuess(words []string, filters []Filter, picker Picker) GuessResult {
	results := Candidates(words, filters)
	res := GuessResult{
		Word:          NoGuess,
		Count:         len(results),
		Solved:        len(results) == 1,
		Possibilities: lo.Slice(results, 0, PreviewSize),
		Remaining:     max(len(results)-PreviewSize, 0),
	}

	best := -1
	var top []string
	for _, w := range results {
		switch score := Rate(w); {
		case score > best:
			best = score
			top = []string{w}
		case score == best:
			top = append(top, w)
		}
	}

	switch len(top) {
	case 0:
	case 1:
		res.Word = top[0]
	default:
		res.Word = top[picker.IntN(len(top))]
	}
	return res
}
