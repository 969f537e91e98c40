package solver

import (
	"fmt"
	"strings"
)

// FilterKind tags the feedback rule a Filter came from.
type FilterKind uint8

const (
	FilterGray FilterKind = iota
	FilterYellow
	FilterGreen
)

func (k FilterKind) String() string {
	switch k {
	case FilterYellow:
		return "yellow"
	case FilterGreen:
		return "green"
	default:
		return "gray"
	}
}

// Filter is a predicate over a candidate word derived from one feedback token.
type Filter struct {
	Kind     FilterKind
	Letter   byte
	Position int
}

// Match reports whether word satisfies the filter.
//
// Gray is letter-level: a gray mark removes every word containing the letter,
// even when another position of the same guess marked it yellow or green.
// Duplicate-letter answers can therefore be eliminated by mistake.
func (f Filter) Match(word string) bool {
	switch f.Kind {
	case FilterGray:
		return strings.IndexByte(word, f.Letter) < 0
	case FilterYellow:
		return strings.IndexByte(word, f.Letter) >= 0 && word[f.Position] != f.Letter
	case FilterGreen:
		return word[f.Position] == f.Letter
	}
	return false
}

func (f Filter) String() string {
	if f.Kind == FilterGray {
		return fmt.Sprintf("gray %c", f.Letter)
	}
	return fmt.Sprintf("%s %c@%d", f.Kind, f.Letter, f.Position+1)
}

// FiltersFromFeedback converts one round of feedback into filters.
// Skipped positions produce nothing.
func FiltersFromFeedback(fb Feedback) []Filter {
	filters := make([]Filter, 0, WordLength)
	for i, tok := range fb {
		f := Filter{Letter: tok.Letter, Position: i}
		switch tok.Symbol {
		case SymbolGray:
			f.Kind = FilterGray
		case SymbolYellow:
			f.Kind = FilterYellow
		case SymbolGreen:
			f.Kind = FilterGreen
		default:
			continue
		}
		filters = append(filters, f)
	}
	return filters
}

// MatchAll reports whether word passes every filter.
func MatchAll(word string, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(word) {
			return false
		}
	}
	return true
}
