package solver

import "slices"

// Session is the state of one assisted puzzle: committed constraint levels
// and the append-only filter sequence. It is not safe for concurrent use.
type Session struct {
	words       []string
	picker      Picker
	constraints Constraints
	filters     []Filter
	round       int
}

// NewSession starts an empty session over words.
func NewSession(words []string, picker Picker) *Session {
	return &Session{words: words, picker: picker}
}

// Guess selects a guess from the committed filters.
func (s *Session) Guess() GuessResult {
	return SelectGuess(s.words, s.filters, s.picker)
}

// Regenerate draws another guess without adding feedback.
func (s *Session) Regenerate() GuessResult {
	return s.Guess()
}

// Apply commits one round of feedback. A contradictory round returns
// ErrContradictoryConstraint and leaves the session untouched.
func (s *Session) Apply(fb Feedback) error {
	next, ok := UpdateConstraints(s.constraints, fb)
	if !ok {
		return ErrContradictoryConstraint
	}
	s.constraints = next
	s.filters = append(s.filters, FiltersFromFeedback(fb)...)
	s.round++
	return nil
}

// Round is the number of committed feedback rounds.
func (s *Session) Round() int { return s.round }

func (s *Session) Constraints() Constraints { return s.constraints }

func (s *Session) Filters() []Filter { return slices.Clone(s.filters) }

// WordCount is the size of the underlying word list.
func (s *Session) WordCount() int { return len(s.words) }
