// Package solver narrows a five-letter candidate list from guess feedback
// and proposes the next guess.
package solver

import (
	"errors"
	"fmt"
	"strings"
)

// WordLength is the fixed length of every candidate word.
const WordLength = 5

// Symbol is the feedback mark for one position.
type Symbol byte

// Feedback symbols as typed by the user.
const (
	SymbolGray   Symbol = '.'
	SymbolYellow Symbol = '_'
	SymbolGreen  Symbol = '!'
	SymbolSkip   Symbol = '-'
)

// RegenerateToken asks for another guess without adding feedback.
const RegenerateToken = "r"

var (
	ErrInvalidFeedback         = errors.New("invalid feedback")
	ErrContradictoryConstraint = errors.New("feedback contradicts an earlier green letter")
)

// FeedbackToken is the symbol and letter reported for a single position.
type FeedbackToken struct {
	Symbol Symbol
	Letter byte
}

// Feedback is one round of tokens, one per position.
type Feedback [WordLength]FeedbackToken

func (f Feedback) String() string {
	var b strings.Builder
	for _, t := range f {
		b.WriteByte(byte(t.Symbol))
		b.WriteByte(t.Letter)
	}
	return b.String()
}

func isSymbol(c byte) bool {
	switch Symbol(c) {
	case SymbolGray, SymbolYellow, SymbolGreen, SymbolSkip:
		return true
	}
	return false
}

// IsRegenerate reports whether raw is the regenerate token.
func IsRegenerate(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), RegenerateToken)
}

// ParseFeedback decodes a 10 character feedback string such as ".C.R.A!N.E".
// Spaces are ignored and letters are uppercased.
func ParseFeedback(raw string) (Feedback, error) {
	var fb Feedback
	s := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	if len(s) != 2*WordLength {
		return fb, fmt.Errorf("%w: want %d characters, got %d", ErrInvalidFeedback, 2*WordLength, len(s))
	}
	for i := range WordLength {
		sym, letter := s[2*i], s[2*i+1]
		if !isSymbol(sym) {
			return fb, fmt.Errorf("%w: unknown symbol %q at position %d", ErrInvalidFeedback, sym, i+1)
		}
		if letter < 'A' || letter > 'Z' {
			return fb, fmt.Errorf("%w: %q at position %d is not a letter", ErrInvalidFeedback, letter, i+1)
		}
		fb[i] = FeedbackToken{Symbol: Symbol(sym), Letter: letter}
	}
	return fb, nil
}
