package types

import "time"

// WordEntry is the object form of a word list entry. Hint is optional.
type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// WordList is the object form of a word list file: {"words": [...]}.
type WordList struct {
	Words []WordEntry `json:"words"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type GuessView struct {
	Guess         string   `json:"guess"`
	Solved        bool     `json:"solved"`
	Count         int      `json:"count"`
	Possibilities []string `json:"possibilities"`
	Remaining     int      `json:"remaining"`
}

type SessionSnapshot struct {
	ID             string    `json:"id"`
	Round          int       `json:"round"`
	Constraints    []string  `json:"constraints"`
	Filters        []string  `json:"filters"`
	LastGuess      GuessView `json:"lastGuess"`
	LastAccessTime time.Time `json:"lastAccessTime"`
}
