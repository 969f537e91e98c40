// Package wordlist loads and converts candidate word lists.
package wordlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"vortsolvo/internal/types"
)

// WordLength is the only accepted word length.
const WordLength = 5

var ErrEmptyList = errors.New("word list contains no usable words")

// Load reads a JSON word list from path. See Parse for accepted formats.
func Load(path string) (words, skipped []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON array of strings or a {"words": [{"word": ...}]} object
// and normalizes the result. Entries that are not five letters are returned
// in skipped.
func Parse(data []byte) (words, skipped []string, err error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		var wl types.WordList
		if objErr := json.Unmarshal(data, &wl); objErr != nil {
			return nil, nil, fmt.Errorf("decode word list: %w", err)
		}
		raw = lo.Map(wl.Words, func(e types.WordEntry, _ int) string { return e.Word })
	}
	words, skipped = Normalize(raw)
	if len(words) == 0 {
		return nil, skipped, ErrEmptyList
	}
	return words, skipped, nil
}

// Normalize trims and uppercases entries, drops duplicates and returns the
// entries that are not five ASCII letters separately.
func Normalize(raw []string) (words, skipped []string) {
	upper := lo.Map(raw, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	valid := func(w string, _ int) bool { return isWord(w) }
	return lo.Uniq(lo.Filter(upper, valid)), lo.Reject(upper, valid)
}

func isWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := range len(w) {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// FromText reads one word per line, skipping blank lines.
func FromText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}

// DecodeEntry turns a string of two-digit ASCII codes ("6566" -> "AB") back
// into letters.
func DecodeEntry(encoded string) (string, error) {
	if len(encoded)%2 != 0 {
		return "", fmt.Errorf("encoded entry %q has odd length", encoded)
	}
	var b strings.Builder
	for i := 0; i < len(encoded); i += 2 {
		n, err := strconv.Atoi(encoded[i : i+2])
		if err != nil {
			return "", fmt.Errorf("encoded entry %q: %w", encoded, err)
		}
		b.WriteByte(byte(n))
	}
	return b.String(), nil
}

// DecodeJSON decodes a JSON array of encoded entries.
func DecodeJSON(data []byte) ([]string, error) {
	var encoded []string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, err
	}
	words := make([]string, 0, len(encoded))
	for _, e := range encoded {
		w, err := DecodeEntry(e)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// WriteJSON writes words as a JSON array.
func WriteJSON(w io.Writer, words []string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(words); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
