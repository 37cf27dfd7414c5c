// Package lexicon holds the set of known words and the sources it can be
// loaded from.
package lexicon

import (
	"errors"
	"iter"
	"sort"
	"strings"

	"github.com/domino14/wordplay_solver/internal/common"
)

var (
	// ErrUnavailable is returned when no lexicon could be loaded.
	ErrUnavailable = errors.New("lexicon unavailable")
	// ErrEmpty is returned when every source loaded but no usable word was found.
	ErrEmpty = errors.New("lexicon is empty")
)

// Lexicon is a read-only set of lowercase, alphabetic words.
type Lexicon interface {
	Contains(word string) bool
	All() iter.Seq[string]
	Len() int
}

// LengthIndexed is implemented by lexica that can enumerate words of a single
// length without scanning everything.
type LengthIndexed interface {
	WithLength(n int) []string
	MaxLength() int
}

// WordSet is an immutable Lexicon. Words are bucketed by length. It is safe for
// concurrent readers.
type WordSet struct {
	words    map[string]struct{}
	byLength [][]string
}

// Normalize trims and lowercases a dictionary entry. It returns false for
// entries that are empty or contain anything other than letters.
func Normalize(entry string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(entry))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if !common.IsLower(w[i]) {
			return "", false
		}
	}
	return w, true
}

// NewWordSet builds a WordSet from raw entries, dropping anything Normalize
// rejects and removing duplicates.
func NewWordSet(entries []string) *WordSet {
	ws := &WordSet{words: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		w, ok := Normalize(e)
		if !ok {
			continue
		}
		if _, dup := ws.words[w]; dup {
			continue
		}
		ws.words[w] = struct{}{}
		for len(ws.byLength) <= len(w) {
			ws.byLength = append(ws.byLength, nil)
		}
		ws.byLength[len(w)] = append(ws.byLength[len(w)], w)
	}
	for _, bucket := range ws.byLength {
		sort.Strings(bucket)
	}
	return ws
}

func (ws *WordSet) Contains(word string) bool {
	_, ok := ws.words[strings.ToLower(word)]
	return ok
}

// All yields every word, shortest first and alphabetically within a length.
func (ws *WordSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, bucket := range ws.byLength {
			for _, w := range bucket {
				if !yield(w) {
					return
				}
			}
		}
	}
}

func (ws *WordSet) Len() int {
	return len(ws.words)
}

// WithLength returns the words of length n. The slice must not be modified.
func (ws *WordSet) WithLength(n int) []string {
	if n < 0 || n >= len(ws.byLength) {
		return nil
	}
	return ws.byLength[n]
}

func (ws *WordSet) MaxLength() int {
	return len(ws.byLength) - 1
}

// Sorted returns all words in alphabetical order.
func (ws *WordSet) Sorted() []string {
	out := make([]string, 0, len(ws.words))
	for w := range ws.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
