// Package matcher finds the dictionary words that can be spelled from a bag
// of letters.
package matcher

import (
	"github.com/domino14/wordplay_solver/internal/common"
	"github.com/domino14/wordplay_solver/internal/letterbag"
	"github.com/domino14/wordplay_solver/internal/lexicon"
)

// DefaultMinLength excludes trivially short words.
const DefaultMinLength = 4

// Matcher selects dictionary words spellable from a bag. It holds no per-query
// state and is safe for concurrent use.
type Matcher struct {
	minLength int
}

// New returns a Matcher that ignores words shorter than minLength.
func New(minLength int) *Matcher {
	if minLength < 0 {
		minLength = 0
	}
	return &Matcher{minLength: minLength}
}

// MinLength is the shortest word Match returns.
func (m *Matcher) MinLength() int {
	return m.minLength
}

// Formable reports whether word uses no letter more often than avail allows.
// Words containing anything other than a-z are never formable.
func Formable(word string, avail common.LetterCounts) bool {
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if !common.IsLower(ch) {
			return false
		}
		avail[ch-'a']--
		if avail[ch-'a'] < 0 {
			return false
		}
	}
	return true
}

// Match returns every word in lex that is at least MinLength long, can be
// formed from the bag, and satisfies all constraints. Order is unspecified.
func (m *Matcher) Match(lex lexicon.Lexicon, bag *letterbag.Bag, constraints letterbag.Constraints) []string {
	matches := []string{}
	if lex == nil || bag == nil || bag.Empty() {
		return matches
	}
	avail := bag.Available()
	maxLen := bag.Size()
	check := func(w string) {
		if len(w) < m.minLength || len(w) > maxLen {
			return
		}
		if !constraints.Satisfied(w) {
			return
		}
		if Formable(w, avail) {
			matches = append(matches, w)
		}
	}

	// A word can never be longer than the bag, so skip those lengths
	// entirely when the lexicon is bucketed.
	if idx, ok := lex.(lexicon.LengthIndexed); ok {
		hi := min(maxLen, idx.MaxLength())
		for n := m.minLength; n <= hi; n++ {
			for _, w := range idx.WithLength(n) {
				check(w)
			}
		}
		return matches
	}
	for w := range lex.All() {
		check(w)
	}
	return matches
}
