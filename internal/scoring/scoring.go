// Package scoring computes word scores from per-letter point values and a
// length bonus.
package scoring

import (
	"maps"

	"github.com/domino14/wordplay_solver/internal/common"
)

// Values maps a lowercase letter to its point value.
type Values map[rune]int

// Standard Scrabble letter values.
var standardValues = Values{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2, 'h': 4,
	'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1, 'p': 3,
	'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 4, 'w': 4, 'x': 8,
	'y': 4, 'z': 10,
}

// StandardValues returns a copy of the standard letter value table.
func StandardValues() Values {
	return maps.Clone(standardValues)
}

// StandardValue returns the standard value of a lowercase letter.
func StandardValue(r rune) (int, bool) {
	v, ok := standardValues[r]
	return v, ok
}

// Clone returns a copy of v. A nil table clones to an empty one.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// LengthBonusTable holds the cumulative bonus for each word length, indexed by
// length. Words longer than the table get the bonus of the last entry.
type LengthBonusTable []int

// +5 each for the 5th-7th letters, +10 for 8th-9th, +15 for 10th-11th,
// +20 for 12th-14th, +25 for 15th-17th, then +30, +40, +50.
var defaultLengthBonus = LengthBonusTable{
	0, 0, 0, 0, 0,
	5, 10, 15,
	25, 35,
	50, 65,
	85, 105, 125,
	150, 175, 200,
	230,
	270,
	320,
}

// DefaultLengthBonus returns a copy of the standard length bonus table.
func DefaultLengthBonus() LengthBonusTable {
	t := make(LengthBonusTable, len(defaultLengthBonus))
	copy(t, defaultLengthBonus)
	return t
}

// Bonus returns the cumulative bonus for a word of length n.
func (t LengthBonusTable) Bonus(n int) int {
	if n <= 0 || len(t) == 0 {
		return 0
	}
	if n >= len(t) {
		return t[len(t)-1]
	}
	return t[n]
}

// Scorer scores words against a fixed length bonus table. It is safe for
// concurrent use.
type Scorer struct {
	bonus LengthBonusTable
}

// Default scores with the standard length bonus table.
var Default = NewScorer(defaultLengthBonus)

// NewScorer returns a Scorer using a copy of bonus. A nil table means no bonus.
func NewScorer(bonus LengthBonusTable) *Scorer {
	t := make(LengthBonusTable, len(bonus))
	copy(t, bonus)
	return &Scorer{bonus: t}
}

// BaseScore sums the value of every letter in the word, case-insensitively.
// Letters missing from values and non-letters contribute nothing.
func BaseScore(word string, values Values) int {
	total := 0
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if !common.IsLetter(ch) {
			continue
		}
		total += values[rune(common.ToLower(ch))]
	}
	return total
}

// LengthBonus returns the bonus for a word of length n.
func (s *Scorer) LengthBonus(n int) int {
	return s.bonus.Bonus(n)
}

// Score returns the base score of the word plus its length bonus.
func (s *Scorer) Score(word string, values Values) int {
	return BaseScore(word, values) + s.bonus.Bonus(len(word))
}

// Score scores the word with the Default scorer.
func Score(word string, values Values) int {
	return Default.Score(word, values)
}
