// Package letterbag turns raw letter input into the multiset of available
// letters, their point values, and any positional constraints.
package letterbag

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay_solver/internal/common"
	"github.com/domino14/wordplay_solver/internal/scoring"
)

// ConstraintMarker separates the free letters from the position constraints
// in a query, e.g. "artistic s=t1i2c3".
const ConstraintMarker = "s="

// MaxInlineValue caps inline values so that summing a word's letters cannot
// overflow.
const MaxInlineValue = math.MaxInt32

// Bag is the parsed form of a letter string such as "a1b3c3" or "letters".
// It is immutable after Parse returns.
type Bag struct {
	// values holds the point value of every letter in the bag: the inline
	// value when one was given, the standard value otherwise.
	values scoring.Values
	// overrides holds only the letters that carried an inline value.
	overrides scoring.Values
	available common.LetterCounts
	size      int
}

// Parse reads letters left to right. A letter may be followed by a run of
// digits giving its point value; the last value given for a letter wins.
// Anything that is not an ASCII letter or a digit run following one is
// skipped.
func Parse(raw string) *Bag {
	b := &Bag{
		values:    scoring.Values{},
		overrides: scoring.Values{},
	}
	forEachLetterNumber(raw, func(letter byte, digits string) {
		r := rune(letter)
		b.available[letter-'a']++
		b.size++
		if digits == "" {
			b.values[r] = defaultValue(r)
			delete(b.overrides, r)
			return
		}
		v, err := strconv.Atoi(digits)
		if err != nil || v > MaxInlineValue {
			log.Debug().Str("letter", string(r)).Str("value", digits).Msg("clamping inline value")
			v = MaxInlineValue
		}
		b.values[r] = v
		b.overrides[r] = v
	})
	return b
}

func defaultValue(r rune) int {
	if v, ok := scoring.StandardValue(r); ok {
		return v
	}
	return 1
}

// forEachLetterNumber walks s and calls fn for every ASCII letter (lowercased)
// together with the digit run that immediately follows it, if any.
func forEachLetterNumber(s string, fn func(letter byte, digits string)) {
	i := 0
	for i < len(s) {
		if !common.IsLetter(s[i]) {
			i++
			continue
		}
		letter := common.ToLower(s[i])
		i++
		start := i
		for i < len(s) && common.IsDigit(s[i]) {
			i++
		}
		fn(letter, s[start:i])
	}
}

// Values returns a copy of the bag's letter values.
func (b *Bag) Values() scoring.Values {
	return b.values.Clone()
}

// Overrides returns a copy of the letters that had an explicit inline value.
func (b *Bag) Overrides() scoring.Values {
	return b.overrides.Clone()
}

// Available returns the number of times each letter may be used.
func (b *Bag) Available() common.LetterCounts {
	return b.available
}

// Count returns how many copies of the letter the bag holds.
func (b *Bag) Count(r rune) int {
	if r < 'a' || r > 'z' {
		return 0
	}
	return b.available[r-'a']
}

// Size is the total number of letters in the bag, counting repeats.
func (b *Bag) Size() int {
	return b.size
}

// Empty reports whether the bag holds no letters.
func (b *Bag) Empty() bool {
	return b.size == 0
}

// Letters returns the bag's letters in alphabetical order.
func (b *Bag) Letters() string {
	var sb strings.Builder
	for i, n := range b.available {
		for j := 0; j < n; j++ {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

func (b *Bag) String() string {
	return b.Letters()
}

// Query is a parsed query: the free letters plus any position constraints.
type Query struct {
	Bag         *Bag
	Constraints Constraints
}

// ParseQuery splits raw at the first ConstraintMarker. The part before it is
// the bag; the part after it is a constraint specification.
func ParseQuery(raw string) Query {
	free, spec, found := strings.Cut(raw, ConstraintMarker)
	q := Query{Bag: Parse(strings.TrimSpace(free))}
	if found {
		q.Constraints = ParseConstraints(strings.TrimSpace(spec))
	}
	return q
}
