package letterbag

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

// Constraints maps a 1-based position to the letter that must occupy it.
type Constraints map[int]rune

// ParseConstraints reads a specification such as "t1i2c3", meaning t at
// position 1, i at 2 and c at 3. Pairs without a position, or with position
// zero, are dropped. The last letter given for a position wins.
func ParseConstraints(spec string) Constraints {
	c := Constraints{}
	forEachLetterNumber(spec, func(letter byte, digits string) {
		if digits == "" {
			return
		}
		pos, err := strconv.Atoi(digits)
		if err != nil || pos <= 0 {
			log.Debug().Str("letter", string(rune(letter))).Str("pos", digits).
				Msg("dropping position constraint")
			return
		}
		c[pos] = rune(letter)
	})
	return c
}

// Satisfied reports whether word has the required letter at every
// constrained position. An empty constraint set is satisfied by any word.
func (c Constraints) Satisfied(word string) bool {
	for pos, ch := range c {
		if pos > len(word) || rune(word[pos-1]) != ch {
			return false
		}
	}
	return true
}
