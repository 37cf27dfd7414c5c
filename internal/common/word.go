package common

import (
	"sort"
)

// NumLetters is the size of the alphabet the solver understands.
const NumLetters = 26

// LetterCounts is a frequency count of the letters a-z.
type LetterCounts [NumLetters]int

type Word struct {
	word string
}

func InitializeWord(word string) Word {
	return Word{word}
}

func (w Word) Word() string {
	return w.word
}

// MakeAlphagram sorts the letters of the word. Two words are anagrams of each
// other iff their alphagrams are equal.
func (w Word) MakeAlphagram() string {
	letters := []byte(w.word)
	sort.Slice(letters, func(i, j int) bool {
		return letters[i] < letters[j]
	})
	return string(letters)
}

// Counts returns the letter frequencies of the word. The second return value
// is false if the word contains anything other than a-z.
func (w Word) Counts() (LetterCounts, bool) {
	var c LetterCounts
	for i := 0; i < len(w.word); i++ {
		ch := w.word[i]
		if ch < 'a' || ch > 'z' {
			return c, false
		}
		c[ch-'a']++
	}
	return c, true
}

// IsLower reports whether ch is in a-z.
func IsLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch byte) bool {
	return IsLower(ch) || (ch >= 'A' && ch <= 'Z')
}

// IsDigit reports whether ch is an ASCII digit.
func IsDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// ToLower lowercases an ASCII letter and leaves anything else alone.
func ToLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
