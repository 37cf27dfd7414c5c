package common

import (
	"testing"

	"github.com/matryer/is"
)

func TestAlphagram(t *testing.T) {
	is := is.New(t)
	w := InitializeWord("letters")
	is.Equal(w.MakeAlphagram(), "eelrstt")
	is.Equal(InitializeWord("").MakeAlphagram(), "")
}

func TestCounts(t *testing.T) {
	is := is.New(t)
	c, ok := InitializeWord("settler").Counts()
	is.True(ok)
	is.Equal(c['t'-'a'], 2)
	is.Equal(c['e'-'a'], 2)
	is.Equal(c['s'-'a'], 1)
	is.Equal(c['z'-'a'], 0)

	_, ok = InitializeWord("don't").Counts()
	is.True(!ok)
	_, ok = InitializeWord("Apple").Counts()
	is.True(!ok)
}

func TestToLower(t *testing.T) {
	is := is.New(t)
	is.Equal(ToLower('Q'), byte('q'))
	is.Equal(ToLower('q'), byte('q'))
	is.Equal(ToLower('7'), byte('7'))
	is.True(IsLetter('Z'))
	is.True(!IsLetter('1'))
	is.True(IsDigit('0'))
}
