package lexicon

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in  string
		out string
		ok  bool
	}{
		{"Hello", "hello", true},
		{"  trim\r", "trim", true},
		{"", "", false},
		{"don't", "", false},
		{"café", "", false},
		{"abc1", "", false},
	}
	for _, tc := range tests {
		out, ok := Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.out, out, tc.in)
	}
}

func TestWordSet(t *testing.T) {
	is := is.New(t)
	ws := NewWordSet([]string{"Cat", "cat", "dog", "zebra", "x-ray", "", "a"})
	is.Equal(ws.Len(), 4)
	is.True(ws.Contains("cat"))
	is.True(ws.Contains("CAT"))
	is.True(!ws.Contains("x-ray"))
	is.Equal(ws.WithLength(3), []string{"cat", "dog"})
	is.Equal(ws.WithLength(4), nil)
	is.Equal(ws.WithLength(99), nil)
	is.Equal(ws.WithLength(-1), nil)
	is.Equal(ws.MaxLength(), 5)
	is.Equal(slices.Collect(ws.All()), []string{"a", "cat", "dog", "zebra"})
	is.Equal(ws.Sorted(), []string{"a", "cat", "dog", "zebra"})
}

func TestWordSetAllStopsEarly(t *testing.T) {
	is := is.New(t)
	ws := NewWordSet([]string{"one", "two", "three"})
	seen := 0
	for range ws.All() {
		seen++
		break
	}
	is.Equal(seen, 1)
}

type fakeSource struct {
	name  string
	words []string
	err   error
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Words(ctx context.Context) ([]string, error) {
	return f.words, f.err
}

func TestLoadMerges(t *testing.T) {
	is := is.New(t)
	ws, err := Load(context.Background(),
		fakeSource{name: "a", words: []string{"apple", "pear"}},
		fakeSource{name: "b", words: []string{"PEAR", "plum", "not a word"}},
	)
	is.NoErr(err)
	is.Equal(ws.Sorted(), []string{"apple", "pear", "plum"})
}

func TestLoadFailure(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	_, err := Load(context.Background(),
		fakeSource{name: "ok", words: []string{"apple"}},
		fakeSource{name: "bad", err: boom},
	)
	is.True(errors.Is(err, ErrUnavailable))
	is.True(errors.Is(err, boom))
}

func TestLoadNoSources(t *testing.T) {
	is := is.New(t)
	_, err := Load(context.Background())
	is.True(errors.Is(err, ErrUnavailable))
}

func TestLoadEmpty(t *testing.T) {
	is := is.New(t)
	_, err := Load(context.Background(), fakeSource{name: "junk", words: []string{"123", "a b"}})
	is.True(errors.Is(err, ErrEmpty))
}
