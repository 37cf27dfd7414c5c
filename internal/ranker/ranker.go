// Package ranker orders scored words and builds the top-N views shown to the
// user.
package ranker

import (
	"fmt"
	"slices"
	"sort"
)

const (
	// DefaultTopK is how many words each view holds.
	DefaultTopK = 5
	// DefaultMinGroupLength is the shortest length that gets its own group.
	DefaultMinGroupLength = 4
)

// ScoredWord is a candidate word with its total score.
type ScoredWord struct {
	Word   string
	Score  int
	Length int
}

// NewScoredWord records word with its score and length.
func NewScoredWord(word string, score int) ScoredWord {
	return ScoredWord{Word: word, Score: score, Length: len(word)}
}

func (s ScoredWord) String() string {
	return fmt.Sprintf("%s(%d)", s.Word, s.Score)
}

// Less orders by score descending, then length descending, then word
// ascending. It is a strict total order on distinct words.
func Less(a, b ScoredWord) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Length != b.Length {
		return a.Length > b.Length
	}
	return a.Word < b.Word
}

// ByRank sorts ScoredWords with Less.
type ByRank []ScoredWord

func (ws ByRank) Len() int           { return len(ws) }
func (ws ByRank) Swap(i, j int)      { ws[i], ws[j] = ws[j], ws[i] }
func (ws ByRank) Less(i, j int) bool { return Less(ws[i], ws[j]) }

// LengthGroup holds the best words of a single length.
type LengthGroup struct {
	Length int
	Words  []ScoredWord
}

// Result is the ranked output of one query.
type Result struct {
	// Top holds the best words overall.
	Top []ScoredWord
	// ByLength holds the best words per length, ordered by length ascending.
	ByLength []LengthGroup
}

// Empty reports whether no word matched.
func (r *Result) Empty() bool {
	return len(r.Top) == 0
}

// Group returns the group for the given length, if any.
func (r *Result) Group(length int) (LengthGroup, bool) {
	for _, g := range r.ByLength {
		if g.Length == length {
			return g, true
		}
	}
	return LengthGroup{}, false
}

// Ranker orders scored words and cuts them into the top and per-length views.
type Ranker struct {
	topK      int
	minLength int
}

// New returns a Ranker keeping topK words per view and grouping lengths of at
// least minLength.
func New(topK, minLength int) *Ranker {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Ranker{topK: topK, minLength: minLength}
}

// Sort returns a sorted copy of words.
func Sort(words []ScoredWord) []ScoredWord {
	out := slices.Clone(words)
	sort.Sort(ByRank(out))
	return out
}

// Rank sorts words and builds both views. The input is not modified; an empty
// input gives an empty result.
func (r *Ranker) Rank(words []ScoredWord) *Result {
	res := &Result{Top: []ScoredWord{}, ByLength: []LengthGroup{}}
	if len(words) == 0 {
		return res
	}
	sorted := Sort(words)
	res.Top = slices.Clone(sorted[:min(r.topK, len(sorted))])

	groups := map[int][]ScoredWord{}
	for _, w := range sorted {
		if w.Length < r.minLength {
			continue
		}
		// sorted is already in rank order, so each group is too.
		if len(groups[w.Length]) < r.topK {
			groups[w.Length] = append(groups[w.Length], w)
		}
	}
	lengths := make([]int, 0, len(groups))
	for l := range groups {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	for _, l := range lengths {
		res.ByLength = append(res.ByLength, LengthGroup{Length: l, Words: groups[l]})
	}
	return res
}

// Best returns the single highest-ranked word.
func Best(words []ScoredWord) (ScoredWord, bool) {
	if len(words) == 0 {
		return ScoredWord{}, false
	}
	best := words[0]
	for _, w := range words[1:] {
		if Less(w, best) {
			best = w
		}
	}
	return best, true
}
