// Package solver runs one letter query through the whole pipeline: parse the
// bag, match it against the lexicon, score the matches, and rank them.
package solver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay_solver/internal/letterbag"
	"github.com/domino14/wordplay_solver/internal/lexicon"
	"github.com/domino14/wordplay_solver/internal/matcher"
	"github.com/domino14/wordplay_solver/internal/ranker"
	"github.com/domino14/wordplay_solver/internal/scoring"
)

// Solver is safe for concurrent use once built; every query allocates its own
// state and the lexicon is only read.
type Solver struct {
	lex          lexicon.Lexicon
	configValues scoring.Values
	mergeOrder   letterbag.MergeOrder
	scorer       *scoring.Scorer
	topK         int
	minLength    int
	minGroup     int
	matcher      *matcher.Matcher
	ranker       *ranker.Ranker
}

// Option configures a Solver.
type Option func(*Solver)

// WithConfigValues sets the configured letter values merged into every query.
func WithConfigValues(v scoring.Values) Option {
	return func(s *Solver) {
		s.configValues = v.Clone()
	}
}

// WithMergeOrder picks whether configured or inline values win.
func WithMergeOrder(m letterbag.MergeOrder) Option {
	return func(s *Solver) {
		s.mergeOrder = m
	}
}

// WithTopK sets how many words each ranked view keeps.
func WithTopK(k int) Option {
	return func(s *Solver) {
		s.topK = k
	}
}

// WithMinLength sets the shortest word the matcher accepts.
func WithMinLength(n int) Option {
	return func(s *Solver) {
		s.minLength = n
	}
}

// WithMinGroupLength sets the shortest length that gets its own group in the
// per-length view. It is independent of the matcher's minimum length.
func WithMinGroupLength(n int) Option {
	return func(s *Solver) {
		s.minGroup = n
	}
}

// WithScorer replaces the default scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Solver) {
		s.scorer = sc
	}
}

// New returns a Solver over lex. A nil lex is allowed; every query then
// fails with lexicon.ErrUnavailable.
func New(lex lexicon.Lexicon, opts ...Option) *Solver {
	s := &Solver{
		lex:          lex,
		configValues: scoring.Values{},
		mergeOrder:   letterbag.ConfigWins,
		scorer:       scoring.Default,
		topK:         ranker.DefaultTopK,
		minLength:    matcher.DefaultMinLength,
		minGroup:     ranker.DefaultMinGroupLength,
	}
	for _, o := range opts {
		o(s)
	}
	s.matcher = matcher.New(s.minLength)
	s.ranker = ranker.New(s.topK, s.minGroup)
	return s
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}

// Solve ranks the words that can be made from query using the solver's
// configured letter values.
func (s *Solver) Solve(query string) (*ranker.Result, error) {
	return s.SolveWith(query, nil)
}

// SolveWith is Solve with extra values layered over the configured ones for
// this query only.
func (s *Solver) SolveWith(query string, custom scoring.Values) (*ranker.Result, error) {
	scored, err := s.AllWordsWithScoresWith(query, custom)
	if err != nil {
		return nil, err
	}
	return s.ranker.Rank(scored), nil
}

// AllWordsWithScores returns every matching word, sorted best first.
func (s *Solver) AllWordsWithScores(query string) ([]ranker.ScoredWord, error) {
	return s.AllWordsWithScoresWith(query, nil)
}

func (s *Solver) AllWordsWithScoresWith(query string, custom scoring.Values) ([]ranker.ScoredWord, error) {
	defer timeTrack(time.Now(), "solve")
	if s.lex == nil {
		return nil, lexicon.ErrUnavailable
	}
	q := letterbag.ParseQuery(query)
	values := letterbag.ResolveValues(q.Bag, s.mergedConfig(custom), s.mergeOrder)

	matches := s.matcher.Match(s.lex, q.Bag, q.Constraints)
	scored := make([]ranker.ScoredWord, len(matches))
	for i, w := range matches {
		scored[i] = ranker.NewScoredWord(w, s.scorer.Score(w, values))
	}
	log.Debug().Str("bag", q.Bag.Letters()).Int("constraints", len(q.Constraints)).
		Int("matches", len(scored)).Msg("solved")
	return ranker.Sort(scored), nil
}

// BestWord returns the single best word for the query, or ok=false when
// nothing matches.
//
// Deprecated: use Solve, which also reports the runners-up.
func (s *Solver) BestWord(query string) (word ranker.ScoredWord, ok bool, err error) {
	scored, err := s.AllWordsWithScores(query)
	if err != nil {
		return ranker.ScoredWord{}, false, err
	}
	word, ok = ranker.Best(scored)
	return word, ok, nil
}

func (s *Solver) mergedConfig(custom scoring.Values) scoring.Values {
	if len(custom) == 0 {
		return s.configValues
	}
	merged := s.configValues.Clone()
	for r, v := range custom {
		merged[r] = v
	}
	return merged
}
