package lexicon

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Source supplies raw dictionary entries. Entries are normalized by Load, so
// sources need not filter them.
type Source interface {
	Name() string
	Words(ctx context.Context) ([]string, error)
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Info().Msgf("%s took %s", name, elapsed)
}

// Load fetches every source concurrently and merges the results into one
// WordSet. Any source failing makes the whole lexicon unavailable.
func Load(ctx context.Context, sources ...Source) (*WordSet, error) {
	defer timeTrack(time.Now(), "lexicon load")
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no dictionary sources configured", ErrUnavailable)
	}
	results := make([][]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			words, err := src.Words(gctx)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrUnavailable, src.Name(), err)
			}
			log.Info().Str("source", src.Name()).Int("entries", len(words)).Msg("dictionary-source-loaded")
			results[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]string, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	ws := NewWordSet(all)
	if ws.Len() == 0 {
		return nil, ErrEmpty
	}
	log.Info().Int("words", ws.Len()).Msg("lexicon-loaded")
	return ws, nil
}
