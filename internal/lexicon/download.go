package lexicon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultDictionaryURL is a plain list of English words, one per line.
const DefaultDictionaryURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

// DefaultDownloadTimeout bounds a dictionary download when no client is given.
const DefaultDownloadTimeout = 60 * time.Second

// DownloadSource fetches a word list over HTTP. A successful download is saved
// to CachePath; a failed one falls back to whatever CachePath already holds.
type DownloadSource struct {
	URL       string
	CachePath string
	Client    *http.Client
}

func (d DownloadSource) Name() string {
	return "download:" + d.URL
}

func (d DownloadSource) Words(ctx context.Context) ([]string, error) {
	words, err := d.fetch(ctx)
	if err == nil {
		if d.CachePath != "" {
			ws := NewWordSet(words)
			if cerr := WriteWordList(d.CachePath, ws.Sorted()); cerr != nil {
				log.Warn().Err(cerr).Str("path", d.CachePath).Msg("could not save dictionary")
			}
		}
		return words, nil
	}
	if d.CachePath == "" {
		return nil, fmt.Errorf("failed to download dictionary: %w", err)
	}
	if _, serr := os.Stat(d.CachePath); serr != nil {
		return nil, fmt.Errorf("failed to download dictionary: %w", err)
	}
	log.Warn().Err(err).Str("path", d.CachePath).Msg("could not update dictionary, using existing file")
	return FileSource{Path: d.CachePath}.Words(ctx)
}

func (d DownloadSource) fetch(ctx context.Context) ([]string, error) {
	if d.URL == "" {
		return nil, errors.New("no dictionary url")
	}
	client := d.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultDownloadTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	log.Info().Str("url", d.URL).Msg("downloading dictionary")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return ReadWordList(resp.Body)
}
