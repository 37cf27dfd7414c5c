package letterbag

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordplay_solver/internal/scoring"
)

// MergeOrder decides who wins when both the query and the letter value config
// give a value for the same letter.
type MergeOrder int

const (
	// ConfigWins lets configured values replace inline query values.
	ConfigWins MergeOrder = iota
	// InlineWins lets inline query values replace configured values. Letters
	// typed without a value still take the configured value.
	InlineWins
)

func (m MergeOrder) String() string {
	switch m {
	case ConfigWins:
		return "config"
	case InlineWins:
		return "inline"
	}
	return fmt.Sprintf("MergeOrder(%d)", int(m))
}

// ParseMergeOrder parses "config" or "inline".
func ParseMergeOrder(s string) (MergeOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "config", "":
		return ConfigWins, nil
	case "inline":
		return InlineWins, nil
	}
	return ConfigWins, fmt.Errorf("unknown merge order %q (want config or inline)", s)
}

// ResolveValues builds the letter value table for one query: the bag's own
// values combined with the configured ones according to order.
func ResolveValues(b *Bag, configured scoring.Values, order MergeOrder) scoring.Values {
	out := b.values.Clone()
	for r, v := range configured {
		if r < 'a' || r > 'z' || v < 0 {
			continue
		}
		if order == InlineWins {
			if _, explicit := b.overrides[r]; explicit {
				continue
			}
		}
		out[r] = v
	}
	return out
}

type valuesFile struct {
	LetterValues map[string]yaml.Node `yaml:"letter_values"`
}

// LoadValuesFile reads letter value overrides from a YAML file of the form
//
//	letter_values:
//	  a: 2
//	  q: 12
//
// A missing file yields an empty table. Keys that are not a single letter and
// values that are not non-negative integers are skipped.
func LoadValuesFile(path string) (scoring.Values, error) {
	vals := scoring.Values{}
	if path == "" {
		return vals, nil
	}
	bts, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Str("path", path).Msg("letter value file not found; using standard values")
		return vals, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading letter values: %w", err)
	}
	return parseValues(bts)
}

func parseValues(bts []byte) (scoring.Values, error) {
	vals := scoring.Values{}
	var vf valuesFile
	if err := yaml.Unmarshal(bts, &vf); err != nil {
		return nil, fmt.Errorf("parsing letter values: %w", err)
	}
	for k, node := range vf.LetterValues {
		key := strings.ToLower(k)
		if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
			log.Warn().Str("key", k).Msg("skipping letter value: not a single letter")
			continue
		}
		var v int
		if err := node.Decode(&v); err != nil || v < 0 {
			log.Warn().Str("key", k).Str("value", node.Value).Msg("skipping letter value: not a non-negative integer")
			continue
		}
		vals[rune(key[0])] = v
	}
	return vals, nil
}
