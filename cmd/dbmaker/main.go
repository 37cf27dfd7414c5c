// The caller of the db creator.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay_solver/dbmaker"
)

type Config struct {
	wordList    string
	output      string
	forceCreate bool
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dbmaker", flag.ContinueOnError)
	fs.StringVar(&c.wordList, "wordlist", "", "The word list to build from, one word per line")
	fs.StringVar(&c.output, "out", "lexicon.db", "The output database")
	fs.BoolVar(&c.forceCreate, "force", false, "Create DB even if it already exists (overwrite)")
	return fs.Parse(args)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	log.Info().Str("wordlist", cfg.wordList).Str("out", cfg.output).Bool("force", cfg.forceCreate).
		Msg("dbmaker-started")
	if cfg.wordList == "" {
		log.Fatal().Msg("must provide a word list with -wordlist")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := dbmaker.CreateLexiconDatabase(ctx, cfg.wordList, cfg.output, cfg.forceCreate); err != nil {
		log.Fatal().Err(err).Msg("could not create lexicon database")
	}
}
