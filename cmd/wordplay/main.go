// wordplay finds the highest-scoring words that can be built from a set of
// letters.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay_solver/config"
	"github.com/domino14/wordplay_solver/internal/detect"
	"github.com/domino14/wordplay_solver/internal/letterbag"
	"github.com/domino14/wordplay_solver/internal/lexicon"
	"github.com/domino14/wordplay_solver/internal/solver"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("wordplay failed")
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}
	os.Exit(code)
}

// run returns the process exit status.
func run(ctx context.Context, cfg *config.Config, out io.Writer) (int, error) {
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
	}
	if cfg.AddWords != "" {
		return addCustomWords(ctx, rdb, cfg.RedisKey, cfg.AddWords, out)
	}

	var pool *pgxpool.Pool
	if cfg.DBConnUri != "" {
		var err error
		pool, err = lexicon.NewPostgresPool(ctx, cfg.DBConnUri)
		if err != nil {
			return 1, err
		}
		defer pool.Close()
	}

	sources := wordListSources(cfg)
	if cfg.ImportPG {
		if pool == nil {
			return 2, errors.New("-import-pg needs -db-conn-uri")
		}
		lex, err := lexicon.Load(ctx, sources...)
		if err != nil {
			return 1, err
		}
		n, err := lexicon.ImportPostgres(ctx, pool, cfg.PGLexicon, lex.Sorted())
		if err != nil {
			return 1, err
		}
		fmt.Fprintf(out, "Imported %d words into lexicon %s\n", n, cfg.PGLexicon)
		return 0, nil
	}
	if pool != nil {
		sources = append(sources, lexicon.PostgresSource{DB: pool, Lexicon: cfg.PGLexicon})
	}
	if rdb != nil {
		sources = append(sources, lexicon.NewRedisSource(rdb, cfg.RedisKey))
	}

	lex, err := lexicon.Load(ctx, sources...)
	if err != nil {
		return 1, err
	}
	s, err := newSolver(cfg, lex)
	if err != nil {
		return 2, err
	}

	if cfg.Interactive || len(cfg.Letters) == 0 {
		var det detect.Detector
		if d := detect.FromConfig(cfg.DetectCommand); d != nil {
			det = d
		}
		p := tea.NewProgram(initialModel(s, det, cfg.TopK), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return 1, err
		}
		return 0, nil
	}
	return solveOnce(s, strings.Join(cfg.Letters, " "), cfg.TopK, out)
}

// wordListSources picks the primary word list: a lexicon database, the
// downloaded dictionary, or a local file.
func wordListSources(cfg *config.Config) []lexicon.Source {
	if cfg.LexiconDBPath != "" {
		return []lexicon.Source{lexicon.SQLiteSource{Path: cfg.LexiconDBPath}}
	}
	if _, err := os.Stat(cfg.DictionaryPath); cfg.Download || err != nil {
		log.Info().Str("url", cfg.DictionaryURL).Str("path", cfg.DictionaryPath).Msg("downloading dictionary")
		return []lexicon.Source{lexicon.DownloadSource{URL: cfg.DictionaryURL, CachePath: cfg.DictionaryPath}}
	}
	return []lexicon.Source{lexicon.FileSource{Path: cfg.DictionaryPath}}
}

func newSolver(cfg *config.Config, lex lexicon.Lexicon) (*solver.Solver, error) {
	values, err := letterbag.LoadValuesFile(cfg.LetterValuesPath)
	if err != nil {
		return nil, err
	}
	order, err := letterbag.ParseMergeOrder(cfg.MergeOrder)
	if err != nil {
		return nil, err
	}
	return solver.New(lex,
		solver.WithConfigValues(values),
		solver.WithMergeOrder(order),
		solver.WithTopK(cfg.TopK),
		solver.WithMinLength(cfg.MinLength),
		solver.WithMinGroupLength(cfg.MinGroupLength),
	), nil
}

func solveOnce(s *solver.Solver, query string, topK int, out io.Writer) (int, error) {
	res, err := s.Solve(query)
	if err != nil {
		return 1, err
	}
	fmt.Fprint(out, renderResult(res, topK))
	if res.Empty() {
		return 1, nil
	}
	return 0, nil
}

func addCustomWords(ctx context.Context, rdb *redis.Client, key, words string, out io.Writer) (int, error) {
	if rdb == nil {
		return 2, errors.New("-add-words needs -redis-addr")
	}
	rs := lexicon.NewRedisSource(rdb, key)
	added := 0
	for _, w := range strings.Split(words, ",") {
		if err := rs.Add(ctx, w); err != nil {
			log.Warn().Err(err).Str("word", w).Msg("skipping custom word")
			continue
		}
		added++
	}
	fmt.Fprintf(out, "Added %d custom words\n", added)
	return 0, nil
}
