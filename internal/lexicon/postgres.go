package lexicon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createWordsTable = `
CREATE TABLE IF NOT EXISTS words (
	lexicon text NOT NULL,
	word text NOT NULL,
	PRIMARY KEY (lexicon, word)
)`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads one named lexicon from a shared words table.
type PostgresSource struct {
	DB      querier
	Lexicon string
}

// NewPostgresPool connects to the database at uri.
func NewPostgresPool(ctx context.Context, uri string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (p PostgresSource) Name() string {
	return "postgres:" + p.Lexicon
}

func (p PostgresSource) Words(ctx context.Context) ([]string, error) {
	if p.DB == nil {
		return nil, errors.New("no database connection")
	}
	rows, err := p.DB.Query(ctx, "SELECT word FROM words WHERE lexicon = $1", p.Lexicon)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ImportPostgres stores words under the given lexicon name, creating the
// table if needed. Words that Normalize rejects are skipped.
func ImportPostgres(ctx context.Context, pool *pgxpool.Pool, lexicon string, words []string) (int64, error) {
	if _, err := pool.Exec(ctx, createWordsTable); err != nil {
		return 0, err
	}
	ws := NewWordSet(words)
	sorted := ws.Sorted()
	rows := make([][]any, len(sorted))
	for i, w := range sorted {
		rows[i] = []any{lexicon, w}
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, "DELETE FROM words WHERE lexicon = $1", lexicon); err != nil {
		return 0, err
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"words"}, []string{"lexicon", "word"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, err
	}
	return n, tx.Commit(ctx)
}
