package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	// sqlite3 driver is used by this source.
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource reads the words table of a lexicon database built by dbmaker.
type SQLiteSource struct {
	Path string
}

func (s SQLiteSource) Name() string {
	return "sqlite:" + s.Path
}

func (s SQLiteSource) Words(ctx context.Context) ([]string, error) {
	// sql.Open would happily create an empty database.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT word FROM words")
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()
	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
