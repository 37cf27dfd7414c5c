// Package dbmaker creates SQLITE databases from plain word lists, so the
// solver can load a lexicon without parsing text on every start.
package dbmaker

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	// sqlite3 driver is used by the lexicon database.
	_ "github.com/mattn/go-sqlite3"

	"github.com/domino14/wordplay_solver/internal/common"
	"github.com/domino14/wordplay_solver/internal/lexicon"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrExists is returned when the output database exists and force is off.
var ErrExists = errors.New("lexicon database already exists")

// Migrate brings the schema of the database at dbPath up to date.
func Migrate(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return err
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		db.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		db.Close()
		return err
	}
	// Closing m also closes db.
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating %s: %w", dbPath, err)
	}
	return nil
}

// CreateLexiconDatabase builds a lexicon database at dbPath from the word list
// at wordListPath. The database is built next to dbPath and moved into place
// once complete.
func CreateLexiconDatabase(ctx context.Context, wordListPath, dbPath string, force bool) (int, error) {
	defer timeTrack(time.Now(), "CreateLexiconDatabase")
	if _, err := os.Stat(dbPath); err == nil && !force {
		return 0, fmt.Errorf("%w: %s", ErrExists, dbPath)
	}
	fh, err := os.Open(wordListPath)
	if err != nil {
		return 0, err
	}
	raw, err := lexicon.ReadWordList(fh)
	fh.Close()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", wordListPath, err)
	}
	ws := lexicon.NewWordSet(raw)
	if ws.Len() == 0 {
		return 0, fmt.Errorf("%w: %s", lexicon.ErrEmpty, wordListPath)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		return 0, err
	}
	tmpPath := dbPath + ".tmp"
	os.Remove(tmpPath)
	if err := Migrate(tmpPath); err != nil {
		os.Remove(tmpPath)
		return 0, err
	}
	if err := populate(ctx, tmpPath, wordListPath, ws); err != nil {
		os.Remove(tmpPath)
		return 0, err
	}
	if err := moveFile(tmpPath, dbPath); err != nil {
		return 0, err
	}
	log.Info().Str("db", dbPath).Int("words", ws.Len()).Msg("created lexicon database")
	return ws.Len(), nil
}

func populate(ctx context.Context, dbPath, source string, ws *lexicon.WordSet) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word, alphagram, length) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range ws.Sorted() {
		word := common.InitializeWord(w)
		if _, err := stmt.ExecContext(ctx, w, word.MakeAlphagram(), len(w)); err != nil {
			return fmt.Errorf("inserting %s: %w", w, err)
		}
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO lexicon_info (source, num_words, created_at) VALUES (?, ?, ?)`,
		filepath.Base(source), ws.Len(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	return tx.Commit()
}
