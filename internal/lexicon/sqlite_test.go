package lexicon

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestSQLiteSource(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "lex.db")
	db, err := sql.Open("sqlite3", path)
	is.NoErr(err)
	_, err = db.Exec(`CREATE TABLE words (word TEXT PRIMARY KEY, alphagram TEXT, length INTEGER)`)
	is.NoErr(err)
	_, err = db.Exec(`INSERT INTO words (word, alphagram, length) VALUES ('cat', 'act', 3), ('dog', 'dgo', 3)`)
	is.NoErr(err)
	is.NoErr(db.Close())

	words, err := SQLiteSource{Path: path}.Words(context.Background())
	is.NoErr(err)
	ws := NewWordSet(words)
	is.Equal(ws.Sorted(), []string{"cat", "dog"})
}

func TestSQLiteSourceMissing(t *testing.T) {
	is := is.New(t)
	_, err := SQLiteSource{Path: filepath.Join(t.TempDir(), "missing.db")}.Words(context.Background())
	is.True(err != nil)
}
