package dbmaker

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay_solver/internal/lexicon"
)

func writeList(t *testing.T, dir, contents string) string {
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCreateLexiconDatabase(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	list := writeList(t, dir, "Letters\nsettler n. one who settles\ncafé\nrest\nrest\n\n")
	dbPath := filepath.Join(dir, "db", "lex.db")

	n, err := CreateLexiconDatabase(context.Background(), list, dbPath, false)
	is.NoErr(err)
	is.Equal(n, 3)

	db, err := sql.Open("sqlite3", dbPath)
	is.NoErr(err)
	defer db.Close()

	rows, err := db.Query(`SELECT word, alphagram, length FROM words ORDER BY word`)
	is.NoErr(err)
	defer rows.Close()
	type row struct {
		word, alphagram string
		length          int
	}
	got := []row{}
	for rows.Next() {
		var r row
		is.NoErr(rows.Scan(&r.word, &r.alphagram, &r.length))
		got = append(got, r)
	}
	is.NoErr(rows.Err())
	assert.Equal(t, []row{
		{"letters", "eelrstt", 7},
		{"rest", "erst", 4},
		{"settler", "eelrstt", 7},
	}, got)

	var numWords int
	is.NoErr(db.QueryRow(`SELECT num_words FROM lexicon_info`).Scan(&numWords))
	is.Equal(numWords, 3)

	// The same database is readable by the lexicon source.
	words, err := lexicon.SQLiteSource{Path: dbPath}.Words(context.Background())
	is.NoErr(err)
	is.Equal(lexicon.NewWordSet(words).Sorted(), []string{"letters", "rest", "settler"})

	_, err = os.Stat(dbPath + ".tmp")
	is.True(os.IsNotExist(err))
}

func TestCreateLexiconDatabaseExists(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	list := writeList(t, dir, "rest\n")
	dbPath := filepath.Join(dir, "lex.db")

	_, err := CreateLexiconDatabase(context.Background(), list, dbPath, false)
	is.NoErr(err)
	_, err = CreateLexiconDatabase(context.Background(), list, dbPath, false)
	is.True(errors.Is(err, ErrExists))

	require.NoError(t, os.WriteFile(list, []byte("rest\ntree\n"), 0o644))
	n, err := CreateLexiconDatabase(context.Background(), list, dbPath, true)
	is.NoErr(err)
	is.Equal(n, 2)
}

func TestCreateLexiconDatabaseEmpty(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	list := writeList(t, dir, "123\n\n")
	_, err := CreateLexiconDatabase(context.Background(), list, filepath.Join(dir, "lex.db"), false)
	is.True(errors.Is(err, lexicon.ErrEmpty))
}

func TestMigrateIdempotent(t *testing.T) {
	is := is.New(t)
	dbPath := filepath.Join(t.TempDir(), "lex.db")
	is.NoErr(Migrate(dbPath))
	is.NoErr(Migrate(dbPath))
}
