package config

import (
	"os"
	"path/filepath"

	"github.com/namsral/flag"

	"github.com/domino14/wordplay_solver/internal/letterbag"
	"github.com/domino14/wordplay_solver/internal/lexicon"
	"github.com/domino14/wordplay_solver/internal/matcher"
	"github.com/domino14/wordplay_solver/internal/ranker"
)

type Config struct {
	DictionaryPath string
	DictionaryURL  string
	Download       bool
	LexiconDBPath  string

	DBConnUri string
	PGLexicon string
	ImportPG  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
	AddWords      string

	LetterValuesPath string
	MergeOrder       string

	TopK           int
	MinLength      int
	MinGroupLength int

	DetectCommand string
	Interactive   bool

	LogLevel string

	// Letters holds the positional arguments left after flag parsing.
	Letters []string
}

// DefaultDataDir is where the dictionary cache and letter value file live
// unless overridden.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordplay_solver"
	}
	return filepath.Join(home, ".wordplay_solver")
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("wordplay", flag.ContinueOnError)
	dataDir := DefaultDataDir()

	fs.StringVar(&c.DictionaryPath, "dict", filepath.Join(dataDir, "dictionary.txt"), "word list, one word per line; also the download cache")
	fs.StringVar(&c.DictionaryURL, "dict-url", lexicon.DefaultDictionaryURL, "where to download the word list from")
	fs.BoolVar(&c.Download, "download", false, "download the word list even if a local copy exists")
	fs.StringVar(&c.LexiconDBPath, "lexicon-db", "", "sqlite lexicon database built by dbmaker (used instead of -dict)")

	fs.StringVar(&c.DBConnUri, "db-conn-uri", "", "postgres connection uri for a shared word table")
	fs.StringVar(&c.PGLexicon, "pg-lexicon", "default", "lexicon name in the postgres word table")
	fs.BoolVar(&c.ImportPG, "import-pg", false, "copy the loaded word list into postgres under -pg-lexicon and exit")

	fs.StringVar(&c.RedisAddr, "redis-addr", "", "redis address holding custom words")
	fs.StringVar(&c.RedisPassword, "redis-password", "", "redis password")
	fs.IntVar(&c.RedisDB, "redis-db", 0, "redis database number")
	fs.StringVar(&c.RedisKey, "redis-key", lexicon.DefaultCustomWordsKey, "redis set holding custom words")
	fs.StringVar(&c.AddWords, "add-words", "", "comma-separated custom words to add to the redis set, then exit")

	fs.StringVar(&c.LetterValuesPath, "letter-values", filepath.Join(dataDir, "letter_values.yaml"), "yaml file with letter value overrides")
	fs.StringVar(&c.MergeOrder, "merge-order", letterbag.ConfigWins.String(), "which values win when both the query and the file set a letter: config or inline")

	fs.IntVar(&c.TopK, "top", ranker.DefaultTopK, "how many words to show in each list")
	fs.IntVar(&c.MinLength, "min-length", matcher.DefaultMinLength, "shortest word to consider")
	fs.IntVar(&c.MinGroupLength, "min-group-length", ranker.DefaultMinGroupLength, "shortest length listed in the by-length view")

	fs.StringVar(&c.DetectCommand, "detect-cmd", "", "command that prints the letters currently on screen")
	fs.BoolVar(&c.Interactive, "i", false, "interactive mode")

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.Letters = fs.Args()
	return nil
}
