package lexicon

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// FileSource reads a word list with one entry per line. Only the first
// whitespace-separated field of a line is used, so lists that carry
// definitions after the word work too.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string {
	return "file:" + f.Path
}

func (f FileSource) Words(ctx context.Context) ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		// mmap refuses empty files.
		return nil, nil
	}
	m, err := mmap.Map(fh, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", f.Path, err)
	}
	defer m.Unmap()
	return ReadWordList(bytes.NewReader(m))
}

// ReadWordList returns the first field of every non-blank line of r.
func ReadWordList(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) > 0 {
			words = append(words, string(fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// WriteWordList writes words one per line, creating parent directories as
// needed. The file is written to a temporary name first and renamed into
// place.
func WriteWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wordlist-*")
	if err != nil {
		return err
	}
	w := bufio.NewWriter(tmp)
	for _, word := range words {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
