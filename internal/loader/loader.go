// Package loader reads word lists and board files from disk.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/trie"
)

// InvalidInputError reports a dictionary or grid source that could not be
// read. No partially built structure is returned alongside it.
type InvalidInputError struct {
	Source string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %v", e.Source, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// ReadWords reads one word per line. Lines are trimmed and NFC normalized;
// blank lines are skipped. Case folding is left to the dictionary.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, norm.NFC.String(w))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadWords reads the word list at path.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InvalidInputError{Source: path, Err: err}
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, &InvalidInputError{Source: path, Err: err}
	}
	return words, nil
}

// LoadDictionary reads the word list at path and builds its index.
func LoadDictionary(path string) (*trie.Dictionary, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, err
	}
	return trie.Build(words), nil
}

// LoadGrid reads a CSV board file. Unreadable files and CSV syntax errors
// are InvalidInputErrors; well-formed CSV that is not a valid board is a
// grid.MalformedGridError.
func LoadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InvalidInputError{Source: path, Err: err}
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		if grid.IsMalformed(err) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &InvalidInputError{Source: path, Err: err}
	}
	return g, nil
}

// WriteGrid writes g to path in the CSV form read by LoadGrid.
func WriteGrid(path string, g *grid.Grid) error {
	if err := os.WriteFile(path, []byte(g.String()), 0644); err != nil {
		return fmt.Errorf("write grid %s: %w", path, err)
	}
	return nil
}
