package cli

import (
	"fmt"
	"os"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/loader"
	"github.com/roach88/wordgrid/internal/store"
	"github.com/roach88/wordgrid/internal/trie"
)

// dictionaryPath returns path, or the configured dictionary when empty.
func (o *RootOptions) dictionaryPath(path string) string {
	if path != "" {
		return path
	}
	return o.cfg().Dictionary
}

// databasePath returns path, or the configured database when empty.
func (o *RootOptions) databasePath(path string) string {
	if path != "" {
		return path
	}
	return o.cfg().Database
}

// loadWords reads the dictionary word list, reporting failures through f.
func (o *RootOptions) loadWords(f *OutputFormatter, path string) ([]string, error) {
	path = o.dictionaryPath(path)
	words, err := loader.LoadWords(path)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeInvalidInput, "failed to load dictionary", err)
	}
	o.log().Debug("dictionary loaded", "path", path, "words", len(words))
	return words, nil
}

// loadDictionary reads and builds the dictionary trie.
func (o *RootOptions) loadDictionary(f *OutputFormatter, path string) (*trie.Dictionary, error) {
	words, err := o.loadWords(f, path)
	if err != nil {
		return nil, err
	}
	return trie.Build(words), nil
}

// loadGrid reads a board file, separating malformed boards from unreadable
// files in the reported error code.
func (o *RootOptions) loadGrid(f *OutputFormatter, path string) (*grid.Grid, error) {
	g, err := loader.LoadGrid(path)
	switch {
	case err == nil:
		o.log().Debug("grid loaded", "path", path, "rows", g.Rows(), "cols", g.Cols())
		return g, nil
	case grid.IsMalformed(err):
		return nil, f.Fail(ExitCommandError, ErrCodeMalformedGrid, "malformed grid", err)
	default:
		return nil, f.Fail(ExitCommandError, ErrCodeInvalidInput, "failed to load grid", err)
	}
}

// openStore opens the history database. When mustExist is set a missing
// file is reported instead of created.
func (o *RootOptions) openStore(f *OutputFormatter, path string, mustExist bool) (*store.Store, error) {
	path = o.databasePath(path)
	if mustExist {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", path), nil)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStore, "failed to open database", err)
	}
	o.log().Debug("database ready", "path", path)
	return st, nil
}
