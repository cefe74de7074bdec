package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/trie"
)

// Board parses a CSV board or fails the test.
func Board(t testing.TB, csv string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(csv)
	require.NoError(t, err)
	return g
}

// Dictionary builds a dictionary from words.
func Dictionary(words ...string) *trie.Dictionary {
	return trie.Build(words)
}

// SampleWords is a small dictionary that produces a handful of words on
// SampleBoard.
var SampleWords = []string{
	"at", "art", "arts", "rat", "rats", "tar", "tars", "star", "start",
	"stare", "tea", "eat", "east", "seat", "set", "rest", "tree", "street",
}

// SampleBoard is a 3x3 board for SampleWords.
const SampleBoard = "s,t,a\nr,e,t\nx,a,e\n"
