// Package score assigns point values to found words and collects them into
// a deduplicated result set.
package score

import (
	"sort"
	"unicode/utf8"
)

// Value returns the points for a word of the given length:
// 0-2 letters score 0, 3-4 score 1, 5 scores 2, 6 scores 3, 7 scores 5 and
// 8 or more score 11.
func Value(length int) int {
	switch {
	case length <= 2:
		return 0
	case length <= 4:
		return 1
	case length == 5:
		return 2
	case length == 6:
		return 3
	case length == 7:
		return 5
	default:
		return 11
	}
}

// FoundWord is a word discovered on the board together with its value.
// Two FoundWords are the same word iff their letter sequences match.
type FoundWord struct {
	Word  string `json:"word"`
	Value int    `json:"value"`
}

// New scores word. Length is measured in letters, not bytes.
func New(word string) FoundWord {
	return FoundWord{Word: word, Value: Value(utf8.RuneCountInString(word))}
}

// Set holds distinct found words keyed by their letter sequence.
type Set struct {
	words map[string]FoundWord
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{words: make(map[string]FoundWord)}
}

// Add inserts w and reports whether it was new.
func (s *Set) Add(w FoundWord) bool {
	if _, ok := s.words[w.Word]; ok {
		return false
	}
	s.words[w.Word] = w
	return true
}

// Merge adds every word of other.
func (s *Set) Merge(other *Set) {
	for _, w := range other.words {
		s.Add(w)
	}
}

// Contains reports whether word was found.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	return len(s.words)
}

// Total returns the sum of word values.
func (s *Set) Total() int {
	total := 0
	for _, w := range s.words {
		total += w.Value
	}
	return total
}

// Sorted returns the words ordered by descending value, then alphabetically.
func (s *Set) Sorted() []FoundWord {
	out := make([]FoundWord, 0, len(s.words))
	for _, w := range s.words {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Words returns the found letter sequences in alphabetical order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same words.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for w := range s.words {
		if !other.Contains(w) {
			return false
		}
	}
	return true
}
