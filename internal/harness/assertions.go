package harness

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/score"
	"github.com/roach88/wordgrid/internal/solver"
	"github.com/roach88/wordgrid/internal/trie"
)

// AssertionError is returned when an assertion fails.
// It includes the found words to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Found    []score.FoundWord
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFound words:\n")
	for _, w := range e.Found {
		fmt.Fprintf(&buf, "  %d %s\n", w.Value, w.Word)
	}
	return buf.String()
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertWordsPresent:
			err = assertWordsPresent(result, assertion)
		case AssertWordsAbsent:
			err = assertWordsAbsent(result, assertion)
		case AssertTotalScore:
			err = assertTotalScore(result, assertion)
		case AssertWordCount:
			err = assertWordCount(result, assertion)
		case AssertPruningEquivalent:
			err = assertPruningEquivalent(result)
		case AssertResetDeterminism:
			err = assertResetDeterministic(result)
		case AssertPathsDistinct:
			err = assertPathsDistinct(result)
		case AssertReportRoundTrip:
			err = assertReportRoundTrip(result)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}
	return errors
}

func assertWordsPresent(result *Result, a Assertion) error {
	var missing []string
	for _, w := range a.Words {
		if !result.hasWord(w) {
			missing = append(missing, w)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertWordsPresent,
		Expected: fmt.Sprintf("words %v found", a.Words),
		Actual:   fmt.Sprintf("missing %v", missing),
		Found:    result.Words,
	}
}

func assertWordsAbsent(result *Result, a Assertion) error {
	var present []string
	for _, w := range a.Words {
		if result.hasWord(w) {
			present = append(present, w)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertWordsAbsent,
		Expected: fmt.Sprintf("words %v not found", a.Words),
		Actual:   fmt.Sprintf("found %v", present),
		Found:    result.Words,
	}
}

func assertTotalScore(result *Result, a Assertion) error {
	if result.TotalScore == *a.Score {
		return nil
	}
	return &AssertionError{
		Type:     AssertTotalScore,
		Expected: fmt.Sprintf("total score %d", *a.Score),
		Actual:   fmt.Sprintf("total score %d", result.TotalScore),
		Found:    result.Words,
	}
}

func assertWordCount(result *Result, a Assertion) error {
	if len(result.Words) == *a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertWordCount,
		Expected: fmt.Sprintf("%d words", *a.Count),
		Actual:   fmt.Sprintf("%d words", len(result.Words)),
		Found:    result.Words,
	}
}

// assertPruningEquivalent solves the board again on a fresh dictionary with
// pruning toggled and compares the word sets.
func assertPruningEquivalent(result *Result) error {
	var opts []solver.Option
	if result.Pruning {
		opts = append(opts, solver.WithoutPruning())
	}
	other := solver.New(trie.Build(result.dictionary), result.board, opts...).Solve()
	if other.Equal(result.found) {
		return nil
	}
	return &AssertionError{
		Type:     AssertPruningEquivalent,
		Expected: fmt.Sprintf("same words with pruning=%t", !result.Pruning),
		Actual:   fmt.Sprintf("%v", other.Words()),
		Found:    result.Words,
	}
}

// assertResetDeterministic solves twice on one solver with a Reset between
// and compares both word sets with the result.
func assertResetDeterministic(result *Result) error {
	var opts []solver.Option
	if !result.Pruning {
		opts = append(opts, solver.WithoutPruning())
	}
	s := solver.New(trie.Build(result.dictionary), result.board, opts...)
	first := s.Solve()
	s.Reset()
	second := s.Solve()
	if first.Equal(result.found) && second.Equal(result.found) {
		return nil
	}
	return &AssertionError{
		Type:     AssertResetDeterminism,
		Expected: "identical words on every solve",
		Actual:   fmt.Sprintf("first %v, after reset %v", first.Words(), second.Words()),
		Found:    result.Words,
	}
}

// assertReportRoundTrip checks that the written report reads back as the
// same words and total.
func assertReportRoundTrip(result *Result) error {
	var buf bytes.Buffer
	if err := score.WriteReport(&buf, result.found); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	parsed, err := score.ParseReport(&buf)
	if err != nil {
		return &AssertionError{
			Type:     AssertReportRoundTrip,
			Expected: "a readable report",
			Actual:   err.Error(),
			Found:    result.Words,
		}
	}
	if !parsed.Equal(result.found) {
		return &AssertionError{
			Type:     AssertReportRoundTrip,
			Expected: fmt.Sprintf("%d words, score %d", result.found.Len(), result.found.Total()),
			Actual:   fmt.Sprintf("%d words, score %d", parsed.Len(), parsed.Total()),
			Found:    result.Words,
		}
	}
	return nil
}

// assertPathsDistinct checks that every found word has a path of adjacent,
// unrepeated cells spelling it.
func assertPathsDistinct(result *Result) error {
	for _, w := range result.Words {
		path, ok := result.Paths[w.Word]
		if !ok {
			return &AssertionError{
				Type:     AssertPathsDistinct,
				Expected: fmt.Sprintf("a path for %q", w.Word),
				Actual:   "no path",
				Found:    result.Words,
			}
		}
		if msg := checkPath(result.board, w.Word, path); msg != "" {
			return &AssertionError{
				Type:     AssertPathsDistinct,
				Expected: fmt.Sprintf("valid path for %q", w.Word),
				Actual:   fmt.Sprintf("%v: %s", path, msg),
				Found:    result.Words,
			}
		}
	}
	return nil
}

// checkPath returns a description of what is wrong with path, or "".
func checkPath(g *grid.Grid, word string, path []int) string {
	if len(path) != utf8.RuneCountInString(word) {
		return "length differs from word"
	}
	letters := []rune(word)
	for i, cell := range path {
		if cell < 0 || cell >= g.Len() {
			return fmt.Sprintf("cell %d out of range", cell)
		}
		if g.Cell(cell).Letter != letters[i] {
			return fmt.Sprintf("cell %d is not %q", cell, letters[i])
		}
		if slices.Contains(path[:i], cell) {
			return fmt.Sprintf("cell %d reused", cell)
		}
		if i > 0 && !slices.Contains(g.Neighbors(path[i-1]), cell) {
			return fmt.Sprintf("cells %d and %d are not adjacent", path[i-1], cell)
		}
	}
	return ""
}

func (r *Result) hasWord(word string) bool {
	for _, w := range r.Words {
		if w.Word == strings.ToLower(word) {
			return true
		}
	}
	return false
}
