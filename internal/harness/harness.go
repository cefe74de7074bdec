package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/loader"
	"github.com/roach88/wordgrid/internal/solver"
	"github.com/roach88/wordgrid/internal/trie"
)

// Option configures scenario execution.
type Option func(*runner)

// WithLogger routes solver debug output to l. Logs are discarded by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) { r.logger = l }
}

type runner struct {
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each run builds its own dictionary and board, so scenarios never share
// exhaustion state. A returned error means the scenario could not be
// executed at all; failed assertions are reported in Result.Errors.
func Run(s *Scenario, opts ...Option) (*Result, error) {
	r := &runner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}

	result := NewResult()
	result.Pruning = s.PruningEnabled()

	g, err := grid.ParseString(strings.Join(s.Grid, "\n"))
	if s.ExpectError != "" {
		return r.checkMalformed(s, err, result), nil
	}
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	words, err := scenarioWords(s)
	if err != nil {
		return nil, err
	}

	sol := solver.New(trie.Build(words), g, r.solverOptions(result.Pruning)...)
	found := sol.Solve()

	result.board = g
	result.dictionary = words
	result.found = found
	result.Grid = rowStrings(g)
	result.Words = found.Sorted()
	result.TotalScore = found.Total()
	result.Stats = sol.Stats()
	for _, w := range result.Words {
		if path, ok := sol.Trace(w.Word); ok {
			result.Paths[w.Word] = path
		}
	}

	r.logger.Info("scenario solved",
		"scenario", s.Name,
		"words", len(result.Words),
		"total", result.TotalScore,
	)

	for _, msg := range EvaluateAssertions(result, s.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

// checkMalformed records whether the grid was rejected for the expected
// reason.
func (r *runner) checkMalformed(s *Scenario, err error, result *Result) *Result {
	var mge *grid.MalformedGridError
	switch {
	case err == nil:
		result.AddError(fmt.Sprintf("expected %s, grid parsed without error", s.ExpectError))
	case !errors.As(err, &mge):
		result.AddError(fmt.Sprintf("expected %s, got %v", s.ExpectError, err))
	default:
		result.Malformed = string(mge.Reason)
		if result.Malformed != s.ExpectError {
			result.AddError(fmt.Sprintf("expected %s, got %s", s.ExpectError, result.Malformed))
		}
	}
	r.logger.Info("scenario rejected grid", "scenario", s.Name, "reason", result.Malformed)
	return result
}

func (r *runner) solverOptions(pruning bool) []solver.Option {
	opts := []solver.Option{solver.WithLogger(r.logger)}
	if !pruning {
		opts = append(opts, solver.WithoutPruning())
	}
	return opts
}

// scenarioWords merges inline words with the dictionary file, if any.
func scenarioWords(s *Scenario) ([]string, error) {
	words := append([]string(nil), s.Dictionary...)
	if s.DictionaryFile != "" {
		more, err := loader.LoadWords(s.DictionaryFile)
		if err != nil {
			return nil, fmt.Errorf("dictionary: %w", err)
		}
		words = append(words, more...)
	}
	return words, nil
}

// rowStrings renders each grid row as comma-separated letters.
func rowStrings(g *grid.Grid) []string {
	rows := g.Letters()
	out := make([]string, len(rows))
	for i, row := range rows {
		letters := make([]string, len(row))
		for j, r := range row {
			letters[j] = string(r)
		}
		out[i] = strings.Join(letters, ",")
	}
	return out
}
