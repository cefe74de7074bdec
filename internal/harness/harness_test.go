package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wordgrid/internal/score"
)

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func atArtScenario() *Scenario {
	return &Scenario{
		Name:       "at_art",
		Dictionary: []string{"at", "art"},
		Grid:       []string{"a,t", "r,x"},
		Assertions: []Assertion{
			{Type: AssertWordsPresent, Words: []string{"at", "art"}},
			{Type: AssertTotalScore, Score: intPtr(1)},
		},
	}
}

func TestRun_AtArt(t *testing.T) {
	result, err := Run(atArtScenario())
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.True(t, result.Pruning)
	assert.Equal(t, []string{"a,t", "r,x"}, result.Grid)
	assert.Equal(t, 1, result.TotalScore)
	assert.Equal(t, []score.FoundWord{{Word: "art", Value: 1}, {Word: "at", Value: 0}}, result.Words)
	assert.Equal(t, []int{0, 2, 1}, result.Paths["art"])
	assert.Equal(t, []int{0, 1}, result.Paths["at"])
}

func TestRun_FailedAssertionsAreReported(t *testing.T) {
	s := atArtScenario()
	s.Assertions = []Assertion{
		{Type: AssertWordsPresent, Words: []string{"tax"}},
		{Type: AssertWordsAbsent, Words: []string{"art"}},
		{Type: AssertTotalScore, Score: intPtr(5)},
		{Type: AssertWordCount, Count: intPtr(9)},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "missing [tax]")
	assert.Contains(t, result.Errors[1], "found [art]")
	assert.Contains(t, result.Errors[2], "total score 1")
	assert.Contains(t, result.Errors[3], "2 words")
}

func TestRun_WithoutPruning(t *testing.T) {
	s := atArtScenario()
	s.Options.Pruning = boolPtr(false)
	s.Assertions = append(s.Assertions,
		Assertion{Type: AssertPruningEquivalent},
		Assertion{Type: AssertResetDeterminism},
	)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.False(t, result.Pruning)
	assert.Zero(t, result.Stats.Pruned)
}

func TestRun_ReportRoundTrip(t *testing.T) {
	s := atArtScenario()
	s.Assertions = append(s.Assertions, Assertion{Type: AssertReportRoundTrip})

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestEvaluateAssertions_UnreadableReport(t *testing.T) {
	found := score.NewSet()
	found.Add(score.New("art"))
	found.Add(score.New("a\nb"))

	result := NewResult()
	result.found = found
	result.Words = found.Sorted()

	errs := EvaluateAssertions(result, []Assertion{{Type: AssertReportRoundTrip}})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Assertion failed: report_round_trip")
	assert.Contains(t, errs[0], "parse report")
}

func TestRun_ScenarioFiles(t *testing.T) {
	for _, name := range []string{"at_art", "sample_board", "ragged_row"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_ExpectError(t *testing.T) {
	s := &Scenario{Name: "ragged", Grid: []string{"a,b", "c"}, ExpectError: "RAGGED_ROW"}
	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, "RAGGED_ROW", result.Malformed)

	s.ExpectError = "BAD_LETTER"
	result, err = Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "expected BAD_LETTER, got RAGGED_ROW")

	s.Grid = []string{"a,b"}
	result, err = Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "parsed without error")
}

func TestRun_EmptyGridExpected(t *testing.T) {
	result, err := Run(&Scenario{Name: "empty", ExpectError: "EMPTY_GRID"})
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_MalformedGridIsExecutionError(t *testing.T) {
	s := atArtScenario()
	s.Grid = []string{"a,t", "r"}

	_, err := Run(s)
	assert.ErrorContains(t, err, "RAGGED_ROW")
}

func TestRun_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Run(atArtScenario(), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scenario solved")
	assert.Contains(t, buf.String(), "scenario=at_art")
}

func TestCheckPath(t *testing.T) {
	result, err := Run(atArtScenario())
	require.NoError(t, err)
	g := result.board

	assert.Empty(t, checkPath(g, "art", []int{0, 2, 1}))
	assert.Contains(t, checkPath(g, "art", []int{0, 2}), "length")
	assert.Contains(t, checkPath(g, "art", []int{0, 1, 2}), "is not")
	assert.Contains(t, checkPath(g, "aa", []int{0, 0}), "reused")
	assert.Contains(t, checkPath(g, "ax", []int{0, 9}), "out of range")
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{
		Type:     AssertTotalScore,
		Expected: "total score 3",
		Actual:   "total score 1",
		Found:    []score.FoundWord{{Word: "art", Value: 1}},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: total_score")
	assert.Contains(t, msg, "Expected: total score 3")
	assert.Contains(t, msg, "Actual: total score 1")
	assert.Contains(t, msg, "  1 art")
}
