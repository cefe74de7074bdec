package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/wordgrid/internal/grid"
)

// Scenario describes one board, one dictionary and what solving it must
// produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// Dictionary lists words inline.
	Dictionary []string `yaml:"dictionary,omitempty"`

	// DictionaryFile names a word list, one word per line. Relative paths
	// are resolved against the scenario file by LoadScenario.
	DictionaryFile string `yaml:"dictionary_file,omitempty"`

	// Grid holds the board rows, letters separated by commas.
	Grid []string `yaml:"grid"`

	Options Options `yaml:"options,omitempty"`

	// ExpectError is the malformed-grid reason the board must be rejected
	// with. Scenarios that expect an error carry no assertions.
	ExpectError string `yaml:"expect_error,omitempty"`

	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Options tunes how the scenario is solved.
type Options struct {
	// Pruning enables exhaustion pruning. Defaults to true.
	Pruning *bool `yaml:"pruning,omitempty"`
}

// PruningEnabled reports whether the scenario solves with pruning.
func (s *Scenario) PruningEnabled() bool {
	return s.Options.Pruning == nil || *s.Options.Pruning
}

// Assertion checks one property of a solve result.
type Assertion struct {
	// Type selects the check; see the Assert* constants.
	Type string `yaml:"type"`

	// Words is used by words_present and words_absent.
	Words []string `yaml:"words,omitempty"`

	// Score is used by total_score.
	Score *int `yaml:"score,omitempty"`

	// Count is used by word_count.
	Count *int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertWordsPresent      = "words_present"
	AssertWordsAbsent       = "words_absent"
	AssertTotalScore        = "total_score"
	AssertWordCount         = "word_count"
	AssertPruningEquivalent = "pruning_equivalent"
	AssertResetDeterminism  = "reset_deterministic"
	AssertPathsDistinct     = "paths_distinct"
	AssertReportRoundTrip   = "report_round_trip"
)

var malformedReasons = []string{
	string(grid.ReasonEmpty),
	string(grid.ReasonEmptyRow),
	string(grid.ReasonRaggedRow),
	string(grid.ReasonBadLetter),
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if s.DictionaryFile != "" && !filepath.IsAbs(s.DictionaryFile) {
		s.DictionaryFile = filepath.Join(filepath.Dir(path), s.DictionaryFile)
	}
	if s.DictionaryFile != "" {
		if _, err := os.Stat(s.DictionaryFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("invalid scenario: dictionary file not found: %s", s.DictionaryFile)
		}
	}
	return s, nil
}

// ParseScenario parses scenario YAML. Unknown fields are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.ExpectError != "" {
		if !slices.Contains(malformedReasons, s.ExpectError) {
			return fmt.Errorf("expect_error: unknown reason %q (want one of %v)", s.ExpectError, malformedReasons)
		}
		if len(s.Assertions) > 0 {
			return fmt.Errorf("assertions are not allowed with expect_error")
		}
		return nil
	}

	if len(s.Grid) == 0 {
		return fmt.Errorf("grid is required and must be non-empty")
	}
	if len(s.Dictionary) == 0 && s.DictionaryFile == "" {
		return fmt.Errorf("dictionary or dictionary_file is required")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertWordsPresent, AssertWordsAbsent:
		if len(a.Words) == 0 {
			return fmt.Errorf("assertions[%d]: words list is required for %s", index, a.Type)
		}
	case AssertTotalScore:
		if a.Score == nil || *a.Score < 0 {
			return fmt.Errorf("assertions[%d]: non-negative score is required for total_score", index)
		}
	case AssertWordCount:
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for word_count", index)
		}
	case AssertPruningEquivalent, AssertResetDeterminism, AssertPathsDistinct, AssertReportRoundTrip:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
