package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/wordgrid/internal/canon"
)

// Snapshot renders a result as canonical JSON for golden comparison.
// Only what the solve produced is included; solver counters are left out
// so snapshots do not change with pruning internals.
func Snapshot(name string, result *Result) ([]byte, error) {
	snap := map[string]any{"name": name}
	if result.Malformed != "" {
		snap["malformed"] = result.Malformed
		return canon.Marshal(snap)
	}

	words := make([]any, len(result.Words))
	for i, w := range result.Words {
		entry := map[string]any{
			"word":  w.Word,
			"value": w.Value,
		}
		if path, ok := result.Paths[w.Word]; ok {
			entry["path"] = path
		}
		words[i] = entry
	}

	snap["grid"] = result.Grid
	snap["pruning"] = result.Pruning
	snap["total_score"] = result.TotalScore
	snap["word_count"] = len(result.Words)
	snap["words"] = words
	return canon.Marshal(snap)
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against the golden file named
// scenarioName without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
