// Package harness runs solve scenarios described in YAML.
//
// # Scenario Format
//
//	name: at_art
//	description: "A prefix word and its extension both score"
//	dictionary: [at, art]
//	grid:
//	  - "a,t"
//	  - "r,x"
//	options:
//	  pruning: true
//	assertions:
//	  - type: words_present
//	    words: [at, art]
//	  - type: total_score
//	    score: 1
//	  - type: pruning_equivalent
//
// Grid rows use the same comma-separated form as grid files. Words may also
// come from dictionary_file, resolved relative to the scenario file.
// A scenario whose grid is expected to be rejected sets expect_error to a
// malformed-grid reason (for example RAGGED_ROW) and carries no assertions.
//
// # Assertion Types
//
//   - words_present: every listed word is found
//   - words_absent: no listed word is found
//   - total_score: the summed score equals score
//   - word_count: the number of distinct words equals count
//   - pruning_equivalent: solving with pruning toggled finds the same words
//   - reset_deterministic: solving again after Reset finds the same words
//   - paths_distinct: every found word has a path of adjacent, unrepeated
//     cells spelling it
//   - report_round_trip: the "Total score" report reads back as the same
//     words and total
//
// # Golden Snapshots
//
// Snapshot renders a result as canonical JSON (package canon) so it can be
// compared byte for byte. RunWithGolden and AssertGolden compare snapshots
// against testdata/golden/<name>.golden using goldie; regenerate with
//
//	go test ./internal/harness -update
package harness
