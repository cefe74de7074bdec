package harness

import (
	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/score"
	"github.com/roach88/wordgrid/internal/solver"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when no assertion failed.
	Pass bool `json:"pass"`

	Errors []string `json:"errors,omitempty"`

	// Grid is the parsed board in normalized row form.
	Grid []string `json:"grid,omitempty"`

	Pruning bool `json:"pruning"`

	// Words are the found words, highest value first.
	Words []score.FoundWord `json:"words"`

	// Paths maps each found word to one cell path spelling it.
	Paths map[string][]int `json:"paths,omitempty"`

	TotalScore int          `json:"total_score"`
	Stats      solver.Stats `json:"stats"`

	// Malformed is the reason the grid was rejected, for scenarios that
	// expect an error.
	Malformed string `json:"malformed,omitempty"`

	found      *score.Set
	board      *grid.Grid
	dictionary []string
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
		Words:  []score.FoundWord{},
		Paths:  make(map[string][]int),
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
