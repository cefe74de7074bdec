package solver

import (
	"log/slog"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/score"
	"github.com/roach88/wordgrid/internal/trie"
)

// Stats counts the work done by the last solve.
type Stats struct {
	// Extends is the number of recursive extensions entered.
	Extends int `json:"extends"`

	// Pruned is the number of start cells and neighbors skipped because
	// their trie node was already exhausted.
	Pruned int `json:"pruned"`

	// Emitted is the number of words emitted before deduplication.
	Emitted int `json:"emitted"`
}

// Option configures a Solver.
type Option func(*Solver)

// WithoutPruning disables exhaustion pruning. Every trie node is treated as
// open and no node is ever marked exhausted.
func WithoutPruning() Option {
	return func(s *Solver) { s.pruning = false }
}

// WithLogger sets the logger used for solve diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// Solver finds every dictionary word on a grid.
//
// The solver borrows its Dictionary and Grid; it mutates only the trie's
// exhaustion flags and the grid's transient in-use markers.
type Solver struct {
	dict    *trie.Dictionary
	grid    *grid.Grid
	pruning bool
	logger  *slog.Logger

	stats Stats
	last  *score.Set
}

// New creates a solver for g against dict.
func New(dict *trie.Dictionary, g *grid.Grid, opts ...Option) *Solver {
	s := &Solver{
		dict:    dict,
		grid:    g,
		pruning: true,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the grid currently being solved.
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}

// Pruning reports whether exhaustion pruning is enabled.
func (s *Solver) Pruning() bool {
	return s.pruning
}

// Solve finds every distinct word on the grid.
//
// Solving the same grid twice without Reset returns only what the exhaustion
// flags still allow; call Reset first to get the full set again.
func (s *Solver) Solve() *score.Set {
	s.stats = Stats{}
	found := score.NewSet()
	word := make([]rune, 0, s.grid.Len())

	for i := 0; i < s.grid.Len(); i++ {
		root, ok := s.dict.Root(s.grid.Cell(i).Letter)
		if !ok {
			continue
		}
		if s.exhausted(root) {
			s.stats.Pruned++
			continue
		}
		s.solveFrom(i, root, word, found)
	}

	s.last = found
	s.logger.Debug("solve complete",
		"cells", s.grid.Len(),
		"words", found.Len(),
		"score", found.Total(),
		"extends", s.stats.Extends,
		"pruned", s.stats.Pruned,
		"pruning", s.pruning,
	)
	return found
}

// solveFrom explores every word starting at cell start.
func (s *Solver) solveFrom(start int, root trie.NodeID, word []rune, found *score.Set) {
	s.grid.Claim(start)
	defer s.grid.Release(start)

	s.stats.Extends++
	s.extend(start, root, append(word[:0], s.grid.Cell(start).Letter), found)
	s.markIfDone(root)
}

// extend tries every free neighbor of cell as the next letter after node.
func (s *Solver) extend(cell int, node trie.NodeID, word []rune, found *score.Set) {
	for _, n := range s.grid.Neighbors(cell) {
		if s.grid.InUse(n) {
			continue
		}
		s.visit(n, node, word, found)
	}
}

// visit steps onto cell from parent. The cell is claimed for the duration of
// the visit and released on return.
func (s *Solver) visit(cell int, parent trie.NodeID, word []rune, found *score.Set) {
	letter := s.grid.Cell(cell).Letter
	next, ok := s.dict.Child(parent, letter)
	if !ok {
		return
	}
	if s.exhausted(next) {
		s.stats.Pruned++
		return
	}

	s.grid.Claim(cell)
	defer s.grid.Release(cell)

	word = append(word, letter)
	if s.dict.IsWordEnd(next) {
		found.Add(score.New(string(word)))
		s.stats.Emitted++
		s.markIfDone(next)
	}
	if s.dict.HasChildren(next) {
		s.stats.Extends++
		s.extend(cell, next, word, found)
		s.markIfDone(next)
	}
}

func (s *Solver) exhausted(id trie.NodeID) bool {
	return s.pruning && s.dict.Exhausted(id)
}

// markIfDone marks id exhausted once all of its children are.
func (s *Solver) markIfDone(id trie.NodeID) {
	if s.pruning && s.dict.ChildrenExhausted(id) {
		s.dict.MarkExhausted(id)
	}
}

// Total returns the score of the last solve, or 0 before the first.
func (s *Solver) Total() int {
	if s.last == nil {
		return 0
	}
	return s.last.Total()
}

// Stats returns the counters of the last solve.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Reset clears dictionary exhaustion and grid in-use markers so the same
// grid can be solved again from scratch. The trie is not rebuilt.
func (s *Solver) Reset() {
	s.dict.Reset()
	s.grid.ResetUsage()
	s.last = nil
	s.stats = Stats{}
}

// NewPuzzle swaps in a new grid against the same dictionary.
func (s *Solver) NewPuzzle(g *grid.Grid) {
	s.grid = g
	s.Reset()
}
