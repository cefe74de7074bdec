package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/loader"
	"github.com/roach88/wordgrid/internal/store"
)

// StoreObserver records each generation of a run in a store.
type StoreObserver struct {
	store *store.Store
	runID string
}

// NewStoreObserver writes the run record for o and returns an observer
// that appends its generations.
func NewStoreObserver(ctx context.Context, st *store.Store, o *Optimizer) (*StoreObserver, error) {
	p := o.Params()
	err := st.WriteRun(ctx, store.Run{
		ID:         o.ID(),
		Seed:       p.Seed,
		Population: p.Population,
		Mutation:   p.Mutation,
		Rows:       p.Rows,
		Cols:       p.Cols,
	})
	if err != nil {
		return nil, err
	}
	return &StoreObserver{store: st, runID: o.ID()}, nil
}

// Observe writes gen under the run.
func (so *StoreObserver) Observe(ctx context.Context, gen Generation) error {
	return so.store.WriteGeneration(ctx, store.Generation{
		RunID:      so.runID,
		Number:     gen.Number,
		BestBoard:  gen.Best.Board,
		BestScore:  gen.Best.Fitness,
		WorstBoard: gen.Worst.Board,
		WorstScore: gen.Worst.Fitness,
	})
}

// BoardWriter writes the best board of every generation to Dir as
// generation_<n>_<score>.txt in CSV form.
type BoardWriter struct {
	Dir  string
	Cols int
}

// Observe writes the best board of gen.
func (w BoardWriter) Observe(_ context.Context, gen Generation) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("create board dir: %w", err)
	}
	g, err := grid.FromString(gen.Best.Board, w.Cols)
	if err != nil {
		return err
	}
	return loader.WriteGrid(filepath.Join(w.Dir, BoardFileName(gen)), g)
}

// BoardFileName names the file BoardWriter uses for gen.
func BoardFileName(gen Generation) string {
	return fmt.Sprintf("generation_%d_%d.txt", gen.Number, gen.Best.Fitness)
}

// LogObserver logs the extremes of each generation at info level.
func LogObserver(l *slog.Logger) Observer {
	return ObserverFunc(func(_ context.Context, gen Generation) error {
		l.Info("generation",
			"number", gen.Number,
			"best", gen.Best.Board,
			"best_score", gen.Best.Fitness,
			"worst", gen.Worst.Board,
			"worst_score", gen.Worst.Fitness,
		)
		return nil
	})
}
