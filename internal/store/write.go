package store

import (
	"context"
	"fmt"
)

// WriteSolve inserts a solve and its found words.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: a solve whose ID already
// exists is left untouched and inserted is false. The seq is taken from the
// store clock when sol.Seq is zero.
func (s *Store) WriteSolve(ctx context.Context, sol Solve) (inserted bool, err error) {
	if sol.Seq == 0 {
		sol.Seq = s.clock.Next()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("write solve: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO solves
		(id, seq, grid, grid_rows, grid_cols, dictionary_hash, total_score, word_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		sol.ID,
		sol.Seq,
		sol.Grid,
		sol.Rows,
		sol.Cols,
		sol.DictionaryHash,
		sol.TotalScore,
		sol.WordCount,
	)
	if err != nil {
		return false, fmt.Errorf("write solve: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write solve: rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	for _, w := range sol.Words {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO found_words (solve_id, word, value)
			VALUES (?, ?, ?)
			ON CONFLICT(solve_id, word) DO NOTHING
		`, sol.ID, w.Word, w.Value)
		if err != nil {
			return false, fmt.Errorf("write solve: word %q: %w", w.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("write solve: commit: %w", err)
	}
	return true, nil
}

// WriteRun inserts an optimizer run. Duplicate IDs are silently ignored.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	if run.Seq == 0 {
		run.Seq = s.clock.Next()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO optimizer_runs
		(id, seq, seed, population, mutation, grid_rows, grid_cols)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Seq,
		run.Seed,
		run.Population,
		run.Mutation,
		run.Rows,
		run.Cols,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteGeneration inserts one generation of a run.
//
// Note: The run referenced by RunID must exist (foreign key constraint).
// Note: Writing the same (run, generation) twice keeps the first record.
func (s *Store) WriteGeneration(ctx context.Context, gen Generation) error {
	if gen.Seq == 0 {
		gen.Seq = s.clock.Next()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations
		(run_id, generation, seq, best_board, best_score, worst_board, worst_score)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, generation) DO NOTHING
	`,
		gen.RunID,
		gen.Number,
		gen.Seq,
		gen.BestBoard,
		gen.BestScore,
		gen.WorstBoard,
		gen.WorstScore,
	)
	if err != nil {
		return fmt.Errorf("write generation: %w", err)
	}
	return nil
}
