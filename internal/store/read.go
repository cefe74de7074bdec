package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/wordgrid/internal/score"
)

// GetSolve retrieves a solve and its words by ID.
// Words are ordered by descending value, then word.
// Returns sql.ErrNoRows if not found.
func (s *Store) GetSolve(ctx context.Context, id string) (Solve, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, grid, grid_rows, grid_cols, dictionary_hash, total_score, word_count
		FROM solves
		WHERE id = ?
	`, id)
	sol, err := scanSolve(row)
	if err != nil {
		return Solve{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, value
		FROM found_words
		WHERE solve_id = ?
		ORDER BY value DESC, word COLLATE BINARY ASC
	`, id)
	if err != nil {
		return Solve{}, fmt.Errorf("query found words: %w", err)
	}
	defer rows.Close()

	sol.Words = []score.FoundWord{}
	for rows.Next() {
		var w score.FoundWord
		if err := rows.Scan(&w.Word, &w.Value); err != nil {
			return Solve{}, fmt.Errorf("scan found word: %w", err)
		}
		sol.Words = append(sol.Words, w)
	}
	if err := rows.Err(); err != nil {
		return Solve{}, fmt.Errorf("iterate found words: %w", err)
	}
	return sol, nil
}

// ListSolves returns the most recent solves, oldest first, without their
// words. A limit of zero or less returns every solve.
func (s *Store) ListSolves(ctx context.Context, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, grid, grid_rows, grid_cols, dictionary_hash, total_score, word_count
		FROM (
			SELECT * FROM solves
			ORDER BY seq DESC, id COLLATE BINARY DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	solves := []Solve{}
	for rows.Next() {
		sol, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		solves = append(solves, sol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solves: %w", err)
	}
	return solves, nil
}

// ListRuns returns every optimizer run ordered by seq.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, seed, population, mutation, grid_rows, grid_cols
		FROM optimizer_runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Seq, &r.Seed, &r.Population, &r.Mutation, &r.Rows, &r.Cols); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ListGenerations returns every generation of a run in order.
func (s *Store) ListGenerations(ctx context.Context, runID string) ([]Generation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, generation, seq, best_board, best_score, worst_board, worst_score
		FROM generations
		WHERE run_id = ?
		ORDER BY generation ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	gens := []Generation{}
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}
	return gens, nil
}

// BestBoard returns the generation holding the highest-scoring board of a
// run; ties go to the earliest generation.
// Returns sql.ErrNoRows if the run has no generations.
func (s *Store) BestBoard(ctx context.Context, runID string) (Generation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, generation, seq, best_board, best_score, worst_board, worst_score
		FROM generations
		WHERE run_id = ?
		ORDER BY best_score DESC, generation ASC
		LIMIT 1
	`, runID)
	return scanGeneration(row)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (Solve, error) {
	var sol Solve
	err := sc.Scan(
		&sol.ID,
		&sol.Seq,
		&sol.Grid,
		&sol.Rows,
		&sol.Cols,
		&sol.DictionaryHash,
		&sol.TotalScore,
		&sol.WordCount,
	)
	if err == sql.ErrNoRows {
		return Solve{}, err
	}
	if err != nil {
		return Solve{}, fmt.Errorf("scan solve: %w", err)
	}
	return sol, nil
}

func scanGeneration(sc scanner) (Generation, error) {
	var g Generation
	err := sc.Scan(
		&g.RunID,
		&g.Number,
		&g.Seq,
		&g.BestBoard,
		&g.BestScore,
		&g.WorstBoard,
		&g.WorstScore,
	)
	if err == sql.ErrNoRows {
		return Generation{}, err
	}
	if err != nil {
		return Generation{}, fmt.Errorf("scan generation: %w", err)
	}
	return g, nil
}
