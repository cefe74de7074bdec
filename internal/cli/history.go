package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wordgrid/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	RunID    string
	Limit    int
}

// HistoryResult is the JSON payload of the history command without --run.
type HistoryResult struct {
	Solves []store.Solve `json:"solves"`
	Runs   []store.Run   `json:"runs"`
}

// RunHistory is the JSON payload of the history command with --run.
type RunHistory struct {
	RunID       string             `json:"run_id"`
	Generations []store.Generation `json:"generations"`
	Best        *store.Generation  `json:"best,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded solves and optimizer runs",
		Long: `Show what has been recorded in the history database.

Without --run, lists the most recent solves and every optimizer run.
With --run, lists the generations of that run and its best board.

Examples:
  wordgrid history --db wordgrid.db
  wordgrid history --db wordgrid.db --limit 5 --format json
  wordgrid history --db wordgrid.db --run 0190f7c4-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the generations of one optimizer run")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "number of recent solves to list (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := opts.openStore(f, opts.Database, true)
	if err != nil {
		return err
	}
	defer st.Close()

	if opts.RunID != "" {
		return showRun(ctx, opts, f, st, cmd.OutOrStdout())
	}

	solves, err := st.ListSolves(ctx, opts.Limit)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to list solves", err)
	}
	runs, err := st.ListRuns(ctx)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to list runs", err)
	}

	if opts.Format == "json" {
		return f.Success(HistoryResult{Solves: solves, Runs: runs})
	}

	w := cmd.OutOrStdout()
	if len(solves) == 0 && len(runs) == 0 {
		fmt.Fprintln(w, "No history recorded.")
		return nil
	}
	if len(solves) > 0 {
		fmt.Fprintf(w, "Solves (%d):\n", len(solves))
		for _, s := range solves {
			fmt.Fprintf(w, "  [%d] %s  %dx%d  %d words  score %d\n",
				s.Seq, shortID(s.ID), s.Rows, s.Cols, s.WordCount, s.TotalScore)
			if opts.Verbose {
				for _, row := range strings.Split(strings.TrimSpace(s.Grid), "\n") {
					fmt.Fprintf(w, "        %s\n", row)
				}
			}
		}
	}
	if len(runs) > 0 {
		fmt.Fprintf(w, "Optimizer runs (%d):\n", len(runs))
		for _, r := range runs {
			fmt.Fprintf(w, "  [%d] %s  seed %d  population %d  mutation %d%%  %dx%d\n",
				r.Seq, r.ID, r.Seed, r.Population, r.Mutation, r.Rows, r.Cols)
		}
	}
	return nil
}

func showRun(ctx context.Context, opts *HistoryOptions, f *OutputFormatter, st *store.Store, w io.Writer) error {
	gens, err := st.ListGenerations(ctx, opts.RunID)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to list generations", err)
	}

	result := RunHistory{RunID: opts.RunID, Generations: gens}
	best, err := st.BestBoard(ctx, opts.RunID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("no generations recorded for run %s", opts.RunID), nil)
	case err != nil:
		return f.Fail(ExitCommandError, ErrCodeStore, "failed to find best board", err)
	}
	result.Best = &best

	if opts.Format == "json" {
		return f.Success(result)
	}

	fmt.Fprintf(w, "Run %s (%d generations)\n", opts.RunID, len(gens))
	for _, g := range gens {
		fmt.Fprintf(w, "  %4d  best %s (%d)  worst %s (%d)\n",
			g.Number, g.BestBoard, g.BestScore, g.WorstBoard, g.WorstScore)
	}
	fmt.Fprintf(w, "Best board: %s with score %d (generation %d)\n", best.BestBoard, best.BestScore, best.Number)
	return nil
}

// shortID abbreviates a content hash for display.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
