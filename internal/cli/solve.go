package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wordgrid/internal/canon"
	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/score"
	"github.com/roach88/wordgrid/internal/solver"
	"github.com/roach88/wordgrid/internal/store"
	"github.com/roach88/wordgrid/internal/trie"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Dictionary string
	Output     string
	Database   string
	NoPrune    bool
	Paths      bool
}

// SolveResult is the JSON payload of the solve command.
type SolveResult struct {
	ID             string            `json:"id"`
	DictionaryHash string            `json:"dictionary_hash"`
	Grid           string            `json:"grid"`
	TotalScore     int               `json:"total_score"`
	WordCount      int               `json:"word_count"`
	Words          []score.FoundWord `json:"words"`
	Paths          map[string][]int  `json:"paths,omitempty"`
	Stats          solver.Stats      `json:"stats"`
	Recorded       bool              `json:"recorded"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <grid.csv>",
		Short: "Find and score every word on a board",
		Long: `Find every dictionary word on a board and score it by length.

The board file holds one row per line, letters separated by commas. The
report starts with the total score followed by one "value,word" line per
word, highest value first.

Exit codes:
  0 - Board solved
  2 - Command error (unreadable files, malformed grid, database error)

Examples:
  wordgrid solve board.csv --dict words.txt
  wordgrid solve board.csv --dict words.txt --out report.txt
  wordgrid solve board.csv --dict words.txt --db wordgrid.db --paths`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Dictionary, "dict", "d", "", "path to word list (default from config)")
	cmd.Flags().StringVarP(&opts.Output, "out", "o", "", "write the report to a file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the solve in a SQLite database")
	cmd.Flags().BoolVar(&opts.NoPrune, "no-prune", false, "disable exhaustion pruning")
	cmd.Flags().BoolVar(&opts.Paths, "paths", false, "show one cell path per word")

	return cmd
}

func runSolve(opts *SolveOptions, gridPath string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	log := opts.log()

	words, err := opts.loadWords(f, opts.Dictionary)
	if err != nil {
		return err
	}
	g, err := opts.loadGrid(f, gridPath)
	if err != nil {
		return err
	}

	solverOpts := []solver.Option{solver.WithLogger(log)}
	if opts.NoPrune {
		solverOpts = append(solverOpts, solver.WithoutPruning())
	}
	s := solver.New(trie.Build(words), g, solverOpts...)
	found := s.Solve()
	f.VerboseLog("solved %dx%d grid: %d extends, %d pruned, %d emitted",
		g.Rows(), g.Cols(), s.Stats().Extends, s.Stats().Pruned, s.Stats().Emitted)

	result := SolveResult{
		Grid:       g.String(),
		TotalScore: found.Total(),
		WordCount:  found.Len(),
		Words:      found.Sorted(),
		Stats:      s.Stats(),
	}
	if opts.Paths {
		result.Paths = make(map[string][]int, found.Len())
		for _, w := range result.Words {
			if path, ok := s.Trace(w.Word); ok {
				result.Paths[w.Word] = path
			}
		}
	}

	result.ID, result.DictionaryHash, err = solveID(g, words)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "failed to compute solve id", err)
	}

	if opts.Database != "" {
		result.Recorded, err = recordSolve(cmd.Context(), opts, f, g, result)
		if err != nil {
			return err
		}
	}

	if opts.Output != "" {
		if err := writeReportFile(opts.Output, found); err != nil {
			return f.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to write report", err)
		}
		log.Info("report written", "path", opts.Output, "words", found.Len(), "score", found.Total())
	}

	if opts.Format == "json" {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	if opts.Output == "" {
		if err := score.WriteReport(w, found); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "Found %d words, total score %d\n", result.WordCount, result.TotalScore)
	}
	if opts.Paths {
		writePaths(w, g, result.Words, result.Paths)
	}
	return nil
}

// solveID derives the content-addressed ID of a solve of g against words,
// along with the dictionary hash it was built from.
func solveID(g *grid.Grid, words []string) (id, dictHash string, err error) {
	gridHash, err := canon.GridHash(g.Letters())
	if err != nil {
		return "", "", err
	}
	dictHash, err = canon.DictionaryHash(words)
	if err != nil {
		return "", "", err
	}
	id, err = canon.SolveID(gridHash, dictHash)
	return id, dictHash, err
}

// recordSolve writes result to the history database. It reports whether a
// new row was written.
func recordSolve(ctx context.Context, opts *SolveOptions, f *OutputFormatter, g *grid.Grid, result SolveResult) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := opts.openStore(f, opts.Database, false)
	if err != nil {
		return false, err
	}
	defer st.Close()

	inserted, err := st.WriteSolve(ctx, store.Solve{
		ID:             result.ID,
		Grid:           result.Grid,
		Rows:           g.Rows(),
		Cols:           g.Cols(),
		DictionaryHash: result.DictionaryHash,
		TotalScore:     result.TotalScore,
		WordCount:      result.WordCount,
		Words:          result.Words,
	})
	if err != nil {
		return false, f.Fail(ExitCommandError, ErrCodeStore, "failed to record solve", err)
	}
	if inserted {
		opts.log().Info("solve recorded", "id", result.ID)
	} else {
		opts.log().Info("solve already recorded", "id", result.ID)
	}
	return inserted, nil
}

func writeReportFile(path string, found *score.Set) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := score.WriteReport(out, found); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writePaths prints each word's path as 1-based row:col cells.
func writePaths(w io.Writer, g *grid.Grid, words []score.FoundWord, paths map[string][]int) {
	fmt.Fprintln(w, "Paths:")
	for _, fw := range words {
		path := paths[fw.Word]
		cells := make([]string, len(path))
		for i, idx := range path {
			c := g.Cell(idx)
			cells[i] = fmt.Sprintf("%d:%d", c.Row+1, c.Col+1)
		}
		fmt.Fprintf(w, "  %s %s\n", fw.Word, strings.Join(cells, " "))
	}
}
