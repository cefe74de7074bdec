package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/wordgrid/internal/optimizer"
)

// OptimizeOptions holds flags for the optimize command.
type OptimizeOptions struct {
	*RootOptions
	Dictionary  string
	Generations int
	Seed        int64
	Boards      string
	Database    string

	// IDGenerator overrides the run ID generator (for testing).
	// If nil, runs get UUIDv7 IDs.
	IDGenerator optimizer.IDGenerator
}

// OptimizeResult is the JSON payload of the optimize command.
type OptimizeResult struct {
	RunID       string                 `json:"run_id"`
	Seed        int64                  `json:"seed"`
	Generations []optimizer.Generation `json:"generations"`
	Best        optimizer.Candidate    `json:"best"`
	Stopped     bool                   `json:"stopped,omitempty"`
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptimizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Search for high-scoring boards",
		Long: `Evolve a population of random boards towards higher scores.

Each generation picks parents in proportion to their score, crosses them
at a random point and mutates the children letter by letter. Population
size, mutation rate, culling and board shape come from the config file.

The best and worst board of every generation are printed. With --boards
the best board of each generation is written as generation_<n>_<score>.txt;
with --db the run is recorded in the history database.

Interrupting the command stops after the current generation.

Examples:
  wordgrid optimize --dict words.txt --generations 20
  wordgrid optimize --dict words.txt --seed 7 --boards ./boards --db wordgrid.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Dictionary, "dict", "d", "", "path to word list (default from config)")
	cmd.Flags().IntVarP(&opts.Generations, "generations", "g", 0, "number of generations (default from config)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (default from config, 0 for time-based)")
	cmd.Flags().StringVar(&opts.Boards, "boards", "", "directory for the best board of each generation")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in a SQLite database")

	return cmd
}

func runOptimize(opts *OptimizeOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	log := opts.log()

	params := opts.cfg().Optimizer
	generations := params.Generations
	if cmd.Flags().Changed("generations") {
		generations = opts.Generations
	}
	if generations < 1 {
		return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("generations must be at least 1, got %d", generations), nil)
	}
	if cmd.Flags().Changed("seed") {
		params.Seed = opts.Seed
	}

	dict, err := opts.loadDictionary(f, opts.Dictionary)
	if err != nil {
		return err
	}

	optOpts := []optimizer.Option{optimizer.WithLogger(log)}
	if opts.IDGenerator != nil {
		optOpts = append(optOpts, optimizer.WithIDGenerator(opts.IDGenerator))
	}
	if opts.Format == "json" {
		optOpts = append(optOpts, optimizer.WithObserver(optimizer.LogObserver(log)))
	} else {
		optOpts = append(optOpts, optimizer.WithObserver(printer(cmd)))
	}
	if opts.Boards != "" {
		optOpts = append(optOpts, optimizer.WithObserver(optimizer.BoardWriter{Dir: opts.Boards, Cols: params.Cols}))
	}

	opt, err := optimizer.New(dict, params, optOpts...)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "invalid optimizer parameters", err)
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info("received signal, stopping after this generation", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if opts.Database != "" {
		st, err := opts.openStore(f, opts.Database, false)
		if err != nil {
			return err
		}
		defer st.Close()
		obs, err := optimizer.NewStoreObserver(ctx, st, opt)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeStore, "failed to record run", err)
		}
		optimizer.WithObserver(obs)(opt)
	}

	log.Info("optimizer starting",
		"run", opt.ID(),
		"seed", opt.Seed(),
		"population", params.Population,
		"generations", generations,
	)

	gens, err := opt.Run(ctx, generations)
	stopped := errors.Is(err, context.Canceled)
	if err != nil && !stopped {
		return f.Fail(ExitFailure, ErrCodeGeneric, "optimizer failed", err)
	}

	result := OptimizeResult{
		RunID:       opt.ID(),
		Seed:        opt.Seed(),
		Generations: gens,
		Best:        bestOf(gens),
		Stopped:     stopped,
	}
	if result.Generations == nil {
		result.Generations = []optimizer.Generation{}
	}

	if opts.Format == "json" {
		return f.Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "---------------------------------------------")
	if stopped {
		fmt.Fprintf(w, "Stopped after %d generation(s)\n", len(gens))
	}
	fmt.Fprintf(w, "Run %s (seed %d)\n", result.RunID, result.Seed)
	if len(gens) > 0 {
		fmt.Fprintf(w, "Best board: %s with score %d\n", result.Best.Board, result.Best.Fitness)
	}
	return nil
}

// printer writes each generation's extremes to the command output.
func printer(cmd *cobra.Command) optimizer.Observer {
	return optimizer.ObserverFunc(func(_ context.Context, gen optimizer.Generation) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Generation %d\n", gen.Number)
		fmt.Fprintf(w, "  Best: %s with score %d\n", gen.Best.Board, gen.Best.Fitness)
		fmt.Fprintf(w, "  Worst: %s with score %d\n", gen.Worst.Board, gen.Worst.Fitness)
		return nil
	})
}

// bestOf returns the highest-scoring best board across gens; ties go to
// the earliest generation.
func bestOf(gens []optimizer.Generation) optimizer.Candidate {
	var best optimizer.Candidate
	for i, gen := range gens {
		if i == 0 || gen.Best.Fitness > best.Fitness {
			best = gen.Best
		}
	}
	return best
}
