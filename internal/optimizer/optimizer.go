package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/roach88/wordgrid/internal/config"
	"github.com/roach88/wordgrid/internal/grid"
	"github.com/roach88/wordgrid/internal/solver"
	"github.com/roach88/wordgrid/internal/trie"
)

// Candidate is one board of a population with its fitness.
type Candidate struct {
	Board   string `json:"board"`
	Fitness int    `json:"fitness"`
}

// Generation summarizes one finished generation.
type Generation struct {
	Number int       `json:"generation"`
	Best   Candidate `json:"best"`
	Worst  Candidate `json:"worst"`
}

// Observer receives each finished generation. Returning an error stops
// the run.
type Observer interface {
	Observe(ctx context.Context, gen Generation) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, gen Generation) error

// Observe calls f.
func (f ObserverFunc) Observe(ctx context.Context, gen Generation) error {
	return f(ctx, gen)
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithObserver adds an observer. Observers run in the order added.
func WithObserver(obs Observer) Option {
	return func(o *Optimizer) { o.observers = append(o.observers, obs) }
}

// WithLogger sets the logger used for per-generation debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Optimizer) { o.logger = l }
}

// WithIDGenerator replaces the UUIDv7 run ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *Optimizer) { o.ids = gen }
}

// WithSolverOptions passes options to the fitness solver.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(o *Optimizer) { o.solverOpts = append(o.solverOpts, opts...) }
}

// Optimizer evolves a population of boards.
//
// Thread-safety: an Optimizer is not safe for concurrent use.
type Optimizer struct {
	dict       *trie.Dictionary
	params     config.Optimizer
	alphabet   []rune
	rng        *rand.Rand
	seed       int64
	id         string
	ids        IDGenerator
	logger     *slog.Logger
	observers  []Observer
	solverOpts []solver.Option

	solver     *solver.Solver
	fitness    map[string]int
	population []string
	generation int
}

// New creates an optimizer over dict with a random initial population.
//
// A zero params.Seed is replaced by one derived from the wall clock; Seed
// reports the value in use.
func New(dict *trie.Dictionary, params config.Optimizer, opts ...Option) (*Optimizer, error) {
	if params.Population < 2 || params.Population%2 != 0 {
		return nil, fmt.Errorf("optimizer: population must be even and at least 2, got %d", params.Population)
	}
	if params.Rows < 1 || params.Cols < 1 {
		return nil, fmt.Errorf("optimizer: board must be at least 1x1, got %dx%d", params.Rows, params.Cols)
	}
	if params.Mutation < 0 || params.Mutation > 100 {
		return nil, fmt.Errorf("optimizer: mutation must be in 0..100, got %d", params.Mutation)
	}
	alphabet := []rune(params.Alphabet)
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("optimizer: empty alphabet")
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	o := &Optimizer{
		dict:     dict,
		params:   params,
		alphabet: alphabet,
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1^0x9e3779b97f4a7c15)),
		seed:     seed,
		ids:      UUIDv7Generator{},
		logger:   slog.Default(),
		fitness:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.id = o.ids.Generate()

	o.population = make([]string, params.Population)
	for i := range o.population {
		o.population[i] = o.randomBoard()
	}
	return o, nil
}

// ID returns the run ID.
func (o *Optimizer) ID() string { return o.id }

// Seed returns the seed of the random source.
func (o *Optimizer) Seed() int64 { return o.seed }

// Params returns the parameters the optimizer was built with, with the
// effective seed filled in.
func (o *Optimizer) Params() config.Optimizer {
	p := o.params
	p.Seed = o.seed
	return p
}

// Population returns a copy of the current population.
func (o *Optimizer) Population() []string {
	return append([]string(nil), o.population...)
}

// Evaluations returns the number of distinct boards solved so far.
func (o *Optimizer) Evaluations() int { return len(o.fitness) }

// Run evolves the population for the given number of generations and
// returns a summary of each. Generation numbers continue across calls.
//
// The context is checked before each generation. On cancellation or an
// observer error the generations finished so far are returned with the
// error.
func (o *Optimizer) Run(ctx context.Context, generations int) ([]Generation, error) {
	out := make([]Generation, 0, generations)
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		gen, err := o.step()
		if err != nil {
			return out, err
		}
		out = append(out, gen)

		o.logger.Debug("generation finished",
			"run", o.id,
			"generation", gen.Number,
			"best", gen.Best.Fitness,
			"worst", gen.Worst.Fitness,
			"evaluations", len(o.fitness),
		)

		for _, obs := range o.observers {
			if err := obs.Observe(ctx, gen); err != nil {
				return out, fmt.Errorf("generation %d: observer: %w", gen.Number, err)
			}
		}
	}
	return out, nil
}

// step produces the next generation and replaces the population with it.
func (o *Optimizer) step() (Generation, error) {
	o.generation++

	parents, err := o.selectParents()
	if err != nil {
		return Generation{}, err
	}
	next := make([]string, 0, len(o.population))
	for i := 0; i+1 < len(parents); i += 2 {
		a, b := crossover(o.rng, parents[i], parents[i+1])
		next = append(next, o.mutate(a), o.mutate(b))
	}

	gen := Generation{Number: o.generation}
	for i, board := range next {
		fit, err := o.Fitness(board)
		if err != nil {
			return Generation{}, err
		}
		c := Candidate{Board: board, Fitness: fit}
		if i == 0 || c.Fitness > gen.Best.Fitness {
			gen.Best = c
		}
		if i == 0 || c.Fitness < gen.Worst.Fitness {
			gen.Worst = c
		}
	}
	o.population = next
	return gen, nil
}

// Fitness returns the solver total for board, solving it at most once.
func (o *Optimizer) Fitness(board string) (int, error) {
	if fit, ok := o.fitness[board]; ok {
		return fit, nil
	}
	g, err := grid.FromString(board, o.params.Cols)
	if err != nil {
		return 0, fmt.Errorf("optimizer: board %q: %w", board, err)
	}
	if o.solver == nil {
		o.solver = solver.New(o.dict, g, o.solverOpts...)
	} else {
		o.solver.NewPuzzle(g)
	}
	o.solver.Solve()
	fit := o.solver.Total()
	o.fitness[board] = fit
	return fit, nil
}

// selectParents draws len(population) parents, each weighted by its
// fitness. Once the cull delay has passed, boards below the cull threshold
// are left out. If no board carries weight the draw is uniform.
func (o *Optimizer) selectParents() ([]string, error) {
	culling := o.params.CullThreshold != -1 && o.generation >= o.params.CullDelay

	weights := make([]int, len(o.population))
	total := 0
	for i, board := range o.population {
		fit, err := o.Fitness(board)
		if err != nil {
			return nil, err
		}
		if culling && fit < o.params.CullThreshold {
			continue
		}
		weights[i] = fit
		total += fit
	}

	selected := make([]string, len(o.population))
	for i := range selected {
		if total == 0 {
			selected[i] = o.population[o.rng.IntN(len(o.population))]
			continue
		}
		selected[i] = o.population[pick(weights, o.rng.IntN(total))]
	}
	return selected, nil
}

// pick returns the index whose cumulative weight range contains r.
func pick(weights []int, r int) int {
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

// crossover splits both parents at one random point and swaps the tails.
func crossover(rng *rand.Rand, a, b string) (string, string) {
	ra, rb := []rune(a), []rune(b)
	x := rng.IntN(len(ra))
	c1 := string(ra[:x]) + string(rb[x:])
	c2 := string(rb[:x]) + string(ra[x:])
	return c1, c2
}

// mutate replaces each letter with a random one with probability
// Mutation percent.
func (o *Optimizer) mutate(board string) string {
	letters := []rune(board)
	for i := range letters {
		if o.rng.IntN(100) < o.params.Mutation {
			letters[i] = o.randomLetter()
		}
	}
	return string(letters)
}

func (o *Optimizer) randomBoard() string {
	letters := make([]rune, o.params.Rows*o.params.Cols)
	for i := range letters {
		letters[i] = o.randomLetter()
	}
	return string(letters)
}

func (o *Optimizer) randomLetter() rune {
	return o.alphabet[o.rng.IntN(len(o.alphabet))]
}
