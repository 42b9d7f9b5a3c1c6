package optimizer

import (
	"math/rand"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// Config holds the Evolutionary Engine's tunable parameters (spec §4.6).
// Zero-valued count fields are filled in by WithDefaults before Validate
// runs, so callers that only care about a subset of those knobs can leave the
// rest at 0. Zero probabilities are kept as zero.
type Config struct {
	PopulationSize int
	Generations    int
	PCrossover     float64
	PMutate        float64
	PGene          float64
	GreedyAttempts int
	RepairCycles   int
	RepairAttempts int
	Seed           int64
}

// DefaultConfig mirrors the original solver's DEAP constants.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 200,
		Generations:    150,
		PCrossover:     0.9,
		PMutate:        0.5,
		PGene:          0.05,
		GreedyAttempts: 50,
		RepairCycles:   5,
		RepairAttempts: 20,
	}
}

// WithDefaults fills zero-valued count fields with DefaultConfig's value. Probabilities of exactly 0 are a legitimate caller choice ("never
// mutate") so only PopulationSize/Generations/GreedyAttempts/RepairCycles/
// RepairAttempts are defaulted — leaving probabilities alone.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.PopulationSize == 0 {
		c.PopulationSize = d.PopulationSize
	}
	if c.Generations == 0 {
		c.Generations = d.Generations
	}
	if c.GreedyAttempts == 0 {
		c.GreedyAttempts = d.GreedyAttempts
	}
	if c.RepairCycles == 0 {
		c.RepairCycles = d.RepairCycles
	}
	if c.RepairAttempts == 0 {
		c.RepairAttempts = d.RepairAttempts
	}
	return c
}

// Validate checks the engine config in isolation from N, the lesson-slot
// count. Callers handle N == 0 themselves (see NewEngine): a timetable with
// nothing to schedule is a trivial success, not a config error, even though
// spec's error table also lists it as an InvalidConfig trigger — the N == 0
// short-circuit in ScheduleGeneratorService.Generate takes priority.
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return ErrInvalidConfig
	}
	if c.Generations < 0 {
		return ErrInvalidConfig
	}
	for _, p := range []float64{c.PCrossover, c.PMutate, c.PGene} {
		if p < 0 || p > 1 {
			return ErrInvalidConfig
		}
	}
	return nil
}

// Result is the Evolutionary Engine's terminal output.
type Result struct {
	Best           *domain.Individual
	Feasible       bool
	GenerationsRun int
}

// Engine wires the Gene Factory, Greedy Initializer, Repair Operator,
// Evaluator and NSGA-II selection into the generational loop described in
// spec §4.6. It owns the single seeded RNG all stochastic decisions draw
// from, so a fixed seed reproduces a run bit-for-bit.
type Engine struct {
	cfg    Config
	slots  []domain.LessonSlot
	index  *domain.FeasibilityIndex
	genes  *GeneFactory
	init   *Initializer
	repair *Repair
	eval   *Evaluator
	cache  *evaluationCache
	rng    *rand.Rand
}

// NewEngine validates cfg and constructs an Engine ready to Run. slots must
// be non-empty; callers handle the N == 0 case before reaching here.
func NewEngine(cfg Config, slots []domain.LessonSlot, index *domain.FeasibilityIndex) (*Engine, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	genes := NewGeneFactory(index)
	return &Engine{
		cfg:    cfg,
		slots:  slots,
		index:  index,
		genes:  genes,
		init:   NewInitializer(slots, genes, cfg.GreedyAttempts),
		repair: NewRepair(slots, genes, cfg.RepairCycles, cfg.RepairAttempts),
		eval:   NewEvaluator(slots),
		cache:  newEvaluationCache(2 * cfg.PopulationSize),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// evaluate evaluates ind if its fitness is not already valid, consulting and
// populating the memoization cache either way.
func (e *Engine) evaluate(ind *domain.Individual) {
	if ind.FitnessValid {
		return
	}
	if hard, soft, ok := e.cache.get(ind); ok {
		ind.SetFitness(hard, soft)
		return
	}
	hard, soft := e.eval.Evaluate(ind)
	ind.SetFitness(hard, soft)
	e.cache.put(ind, hard, soft)
}

// archiveBest keeps a lexicographic best-so-far individual: hard dominates
// soft, matching the priority the Evaluator's own objectives encode.
func archiveBest(best, candidate *domain.Individual) *domain.Individual {
	if best == nil {
		return candidate.Clone()
	}
	if candidate.Hard < best.Hard || (candidate.Hard == best.Hard && candidate.Soft < best.Soft) {
		return candidate.Clone()
	}
	return best
}

// Run executes Initialize followed by up to Generations generational steps
// and returns the best individual found, by the Return rule in spec §4.6:
// the best-so-far archive member if it is hard == 0, otherwise the
// minimum-(hard, soft) individual across the final population.
func (e *Engine) Run() *Result {
	population := make([]*domain.Individual, e.cfg.PopulationSize)
	for i := range population {
		ind := e.init.BuildIndividual(e.rng)
		e.repair.Run(ind, e.rng)
		e.evaluate(ind)
		population[i] = ind
	}

	var archive *domain.Individual
	for _, ind := range population {
		archive = archiveBest(archive, ind)
	}

	generationsRun := 0
	for gen := 0; gen < e.cfg.Generations; gen++ {
		if archive.Hard == 0 {
			break
		}

		selected := SelectNSGA2(population, e.cfg.PopulationSize)
		offspring := make([]*domain.Individual, len(selected))
		for i, ind := range selected {
			offspring[i] = ind.Clone()
		}

		for i := 0; i+1 < len(offspring); i += 2 {
			if e.rng.Float64() < e.cfg.PCrossover {
				crossoverTwoPoint(offspring[i], offspring[i+1], e.rng)
			}
		}
		for _, ind := range offspring {
			if e.rng.Float64() < e.cfg.PMutate {
				mutateIndividual(ind, e.genes, e.cfg.PGene, e.rng)
			}
		}
		for _, ind := range offspring {
			if !ind.FitnessValid {
				e.repair.Run(ind, e.rng)
			}
			e.evaluate(ind)
		}

		population = offspring
		for _, ind := range population {
			archive = archiveBest(archive, ind)
		}
		generationsRun++
	}

	if archive.Hard == 0 {
		return &Result{Best: archive, Feasible: true, GenerationsRun: generationsRun}
	}

	best := population[0]
	for _, ind := range population[1:] {
		if ind.Hard < best.Hard || (ind.Hard == best.Hard && ind.Soft < best.Soft) {
			best = ind
		}
	}
	return &Result{Best: best, Feasible: best.Hard == 0, GenerationsRun: generationsRun}
}
