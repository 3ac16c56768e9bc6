package genexpr

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

type Population []*PopulationMember

// Fittest returns the first member of lowest fitness, or nil for an empty Population
func (pop Population) Fittest() *PopulationMember {
	var fittest *PopulationMember
	for _, member := range pop {
		if fittest == nil || member.fitness.Less(fittest.fitness) {
			fittest = member
		}
	}
	return fittest
}

type PopulationMember struct {
	c       *Chromosome
	fitness Fitness
}

func (member *PopulationMember) Chromosome() *Chromosome {
	return member.c
}

func (member *PopulationMember) Fitness() Fitness {
	return member.fitness
}

// BestRecord is the fittest individual observed so far, and the generation it appeared in
type BestRecord struct {
	Chromosome *Chromosome
	Expr       Expr
	Expression string
	Fitness    Fitness
	Generation int
}

// Found reports whether any finite-fitness individual has been recorded
func (b BestRecord) Found() bool {
	return b.Chromosome != nil
}

// SearchState is everything carried from one generation to the next
type SearchState struct {
	// Number of completed generations; 0 for the initial Population
	Generation int
	Population Population

	Best BestRecord

	// Every improvement of Best, oldest first
	History []BestRecord
}

type Simulation struct {
	params  SimulationParams
	rng     *rand.Rand
	data    DataSet
	fitness *FitnessCache
}

func NewSimulation(params *SimulationParams) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid simulation params")
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	data := DefaultDataSet()
	cache, err := NewFitnessCache(data, params.FitnessCacheSize)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		params:  *params,
		rng:     rand.New(rand.NewSource(seed)),
		data:    data,
		fitness: cache,
	}, nil
}

func (sim *Simulation) DataSet() DataSet {
	return sim.data
}

// Fitness scores a Chromosome against the Simulation's DataSet
func (sim *Simulation) Fitness(c *Chromosome) Fitness {
	return sim.fitness.Fitness(c)
}

func (sim *Simulation) RandomChromosome() *Chromosome {
	return RandomChromosome(sim.params.ChromosomeSize, sim.rng)
}

// Init creates the initial, evaluated Population
func (sim *Simulation) Init() SearchState {
	generation := make([]*Chromosome, sim.params.PopulationSize)
	for i := range generation {
		generation[i] = sim.RandomChromosome()
	}

	return SearchState{
		Generation: 0,
		Population: sim.evaluate(generation),
		Best:       BestRecord{Fitness: InfiniteFitness},
	}
}

// Run the Simulation for the configured number of generations, reporting each to w
func (sim *Simulation) Run(w io.Writer) (SearchState, error) {
	reporter := NewConsoleReporter(w, sim.params.Verbose)

	state := sim.Init()
	for state.Generation < sim.params.Generations {
		var report GenerationReport
		state, report = sim.Step(state)
		reporter.WriteGeneration(report)
	}
	reporter.WriteFinal(state)

	return state, reporter.Err()
}

// Step breeds the next generation from state, and records its fittest member
// in Best when it improves on every generation before it
func (sim *Simulation) Step(state SearchState) (SearchState, GenerationReport) {
	population := sim.evaluate(sim.nextGeneration(state.Population))

	next := SearchState{
		Generation: state.Generation + 1,
		Population: population,
		Best:       state.Best,
		History:    state.History,
	}

	fittest := population.Fittest()
	decoded := fittest.c.Decode()

	report := GenerationReport{
		Generation: next.Generation,
		Chromosome: fittest.c,
		Expression: decoded.Expression,
		Fitness:    fittest.fitness,
	}
	if sim.params.Verbose {
		report.Stats = ComputePopulationStats(population)
	}

	if fittest.fitness.Less(state.Best.Fitness) {
		next.Best = BestRecord{
			Chromosome: fittest.c,
			Expr:       decoded.Expr,
			Expression: decoded.Expression,
			Fitness:    fittest.fitness,
			Generation: next.Generation,
		}
		// Full slice expression so earlier states never observe the append
		next.History = append(state.History[:len(state.History):len(state.History)], next.Best)
		report.Improved = true
	}

	return next, report
}

// nextGeneration selects a mating pool from pop, then fills a new generation with
// mutated crossover children of parents drawn from the pool
func (sim *Simulation) nextGeneration(pop Population) []*Chromosome {
	matingPool := TournamentSelect(pop, sim.rng)

	generation := make([]*Chromosome, 0, sim.params.PopulationSize+1)
	for len(generation) < sim.params.PopulationSize {
		a := matingPool[sim.rng.Intn(len(matingPool))].c
		b := matingPool[sim.rng.Intn(len(matingPool))].c

		childA, childB, err := CrossOverWithRand(a, b, sim.rng)
		if err != nil {
			// validated params keep every chromosome at ChromosomeSize ≥ 2
			panic(err)
		}

		generation = append(generation,
			childA.MutateWithRand(sim.params.MutationRate, sim.rng),
			childB.MutateWithRand(sim.params.MutationRate, sim.rng),
		)
	}

	return generation[:sim.params.PopulationSize]
}

// evaluate pairs each Chromosome with its fitness, in order. The random source is
// never touched here, so workers don't affect the outcome of a seeded run.
func (sim *Simulation) evaluate(generation []*Chromosome) Population {
	population := make(Population, len(generation))

	evaluateChromosome := func(i int) {
		population[i] = &PopulationMember{
			c:       generation[i],
			fitness: sim.Fitness(generation[i]),
		}
	}

	if sim.params.NumEvaluationWorkers == 0 {
		for i := range generation {
			evaluateChromosome(i)
		}
		return population
	}

	p := pool.New().WithMaxGoroutines(sim.params.NumEvaluationWorkers)
	for i := range generation {
		i := i
		p.Go(func() {
			evaluateChromosome(i)
		})
	}
	p.Wait()

	return population
}
