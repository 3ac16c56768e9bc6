package genexpr

import (
	"runtime"

	"github.com/pkg/errors"
)

type SimulationParams struct {
	// Number of genes each Chromosome will have
	ChromosomeSize int

	// Number of Chromosomes in each generation of the Population
	PopulationSize int

	// Probability each gene is replaced by a freshly drawn one after crossover
	MutationRate float64

	// Number of generations to run before reporting the best solution
	Generations int

	// Seed for the Simulation's random source. Set to 0 to seed from the clock.
	Seed int64

	// Number of goroutines evaluating each new generation's fitness.
	// Set to 0 to evaluate without goroutines.
	NumEvaluationWorkers int

	// Number of Chromosome fitness values memoized across generations
	FitnessCacheSize int

	// Print population statistics after each generation's best
	Verbose bool
}

func DefaultSimulationParams() *SimulationParams {
	return &SimulationParams{
		ChromosomeSize: 40,
		PopulationSize: 50,
		MutationRate:   0.1,
		Generations:    500,

		Seed: 0,

		NumEvaluationWorkers: runtime.NumCPU(),
		FitnessCacheSize:     4096,

		Verbose: false,
	}
}

func (p *SimulationParams) Validate() error {
	if p.ChromosomeSize < 2 {
		return errors.Errorf("chromosome size must be at least 2 for crossover, got %d", p.ChromosomeSize)
	}
	if p.PopulationSize < 1 {
		return errors.Errorf("population size must be positive, got %d", p.PopulationSize)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return errors.Errorf("mutation rate must lie within [0, 1], got %v", p.MutationRate)
	}
	if p.Generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", p.Generations)
	}
	if p.NumEvaluationWorkers < 0 {
		return errors.Errorf("number of evaluation workers must not be negative, got %d", p.NumEvaluationWorkers)
	}
	if p.FitnessCacheSize < 1 {
		return errors.Errorf("fitness cache size must be positive, got %d", p.FitnessCacheSize)
	}
	return nil
}
