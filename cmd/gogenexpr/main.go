package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Marlon-Souza16/Genetic-Expression-Programming/genexpr"
)

const usageHeader = `Usage: gogenexpr [flags]

Searches for an expression fitting f(x) = x² + x + 1 over the integers in [-10, 10].
Without flags it runs the fixed configuration: a population of %d chromosomes
of %d genes, mutation rate %g, for %d generations. The flags below are optional
additions and leave that run unchanged when omitted.

`

func newFlagSet(params *genexpr.SimulationParams, output io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("gogenexpr", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.Int64Var(&params.Seed, "seed", params.Seed, "Seed for the random source. A clock-based seed is used if 0")
	flags.IntVar(&params.NumEvaluationWorkers, "workers", params.NumEvaluationWorkers, "Number of goroutines evaluating fitness each generation. Set to 0 to disable concurrency.")
	flags.BoolVar(&params.Verbose, "verbose", params.Verbose, "Print population statistics after each generation")

	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageHeader,
			params.PopulationSize, params.ChromosomeSize, params.MutationRate, params.Generations)
		flags.PrintDefaults()
	}

	return flags
}

func main() {
	params := genexpr.DefaultSimulationParams()

	if err := newFlagSet(params, os.Stderr).Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	sim, err := genexpr.NewSimulation(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if _, err := sim.Run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
		os.Exit(1)
	}
}
