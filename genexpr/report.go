package genexpr

import (
	"fmt"
	"io"

	"github.com/campoy/unique"
	"github.com/gosuri/uitable"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

var numPrinter = message.NewPrinter(language.English)

// GenerationReport describes the fittest member of a single generation
type GenerationReport struct {
	Generation int
	Chromosome *Chromosome
	Expression string
	Fitness    Fitness

	// Whether this generation's fittest replaced the run's BestRecord
	Improved bool

	// Only computed for verbose runs
	Stats PopulationStats
}

type PopulationStats struct {
	// Mean and standard deviation over the finite fitness values only
	Mean   float64
	StdDev float64

	Valid    int
	Size     int
	Distinct int
}

func ComputePopulationStats(pop Population) PopulationStats {
	finite := make([]float64, 0, len(pop))
	genomes := make([]string, len(pop))
	for i, member := range pop {
		if !member.fitness.IsInfinite() {
			finite = append(finite, float64(member.fitness))
		}
		genomes[i] = member.c.String()
	}

	stats := PopulationStats{
		Valid: len(finite),
		Size:  len(pop),
	}

	switch len(finite) {
	case 0:
	case 1:
		stats.Mean = finite[0]
	default:
		stats.Mean, stats.StdDev = stat.MeanStdDev(finite, nil)
	}

	unique.Slice(&genomes, func(i, j int) bool { return genomes[i] < genomes[j] })
	stats.Distinct = len(genomes)

	return stats
}

func FormatFitness(f Fitness) string {
	if f.IsInfinite() {
		return "inf"
	}
	return fmt.Sprintf("%.6f", float64(f))
}

// ConsoleReporter writes generation and final reports to the console. The first write
// error is kept, and every later write skipped.
type ConsoleReporter struct {
	w       io.Writer
	verbose bool
	err     error
}

func NewConsoleReporter(w io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, verbose: verbose}
}

func (r *ConsoleReporter) Err() error {
	return r.err
}

func (r *ConsoleReporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *ConsoleReporter) WriteGeneration(report GenerationReport) {
	r.printf("Generation %d: Best fitness = %s\n", report.Generation, FormatFitness(report.Fitness))
	r.printf("Best expression: %s\n", report.Expression)

	if r.verbose {
		stats := report.Stats
		r.printf("%s", numPrinter.Sprintf("Population: mean=%.6f stddev=%.6f valid=%d/%d distinct=%d\n",
			stats.Mean, stats.StdDev, stats.Valid, stats.Size, stats.Distinct))
	}

	r.printf("\n")
}

func (r *ConsoleReporter) WriteFinal(state SearchState) {
	best := state.Best

	r.printf("Best solution found:\n")
	if best.Found() {
		r.printf("Generation: %d\n", best.Generation)
		r.printf("Expression: %s\n", best.Expression)
	} else {
		r.printf("Generation: none\n")
		r.printf("Expression: none\n")
	}
	r.printf("Fitness: %s\n", FormatFitness(best.Fitness))

	if len(state.History) == 0 {
		return
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow("GENERATION", "FITNESS", "EXPRESSION")
	for _, record := range state.History {
		table.AddRow(record.Generation, FormatFitness(record.Fitness), record.Expression)
	}

	r.printf("\nImprovements:\n")
	if r.err == nil {
		_, r.err = fmt.Fprintln(r.w, table)
	}
}
