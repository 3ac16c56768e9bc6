package genexpr

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

type Chromosome struct {
	genes []Gene
}

func NewChromosome(genes []Gene) *Chromosome {
	c := &Chromosome{
		genes: make([]Gene, len(genes)),
	}
	copy(c.genes, genes)
	return c
}

// RandomChromosome draws numGenes genes independently from rng
func RandomChromosome(numGenes int, rng *rand.Rand) *Chromosome {
	c := &Chromosome{
		genes: make([]Gene, numGenes),
	}
	for i := range c.genes {
		c.genes[i] = RandomGene(rng)
	}
	return c
}

// EncodeChromosome builds a Chromosome from a string of gene symbols, e.g. "x1+".
// Whitespace is ignored.
func EncodeChromosome(expression string) (*Chromosome, error) {
	genes := make([]Gene, 0, len(expression))
	for i := 0; i < len(expression); i++ {
		symbol := expression[i]
		if symbol == ' ' || symbol == '\t' {
			continue
		}

		gene, ok := GeneOf(symbol)
		if !ok {
			return nil, errors.Errorf("unrecognized gene value %c at position %d", symbol, i)
		}
		genes = append(genes, gene)
	}
	return &Chromosome{genes: genes}, nil
}

func MustEncodeChromosome(expression string) *Chromosome {
	c, err := EncodeChromosome(expression)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the gene symbols back to back; it doubles as the fitness cache key
func (c *Chromosome) String() string {
	var buf strings.Builder
	buf.Grow(len(c.genes))
	for _, gene := range c.genes {
		buf.WriteByte(gene.Symbol)
	}
	return buf.String()
}

func (c *Chromosome) VerboseString() string {
	decoded := c.Decode()

	var genesBuf strings.Builder
	genesBuf.Grow(len(c.genes) * 2)
	for i, gene := range c.genes {
		genesBuf.WriteString(gene.String())
		if i < len(c.genes)-1 {
			genesBuf.WriteByte(' ')
		}
	}

	var validityBuf strings.Builder
	validityBuf.Grow(len(decoded.Validity) * 2)
	for i := 0; i < len(decoded.Validity); i++ {
		validityBuf.WriteByte(decoded.Validity[i])
		if i < len(decoded.Validity)-1 {
			validityBuf.WriteByte(' ')
		}
	}

	return fmt.Sprintf("%s\n%s\n  %s", genesBuf.String(), validityBuf.String(), decoded.Expression)
}

func (c *Chromosome) Copy() *Chromosome {
	return NewChromosome(c.genes)
}

func (c *Chromosome) Genes() []Gene {
	return c.genes
}

func (c *Chromosome) Len() int {
	return len(c.genes)
}

// MutateWithRand creates a new Chromosome in which each gene is, with probability
// mutationRate, replaced by a freshly drawn operator or terminal (even odds)
func (c *Chromosome) MutateWithRand(mutationRate float64, rng *rand.Rand) *Chromosome {
	mutated := c.Copy()

	for i := range mutated.genes {
		if rng.Float64() < mutationRate {
			if rng.Float64() < 0.5 {
				mutated.genes[i] = RandomOperator(rng)
			} else {
				mutated.genes[i] = RandomTerminal(rng)
			}
		}
	}

	return mutated
}

// CrossOverWithRand recombines a and b at a cut drawn uniformly from [1, len-1]
func CrossOverWithRand(a, b *Chromosome, rng *rand.Rand) (*Chromosome, *Chromosome, error) {
	if len(a.genes) < 2 {
		return nil, nil, errors.Errorf("chromosomes of %d genes cannot be crossed over", len(a.genes))
	}
	fulcrum := 1 + rng.Intn(len(a.genes)-1)
	return CrossoverFulcrum(a, b, fulcrum)
}

// CrossoverFulcrum creates two new Chromosomes: a's genes before fulcrum followed
// by b's from fulcrum onwards, and the complementary recombination
func CrossoverFulcrum(a, b *Chromosome, fulcrum int) (*Chromosome, *Chromosome, error) {
	if len(a.genes) != len(b.genes) {
		return nil, nil, errors.Errorf("expected number of genes in both chromosomes to match (%d != %d)", len(a.genes), len(b.genes))
	}
	if fulcrum < 1 || fulcrum >= len(a.genes) {
		return nil, nil, errors.Errorf("fulcrum %d must lie within [1, %d]", fulcrum, len(a.genes)-1)
	}

	newA := &Chromosome{genes: make([]Gene, len(a.genes))}
	newB := &Chromosome{genes: make([]Gene, len(b.genes))}

	copy(newA.genes, a.genes[:fulcrum])
	copy(newA.genes[fulcrum:], b.genes[fulcrum:])

	copy(newB.genes, b.genes[:fulcrum])
	copy(newB.genes[fulcrum:], a.genes[fulcrum:])

	return newA, newB, nil
}
