package genexpr

import (
	"math/rand"
)

type GeneKind uint8

const (
	OperatorGene GeneKind = iota
	TerminalGene
)

// Gene is a single token of a Chromosome: an operator or a terminal symbol
type Gene struct {
	Kind   GeneKind
	Symbol byte
}

var GeneOperators = []byte("+-*/")
var GeneTerminals = []byte("x12345")

// VariableSymbol is the terminal substituted with each sample's input
const VariableSymbol = 'x'

var geneOperatorsSet map[byte]struct{}
var geneTerminalsSet map[byte]struct{}

func init() {
	geneOperatorsSet = make(map[byte]struct{})
	for _, op := range GeneOperators {
		geneOperatorsSet[op] = struct{}{}
	}

	geneTerminalsSet = make(map[byte]struct{})
	for _, term := range GeneTerminals {
		geneTerminalsSet[term] = struct{}{}
	}
}

func Operator(op byte) Gene {
	return Gene{Kind: OperatorGene, Symbol: op}
}

func Terminal(term byte) Gene {
	return Gene{Kind: TerminalGene, Symbol: term}
}

// GeneOf classifies a symbol, reporting false if it is neither a known operator nor terminal
func GeneOf(symbol byte) (Gene, bool) {
	if _, isOp := geneOperatorsSet[symbol]; isOp {
		return Operator(symbol), true
	}
	if _, isTerm := geneTerminalsSet[symbol]; isTerm {
		return Terminal(symbol), true
	}
	return Gene{}, false
}

func (g Gene) IsOperator() bool {
	return g.Kind == OperatorGene
}

func (g Gene) IsTerminal() bool {
	return g.Kind == TerminalGene
}

// IsValid reports whether the gene belongs to the operator or terminal universe
func (g Gene) IsValid() bool {
	switch g.Kind {
	case OperatorGene:
		_, ok := geneOperatorsSet[g.Symbol]
		return ok
	case TerminalGene:
		_, ok := geneTerminalsSet[g.Symbol]
		return ok
	default:
		return false
	}
}

func (g Gene) String() string {
	return string(g.Symbol)
}

func RandomOperator(rng *rand.Rand) Gene {
	return Operator(GeneOperators[rng.Intn(len(GeneOperators))])
}

func RandomTerminal(rng *rand.Rand) Gene {
	return Terminal(GeneTerminals[rng.Intn(len(GeneTerminals))])
}

// RandomGene draws an operator or a terminal with equal probability,
// each uniformly from its own set
func RandomGene(rng *rand.Rand) Gene {
	if rng.Float64() < 0.5 {
		return RandomOperator(rng)
	}
	return RandomTerminal(rng)
}
