package genexpr

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Fitness is the mean absolute error of an expression over a DataSet. Lower is better.
type Fitness float64

// InfiniteFitness marks an expression which could not be evaluated over the whole DataSet
var InfiniteFitness = Fitness(math.Inf(1))

func (f Fitness) IsInfinite() bool {
	return math.IsInf(float64(f), 1)
}

// Less reports whether f is strictly better than other
func (f Fitness) Less(other Fitness) bool {
	return f < other
}

type Sample struct {
	X, Y float64
}

// DataSet is a fixed sequence of samples of the target function. Treat it as read-only.
type DataSet []Sample

// TargetFunction is the function the search tries to approximate: x² + x + 1
func TargetFunction(x float64) float64 {
	return x*x + x + 1
}

// NewDataSet samples f at every integer in [lo, hi]
func NewDataSet(f func(float64) float64, lo, hi int) DataSet {
	if hi < lo {
		return DataSet{}
	}

	data := make(DataSet, 0, hi-lo+1)
	for x := lo; x <= hi; x++ {
		data = append(data, Sample{X: float64(x), Y: f(float64(x))})
	}
	return data
}

func DefaultDataSet() DataSet {
	return NewDataSet(TargetFunction, -10, 10)
}

// Evaluate scores expr against data. Any evaluation fault on any sample yields
// InfiniteFitness; no partial score is kept.
func Evaluate(expr Expr, data DataSet) Fitness {
	if expr == nil || len(data) == 0 {
		return InfiniteFitness
	}

	totalError := 0.0
	for _, sample := range data {
		predicted, err := expr.Eval(sample.X)
		if err != nil {
			return InfiniteFitness
		}
		totalError += math.Abs(sample.Y - predicted)
	}

	fitness := totalError / float64(len(data))
	if math.IsNaN(fitness) || math.IsInf(fitness, 0) {
		return InfiniteFitness
	}
	return Fitness(fitness)
}

// FitnessCache memoizes Evaluate per chromosome. Fitness is pure, so a cached value
// is always identical to a fresh evaluation. Safe for concurrent use.
type FitnessCache struct {
	data  DataSet
	cache *lru.Cache
}

func NewFitnessCache(data DataSet, size int) (*FitnessCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating fitness cache of size %d", size)
	}
	return &FitnessCache{data: data, cache: cache}, nil
}

func (fc *FitnessCache) Fitness(c *Chromosome) Fitness {
	key := c.String()
	if cached, ok := fc.cache.Get(key); ok {
		return cached.(Fitness)
	}

	fitness := Evaluate(c.Decode().Expr, fc.data)
	fc.cache.Add(key, fitness)
	return fitness
}

func (fc *FitnessCache) Len() int {
	return fc.cache.Len()
}
