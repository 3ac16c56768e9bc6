package genexpr

import (
	"math"
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// meanAbsError computes the expected fitness of predict the long way around
func meanAbsError(predict func(x float64) float64) float64 {
	total := 0.0
	for x := -10; x <= 10; x++ {
		total += math.Abs(TargetFunction(float64(x)) - predict(float64(x)))
	}
	return total / 21
}

var _ = Describe("Fitness", func() {
	var data DataSet

	BeforeEach(func() {
		data = DefaultDataSet()
	})

	It("samples x² + x + 1 at every integer in [-10, 10]", func() {
		Expect(data).To(HaveLen(21))
		Expect(data[0]).To(Equal(Sample{X: -10, Y: 91}))
		Expect(data[10]).To(Equal(Sample{X: 0, Y: 1}))
		Expect(data[20]).To(Equal(Sample{X: 10, Y: 111}))
	})

	It("builds no samples from an empty range", func() {
		Expect(NewDataSet(TargetFunction, 1, 0)).To(BeEmpty())
	})

	DescribeTable("Evaluate",
		func(geneExpr string, expectedExpr string, predict func(x float64) float64) {
			decoded := MustEncodeChromosome(geneExpr).Decode()
			Expect(decoded.Expression).To(Equal(expectedExpr))
			Expect(float64(Evaluate(decoded.Expr, data))).To(BeNumerically("~", meanAbsError(predict), 1e-9))
		},
		Entry("forty 1 terminals", strings.Repeat("1", 40), "1",
			func(x float64) float64 { return 1 }),
		Entry("x1+", "x1+", "(x + 1)",
			func(x float64) float64 { return x + 1 }),
		Entry("exact", "xx*x+1+", "(((x * x) + x) + 1)",
			func(x float64) float64 { return TargetFunction(x) }),
		Entry("division with a non-zero divisor", "x2/", "(x / 2)",
			func(x float64) float64 { return x / 2 }),
	)

	It("scores x + 1 by the mean of x²", func() {
		fitness := Evaluate(MustEncodeChromosome("x1+").Decode().Expr, data)
		Expect(float64(fitness)).To(BeNumerically("~", 770.0/21, 1e-9))
	})

	It("scores an exact expression zero", func() {
		Expect(Evaluate(MustEncodeChromosome("xx*x+1+").Decode().Expr, data)).To(BeZero())
	})

	DescribeTable("Evaluate faults",
		func(expr Expr) {
			fitness := Evaluate(expr, data)
			Expect(fitness.IsInfinite()).To(BeTrue())
			Expect(fitness).To(Equal(InfiniteFitness))
		},
		Entry("1/x divides by zero at x=0", MustEncodeChromosome("1x/").Decode().Expr),
		Entry("1/(x-x) divides by zero everywhere", MustEncodeChromosome("1xx-/").Decode().Expr),
		Entry("accurate elsewhere yet dividing by (x-3)", MustEncodeChromosome("xx*x+1+x3-x3-/*").Decode().Expr),
		Entry("missing operand", &BinaryNode{Op: '*', Right: &ConstNode{Val: 1}}),
		Entry("unresolved variable", &VarNode{Name: 'y'}),
	)

	It("scores a missing expression or an empty DataSet as infinite", func() {
		Expect(Evaluate(nil, data)).To(Equal(InfiniteFitness))
		Expect(Evaluate(&ConstNode{Val: 1}, DataSet{})).To(Equal(InfiniteFitness))
	})

	It("is pure, never negative and never NaN", func() {
		rng := rand.New(rand.NewSource(7))
		for trial := 0; trial < 500; trial++ {
			chromosome := RandomChromosome(40, rng)
			fitness := Evaluate(chromosome.Decode().Expr, data)

			Expect(math.IsNaN(float64(fitness))).To(BeFalse())
			Expect(fitness >= 0).To(BeTrue())
			Expect(Evaluate(chromosome.Decode().Expr, data)).To(Equal(fitness))
		}
	})

	It("orders fitness values strictly", func() {
		Expect(Fitness(1).Less(2)).To(BeTrue())
		Expect(Fitness(2).Less(2)).To(BeFalse())
		Expect(Fitness(1e300).Less(InfiniteFitness)).To(BeTrue())
		Expect(InfiniteFitness.Less(InfiniteFitness)).To(BeFalse())
	})

	Describe("FitnessCache", func() {
		It("returns the same values as Evaluate", func() {
			cache, err := NewFitnessCache(data, 16)
			Expect(err).ToNot(HaveOccurred())

			rng := rand.New(rand.NewSource(8))
			for trial := 0; trial < 100; trial++ {
				chromosome := RandomChromosome(40, rng)
				expected := Evaluate(chromosome.Decode().Expr, data)
				Expect(cache.Fitness(chromosome)).To(Equal(expected))
				Expect(cache.Fitness(chromosome.Copy())).To(Equal(expected))
			}
			Expect(cache.Len()).To(Equal(16))
		})

		It("refuses a non-positive size", func() {
			_, err := NewFitnessCache(data, 0)
			Expect(err).To(MatchError(ContainSubstring("creating fitness cache of size 0")))
		})
	})
})
