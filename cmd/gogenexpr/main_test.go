package main

import (
	"bytes"
	"flag"

	"github.com/Marlon-Souza16/Genetic-Expression-Programming/genexpr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Flags", func() {
	It("leaves the fixed configuration alone without arguments", func() {
		params := genexpr.DefaultSimulationParams()
		Expect(newFlagSet(params, &bytes.Buffer{}).Parse(nil)).To(Succeed())
		Expect(params).To(Equal(genexpr.DefaultSimulationParams()))
	})

	It("overrides the seed, workers and verbosity", func() {
		params := genexpr.DefaultSimulationParams()
		err := newFlagSet(params, &bytes.Buffer{}).Parse([]string{"-seed", "42", "-workers", "0", "-verbose"})
		Expect(err).ToNot(HaveOccurred())

		expected := genexpr.DefaultSimulationParams()
		expected.Seed = 42
		expected.NumEvaluationWorkers = 0
		expected.Verbose = true
		Expect(params).To(Equal(expected))
	})

	It("describes the fixed configuration and the optional flags in its usage", func() {
		var out bytes.Buffer
		err := newFlagSet(genexpr.DefaultSimulationParams(), &out).Parse([]string{"-h"})
		Expect(err).To(Equal(flag.ErrHelp))

		Expect(out.String()).To(HavePrefix("Usage: gogenexpr [flags]\n"))
		Expect(out.String()).To(ContainSubstring("Without flags it runs the fixed configuration: a population of 50 chromosomes\nof 40 genes, mutation rate 0.1, for 500 generations."))
		Expect(out.String()).To(ContainSubstring("optional"))
		Expect(out.String()).To(ContainSubstring("-seed"))
		Expect(out.String()).To(ContainSubstring("-workers"))
		Expect(out.String()).To(ContainSubstring("-verbose"))
	})
})
