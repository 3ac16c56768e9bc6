package genexpr

import (
	"math/rand"
)

// TournamentSelect builds a mating pool the size of pop. Each slot holds the fitter of
// two members drawn uniformly with replacement; the pool may repeat members.
func TournamentSelect(pop Population, rng *rand.Rand) Population {
	selection := make(Population, len(pop))
	if len(pop) == 0 {
		return selection
	}

	for i := range selection {
		a := pop[rng.Intn(len(pop))]
		b := pop[rng.Intn(len(pop))]
		selection[i] = tournament(a, b)
	}
	return selection
}

// tournament returns a when it is strictly fitter than b, otherwise b
func tournament(a, b *PopulationMember) *PopulationMember {
	if a.fitness.Less(b.fitness) {
		return a
	}
	return b
}
