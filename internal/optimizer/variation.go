package optimizer

import (
	"math/rand"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// crossoverTwoPoint swaps the gene sub-range [lo, hi) between two parents in
// place, mirroring DEAP's cxTwoPoint. Both individuals are invalidated
// whenever the chosen range is non-empty.
func crossoverTwoPoint(a, b *domain.Individual, rng *rand.Rand) {
	n := a.Len()
	if n < 2 {
		return
	}
	lo := rng.Intn(n)
	hi := rng.Intn(n - 1)
	if hi >= lo {
		hi++
	} else {
		lo, hi = hi, lo+1
	}

	for i := lo; i < hi; i++ {
		a.Genes[i], b.Genes[i] = b.Genes[i], a.Genes[i]
	}
	if hi > lo {
		a.Invalidate()
		b.Invalidate()
	}
}

// mutateIndividual rerolls each gene independently with probability pGene,
// drawing a fresh candidate from the Gene Factory for that slot index.
func mutateIndividual(ind *domain.Individual, factory *GeneFactory, pGene float64, rng *rand.Rand) {
	changed := false
	for i := range ind.Genes {
		if rng.Float64() < pGene {
			ind.Genes[i] = factory.NewGene(i, rng)
			changed = true
		}
	}
	if changed {
		ind.Invalidate()
	}
}
