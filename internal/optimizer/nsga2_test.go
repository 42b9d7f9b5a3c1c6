package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

func indWithFitness(hard, soft int) *domain.Individual {
	ind := domain.NewIndividual(0)
	ind.SetFitness(hard, soft)
	return ind
}

func TestDominatesRequiresStrictImprovementInAtLeastOneObjective(t *testing.T) {
	require.True(t, dominates(objective{0, 1}, objective{0, 2}))
	require.True(t, dominates(objective{1, 0}, objective{2, 0}))
	require.False(t, dominates(objective{1, 1}, objective{1, 1}))
	require.False(t, dominates(objective{2, 0}, objective{0, 2}))
}

func TestSelectNSGA2PrefersTheNonDominatedFront(t *testing.T) {
	pop := []*domain.Individual{
		indWithFitness(0, 5), // front 0
		indWithFitness(2, 2), // front 0
		indWithFitness(5, 5), // dominated by both
	}

	selected := SelectNSGA2(pop, 2)
	require.Len(t, selected, 2)
	require.Contains(t, selected, pop[0])
	require.Contains(t, selected, pop[1])
	require.NotContains(t, selected, pop[2])
}

func TestSelectNSGA2ReturnsExactlyN(t *testing.T) {
	pop := []*domain.Individual{
		indWithFitness(0, 0),
		indWithFitness(0, 1),
		indWithFitness(1, 0),
		indWithFitness(1, 1),
		indWithFitness(2, 2),
	}
	for n := 1; n <= len(pop); n++ {
		require.Len(t, SelectNSGA2(pop, n), n)
	}
}
