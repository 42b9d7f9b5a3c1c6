package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

func TestEvaluationCacheRoundTrip(t *testing.T) {
	cache := newEvaluationCache(4)
	ind := &domain.Individual{Genes: []domain.Gene{{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 1}}}

	_, _, ok := cache.get(ind)
	require.False(t, ok)

	cache.put(ind, 2, 3)
	hard, soft, ok := cache.get(ind)
	require.True(t, ok)
	require.Equal(t, 2, hard)
	require.Equal(t, 3, soft)
}

func TestEvaluationCacheDistinguishesDifferentGeneSequences(t *testing.T) {
	cache := newEvaluationCache(4)
	a := &domain.Individual{Genes: []domain.Gene{{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 1}}}
	b := &domain.Individual{Genes: []domain.Gene{{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 2}}}

	cache.put(a, 1, 1)
	_, _, ok := cache.get(b)
	require.False(t, ok)
}
