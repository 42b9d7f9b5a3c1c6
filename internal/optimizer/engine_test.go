package optimizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

func buildEngineFixture(t *testing.T, slots []domain.LessonSlot, teachers []domain.TeacherQualification, classrooms []domain.ClassroomCapability) *domain.FeasibilityIndex {
	t.Helper()
	idx, err := domain.BuildFeasibilityIndex(slots, teachers, classrooms)
	require.NoError(t, err)
	return idx
}

func TestEngineRunReachesHardZeroOnSlackInput(t *testing.T) {
	slots := []domain.LessonSlot{
		{SectionID: 1, SubjectID: 100, RequiredClassroomTypeID: 1},
		{SectionID: 1, SubjectID: 100, WithinSubjectIndex: 1, RequiredClassroomTypeID: 1},
		{SectionID: 2, SubjectID: 200, RequiredClassroomTypeID: 1},
	}
	idx := buildEngineFixture(t, slots,
		[]domain.TeacherQualification{{TeacherID: 1, SubjectID: 100}, {TeacherID: 2, SubjectID: 200}},
		[]domain.ClassroomCapability{{ClassroomID: 10, TypeID: 1}, {ClassroomID: 11, TypeID: 1}},
	)

	engine, err := NewEngine(Config{PopulationSize: 20, Generations: 50, PCrossover: 0.9, PMutate: 0.5, PGene: 0.1, Seed: 1}, slots, idx)
	require.NoError(t, err)

	result := engine.Run()
	require.True(t, result.Feasible)
	require.Equal(t, 0, result.Best.Hard)
	require.Len(t, result.Best.Genes, 3)
}

func TestEngineRunIsDeterministicForAFixedSeed(t *testing.T) {
	slots := []domain.LessonSlot{
		{SectionID: 1, SubjectID: 100, RequiredClassroomTypeID: 1},
		{SectionID: 2, SubjectID: 100, WithinSubjectIndex: 0, RequiredClassroomTypeID: 1},
	}
	teachers := []domain.TeacherQualification{{TeacherID: 1, SubjectID: 100}, {TeacherID: 2, SubjectID: 100}}
	classrooms := []domain.ClassroomCapability{{ClassroomID: 10, TypeID: 1}}

	run := func() *Result {
		idx := buildEngineFixture(t, slots, teachers, classrooms)
		engine, err := NewEngine(Config{PopulationSize: 16, Generations: 20, Seed: 99}, slots, idx)
		require.NoError(t, err)
		return engine.Run()
	}

	a := run()
	b := run()
	if diff := cmp.Diff(a.Best.Genes, b.Best.Genes); diff != "" {
		t.Fatalf("genes differ across runs with the same seed (-first +second):\n%s", diff)
	}
	require.Equal(t, a.Best.Hard, b.Best.Hard)
	require.Equal(t, a.Best.Soft, b.Best.Soft)
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	slots := []domain.LessonSlot{{SectionID: 1, SubjectID: 100, RequiredClassroomTypeID: 1}}
	idx := buildEngineFixture(t, slots,
		[]domain.TeacherQualification{{TeacherID: 1, SubjectID: 100}},
		[]domain.ClassroomCapability{{ClassroomID: 10, TypeID: 1}},
	)

	_, err := NewEngine(Config{PopulationSize: 1}, slots, idx)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEngineRunReturnsBestEffortWhenInfeasible(t *testing.T) {
	// 45 lesson-hours for one teacher/one room, beyond the 40 weekly slots
	// available to a single teacher — hard cannot reach zero.
	var slots []domain.LessonSlot
	for i := 0; i < 45; i++ {
		slots = append(slots, domain.LessonSlot{SectionID: 1, SubjectID: 100, WithinSubjectIndex: i, RequiredClassroomTypeID: 1})
	}
	idx := buildEngineFixture(t, slots,
		[]domain.TeacherQualification{{TeacherID: 1, SubjectID: 100}},
		[]domain.ClassroomCapability{{ClassroomID: 10, TypeID: 1}},
	)

	engine, err := NewEngine(Config{PopulationSize: 10, Generations: 5, Seed: 3}, slots, idx)
	require.NoError(t, err)

	result := engine.Run()
	require.False(t, result.Feasible)
	require.Greater(t, result.Best.Hard, 0)
	require.Len(t, result.Best.Genes, 45)
}
