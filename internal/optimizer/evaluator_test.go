package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

func TestEvaluateZeroHardZeroSoftOnCleanSchedule(t *testing.T) {
	slots := []domain.LessonSlot{
		{SectionID: 1, SubjectID: 100},
		{SectionID: 2, SubjectID: 200},
	}
	eval := NewEvaluator(slots)
	ind := &domain.Individual{Genes: []domain.Gene{
		{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 1},
		{TeacherID: 2, ClassroomID: 11, Day: 1, Period: 1},
	}}

	hard, soft := eval.Evaluate(ind)
	require.Equal(t, 0, hard)
	require.Equal(t, 0, soft)
}

func TestEvaluateCountsTeacherRoomAndSectionConflicts(t *testing.T) {
	slots := []domain.LessonSlot{
		{SectionID: 1, SubjectID: 100},
		{SectionID: 1, SubjectID: 200},
	}
	eval := NewEvaluator(slots)
	// Same section, same (day, period): a section double-book, plus the
	// same teacher and same room too.
	ind := &domain.Individual{Genes: []domain.Gene{
		{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 1},
		{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 1},
	}}

	hard, _ := eval.Evaluate(ind)
	require.Equal(t, 3, hard) // teacher + room + section, one excess each
}

func TestEvaluateSoftCountsGapsBetweenFirstAndLastPeriod(t *testing.T) {
	slots := []domain.LessonSlot{
		{SectionID: 1, SubjectID: 100},
		{SectionID: 1, SubjectID: 100, WithinSubjectIndex: 1},
	}
	eval := NewEvaluator(slots)
	// Teacher 1 teaches period 1 and period 4 on day 1: a span of 4 with
	// only 2 classes taught, i.e. 2 empty periods in between.
	ind := &domain.Individual{Genes: []domain.Gene{
		{TeacherID: 1, ClassroomID: 10, Day: 1, Period: 1},
		{TeacherID: 1, ClassroomID: 11, Day: 1, Period: 4},
	}}

	hard, soft := eval.Evaluate(ind)
	require.Equal(t, 0, hard)
	require.Equal(t, 2, soft)
}
