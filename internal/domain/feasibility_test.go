package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFeasibilityIndexHappyPath(t *testing.T) {
	slots := []LessonSlot{
		{SectionID: 1, SubjectID: 100, WithinSubjectIndex: 0, RequiredClassroomTypeID: 1},
	}
	teachers := []TeacherQualification{{TeacherID: 1, SubjectID: 100}, {TeacherID: 2, SubjectID: 100}}
	classrooms := []ClassroomCapability{{ClassroomID: 10, TypeID: 1}}

	idx, err := BuildFeasibilityIndex(slots, teachers, classrooms)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, idx.TeacherChoices(0))
	require.Equal(t, []int{10}, idx.RoomChoices(0))
	require.Equal(t, 1, idx.Len())
}

func TestBuildFeasibilityIndexReportsEveryInfeasibleSlot(t *testing.T) {
	slots := []LessonSlot{
		{SectionID: 1, SubjectID: 100, WithinSubjectIndex: 0, RequiredClassroomTypeID: 1},
		{SectionID: 2, SubjectID: 200, WithinSubjectIndex: 0, RequiredClassroomTypeID: 2},
	}
	// No teacher qualified for subject 100, no room of type 2.
	teachers := []TeacherQualification{{TeacherID: 1, SubjectID: 200}}
	classrooms := []ClassroomCapability{{ClassroomID: 10, TypeID: 1}}

	_, err := BuildFeasibilityIndex(slots, teachers, classrooms)
	require.Error(t, err)
	require.Contains(t, err.Error(), "slot 0")
	require.Contains(t, err.Error(), "slot 1")
}

func TestFeasibilityIndexChoicesAreDeterministicAcrossCalls(t *testing.T) {
	slots := []LessonSlot{{SectionID: 1, SubjectID: 100, RequiredClassroomTypeID: 1}}
	teachers := []TeacherQualification{{TeacherID: 5, SubjectID: 100}, {TeacherID: 3, SubjectID: 100}, {TeacherID: 9, SubjectID: 100}}
	classrooms := []ClassroomCapability{{ClassroomID: 1, TypeID: 1}}

	idx, err := BuildFeasibilityIndex(slots, teachers, classrooms)
	require.NoError(t, err)

	first := idx.TeacherChoices(0)
	second := idx.TeacherChoices(0)
	require.Equal(t, first, second)
	require.Equal(t, []int{3, 5, 9}, first)
}
