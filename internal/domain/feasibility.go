package domain

import (
	"fmt"
	"sort"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-set/v3"
)

// FeasibilityIndex precomputes, per lesson slot, the set of teachers
// qualified for its subject and the set of classrooms suited to its
// required room type. It is built once and is read-only thereafter; Gene
// Factory, Initializer, Repair and Mutation all draw from it and never
// construct a gene outside these sets.
//
// Alongside each set.Set (the canonical membership structure, used for
// emptiness checks) we cache a sorted slice of its members: drawing from a
// map-backed set in random order would make the engine's RNG-seeded
// reproducibility depend on Go's randomized map iteration, not just the
// seed.
type FeasibilityIndex struct {
	qualifiedTeachers []*set.Set[int]
	suitableRooms     []*set.Set[int]
	teacherChoices    [][]int
	roomChoices       [][]int
}

// BuildFeasibilityIndex derives the per-slot sets from the three input
// tables. It returns a multierror aggregating every slot whose qualified
// teacher set or suitable room set is empty — the input is structurally
// infeasible and the core must report this before the evolutionary loop
// begins (spec §4.1).
func BuildFeasibilityIndex(slots []LessonSlot, teachers []TeacherQualification, classrooms []ClassroomCapability) (*FeasibilityIndex, error) {
	teachersBySubject := make(map[int][]int)
	for _, t := range teachers {
		teachersBySubject[t.SubjectID] = append(teachersBySubject[t.SubjectID], t.TeacherID)
	}
	roomsByType := make(map[int][]int)
	for _, c := range classrooms {
		roomsByType[c.TypeID] = append(roomsByType[c.TypeID], c.ClassroomID)
	}

	idx := &FeasibilityIndex{
		qualifiedTeachers: make([]*set.Set[int], len(slots)),
		suitableRooms:     make([]*set.Set[int], len(slots)),
		teacherChoices:    make([][]int, len(slots)),
		roomChoices:       make([][]int, len(slots)),
	}

	var errs error
	for i, slot := range slots {
		qt := set.From(teachersBySubject[slot.SubjectID])
		sr := set.From(roomsByType[slot.RequiredClassroomTypeID])
		idx.qualifiedTeachers[i] = qt
		idx.suitableRooms[i] = sr
		idx.teacherChoices[i] = sortedSlice(qt)
		idx.roomChoices[i] = sortedSlice(sr)

		if qt.Empty() {
			errs = multierror.Append(errs, fmt.Errorf("slot %d: section %d subject %d has no qualified teacher", i, slot.SectionID, slot.SubjectID))
		}
		if sr.Empty() {
			errs = multierror.Append(errs, fmt.Errorf("slot %d: section %d subject %d has no suitable classroom for type %d", i, slot.SectionID, slot.SubjectID, slot.RequiredClassroomTypeID))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return idx, nil
}

// ValidFor returns the qualified-teacher and suitable-room sets for slot i.
func (f *FeasibilityIndex) ValidFor(i int) (*set.Set[int], *set.Set[int]) {
	return f.qualifiedTeachers[i], f.suitableRooms[i]
}

// TeacherChoices returns the deterministically ordered qualified-teacher
// slice for slot i, for uniform-random draws that must reproduce given a
// fixed RNG seed.
func (f *FeasibilityIndex) TeacherChoices(i int) []int {
	return f.teacherChoices[i]
}

// RoomChoices returns the deterministically ordered suitable-room slice for
// slot i.
func (f *FeasibilityIndex) RoomChoices(i int) []int {
	return f.roomChoices[i]
}

// Len returns the number of lesson slots the index was built over.
func (f *FeasibilityIndex) Len() int {
	return len(f.qualifiedTeachers)
}

func sortedSlice(s *set.Set[int]) []int {
	items := s.Slice()
	sort.Ints(items)
	return items
}
