package optimizer

import "github.com/classforge/timetable-optimizer/internal/domain"

// Evaluator computes the multi-objective (hard, soft) fitness of an
// Individual (spec §4.5). hard counts resource-exclusion violations across
// the teacher/room/section dimensions; soft counts empty periods sandwiched
// between a teacher's first and last class on a day.
type Evaluator struct {
	slots []domain.LessonSlot
}

// NewEvaluator constructs an Evaluator bound to the lesson-slot vector.
func NewEvaluator(slots []domain.LessonSlot) *Evaluator {
	return &Evaluator{slots: slots}
}

// Evaluate is deterministic: the same individual always yields the same
// (hard, soft) pair.
func (e *Evaluator) Evaluate(ind *domain.Individual) (hard, soft int) {
	teacherCount := make(map[resourceKey]int)
	roomCount := make(map[resourceKey]int)
	sectionCount := make(map[resourceKey]int)
	teacherDaily := make(map[teacherDayKey][]int)

	for i, gene := range ind.Genes {
		section := e.slots[i].SectionID
		teacherCount[resourceKey{gene.TeacherID, gene.Day, gene.Period}]++
		roomCount[resourceKey{gene.ClassroomID, gene.Day, gene.Period}]++
		sectionCount[resourceKey{section, gene.Day, gene.Period}]++

		tdKey := teacherDayKey{gene.TeacherID, gene.Day}
		teacherDaily[tdKey] = append(teacherDaily[tdKey], gene.Period)
	}

	for _, m := range []map[resourceKey]int{teacherCount, roomCount, sectionCount} {
		for _, count := range m {
			if count > 1 {
				hard += count - 1
			}
		}
	}

	for _, periods := range teacherDaily {
		if len(periods) < 2 {
			continue
		}
		min, max := periods[0], periods[0]
		for _, p := range periods[1:] {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
		soft += (max - min + 1) - len(periods)
	}

	return hard, soft
}

type teacherDayKey struct {
	TeacherID int
	Day       int
}
