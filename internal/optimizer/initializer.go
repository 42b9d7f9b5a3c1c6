package optimizer

import (
	"math/rand"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// resourceKey is a (resource id, day, period) occupancy key shared by the
// Initializer and Repair; a single type keeps both using identical
// collision semantics.
type resourceKey struct {
	ID     int
	Day    int
	Period int
}

// Initializer builds a mostly hard-feasible starting Individual by
// sequentially placing each lesson slot, avoiding collisions with
// previously placed slots only (spec §4.3).
type Initializer struct {
	slots    []domain.LessonSlot
	genes    *GeneFactory
	attempts int
}

// NewInitializer constructs a Greedy Initializer. attempts is the
// greedy_attempts config value: how many candidate genes to try per slot
// before falling through to the last draw.
func NewInitializer(slots []domain.LessonSlot, genes *GeneFactory, attempts int) *Initializer {
	return &Initializer{slots: slots, genes: genes, attempts: attempts}
}

// BuildIndividual places every lesson slot in natural order, accepting the
// first of up to `attempts` candidate genes whose (teacher,day,period),
// (room,day,period) and (section,day,period) triples are free. If all
// attempts collide, the last draw is placed anyway — Repair resolves it
// later. A slot is never left unplaced.
func (in *Initializer) BuildIndividual(rng *rand.Rand) *domain.Individual {
	ind := domain.NewIndividual(len(in.slots))

	teacherOccupied := make(map[resourceKey]bool)
	roomOccupied := make(map[resourceKey]bool)
	sectionOccupied := make(map[resourceKey]bool)

	for i, slot := range in.slots {
		var gene domain.Gene
		placed := false

		for attempt := 0; attempt < in.attempts; attempt++ {
			gene = in.genes.NewGene(i, rng)
			tKey := resourceKey{gene.TeacherID, gene.Day, gene.Period}
			rKey := resourceKey{gene.ClassroomID, gene.Day, gene.Period}
			sKey := resourceKey{slot.SectionID, gene.Day, gene.Period}

			if !teacherOccupied[tKey] && !roomOccupied[rKey] && !sectionOccupied[sKey] {
				teacherOccupied[tKey] = true
				roomOccupied[rKey] = true
				sectionOccupied[sKey] = true
				placed = true
				break
			}
		}

		if !placed {
			// All `attempts` draws collided: keep the last draw as-is. This
			// leaves a known conflict for Repair; it is never left nil.
			tKey := resourceKey{gene.TeacherID, gene.Day, gene.Period}
			rKey := resourceKey{gene.ClassroomID, gene.Day, gene.Period}
			sKey := resourceKey{slot.SectionID, gene.Day, gene.Period}
			teacherOccupied[tKey] = true
			roomOccupied[rKey] = true
			sectionOccupied[sKey] = true
		}

		ind.Genes[i] = gene
	}

	return ind
}
