package optimizer

import (
	"math/rand"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// GeneFactory draws one random (teacher, classroom, day, period) assignment
// consistent with the Feasibility Index for a given lesson-slot index. It is
// a pure function of the slot index and the supplied RNG state — it has no
// awareness of any other gene and is the only place (along with Mutation,
// which calls it) new genes are constructed, which is what makes the
// qualification/room-type invariant hold by construction.
type GeneFactory struct {
	index *domain.FeasibilityIndex
}

// NewGeneFactory wraps a built Feasibility Index.
func NewGeneFactory(index *domain.FeasibilityIndex) *GeneFactory {
	return &GeneFactory{index: index}
}

// NewGene draws a uniformly random valid gene for lesson slot i.
func (g *GeneFactory) NewGene(i int, rng *rand.Rand) domain.Gene {
	teachers := g.index.TeacherChoices(i)
	rooms := g.index.RoomChoices(i)
	return domain.Gene{
		TeacherID:   teachers[rng.Intn(len(teachers))],
		ClassroomID: rooms[rng.Intn(len(rooms))],
		Day:         rng.Intn(domain.Days) + 1,
		Period:      rng.Intn(domain.PeriodsPerDay) + 1,
	}
}
