package optimizer

import (
	"math/rand"
	"sort"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// Repair is a bounded fixed-point procedure that detects hard-conflict sets
// per resource and rerolls conflicting genes until no conflict remains or the
// cycle cap is reached (spec §4.4). It does not promise feasibility, only
// progress — the evaluator's hard-conflict count is the ground truth.
type Repair struct {
	slots    []domain.LessonSlot
	genes    *GeneFactory
	cycles   int
	attempts int
}

// NewRepair constructs the Repair operator. cycles is repair_cycles,
// attempts is repair_attempts (per conflicting gene, per cycle).
func NewRepair(slots []domain.LessonSlot, genes *GeneFactory, cycles, attempts int) *Repair {
	return &Repair{slots: slots, genes: genes, cycles: cycles, attempts: attempts}
}

// Run repairs an Individual in place and returns it.
//
// Each cycle rebuilds the three occupancy multi-maps from the *current*
// Individual, collects every index but the first (lowest) in any bucket
// with more than one member, and rerolls each conflicting index against up
// to `attempts` candidates. A candidate is accepted only if it collides
// with nothing in the snapshot taken at the top of the cycle — not the
// incrementally-updated state — which is a deliberate, source-faithful
// heuristic (see spec's repair snapshot open question): within one cycle,
// two conflicting slots can both be moved onto the same spot that was free
// in the snapshot, since neither sees the other's in-progress reroll; the
// next cycle picks up any conflict this creates.
func (r *Repair) Run(ind *domain.Individual, rng *rand.Rand) *domain.Individual {
	for cycle := 0; cycle < r.cycles; cycle++ {
		teacherSlots := make(map[resourceKey][]int)
		roomSlots := make(map[resourceKey][]int)
		sectionSlots := make(map[resourceKey][]int)

		for i, gene := range ind.Genes {
			section := r.slots[i].SectionID
			teacherSlots[resourceKey{gene.TeacherID, gene.Day, gene.Period}] = append(teacherSlots[resourceKey{gene.TeacherID, gene.Day, gene.Period}], i)
			roomSlots[resourceKey{gene.ClassroomID, gene.Day, gene.Period}] = append(roomSlots[resourceKey{gene.ClassroomID, gene.Day, gene.Period}], i)
			sectionSlots[resourceKey{section, gene.Day, gene.Period}] = append(sectionSlots[resourceKey{section, gene.Day, gene.Period}], i)
		}

		conflicts := collectConflicts(teacherSlots, roomSlots, sectionSlots)
		if len(conflicts) == 0 {
			break
		}

		for _, i := range conflicts {
			section := r.slots[i].SectionID
			for attempt := 0; attempt < r.attempts; attempt++ {
				candidate := r.genes.NewGene(i, rng)
				tKey := resourceKey{candidate.TeacherID, candidate.Day, candidate.Period}
				rKey := resourceKey{candidate.ClassroomID, candidate.Day, candidate.Period}
				sKey := resourceKey{section, candidate.Day, candidate.Period}

				if len(teacherSlots[tKey]) == 0 && len(roomSlots[rKey]) == 0 && len(sectionSlots[sKey]) == 0 {
					ind.Genes[i] = candidate
					break
				}
			}
			// If no candidate in `attempts` worked, the gene is left
			// unchanged for this cycle; it may be retried next cycle.
		}
		ind.Invalidate()
	}
	return ind
}

// collectConflicts returns, for each map with any bucket of size > 1, every
// index but the first (lowest slot index, the collision "winner"), sorted by
// slot index. Map iteration order is randomized per run, so the sort is what
// keeps the RNG draws in r.Run consumed in the same order across runs of the
// same seed.
func collectConflicts(maps ...map[resourceKey][]int) []int {
	seen := make(map[int]bool)
	var conflicts []int
	for _, m := range maps {
		for _, indices := range m {
			if len(indices) <= 1 {
				continue
			}
			for _, i := range indices[1:] {
				if !seen[i] {
					seen[i] = true
					conflicts = append(conflicts, i)
				}
			}
		}
	}
	sort.Ints(conflicts)
	return conflicts
}
