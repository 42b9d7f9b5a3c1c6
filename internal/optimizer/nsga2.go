package optimizer

import (
	"math"
	"sort"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// objective pairs (hard, soft) for one population member, used only inside
// the selection step.
type objective struct {
	hard int
	soft int
}

func dominates(a, b objective) bool {
	if a.hard > b.hard || a.soft > b.soft {
		return false
	}
	return a.hard < b.hard || a.soft < b.soft
}

// fastNonDominatedSort groups population indices into Pareto fronts,
// front[0] being non-dominated.
func fastNonDominatedSort(objs []objective) [][]int {
	n := len(objs)
	dominatedBy := make([][]int, n)
	dominationCount := make([]int, n)
	var fronts [][]int
	first := []int{}

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			if dominates(objs[p], objs[q]) {
				dominatedBy[p] = append(dominatedBy[p], q)
			} else if dominates(objs[q], objs[p]) {
				dominationCount[p]++
			}
		}
		if dominationCount[p] == 0 {
			first = append(first, p)
		}
	}
	fronts = append(fronts, first)

	for i := 0; len(fronts[i]) > 0; i++ {
		var next []int
		for _, p := range fronts[i] {
			for _, q := range dominatedBy[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					next = append(next, q)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		fronts = append(fronts, next)
	}
	return fronts
}

// crowdingDistance assigns each member of a front a density estimate: the
// sum, over each objective, of the normalized distance between its two
// neighbors once the front is sorted by that objective. Boundary points get
// +Inf so they are always preferred (spread over convergence at the edges).
func crowdingDistance(front []int, objs []objective) map[int]float64 {
	dist := make(map[int]float64, len(front))
	for _, idx := range front {
		dist[idx] = 0
	}
	if len(front) <= 2 {
		for _, idx := range front {
			dist[idx] = math.Inf(1)
		}
		return dist
	}

	assign := func(value func(int) float64) {
		sorted := append([]int(nil), front...)
		sort.Slice(sorted, func(i, j int) bool {
			vi, vj := value(sorted[i]), value(sorted[j])
			if vi != vj {
				return vi < vj
			}
			return sorted[i] < sorted[j]
		})
		lo := value(sorted[0])
		hi := value(sorted[len(sorted)-1])
		dist[sorted[0]] = math.Inf(1)
		dist[sorted[len(sorted)-1]] = math.Inf(1)
		if hi == lo {
			return
		}
		for i := 1; i < len(sorted)-1; i++ {
			dist[sorted[i]] += (value(sorted[i+1]) - value(sorted[i-1])) / (hi - lo)
		}
	}

	assign(func(i int) float64 { return float64(objs[i].hard) })
	assign(func(i int) float64 { return float64(objs[i].soft) })
	return dist
}

// SelectNSGA2 returns n individuals selected by non-dominated sorting plus
// crowding distance: whole fronts are taken in rank order, and the last
// front that would overflow n is truncated by descending crowding distance
// (a wider spread over the Pareto front is preferred at the cutoff).
// Ranking is plain Pareto dominance over (hard, soft): an individual with
// fewer hard conflicts but a higher soft score shares a front with one that
// has more hard conflicts and a lower soft score. The hard-before-soft
// priority is applied by archiveBest and Run's final pick, not here.
func SelectNSGA2(pop []*domain.Individual, n int) []*domain.Individual {
	objs := make([]objective, len(pop))
	for i, ind := range pop {
		objs[i] = objective{hard: ind.Hard, soft: ind.Soft}
	}

	fronts := fastNonDominatedSort(objs)
	selected := make([]*domain.Individual, 0, n)

	for _, front := range fronts {
		if len(selected) >= n {
			break
		}
		if len(selected)+len(front) <= n {
			for _, idx := range front {
				selected = append(selected, pop[idx])
			}
			continue
		}

		dist := crowdingDistance(front, objs)
		ordered := append([]int(nil), front...)
		sort.Slice(ordered, func(i, j int) bool {
			di, dj := dist[ordered[i]], dist[ordered[j]]
			if di != dj {
				return di > dj
			}
			return ordered[i] < ordered[j]
		})
		remaining := n - len(selected)
		for i := 0; i < remaining; i++ {
			selected = append(selected, pop[ordered[i]])
		}
		break
	}
	return selected
}
