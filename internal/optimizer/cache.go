package optimizer

import (
	"encoding/binary"
	"hash/fnv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/classforge/timetable-optimizer/internal/domain"
)

// evaluationCache memoizes Evaluate results by a signature of an
// Individual's genes. Selection can duplicate individuals across
// generations and Repair can converge to an unchanged gene sequence; both
// cases are exact cache hits rather than a full O(N) re-scan. Bounded so it
// never grows unboundedly across a long run (spec: "no operation suspends
// on I/O"; this is a pure in-memory optimization scoped to one Engine run).
type evaluationCache struct {
	lru *lru.Cache[uint64, [2]int]
}

func newEvaluationCache(capacity int) *evaluationCache {
	if capacity < 1 {
		capacity = 1
	}
	c, _ := lru.New[uint64, [2]int](capacity)
	return &evaluationCache{lru: c}
}

func geneSignature(ind *domain.Individual) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, g := range ind.Genes {
		binary.LittleEndian.PutUint32(buf, uint32(g.TeacherID))
		h.Write(buf)
		binary.LittleEndian.PutUint32(buf, uint32(g.ClassroomID))
		h.Write(buf)
		binary.LittleEndian.PutUint32(buf, uint32(g.Day))
		h.Write(buf)
		binary.LittleEndian.PutUint32(buf, uint32(g.Period))
		h.Write(buf)
	}
	return h.Sum64()
}

func (c *evaluationCache) get(ind *domain.Individual) (hard, soft int, ok bool) {
	pair, ok := c.lru.Get(geneSignature(ind))
	if !ok {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}

func (c *evaluationCache) put(ind *domain.Individual, hard, soft int) {
	c.lru.Add(geneSignature(ind), [2]int{hard, soft})
}
