package domain

import "github.com/mitchellh/copystructure"

// Individual is an ordered sequence of exactly N genes, one per lesson slot.
// Fitness is cached on the struct and explicitly invalidated by any operator
// that changes genes, so repair/evaluation only touch what changed.
type Individual struct {
	Genes        []Gene
	FitnessValid bool
	Hard         int
	Soft         int
}

// NewIndividual allocates an Individual with n zero-valued genes.
func NewIndividual(n int) *Individual {
	return &Individual{Genes: make([]Gene, n)}
}

// Invalidate marks the cached fitness stale. Called by any operator that
// mutates genes (crossover, mutation, repair).
func (ind *Individual) Invalidate() {
	ind.FitnessValid = false
}

// SetFitness records a freshly computed (hard, soft) pair as valid.
func (ind *Individual) SetFitness(hard, soft int) {
	ind.Hard = hard
	ind.Soft = soft
	ind.FitnessValid = true
}

// Len returns the number of genes (== number of lesson slots).
func (ind *Individual) Len() int {
	return len(ind.Genes)
}

// Clone deep-copies an Individual so mutating the clone never aliases the
// original's gene slice. The evolutionary engine clones selected parents
// before crossover/mutation for exactly this reason (spec: "Clone parents to
// produce offspring (physical copies; no aliasing between offspring)").
func (ind *Individual) Clone() *Individual {
	raw, err := copystructure.Copy(ind)
	if err != nil {
		// copystructure only fails on unsupported types; Individual is a
		// plain struct of ints/slices, so this path is unreachable in
		// practice. Fall back to a manual copy rather than panic.
		genes := make([]Gene, len(ind.Genes))
		copy(genes, ind.Genes)
		return &Individual{Genes: genes, FitnessValid: ind.FitnessValid, Hard: ind.Hard, Soft: ind.Soft}
	}
	return raw.(*Individual)
}
