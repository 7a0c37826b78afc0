package changepoint

import (
	rng "github.com/leesper/go_rng"
)

// PenaltyRNG is the source of the random factors RandomizedPenalties
// applies to each position. Float64Range must return a value in [a, b).
type PenaltyRNG interface {
	Float64Range(a, b float64) float64
}

type uniformRNG struct {
	uniform *rng.UniformGenerator
}

func newUniformRNG(seed int64) *uniformRNG {
	return &uniformRNG{uniform: rng.NewUniformGenerator(seed)}
}

func (r *uniformRNG) Float64Range(a, b float64) float64 {
	return r.uniform.Float64Range(a, b)
}
