package changepoint

import (
	"fmt"
	"math"
)

const (
	defaultLambdaMin = 8

	// Random penalty factors are drawn from [jitterLow, 1).
	jitterLow = 0.9
)

type penaltyConfig struct {
	lambdaMin float64
	rng       PenaltyRNG
}

// UniformPenalties returns the penalty table charging lambda for a
// change after any of the n observations but the last.
func UniformPenalties(n int, lambda float64) []float64 {
	if n < 1 {
		return []float64{}
	}
	penalties := make([]float64, n-1)
	for i := range penalties {
		penalties[i] = lambda
	}
	return penalties
}

// RandomizedPenalties returns a penalty table for n observations where
// each entry is lambda scaled by a random factor in [0.9, 1).
//
// The jitter keeps distinct segmentations from scoring exactly the same,
// so the search has a single optimum even on quantised data. Entries
// below the LambdaMin floor are raised to the floor (scaled by the same
// factor).
func RandomizedPenalties(n int, lambda float64, options ...PenaltyOption) ([]float64, error) {
	penalties, _, err := randomizedPenalties(n, lambda, options...)
	return penalties, err
}

// randomizedPenalties also returns the factors it drew, so that later
// rounds of Detect can reuse them.
func randomizedPenalties(n int, lambda float64, options ...PenaltyOption) ([]float64, []float64, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("Need at least one observation, got %d", n)
	}
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return nil, nil, fmt.Errorf("Lambda must be positive and finite, got %v", lambda)
	}

	cfg := penaltyConfig{lambdaMin: defaultLambdaMin}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newUniformRNG(0)
	}

	factors := make([]float64, n-1)
	penalties := make([]float64, n-1)
	for i := range penalties {
		factors[i] = cfg.rng.Float64Range(jitterLow, 1)
		penalties[i] = lambda * factors[i]
		if penalties[i] < jitterLow*cfg.lambdaMin {
			penalties[i] = factors[i] * cfg.lambdaMin
		}
	}
	return penalties, factors, nil
}
