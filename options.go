package changepoint

// SearchOption configures FindChanges and Search.
type SearchOption func(*searcher)

// WithoutPruning keeps every segment-start candidate alive until the
// end of the scan.
//
// Pruning never changes the outcome of a search on data without ties,
// it only bounds the number of candidates evaluated per position. On
// tied data a candidate can be pruned while its first values are equal
// and miss a later optimum, so the two searches may disagree there.
// Without pruning a search is quadratic in the data length.
func WithoutPruning() SearchOption {
	return func(s *searcher) {
		s.prune = false
	}
}

// WithStats makes the search record its bookkeeping counters in stats.
func WithStats(stats *SearchStats) SearchOption {
	return func(s *searcher) {
		s.stats = stats
	}
}

// PenaltyOption configures RandomizedPenalties.
type PenaltyOption func(*penaltyConfig)

// LambdaMin sets the floor used by RandomizedPenalties.
//
// Any penalty that would fall below 0.9*lambdaMin is replaced by the
// random factor times lambdaMin. A small lambda makes the first search
// slow (few candidates ever get pruned), the floor keeps it fast without
// noticeably affecting which changes are detected. The default is 8, a
// value of 0 disables the floor.
//
// LambdaMin must not be negative, will panic otherwise.
func LambdaMin(lambdaMin float64) PenaltyOption {
	if lambdaMin < 0 {
		panic("LambdaMin should be >= 0")
	}
	return func(c *penaltyConfig) {
		c.lambdaMin = lambdaMin
	}
}

// Seed makes RandomizedPenalties draw its factors from a uniform
// generator seeded with seed. The default seed is 0, so penalty tables
// are reproducible unless asked otherwise.
func Seed(seed int64) PenaltyOption {
	return func(c *penaltyConfig) {
		c.rng = newUniformRNG(seed)
	}
}

// RandomSource makes RandomizedPenalties draw its factors from rng.
func RandomSource(rng PenaltyRNG) PenaltyOption {
	return func(c *penaltyConfig) {
		c.rng = rng
	}
}

// DetectorOption configures NewDetector.
type DetectorOption func(*Detector)

// MaxIterations bounds how many search/refine rounds Detect runs
// before giving up on the change set settling. The default is 100.
//
// MaxIterations must be at least 1, will panic otherwise.
func MaxIterations(n int) DetectorOption {
	if n < 1 {
		panic("MaxIterations should be >= 1")
	}
	return func(d *Detector) {
		d.maxIterations = n
	}
}

// WithoutRefinement disables relocating and merging changes between
// search rounds.
func WithoutRefinement() DetectorOption {
	return func(d *Detector) {
		d.refine = false
	}
}

// PenaltyOptions configures how Detect builds its first penalty table.
func PenaltyOptions(options ...PenaltyOption) DetectorOption {
	return func(d *Detector) {
		d.penaltyOptions = append(d.penaltyOptions, options...)
	}
}
