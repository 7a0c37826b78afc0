package changepoint

import "math"

// MinSeparation is the shortest segment that can be scored. Shorter
// segments always get an unbounded cost, and the search seeds and
// spawns its segment-start candidates so that they are exactly this
// many observations old when first scored.
const MinSeparation = 2

// segmentLogLikelihood is the maximised Laplace log-likelihood of n
// observations whose total absolute deviation from their median is
// totalVar. Segments with no dispersion or fewer than MinSeparation
// points get -Inf.
func segmentLogLikelihood(n int, totalVar float64) float64 {
	if totalVar == 0 || n < MinSeparation {
		return math.Inf(-1)
	}
	fn := float64(n)
	return -fn * (1 + math.Log(2*totalVar/fn))
}

// Cost returns the robust cost of treating n observations with the
// given total absolute deviation as one homogeneous segment.
// Degenerate segments cost math.Inf(1).
func Cost(n int, totalVar float64) float64 {
	return -segmentLogLikelihood(n, totalVar)
}
