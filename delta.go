package changepoint

import (
	"fmt"
	"math"
)

// SplitDelta measures how the log-likelihood of the segment
// data[prevChange:nextChange] changes when it is split in two inside
// the window [start, end].
//
// The result has end-start+1 entries. Entry i is the log-likelihood of
// splitting the segment so that the right part starts at start+i,
// minus that of keeping the segment whole; the larger the entry the
// better the split. An entry is -Inf when one of the two parts is too
// short or has no dispersion. When prevChange == start the first entry
// stands for "no left part" and is 0.
//
// When the whole segment is itself degenerate there is no baseline to
// compare against: the result then only holds the log-likelihoods of
// the left parts, every one of which is -Inf except a leading 0.
func SplitDelta(data []float64, prevChange, nextChange, start, end int) ([]float64, error) {
	if start < 0 || start >= end || end > len(data)-1 {
		return nil, fmt.Errorf("%w: window [%d, %d] on %d observations", ErrInvalidWindow, start, end, len(data))
	}
	if prevChange < 0 || prevChange > start || nextChange < end || nextChange > len(data) {
		return nil, fmt.Errorf("%w: segment [%d, %d) does not contain window [%d, %d]",
			ErrInvalidWindow, prevChange, nextChange, start, end)
	}
	return splitDelta(data, prevChange, nextChange, start, end), nil
}

// splitDelta expects 0 <= prevChange <= start < end <= nextChange <=
// len(data). Unlike SplitDelta it accepts end == len(data), which
// Refine needs for the last segment.
func splitDelta(data []float64, prevChange, nextChange, start, end int) []float64 {
	delta := make([]float64, end-start+1)

	acc := NewAccumulator(nextChange - prevChange)
	for t := prevChange; t < nextChange; t++ {
		acc.Insert(data[t])
		if t >= start-1 && t < end {
			delta[t-start+1] = acc.LogLikelihood()
		}
	}

	whole := acc.LogLikelihood()
	if math.IsInf(whole, -1) {
		return delta
	}
	if nextChange == end {
		delta[end-start] -= whole
	}

	acc = NewAccumulator(nextChange - start)
	for t := nextChange - 1; t >= start; t-- {
		acc.Insert(data[t])
		if t <= end {
			delta[t-start] += acc.LogLikelihood() - whole
		}
	}

	return delta
}
