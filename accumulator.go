package changepoint

import (
	"container/heap"
	"fmt"
	"math"
)

// lowHeap is a max-heap holding the lower half of the inserted values.
type lowHeap []float64

func (h lowHeap) Len() int           { return len(h) }
func (h lowHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h lowHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h lowHeap) top() float64       { return h[0] }

func (h *lowHeap) Push(x interface{}) {
	*h = append(*h, x.(float64))
}

func (h *lowHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// highHeap is a min-heap holding the upper half of the inserted values.
type highHeap []float64

func (h highHeap) Len() int           { return len(h) }
func (h highHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h highHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h highHeap) top() float64       { return h[0] }

func (h *highHeap) Push(x interface{}) {
	*h = append(*h, x.(float64))
}

func (h *highHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Accumulator keeps the sufficient statistics of a growing segment:
// its running median and the total absolute deviation from it.
//
// Values can only be added. Each Insert costs O(log n) and never
// looks at previously inserted values again, so evaluating the
// segment cost after every insertion is cheap.
//
// The zero value is an empty accumulator ready to use.
type Accumulator struct {
	low      lowHeap
	high     highHeap
	n        int
	med      float64
	totalVar float64
}

// NewAccumulator returns an empty accumulator with room for
// sizeHint values before its heaps need to grow.
func NewAccumulator(sizeHint int) *Accumulator {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Accumulator{
		low:  make(lowHeap, 0, sizeHint/2+1),
		high: make(highHeap, 0, sizeHint/2+1),
	}
}

// Insert adds x to the segment, keeping both halves within one
// element of each other.
func (a *Accumulator) Insert(x float64) {
	a.n++

	switch {
	case a.high.Len() == a.low.Len():
		if a.high.Len() == 0 || x < a.high.top() {
			heap.Push(&a.low, x)
			a.med = a.low.top()
			a.totalVar += a.med - x
		} else {
			heap.Push(&a.high, x)
			a.med = a.high.top()
			a.totalVar += x - a.med
		}
		return
	case a.high.Len() < a.low.Len():
		if x >= a.low.top() {
			heap.Push(&a.high, x)
		} else {
			heap.Push(&a.high, heap.Pop(&a.low))
			heap.Push(&a.low, x)
		}
	default:
		if x <= a.high.top() {
			heap.Push(&a.low, x)
		} else {
			heap.Push(&a.low, heap.Pop(&a.high))
			heap.Push(&a.high, x)
		}
	}

	// Even count: any point between the two middle values is a median
	// and they all share the same total deviation.
	lo, hi := a.low.top(), a.high.top()
	a.med = (lo + hi) / 2
	a.totalVar += (hi-lo)/2 + math.Abs(x-a.med)
}

// Count returns how many values were inserted.
func (a *Accumulator) Count() int {
	return a.n
}

// Median returns the median of the inserted values, NaN if there
// are none.
func (a *Accumulator) Median() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.med
}

// TotalDeviation returns the running sum of absolute deviations from
// the median.
func (a *Accumulator) TotalDeviation() float64 {
	return a.totalVar
}

// LogLikelihood returns the Laplace log-likelihood of the segment,
// math.Inf(-1) when the segment is degenerate.
func (a *Accumulator) LogLikelihood() float64 {
	return segmentLogLikelihood(a.n, a.totalVar)
}

// Cost returns the negative log-likelihood of the segment.
func (a *Accumulator) Cost() float64 {
	return Cost(a.n, a.totalVar)
}

func (a Accumulator) String() string {
	return fmt.Sprintf("Acc<n=%d, med=%.6f, dev=%.6f>", a.n, a.med, a.totalVar)
}
