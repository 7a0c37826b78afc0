package changepoint

import (
	"container/list"
	"fmt"
	"math"
)

// SearchStats counts what a search did with its segment-start
// candidates.
type SearchStats struct {
	Spawned  int // candidates created, including the one starting at 0
	Pruned   int // candidates dropped before the end of the scan
	PeakLive int // largest number of candidates scored at one position
}

// Segmentation is the dynamic-programming table of a finished search.
//
// Scores[t] is the best log-likelihood minus penalties of any
// segmentation of data[0..t], Predecessors[t] the start of its last
// segment. Positions before MinSeparation-1 are never scored and hold
// -Inf and -1.
type Segmentation struct {
	Scores       []float64
	Predecessors []int
}

// hypothesis is a candidate start for the last segment.
type hypothesis struct {
	start   int
	acc     *Accumulator
	score   float64
	pruneAt int // -1 while it may still be optimal
}

type searcher struct {
	prune bool
	stats *SearchStats
}

// FindChanges returns the optimal changepoints of data, in ascending
// order, under the robust segment cost and the per-position penalty
// table. penalties[t] is charged for a change right after position t,
// so it must have exactly len(data)-1 entries.
//
// A returned index i means a new segment starts at data[i]; indices
// are always in [2, len(data)-1].
func FindChanges(data, penalties []float64, options ...SearchOption) ([]int, error) {
	seg, err := Search(data, penalties, options...)
	if err != nil {
		return nil, err
	}
	return seg.Changes(), nil
}

// Search runs the pruned dynamic program over data and returns its
// full table.
func Search(data, penalties []float64, options ...SearchOption) (*Segmentation, error) {
	if len(penalties) != len(data)-1 {
		return nil, fmt.Errorf("%w: %d observations, %d penalties", ErrDimensionMismatch, len(data), len(penalties))
	}

	s := &searcher{prune: true}
	for _, option := range options {
		option(s)
	}
	if s.stats != nil {
		*s.stats = SearchStats{}
	}

	return s.run(data, penalties), nil
}

func (s *searcher) run(data, penalties []float64) *Segmentation {
	T := len(data)
	seg := &Segmentation{
		Scores:       make([]float64, T),
		Predecessors: make([]int, T),
	}
	for t := 0; t < T && t < MinSeparation-1; t++ {
		seg.Scores[t] = math.Inf(-1)
		seg.Predecessors[t] = -1
	}
	if T < MinSeparation {
		return seg
	}

	live := list.New()
	seed := s.spawn(live, 0)
	for t := 0; t < MinSeparation-1; t++ {
		seed.acc.Insert(data[t])
	}

	for t := MinSeparation - 1; t < T; t++ {
		best, argBest := math.Inf(-1), -1
		scored := 0

		for e := live.Front(); e != nil; {
			next := e.Next()
			h := e.Value.(*hypothesis)
			if h.pruneAt == t {
				live.Remove(e)
				s.countPruned()
				e = next
				continue
			}

			h.acc.Insert(data[t])
			val := h.acc.LogLikelihood()
			if h.start > 0 {
				val += seg.Scores[h.start-1] - penalties[h.start-1]
			}
			h.score = val
			if argBest < 0 || val > best {
				best, argBest = val, h.start
			}
			scored++
			e = next
		}
		s.countLive(scored)

		seg.Scores[t] = best
		seg.Predecessors[t] = argBest

		// On untied data a candidate that already trails a fresh start at t+1
		// can never catch up. It stays alive until that fresh start is scored.
		if s.prune && t < T-1 {
			bound := best - penalties[t]
			for e := live.Front(); e != nil; e = e.Next() {
				h := e.Value.(*hypothesis)
				if h.pruneAt == -1 && h.score < bound {
					h.pruneAt = t + MinSeparation
				}
			}
		}

		if start := t - MinSeparation + 2; start >= MinSeparation {
			h := s.spawn(live, start)
			for i := start; i <= t; i++ {
				h.acc.Insert(data[i])
			}
		}
	}

	return seg
}

func (s *searcher) spawn(live *list.List, start int) *hypothesis {
	h := &hypothesis{
		start:   start,
		acc:     NewAccumulator(MinSeparation),
		pruneAt: -1,
	}
	live.PushBack(h)
	if s.stats != nil {
		s.stats.Spawned++
	}
	return h
}

func (s *searcher) countPruned() {
	if s.stats != nil {
		s.stats.Pruned++
	}
}

func (s *searcher) countLive(n int) {
	if s.stats != nil && n > s.stats.PeakLive {
		s.stats.PeakLive = n
	}
}

// Changes backtraces the table into the ascending list of
// changepoints. Starts at 0 or 1 mean "no earlier change" and are not
// reported.
func (s *Segmentation) Changes() []int {
	changes := []int{}
	T := len(s.Predecessors)
	if T == 0 {
		return changes
	}

	for ind := s.Predecessors[T-1]; ind > 1; ind = s.Predecessors[ind-1] {
		changes = append(changes, ind)
	}

	for i, j := 0, len(changes)-1; i < j; i, j = i+1, j-1 {
		changes[i], changes[j] = changes[j], changes[i]
	}
	return changes
}
