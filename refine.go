package changepoint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Refine moves each change to the best split point between its two
// neighbours, and merges it into a neighbour when that is better than
// keeping it. penalty is what one change costs; merging saves it.
//
// Changes are visited left to right. After a merge the next change is
// checked against the same left neighbour. The result is a new
// ascending list; changes is not modified.
func Refine(data []float64, changes []int, penalty float64) ([]int, error) {
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return nil, fmt.Errorf("Penalty must be finite, got %v", penalty)
	}
	if err := checkChanges(changes, len(data)); err != nil {
		return nil, err
	}

	times := make([]int, 0, len(changes)+2)
	times = append(times, 0)
	times = append(times, changes...)
	times = append(times, len(data))

	for i := 0; i < len(times)-2; i++ {
		left, mid, right := times[i], times[i+1], times[i+2]

		delta := splitDelta(data, left, right, left, right)
		delta[0] += penalty
		delta[len(delta)-1] += penalty

		best := left + floats.MaxIdx(delta)
		switch best {
		case mid:
		case left, right:
			times = append(times[:i+1], times[i+2:]...)
			i--
		default:
			times[i+1] = best
		}
	}

	return append([]int{}, times[1:len(times)-1]...), nil
}

func checkChanges(changes []int, T int) error {
	prev := 0
	for i, c := range changes {
		if c <= prev || c >= T {
			return fmt.Errorf("%w: change %d at index %d is not in (%d, %d)", ErrInvalidChanges, c, i, prev, T)
		}
		prev = c
	}
	return nil
}
