package changepoint

import (
	"fmt"
	"math"
	"slices"
)

const defaultMaxIterations = 100

// Detector finds changes in univariate series by alternating penalised
// searches with local relocation of the changes found.
//
// The first round searches with randomized penalties around lambda.
// Every following round charges exactly lambda at the positions of the
// changes already found and a little more everywhere else, so known
// changes are favoured over new ones. Once a round no longer reduces
// the number of changes, each round also relocates and merges changes
// with Refine. Rounds stop when the change set is empty or repeats an
// earlier one.
type Detector struct {
	lambda         float64
	maxIterations  int
	refine         bool
	penaltyOptions []PenaltyOption
}

// Result is the outcome of Detect.
type Result struct {
	Changes    []int
	Iterations int
	Stats      SearchStats // from the last search round
}

// NewDetector returns a Detector charging lambda per change. Set
// lambda higher to detect fewer changes.
func NewDetector(lambda float64, options ...DetectorOption) (*Detector, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return nil, fmt.Errorf("Lambda must be positive and finite, got %v", lambda)
	}

	d := &Detector{
		lambda:        lambda,
		maxIterations: defaultMaxIterations,
		refine:        true,
	}
	for _, option := range options {
		option(d)
	}
	return d, nil
}

// Lambda returns the per-change penalty.
func (d *Detector) Lambda() float64 {
	return d.lambda
}

// Detect returns the changes of data in ascending order.
func (d *Detector) Detect(data []float64) (*Result, error) {
	result := &Result{Changes: []int{}}
	if len(data) < MinSeparation {
		return result, nil
	}

	penalties, factors, err := randomizedPenalties(len(data), d.lambda, d.penaltyOptions...)
	if err != nil {
		return nil, err
	}

	var history [][]int
	prevCount := len(data)
	shift := false

	for iter := 0; iter < d.maxIterations; iter++ {
		changes, err := FindChanges(data, penalties, WithStats(&result.Stats))
		if err != nil {
			return nil, err
		}

		if d.refine {
			// Counting the boundaries 0 and len(data) as changes, at
			// least one gap must hold more than one observation.
			if len(changes) < len(data)-3 && len(changes) >= prevCount {
				shift = true
			}
			if shift {
				changes, err = Refine(data, changes, d.lambda)
				if err != nil {
					return nil, err
				}
			}
		}
		prevCount = len(changes)

		result.Changes = changes
		result.Iterations = iter + 1
		if len(changes) == 0 || seen(history, changes) {
			break
		}
		history = append(history, changes)

		for i := range penalties {
			penalties[i] = d.lambda * factors[i] / jitterLow
		}
		for _, c := range changes {
			penalties[c-1] = d.lambda
		}
	}

	return result, nil
}

func seen(history [][]int, changes []int) bool {
	for _, old := range history {
		if slices.Equal(old, changes) {
			return true
		}
	}
	return false
}
