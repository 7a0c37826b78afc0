package changepoint

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestRefineMovesAndMerges(t *testing.T) {
	data := []float64{0.1, -0.2, 0.3, -0.1, 0.2, 5.2, 4.9, 5.1, 4.8, 5.3}

	for _, tc := range []struct {
		changes []int
		want    []int
	}{
		{[]int{3}, []int{5}},
		{[]int{5}, []int{5}},
		{[]int{7}, []int{5}},
		{[]int{2, 5, 7}, []int{5}},
		{[]int{}, []int{}},
	} {
		got, err := Refine(data, tc.changes, 1)
		if err != nil {
			t.Fatalf("Refine(%v) failed: %s", tc.changes, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Refine(%v) = %v, expected %v", tc.changes, got, tc.want)
		}
	}
}

func TestRefineDoesNotModifyInput(t *testing.T) {
	data := []float64{0.1, -0.2, 0.3, -0.1, 0.2, 5.2, 4.9, 5.1, 4.8, 5.3}
	changes := []int{2, 5, 7}

	if _, err := Refine(data, changes, 1); err != nil {
		t.Fatalf("Refine failed: %s", err)
	}
	if !reflect.DeepEqual(changes, []int{2, 5, 7}) {
		t.Errorf("Refine must not modify its input, got %v", changes)
	}
}

func TestRefineOnNoisyShift(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		data := levelShifts(seed, 200, []int{0, 100}, []float64{0, 4})

		for _, changes := range [][]int{{90}, {130}, {50, 100}} {
			got, err := Refine(data, changes, 20)
			if err != nil {
				t.Fatalf("Refine failed: %s", err)
			}
			if len(got) != 1 || math.Abs(float64(got[0]-100)) > 5 {
				t.Errorf("seed %d: Refine(%v) = %v, expected one change near 100", seed, changes, got)
			}
		}
	}
}

func TestRefineRejectsBadInput(t *testing.T) {
	data := make([]float64, 10)

	for _, changes := range [][]int{{0}, {10}, {5, 5}, {6, 4}, {-1, 3}} {
		_, err := Refine(data, changes, 1)
		if !errors.Is(err, ErrInvalidChanges) {
			t.Errorf("Expected ErrInvalidChanges for %v, got %v", changes, err)
		}
	}

	for _, penalty := range []float64{math.NaN(), math.Inf(1)} {
		if _, err := Refine(data, []int{5}, penalty); err == nil {
			t.Errorf("Refine should reject penalty %v", penalty)
		}
	}
}
