package changepoint

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

type fixedRNG float64

func (r fixedRNG) Float64Range(a, b float64) float64 {
	return a + float64(r)*(b-a)
}

func TestUniformPenalties(t *testing.T) {
	penalties := UniformPenalties(5, 2.5)

	if !floats.Equal(penalties, []float64{2.5, 2.5, 2.5, 2.5}) {
		t.Errorf("Expected four penalties of 2.5, got %v", penalties)
	}

	if len(UniformPenalties(1, 2.5)) != 0 || len(UniformPenalties(0, 2.5)) != 0 {
		t.Errorf("Fewer than two observations leave no place for a change")
	}
}

func TestRandomizedPenaltiesRange(t *testing.T) {
	penalties, err := RandomizedPenalties(1000, 32)
	if err != nil {
		t.Fatalf("RandomizedPenalties failed: %s", err)
	}

	if len(penalties) != 999 {
		t.Fatalf("Expected 999 penalties, got %d", len(penalties))
	}

	for i, p := range penalties {
		if p < 0.9*32 || p >= 32 {
			t.Fatalf("Penalty %d = %f is outside [28.8, 32)", i, p)
		}
	}

	if floats.Min(penalties) == floats.Max(penalties) {
		t.Errorf("Penalties should be jittered")
	}
}

func TestRandomizedPenaltiesSeed(t *testing.T) {
	a, _ := RandomizedPenalties(100, 16, Seed(1))
	b, _ := RandomizedPenalties(100, 16, Seed(1))
	c, _ := RandomizedPenalties(100, 16, Seed(2))
	d, _ := RandomizedPenalties(100, 16)
	e, _ := RandomizedPenalties(100, 16, Seed(0))

	if !floats.Equal(a, b) {
		t.Errorf("The same seed should give the same penalties")
	}
	if floats.Equal(a, c) {
		t.Errorf("Different seeds should give different penalties")
	}
	if !floats.Equal(d, e) {
		t.Errorf("The default seed should be 0")
	}
}

func TestLambdaMinFloor(t *testing.T) {
	// factor 0.95 everywhere
	rng := fixedRNG(0.5)

	penalties, err := RandomizedPenalties(4, 2, RandomSource(rng))
	if err != nil {
		t.Fatalf("RandomizedPenalties failed: %s", err)
	}
	// 2*0.95 is below 0.9*8, so the floor 8*0.95 applies
	if !floats.EqualApprox(penalties, []float64{7.6, 7.6, 7.6}, 1e-12) {
		t.Errorf("Expected the default floor to apply, got %v", penalties)
	}

	penalties, _ = RandomizedPenalties(4, 2, RandomSource(rng), LambdaMin(0))
	if !floats.EqualApprox(penalties, []float64{1.9, 1.9, 1.9}, 1e-12) {
		t.Errorf("LambdaMin(0) should disable the floor, got %v", penalties)
	}

	penalties, _ = RandomizedPenalties(4, 10, RandomSource(rng), LambdaMin(8))
	if !floats.EqualApprox(penalties, []float64{9.5, 9.5, 9.5}, 1e-12) {
		t.Errorf("Penalties above the floor should be left alone, got %v", penalties)
	}
}

func TestRandomizedPenaltiesErrors(t *testing.T) {
	if _, err := RandomizedPenalties(0, 1); err == nil {
		t.Errorf("Expected an error without observations")
	}
	if _, err := RandomizedPenalties(10, 0); err == nil {
		t.Errorf("Expected an error for a zero lambda")
	}
	if _, err := RandomizedPenalties(10, -3); err == nil {
		t.Errorf("Expected an error for a negative lambda")
	}
}
