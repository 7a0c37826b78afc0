package changepoint

import "testing"

func TestDefaults(t *testing.T) {
	detector, err := NewDetector(32)

	if err != nil {
		t.Errorf("Creating a default Detector should never error out. Got %s", err)
	}

	if detector.maxIterations != 100 {
		t.Errorf("The default iteration limit should be 100")
	}

	if !detector.refine {
		t.Errorf("Refinement should be enabled by default")
	}

	if detector.Lambda() != 32 {
		t.Errorf("Expected lambda 32, got %f", detector.Lambda())
	}
}

func TestDetectorOptions(t *testing.T) {
	detector, _ := NewDetector(32, MaxIterations(3), WithoutRefinement(), PenaltyOptions(Seed(4), LambdaMin(0)))

	if detector.maxIterations != 3 {
		t.Errorf("The MaxIterations option should change the iteration limit")
	}
	if detector.refine {
		t.Errorf("WithoutRefinement should disable refinement")
	}
	if len(detector.penaltyOptions) != 2 {
		t.Errorf("Expected two penalty options, got %d", len(detector.penaltyOptions))
	}

	detector, err := NewDetector(0)
	if err == nil || detector != nil {
		t.Errorf("Trying to create a detector with a zero lambda should give an error")
	}
}

func TestSearchOptions(t *testing.T) {
	s := &searcher{prune: true}
	var stats SearchStats

	WithoutPruning()(s)
	WithStats(&stats)(s)

	if s.prune || s.stats != &stats {
		t.Errorf("Search options were not applied: %+v", s)
	}
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	f()
}

func TestOptionPanics(t *testing.T) {
	assertPanics(t, "MaxIterations(0)", func() { MaxIterations(0) })
	assertPanics(t, "LambdaMin(-1)", func() { LambdaMin(-1) })
}
