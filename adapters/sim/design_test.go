package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/Gogonemnem/FDA/domain/scenario"
)

func TestNewDesignSampler_Rejects(t *testing.T) {
	if _, err := NewDesignSampler(scenario.DesignFixed, 0); err == nil {
		t.Error("Zero design count should be rejected")
	}
	if _, err := NewDesignSampler("weird", 5); err == nil {
		t.Error("Unknown policy should be rejected")
	}
}

func TestDesignSampler_FixedCountSortedInRange(t *testing.T) {
	s, err := NewDesignSampler(scenario.DesignFixed, 5)
	if err != nil {
		t.Fatalf("NewDesignSampler failed: %v", err)
	}

	for rep := 0; rep < 50; rep++ {
		points := s.Sample(rand.NewPCG(1, uint64(rep)))
		if len(points) != 5 {
			t.Fatalf("Fixed sampler should return exactly 5 points, got %d", len(points))
		}
		for i, p := range points {
			if p < 0 || p > 1 {
				t.Errorf("Point %f outside [0,1]", p)
			}
			if i > 0 && p < points[i-1] {
				t.Errorf("Points should be sorted ascending")
			}
		}
	}
}

func TestDesignSampler_PinnedDraw(t *testing.T) {
	// Golden values for PCG(7, 13): the sorted first five uniform draws.
	// A silent change of the generator algorithm or of the draw order
	// shows up here even though the reproducibility test still passes.
	want := []float64{
		0.1281781961154238,
		0.2704579900173548,
		0.29458704257205626,
		0.9546442490728976,
		0.9670782431354602,
	}

	s, err := NewDesignSampler(scenario.DesignFixed, 5)
	if err != nil {
		t.Fatalf("NewDesignSampler failed: %v", err)
	}

	points := s.Sample(rand.NewPCG(7, 13))
	if len(points) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("Point %d = %v, want exactly %v", i, points[i], want[i])
		}
	}
}

func TestDesignSampler_FixedSeedReproducible(t *testing.T) {
	s, err := NewDesignSampler(scenario.DesignFixed, 5)
	if err != nil {
		t.Fatalf("NewDesignSampler failed: %v", err)
	}

	a := s.Sample(rand.NewPCG(7, 13))
	b := s.Sample(rand.NewPCG(7, 13))

	if len(a) != len(b) {
		t.Fatalf("Reproduced draws differ in length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed should reproduce the design exactly, diverged at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestDesignSampler_PoissonCountVaries(t *testing.T) {
	s, err := NewDesignSampler(scenario.DesignPoisson, 10)
	if err != nil {
		t.Fatalf("NewDesignSampler failed: %v", err)
	}

	counts := make(map[int]bool)
	total := 0
	for rep := 0; rep < 200; rep++ {
		points := s.Sample(rand.NewPCG(2, uint64(rep)))
		counts[len(points)] = true
		total += len(points)
		for i, p := range points {
			if p < 0 || p > 1 {
				t.Errorf("Point %f outside [0,1]", p)
			}
			if i > 0 && p < points[i-1] {
				t.Errorf("Points should be sorted ascending")
			}
		}
	}

	if len(counts) < 3 {
		t.Errorf("Poisson counts should vary, saw only %d distinct counts", len(counts))
	}

	// Mean count should sit near λ = 10.
	mean := float64(total) / 200
	if mean < 8 || mean > 12 {
		t.Errorf("Mean Poisson count %f too far from λ=10", mean)
	}
}

func TestDesignSampler_PoissonCanYieldEmptyDesign(t *testing.T) {
	// With λ = 1 roughly 37% of draws are empty; 200 draws make a miss
	// essentially impossible.
	s, err := NewDesignSampler(scenario.DesignPoisson, 1)
	if err != nil {
		t.Fatalf("NewDesignSampler failed: %v", err)
	}

	sawEmpty := false
	for rep := 0; rep < 200; rep++ {
		if len(s.Sample(rand.NewPCG(3, uint64(rep)))) == 0 {
			sawEmpty = true
			break
		}
	}
	if !sawEmpty {
		t.Error("Poisson(1) sampler should produce an empty design within 200 draws")
	}
}
