package sim

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Gogonemnem/FDA/domain/basis"
	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/domain/scenario"
)

func TestNewNoiseGenerator_Rejects(t *testing.T) {
	src := rand.NewPCG(1, 0)
	if _, err := NewNoiseGenerator(scenario.NoiseNormal, 0, src); err == nil {
		t.Error("Zero sigma should be rejected")
	}
	if _, err := NewNoiseGenerator("laplace", 0.1, src); err == nil {
		t.Error("Unknown noise family should be rejected")
	}
}

func TestNoiseGenerator_NormalScale(t *testing.T) {
	g, err := NewNoiseGenerator(scenario.NoiseNormal, 0.5, rand.NewPCG(5, 0))
	if err != nil {
		t.Fatalf("NewNoiseGenerator failed: %v", err)
	}

	const n = 20000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := g.Draw()
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	sd := math.Sqrt(sumSq/n - mean*mean)

	if math.Abs(mean) > 0.02 {
		t.Errorf("Noise mean = %f, want ≈ 0", mean)
	}
	if math.Abs(sd-0.5) > 0.02 {
		t.Errorf("Noise standard deviation = %f, want ≈ 0.5", sd)
	}
}

func TestNoiseGenerator_StudentTHeavierTails(t *testing.T) {
	const n = 20000
	normal, _ := NewNoiseGenerator(scenario.NoiseNormal, 0.5, rand.NewPCG(6, 0))
	studentT, _ := NewNoiseGenerator(scenario.NoiseStudentT, 0.5, rand.NewPCG(6, 1))

	exceed := func(g *NoiseGenerator) int {
		count := 0
		for i := 0; i < n; i++ {
			if math.Abs(g.Draw()) > 1.5 {
				count++
			}
		}
		return count
	}

	if exceed(studentT) <= exceed(normal) {
		t.Error("Student-t noise should exceed 3σ more often than normal noise")
	}
}

func TestSynthesizer_LatentReducesToMeanWithZeroScores(t *testing.T) {
	b, _ := basis.New(6)
	mean := curve.SinusoidalMean{Amplitude: 2, Frequency: 1, Phase: 0.3}
	s := NewSynthesizer(b, mean)

	lc, err := s.Latent(make([]float64, 6))
	if err != nil {
		t.Fatalf("Latent failed: %v", err)
	}

	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := lc.Evaluate(tt), mean.Evaluate(tt); math.Abs(got-want) > 1e-12 {
			t.Errorf("Latent(%f) = %f, want mean %f", tt, got, want)
		}
	}
}

func TestSynthesizer_LatentRejectsWrongScoreLength(t *testing.T) {
	b, _ := basis.New(6)
	s := NewSynthesizer(b, curve.ZeroMean{})

	if _, err := s.Latent(make([]float64, 5)); err == nil {
		t.Error("Score vector of wrong length should be rejected")
	}
}

func TestSynthesizer_LatentIsLinearInScores(t *testing.T) {
	b, _ := basis.New(3)
	s := NewSynthesizer(b, curve.ZeroMean{})

	scores := []float64{0.7, -0.2, 0.05}
	lc, err := s.Latent(scores)
	if err != nil {
		t.Fatalf("Latent failed: %v", err)
	}

	for _, tt := range []float64{0.1, 0.5, 0.9} {
		want := 0.0
		for j, sc := range scores {
			want += sc * b.Pairs[j].Evaluate(tt)
		}
		if got := lc.Evaluate(tt); math.Abs(got-want) > 1e-12 {
			t.Errorf("Latent(%f) = %f, want %f", tt, got, want)
		}
	}
}

func TestObservationFunc_FreshNoisePerEvaluation(t *testing.T) {
	b, _ := basis.New(2)
	s := NewSynthesizer(b, curve.ZeroMean{})
	lc, _ := s.Latent([]float64{0, 0})

	noise, _ := NewNoiseGenerator(scenario.NoiseNormal, 1, rand.NewPCG(9, 0))
	obs := &ObservationFunc{Curve: lc, Noise: noise}

	// Noise is drawn per evaluation, so repeated queries at the same time
	// almost surely disagree.
	a := obs.Evaluate(0.5)
	bv := obs.Evaluate(0.5)
	if a == bv {
		t.Error("Repeated observation evaluations should draw fresh noise")
	}
}

func TestSynthesizer_ObserveMatchesDesign(t *testing.T) {
	b, _ := basis.New(4)
	s := NewSynthesizer(b, curve.ZeroMean{})
	lc, _ := s.Latent([]float64{0.3, -0.1, 0.05, 0.01})

	noise, _ := NewNoiseGenerator(scenario.NoiseNormal, 0.01, rand.NewPCG(10, 0))
	points := curve.DesignPoints{0.1, 0.4, 0.8}
	obs := s.Observe(lc, points, noise)

	if len(obs.Values) != len(points) {
		t.Fatalf("Expected %d observed values, got %d", len(points), len(obs.Values))
	}
	for i, tt := range points {
		if math.Abs(obs.Values[i]-lc.Evaluate(tt)) > 0.1 {
			t.Errorf("Observed value at %f too far from latent curve", tt)
		}
	}
}

func TestMeanFor(t *testing.T) {
	sin := scenario.Sinusoid{Amplitude: 1, Frequency: 2, Phase: 0}

	m, err := MeanFor(scenario.MeanZero, sin)
	if err != nil || m.Evaluate(0.3) != 0 {
		t.Errorf("Zero mean should evaluate to 0 everywhere")
	}

	m, err = MeanFor(scenario.MeanSinusoidal, sin)
	if err != nil {
		t.Fatalf("MeanFor(sinusoidal) failed: %v", err)
	}
	if m.Evaluate(0) != 0 {
		t.Errorf("Sinusoid with zero phase should vanish at t=0")
	}

	if _, err := MeanFor("quadratic", sin); err == nil {
		t.Error("Unknown mean model should be rejected")
	}
}
