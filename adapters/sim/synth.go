package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Gogonemnem/FDA/domain/basis"
	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// NoiseGenerator draws iid observation noise from the configured family:
// N(0, σ²) or Student-t with ν = 8 scaled by σ.
type NoiseGenerator struct {
	dist distuv.Rander
}

// NewNoiseGenerator creates a generator for the given family and scale.
func NewNoiseGenerator(family scenario.NoiseFamily, sigma float64, src rand.Source) (*NoiseGenerator, error) {
	if sigma <= 0 {
		return nil, errors.InvalidInput("noise sigma must be positive")
	}
	switch family {
	case scenario.NoiseNormal:
		return &NoiseGenerator{dist: distuv.Normal{Mu: 0, Sigma: sigma, Src: src}}, nil
	case scenario.NoiseStudentT:
		return &NoiseGenerator{dist: distuv.StudentsT{Mu: 0, Sigma: sigma, Nu: scenario.StudentTDF, Src: src}}, nil
	default:
		return nil, errors.InvalidInput("unknown noise family " + string(family))
	}
}

// Draw returns one fresh independent noise value.
func (g *NoiseGenerator) Draw() float64 {
	return g.dist.Rand()
}

// ObservationFunc is the noisy view of a latent curve. Every evaluation
// draws fresh independent noise; values are not cached, so a design point
// is sampled exactly once at observation time and never resampled by the
// estimator.
type ObservationFunc struct {
	Curve *curve.LatentCurve
	Noise *NoiseGenerator
}

// Evaluate returns curve(t) plus a fresh noise draw.
func (f *ObservationFunc) Evaluate(t float64) float64 {
	return f.Curve.Evaluate(t) + f.Noise.Draw()
}

// Synthesizer composes mean function, scores, and eigenfunctions into
// latent curves and noisy observations.
type Synthesizer struct {
	basis *basis.Basis
	mean  curve.MeanFunc
}

// NewSynthesizer creates a synthesizer over the given basis and mean.
func NewSynthesizer(b *basis.Basis, mean curve.MeanFunc) *Synthesizer {
	return &Synthesizer{basis: b, mean: mean}
}

// Latent builds the curve mean(t) + Σ_j score_j·eigenfunction_j(t).
func (s *Synthesizer) Latent(scores []float64) (*curve.LatentCurve, error) {
	if len(scores) != s.basis.Size() {
		return nil, errors.InvalidInput("score vector length must match basis size")
	}
	return &curve.LatentCurve{Mean: s.mean, Scores: scores, Basis: s.basis}, nil
}

// Observe samples the latent curve at each design point with fresh noise.
func (s *Synthesizer) Observe(lc *curve.LatentCurve, points curve.DesignPoints, noise *NoiseGenerator) curve.NoisyObservation {
	obs := &ObservationFunc{Curve: lc, Noise: noise}
	values := make([]float64, len(points))
	for i, t := range points {
		values[i] = obs.Evaluate(t)
	}
	return curve.NoisyObservation{Points: points, Values: values}
}

// MeanFor resolves a mean model to its function.
func MeanFor(model scenario.MeanModel, sin scenario.Sinusoid) (curve.MeanFunc, error) {
	switch model {
	case scenario.MeanZero:
		return curve.ZeroMean{}, nil
	case scenario.MeanSinusoidal:
		return curve.SinusoidalMean{
			Amplitude: sin.Amplitude,
			Frequency: sin.Frequency,
			Phase:     sin.Phase,
		}, nil
	default:
		return nil, errors.InvalidInput("unknown mean model " + string(model))
	}
}
