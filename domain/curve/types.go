// Package curve defines the value types flowing through the simulation
// pipeline: design points, latent curves, noisy observations, and the
// reconstructed functions produced by estimators.
package curve

import (
	"math"

	"github.com/Gogonemnem/FDA/domain/basis"
)

// DesignPoints is the sorted sequence of observation times for one curve,
// each in [0,1]. May be empty when a Poisson count draw yields zero.
type DesignPoints []float64

// MeanFunc is a deterministic mean function of the underlying process.
type MeanFunc interface {
	Evaluate(t float64) float64
}

// ZeroMean is the null mean function, identically zero.
type ZeroMean struct{}

func (ZeroMean) Evaluate(t float64) float64 { return 0 }

// SinusoidalMean is a nonzero mean Amplitude·sin(2π·Frequency·t + Phase).
type SinusoidalMean struct {
	Amplitude float64
	Frequency float64
	Phase     float64
}

func (m SinusoidalMean) Evaluate(t float64) float64 {
	return m.Amplitude * math.Sin(2*math.Pi*m.Frequency*t+m.Phase)
}

// LatentCurve is one realized sample path of the process:
// mean(t) + Σ_j score_j·eigenfunction_j(t). Immutable after construction.
type LatentCurve struct {
	Mean   MeanFunc
	Scores []float64
	Basis  *basis.Basis
}

// Evaluate computes the latent curve at time t.
func (c *LatentCurve) Evaluate(t float64) float64 {
	v := c.Mean.Evaluate(t)
	for j, score := range c.Scores {
		v += score * c.Basis.Pairs[j].Evaluate(t)
	}
	return v
}

// NoisyObservation holds the pointwise noisy samples of one latent curve at
// its design points. len(Values) == len(Points).
type NoisyObservation struct {
	Points DesignPoints
	Values []float64
}

// ReconstructedFunction is a curve estimate defined on all of [0,1].
// Evaluate may fail where the estimate is undefined (singular smoothing).
type ReconstructedFunction interface {
	Evaluate(t float64) (float64, error)
}
