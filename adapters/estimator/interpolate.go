// Package estimator reconstructs continuous functions on [0,1] from
// irregular noisy observations. Two variants are provided: piecewise-linear
// interpolation and Nadaraya-Watson kernel smoothing.
package estimator

import (
	"sort"

	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// Interpolating reconstructs a curve by piecewise-linear interpolation
// through the observed points, clamped to the boundary values outside the
// design span.
type Interpolating struct{}

// NewInterpolating creates the interpolating estimator.
func NewInterpolating() Interpolating {
	return Interpolating{}
}

func (Interpolating) Name() string {
	return string(scenario.EstimatorInterpolating)
}

// Reconstruct builds the interpolant. Fails with EmptyDesignError on an
// empty design.
func (Interpolating) Reconstruct(obs curve.NoisyObservation) (curve.ReconstructedFunction, error) {
	if len(obs.Points) == 0 {
		return nil, errors.EmptyDesign("cannot interpolate an empty design")
	}
	if len(obs.Points) != len(obs.Values) {
		return nil, errors.InvalidInput("design points and values must have equal length")
	}

	ts := make([]float64, len(obs.Points))
	ys := make([]float64, len(obs.Values))
	copy(ts, obs.Points)
	copy(ys, obs.Values)

	return &linearInterpolant{ts: ts, ys: ys}, nil
}

// linearInterpolant holds one fitted curve; ts is sorted ascending.
type linearInterpolant struct {
	ts []float64
	ys []float64
}

// Evaluate interpolates linearly between the bracketing design points and
// constant-extends beyond the first and last point. Never fails.
func (f *linearInterpolant) Evaluate(t float64) (float64, error) {
	n := len(f.ts)
	if t <= f.ts[0] {
		return f.ys[0], nil
	}
	if t >= f.ts[n-1] {
		return f.ys[n-1], nil
	}

	// First index with ts[i] >= t; the bracket is [i-1, i].
	i := sort.SearchFloat64s(f.ts, t)
	if t == f.ts[i] {
		// Exact hit on a design point. Returning the observed value
		// directly keeps the round-trip bitwise exact; the blended form
		// below can be off by an ulp. This also covers coincident design
		// points, so the bracket width is always positive past here.
		return f.ys[i], nil
	}
	w := (t - f.ts[i-1]) / (f.ts[i] - f.ts[i-1])
	return f.ys[i-1] + w*(f.ys[i]-f.ys[i-1]), nil
}
