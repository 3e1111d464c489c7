package estimator

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
	"github.com/Gogonemnem/FDA/ports"
)

// Kernel is a density used to weight observations by scaled distance.
type Kernel interface {
	Weight(u float64) float64
}

// GaussianKernel weights by the standard normal density.
type GaussianKernel struct{}

func (GaussianKernel) Weight(u float64) float64 {
	return distuv.UnitNormal.Prob(u)
}

// DefaultBandwidth is the standard-configuration smoothing bandwidth.
const DefaultBandwidth = 0.1

// KernelSmoothing reconstructs a curve with the Nadaraya-Watson estimator:
// at query time t, a kernel-weighted average of the observed values.
type KernelSmoothing struct {
	Bandwidth float64
	Kernel    Kernel
}

// NewKernelSmoothing creates the smoothing estimator. Rejects non-positive
// bandwidths; a nil kernel defaults to Gaussian.
func NewKernelSmoothing(bandwidth float64, kernel Kernel) (*KernelSmoothing, error) {
	if bandwidth <= 0 {
		return nil, errors.InvalidInput("bandwidth must be positive")
	}
	if kernel == nil {
		kernel = GaussianKernel{}
	}
	return &KernelSmoothing{Bandwidth: bandwidth, Kernel: kernel}, nil
}

func (*KernelSmoothing) Name() string {
	return string(scenario.EstimatorKernel)
}

// Reconstruct builds the smoother. Fails with EmptyDesignError on an empty
// design; weight degeneracy surfaces later, at evaluation time.
func (e *KernelSmoothing) Reconstruct(obs curve.NoisyObservation) (curve.ReconstructedFunction, error) {
	if len(obs.Points) == 0 {
		return nil, errors.EmptyDesign("cannot smooth an empty design")
	}
	if len(obs.Points) != len(obs.Values) {
		return nil, errors.InvalidInput("design points and values must have equal length")
	}

	ts := make([]float64, len(obs.Points))
	ys := make([]float64, len(obs.Values))
	copy(ts, obs.Points)
	copy(ys, obs.Values)

	return &nadarayaWatson{ts: ts, ys: ys, bandwidth: e.Bandwidth, kernel: e.Kernel}, nil
}

type nadarayaWatson struct {
	ts        []float64
	ys        []float64
	bandwidth float64
	kernel    Kernel
}

// Evaluate computes Σ w_i·y_i / Σ w_i with w_i = K((t − t_i)/h). When every
// weight underflows to zero the estimate is undefined and the call fails
// with SingularSmoothingError rather than coercing to zero.
func (f *nadarayaWatson) Evaluate(t float64) (float64, error) {
	var num, den float64
	for i, ti := range f.ts {
		w := f.kernel.Weight((t - ti) / f.bandwidth)
		num += w * f.ys[i]
		den += w
	}
	if den == 0 {
		return 0, errors.SingularSmoothing(
			fmt.Sprintf("all kernel weights vanished at t=%g with bandwidth %g", t, f.bandwidth))
	}
	return num / den, nil
}

// ForKind resolves an estimator kind to its implementation.
func ForKind(kind scenario.EstimatorKind, bandwidth float64) (ports.CurveEstimator, error) {
	switch kind {
	case scenario.EstimatorInterpolating:
		return NewInterpolating(), nil
	case scenario.EstimatorKernel:
		return NewKernelSmoothing(bandwidth, GaussianKernel{})
	default:
		return nil, errors.InvalidInput("unknown estimator kind " + string(kind))
	}
}
