package ports

import (
	"github.com/Gogonemnem/FDA/domain/curve"
)

// CurveEstimator reconstructs a continuous function on [0,1] from one
// irregular noisy observation. Implementations keep no fitting state across
// calls.
type CurveEstimator interface {
	Name() string
	Reconstruct(obs curve.NoisyObservation) (curve.ReconstructedFunction, error)
}
