// Package sim generates synthetic functional data: per-curve design points,
// Karhunen-Loève scores, latent curves, and noisy observations.
package sim

import (
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// DesignSampler draws per-curve observation time grids: uniform points on
// [0,1], with either a fixed count K or a Poisson(K) count.
type DesignSampler struct {
	policy scenario.DesignPolicy
	count  int
}

// NewDesignSampler creates a sampler for the given policy and target count.
func NewDesignSampler(policy scenario.DesignPolicy, count int) (*DesignSampler, error) {
	if count <= 0 {
		return nil, errors.InvalidInput("design count must be positive")
	}
	switch policy {
	case scenario.DesignFixed, scenario.DesignPoisson:
	default:
		return nil, errors.InvalidInput("unknown design policy " + string(policy))
	}
	return &DesignSampler{policy: policy, count: count}, nil
}

// Sample draws one sorted design. Under the Poisson policy the count is
// unbounded above and may be zero; an empty design is returned as-is and
// surfaces as EmptyDesignError in the estimator that consumes it.
func (s *DesignSampler) Sample(src rand.Source) curve.DesignPoints {
	n := s.count
	if s.policy == scenario.DesignPoisson {
		n = int(distuv.Poisson{Lambda: float64(s.count), Src: src}.Rand())
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	points := make(curve.DesignPoints, n)
	for i := range points {
		points[i] = uniform.Rand()
	}
	slices.Sort(points)
	return points
}
