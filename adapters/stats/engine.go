// Package stats computes the L2-type mean test statistic and its Monte
// Carlo null distribution.
package stats

import (
	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// Engine provides the statistical operations of the pipeline. It is
// stateless; all inputs arrive per call.
type Engine struct{}

// NewEngine creates a statistic engine.
func NewEngine() *Engine {
	return &Engine{}
}

// meanFunction averages N reconstructed curves pointwise. Nothing is
// memoized; every evaluation touches every member.
type meanFunction struct {
	fns []curve.ReconstructedFunction
}

func (m *meanFunction) Evaluate(t float64) (float64, error) {
	var sum float64
	for _, fn := range m.fns {
		v, err := fn.Evaluate(t)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(m.fns)), nil
}

// EmpiricalMean returns the pointwise average of the reconstructed curves.
func (e *Engine) EmpiricalMean(fns []curve.ReconstructedFunction) (curve.ReconstructedFunction, error) {
	if len(fns) == 0 {
		return nil, errors.InvalidInput("empirical mean needs at least one function")
	}
	return &meanFunction{fns: fns}, nil
}

// MonteCarloNorm approximates ∫(ê(t)−μ(t))²dt as the equal-weight average
// of squared deviations over the evaluation nodes. Equal weights are
// intentional: the nodes are either an equispaced grid or uniform draws,
// both of which make the plain average an unbiased integral estimate.
func (e *Engine) MonteCarloNorm(evalTimes []float64, empirical curve.ReconstructedFunction, reference curve.MeanFunc) (float64, error) {
	if len(evalTimes) == 0 {
		return 0, errors.InvalidInput("evaluation times must be nonempty")
	}
	var sum float64
	for _, t := range evalTimes {
		v, err := empirical.Evaluate(t)
		if err != nil {
			return 0, err
		}
		d := v - reference.Evaluate(t)
		sum += d * d
	}
	return sum / float64(len(evalTimes)), nil
}

// TestStatistic is N times the Monte Carlo L2 norm of the deviation of the
// empirical mean from the reference mean. Always nonnegative.
func (e *Engine) TestStatistic(n int, evalTimes []float64, empirical curve.ReconstructedFunction, reference curve.MeanFunc) (float64, error) {
	if n <= 0 {
		return 0, errors.InvalidInput("sample count must be positive")
	}
	norm, err := e.MonteCarloNorm(evalTimes, empirical, reference)
	if err != nil {
		return 0, err
	}
	return float64(n) * norm, nil
}

// EvalGrid returns n equispaced integration nodes spanning [0,1].
func EvalGrid(n int) []float64 {
	if n == 1 {
		return []float64{0.5}
	}
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i) / float64(n-1)
	}
	return grid
}
