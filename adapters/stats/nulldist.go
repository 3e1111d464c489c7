package stats

import (
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Gogonemnem/FDA/internal/errors"
)

// NullRealization draws one sample of Σ_j λ_j·χ²₁ with independent
// one-degree chi-squared draws per eigenvalue — a single realization of the
// limiting null distribution of the test statistic.
func (e *Engine) NullRealization(eigenvalues []float64, src rand.Source) float64 {
	chi := distuv.ChiSquared{K: 1, Src: src}
	var sum float64
	for _, ev := range eigenvalues {
		sum += ev * chi.Rand()
	}
	return sum
}

// NullQuantiles estimates the theoretical null quantiles at the requested
// probability levels from mcSamples independent realizations. Quantiles use
// linear interpolation between order statistics (gonum's LinInterp), so the
// output is monotone nondecreasing in the level.
func (e *Engine) NullQuantiles(mcSamples int, eigenvalues []float64, levels []float64, src rand.Source) ([]float64, error) {
	if mcSamples <= 0 {
		return nil, errors.InvalidInput("MC sample count must be positive")
	}
	if len(eigenvalues) == 0 {
		return nil, errors.InvalidInput("eigenvalue vector must be nonempty")
	}
	for _, p := range levels {
		if p < 0 || p > 1 {
			return nil, errors.InvalidInput("probability levels must be in [0,1]")
		}
	}

	draws := make([]float64, mcSamples)
	for i := range draws {
		draws[i] = e.NullRealization(eigenvalues, src)
	}
	slices.Sort(draws)

	quantiles := make([]float64, len(levels))
	for i, p := range levels {
		quantiles[i] = stat.Quantile(p, stat.LinInterp, draws, nil)
	}
	return quantiles, nil
}

// Coverage computes, for each quantile, the fraction of statistics at or
// below it.
func Coverage(statistics []float64, quantiles []float64) []float64 {
	coverage := make([]float64, len(quantiles))
	if len(statistics) == 0 {
		return coverage
	}
	for i, q := range quantiles {
		count := 0
		for _, s := range statistics {
			if s <= q {
				count++
			}
		}
		coverage[i] = float64(count) / float64(len(statistics))
	}
	return coverage
}
