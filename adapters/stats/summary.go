package stats

import (
	"github.com/montanaflynn/stats"

	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// Summarize describes the distribution of test statistics across the
// completed replications of one combination.
func Summarize(values []float64) (scenario.SummaryStats, error) {
	if len(values) == 0 {
		return scenario.SummaryStats{}, errors.InvalidInput("cannot summarize zero statistics")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return scenario.SummaryStats{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return scenario.SummaryStats{}, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return scenario.SummaryStats{}, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return scenario.SummaryStats{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return scenario.SummaryStats{}, err
	}

	return scenario.SummaryStats{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}, nil
}
