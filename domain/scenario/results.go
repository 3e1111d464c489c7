package scenario

import (
	"time"

	"github.com/google/uuid"
)

// RunID identifies one scenario run.
type RunID string

// NewRunID creates a time-ordered run identifier.
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RunID(id.String())
}

func (id RunID) String() string { return string(id) }

// CoveragePoint maps one probability level to the theoretical null quantile
// and the empirical coverage observed across replications.
type CoveragePoint struct {
	Level    float64
	Quantile float64
	Coverage float64
}

// SummaryStats describes the distribution of test statistics across the
// completed replications of one combination.
type SummaryStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// CombinationResult is the outcome of R replications for one estimator ×
// reference-mean cell. Failed counts replications excluded by recoverable
// errors (empty design, singular smoothing); Completed + Failed equals the
// configured replication count.
type CombinationResult struct {
	Combination Combination
	Statistics  []float64 // test statistic per completed replication
	Failed      int
	Coverage    []CoveragePoint
	Summary     SummaryStats
}

// Completed returns the number of replications that produced a statistic.
func (r CombinationResult) Completed() int {
	return len(r.Statistics)
}

// Result is the full output of one scenario: one coverage table per
// combination plus the shared null quantile table it was scored against.
type Result struct {
	RunID         RunID
	Config        Config
	NullQuantiles []float64 // aligned with ProbabilityLevels()
	Combinations  []CombinationResult
	Elapsed       time.Duration
}

// TableRow is one line of the flat output table consumed by external
// plotting and reporting collaborators.
type TableRow struct {
	Scenario    string
	Combination string
	Level       float64
	Quantile    float64
	Coverage    float64
}

// Table flattens the result into (scenario, combination, level, quantile,
// coverage) rows.
func (r *Result) Table() []TableRow {
	var rows []TableRow
	for _, comb := range r.Combinations {
		for _, pt := range comb.Coverage {
			rows = append(rows, TableRow{
				Scenario:    r.Config.Name,
				Combination: comb.Combination.Label(),
				Level:       pt.Level,
				Quantile:    pt.Quantile,
				Coverage:    pt.Coverage,
			})
		}
	}
	return rows
}
