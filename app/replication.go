// Package app orchestrates scenarios: it fans R independent replications of
// the simulation pipeline out over a bounded worker pool and aggregates the
// resulting test statistics into coverage tables.
package app

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/Gogonemnem/FDA/adapters/estimator"
	"github.com/Gogonemnem/FDA/adapters/sim"
	"github.com/Gogonemnem/FDA/adapters/stats"
	"github.com/Gogonemnem/FDA/domain/basis"
	"github.com/Gogonemnem/FDA/domain/curve"
	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal"
	"github.com/Gogonemnem/FDA/internal/errors"
	"github.com/Gogonemnem/FDA/ports"
)

// ReplicationDriver runs the R replications of one estimator × mean
// combination. Replications share only read-only state (config, basis,
// null quantiles); each owns its private random stream, so execution order
// cannot affect results.
//
// Failure policy: skip-and-continue. A replication that hits an empty
// design or singular smoothing is recorded as failed and excluded from the
// coverage denominator; any other error aborts the combination.
type ReplicationDriver struct {
	cfg    scenario.Config
	basis  *basis.Basis
	engine *stats.Engine
	rng    ports.StreamProvider
	sem    *semaphore.Weighted
	log    *internal.Logger
}

// NewReplicationDriver creates a driver sharing the given worker capacity.
func NewReplicationDriver(cfg scenario.Config, b *basis.Basis, rng ports.StreamProvider, sem *semaphore.Weighted, log *internal.Logger) *ReplicationDriver {
	return &ReplicationDriver{
		cfg:    cfg,
		basis:  b,
		engine: stats.NewEngine(),
		rng:    rng,
		sem:    sem,
		log:    log,
	}
}

// Run executes all replications of one combination and scores the collected
// statistics against the precomputed null quantiles.
func (d *ReplicationDriver) Run(ctx context.Context, comb scenario.Combination, levels, nullQuantiles []float64) (scenario.CombinationResult, error) {
	result := scenario.CombinationResult{Combination: comb}

	est, err := estimator.ForKind(comb.Estimator, d.cfg.Bandwidth)
	if err != nil {
		return result, err
	}
	mean, err := sim.MeanFor(comb.Mean, d.cfg.Sinusoid)
	if err != nil {
		return result, err
	}
	design, err := sim.NewDesignSampler(d.cfg.Design, d.cfg.DesignCount)
	if err != nil {
		return result, err
	}
	scores, err := sim.NewScoreSampler(d.basis.Eigenvalues())
	if err != nil {
		return result, err
	}

	synth := sim.NewSynthesizer(d.basis, mean)
	evalTimes := stats.EvalGrid(d.cfg.EvalPoints)
	label := d.cfg.Name + "/" + comb.Label()

	values := make([]float64, d.cfg.Replications)
	failures := make([]error, d.cfg.Replications)

	var wg sync.WaitGroup
	for r := 0; r < d.cfg.Replications; r++ {
		if err := d.sem.Acquire(ctx, 1); err != nil {
			failures[r] = err
			break
		}
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			defer d.sem.Release(1)
			values[r], failures[r] = d.replicate(label, r, est, mean, design, scores, synth, evalTimes)
		}(r)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return result, errors.Wrap(err, "combination "+comb.Label()+" cancelled")
	}

	for r, repErr := range failures {
		switch {
		case repErr == nil:
			result.Statistics = append(result.Statistics, values[r])
		case errors.IsReplicationFailure(repErr):
			result.Failed++
			d.log.Debug("replication %d of %s skipped: %v", r, label, repErr)
		default:
			return result, errors.Wrapf(repErr, "replication %d of %s", r, label)
		}
	}

	if result.Failed > 0 {
		d.log.Warn("%s completed with %d of %d replications excluded",
			label, result.Failed, d.cfg.Replications)
	}
	if len(result.Statistics) == 0 {
		return result, errors.InternalError("all replications of " + label + " failed")
	}

	coverage := stats.Coverage(result.Statistics, nullQuantiles)
	result.Coverage = make([]scenario.CoveragePoint, len(levels))
	for i := range levels {
		result.Coverage[i] = scenario.CoveragePoint{
			Level:    levels[i],
			Quantile: nullQuantiles[i],
			Coverage: coverage[i],
		}
	}

	result.Summary, err = stats.Summarize(result.Statistics)
	if err != nil {
		return result, err
	}
	return result, nil
}

// replicate runs one full pipeline pass: scores → curves → designs →
// observations → reconstruction → test statistic.
func (d *ReplicationDriver) replicate(
	label string,
	rep int,
	est ports.CurveEstimator,
	mean curve.MeanFunc,
	design *sim.DesignSampler,
	scores *sim.ScoreSampler,
	synth *sim.Synthesizer,
	evalTimes []float64,
) (float64, error) {
	src := d.rng.Stream(label, uint64(rep))

	noise, err := sim.NewNoiseGenerator(d.cfg.Noise, d.cfg.Sigma, src)
	if err != nil {
		return 0, err
	}

	scoreVectors := scores.Sample(d.cfg.Samples, src)
	fns := make([]curve.ReconstructedFunction, 0, d.cfg.Samples)
	for i := 0; i < d.cfg.Samples; i++ {
		lc, err := synth.Latent(scoreVectors[i])
		if err != nil {
			return 0, err
		}
		points := design.Sample(src)
		obs := synth.Observe(lc, points, noise)

		fn, err := est.Reconstruct(obs)
		if err != nil {
			return 0, err
		}
		fns = append(fns, fn)
	}

	empirical, err := d.engine.EmpiricalMean(fns)
	if err != nil {
		return 0, err
	}
	return d.engine.TestStatistic(d.cfg.Samples, evalTimes, empirical, mean)
}
