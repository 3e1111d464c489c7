package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/Gogonemnem/FDA/adapters/stats"
	"github.com/Gogonemnem/FDA/domain/basis"
	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal"
	"github.com/Gogonemnem/FDA/internal/errors"
	"github.com/Gogonemnem/FDA/ports"
)

// ScenarioRunner drives named scenario configurations through the
// replication driver: four estimator × reference-mean combinations per
// scenario, sharing one precomputed null quantile table and one worker
// budget.
type ScenarioRunner struct {
	rng     ports.StreamProvider
	workers int
	log     *internal.Logger
}

// NewScenarioRunner creates a runner with the given stream provider and
// worker budget.
func NewScenarioRunner(rng ports.StreamProvider, workers int, log *internal.Logger) (*ScenarioRunner, error) {
	if workers <= 0 {
		return nil, errors.ConfigInvalid("worker count must be positive")
	}
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ScenarioRunner{rng: rng, workers: workers, log: log}, nil
}

// RunScenario validates the configuration, calibrates the null quantile
// table once, then fans the four combinations out concurrently.
func (r *ScenarioRunner) RunScenario(ctx context.Context, cfg scenario.Config) (*scenario.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	r.log.Info("scenario %s: R=%d N=%d K=%d design=%s noise=%s",
		cfg.Name, cfg.Replications, cfg.Samples, cfg.DesignCount, cfg.Design, cfg.Noise)

	b, err := basis.New(cfg.BasisSize)
	if err != nil {
		return nil, err
	}
	truncated, err := b.Truncate(cfg.TruncSize)
	if err != nil {
		return nil, err
	}

	// The null table depends only on the truncated eigenvalues, so it is
	// drawn once and shared read-only across every replication.
	engine := stats.NewEngine()
	levels := scenario.ProbabilityLevels()
	nullQuantiles, err := engine.NullQuantiles(cfg.MCSamples, truncated, levels, r.rng.Stream(cfg.Name+"/null", 0))
	if err != nil {
		return nil, errors.Wrap(err, "null calibration failed")
	}

	sem := semaphore.NewWeighted(int64(r.workers))
	driver := NewReplicationDriver(cfg, b, r.rng, sem, r.log)

	combinations := scenario.Combinations()
	results := make([]scenario.CombinationResult, len(combinations))

	g, gctx := errgroup.WithContext(ctx)
	for i, comb := range combinations {
		g.Go(func() error {
			res, err := driver.Run(gctx, comb, levels, nullQuantiles)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &scenario.Result{
		RunID:         scenario.NewRunID(),
		Config:        cfg,
		NullQuantiles: nullQuantiles,
		Combinations:  results,
		Elapsed:       time.Since(start),
	}
	r.log.Info("scenario %s finished in %s", cfg.Name, result.Elapsed)
	return result, nil
}

// RunSuite runs each scenario in turn, stopping at the first fatal error.
func (r *ScenarioRunner) RunSuite(ctx context.Context, cfgs []scenario.Config) ([]*scenario.Result, error) {
	results := make([]*scenario.Result, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := r.RunScenario(ctx, cfg)
		if err != nil {
			return results, errors.Wrapf(err, "scenario %s", cfg.Name)
		}
		results = append(results, res)
	}
	return results, nil
}
