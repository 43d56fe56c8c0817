package experiment

import (
	"context"
	"sync"

	"github.com/san-kum/retrotennis/internal/metrics"
)

// Ensemble plays the same match setup under consecutive seeds in parallel.
type Ensemble struct {
	base      Config
	registry  *Registry
	numRuns   int
	seedStart int64
	// Metrics builds a fresh metric set for each run. Defaults to the
	// registry's.
	Metrics func() []metrics.Metric
}

func NewEnsemble(base Config, reg *Registry, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, registry: reg, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	newMetrics := e.Metrics
	if newMetrics == nil {
		newMetrics = e.registry.DefaultMetrics
	}

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.base
			cfg.Seed = e.seedStart + int64(idx)

			exp := New(cfg)
			if errs[idx] = exp.Setup(e.registry, newMetrics()); errs[idx] != nil {
				return
			}
			results[idx], errs[idx] = exp.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Mean averages a metric over results.
func Mean(results []*Result, metric string) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.Metrics[metric]
	}
	return sum / float64(len(results))
}
