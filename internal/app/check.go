package app

import (
	"context"
	"sync"

	"github.com/bnema/beacon/internal/domain"
)

// CheckResult is the outcome of a one-shot probe of a configured service.
type CheckResult struct {
	Service domain.ServiceConfig
	Outcome domain.Outcome
}

// Slow reports whether a successful probe exceeded the service threshold.
func (r CheckResult) Slow() bool {
	return r.Outcome.Success && r.Outcome.LatencyMs > r.Service.TimeoutThresholdMs
}

// CheckOnce probes every configured service once, concurrently. It keeps no
// state and sends no notifications. Results follow configuration order.
func CheckOnce(ctx context.Context, opts Options) ([]CheckResult, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	prober := createProber(cfg, nil)
	results := make([]CheckResult, len(cfg.Services))

	var wg sync.WaitGroup
	for i, svc := range cfg.Services {
		wg.Add(1)
		go func(i int, svc domain.ServiceConfig) {
			defer wg.Done()
			results[i] = CheckResult{Service: svc, Outcome: prober.Probe(ctx, svc.URL)}
		}(i, svc)
	}
	wg.Wait()

	return results, nil
}
