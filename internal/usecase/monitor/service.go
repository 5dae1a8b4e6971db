// Package monitor implements the per-service health classification use case.
package monitor

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/beacon/internal/boundaries/out"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
)

// Service owns one ServiceMonitor per configured URL and drives probe
// outcomes through them. The set of monitors is fixed at construction.
type Service struct {
	monitors map[string]*ServiceMonitor
	urls     []string
	prober   out.HTTPProber
	events   out.EventPublisher
}

// NewService creates a monitor for every configured service. Configs must be
// valid and URLs unique.
func NewService(configs []domain.ServiceConfig, prober out.HTTPProber, events out.EventPublisher) (*Service, error) {
	if len(configs) == 0 {
		return nil, domain.ErrNoServices
	}
	if prober == nil {
		return nil, fmt.Errorf("prober is required")
	}

	s := &Service{
		monitors: make(map[string]*ServiceMonitor, len(configs)),
		urls:     make([]string, 0, len(configs)),
		prober:   prober,
		events:   events,
	}

	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.monitors[cfg.URL]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateService, cfg.URL)
		}
		s.monitors[cfg.URL] = NewServiceMonitor(cfg)
		s.urls = append(s.urls, cfg.URL)
	}
	sort.Strings(s.urls)

	return s, nil
}

// Check probes one service and evaluates the outcome. When the classification
// changes a status.changed event is published; publish failures are logged
// and never returned.
func (s *Service) Check(ctx context.Context, url string) (domain.Transition, bool, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Check",
		logging.FieldService: url,
	})
	log := logging.FromCtx(ctx)

	m, ok := s.monitors[url]
	if !ok {
		return domain.Transition{}, false, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, url)
	}

	outcome := s.prober.Probe(ctx, url)
	if err := ctx.Err(); err != nil {
		// Cancelled probes say nothing about the service.
		log.Debug().Err(err).Msg("probe interrupted, outcome discarded")
		return domain.Transition{}, false, err
	}
	if outcome.Success {
		log.Debug().
			Float64("latency_ms", outcome.LatencyMs).
			Int("http_status", outcome.StatusCode).
			Msg("probe succeeded")
	} else {
		log.Debug().
			Int("http_status", outcome.StatusCode).
			Str("reason", outcome.Reason()).
			Msg("probe failed")
	}

	transition, changed := m.Evaluate(outcome)
	if !changed {
		return transition, false, nil
	}

	log.Info().
		Str("from", string(transition.From)).
		Str("to", string(transition.To)).
		Float64("avg_ms", transition.AverageMs).
		Msg("service status changed")

	if s.events != nil {
		if err := s.events.Publish(domain.EventStatusChanged, domain.StatusChangedPayload{Transition: transition}); err != nil {
			log.Warn().Err(err).Msg("failed to publish status change")
		}
	}

	return transition, true, nil
}

// State returns a snapshot of one service.
func (s *Service) State(_ context.Context, url string) (domain.ServiceState, error) {
	m, ok := s.monitors[url]
	if !ok {
		return domain.ServiceState{}, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, url)
	}
	return m.State(), nil
}

// States returns snapshots of every service, sorted by URL.
func (s *Service) States(_ context.Context) []domain.ServiceState {
	states := make([]domain.ServiceState, 0, len(s.urls))
	for _, url := range s.urls {
		states = append(states, s.monitors[url].State())
	}
	return states
}

// URLs returns the configured service URLs, sorted.
func (s *Service) URLs() []string {
	urls := make([]string, len(s.urls))
	copy(urls, s.urls)
	return urls
}
