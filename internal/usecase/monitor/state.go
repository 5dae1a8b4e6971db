package monitor

import (
	"sync"
	"time"

	"github.com/bnema/beacon/internal/domain"
)

// ServiceMonitor owns the rolling state of one service and folds probe
// outcomes into a classification.
type ServiceMonitor struct {
	mu             sync.Mutex
	url            string
	classification domain.Classification
	history        []float64
	thresholdMs    float64
	nowFn          func() time.Time
}

// NewServiceMonitor creates a monitor in the OPERATIONAL state with an empty history.
func NewServiceMonitor(cfg domain.ServiceConfig) *ServiceMonitor {
	return &ServiceMonitor{
		url:            cfg.URL,
		classification: domain.Operational,
		history:        make([]float64, 0, domain.HistorySize+1),
		thresholdMs:    cfg.TimeoutThresholdMs,
		nowFn:          time.Now,
	}
}

// URL returns the monitored service URL.
func (m *ServiceMonitor) URL() string { return m.url }

// Evaluate applies one probe outcome and reports whether the classification
// changed. A failure never touches the latency history. A success only leads
// to a decision once the history has overflowed past HistorySize samples.
func (m *ServiceMonitor) Evaluate(outcome domain.Outcome) (domain.Transition, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !outcome.Success {
		if m.classification == domain.Outage {
			return domain.Transition{}, false
		}
		return m.transitionLocked(domain.Outage, domain.Mean(m.history)), true
	}

	m.history = append(m.history, outcome.LatencyMs)
	if len(m.history) <= domain.HistorySize {
		return domain.Transition{}, false
	}

	m.history = append(m.history[:0], m.history[1:]...)
	avg := domain.Mean(m.history)

	switch {
	case avg > m.thresholdMs && m.classification != domain.Degraded:
		return m.transitionLocked(domain.Degraded, avg), true
	case avg < m.thresholdMs && m.classification != domain.Operational:
		return m.transitionLocked(domain.Operational, avg), true
	default:
		return domain.Transition{}, false
	}
}

func (m *ServiceMonitor) transitionLocked(to domain.Classification, avg float64) domain.Transition {
	t := domain.Transition{
		URL:       m.url,
		From:      m.classification,
		To:        to,
		AverageMs: avg,
		At:        m.nowFn(),
	}
	m.classification = to
	return t
}

// State returns a snapshot of the current state.
func (m *ServiceMonitor) State() domain.ServiceState {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]float64, len(m.history))
	copy(history, m.history)

	return domain.ServiceState{
		URL:                m.url,
		Classification:     m.classification,
		LatencyHistory:     history,
		TimeoutThresholdMs: m.thresholdMs,
	}
}
