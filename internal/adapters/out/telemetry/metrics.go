package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds beacon's OTel metric instruments.
type Metrics struct {
	// Probes
	ProbesTotal  metric.Int64Counter
	ProbeLatency metric.Float64Histogram

	// State machine
	StatusTransitions metric.Int64Counter

	// Notifications
	NotificationsSent   metric.Int64Counter
	NotificationsFailed metric.Int64Counter

	// Events
	EventsProcessed metric.Int64Counter
	EventsDropped   metric.Int64Counter
}

// NewMetrics creates and registers all metric instruments.
// All fields are always initialized; OTel returns noop instruments when no
// MeterProvider is set.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("beacon")
	m := &Metrics{}
	var err error

	if m.ProbesTotal, err = meter.Int64Counter("beacon.probe.total",
		metric.WithDescription("Total number of probes by result")); err != nil {
		return nil, err
	}
	if m.ProbeLatency, err = meter.Float64Histogram("beacon.probe.ttfb",
		metric.WithDescription("Probe time to first byte"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(25, 50, 100, 250, 500, 1000, 2500, 5000, 10000)); err != nil {
		return nil, err
	}
	if m.StatusTransitions, err = meter.Int64Counter("beacon.status.transitions",
		metric.WithDescription("Total classification changes")); err != nil {
		return nil, err
	}
	if m.NotificationsSent, err = meter.Int64Counter("beacon.notify.sent",
		metric.WithDescription("Total notifications delivered")); err != nil {
		return nil, err
	}
	if m.NotificationsFailed, err = meter.Int64Counter("beacon.notify.failed",
		metric.WithDescription("Total notification delivery failures")); err != nil {
		return nil, err
	}
	if m.EventsProcessed, err = meter.Int64Counter("beacon.events.processed",
		metric.WithDescription("Total events processed")); err != nil {
		return nil, err
	}
	if m.EventsDropped, err = meter.Int64Counter("beacon.events.dropped",
		metric.WithDescription("Total events dropped")); err != nil {
		return nil, err
	}

	return m, nil
}
