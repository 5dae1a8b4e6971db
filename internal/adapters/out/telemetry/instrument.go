package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/beacon/internal/boundaries/out"
	"github.com/bnema/beacon/internal/domain"
)

type instrumentedNotifier struct {
	next    out.Notifier
	metrics *Metrics
}

// InstrumentNotifier wraps next so that every delivery attempt is counted.
func InstrumentNotifier(next out.Notifier, m *Metrics) out.Notifier {
	if m == nil {
		return next
	}
	return &instrumentedNotifier{next: next, metrics: m}
}

func (n *instrumentedNotifier) Notify(ctx context.Context, url string, classification domain.Classification) error {
	attrs := metric.WithAttributes(attribute.String("classification", string(classification)))

	err := n.next.Notify(ctx, url, classification)
	if err != nil {
		n.metrics.NotificationsFailed.Add(ctx, 1, attrs)
		return err
	}
	n.metrics.NotificationsSent.Add(ctx, 1, attrs)
	return nil
}

// TransitionRecorder counts status.changed events by target classification.
type TransitionRecorder struct {
	metrics *Metrics
}

// NewTransitionRecorder creates an event handler that feeds StatusTransitions.
func NewTransitionRecorder(m *Metrics) *TransitionRecorder {
	return &TransitionRecorder{metrics: m}
}

// CanHandle implements out.EventHandler.
func (r *TransitionRecorder) CanHandle(eventType domain.EventType) bool {
	return eventType == domain.EventStatusChanged
}

// Handle implements out.EventHandler.
func (r *TransitionRecorder) Handle(ctx context.Context, event domain.Event) error {
	payload, ok := event.Data.(domain.StatusChangedPayload)
	if !ok || r.metrics == nil {
		return nil
	}
	r.metrics.StatusTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", string(payload.Transition.From)),
		attribute.String("to", string(payload.Transition.To)),
	))
	return nil
}
