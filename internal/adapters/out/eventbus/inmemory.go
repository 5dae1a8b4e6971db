// Package eventbus implements the event bus adapter.
package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/beacon/internal/adapters/out/telemetry"
	"github.com/bnema/beacon/internal/boundaries/out"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
)

// DefaultHandlerTimeout bounds a single handler invocation.
const DefaultHandlerTimeout = 30 * time.Second

var _ out.EventBus = (*InMemory)(nil)

// InMemory implements out.EventBus using a buffered channel.
// Publish never blocks: when the buffer is full the event is dropped.
type InMemory struct {
	handlers       []out.EventHandler
	eventChan      chan domain.Event
	done           chan struct{}
	mu             sync.RWMutex
	ctx            context.Context
	cancel         context.CancelFunc
	bufferSize     int
	handlerTimeout time.Duration
	log            zerolog.Logger
	metrics        *telemetry.Metrics
	nowFn          func() time.Time
}

// SetMetrics sets the telemetry metrics for the event bus.
// Must be called before Start() to avoid data races on bus.metrics reads.
func (bus *InMemory) SetMetrics(m *telemetry.Metrics) {
	bus.mu.Lock()
	bus.metrics = m
	bus.mu.Unlock()
}

// NewInMemory creates a new in-memory event bus.
func NewInMemory(bufferSize int, log zerolog.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &InMemory{
		handlers:       make([]out.EventHandler, 0),
		eventChan:      make(chan domain.Event, bufferSize),
		done:           make(chan struct{}),
		ctx:            logging.WithCtx(ctx, log),
		cancel:         cancel,
		bufferSize:     bufferSize,
		handlerTimeout: DefaultHandlerTimeout,
		log:            log.With().Str(logging.FieldLayer, "adapter").Str(logging.FieldAdapter, "eventbus").Logger(),
		nowFn:          time.Now,
	}
}

// Publish enqueues an event for asynchronous delivery.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	event := domain.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: bus.nowFn(),
		Data:      payload,
	}

	switch p := payload.(type) {
	case domain.StatusChangedPayload:
		event.URL = p.Transition.URL
	}

	if bus.ctx.Err() != nil {
		return fmt.Errorf("event bus is stopped")
	}

	select {
	case bus.eventChan <- event:
		bus.log.Debug().
			Str("event_id", event.ID).
			Str(logging.FieldEvent, string(event.Type)).
			Str(logging.FieldService, event.URL).
			Msg("event published")
		return nil
	default:
		bus.log.Error().
			Str("event_id", event.ID).
			Str(logging.FieldEvent, string(event.Type)).
			Str(logging.FieldService, event.URL).
			Msg("event channel is full, dropping event")

		if bus.metrics != nil {
			bus.metrics.EventsDropped.Add(context.Background(), 1, metric.WithAttributes(
				attribute.String("event_type", string(event.Type)),
			))
		}
		return fmt.Errorf("event channel is full, dropping event %s", event.ID)
	}
}

// Subscribe adds an event handler to the bus.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = append(bus.handlers, handler)
	bus.log.Debug().
		Str(logging.FieldHandler, fmt.Sprintf("%T", handler)).
		Int("total_handlers", len(bus.handlers)).
		Msg("event handler subscribed")

	return nil
}

// Start starts the event bus processing loop.
func (bus *InMemory) Start() error {
	bus.log.Info().Int("buffer_size", bus.bufferSize).Msg("starting event bus")

	go bus.processEvents()
	return nil
}

// Stop stops the event bus. Events still queued are discarded.
func (bus *InMemory) Stop() error {
	bus.cancel()

	select {
	case <-bus.done:
		bus.log.Info().Msg("event bus stopped")
		return nil
	case <-time.After(5 * time.Second):
		bus.log.Warn().Msg("event bus stop timeout")
		return fmt.Errorf("timeout waiting for event bus to stop")
	}
}

func (bus *InMemory) processEvents() {
	defer close(bus.done)

	for {
		select {
		case event := <-bus.eventChan:
			bus.handleEvent(event)
		case <-bus.ctx.Done():
			return
		}
	}
}

func (bus *InMemory) handleEvent(event domain.Event) {
	bus.mu.RLock()
	handlers := make([]out.EventHandler, len(bus.handlers))
	copy(handlers, bus.handlers)
	metrics := bus.metrics
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}

		start := time.Now()
		ctx, cancel := context.WithTimeout(bus.ctx, bus.handlerTimeout)

		done := make(chan error, 1)
		go func() {
			done <- h.Handle(ctx, event)
		}()

		select {
		case err := <-done:
			cancel()
			if err != nil {
				bus.log.Error().
					Err(err).
					Str("event_id", event.ID).
					Str(logging.FieldEvent, string(event.Type)).
					Str(logging.FieldHandler, fmt.Sprintf("%T", h)).
					Msg("error handling event")
				continue
			}
			bus.log.Debug().
				Str("event_id", event.ID).
				Str(logging.FieldEvent, string(event.Type)).
				Str(logging.FieldHandler, fmt.Sprintf("%T", h)).
				Dur(logging.FieldDuration, time.Since(start)).
				Msg("event handled successfully")

			if metrics != nil {
				metrics.EventsProcessed.Add(context.Background(), 1, metric.WithAttributes(
					attribute.String("event_type", string(event.Type)),
				))
			}
		case <-ctx.Done():
			cancel()
			bus.log.Warn().
				Str("event_id", event.ID).
				Str(logging.FieldEvent, string(event.Type)).
				Str(logging.FieldHandler, fmt.Sprintf("%T", h)).
				Dur(logging.FieldDuration, time.Since(start)).
				Msg("handler timed out")
		}
	}
}
