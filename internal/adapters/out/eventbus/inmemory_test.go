package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/beacon/internal/adapters/out/telemetry"
	"github.com/bnema/beacon/internal/domain"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []domain.Event
	accept domain.EventType
	err    error
	block  chan struct{}
}

func (h *recordingHandler) Handle(ctx context.Context, event domain.Event) error {
	if h.block != nil {
		select {
		case <-h.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	h.mu.Lock()
	h.events = append(h.events, event)
	h.mu.Unlock()
	return h.err
}

func (h *recordingHandler) CanHandle(eventType domain.EventType) bool {
	return eventType == h.accept
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

func (h *recordingHandler) last() domain.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.events[len(h.events)-1]
}

func statusChanged(url string) domain.StatusChangedPayload {
	return domain.StatusChangedPayload{Transition: domain.Transition{
		URL:  url,
		From: domain.Operational,
		To:   domain.Outage,
	}}
}

func TestInMemory_PublishDeliversToMatchingHandlers(t *testing.T) {
	bus := NewInMemory(10, zerolog.Nop())
	metrics, err := telemetry.NewMetrics()
	require.NoError(t, err)
	bus.SetMetrics(metrics)

	matching := &recordingHandler{accept: domain.EventStatusChanged}
	other := &recordingHandler{accept: domain.EventType("other")}
	require.NoError(t, bus.Subscribe(matching))
	require.NoError(t, bus.Subscribe(other))
	require.NoError(t, bus.Start())
	defer func() { _ = bus.Stop() }()

	require.NoError(t, bus.Publish(domain.EventStatusChanged, statusChanged("https://a.example.com")))

	assert.Eventually(t, func() bool { return matching.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, other.count())

	event := matching.last()
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusChanged, event.Type)
	assert.Equal(t, "https://a.example.com", event.URL)
	assert.False(t, event.Timestamp.IsZero())
	payload, ok := event.Data.(domain.StatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.Outage, payload.Transition.To)
}

func TestInMemory_PublishDropsWhenFull(t *testing.T) {
	bus := NewInMemory(1, zerolog.Nop())

	require.NoError(t, bus.Publish(domain.EventStatusChanged, statusChanged("https://a.example.com")))

	done := make(chan error, 1)
	go func() {
		done <- bus.Publish(domain.EventStatusChanged, statusChanged("https://b.example.com"))
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full buffer")
	}
}

func TestInMemory_PublishAfterStopFails(t *testing.T) {
	bus := NewInMemory(10, zerolog.Nop())
	require.NoError(t, bus.Start())
	require.NoError(t, bus.Stop())

	err := bus.Publish(domain.EventStatusChanged, statusChanged("https://a.example.com"))
	assert.Error(t, err)
}

func TestInMemory_HandlerErrorDoesNotStopProcessing(t *testing.T) {
	bus := NewInMemory(10, zerolog.Nop())
	h := &recordingHandler{accept: domain.EventStatusChanged, err: errors.New("sink down")}
	require.NoError(t, bus.Subscribe(h))
	require.NoError(t, bus.Start())
	defer func() { _ = bus.Stop() }()

	require.NoError(t, bus.Publish(domain.EventStatusChanged, statusChanged("https://a.example.com")))
	require.NoError(t, bus.Publish(domain.EventStatusChanged, statusChanged("https://b.example.com")))

	assert.Eventually(t, func() bool { return h.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestInMemory_HandlerTimeout(t *testing.T) {
	bus := NewInMemory(10, zerolog.Nop())
	bus.handlerTimeout = 20 * time.Millisecond

	slow := &recordingHandler{accept: domain.EventStatusChanged, block: make(chan struct{})}
	require.NoError(t, bus.Subscribe(slow))
	require.NoError(t, bus.Start())
	defer func() { _ = bus.Stop() }()

	require.NoError(t, bus.Publish(domain.EventStatusChanged, statusChanged("https://a.example.com")))
	require.NoError(t, bus.Publish(domain.EventStatusChanged, statusChanged("https://b.example.com")))

	// Both handler invocations time out without recording, and the bus keeps draining.
	assert.Eventually(t, func() bool { return len(bus.eventChan) == 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, slow.count())
}
