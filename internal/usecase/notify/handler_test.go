package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/beacon/internal/boundaries/out/mocks"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
)

func statusEvent(url string, to domain.Classification) domain.Event {
	return domain.Event{
		ID:   "evt-1",
		Type: domain.EventStatusChanged,
		URL:  url,
		Data: domain.StatusChangedPayload{Transition: domain.Transition{
			URL:  url,
			From: domain.Operational,
			To:   to,
		}},
	}
}

func TestHandler_CanHandle(t *testing.T) {
	h := NewHandler(mocks.NewMockNotifier(t))

	assert.True(t, h.CanHandle(domain.EventStatusChanged))
	assert.False(t, h.CanHandle(domain.EventType("config.reload")))
}

func TestHandler_NotifiesNewClassification(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, "https://api.example.com", domain.Degraded).Return(nil).Once()

	h := NewHandler(notifier)
	err := h.Handle(context.Background(), statusEvent("https://api.example.com", domain.Degraded))

	require.NoError(t, err)
}

func TestHandler_DeliveryErrorIsReturned(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, "https://api.example.com", domain.Outage).Return(errors.New("sink unreachable")).Once()

	h := NewHandler(notifier)
	err := h.Handle(context.Background(), statusEvent("https://api.example.com", domain.Outage))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink unreachable")
}

func TestHandler_RejectsUnexpectedPayload(t *testing.T) {
	h := NewHandler(mocks.NewMockNotifier(t))

	err := h.Handle(context.Background(), domain.Event{Type: domain.EventStatusChanged, Data: "oops"})
	assert.Error(t, err)
}

func TestLogNotifier_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := logging.WithCtx(context.Background(), log)

	err := LogNotifier{}.Notify(ctx, "https://api.example.com", domain.Outage)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"status":"OUTAGE"`)
	assert.Contains(t, buf.String(), `Service OUTAGE\nhttps://api.example.com`)
}
