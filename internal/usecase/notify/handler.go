// Package notify turns status-change events into notifications.
package notify

import (
	"context"
	"fmt"

	"github.com/bnema/beacon/internal/boundaries/out"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
)

// Handler delivers a notification for every status.changed event. Delivery
// is best-effort: errors are returned to the event bus, which logs them.
type Handler struct {
	notifier out.Notifier
}

// NewHandler creates a status change handler.
func NewHandler(notifier out.Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// CanHandle implements out.EventHandler.
func (h *Handler) CanHandle(eventType domain.EventType) bool {
	return eventType == domain.EventStatusChanged
}

// Handle implements out.EventHandler.
func (h *Handler) Handle(ctx context.Context, event domain.Event) error {
	payload, ok := event.Data.(domain.StatusChangedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Data, event.Type)
	}
	t := payload.Transition

	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Notify",
		logging.FieldService: t.URL,
	})

	if err := h.notifier.Notify(ctx, t.URL, t.To); err != nil {
		return fmt.Errorf("notify %s %s: %w", t.URL, t.To, err)
	}

	logging.FromCtx(ctx).Debug().Str(logging.FieldStatus, string(t.To)).Msg("notification delivered")
	return nil
}
