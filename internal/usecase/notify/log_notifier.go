package notify

import (
	"context"

	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
)

// LogNotifier writes status changes to the context logger. It is used when
// no external sink is configured.
type LogNotifier struct{}

// Notify implements out.Notifier.
func (LogNotifier) Notify(ctx context.Context, url string, classification domain.Classification) error {
	logging.FromCtx(ctx).Warn().
		Str(logging.FieldService, url).
		Str(logging.FieldStatus, string(classification)).
		Msg(domain.StatusMessage(url, classification))
	return nil
}
