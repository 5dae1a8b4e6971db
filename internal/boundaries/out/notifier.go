package out

import (
	"context"

	"github.com/bnema/beacon/internal/domain"
)

// Notifier delivers a status-change message to an external sink.
type Notifier interface {
	Notify(ctx context.Context, url string, classification domain.Classification) error
}
