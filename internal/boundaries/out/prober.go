package out

import (
	"context"

	"github.com/bnema/beacon/internal/domain"
)

// HTTPProber defines the contract for a single HTTP health probe.
// Implementations never return an error: every failure mode is a failed Outcome.
type HTTPProber interface {
	Probe(ctx context.Context, url string) domain.Outcome
}
