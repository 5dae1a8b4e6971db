// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI,
// scheduler) and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/beacon/internal/domain"
)

// MonitorService defines the contract for the per-service health state machine.
type MonitorService interface {
	// Check probes the service, folds the outcome into its rolling state and
	// reports whether the classification changed.
	Check(ctx context.Context, url string) (domain.Transition, bool, error)

	// State returns a snapshot of one service's state.
	State(ctx context.Context, url string) (domain.ServiceState, error)

	// States returns snapshots of every configured service, sorted by URL.
	States(ctx context.Context) []domain.ServiceState

	// URLs returns the configured service URLs, sorted.
	URLs() []string
}

// SchedulerService defines the contract for inspecting and triggering periodic jobs.
type SchedulerService interface {
	List() []domain.ScheduleEntry
	RunNow(ctx context.Context, id string) error
}
