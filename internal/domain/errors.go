package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
var (
	// Service errors
	ErrServiceNotFound  = errors.New("service not found")
	ErrDuplicateService = errors.New("service already configured")
	ErrInvalidService   = errors.New("invalid service configuration")
	ErrNoServices       = errors.New("no services configured")

	// Config errors
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigLoadFailed = errors.New("failed to load configuration")

	// Notification errors
	ErrNotificationFailed = errors.New("failed to deliver notification")
)
