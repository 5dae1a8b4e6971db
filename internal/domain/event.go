package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventStatusChanged EventType = "status.changed"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	URL       string
	Data      any
}

// StatusChangedPayload contains data for status.changed events.
type StatusChangedPayload struct {
	Transition Transition
}
