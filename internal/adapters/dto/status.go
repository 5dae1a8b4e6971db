package dto

import "time"

// ServiceStatus is the JSON view of one monitored service.
type ServiceStatus struct {
	URL              string    `json:"url"`
	Classification   string    `json:"classification"`
	LatencyHistoryMs []float64 `json:"latency_history_ms"`
	AverageMs        float64   `json:"average_ms"`
	TimeoutMs        float64   `json:"timeout_ms"`
}

// StatusResponse lists every monitored service.
type StatusResponse struct {
	Services []ServiceStatus `json:"services"`
}

// ScheduleEntry is the JSON view of a scheduler entry.
type ScheduleEntry struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Interval  string     `json:"interval"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	NextRun   *time.Time `json:"next_run,omitempty"`
	Running   bool       `json:"running"`
	RunCount  int64      `json:"run_count"`
	LastError string     `json:"last_error,omitempty"`
}

// SchedulesResponse lists the scheduler entries.
type SchedulesResponse struct {
	Schedules []ScheduleEntry `json:"schedules"`
}
