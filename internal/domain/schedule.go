package domain

import "time"

// ScheduleEntry describes a registered periodic job.
type ScheduleEntry struct {
	ID        string
	Name      string
	Interval  time.Duration
	LastRun   time.Time
	NextRun   time.Time
	Running   bool
	RunCount  int64
	LastError string
}
