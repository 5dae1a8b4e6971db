// Package scheduler runs independent periodic jobs, one goroutine per job.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
)

var (
	ErrJobRunning  = errors.New("job is already running")
	ErrJobNotFound = errors.New("job not found")
	ErrJobExists   = errors.New("job already exists")
	ErrStarted     = errors.New("scheduler already started")
)

// DefaultInterval is the probe period used when none is configured.
const DefaultInterval = 5 * time.Minute

// Job is the unit of work run on every tick.
type Job func(ctx context.Context) error

// Scheduler runs each registered job on its own ticker. Runs of the same job
// never overlap; different jobs are fully independent.
type Scheduler struct {
	entries        map[string]*entry
	mu             sync.RWMutex
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	started        atomic.Bool
	runImmediately bool
	log            zerolog.Logger
	nowFn          func() time.Time
}

type entry struct {
	id       string
	name     string
	interval time.Duration
	job      Job
	lastRun  time.Time
	nextRun  time.Time
	runCount int64
	lastErr  string
	running  atomic.Bool
}

// Option configures the Scheduler.
type Option func(*Scheduler)

// WithRunImmediately makes every job run once as soon as the scheduler starts
// instead of waiting a full interval.
func WithRunImmediately(enabled bool) Option {
	return func(s *Scheduler) {
		s.runImmediately = enabled
	}
}

// NewScheduler creates a scheduler instance.
func NewScheduler(log zerolog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		entries: make(map[string]*entry),
		stopCh:  make(chan struct{}),
		log:     log,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a periodic job. Jobs must be added before Start.
func (s *Scheduler) Add(id, name string, interval time.Duration, job Job) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if job == nil {
		return fmt.Errorf("job is required")
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be > 0, got %s", interval)
	}
	if s.started.Load() {
		return ErrStarted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		return fmt.Errorf("%w: %q", ErrJobExists, id)
	}

	s.entries[id] = &entry{
		id:       id,
		name:     name,
		interval: interval,
		job:      job,
		nextRun:  s.nowFn().Add(interval),
	}

	return nil
}

// Start launches one loop per job. It is a no-op when the scheduler was
// already started or stopped, or when ctx is already done.
func (s *Scheduler) Start(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	select {
	case <-s.stopCh:
		return
	default:
	}
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	entries := s.snapshotEntries()
	now := s.nowFn()
	for _, e := range entries {
		s.mu.Lock()
		if s.runImmediately {
			e.nextRun = now
		} else {
			e.nextRun = now.Add(e.interval)
		}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.loop(ctx, e)
	}

	s.log.Info().
		Str(logging.FieldComponent, "scheduler").
		Int(logging.FieldCount, len(entries)).
		Bool("run_immediately", s.runImmediately).
		Msg("scheduler started")
}

// Stop stops every loop and waits for in-flight runs to finish. It is safe
// to call more than once and before Start.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
}

// List returns current scheduler entries sorted by id.
func (s *Scheduler) List() []domain.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.ScheduleEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, domain.ScheduleEntry{
			ID:        e.id,
			Name:      e.name,
			Interval:  e.interval,
			LastRun:   e.lastRun,
			NextRun:   e.nextRun,
			Running:   e.running.Load(),
			RunCount:  e.runCount,
			LastError: e.lastErr,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return entries
}

// RunNow runs a registered job immediately in the caller's goroutine.
func (s *Scheduler) RunNow(ctx context.Context, id string) error {
	e := s.getEntry(id)
	if e == nil {
		return fmt.Errorf("%w: %q", ErrJobNotFound, id)
	}

	return s.executeEntry(ctx, e)
}

func (s *Scheduler) loop(ctx context.Context, e *entry) {
	defer s.wg.Done()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	if s.runImmediately {
		s.runScheduled(ctx, e)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.runScheduled(ctx, e)
		}
	}
}

func (s *Scheduler) runScheduled(ctx context.Context, e *entry) {
	err := s.executeEntry(ctx, e)
	switch {
	case errors.Is(err, ErrJobRunning):
		s.log.Debug().Str("job_id", e.id).Msg("previous run still in progress, skipping tick")
	case err != nil:
		s.log.Warn().Err(err).Str("job_id", e.id).Msg("scheduled job failed")
	}
}

func (s *Scheduler) executeEntry(ctx context.Context, e *entry) (err error) {
	if !e.running.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %q", ErrJobRunning, e.id)
	}
	defer e.running.Store(false)

	startedAt := s.nowFn()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %q panic: %v", e.id, r)
		}

		s.mu.Lock()
		e.lastRun = startedAt
		e.nextRun = startedAt.Add(e.interval)
		e.runCount++
		e.lastErr = ""
		if err != nil {
			e.lastErr = err.Error()
		}
		s.mu.Unlock()
	}()

	return e.job(ctx)
}

func (s *Scheduler) getEntry(id string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[id]
}

func (s *Scheduler) snapshotEntries() []*entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	return entries
}
