package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bnema/beacon/internal/adapters/in/http/status"
	"github.com/bnema/beacon/internal/adapters/out/eventbus"
	"github.com/bnema/beacon/internal/adapters/out/httpprober"
	"github.com/bnema/beacon/internal/adapters/out/slacknotifier"
	"github.com/bnema/beacon/internal/adapters/out/telemetry"
	"github.com/bnema/beacon/internal/boundaries/out"
	"github.com/bnema/beacon/internal/logging"
	"github.com/bnema/beacon/internal/usecase/monitor"
	"github.com/bnema/beacon/internal/usecase/notify"
	"github.com/bnema/beacon/internal/usecase/scheduler"
	"github.com/bnema/beacon/pkg/version"
)

const (
	eventBufferSize = 100
	shutdownTimeout = 10 * time.Second
)

// services groups everything Run starts and stops.
type services struct {
	log       zerolog.Logger
	bus       out.EventBus
	monitor   *monitor.Service
	scheduler *scheduler.Scheduler
	server    *http.Server
	listener  net.Listener
}

// Run loads configuration and monitors every configured service until ctx is
// cancelled or SIGINT/SIGTERM is received.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	log, cleanup, err := logging.Setup(cfg.LoggingConfig())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithCtx(ctx, log)

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, "beacon", version.Version())
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Warn().Err(err).Msg("telemetry shutdown error")
		}
	}()

	svc, err := createServices(cfg, log)
	if err != nil {
		return err
	}

	return svc.run(ctx)
}

// createServices builds the adapters and use cases for cfg.
func createServices(cfg Config, log zerolog.Logger) (*services, error) {
	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	bus := newEventBus(log, metrics)

	notifier, err := createNotifier(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := registerEventHandlers(bus, notifier, metrics); err != nil {
		return nil, err
	}

	mon, err := monitor.NewService(cfg.Services, createProber(cfg, metrics), bus)
	if err != nil {
		return nil, err
	}

	sched := scheduler.NewScheduler(log, scheduler.WithRunImmediately(cfg.Monitor.RunImmediately))
	for i, url := range mon.URLs() {
		if err := sched.Add(jobID(i), url, cfg.Monitor.Interval, checkJob(mon, url)); err != nil {
			return nil, fmt.Errorf("failed to schedule %s: %w", url, err)
		}
	}

	svc := &services{
		log:       log.With().Str(logging.FieldLayer, "app").Str(logging.FieldComponent, "monitor").Logger(),
		bus:       bus,
		monitor:   mon,
		scheduler: sched,
	}

	if cfg.Server.Listen != "" {
		ln, err := net.Listen("tcp", cfg.Server.Listen)
		if err != nil {
			return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Server.Listen, err)
		}
		svc.listener = ln
		svc.server = &http.Server{
			Handler:           otelhttp.NewHandler(status.NewEcho(status.NewHandler(mon, sched, log)), "status-api"),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		}
	}

	return svc, nil
}

func newEventBus(log zerolog.Logger, metrics *telemetry.Metrics) out.EventBus {
	bus := eventbus.NewInMemory(eventBufferSize, log)
	bus.SetMetrics(metrics)
	return bus
}

// registerEventHandlers subscribes notification delivery and transition
// counting to status.changed events.
func registerEventHandlers(bus out.EventSubscriber, notifier out.Notifier, metrics *telemetry.Metrics) error {
	if err := bus.Subscribe(notify.NewHandler(telemetry.InstrumentNotifier(notifier, metrics))); err != nil {
		return fmt.Errorf("failed to subscribe notify handler: %w", err)
	}
	if err := bus.Subscribe(telemetry.NewTransitionRecorder(metrics)); err != nil {
		return fmt.Errorf("failed to subscribe transition recorder: %w", err)
	}
	return nil
}

func createProber(cfg Config, metrics *telemetry.Metrics) *httpprober.Prober {
	return httpprober.New(
		httpprober.WithTimeout(cfg.Monitor.ProbeTimeout),
		httpprober.WithUserAgent("beacon-monitor/"+version.Version()),
		httpprober.WithMetrics(metrics),
	)
}

func createNotifier(cfg Config, log zerolog.Logger) (out.Notifier, error) {
	if cfg.Notify.WebhookURL == "" {
		log.Warn().
			Str(logging.FieldLayer, "app").
			Msgf("no webhook configured (%s), status changes will only be logged", WebhookEnvVar)
		return notify.LogNotifier{}, nil
	}

	client := &http.Client{
		Timeout:   slacknotifier.DefaultTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	n, err := slacknotifier.New(cfg.Notify.WebhookURL, slacknotifier.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}
	return n, nil
}

func jobID(i int) string {
	return fmt.Sprintf("svc-%d", i+1)
}

func checkJob(mon *monitor.Service, url string) scheduler.Job {
	return func(ctx context.Context) error {
		_, _, err := mon.Check(ctx, url)
		return err
	}
}

// run starts every component, blocks until ctx is done, then stops them in
// reverse order.
func (s *services) run(ctx context.Context) error {
	if err := s.bus.Start(); err != nil {
		return fmt.Errorf("failed to start event bus: %w", err)
	}
	defer func() {
		if err := s.bus.Stop(); err != nil {
			s.log.Warn().Err(err).Msg("event bus shutdown error")
		}
	}()

	serverErr := make(chan error, 1)
	if s.server != nil {
		go func() {
			if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
		s.log.Info().Str("listen", s.listener.Addr().String()).Msg("status API listening")
	}

	// Jobs get their own ctx so a server failure also aborts in-flight probes.
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	s.scheduler.Start(jobCtx)
	s.log.Info().
		Int(logging.FieldCount, len(s.monitor.URLs())).
		Msg("monitoring started")

	var runErr error
	select {
	case <-ctx.Done():
		s.log.Info().Msg("shutdown requested")
	case err := <-serverErr:
		s.log.Error().Err(err).Msg("status API server error")
		runErr = fmt.Errorf("status API server: %w", err)
	}

	cancelJobs()
	s.scheduler.Stop()

	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.log.Warn().Err(err).Msg("status API shutdown error")
		}
	}

	s.log.Info().Msg("beacon shutdown complete")
	return runErr
}
