// Package status implements the read-only HTTP status API.
package status

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bnema/beacon/internal/adapters/dto"
	"github.com/bnema/beacon/internal/boundaries/in"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/internal/logging"
	"github.com/bnema/beacon/internal/usecase/scheduler"
)

// Handler serves current classifications and scheduler state.
type Handler struct {
	monitor   in.MonitorService
	scheduler in.SchedulerService
	log       zerolog.Logger
}

// NewHandler creates a status handler. scheduler may be nil.
func NewHandler(monitor in.MonitorService, scheduler in.SchedulerService, log zerolog.Logger) *Handler {
	return &Handler{
		monitor:   monitor,
		scheduler: scheduler,
		log:       log.With().Str(logging.FieldLayer, "adapter").Str(logging.FieldAdapter, "http.status").Logger(),
	}
}

// NewEcho builds an echo instance with the status routes registered.
func NewEcho(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(accessLogger(h.log))
	h.Register(e)
	return e
}

// Register mounts the status routes on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.healthz)
	e.GET("/status", h.listStatus)
	e.GET("/schedules", h.listSchedules)
	e.POST("/schedules/:id/run", h.runSchedule)
}

func (h *Handler) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listStatus(c echo.Context) error {
	if url := c.QueryParam("url"); url != "" {
		return h.serviceStatus(c, url)
	}

	states := h.monitor.States(c.Request().Context())
	resp := dto.StatusResponse{Services: make([]dto.ServiceStatus, 0, len(states))}
	for _, s := range states {
		resp.Services = append(resp.Services, toServiceStatus(s))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) serviceStatus(c echo.Context, url string) error {
	state, err := h.monitor.State(c.Request().Context(), url)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error().Err(err).Str(logging.FieldService, url).Msg("failed to read service state")
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toServiceStatus(state))
}

func (h *Handler) listSchedules(c echo.Context) error {
	resp := dto.SchedulesResponse{Schedules: []dto.ScheduleEntry{}}
	if h.scheduler == nil {
		return c.JSON(http.StatusOK, resp)
	}
	for _, e := range h.scheduler.List() {
		resp.Schedules = append(resp.Schedules, toScheduleEntry(e))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) runSchedule(c echo.Context) error {
	if h.scheduler == nil {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "scheduler not available"})
	}

	id := c.Param("id")
	ctx := logging.WithCtx(c.Request().Context(), h.log)
	err := h.scheduler.RunNow(ctx, id)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "completed", "id": id})
	case errors.Is(err, scheduler.ErrJobNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, scheduler.ErrJobRunning):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		// The job itself failed; the run still happened.
		return c.JSON(http.StatusOK, map[string]string{"status": "failed", "id": id, "error": err.Error()})
	}
}

func toServiceStatus(s domain.ServiceState) dto.ServiceStatus {
	history := s.LatencyHistory
	if history == nil {
		history = []float64{}
	}
	return dto.ServiceStatus{
		URL:              s.URL,
		Classification:   string(s.Classification),
		LatencyHistoryMs: history,
		AverageMs:        s.AverageMs(),
		TimeoutMs:        s.TimeoutThresholdMs,
	}
}

func toScheduleEntry(e domain.ScheduleEntry) dto.ScheduleEntry {
	out := dto.ScheduleEntry{
		ID:        e.ID,
		Name:      e.Name,
		Interval:  e.Interval.String(),
		Running:   e.Running,
		RunCount:  e.RunCount,
		LastError: e.LastError,
	}
	if !e.LastRun.IsZero() {
		t := e.LastRun
		out.LastRun = &t
	}
	if !e.NextRun.IsZero() {
		t := e.NextRun
		out.NextRun = &t
	}
	return out
}

func accessLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug().
				Str("remote_ip", c.RealIP()).
				Str(logging.FieldMethod, v.Method).
				Str(logging.FieldPath, v.URI).
				Int(logging.FieldStatus, v.Status).
				Dur(logging.FieldDuration, v.Latency.Round(time.Microsecond)).
				Msg("request")
			return nil
		},
	})
}
