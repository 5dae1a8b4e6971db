// Package httpprober performs single-shot HTTP health probes.
package httpprober

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/beacon/internal/adapters/out/telemetry"
	"github.com/bnema/beacon/internal/domain"
)

// DefaultUserAgent is sent with every probe unless overridden.
const DefaultUserAgent = "beacon-monitor/1.0"

// maxDrainBytes bounds how much of a response body is read before closing it.
const maxDrainBytes = 64 << 10

// Prober implements out.HTTPProber. Redirects are followed and the probe
// succeeds only when the final response is HTTP 200. The reported latency is
// the time from request start to the first byte of the final response.
type Prober struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	metrics   *telemetry.Metrics
	tracer    trace.Tracer
	nowFn     func() time.Time
}

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout bounds each probe. Zero leaves the HTTP client default (no limit).
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithMetrics records probe counts and latency.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(p *Prober) {
		p.metrics = m
	}
}

// New creates a new HTTP prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		userAgent: DefaultUserAgent,
		tracer:    otel.Tracer("beacon/httpprober"),
		nowFn:     time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = &http.Client{
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		}
	}

	return p
}

// Probe sends one GET request. It never retries and never returns an error:
// a non-200 status, a transport error or a timeout is a failed outcome.
func (p *Prober) Probe(ctx context.Context, url string) domain.Outcome {
	ctx, span := p.tracer.Start(ctx, "probe", trace.WithAttributes(attribute.String("url.full", url)))
	defer span.End()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	outcome := p.do(ctx, url)

	span.SetAttributes(attribute.Int("http.response.status_code", outcome.StatusCode))
	if outcome.Success {
		span.SetAttributes(attribute.Float64("beacon.ttfb_ms", outcome.LatencyMs))
	} else {
		span.SetStatus(codes.Error, outcome.Reason())
	}
	p.record(ctx, url, outcome)

	return outcome
}

func (p *Prober) do(ctx context.Context, url string) domain.Outcome {
	var start, firstByte time.Time
	ct := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			firstByte = p.nowFn()
		},
	}

	req, err := http.NewRequestWithContext(httptrace.WithClientTrace(ctx, ct), http.MethodGet, url, nil)
	if err != nil {
		return domain.Failed(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", p.userAgent)

	start = p.nowFn()
	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Failed(0, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode != http.StatusOK {
		return domain.Failed(resp.StatusCode, nil)
	}

	// Transports that never fire the trace hook fall back to header arrival.
	if firstByte.IsZero() {
		firstByte = p.nowFn()
	}

	return domain.Succeeded(float64(firstByte.Sub(start).Microseconds())/1000, resp.StatusCode)
}

func (p *Prober) record(ctx context.Context, url string, outcome domain.Outcome) {
	if p.metrics == nil {
		return
	}

	result := "success"
	if !outcome.Success {
		result = "failure"
	}
	p.metrics.ProbesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", url),
		attribute.String("result", result),
	))
	if outcome.Success {
		p.metrics.ProbeLatency.Record(ctx, outcome.LatencyMs, metric.WithAttributes(
			attribute.String("service", url),
		))
	}
}
