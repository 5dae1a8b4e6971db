// Package telemetry provides OpenTelemetry initialization for beacon.
// Traces and metrics are exported over OTLP/HTTP; logs stay in zerolog.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config holds telemetry configuration.
type Config struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoint        string        `mapstructure:"endpoint"`          // e.g. "http://localhost:4318"
	AuthToken       string        `mapstructure:"auth_token"`        // base64 user:pass, sent as Basic auth
	Traces          bool          `mapstructure:"traces"`            // export one span per probe
	Metrics         bool          `mapstructure:"metrics"`           // export probe/notify counters
	TraceSampleRate float64       `mapstructure:"trace_sample_rate"` // 0 never, (0,1) ratio, >=1 always
	ExportInterval  time.Duration `mapstructure:"export_interval"`   // metric push period, default 60s
}

// Shutdown flushes and stops the providers.
type Shutdown func(context.Context) error

// target is the parsed OTLP endpoint shared by both exporters.
type target struct {
	host     string
	basePath string
	insecure bool
	headers  map[string]string
}

func (t target) path(signal string) string {
	return t.basePath + "/v1/" + signal
}

// Setup installs global tracer and meter providers according to cfg. When
// telemetry is disabled it installs nothing and returns a no-op shutdown.
func Setup(ctx context.Context, cfg Config, serviceName, version string) (Shutdown, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled || cfg.Endpoint == "" || (!cfg.Traces && !cfg.Metrics) {
		return noop, nil
	}

	tgt, err := parseTarget(cfg.Endpoint, cfg.AuthToken)
	if err != nil {
		return noop, err
	}

	res, err := newResource(ctx, serviceName, version)
	if err != nil {
		return noop, err
	}

	var shutdowns []Shutdown

	if cfg.Traces {
		tp, err := newTracerProvider(ctx, tgt, res, cfg.TraceSampleRate)
		if err != nil {
			return noop, err
		}
		otel.SetTracerProvider(tp)
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	if cfg.Metrics {
		mp, err := newMeterProvider(ctx, tgt, res, cfg.ExportInterval)
		if err != nil {
			for _, fn := range shutdowns {
				_ = fn(ctx)
			}
			return noop, err
		}
		otel.SetMeterProvider(mp)
		shutdowns = append(shutdowns, mp.Shutdown)
	}

	return func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}, nil
}

func parseTarget(endpoint, authToken string) (target, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return target{}, fmt.Errorf("parse telemetry endpoint: %w", err)
	}
	if u.Host == "" {
		return target{}, fmt.Errorf("telemetry endpoint %q has no host", endpoint)
	}

	headers := map[string]string{}
	if authToken != "" {
		headers["Authorization"] = "Basic " + authToken
	}

	return target{
		host:     u.Host,
		basePath: strings.TrimSuffix(u.Path, "/"),
		insecure: u.Scheme == "http",
		headers:  headers,
	}, nil
}

func newResource(ctx context.Context, serviceName, version string) (*resource.Resource, error) {
	attrs := []resource.Option{
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
		resource.WithOS(),
	}
	if host, err := os.Hostname(); err == nil {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceInstanceID(host)))
	}

	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

func newTracerProvider(ctx context.Context, tgt target, res *resource.Resource, sampleRate float64) (*sdktrace.TracerProvider, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(tgt.host),
		otlptracehttp.WithHeaders(tgt.headers),
		otlptracehttp.WithURLPath(tgt.path("traces")),
	}
	if tgt.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(sampleRate)),
	), nil
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate < 1:
		return sdktrace.TraceIDRatioBased(rate)
	default:
		return sdktrace.AlwaysSample()
	}
}

func newMeterProvider(ctx context.Context, tgt target, res *resource.Resource, interval time.Duration) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(tgt.host),
		otlpmetrichttp.WithHeaders(tgt.headers),
		otlpmetrichttp.WithURLPath(tgt.path("metrics")),
	}
	if tgt.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(interval))
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, readerOpts...)),
		sdkmetric.WithResource(res),
	), nil
}
