package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// HistorySize is the number of successful latency samples kept per service.
const HistorySize = 3

// Classification is the health state of a monitored service.
type Classification string

const (
	Operational Classification = "OPERATIONAL"
	Degraded    Classification = "DEGRADED"
	Outage      Classification = "OUTAGE"
)

// Valid reports whether c is one of the known classifications.
func (c Classification) Valid() bool {
	switch c {
	case Operational, Degraded, Outage:
		return true
	default:
		return false
	}
}

func (c Classification) String() string { return string(c) }

// ServiceConfig describes one service to monitor. It is loaded once at startup.
type ServiceConfig struct {
	URL                string  `mapstructure:"url"`
	TimeoutThresholdMs float64 `mapstructure:"timeout"`
}

// Validate checks that the service has an absolute http(s) URL and a positive
// latency threshold.
func (c ServiceConfig) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidService)
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidService, c.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidService, c.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q: host is required", ErrInvalidService, c.URL)
	}
	if c.TimeoutThresholdMs <= 0 {
		return fmt.Errorf("%w: %q: timeout must be > 0", ErrInvalidService, c.URL)
	}
	return nil
}

// ServiceState is a point-in-time copy of a service's rolling state.
type ServiceState struct {
	URL                string
	Classification     Classification
	LatencyHistory     []float64
	TimeoutThresholdMs float64
}

// AverageMs returns the mean of the latency history, or 0 when it is empty.
func (s ServiceState) AverageMs() float64 {
	return Mean(s.LatencyHistory)
}

// Mean returns the arithmetic mean of samples, or 0 for an empty slice.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// Outcome is the result of a single probe. A failed probe is not an error
// condition for the caller; it drives the service to OUTAGE.
type Outcome struct {
	Success    bool
	LatencyMs  float64
	StatusCode int
	Err        error
}

// Succeeded returns a successful outcome with the measured time-to-first-byte.
func Succeeded(latencyMs float64, statusCode int) Outcome {
	return Outcome{Success: true, LatencyMs: latencyMs, StatusCode: statusCode}
}

// Failed returns a failed outcome. statusCode is 0 for transport errors.
func Failed(statusCode int, err error) Outcome {
	return Outcome{StatusCode: statusCode, Err: err}
}

// Reason returns a short human readable explanation of a failed outcome.
func (o Outcome) Reason() string {
	switch {
	case o.Success:
		return ""
	case o.Err != nil:
		return o.Err.Error()
	case o.StatusCode != 0:
		return fmt.Sprintf("unexpected status %d", o.StatusCode)
	default:
		return "no response"
	}
}

// Transition records a classification change of a service.
type Transition struct {
	URL       string
	From      Classification
	To        Classification
	AverageMs float64
	At        time.Time
}

// StatusMessage formats the notification text for a classification change.
func StatusMessage(url string, c Classification) string {
	return fmt.Sprintf("Service %s\n%s", c, url)
}
