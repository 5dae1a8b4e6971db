package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/bnema/beacon/internal/boundaries/out/mocks"
	"github.com/bnema/beacon/internal/domain"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		_ = provider.Shutdown(context.Background())
	})

	m, err := NewMetrics()
	require.NoError(t, err)
	return m, reader
}

func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestInstrumentNotifier_CountsOutcomes(t *testing.T) {
	m, reader := newTestMetrics(t)

	inner := mocks.NewMockNotifier(t)
	inner.EXPECT().Notify(mock.Anything, "https://a.example.com", domain.Outage).Return(nil).Once()
	inner.EXPECT().Notify(mock.Anything, "https://a.example.com", domain.Operational).Return(errors.New("down")).Once()

	n := InstrumentNotifier(inner, m)
	require.NoError(t, n.Notify(context.Background(), "https://a.example.com", domain.Outage))
	require.Error(t, n.Notify(context.Background(), "https://a.example.com", domain.Operational))

	assert.Equal(t, int64(1), counterValue(t, reader, "beacon.notify.sent"))
	assert.Equal(t, int64(1), counterValue(t, reader, "beacon.notify.failed"))
}

func TestInstrumentNotifier_NilMetricsReturnsInner(t *testing.T) {
	inner := mocks.NewMockNotifier(t)
	assert.Same(t, inner, InstrumentNotifier(inner, nil))
}

func TestTransitionRecorder(t *testing.T) {
	m, reader := newTestMetrics(t)
	r := NewTransitionRecorder(m)

	assert.True(t, r.CanHandle(domain.EventStatusChanged))

	event := domain.Event{
		Type: domain.EventStatusChanged,
		Data: domain.StatusChangedPayload{Transition: domain.Transition{
			URL: "https://a.example.com", From: domain.Operational, To: domain.Degraded,
		}},
	}
	require.NoError(t, r.Handle(context.Background(), event))
	require.NoError(t, r.Handle(context.Background(), domain.Event{Type: domain.EventStatusChanged, Data: "ignored"}))

	assert.Equal(t, int64(1), counterValue(t, reader, "beacon.status.transitions"))
}
