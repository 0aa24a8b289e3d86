package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/teamquest/eventstore/oteladapters"
)

func givenCollector() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	t.Fatalf("metric %s not found", name)
	return metricdata.Metrics{}
}

func Test_MetricsCollector_RecordDuration_RecordsSeconds(t *testing.T) {
	// arrange
	collector, reader := givenCollector()

	// act
	collector.RecordDuration(
		"eventstore_query_duration_seconds",
		150*time.Millisecond,
		map[string]string{"operation": "query", "status": "success"},
	)

	// assert
	histogram, ok := findMetric(t, collect(t, reader), "eventstore_query_duration_seconds").Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.15, histogram.DataPoints[0].Sum, 0.001)

	expected := attribute.NewSet(attribute.String("operation", "query"), attribute.String("status", "success"))
	assert.True(t, histogram.DataPoints[0].Attributes.Equals(&expected))
}

func Test_MetricsCollector_IncrementCounter_ReusesInstrument(t *testing.T) {
	// arrange
	collector, reader := givenCollector()
	labels := map[string]string{"operation": "append"}

	// act
	collector.IncrementCounter("eventstore_concurrency_conflicts_total", labels)
	collector.IncrementCounterContext(context.Background(), "eventstore_concurrency_conflicts_total", labels)
	collector.IncrementCounter("eventstore_concurrency_conflicts_total", labels)

	// assert
	sum, ok := findMetric(t, collect(t, reader), "eventstore_concurrency_conflicts_total").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue_KeepsLastValue(t *testing.T) {
	// arrange
	collector, reader := givenCollector()

	// act
	collector.RecordValue("eventstore_events_queried_total", 3, nil)
	collector.RecordValueContext(context.Background(), "eventstore_events_queried_total", 7, nil)

	// assert
	gauge, ok := findMetric(t, collect(t, reader), "eventstore_events_queried_total").Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, float64(7), gauge.DataPoints[0].Value)
}
