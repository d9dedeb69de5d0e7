package dijkstra_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mindelay/core"
	"github.com/katalvlaran/mindelay/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	return sr, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestShortestPath_Span(t *testing.T) {
	sr, tp := newRecorder()

	_, err := dijkstra.ShortestPath(context.Background(), buildTriangle(t), 1, 3,
		dijkstra.WithTracerProvider(tp), dijkstra.WithRunID("r1"))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "dijkstra.ShortestPath", span.Name())
	assert.NotEqual(t, codes.Error, span.Status().Code)

	v, ok := spanAttr(span, "dijkstra.outcome")
	require.True(t, ok)
	assert.Equal(t, "ok", v.AsString())

	v, ok = spanAttr(span, "dijkstra.run_id")
	require.True(t, ok)
	assert.Equal(t, "r1", v.AsString())

	v, ok = spanAttr(span, "dijkstra.extracted")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsInt64())
}

func TestShortestPath_SpanNoPathIsNotAnError(t *testing.T) {
	sr, tp := newRecorder()

	_, err := dijkstra.ShortestPath(context.Background(), buildTriangle(t), 3, 1, dijkstra.WithTracerProvider(tp))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	v, _ := spanAttr(spans[0], "dijkstra.outcome")
	assert.Equal(t, "no_path", v.AsString())
}

func TestShortestPath_SpanCanceledIsAnError(t *testing.T) {
	sr, tp := newRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.ShortestPath(ctx, buildTriangle(t), 1, 3, dijkstra.WithTracerProvider(tp))
	require.ErrorIs(t, err, context.Canceled)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestShortestPath_ValidationOpensNoSpan(t *testing.T) {
	sr, tp := newRecorder()

	_, err := dijkstra.ShortestPath(context.Background(), buildTriangle(t), 1, 42, dijkstra.WithTracerProvider(tp))
	require.ErrorIs(t, err, dijkstra.ErrInvalidDest)
	assert.Empty(t, sr.Ended())
}

func TestShortestPath_Metrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	ctx := context.Background()
	g := buildTriangle(t)

	for _, pair := range [][2]core.NodeID{{1, 3}, {3, 1}, {1, 2}} {
		_, _ = dijkstra.ShortestPath(ctx, g, pair[0], pair[1], dijkstra.WithMeterProvider(mp))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	runs := map[string]int64{}
	var histCount uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case "dijkstra_runs_total":
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				for _, dp := range sum.DataPoints {
					outcome, _ := dp.Attributes.Value("outcome")
					runs[outcome.AsString()] += dp.Value
				}
			case "dijkstra_run_duration_seconds":
				h, ok := m.Data.(metricdata.Histogram[float64])
				require.True(t, ok)
				for _, dp := range h.DataPoints {
					histCount += dp.Count
				}
			}
		}
	}

	assert.Equal(t, map[string]int64{"ok": 2, "no_path": 1}, runs)
	assert.Equal(t, uint64(3), histCount)
}
