package dijkstra

import (
	"context"
	"time"

	"github.com/katalvlaran/mindelay/core"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/mindelay/dijkstra"

// Run outcomes recorded on the runs counter.
const (
	outcomeOK       = "ok"
	outcomeNoPath   = "no_path"
	outcomeCanceled = "canceled"
	outcomeError    = "error"
)

// probe bundles the tracer and instruments used by one run.
type probe struct {
	tracer    trace.Tracer
	runs      metric.Int64Counter
	extracted metric.Int64Counter
	relaxed   metric.Int64Counter
	latency   metric.Float64Histogram
}

// newProbe resolves instruments from the configured providers. An instrument
// that cannot be created degrades to a no-op.
func newProbe(o Options) *probe {
	p := &probe{tracer: o.TracerProvider.Tracer(instrumentationName)}
	m := o.MeterProvider.Meter(instrumentationName)

	var err error
	if p.runs, err = m.Int64Counter(
		"dijkstra_runs_total",
		metric.WithDescription("Total number of shortest-path runs"),
	); err != nil {
		p.runs = noop.Int64Counter{}
	}
	if p.extracted, err = m.Int64Counter(
		"dijkstra_extracted_total",
		metric.WithDescription("Nodes extracted from the priority queue"),
	); err != nil {
		p.extracted = noop.Int64Counter{}
	}
	if p.relaxed, err = m.Int64Counter(
		"dijkstra_relaxed_total",
		metric.WithDescription("Edges examined during relaxation"),
	); err != nil {
		p.relaxed = noop.Int64Counter{}
	}
	if p.latency, err = m.Float64Histogram(
		"dijkstra_run_duration_seconds",
		metric.WithDescription("Duration of shortest-path runs"),
		metric.WithUnit("s"),
	); err != nil {
		p.latency = noop.Float64Histogram{}
	}

	return p
}

// startRunSpan creates the span covering one run.
func (p *probe) startRunSpan(ctx context.Context, source, dest core.NodeID, runID string) (context.Context, trace.Span) {
	return p.tracer.Start(ctx, "dijkstra.ShortestPath",
		trace.WithAttributes(
			attribute.Int64("dijkstra.source", int64(source)),
			attribute.Int64("dijkstra.dest", int64(dest)),
			attribute.String("dijkstra.run_id", runID),
		),
	)
}

// finish records metrics and closes out the span.
func (p *probe) finish(ctx context.Context, span trace.Span, outcome string, st Stats, dur time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	p.runs.Add(ctx, 1, attrs)
	p.extracted.Add(ctx, int64(st.Extracted))
	p.relaxed.Add(ctx, int64(st.Relaxed))
	p.latency.Record(ctx, dur.Seconds(), attrs)

	span.SetAttributes(
		attribute.String("dijkstra.outcome", outcome),
		attribute.Int("dijkstra.extracted", st.Extracted),
		attribute.Int("dijkstra.relaxed", st.Relaxed),
		attribute.Int("dijkstra.improved", st.Improved),
	)
	if err != nil && outcome != outcomeNoPath {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
