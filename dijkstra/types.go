// Package dijkstra defines result types, sentinel errors and configuration
// options for the single-pair shortest-path engine.
//
// Options:
//
//	– Logger:          *slog.Logger receiving Debug-level run summaries (discarded by default).
//	– RunID:           correlation id attached to logs and spans.
//	– CheckInvariants: validate the heap after every mutation (debug aid, O(V) per step).
//	– TracerProvider / MeterProvider: OpenTelemetry providers (globals by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrInvalidSource if the source id is not in the graph.
//	– ErrInvalidDest   if the destination id is not in the graph.
//	– ErrNoPath        if the destination is unreachable from the source.
//	– ErrBrokenChain   if the predecessor chain does not lead back to the source.
package dijkstra

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/mindelay/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source id does not exist in the graph.
	ErrInvalidSource = errors.New("dijkstra: source node not found in graph")

	// ErrInvalidDest indicates that the destination id does not exist in the graph.
	ErrInvalidDest = errors.New("dijkstra: destination node not found in graph")

	// ErrNoPath indicates that no path leads from the source to the destination.
	ErrNoPath = errors.New("dijkstra: destination unreachable from source")

	// ErrBrokenChain indicates that following predecessor links from the
	// destination did not reach the source.
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach source")
)

// Hop is one edge of a reconstructed path.
type Hop struct {
	From   core.NodeID
	To     core.NodeID
	Weight core.Distance // distance(To) − distance(From)
}

// Stats counts the work done by one run.
type Stats struct {
	Extracted int // nodes removed from the heap
	Relaxed   int // edges examined
	Improved  int // successful decrease-key operations
}

// Path is the result of a successful run: the hops from Source to Dest in
// travel order and the total distance. Hops is empty when Source == Dest.
type Path struct {
	Source   core.NodeID
	Dest     core.NodeID
	Distance core.Distance
	Hops     []Hop
	Stats    Stats
}

// Nodes returns the node ids visited by the path, Source first.
func (p *Path) Nodes() []core.NodeID {
	ids := make([]core.NodeID, 0, len(p.Hops)+1)
	ids = append(ids, p.Source)
	for _, h := range p.Hops {
		ids = append(ids, h.To)
	}
	return ids
}

// Options configures a run.
type Options struct {
	Logger          *slog.Logger
	RunID           string
	CheckInvariants bool
	TracerProvider  trace.TracerProvider
	MeterProvider   metric.MeterProvider
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithLogger routes Debug-level run summaries to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID tags logs and spans of the run with id.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithInvariantChecks validates the heap after every mutation and fails the run
// on the first violation.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// DefaultOptions returns Options with a discarding logger, no invariant checks
// and the global OpenTelemetry providers.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.New(slog.DiscardHandler),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}
}
