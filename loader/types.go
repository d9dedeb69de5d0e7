// SPDX-License-Identifier: MIT
//
// Package loader reads the nodes and edges files that describe a delay graph
// and populates a core.Graph from them.
//
// File formats (comma-separated, one record per line):
//
//	nodes: <id>[,<ignored>...]
//	edges: <source>,<dest>,<ignored>,<weight>[,<ignored>...]
//
// Ids and weights are unsigned 32-bit decimal integers. Blank lines are
// skipped and lines starting with '#' are comments. Any other record that
// does not parse is rejected with a *RecordError naming the file and line.
//
// Errors (sentinel):
//
//	– ErrNodesFile       the nodes file could not be opened.
//	– ErrEdgesFile       the edges file could not be opened.
//	– ErrMalformedRecord a record is missing a field or a field is not a number.
//
// Graph errors (core.ErrDuplicateNode, core.ErrUnknownNode,
// core.ErrMax*Exceeded) are wrapped in *RecordError as well.
package loader

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mindelay/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors for loader operations.
var (
	// ErrNodesFile indicates the nodes file could not be opened.
	ErrNodesFile = errors.New("loader: cannot open nodes file")

	// ErrEdgesFile indicates the edges file could not be opened.
	ErrEdgesFile = errors.New("loader: cannot open edges file")

	// ErrMalformedRecord indicates a record that does not match the file format.
	ErrMalformedRecord = errors.New("loader: malformed record")
)

// Column layout of the input files.
const (
	nodeIDField     = 0
	edgeSourceField = 0
	edgeDestField   = 1
	edgeWeightField = 3
)

// RecordError locates a failure inside an input file.
// Field is the zero-based column, or -1 when the whole record is at fault.
type RecordError struct {
	Path  string
	Line  int
	Field int
	Err   error
}

// Error implements error.
func (e *RecordError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("loader: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("loader: %s:%d: field %d: %v", e.Path, e.Line, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RecordError) Unwrap() error { return e.Err }

// Options configures LoadFiles.
type Options struct {
	GraphOptions   []core.GraphOption
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Option represents a functional option for LoadFiles.
type Option func(*Options)

// WithGraphOptions forwards opts to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) {
		o.GraphOptions = append(o.GraphOptions, opts...)
	}
}

// WithLogger receives Debug-level load summaries. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
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

// DefaultOptions returns Options with a discarding logger and the global
// tracer provider.
func DefaultOptions() Options {
	return Options{
		Logger:         slog.New(slog.DiscardHandler),
		TracerProvider: otel.GetTracerProvider(),
	}
}
