// Package telemetry builds the OpenTelemetry tracer and meter providers used
// by a mindelay run.
//
// Exporters:
//
//   - trace  "stdout":     spans as JSON on the diagnostic writer (stderr in the CLI).
//   - metric "stdout":     metrics as JSON on the diagnostic writer at shutdown.
//   - metric "prometheus": metrics gathered into a private registry and written
//     in text exposition format to a node-exporter textfile at shutdown.
//   - "none":              no-op providers.
//
// The providers are returned rather than installed globally; callers hand them
// to the packages that record telemetry.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mindelay/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// ServiceName identifies mindelay in exported telemetry.
const ServiceName = "mindelay"

// Sentinel errors for telemetry setup.
var (
	// ErrNilContext indicates Init was called with a nil context.
	ErrNilContext = errors.New("telemetry: context is nil")

	// ErrUnknownExporter indicates an exporter name Init does not support.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")
)

// Providers holds the configured providers and their cleanup.
type Providers struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	shutdownFuncs []func(context.Context) error
}

// Shutdown flushes and stops every exporter, in setup order. It returns all
// errors joined.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdownFuncs {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.shutdownFuncs = nil
	return errors.Join(errs...)
}

// Init builds providers for cfg. Diagnostic exporters write to w.
//
// Example:
//
//	p, err := telemetry.Init(ctx, cfg.Telemetry, os.Stderr)
//	if err != nil {
//	    return fmt.Errorf("init telemetry: %w", err)
//	}
//	defer p.Shutdown(context.Background())
func Init(ctx context.Context, cfg config.TelemetryConfig, w io.Writer) (*Providers, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	res := resource.NewWithAttributes("", attribute.String("service.name", ServiceName))
	p := &Providers{
		TracerProvider: tracenoop.NewTracerProvider(),
		MeterProvider:  metricnoop.NewMeterProvider(),
	}

	switch cfg.Trace {
	case "", "none":
	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		p.TracerProvider = tp
		p.shutdownFuncs = append(p.shutdownFuncs, tp.Shutdown)
	default:
		return nil, fmt.Errorf("%w: trace %q", ErrUnknownExporter, cfg.Trace)
	}

	switch cfg.Metric {
	case "", "none":
	case "stdout":
		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
		if err != nil {
			_ = p.Shutdown(ctx)
			return nil, fmt.Errorf("telemetry: create metric exporter: %w", err)
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		)
		p.MeterProvider = mp
		p.shutdownFuncs = append(p.shutdownFuncs, mp.Shutdown)
	case "prometheus":
		reg := prometheus.NewRegistry()
		exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
		if err != nil {
			_ = p.Shutdown(ctx)
			return nil, fmt.Errorf("telemetry: create prometheus exporter: %w", err)
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)
		p.MeterProvider = mp

		// The registry gathers through the reader, so it must be written
		// before the provider shuts down.
		path := cfg.TextfilePath
		p.shutdownFuncs = append(p.shutdownFuncs,
			func(context.Context) error {
				if err := prometheus.WriteToTextfile(path, reg); err != nil {
					return fmt.Errorf("telemetry: write textfile: %w", err)
				}
				return nil
			},
			mp.Shutdown,
		)
	default:
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("%w: metric %q", ErrUnknownExporter, cfg.Metric)
	}

	return p, nil
}
