// Command mindelay prints the minimum-delay path between two nodes of a graph
// as a Graphviz DOT digraph.
//
//	mindelay [flags] <nodesFile> <edgesFile> <sourceId> <destId> [outputFile]
//
// On failure it prints exactly one line to stderr and exits with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mindelay/internal/app"
	"github.com/katalvlaran/mindelay/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds command-line overrides. Empty strings leave the config value.
type flags struct {
	configPath     string
	logLevel       string
	logFormat      string
	traceExporter  string
	metricExporter string
}

// execute runs the command with args and returns the process exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var logger *slog.Logger
	cmd := newRootCmd(stdout, stderr, &logger)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// Everything RunE returns is classified; anything else is a flag error
	// raised by cobra itself.
	var ae *app.Error
	if !errors.As(err, &ae) {
		ae = &app.Error{Kind: app.KindInvalidParameters, Err: err}
	}
	if logger != nil {
		logger.Debug("run failed", slog.String("kind", ae.Kind.String()), slog.Any("error", err))
	}
	fmt.Fprintln(stderr, ae.Kind.Message())

	return app.ExitCode(ae)
}

// newRootCmd builds the cobra command. logger receives the process logger
// once configuration has been resolved.
func newRootCmd(stdout, stderr io.Writer, logger **slog.Logger) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "mindelay [flags] <nodesFile> <edgesFile> <sourceId> <destId> [outputFile]",
		Short: "Find the minimum-delay path between two nodes",
		Long: `mindelay loads a directed graph from two CSV files and prints the
shortest path between two nodes in Graphviz DOT format.

  nodes file: <id>[,...]                     one node per line
  edges file: <source>,<dest>,<any>,<delay>  one directed edge per line

The path is written to outputFile, or to stdout when it is omitted.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 4 || len(args) > 5 {
				return &app.Error{
					Kind: app.KindInvalidParameters,
					Err:  fmt.Errorf("want 4 or 5 arguments, got %d", len(args)),
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return &app.Error{Kind: app.KindConfig, Err: err}
			}
			*logger = app.NewLogger(cfg.Log, stderr)

			req := app.Request{
				NodesPath: args[0],
				EdgesPath: args[1],
				Source:    args[2],
				Dest:      args[3],
			}
			if len(args) == 5 {
				req.OutputPath = args[4]
			}

			return app.Run(cmd.Context(), req, cfg, app.Env{
				Stdout:      stdout,
				Diagnostics: stderr,
				Logger:      *logger,
			})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	// Flags go before the first positional; after it "-1" is an id, not a flag.
	fs.SetInterspersed(false)
	fs.StringVar(&f.configPath, "config", "", "path to a YAML configuration file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json, auto")
	fs.StringVar(&f.traceExporter, "trace-exporter", "", "trace exporter: none, stdout")
	fs.StringVar(&f.metricExporter, "metric-exporter", "", "metric exporter: none, stdout, prometheus")

	return cmd
}

// resolveConfig loads the config file and applies flag overrides on top.
func resolveConfig(f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if f.traceExporter != "" {
		cfg.Telemetry.Trace = f.traceExporter
	}
	if f.metricExporter != "" {
		cfg.Telemetry.Metric = f.metricExporter
	}

	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
