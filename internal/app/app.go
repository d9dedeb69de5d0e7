// Package app wires loading, routing and output into a single mindelay run
// and classifies every failure into a user-facing Kind.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/mindelay/bfs"
	"github.com/katalvlaran/mindelay/core"
	"github.com/katalvlaran/mindelay/dijkstra"
	"github.com/katalvlaran/mindelay/dot"
	"github.com/katalvlaran/mindelay/internal/config"
	"github.com/katalvlaran/mindelay/internal/telemetry"
	"github.com/katalvlaran/mindelay/loader"
)

// Request names the inputs of one run. Source and Dest are the raw
// command-line arguments; OutputPath empty means Env.Stdout.
type Request struct {
	NodesPath  string
	EdgesPath  string
	Source     string
	Dest       string
	OutputPath string
}

// Env carries the process resources a run writes to.
type Env struct {
	Stdout      io.Writer    // DOT output when Request.OutputPath is empty
	Diagnostics io.Writer    // stdout telemetry exporters
	Logger      *slog.Logger // nil discards
	RunID       string       // empty generates one
}

// Run loads the graph, computes the shortest path and writes it as DOT.
// Any returned error is an *Error. The output file is created only once a
// path has been found.
func Run(ctx context.Context, req Request, cfg config.Config, env Env) error {
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Logger == nil {
		env.Logger = slog.New(slog.DiscardHandler)
	}
	if env.RunID == "" {
		env.RunID = uuid.NewString()[:12]
	}
	if env.Diagnostics == nil {
		env.Diagnostics = io.Discard
	}
	logger := env.Logger.With(slog.String("run_id", env.RunID))

	tel, err := telemetry.Init(ctx, cfg.Telemetry, env.Diagnostics)
	if err != nil {
		return newError(KindConfig, err)
	}
	defer func() {
		if serr := tel.Shutdown(context.WithoutCancel(ctx)); serr != nil {
			logger.Debug("telemetry shutdown failed", slog.Any("error", serr))
		}
	}()

	path, err := route(ctx, req, cfg, tel, logger, env.RunID)
	if err != nil {
		return Classify(err)
	}

	if err = emit(req.OutputPath, env.Stdout, path, cfg.Output.GraphName); err != nil {
		return Classify(err)
	}

	logger.Info("shortest path written",
		slog.Uint64("source", uint64(path.Source)),
		slog.Uint64("dest", uint64(path.Dest)),
		slog.Uint64("distance", uint64(path.Distance)),
		slog.Int("hops", len(path.Hops)),
	)
	return nil
}

// route loads the graph and runs the engine. Destination problems are
// reported before source problems.
func route(ctx context.Context, req Request, cfg config.Config, tel *telemetry.Providers, logger *slog.Logger, runID string) (*dijkstra.Path, error) {
	var graphOpts []core.GraphOption
	if cfg.Limits.MaxNodes > 0 {
		graphOpts = append(graphOpts, core.WithMaxNodes(cfg.Limits.MaxNodes))
	}
	if cfg.Limits.MaxEdges > 0 {
		graphOpts = append(graphOpts, core.WithMaxEdges(cfg.Limits.MaxEdges))
	}

	g, err := loader.LoadFiles(ctx, req.NodesPath, req.EdgesPath,
		loader.WithGraphOptions(graphOpts...),
		loader.WithLogger(logger),
		loader.WithTracerProvider(tel.TracerProvider),
	)
	if err != nil {
		return nil, err
	}

	dest, err := parseID(req.Dest)
	if err != nil || !g.HasNode(dest) {
		return nil, newError(KindInvalidDest, fmt.Errorf("%w: %q", dijkstra.ErrInvalidDest, req.Dest))
	}
	source, err := parseID(req.Source)
	if err != nil {
		return nil, newError(KindInvalidSource, fmt.Errorf("%w: %q", dijkstra.ErrInvalidSource, req.Source))
	}

	opts := []dijkstra.Option{
		dijkstra.WithLogger(logger),
		dijkstra.WithRunID(runID),
		dijkstra.WithTracerProvider(tel.TracerProvider),
		dijkstra.WithMeterProvider(tel.MeterProvider),
	}
	if cfg.Engine.CheckInvariants {
		opts = append(opts, dijkstra.WithInvariantChecks())
	}

	path, err := dijkstra.ShortestPath(ctx, g, source, dest, opts...)
	if errors.Is(err, dijkstra.ErrNoPath) && logger.Enabled(ctx, slog.LevelDebug) {
		logReachable(ctx, g, source, logger)
	}
	return path, err
}

// logReachable reports how much of the graph the source can reach at all.
func logReachable(ctx context.Context, g *core.Graph, source core.NodeID, logger *slog.Logger) {
	res, err := bfs.BFS(g, source, bfs.WithContext(ctx))
	if err != nil {
		return
	}
	logger.Debug("destination unreachable",
		slog.Uint64("source", uint64(source)),
		slog.Int("reachable", len(res.Order)-1),
		slog.Int("nodes", g.Len()),
	)
}

// emit writes p to outputPath, or to stdout when outputPath is empty.
func emit(outputPath string, stdout io.Writer, p *dijkstra.Path, name string) (err error) {
	if outputPath == "" {
		if err = dot.Write(stdout, p, dot.WithName(name)); err != nil {
			return newError(KindOutputWrite, err)
		}
		return nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return newError(KindOutputCreation, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(KindOutputWrite, cerr)
		}
	}()

	if err = dot.Write(f, p, dot.WithName(name)); err != nil {
		return newError(KindOutputWrite, err)
	}
	return nil
}

// parseID parses a decimal node id argument.
func parseID(s string) (core.NodeID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return core.NodeID(v), nil
}
