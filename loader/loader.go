package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mindelay/core"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const instrumentationName = "github.com/katalvlaran/mindelay/loader"

// LoadFiles opens both files, builds a new graph with the configured options
// and loads nodes first, then edges. The files are closed before returning.
//
// Errors: ErrNodesFile / ErrEdgesFile wrapping the open failure, otherwise
// whatever LoadNodes or LoadEdges returned.
func LoadFiles(ctx context.Context, nodesPath, edgesPath string, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := cfg.TracerProvider.Tracer(instrumentationName).Start(ctx, "loader.LoadFiles")
	defer span.End()

	g, err := loadFiles(nodesPath, edgesPath, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("graph.nodes", g.Len()),
		attribute.Int("graph.edges", g.EdgeCount()),
	)
	cfg.Logger.DebugContext(ctx, "graph loaded",
		slog.String("nodes_file", nodesPath),
		slog.String("edges_file", edgesPath),
		slog.Int("nodes", g.Len()),
		slog.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

func loadFiles(nodesPath, edgesPath string, cfg Options) (*core.Graph, error) {
	nodes, err := os.Open(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNodesFile, err)
	}
	defer nodes.Close()

	edges, err := os.Open(edgesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEdgesFile, err)
	}
	defer edges.Close()

	g := core.NewGraph(cfg.GraphOptions...)
	if _, err = LoadNodes(nodes, g, nodesPath); err != nil {
		return nil, err
	}
	if _, err = LoadEdges(edges, g, edgesPath); err != nil {
		return nil, err
	}

	return g, nil
}

// LoadNodes adds one node per record of r to g and returns how many were
// added. name labels errors.
func LoadNodes(r io.Reader, g *core.Graph, name string) (int, error) {
	count := 0
	err := eachRecord(r, name, nodeIDField+1, func(line int, rec []string) error {
		id, err := parseUint32(name, line, nodeIDField, rec)
		if err != nil {
			return err
		}
		if _, err = g.AddNode(core.NodeID(id)); err != nil {
			return &RecordError{Path: name, Line: line, Field: nodeIDField, Err: err}
		}
		count++
		return nil
	})

	return count, err
}

// LoadEdges adds one edge per record of r to g and returns how many were
// added. Both endpoints must already be in g. name labels errors.
func LoadEdges(r io.Reader, g *core.Graph, name string) (int, error) {
	count := 0
	err := eachRecord(r, name, edgeWeightField+1, func(line int, rec []string) error {
		from, err := parseUint32(name, line, edgeSourceField, rec)
		if err != nil {
			return err
		}
		to, err := parseUint32(name, line, edgeDestField, rec)
		if err != nil {
			return err
		}
		w, err := parseUint32(name, line, edgeWeightField, rec)
		if err != nil {
			return err
		}

		if err = g.AddEdge(core.NodeID(from), core.NodeID(to), core.Weight(w)); err != nil {
			field := -1
			switch {
			case errors.Is(err, core.ErrUnknownSource):
				field = edgeSourceField
			case errors.Is(err, core.ErrUnknownDestination):
				field = edgeDestField
			}
			return &RecordError{Path: name, Line: line, Field: field, Err: err}
		}
		count++
		return nil
	})

	return count, err
}

// eachRecord calls fn for every non-blank, non-comment record of r that has at
// least minFields fields.
func eachRecord(r io.Reader, name string, minFields int, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return &RecordError{Path: name, Line: pe.Line, Field: -1, Err: fmt.Errorf("%w: %w", ErrMalformedRecord, pe.Err)}
			}
			return &RecordError{Path: name, Field: -1, Err: err}
		}

		// Whitespace-only lines count as blank.
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(rec) < minFields {
			return &RecordError{
				Path:  name,
				Line:  line,
				Field: len(rec),
				Err:   fmt.Errorf("%w: want at least %d fields, got %d", ErrMalformedRecord, minFields, len(rec)),
			}
		}
		if err = fn(line, rec); err != nil {
			return err
		}
	}
}

// parseUint32 parses rec[field] as a decimal uint32.
func parseUint32(name string, line, field int, rec []string) (uint32, error) {
	s := strings.TrimSpace(rec[field])
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &RecordError{Path: name, Line: line, Field: field, Err: fmt.Errorf("%w: %q is not an unsigned 32-bit integer", ErrMalformedRecord, s)}
	}
	return uint32(v), nil
}
