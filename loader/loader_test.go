package loader_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/mindelay/core"
	"github.com/katalvlaran/mindelay/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const (
	triangleNodes = "1,router-a\n2,router-b\n3,router-c\n"
	triangleEdges = "1,2,link-a,5\n2,3,link-b,3\n1,3,link-c,100,extra\n"
)

// writeFiles stores nodes and edges contents in a temp dir and returns both paths.
func writeFiles(t *testing.T, nodes, edges string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	np := filepath.Join(dir, "nodes.csv")
	ep := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(np, []byte(nodes), 0o600))
	require.NoError(t, os.WriteFile(ep, []byte(edges), 0o600))
	return np, ep
}

func TestLoadFiles_Triangle(t *testing.T) {
	np, ep := writeFiles(t, triangleNodes, triangleEdges)

	g, err := loader.LoadFiles(context.Background(), np, ep)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3}, g.IDs())
	assert.Equal(t, 3, g.EdgeCount())

	n, ok := g.Node(1)
	require.True(t, ok)
	require.Len(t, n.Edges(), 2)
	assert.Equal(t, core.Weight(5), n.Edges()[0].Weight)
	assert.Equal(t, core.NodeID(3), g.At(n.Edges()[1].To).ID())
	assert.Equal(t, core.Weight(100), n.Edges()[1].Weight)
}

func TestLoadFiles_MissingFiles(t *testing.T) {
	np, ep := writeFiles(t, triangleNodes, triangleEdges)
	missing := filepath.Join(t.TempDir(), "nope.csv")

	_, err := loader.LoadFiles(context.Background(), missing, ep)
	require.ErrorIs(t, err, loader.ErrNodesFile)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.LoadFiles(context.Background(), np, missing)
	require.ErrorIs(t, err, loader.ErrEdgesFile)

	// Both missing: the nodes file is reported first.
	_, err = loader.LoadFiles(context.Background(), missing, missing)
	require.ErrorIs(t, err, loader.ErrNodesFile)
}

func TestLoadFiles_GraphOptions(t *testing.T) {
	np, ep := writeFiles(t, triangleNodes, triangleEdges)

	_, err := loader.LoadFiles(context.Background(), np, ep, loader.WithGraphOptions(core.WithMaxNodes(2)))
	require.ErrorIs(t, err, core.ErrMaxNodesExceeded)

	_, err = loader.LoadFiles(context.Background(), np, ep, loader.WithGraphOptions(core.WithMaxEdges(2)))
	require.ErrorIs(t, err, core.ErrMaxEdgesExceeded)
	var re *loader.RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, re.Line)
}

func TestLoadFiles_SpanAndLog(t *testing.T) {
	np, ep := writeFiles(t, triangleNodes, triangleEdges)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := loader.LoadFiles(context.Background(), np, ep, loader.WithTracerProvider(tp), loader.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, "loader.LoadFiles", sr.Ended()[0].Name())
	assert.Contains(t, buf.String(), "graph loaded")
	assert.Contains(t, buf.String(), "edges=3")

	_, err = loader.LoadFiles(context.Background(), np+".missing", ep, loader.WithTracerProvider(tp))
	require.Error(t, err)
	require.Len(t, sr.Ended(), 2)
	assert.Equal(t, codes.Error, sr.Ended()[1].Status().Code)
}

func TestLoadNodes_SkipsBlankAndComments(t *testing.T) {
	in := "# id,name\n\n7\n   \n8,x\n#9\n"
	g := core.NewGraph()

	n, err := loader.LoadNodes(strings.NewReader(in), g, "nodes")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []core.NodeID{7, 8}, g.IDs())
}

func TestLoadNodes_LastLineWithoutNewline(t *testing.T) {
	g := core.NewGraph()
	n, err := loader.LoadNodes(strings.NewReader("1\n2"), g, "nodes")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLoadNodes_Errors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  error
		line  int
		field int
	}{
		{"not a number", "1\nabc\n", loader.ErrMalformedRecord, 2, 0},
		{"negative", "-4\n", loader.ErrMalformedRecord, 1, 0},
		{"too large", "4294967296\n", loader.ErrMalformedRecord, 1, 0},
		{"empty id", ",x\n", loader.ErrMalformedRecord, 1, 0},
		{"bare quote", "1\n2\"x\n", loader.ErrMalformedRecord, 2, -1},
		{"duplicate", "1\n2\n1\n", core.ErrDuplicateNode, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.LoadNodes(strings.NewReader(tc.in), core.NewGraph(), "nodes.csv")
			require.ErrorIs(t, err, tc.want)

			var re *loader.RecordError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, "nodes.csv", re.Path)
			assert.Equal(t, tc.line, re.Line)
			assert.Equal(t, tc.field, re.Field)
			assert.Contains(t, err.Error(), "nodes.csv:")
		})
	}
}

func TestLoadEdges_Errors(t *testing.T) {
	newGraph := func() *core.Graph {
		g := core.NewGraph()
		for _, id := range []core.NodeID{1, 2} {
			_, _ = g.AddNode(id)
		}
		return g
	}

	cases := []struct {
		name  string
		in    string
		want  error
		field int
	}{
		{"too few fields", "1,2,x\n", loader.ErrMalformedRecord, 3},
		{"bad weight", "1,2,x,fast\n", loader.ErrMalformedRecord, 3},
		{"bad source", "a,2,x,1\n", loader.ErrMalformedRecord, 0},
		{"bad dest", "1,,x,1\n", loader.ErrMalformedRecord, 1},
		{"unknown source", "9,2,x,1\n", core.ErrUnknownNode, 0},
		{"unknown dest", "1,9,x,1\n", core.ErrUnknownDestination, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.LoadEdges(strings.NewReader(tc.in), newGraph(), "edges.csv")
			require.ErrorIs(t, err, tc.want)

			var re *loader.RecordError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, 1, re.Line)
			assert.Equal(t, tc.field, re.Field)
		})
	}
}

func TestLoadEdges_IgnoredFieldsAndSpaces(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{1, 2} {
		_, _ = g.AddNode(id)
	}

	n, err := loader.LoadEdges(strings.NewReader("1, 2, anything at all, 42 ,more,fields\r\n2,1,,0\r\n"), g, "edges")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	src, _ := g.Node(1)
	assert.Equal(t, core.Weight(42), src.Edges()[0].Weight)
}

func TestRecordError_Message(t *testing.T) {
	err := &loader.RecordError{Path: "e.csv", Line: 4, Field: 3, Err: loader.ErrMalformedRecord}
	assert.Equal(t, "loader: e.csv:4: field 3: loader: malformed record", err.Error())

	err = &loader.RecordError{Path: "e.csv", Line: 4, Field: -1, Err: loader.ErrMalformedRecord}
	assert.Equal(t, "loader: e.csv:4: loader: malformed record", err.Error())
	assert.True(t, errors.Is(err, loader.ErrMalformedRecord))
}
