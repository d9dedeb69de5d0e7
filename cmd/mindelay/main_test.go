package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inputs writes a small graph and returns the nodes and edges paths.
func inputs(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.csv")
	edges := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(nodes, []byte("1\n2\n3\n4\n"), 0o600))
	require.NoError(t, os.WriteFile(edges, []byte("1,2,a,5\n2,3,b,3\n1,3,c,100\n"), 0o600))
	return nodes, edges
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_Success(t *testing.T) {
	nodes, edges := inputs(t)

	code, out, errOut := runCLI(nodes, edges, "1", "3")
	assert.Equal(t, 0, code)
	assert.Equal(t, "digraph {\n\t1 -> 2 [label=5];\n\t2 -> 3 [label=3];\n}\n", out)
	assert.Empty(t, errOut)
}

func TestExecute_OutputFile(t *testing.T) {
	nodes, edges := inputs(t)
	outPath := filepath.Join(t.TempDir(), "path.dot")

	code, out, _ := runCLI(nodes, edges, "1", "3", outPath)
	require.Equal(t, 0, code)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2 -> 3 [label=3];")
}

func TestExecute_OneStderrLine(t *testing.T) {
	nodes, edges := inputs(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "Invalid number of parameters."},
		{"too few", []string{nodes, edges, "1"}, "Invalid number of parameters."},
		{"too many", []string{nodes, edges, "1", "3", "out", "extra"}, "Invalid number of parameters."},
		{"unknown flag", []string{"--bogus", nodes, edges, "1", "3"}, "Invalid number of parameters."},
		{"missing nodes", []string{nodes + ".x", edges, "1", "3"}, "Cannot open nodes file. No such file or directory."},
		{"missing edges", []string{nodes, edges + ".x", "1", "3"}, "Cannot open edges file. No such file or directory."},
		{"bad dest", []string{nodes, edges, "1", "9"}, "Invalid destination node id."},
		{"bad source", []string{nodes, edges, "9", "3"}, "Invalid source node id."},
		{"negative source", []string{nodes, edges, "-1", "3"}, "Invalid source node id."},
		{"negative dest", []string{nodes, edges, "1", "-3"}, "Invalid destination node id."},
		{"flag after positional", []string{nodes, edges, "1", "3", "--log-level", "debug"}, "Invalid number of parameters."},
		{"no path", []string{nodes, edges, "1", "4"}, "No path exists between these two nodes."},
		{"bad config flag", []string{"--log-level", "loud", nodes, edges, "1", "3"}, "Invalid configuration."},
		{"missing config file", []string{"--config", nodes + ".yaml", nodes, edges, "1", "3"}, "Invalid configuration."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(tc.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Equal(t, tc.want+"\n", errOut)
		})
	}
}

func TestExecute_ConfigFileAndOverrides(t *testing.T) {
	nodes, edges := inputs(t)
	cfgPath := filepath.Join(t.TempDir(), "mindelay.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  graph_name: route\nlog:\n  level: error\n"), 0o600))

	code, out, errOut := runCLI("--config", cfgPath, "--log-level", "debug", "--log-format", "json", nodes, edges, "1", "3")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "digraph route {\n"))
	assert.Contains(t, errOut, `"msg":"graph loaded"`, "flag raised the level above the file's")
}

func TestExecute_DebugLogsFailureCause(t *testing.T) {
	nodes, edges := inputs(t)

	code, _, errOut := runCLI("--log-level", "debug", "--log-format", "text", nodes, edges, "1", "4")
	require.Equal(t, 1, code)
	assert.Contains(t, errOut, "run failed")
	assert.Contains(t, errOut, "kind=no_path")
	assert.True(t, strings.HasSuffix(errOut, "No path exists between these two nodes.\n"))
}

func TestExecute_Help(t *testing.T) {
	code, out, _ := runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "mindelay [flags] <nodesFile> <edgesFile> <sourceId> <destId> [outputFile]")
	assert.Contains(t, out, "--metric-exporter")
}
