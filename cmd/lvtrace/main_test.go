package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/dispatch"
	"github.com/katalvlaran/lvtrace/execution"
	"github.com/katalvlaran/lvtrace/internal/config"
	"github.com/katalvlaran/lvtrace/step"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvtrace version dev\n", out)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--family", "string")
	require.NoError(t, err)
	assert.Contains(t, out, "STRING")
	assert.Contains(t, out, "boyer-moore")
	assert.NotContains(t, out, "bubble-sort")

	out, err = execute(t, "list", "--json")
	require.NoError(t, err)
	var algos []dispatch.Algorithm
	require.NoError(t, json.Unmarshal([]byte(out), &algos))
	assert.Len(t, algos, len(dispatch.Catalog()))

	_, err = execute(t, "list", "--family", "quantum")
	assert.Error(t, err)
}

func TestRun_Human(t *testing.T) {
	out, err := execute(t, "run", "binary-search", "--input", `{"array":[1,3,5,7,9,11],"target":7}`)
	require.NoError(t, err)
	assert.Contains(t, out, "calculate-mid")
	assert.Contains(t, out, "binary-search: 10 steps")
}

func TestRun_JSONTruncated(t *testing.T) {
	out, err := execute(t, "run", "dijkstra", "--sample", "--json", "--max-steps", "3")
	require.NoError(t, err)

	var exec execution.Execution
	require.NoError(t, json.Unmarshal([]byte(out), &exec))
	assert.Equal(t, "dijkstra", exec.Algorithm)
	assert.Equal(t, step.FamilyGraph, exec.Family)
	assert.True(t, exec.Truncated)
	assert.Len(t, exec.Steps, 3)
	_, ok := exec.Steps[0].(step.Graph)
	assert.True(t, ok)
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"n":6}`), 0o600))

	out, err := execute(t, "run", "fibonacci", "--input", "@"+path, "--json")
	require.NoError(t, err)
	var exec execution.Execution
	require.NoError(t, json.Unmarshal([]byte(out), &exec))
	assert.True(t, exec.Completed)
	last, _ := exec.Steps.Last()
	assert.Equal(t, 8, *last.(step.DP).Result)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "kmp")
	assert.Error(t, err)

	_, err = execute(t, "run", "kmp", "--sample", "--input", "{}")
	assert.Error(t, err)

	_, err = execute(t, "run", "kmp", "--input", "{not json")
	assert.Error(t, err)

	_, err = execute(t, "run", "bogo-sort", "--input", "{}")
	assert.ErrorIs(t, err, dispatch.ErrUnknownAlgorithm)
}

func TestSample(t *testing.T) {
	out, err := execute(t, "sample", "knapsack")
	require.NoError(t, err)
	var input map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &input))
	assert.Contains(t, input, "capacity")

	_, err = execute(t, "sample", "bogo-sort")
	assert.Error(t, err)

	out, err = execute(t, "sample", "bfs", "--size", "6", "--seed", "3")
	require.NoError(t, err)
	var graphInput struct {
		Nodes     []map[string]any `json:"nodes"`
		StartNode string           `json:"startNode"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &graphInput))
	assert.Len(t, graphInput.Nodes, 6)
	assert.Equal(t, "A", graphInput.StartNode)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvtrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nserver:\n  addr: \":7000\"\n"), 0o600))

	cmd := newServeCmd()
	cmd.Flags().String("log-level", "warn", "")
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--store", "redis"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr())
	assert.Equal(t, config.DriverRedis, cfg.Driver())
	assert.Equal(t, "info", cfg.LogLevel())

	require.NoError(t, cmd.ParseFlags([]string{"--addr", ":7100", "--log-level", "debug"}))
	cfg, err = loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, ":7100", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel())
}
