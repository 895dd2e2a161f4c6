package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWritesJSONByDefault(t *testing.T) {
	out, err := execute(t, "", "--speed", "100", "--angle", "45", "--gravity", "10", "--step", "0.1", "--id", "cli")
	require.NoError(t, err)

	var log engine.SimulationLog
	require.NoError(t, json.Unmarshal([]byte(out), &log))
	assert.Equal(t, "cli", log.SimulationID)
	assert.Len(t, log.Samples, 143)
	assert.Equal(t, engine.Sample{}, log.Samples[0])
}

func TestRootSummaryAndFiles(t *testing.T) {
	dir := t.TempDir()
	plotPath := filepath.Join(dir, "projectile.png")
	gifPath := filepath.Join(dir, "ballistic_motion.gif")
	t.Setenv("BALLISTIC_GIF_FRAMES", "3")
	t.Setenv("BALLISTIC_PLOT_WIDTH", "120")
	t.Setenv("BALLISTIC_PLOT_HEIGHT", "80")

	out, err := execute(t, "",
		"-v", "100", "-a", "45", "-g", "10", "-s", "0.1", "--model", "matrix",
		"--summary", "--plot", plotPath, "--gif", gifPath)
	require.NoError(t, err)

	assert.Contains(t, out, "max height")
	assert.Contains(t, out, "250.0000")
	assert.NotContains(t, out, `"samples"`)

	for _, p := range []string{plotPath, gifPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRootRejectsInvalidParameters(t *testing.T) {
	_, err := execute(t, "", "--speed", "0")
	assert.ErrorIs(t, err, engine.ErrInvalidParameter)

	_, err = execute(t, "", "--step", "0.1", "--max-samples", "1")
	assert.ErrorIs(t, err, engine.ErrSampleLimit)
}

func TestRunReadsStdin(t *testing.T) {
	in := `{"simulation_id":"stdin","parameters":{"initial_speed":10,"launch_angle":0,"gravity":9.81,"time_step":0.1}}`
	out, err := execute(t, in, "run")
	require.NoError(t, err)

	var log engine.SimulationLog
	require.NoError(t, json.Unmarshal([]byte(out), &log))
	assert.Equal(t, "stdin", log.SimulationID)
	assert.Len(t, log.Samples, 2)
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	in := `{"parameters":{"initial_speed":10,"launch_angle":20,"gravity":10,"time_step":0.01}}`
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	out, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"simulation_id"`)

	_, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading input")

	_, err = execute(t, "not json", "run")
	assert.ErrorContains(t, err, "invalid input JSON")
}
