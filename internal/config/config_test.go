package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	for _, k := range []string{"BALLISTIC_SPEED", "BALLISTIC_ANGLE", "BALLISTIC_STEP", "BALLISTIC_MODEL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := NewConfig()
	assert.Equal(t, 10.0, cfg.InitialSpeed)
	assert.Equal(t, 20.0, cfg.LaunchAngle)
	assert.Equal(t, 0.0001, cfg.TimeStep)
	assert.Equal(t, "closed_form", cfg.Model)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("BALLISTIC_SPEED", "100")
	t.Setenv("BALLISTIC_ANGLE", " 45 ")
	t.Setenv("BALLISTIC_Y0", "-2.5")
	t.Setenv("BALLISTIC_MODEL", "matrix")
	t.Setenv("BALLISTIC_MAX_SAMPLES", "1000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := NewConfig()
	assert.Equal(t, 100.0, cfg.InitialSpeed)
	assert.Equal(t, 45.0, cfg.LaunchAngle)
	assert.Equal(t, -2.5, cfg.OriginY)
	assert.Equal(t, "matrix", cfg.Model)
	assert.Equal(t, 1000, cfg.MaxSamples)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("BALLISTIC_GRAVITY", "strong")
	t.Setenv("BALLISTIC_GIF_FRAMES", "many")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := NewConfig()
	assert.Equal(t, 10.0, cfg.Gravity)
	assert.Equal(t, 60, cfg.AnimationFrames)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BALLISTIC_GRAVITY=1.62\nBALLISTIC_STEP=0.5\n"), 0o644))

	// Registered so the values loaded from the file are cleared afterwards.
	t.Setenv("BALLISTIC_GRAVITY", "")
	t.Setenv("BALLISTIC_STEP", "0.25")
	require.NoError(t, os.Unsetenv("BALLISTIC_GRAVITY"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.62, cfg.Gravity)
	// Process environment wins over the file.
	assert.Equal(t, 0.25, cfg.TimeStep)

	t.Run("missing file is ignored", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.env"))
		assert.NoError(t, err)
	})
}
