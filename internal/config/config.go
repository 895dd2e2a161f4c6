// Package config loads run defaults from the environment. An optional .env file
// in the working directory is read first; variables already set in the process
// environment win.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	InitialSpeed float64
	LaunchAngle  float64
	Gravity      float64
	OriginX      float64
	OriginY      float64
	TimeStep     float64
	Model        string
	MaxSamples   int

	AnimationFrames int
	FrameDelay      int // hundredths of a second, as image/gif expects
	PlotWidth       int // pixels
	PlotHeight      int // pixels
	PlayFPS         int

	LogLevel slog.Level
}

// Load reads envFile (ignored when missing) and builds a Config from the
// environment with defaults for anything unset or malformed.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return NewConfig(), nil
}

func NewConfig() *Config {
	return &Config{
		InitialSpeed: getEnvAsFloat("BALLISTIC_SPEED", 10),
		LaunchAngle:  getEnvAsFloat("BALLISTIC_ANGLE", 20),
		Gravity:      getEnvAsFloat("BALLISTIC_GRAVITY", 10),
		OriginX:      getEnvAsFloat("BALLISTIC_X0", 0),
		OriginY:      getEnvAsFloat("BALLISTIC_Y0", 0),
		TimeStep:     getEnvAsFloat("BALLISTIC_STEP", 0.0001),
		Model:        getEnv("BALLISTIC_MODEL", "closed_form"),
		MaxSamples:   getEnvAsInt("BALLISTIC_MAX_SAMPLES", 5_000_000),

		AnimationFrames: getEnvAsInt("BALLISTIC_GIF_FRAMES", 60),
		FrameDelay:      getEnvAsInt("BALLISTIC_GIF_DELAY", 4),
		PlotWidth:       getEnvAsInt("BALLISTIC_PLOT_WIDTH", 800),
		PlotHeight:      getEnvAsInt("BALLISTIC_PLOT_HEIGHT", 500),
		PlayFPS:         getEnvAsInt("BALLISTIC_PLAY_FPS", 60),

		LogLevel: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(value)); err == nil {
			return lvl
		}
	}
	return defaultValue
}
