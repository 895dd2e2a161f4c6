package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cxd309/ballistic-engine/internal/config"
	"github.com/cxd309/ballistic-engine/internal/engine"
	"github.com/cxd309/ballistic-engine/internal/render"
)

// launchFlags are shared by every command that simulates from flags.
type launchFlags struct {
	id         string
	speed      float64
	angle      float64
	gravity    float64
	x0, y0     float64
	step       float64
	model      string
	maxSamples int
}

func (f launchFlags) input() engine.SimulationInput {
	return engine.SimulationInput{
		SimulationID: f.id,
		Params: engine.Params{
			InitialSpeed: f.speed,
			LaunchAngle:  f.angle,
			Gravity:      f.gravity,
			Origin:       engine.Origin{X: f.x0, Y: f.y0},
			TimeStep:     f.step,
			Model:        f.model,
			MaxSamples:   f.maxSamples,
		},
	}
}

// simulate runs the engine and logs how long sampling took.
func simulate(in engine.SimulationInput) (engine.SimulationLog, error) {
	before := time.Now()
	simLog, err := engine.Run(in)
	if err != nil {
		return engine.SimulationLog{}, err
	}
	slog.Info("simulation concluded",
		"simulation_id", simLog.SimulationID,
		"samples", simLog.Summary.SampleCount,
		"final_time", simLog.Summary.FinalTime,
		"exec_time", time.Since(before),
	)
	return simLog, nil
}

func newRootCmd() *cobra.Command {
	envFile := os.Getenv("BALLISTIC_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		// Unreadable .env: fall back to the process environment alone.
		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", envFile, err)
		cfg = config.NewConfig()
	}

	var (
		lf      launchFlags
		verbose bool

		jsonOut  bool
		plotPath string
		gifPath  string
		preview  bool
		summary  bool
	)

	rootCmd := &cobra.Command{
		Use:   "ballistic",
		Short: "Drag-free projectile trajectory sampler",
		Long: `ballistic samples the closed-form position of a projectile launched under
constant gravity, from launch until it returns to (or passes below) its launch
height, and renders the samples.

With no output flags the simulation log is written to stdout as JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := cfg.LogLevel
			if verbose {
				level = slog.LevelDebug
			}
			// stdout carries JSON; logs go to stderr.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			simLog, err := simulate(lf.input())
			if err != nil {
				return err
			}
			tr := simLog.Trajectory()
			out := cmd.OutOrStdout()

			if plotPath != "" {
				opts := render.PlotOptions{Width: cfg.PlotWidth, Height: cfg.PlotHeight}
				if err := writeFile(plotPath, func(w io.Writer) error { return render.Plot(w, tr, opts) }); err != nil {
					return err
				}
				slog.Info("plot written", "path", plotPath)
			}
			if gifPath != "" {
				opts := render.AnimationOptions{
					PlotOptions: render.PlotOptions{Width: cfg.PlotWidth, Height: cfg.PlotHeight},
					MaxFrames:   cfg.AnimationFrames,
					Delay:       cfg.FrameDelay,
				}
				if err := writeFile(gifPath, func(w io.Writer) error { return render.Animate(w, tr, opts) }); err != nil {
					return err
				}
				slog.Info("animation written", "path", gifPath, "frames", len(render.FrameIndices(tr.Len(), opts.MaxFrames)))
			}
			if summary {
				fmt.Fprintln(out, render.Summary(tr))
			}
			if preview {
				width := render.TerminalWidth(int(os.Stdout.Fd()), 80) - 16
				fmt.Fprintln(out, render.Preview(tr, width, 12))
			}

			if jsonOut || (plotPath == "" && gifPath == "" && !summary && !preview) {
				enc := json.NewEncoder(out)
				if err := enc.Encode(simLog); err != nil {
					return fmt.Errorf("marshaling output: %w", err)
				}
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&lf.id, "id", "", "simulation id (random UUID when empty)")
	pf.Float64VarP(&lf.speed, "speed", "v", cfg.InitialSpeed, "initial speed")
	pf.Float64VarP(&lf.angle, "angle", "a", cfg.LaunchAngle, "launch angle in degrees")
	pf.Float64VarP(&lf.gravity, "gravity", "g", cfg.Gravity, "downward gravitational acceleration")
	pf.Float64Var(&lf.x0, "x0", cfg.OriginX, "launch x coordinate")
	pf.Float64Var(&lf.y0, "y0", cfg.OriginY, "launch y coordinate")
	pf.Float64VarP(&lf.step, "step", "s", cfg.TimeStep, "time between samples in seconds")
	pf.StringVar(&lf.model, "model", cfg.Model, "motion model: closed_form or matrix")
	pf.IntVar(&lf.maxSamples, "max-samples", cfg.MaxSamples, "refuse trajectories longer than this (0 = unlimited)")
	pf.BoolVar(&verbose, "verbose", false, "debug logging")

	f := rootCmd.Flags()
	f.BoolVar(&jsonOut, "json", false, "write the simulation log as JSON to stdout")
	f.StringVar(&plotPath, "plot", "", "write a PNG plot of the trajectory to this file")
	f.StringVar(&gifPath, "gif", "", "write an animated GIF of the trajectory to this file")
	f.BoolVar(&preview, "preview", false, "draw a chart of the trajectory in the terminal")
	f.BoolVar(&summary, "summary", false, "print a table of analytic and sampled quantities")

	rootCmd.AddCommand(newRunCmd(), newPlayCmd(cfg, &lf))
	return rootCmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
