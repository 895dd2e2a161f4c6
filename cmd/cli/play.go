package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/cxd309/ballistic-engine/internal/config"
	"github.com/cxd309/ballistic-engine/internal/render"
)

func newPlayCmd(cfg *config.Config, lf *launchFlags) *cobra.Command {
	fps := cfg.PlayFPS

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate the trajectory in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			simLog, err := simulate(lf.input())
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initialising terminal: %w", err)
			}
			defer screen.Fini()
			screen.HideCursor()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return render.NewPlayer(screen, simLog.Trajectory(), fps).Run(ctx)
		},
	}
	cmd.Flags().IntVar(&fps, "fps", fps, "animation frames per second")
	return cmd
}
