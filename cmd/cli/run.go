package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxd309/ballistic-engine/internal/engine"
)

// newRunCmd reads a SimulationInput JSON from a file argument (or stdin),
// runs the simulation, and writes the SimulationLog JSON to stdout.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [input.json]",
		Short: "Run a simulation described by a JSON SimulationInput",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			result, err := engine.RunJSON(string(data))
			if err != nil {
				return fmt.Errorf("simulation error: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
