package main

import (
	"fmt"
	"os"

	"github.com/archaid/archaid/internal/safety"
	"github.com/archaid/archaid/internal/sim"
	"github.com/archaid/archaid/internal/storage"
	"github.com/archaid/archaid/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	flagScenarios   []string
	flagConfirmEach bool
)

// getSimCommand returns the sim command
func getSimCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Interactive simulator session",
		Long: `Starts a line-oriented session against the built-in system simulator.
Lines prefixed with "ai" go through the full intent pipeline; other
lines are validated and handed to the emulators directly. Preset
failure scenarios seed reproducible starting conditions.`,
		RunE: runSim,
	}
	cmd.Flags().StringSliceVar(&flagScenarios, "scenario", nil, "preset scenario(s) to apply before the session starts")
	cmd.Flags().BoolVar(&flagConfirmEach, "confirm-each", false, "prompt for confirmation inside the simulator too")
	return cmd
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg := storage.GetConfig()
	inv := buildInvocation(cmd)

	state := sim.NewState()
	for _, name := range flagScenarios {
		if err := sim.ApplyScenario(name, state); err != nil {
			return err
		}
		fmt.Printf("scenario %s applied\n", name)
	}

	repl := &terminal.REPL{
		State:       state,
		Resolver:    buildResolver(cfg, inv.opts.Offline),
		Gate:        &safety.Gate{Offline: inv.opts.Offline, ExtraForbidden: cfg.Safety.ExtraForbidden},
		Opts:        inv.opts,
		AutoConfirm: !flagConfirmEach,
		Verbose:     inv.verbose,
		In:          os.Stdin,
		Out:         os.Stdout,
	}

	return repl.Run(cmd.Context())
}
