package main

import (
	"fmt"
	"time"

	"github.com/archaid/archaid/internal/core"
	"github.com/archaid/archaid/internal/plan"
	"github.com/archaid/archaid/internal/safety"
	"github.com/archaid/archaid/internal/sim"
	"github.com/archaid/archaid/internal/storage"
	"github.com/archaid/archaid/internal/terminal"
	"github.com/spf13/cobra"
)

// getRunCommand returns the run command
func getRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `run "<command>"`,
		Short: "Run a single command after safety validation",
		Long: `Validates one literal command against the safety allowlist and runs
it. Bypasses intent resolution but never the gate.`,
		Args: cobra.ExactArgs(1),
		RunE: runSingle,
	}
}

func runSingle(cmd *cobra.Command, args []string) error {
	cfg := storage.GetConfig()
	inv := buildInvocation(cmd)

	gate := &safety.Gate{
		Offline:        inv.opts.Offline,
		ExtraForbidden: cfg.Safety.ExtraForbidden,
	}

	p := plan.Plan{{Line: args[0], Risk: plan.RiskRequiresConfirm, Reason: "explicit command"}}
	approved, rej := gate.Validate(p)
	if rej != nil {
		fmt.Printf("✗ %v\n", rej)
		return exitCodeError{code: core.ExitRejected}
	}

	var runner core.Runner
	if flagSimulate {
		runner = core.NewSimRunner(sim.NewState())
	} else {
		runner = core.NewShellRunner(time.Duration(inv.timeout) * time.Second)
	}

	controller := core.NewController(runner, terminal.Confirm)
	code := controller.Execute(cmd.Context(), approved, core.Options{
		Apply:       true,
		AutoConfirm: inv.opts.AutoConfirm,
		Verbose:     inv.verbose,
	})
	if code != core.ExitOK {
		return exitCodeError{code: code}
	}
	return nil
}
