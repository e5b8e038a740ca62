package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/archaid/archaid/internal/plan"
	"github.com/archaid/archaid/internal/safety"
)

// ConfirmFunc asks the user to approve one command. It reports approval;
// ErrUserAbort cancels the remaining plan.
type ConfirmFunc func(line, reason string) (bool, error)

// Options control one controller invocation.
type Options struct {
	// Apply runs the plan; when false the controller only prints it.
	Apply bool

	// AutoConfirm skips the per-command confirmation prompt.
	AutoConfirm bool

	// Verbose surfaces the failing step's own exit code and prints
	// per-command outcomes.
	Verbose bool
}

// Controller drives an approved plan through a runner with the
// confirm-before-run loop. It only ever accepts safety.Approved: an
// unvalidated plan cannot reach a runner through this type.
type Controller struct {
	Runner  Runner
	Confirm ConfirmFunc
	Out     io.Writer
}

// NewController creates a controller writing to stdout.
func NewController(runner Runner, confirm ConfirmFunc) *Controller {
	return &Controller{Runner: runner, Confirm: confirm, Out: os.Stdout}
}

// Execute runs the plan and returns the process exit code. In suggest mode
// it prints each command and mutates nothing. In apply mode execution is
// in order, halting on the first failure with no rollback of prior steps.
func (c *Controller) Execute(ctx context.Context, approved safety.Approved, opts Options) int {
	p := approved.Plan()

	if len(p) == 0 {
		fmt.Fprintln(c.Out, "nothing to do")
		return ExitOK
	}

	if !opts.Apply {
		for _, cmd := range p {
			fmt.Fprintf(c.Out, "%s    # %s [%s]\n", cmd.Line, cmd.Reason, cmd.Risk)
		}
		return ExitOK
	}

	for i, cmd := range p {
		if cmd.Risk == plan.RiskRequiresConfirm && !opts.AutoConfirm {
			ok, err := c.confirm(cmd)
			if err != nil {
				if errors.Is(err, ErrUserAbort) {
					fmt.Fprintln(c.Out, "✗ cancelled; remaining steps skipped")
					return ExitOK
				}
				fmt.Fprintf(c.Out, "confirmation failed: %v\n", err)
				return ExitFailure
			}
			if !ok {
				fmt.Fprintf(c.Out, "⊘ skipped: %s\n", cmd.Line)
				continue
			}
		}

		fmt.Fprintf(c.Out, "🔧 [%d/%d] %s\n", i+1, len(p), cmd.Line)

		result, err := c.Runner.Run(ctx, cmd.Line)
		if err != nil {
			fmt.Fprintf(c.Out, "❌ %v\n", err)
			return ExitFailure
		}

		if result.Output != "" {
			fmt.Fprintln(c.Out, result.Output)
		}

		if result.Failed() {
			if opts.Verbose {
				fmt.Fprintf(c.Out, "❌ step %d failed (exit code %d); remaining steps skipped\n", i+1, result.ExitCode)
				if result.ExitCode != 0 {
					return result.ExitCode
				}
				return ExitFailure
			}
			fmt.Fprintln(c.Out, "❌ command failed; remaining steps skipped")
			return ExitFailure
		}

		if opts.Verbose {
			fmt.Fprintf(c.Out, "✅ exit code 0\n")
		}
	}

	return ExitOK
}

func (c *Controller) confirm(cmd plan.Command) (bool, error) {
	if c.Confirm == nil {
		// No prompt available: fail closed rather than run unconfirmed.
		return false, ErrUserAbort
	}
	return c.Confirm(cmd.Line, cmd.Reason)
}
