package core

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/archaid/archaid/internal/sim"
)

// Result represents command execution result
type Result struct {
	Output   string
	ExitCode int
	Err      error
}

// Failed reports whether the command must halt the remaining plan.
func (r *Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Runner executes one already-validated command. The real shell and the
// simulator both satisfy it; the controller does not know which it holds.
type Runner interface {
	Run(ctx context.Context, command string) (*Result, error)
}

// ShellRunner executes commands on the real machine. Commands are split on
// whitespace only: the gate has already refused anything with shell
// metacharacters, so no shell interpretation is ever needed.
type ShellRunner struct {
	timeout time.Duration
}

// NewShellRunner creates a runner with a per-command timeout.
func NewShellRunner(timeout time.Duration) *ShellRunner {
	return &ShellRunner{timeout: timeout}
}

// Run executes the command and captures combined output and exit code.
func (e *ShellRunner) Run(ctx context.Context, command string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return &Result{}, nil
	}

	execCmd := exec.CommandContext(ctx, fields[0], fields[1:]...)

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()

	output := stdout.String()
	if stderr.Len() > 0 {
		output += "\n" + stderr.String()
	}

	result := &Result{
		Output: strings.TrimSpace(output),
	}

	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitError.ExitCode()
		} else {
			result.ExitCode = ExitFailure
		}
		result.Err = err
	}

	return result, nil
}

// SimRunner routes commands to the subsystem emulators instead of the real
// machine. It owns the session state handle exclusively.
type SimRunner struct {
	Sim   *sim.Simulator
	State *sim.State
}

// NewSimRunner creates a runner over a fresh or scenario-seeded state.
func NewSimRunner(state *sim.State) *SimRunner {
	return &SimRunner{Sim: sim.NewSimulator(), State: state}
}

// Run applies the command to the simulated state.
func (r *SimRunner) Run(_ context.Context, command string) (*Result, error) {
	out := r.Sim.Apply(command, r.State)
	res := &Result{Output: out.Text, ExitCode: out.Code}
	if !out.OK && res.ExitCode == 0 {
		res.ExitCode = ExitFailure
	}
	return res, nil
}
