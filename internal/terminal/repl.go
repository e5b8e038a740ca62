package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/archaid/archaid/internal/core"
	"github.com/archaid/archaid/internal/intent"
	"github.com/archaid/archaid/internal/plan"
	"github.com/archaid/archaid/internal/safety"
	"github.com/archaid/archaid/internal/sim"
)

// REPL is the line-oriented simulator session. Lines prefixed with "ai"
// go through the full resolve → synthesize → validate pipeline; other
// lines are validated and handed to the emulators unmodified.
type REPL struct {
	State    *sim.State
	Resolver intent.Chain
	Gate     *safety.Gate
	Opts     plan.Options

	// AutoConfirm skips confirmation prompts inside the simulator, where
	// mutations are harmless. Off by default only when exercising the
	// confirmation loop itself.
	AutoConfirm bool
	Verbose     bool

	In  io.Reader
	Out io.Writer

	sim *sim.Simulator

	// scanner is the single line reader for the whole session. The
	// confirmation prompt reads from it too; wrapping In in a second
	// scanner would buffer ahead and lose the user's answer.
	scanner *bufio.Scanner
}

// Run reads lines until exit/quit or EOF.
func (r *REPL) Run(ctx context.Context) error {
	if r.sim == nil {
		r.sim = sim.NewSimulator()
	}

	fmt.Fprintf(r.Out, "archaid simulator session %s\n", r.State.SessionID)
	fmt.Fprintln(r.Out, `type "help" for commands, "exit" to leave`)

	r.scanner = bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, "archsim $ ")
		if !r.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "exit" || line == "quit":
			return nil
		case line == "help":
			r.printHelp()
		case line == "history":
			r.printHistory()
		case line == "scenarios":
			for _, name := range sim.ScenarioNames() {
				fmt.Fprintln(r.Out, name)
			}
		case strings.HasPrefix(line, "scenario "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "scenario "))
			if err := sim.ApplyScenario(name, r.State); err != nil {
				fmt.Fprintf(r.Out, "error: %v\n", err)
			} else {
				fmt.Fprintf(r.Out, "scenario %s applied\n", name)
			}
		case line == "ai" || strings.HasPrefix(line, "ai "):
			r.handleAI(ctx, strings.TrimSpace(strings.TrimPrefix(line, "ai")))
		default:
			r.handleDirect(line)
		}
	}

	return r.scanner.Err()
}

// handleAI routes one utterance through the intent pipeline.
func (r *REPL) handleAI(ctx context.Context, text string) {
	if text == "" {
		fmt.Fprintln(r.Out, `usage: ai <free text>`)
		return
	}

	if rej := r.Gate.ScreenInput(text); rej != nil {
		fmt.Fprintf(r.Out, "✗ %v\n", rej)
		return
	}

	it := r.Resolver.Resolve(ctx, text)
	if it.Action == intent.ActionUnknown {
		fmt.Fprintln(r.Out, "🤷 could not understand the request; nothing suggested")
		return
	}

	synth := plan.NewSynthesizer(r.Opts, r.State)
	p := synth.Synthesize(it)

	approved, rej := r.Gate.Validate(p)
	if rej != nil {
		fmt.Fprintf(r.Out, "✗ %v\n", rej)
		return
	}

	controller := &core.Controller{
		Runner: core.NewSimRunner(r.State),
		Confirm: func(line, reason string) (bool, error) {
			return ConfirmWithScanner(line, reason, r.scanner, r.Out)
		},
		Out: r.Out,
	}

	controller.Execute(ctx, approved, core.Options{
		Apply:       true,
		AutoConfirm: r.AutoConfirm,
		Verbose:     r.Verbose,
	})
}

// handleDirect validates one literal command and applies it to the
// emulators. The gate stays the single choke point even for direct lines.
func (r *REPL) handleDirect(line string) {
	_, rej := r.Gate.Validate(plan.Plan{{Line: line, Risk: plan.RiskSafe}})
	if rej != nil {
		fmt.Fprintf(r.Out, "✗ %v\n", rej)
		return
	}

	out := r.sim.Apply(line, r.State)
	if out.Text != "" {
		fmt.Fprintln(r.Out, out.Text)
	}
	if !out.OK && r.Verbose {
		fmt.Fprintf(r.Out, "(exit code %d)\n", out.Code)
	}
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.Out, `
commands:
  ai <text>          resolve free text into validated commands and run them
  scenario <name>    apply a preset failure scenario
  scenarios          list scenario names
  history            show executed commands for this session
  exit, quit         leave the session

any other line is validated and passed to the emulators directly.
`)
}

func (r *REPL) printHistory() {
	if len(r.State.History) == 0 {
		fmt.Fprintln(r.Out, "no commands executed yet")
		return
	}
	for _, entry := range r.State.History {
		status := "ok"
		if !entry.Outcome.OK {
			status = fmt.Sprintf("failed (%d)", entry.Outcome.Code)
		}
		fmt.Fprintf(r.Out, "[%s] %s  %s\n", entry.ID[:8], entry.Command, status)
	}
}
