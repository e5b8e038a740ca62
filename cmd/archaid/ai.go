package main

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/archaid/archaid/internal/ai"
	"github.com/archaid/archaid/internal/ai/glm"
	"github.com/archaid/archaid/internal/ai/openai"
	"github.com/archaid/archaid/internal/core"
	"github.com/archaid/archaid/internal/intent"
	"github.com/archaid/archaid/internal/plan"
	"github.com/archaid/archaid/internal/safety"
	"github.com/archaid/archaid/internal/sim"
	"github.com/archaid/archaid/internal/storage"
	"github.com/archaid/archaid/internal/terminal"
	"github.com/archaid/archaid/internal/tui"
	"github.com/spf13/cobra"
)

var flagReview bool

// getAICommand returns the ai command
func getAICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `ai "<free text>"`,
		Short: "Resolve a natural-language request into validated commands",
		Long: `Resolves free text into an intent, synthesizes a risk-tagged command
plan, validates it against the safety allowlist, and either prints the
plan (default) or executes it (--apply / --auto).`,
		Args: cobra.ExactArgs(1),
		RunE: runAI,
	}
	cmd.Flags().BoolVar(&flagReview, "review", false, "interactively approve each command before execution")
	return cmd
}

func runAI(cmd *cobra.Command, args []string) error {
	cfg := storage.GetConfig()
	inv := buildInvocation(cmd)
	text := args[0]

	gate := &safety.Gate{
		Offline:        inv.opts.Offline,
		ExtraForbidden: cfg.Safety.ExtraForbidden,
	}

	// Screen the raw utterance first: destructive text is refused even
	// when no intent can be classified from it.
	if rej := gate.ScreenInput(text); rej != nil {
		fmt.Printf("✗ %v\n", rej)
		return exitCodeError{code: core.ExitRejected}
	}

	var state *sim.State
	var probe plan.Probe
	if flagSimulate {
		state = sim.NewState()
		probe = state
	} else {
		probe = systemProbe{}
	}

	resolver := buildResolver(cfg, inv.opts.Offline)
	it := resolver.Resolve(cmd.Context(), text)
	if it.Action == intent.ActionUnknown {
		fmt.Println("🤷 could not understand the request; nothing suggested")
		return nil
	}

	if inv.verbose {
		fmt.Printf("📝 intent: %s target=%q modifier=%q\n", it.Action, it.Target, it.Modifier)
	}

	p := plan.NewSynthesizer(inv.opts, probe).Synthesize(it)

	approved, rej := gate.Validate(p)
	if rej != nil {
		fmt.Printf("✗ %v\n", rej)
		return exitCodeError{code: core.ExitRejected}
	}

	if !inv.apply {
		return suggestPlan(approved.Plan())
	}

	if flagReview {
		reviewed, err := tui.Review(approved.Plan())
		if err != nil {
			return err
		}
		// Re-validate the reviewed subset so only the gate mints the
		// approval the controller sees. Validation is idempotent.
		approved, rej = gate.Validate(reviewed)
		if rej != nil {
			fmt.Printf("✗ %v\n", rej)
			return exitCodeError{code: core.ExitRejected}
		}
	}

	var runner core.Runner
	if flagSimulate {
		runner = core.NewSimRunner(state)
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

// suggestPlan prints the plan as a rendered markdown summary and mutates
// nothing.
func suggestPlan(p plan.Plan) error {
	md := terminal.PlanMarkdown(p)
	renderer, err := terminal.NewRenderer(80)
	if err != nil {
		fmt.Print(md)
		return nil
	}
	out, _ := renderer.Render(md)
	fmt.Print(out)
	return nil
}

// buildResolver assembles the rules-first chain, adding the LLM fallback
// only when online and a provider is configured.
func buildResolver(cfg *storage.Config, offline bool) intent.Chain {
	chain := intent.Chain{intent.Rules{}}
	if offline {
		return chain
	}
	if t := buildTranslator(cfg); t != nil {
		chain = append(chain, intent.TranslatorResolver{Translator: t})
	}
	return chain
}

func buildTranslator(cfg *storage.Config) ai.Translator {
	if cfg.AI.APIKey == "" {
		return nil
	}
	timeout := time.Duration(cfg.AI.Timeout) * time.Second
	switch cfg.AI.Provider {
	case "glm":
		return glm.NewClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL, timeout)
	default:
		return openai.NewClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL, timeout)
	}
}

// systemProbe inspects the real machine.
type systemProbe struct{}

func (systemProbe) PackageInstalled(name string) bool {
	return exec.Command("pacman", "-Qq", name).Run() == nil
}

func (systemProbe) ParuAvailable() bool {
	_, err := exec.LookPath("paru")
	return err == nil
}
