package main

import (
	"fmt"
	"os"

	"github.com/archaid/archaid/internal/core"
	"github.com/archaid/archaid/internal/plan"
	"github.com/archaid/archaid/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagApply      bool
	flagAuto       bool
	flagYes        bool
	flagDryRun     bool
	flagPreferParu bool
	flagNoSudo     bool
	flagOffline    bool
	flagVerbose    bool
	flagSimulate   bool
)

var rootCmd = &cobra.Command{
	Use:   "archaid",
	Short: "Natural-language Arch Linux assistant",
	Long: `archaid turns free-text requests into a bounded, validated set of
pacman/paru/systemctl commands. The default is suggest-only: nothing
mutates the system unless --apply or --auto is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := storage.InitConfig()
		if err != nil {
			return err
		}
		if cfg.Run.Mode != "suggest" && cfg.Run.Mode != "apply" {
			return fmt.Errorf("%w: run.mode must be suggest or apply, got %q", core.ErrConfigConflict, cfg.Run.Mode)
		}
		return nil
	},
}

// exitCodeError carries a process exit code out of a RunE.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// invocation is the merged, read-only configuration for one run: file
// defaults overridden by whichever flags were explicitly set.
type invocation struct {
	opts    plan.Options
	apply   bool
	verbose bool
	timeout int
}

func buildInvocation(cmd *cobra.Command) invocation {
	cfg := storage.GetConfig()

	inv := invocation{
		opts: plan.Options{
			PreferParu:  cfg.Run.PreferParu,
			NoSudo:      cfg.Run.NoSudo,
			Offline:     cfg.Run.Offline,
			AutoConfirm: cfg.Run.AutoConfirm,
		},
		apply:   cfg.Run.Mode == "apply",
		verbose: cfg.Run.Verbose,
		timeout: cfg.Run.TimeoutSecs,
	}

	flags := cmd.Flags()
	if flags.Changed("prefer-paru") {
		inv.opts.PreferParu = flagPreferParu
	}
	if flags.Changed("no-sudo") {
		inv.opts.NoSudo = flagNoSudo
	}
	if flags.Changed("offline") {
		inv.opts.Offline = flagOffline
	}
	if flags.Changed("verbose") {
		inv.verbose = flagVerbose
	}
	if flagYes || flagAuto {
		inv.opts.AutoConfirm = true
	}
	if flagApply || flagAuto {
		inv.apply = true
	}
	if flagDryRun {
		// --dry-run always wins: suggest-only, no mutation.
		inv.apply = false
	}

	return inv
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagApply, "apply", false, "execute the validated plan (default is suggest-only)")
	pf.BoolVar(&flagAuto, "auto", false, "shorthand for --apply --yes")
	pf.BoolVar(&flagYes, "yes", false, "auto-confirm commands that require confirmation")
	pf.BoolVar(&flagDryRun, "dry-run", false, "force suggest-only mode")
	pf.BoolVar(&flagPreferParu, "prefer-paru", false, "prefer paru over pacman for installs")
	pf.BoolVar(&flagNoSudo, "no-sudo", false, "never prepend sudo")
	pf.BoolVar(&flagOffline, "offline", false, "refuse commands that need the network and skip the LLM fallback")
	pf.BoolVar(&flagVerbose, "verbose", false, "log per-command exit codes")
	pf.BoolVar(&flagSimulate, "simulate", false, "run against the built-in simulator instead of the real system")

	rootCmd.AddCommand(getAICommand())
	rootCmd.AddCommand(getRunCommand())
	rootCmd.AddCommand(getSimCommand())
	rootCmd.AddCommand(getScenariosCommand())
	rootCmd.AddCommand(getVersionCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if ec, ok := err.(exitCodeError); ok {
			os.Exit(ec.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
