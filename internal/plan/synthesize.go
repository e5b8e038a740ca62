package plan

import (
	"fmt"
	"strings"

	"github.com/archaid/archaid/internal/intent"
)

// Options are the configuration flags the synthesizer consults. They are
// built once per invocation and read-only here.
type Options struct {
	PreferParu  bool
	NoSudo      bool
	Offline     bool
	AutoConfirm bool
}

// Probe reports what the target system looks like. The simulator state and
// a real pacman query both satisfy it; a nil probe means "assume nothing
// is installed and paru is unavailable".
type Probe interface {
	PackageInstalled(name string) bool
	ParuAvailable() bool
}

// aurSuffixes mark package names that only exist in the AUR. The plain
// pacman emulator (and real pacman) cannot see these.
var aurSuffixes = []string{"-bin", "-git", "-svn", "-hg"}

// IsAURName reports whether a package name can only be resolved through
// the AUR helper.
func IsAURName(pkg string) bool {
	for _, s := range aurSuffixes {
		if strings.HasSuffix(pkg, s) {
			return true
		}
	}
	return false
}

// Synthesizer maps a resolved intent plus configuration into an ordered,
// risk-tagged command plan. The mapping is a deterministic table: the same
// intent and options always yield the same plan.
type Synthesizer struct {
	opts  Options
	probe Probe
}

// NewSynthesizer creates a synthesizer for one invocation.
func NewSynthesizer(opts Options, probe Probe) *Synthesizer {
	return &Synthesizer{opts: opts, probe: probe}
}

// Synthesize builds the plan for an intent. Intents with a missing target
// yield an empty plan, never a malformed command string.
func (s *Synthesizer) Synthesize(it intent.Intent) Plan {
	switch it.Action {
	case intent.ActionInstall:
		return s.installPlan(it.Target)
	case intent.ActionRemove:
		return s.removePlan(it.Target)
	case intent.ActionOpen:
		return s.openPlan(it.Target)
	case intent.ActionFix:
		return s.fixPlan(it.Modifier)
	case intent.ActionUpgrade:
		return s.upgradePlan()
	case intent.ActionCleanCache:
		return Plan{s.mutating(s.withSudo("pacman -Sc"), "clean package cache")}
	case intent.ActionLogs:
		if it.Target == "" {
			return nil
		}
		return Plan{{
			Line:   fmt.Sprintf("journalctl -u %s --no-pager -n 50", it.Target),
			Risk:   RiskSafe,
			Reason: "tail service logs",
		}}
	case intent.ActionTestAI:
		return Plan{{Line: "echo ai-ok", Risk: RiskSafe, Reason: "built-in test command"}}
	default:
		return nil
	}
}

func (s *Synthesizer) installPlan(pkg string) Plan {
	if pkg == "" {
		return nil
	}
	if s.probe != nil && s.probe.PackageInstalled(pkg) {
		// Nothing to do; reinstalling is never synthesized.
		return nil
	}
	return Plan{s.installStep(pkg, "install package")}
}

func (s *Synthesizer) removePlan(pkg string) Plan {
	if pkg == "" {
		return nil
	}
	if s.probe != nil && !s.probe.PackageInstalled(pkg) {
		return nil
	}
	var line string
	if s.useParu(pkg) {
		line = "paru -R " + pkg
	} else {
		line = s.withSudo("pacman -Rsn " + pkg)
	}
	return Plan{s.mutating(line, "remove package")}
}

// openPlan ensures the application exists before launching it. The install
// step keeps its mutating risk; the launch itself is read-only from the
// package manager's point of view and runs without confirmation.
func (s *Synthesizer) openPlan(app string) Plan {
	if app == "" {
		return nil
	}
	var p Plan
	if s.probe == nil || !s.probe.PackageInstalled(app) {
		p = append(p, s.installStep(app, "ensure app is installed"))
	}
	p = append(p, Command{Line: "launch " + app, Risk: RiskSafe, Reason: "launch app"})
	return p
}

// fixPlan is the subsystem-specific repair table.
func (s *Synthesizer) fixPlan(subsystem string) Plan {
	switch subsystem {
	case "sound":
		var p Plan
		if s.probe != nil && !s.probe.PackageInstalled("pipewire") {
			p = append(p, s.installStep("pipewire", "reinstall audio stack"))
		}
		p = append(p, s.mutating("systemctl --user restart pipewire", "restart audio service"))
		return p
	case "internet":
		return Plan{
			s.mutating(s.withSudo("systemctl restart NetworkManager"), "restart network manager"),
			{Line: "ip link", Risk: RiskSafe, Reason: "check interface state"},
		}
	case "bluetooth":
		return Plan{s.mutating(s.withSudo("systemctl restart bluetooth"), "restart bluetooth service")}
	case "time":
		return Plan{s.mutating(s.withSudo("timedatectl set-ntp true"), "enable NTP sync")}
	default:
		return nil
	}
}

func (s *Synthesizer) upgradePlan() Plan {
	if s.opts.Offline {
		// Synthesized anyway so the rejection names the concrete command.
		return Plan{{Line: "pacman -Syu", Risk: RiskForbidden, Reason: "network required"}}
	}
	return Plan{s.mutating(s.withSudo("pacman -Syu"), "upgrade system packages")}
}

// installStep picks the installer. Ties break toward pacman: paru is only
// chosen for AUR-only names or when the user prefers it and it exists.
func (s *Synthesizer) installStep(pkg, reason string) Command {
	var line string
	if s.useParu(pkg) {
		line = "paru -S " + pkg
	} else {
		line = s.withSudo("pacman -S " + pkg)
	}
	return s.mutating(line, reason)
}

func (s *Synthesizer) useParu(pkg string) bool {
	if IsAURName(pkg) {
		return true
	}
	return s.opts.PreferParu && s.probe != nil && s.probe.ParuAvailable()
}

// withSudo prepends sudo unless the configuration forbids it. paru is never
// wrapped; it escalates on its own.
func (s *Synthesizer) withSudo(line string) string {
	if s.opts.NoSudo {
		return line
	}
	return "sudo " + line
}

// mutating tags a command as requiring confirmation and applies the
// auto-confirm flag to package manager invocations.
func (s *Synthesizer) mutating(line, reason string) Command {
	if s.opts.AutoConfirm && isPkgManagerCmd(line) && !strings.Contains(line, "--noconfirm") {
		line += " --noconfirm"
	}
	return Command{Line: line, Risk: RiskRequiresConfirm, Reason: reason}
}

func isPkgManagerCmd(line string) bool {
	return strings.HasPrefix(line, "pacman ") ||
		strings.HasPrefix(line, "sudo pacman ") ||
		strings.HasPrefix(line, "paru ")
}
