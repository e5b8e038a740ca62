// Package safety is the single choke point between synthesized commands and
// anything that executes them. Every plan must pass Validate before the
// execution controller or the simulator may see it; the Approved wrapper
// makes that structural, since only this package can construct one.
package safety

import (
	"fmt"
	"strings"

	"github.com/archaid/archaid/internal/plan"
)

// Rejection reports why a plan was refused and which command triggered it.
// A rejected plan is terminal; it is never partially executed.
type Rejection struct {
	Reason  string
	Command string
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	if r.Command == "" {
		return fmt.Sprintf("validation rejected: %s", r.Reason)
	}
	return fmt.Sprintf("validation rejected: %s (%s)", r.Reason, r.Command)
}

// Approved wraps a plan that passed validation. Only Validate constructs
// it, so holding one proves the plan went through the gate.
type Approved struct {
	plan plan.Plan
}

// Plan returns the validated command sequence.
func (a Approved) Plan() plan.Plan { return a.plan }

// metachars are rejected unconditionally regardless of prefix: the
// synthesizer never legitimately emits them, so their presence means the
// command did not come from the synthesizer intact.
var metachars = []string{"|", ">", "<", ";", "`", "$(", "&&", "||"}

// forbiddenPatterns match destructive text anywhere in a command or in raw
// user input. Matching lowercases the input first, so every entry must be
// lowercase or it will never match.
var forbiddenPatterns = []string{
	"rm -rf",
	"rm -fr",
	"mkfs",
	"dd if=",
	"dd of=",
	"/dev/sd",
	"/dev/nvme",
	"/dev/mmcblk",
	":(){",
	"chmod 777 /",
	"chown -r / ",
}

// allowlist maps a leading token to the closed set of permitted
// subcommands. A nil set permits any arguments for that token.
var allowlist = map[string]map[string]bool{
	"pacman": {
		"-S": true, "-R": true, "-Rs": true, "-Rsn": true,
		"-Syu": true, "-Sc": true, "-Q": true, "-Qq": true, "-Qi": true, "-Si": true,
	},
	"paru": {
		"-S": true, "-R": true, "-Rsn": true,
		"-Syu": true, "-Sc": true, "-Q": true, "-Qq": true,
	},
	"systemctl": {
		"restart": true, "start": true, "stop": true, "status": true,
		"enable": true, "disable": true, "is-active": true,
	},
	"journalctl": nil,
	"ip":         nil,
	"timedatectl": {
		"set-ntp": true, "status": true,
	},
	"launch": nil,
	"echo":   nil,
}

// networkOps are the package manager subcommands that reach out to mirrors.
// Offline mode refuses them.
var networkOps = map[string]bool{"-S": true, "-Sy": true, "-Syu": true, "-Syyu": true, "-U": true}

// Gate validates plans against the allowlist and forbidden tables.
type Gate struct {
	// Offline additionally rejects commands that would trigger network
	// package retrieval.
	Offline bool

	// ExtraForbidden extends the built-in forbidden patterns from
	// configuration. Patterns can be added, never removed.
	ExtraForbidden []string
}

// NewGate creates a gate for the given mode.
func NewGate(offline bool) *Gate {
	return &Gate{Offline: offline}
}

// Validate checks every command in the plan. One bad command rejects the
// whole plan: the gate fails closed, never partially. Validation is
// idempotent; it inspects the plan but never rewrites it.
func (g *Gate) Validate(p plan.Plan) (Approved, *Rejection) {
	for _, c := range p {
		if rej := g.check(c); rej != nil {
			return Approved{}, rej
		}
	}
	return Approved{plan: p}, nil
}

// ScreenInput screens one raw utterance before intent resolution, so
// destructive text is refused even when no action can be classified.
func (g *Gate) ScreenInput(text string) *Rejection {
	lower := strings.ToLower(text)
	for _, pat := range g.allForbidden() {
		if strings.Contains(lower, pat) {
			return &Rejection{Reason: "input contains forbidden pattern " + strings.TrimSpace(pat), Command: text}
		}
	}
	return nil
}

func (g *Gate) check(c plan.Command) *Rejection {
	if c.Risk == plan.RiskForbidden {
		return &Rejection{Reason: c.Reason, Command: c.Line}
	}

	for _, m := range metachars {
		if strings.Contains(c.Line, m) {
			return &Rejection{Reason: "shell metacharacter " + m + " not permitted", Command: c.Line}
		}
	}

	lower := strings.ToLower(c.Line)
	for _, pat := range g.allForbidden() {
		if strings.Contains(lower, pat) {
			return &Rejection{Reason: "forbidden pattern " + strings.TrimSpace(pat), Command: c.Line}
		}
	}

	fields := strings.Fields(c.Line)
	if len(fields) == 0 {
		return &Rejection{Reason: "empty command"}
	}

	// sudo must wrap an allowlisted command; bare sudo is meaningless.
	if fields[0] == "sudo" {
		fields = fields[1:]
		if len(fields) == 0 {
			return &Rejection{Reason: "bare sudo", Command: c.Line}
		}
	}

	subs, ok := allowlist[fields[0]]
	if !ok {
		return &Rejection{Reason: "command prefix not allowlisted: " + fields[0], Command: c.Line}
	}

	if subs != nil {
		sub := firstSubcommand(fields[1:])
		if sub == "" || !subs[sub] {
			return &Rejection{Reason: fmt.Sprintf("subcommand %q not permitted for %s", sub, fields[0]), Command: c.Line}
		}
	}

	if g.Offline && isNetworkRetrieval(fields) {
		return &Rejection{Reason: "offline mode: network package retrieval blocked", Command: c.Line}
	}

	return nil
}

func (g *Gate) allForbidden() []string {
	if len(g.ExtraForbidden) == 0 {
		return forbiddenPatterns
	}
	return append(append([]string{}, forbiddenPatterns...), g.ExtraForbidden...)
}

// firstSubcommand returns the first argument that is not a long flag.
// systemctl's --user selector is the only long flag the synthesizer emits
// before a subcommand.
func firstSubcommand(args []string) string {
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			continue
		}
		return a
	}
	return ""
}

func isNetworkRetrieval(fields []string) bool {
	if fields[0] != "pacman" && fields[0] != "paru" {
		return false
	}
	sub := firstSubcommand(fields[1:])
	return networkOps[sub]
}
