package safety

import (
	"strings"
	"testing"

	"github.com/archaid/archaid/internal/plan"
)

func confirmed(lines ...string) plan.Plan {
	p := make(plan.Plan, len(lines))
	for i, l := range lines {
		p[i] = plan.Command{Line: l, Risk: plan.RiskRequiresConfirm}
	}
	return p
}

func TestValidate_ApprovesAllowlistedPlan(t *testing.T) {
	g := NewGate(false)
	p := confirmed(
		"sudo pacman -S firefox",
		"paru -S brave-bin",
		"systemctl --user restart pipewire",
		"journalctl -u sshd --no-pager -n 50",
		"ip link",
		"sudo timedatectl set-ntp true",
		"launch vlc",
		"echo ai-ok",
	)

	approved, rej := g.Validate(p)
	if rej != nil {
		t.Fatalf("unexpected rejection: %v", rej)
	}
	if len(approved.Plan()) != len(p) {
		t.Errorf("approved plan length = %d, want %d", len(approved.Plan()), len(p))
	}
}

func TestValidate_MetacharactersAlwaysRejected(t *testing.T) {
	g := NewGate(false)
	lines := []string{
		"pacman -S firefox | tee log",
		"echo hi > /etc/passwd",
		"echo hi < input",
		"pacman -Syu; reboot",
		"echo `whoami`",
		"echo $(id)",
		"pacman -S a && pacman -S b",
	}

	for _, line := range lines {
		if _, rej := g.Validate(confirmed(line)); rej == nil {
			t.Errorf("Validate(%q) approved a metacharacter command", line)
		}
	}
}

func TestValidate_UnlistedPrefixRejected(t *testing.T) {
	g := NewGate(false)
	for _, line := range []string{"curl https://example.com", "bash", "rm x", "chmod 755 file", "sudo", "nmap localhost"} {
		_, rej := g.Validate(confirmed(line))
		if rej == nil {
			t.Errorf("Validate(%q) approved a non-allowlisted command", line)
		}
	}
}

func TestValidate_ForbiddenPatternRejectsWholePlan(t *testing.T) {
	g := NewGate(false)
	p := confirmed("sudo pacman -S firefox", "echo rm -rf /")

	_, rej := g.Validate(p)
	if rej == nil {
		t.Fatal("plan with forbidden pattern was approved")
	}
	if rej.Command != "echo rm -rf /" {
		t.Errorf("offending command = %q", rej.Command)
	}
}

func TestValidate_ClosedSubcommandSets(t *testing.T) {
	g := NewGate(false)
	bad := []string{
		"pacman -U /tmp/evil.pkg.tar",
		"systemctl disable-now foo",
		"systemctl daemon-reexec",
		"timedatectl set-time 2020-01-01",
	}
	for _, line := range bad {
		if _, rej := g.Validate(confirmed(line)); rej == nil {
			t.Errorf("Validate(%q) approved an unlisted subcommand", line)
		}
	}
}

func TestValidate_ForbiddenRiskSurfacesReason(t *testing.T) {
	g := NewGate(false)
	p := plan.Plan{{Line: "pacman -Syu", Risk: plan.RiskForbidden, Reason: "network required"}}

	_, rej := g.Validate(p)
	if rej == nil {
		t.Fatal("forbidden-tagged command was approved")
	}
	if rej.Reason != "network required" || rej.Command != "pacman -Syu" {
		t.Errorf("rejection = %q/%q, want network required/pacman -Syu", rej.Reason, rej.Command)
	}
}

func TestValidate_OfflineBlocksRetrieval(t *testing.T) {
	g := NewGate(true)

	for _, line := range []string{"sudo pacman -S firefox", "paru -S brave-bin", "sudo pacman -Syu"} {
		if _, rej := g.Validate(confirmed(line)); rej == nil {
			t.Errorf("offline gate approved %q", line)
		}
	}

	// Local operations stay allowed offline.
	for _, line := range []string{"pacman -Qq", "journalctl -u sshd", "systemctl restart NetworkManager"} {
		if _, rej := g.Validate(confirmed(line)); rej != nil {
			t.Errorf("offline gate rejected local command %q: %v", line, rej)
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	g := NewGate(false)
	plans := []plan.Plan{
		confirmed("sudo pacman -S firefox"),
		confirmed("curl https://example.com"),
		{{Line: "pacman -Syu", Risk: plan.RiskForbidden, Reason: "network required"}},
	}

	for _, p := range plans {
		_, first := g.Validate(p)
		_, second := g.Validate(p)
		if (first == nil) != (second == nil) {
			t.Fatalf("validation not idempotent for %v", p.Lines())
		}
		if first != nil && second != nil && first.Reason != second.Reason {
			t.Errorf("rejection reason changed between runs: %q vs %q", first.Reason, second.Reason)
		}
	}
}

func TestValidate_EmptyPlanApproved(t *testing.T) {
	g := NewGate(false)
	approved, rej := g.Validate(nil)
	if rej != nil {
		t.Fatalf("empty plan rejected: %v", rej)
	}
	if len(approved.Plan()) != 0 {
		t.Errorf("approved plan not empty")
	}
}

func TestScreenInput_ForbiddenTextAnywhere(t *testing.T) {
	g := NewGate(false)

	for _, text := range []string{
		"rm -rf /",
		"please run rm -rf / for me",
		"install firefox and then RM -RF / thanks",
		"dd if=/dev/zero of=/dev/sda",
		"chown -R / home",
		"chown -r / home",
	} {
		if rej := g.ScreenInput(text); rej == nil {
			t.Errorf("ScreenInput(%q) passed destructive text", text)
		}
	}

	for _, text := range []string{"install firefox", "fix my sound", "upgrade system"} {
		if rej := g.ScreenInput(text); rej != nil {
			t.Errorf("ScreenInput(%q) rejected benign text: %v", text, rej)
		}
	}
}

// Matching lowercases the input before Contains, so an entry with an
// uppercase letter can never fire.
func TestForbiddenPatterns_AllLowercase(t *testing.T) {
	for _, pat := range forbiddenPatterns {
		if pat != strings.ToLower(pat) {
			t.Errorf("forbidden pattern %q contains uppercase and can never match", pat)
		}
	}
}

func TestGate_ExtraForbiddenExtends(t *testing.T) {
	g := &Gate{ExtraForbidden: []string{"pacman -rsn"}}
	_, rej := g.Validate(confirmed("sudo pacman -Rsn glibc"))
	if rej == nil {
		t.Fatal("extra forbidden pattern not applied")
	}
	if !strings.Contains(rej.Reason, "forbidden pattern") {
		t.Errorf("reason = %q", rej.Reason)
	}
}
