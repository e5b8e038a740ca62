package plan

import (
	"testing"

	"github.com/archaid/archaid/internal/intent"
)

// fakeProbe simulates what is installed on the target machine.
type fakeProbe struct {
	installed map[string]bool
	paru      bool
}

func (f fakeProbe) PackageInstalled(name string) bool { return f.installed[name] }
func (f fakeProbe) ParuAvailable() bool               { return f.paru }

func TestSynthesize_InstallDefault(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{paru: true})
	p := s.Synthesize(intent.Intent{Action: intent.ActionInstall, Target: "firefox"})

	if len(p) != 1 {
		t.Fatalf("plan length = %d, want 1", len(p))
	}
	if p[0].Line != "sudo pacman -S firefox" {
		t.Errorf("line = %q, want %q", p[0].Line, "sudo pacman -S firefox")
	}
	if p[0].Risk != RiskRequiresConfirm {
		t.Errorf("risk = %s, want confirm", p[0].Risk)
	}
}

func TestSynthesize_InstallPreferParuNoSudo(t *testing.T) {
	s := NewSynthesizer(Options{PreferParu: true, NoSudo: true}, fakeProbe{paru: true})
	p := s.Synthesize(intent.Intent{Action: intent.ActionInstall, Target: "firefox"})

	if len(p) != 1 || p[0].Line != "paru -S firefox" {
		t.Fatalf("plan = %v, want single paru -S firefox", p.Lines())
	}
}

func TestSynthesize_InstallPreferParuWithoutParuFallsBack(t *testing.T) {
	s := NewSynthesizer(Options{PreferParu: true}, fakeProbe{paru: false})
	p := s.Synthesize(intent.Intent{Action: intent.ActionInstall, Target: "firefox"})

	if len(p) != 1 || p[0].Line != "sudo pacman -S firefox" {
		t.Fatalf("plan = %v, want pacman tie-break", p.Lines())
	}
}

func TestSynthesize_AURSuffixAlwaysParu(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionInstall, Target: "brave-bin"})

	if len(p) != 1 || p[0].Line != "paru -S brave-bin" {
		t.Fatalf("plan = %v, want paru for AUR-only name", p.Lines())
	}
}

func TestSynthesize_InstallAlreadyInstalledIsEmpty(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{installed: map[string]bool{"firefox": true}})
	if p := s.Synthesize(intent.Intent{Action: intent.ActionInstall, Target: "firefox"}); len(p) != 0 {
		t.Fatalf("plan = %v, want empty for installed package", p.Lines())
	}
}

func TestSynthesize_TargetlessYieldsEmptyPlan(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	for _, action := range []intent.Action{intent.ActionInstall, intent.ActionRemove, intent.ActionOpen, intent.ActionLogs} {
		if p := s.Synthesize(intent.Intent{Action: action}); len(p) != 0 {
			t.Errorf("%s with no target produced %v, want empty plan", action, p.Lines())
		}
	}
}

func TestSynthesize_RemoveUsesRsn(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{installed: map[string]bool{"vlc": true}})
	p := s.Synthesize(intent.Intent{Action: intent.ActionRemove, Target: "vlc"})

	if len(p) != 1 || p[0].Line != "sudo pacman -Rsn vlc" {
		t.Fatalf("plan = %v, want sudo pacman -Rsn vlc", p.Lines())
	}
}

func TestSynthesize_RemoveAbsentIsEmpty(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	if p := s.Synthesize(intent.Intent{Action: intent.ActionRemove, Target: "vlc"}); len(p) != 0 {
		t.Fatalf("plan = %v, want empty for absent package", p.Lines())
	}
}

func TestSynthesize_OpenNotInstalledTwoSteps(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionOpen, Target: "vlc"})

	if len(p) != 2 {
		t.Fatalf("plan length = %d, want 2", len(p))
	}
	if p[0].Line != "sudo pacman -S vlc" || p[0].Risk != RiskRequiresConfirm {
		t.Errorf("step 1 = %q (%s), want confirmed install", p[0].Line, p[0].Risk)
	}
	if p[1].Line != "launch vlc" || p[1].Risk != RiskSafe {
		t.Errorf("step 2 = %q (%s), want safe launch", p[1].Line, p[1].Risk)
	}
}

func TestSynthesize_OpenInstalledLaunchOnly(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{installed: map[string]bool{"vlc": true}})
	p := s.Synthesize(intent.Intent{Action: intent.ActionOpen, Target: "vlc"})

	if len(p) != 1 || p[0].Line != "launch vlc" {
		t.Fatalf("plan = %v, want launch only", p.Lines())
	}
}

func TestSynthesize_UpgradeOffline(t *testing.T) {
	s := NewSynthesizer(Options{Offline: true}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionUpgrade})

	if len(p) != 1 {
		t.Fatalf("plan length = %d, want 1", len(p))
	}
	if p[0].Line != "pacman -Syu" || p[0].Risk != RiskForbidden || p[0].Reason != "network required" {
		t.Errorf("got %q risk=%s reason=%q, want forbidden pacman -Syu / network required",
			p[0].Line, p[0].Risk, p[0].Reason)
	}
}

func TestSynthesize_UpgradeOnline(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionUpgrade})

	if len(p) != 1 || p[0].Line != "sudo pacman -Syu" {
		t.Fatalf("plan = %v, want sudo pacman -Syu", p.Lines())
	}
}

func TestSynthesize_LogsIsSafe(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionLogs, Target: "sshd"})

	if len(p) != 1 {
		t.Fatalf("plan length = %d, want 1", len(p))
	}
	if p[0].Line != "journalctl -u sshd --no-pager -n 50" {
		t.Errorf("line = %q", p[0].Line)
	}
	if p[0].Risk != RiskSafe {
		t.Errorf("risk = %s, want safe", p[0].Risk)
	}
}

func TestSynthesize_FixInternet(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionFix, Modifier: "internet"})

	want := []string{"sudo systemctl restart NetworkManager", "ip link"}
	got := p.Lines()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("plan = %v, want %v", got, want)
	}
	if p[1].Risk != RiskSafe {
		t.Errorf("reachability check risk = %s, want safe", p[1].Risk)
	}
}

func TestSynthesize_FixSoundInstallsMissingPipewire(t *testing.T) {
	s := NewSynthesizer(Options{}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionFix, Modifier: "sound"})

	want := []string{"sudo pacman -S pipewire", "systemctl --user restart pipewire"}
	got := p.Lines()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("plan = %v, want %v", got, want)
	}
}

func TestSynthesize_AutoConfirmAppendsNoconfirm(t *testing.T) {
	s := NewSynthesizer(Options{AutoConfirm: true}, fakeProbe{})
	p := s.Synthesize(intent.Intent{Action: intent.ActionInstall, Target: "firefox"})

	if len(p) != 1 || p[0].Line != "sudo pacman -S firefox --noconfirm" {
		t.Fatalf("plan = %v, want --noconfirm appended", p.Lines())
	}
}

func TestSynthesize_PackageMutationNeverSafe(t *testing.T) {
	s := NewSynthesizer(Options{AutoConfirm: true}, fakeProbe{paru: true})
	intents := []intent.Intent{
		{Action: intent.ActionInstall, Target: "firefox"},
		{Action: intent.ActionRemove, Target: "bash"},
		{Action: intent.ActionUpgrade},
		{Action: intent.ActionCleanCache},
	}
	probeAll := fakeProbe{installed: map[string]bool{"bash": true}, paru: true}
	s = NewSynthesizer(Options{AutoConfirm: true}, probeAll)

	for _, it := range intents {
		for _, cmd := range s.Synthesize(it) {
			if cmd.Risk == RiskSafe {
				t.Errorf("%s produced safe-tagged mutating command %q", it.Action, cmd.Line)
			}
		}
	}
}

func TestSynthesize_UnknownIsEmpty(t *testing.T) {
	s := NewSynthesizer(Options{}, nil)
	if p := s.Synthesize(intent.Unknown); len(p) != 0 {
		t.Fatalf("plan = %v, want empty for unknown intent", p.Lines())
	}
}
