package sim

import (
	"sort"

	"github.com/google/uuid"
)

// ServiceState is the lifecycle state of one simulated systemd unit.
type ServiceState string

const (
	ServiceStopped ServiceState = "stopped"
	ServiceRunning ServiceState = "running"
	ServiceFailed  ServiceState = "failed"
)

// HistoryEntry records one executed command and its outcome.
type HistoryEntry struct {
	ID      string
	Command string
	Outcome Outcome
}

// State is the in-memory model of the simulated machine for one session.
// It is mutated only by the subsystem emulators and the scenario loader,
// and is passed explicitly to every Apply call: there is no ambient state.
type State struct {
	SessionID string

	// Packages maps installed package name to its version tag.
	Packages map[string]string

	// Services maps unit name to its current state. Absence means the
	// unit does not exist on this machine.
	Services map[string]ServiceState

	// Interfaces maps network interface name to link-up.
	Interfaces map[string]bool

	// Online is the overall network reachability flag.
	Online bool

	// Failure-mode flags seeded by scenarios.
	PacmanBroken    bool
	PipewireMissing bool

	// History is the ordered log of executed commands.
	History []HistoryEntry
}

// NewState seeds a fresh simulated Arch machine: a handful of base
// packages, audio and networking services running, wifi link down.
func NewState() *State {
	return &State{
		SessionID: uuid.NewString(),
		Packages: map[string]string{
			"bash":           "5.2",
			"linux":          "6.12",
			"pacman":         "7.0",
			"systemd":        "256",
			"paru":           "2.0",
			"networkmanager": "1.48",
		},
		Services: map[string]ServiceState{
			"pipewire":       ServiceRunning,
			"NetworkManager": ServiceRunning,
		},
		Interfaces: map[string]bool{
			"lo":     true,
			"wlp2s0": false,
		},
		Online: true,
	}
}

// PackageInstalled implements plan.Probe.
func (s *State) PackageInstalled(name string) bool {
	_, ok := s.Packages[name]
	return ok
}

// ParuAvailable implements plan.Probe.
func (s *State) ParuAvailable() bool {
	return s.PackageInstalled("paru")
}

// InstalledNames returns the installed package names in sorted order.
func (s *State) InstalledNames() []string {
	names := make([]string, 0, len(s.Packages))
	for name := range s.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// record appends an executed command to the session history.
func (s *State) record(cmd string, out Outcome) {
	s.History = append(s.History, HistoryEntry{
		ID:      uuid.NewString(),
		Command: cmd,
		Outcome: out,
	})
}
