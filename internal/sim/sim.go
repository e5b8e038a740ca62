// Package sim emulates the package manager, AUR helper, service manager,
// and network subsystems of an Arch machine, so the resolution and safety
// pipeline can be exercised without mutating a real system.
package sim

import (
	"fmt"
	"strings"
)

// Outcome is the result of applying one command to the state.
type Outcome struct {
	OK   bool
	Text string
	Code int
}

func success(text string) Outcome {
	return Outcome{OK: true, Text: text}
}

func failure(text string, code int) Outcome {
	return Outcome{Text: text, Code: code}
}

// Subsystem is the closed set of emulated subsystems. Dispatch over it is
// an exhaustive switch, so adding a subsystem is a compile-time-checked
// change at the dispatch site.
type Subsystem int

const (
	SubsystemNone Subsystem = iota
	SubsystemPackageManager
	SubsystemAurHelper
	SubsystemServiceManager
	SubsystemNetwork
	SubsystemLauncher
)

// Classify maps a command's leading token to the subsystem that owns it.
// A sudo prefix is transparent: the simulator has no privilege model.
func Classify(cmd string) (Subsystem, []string) {
	fields := strings.Fields(strings.TrimSpace(cmd))
	if len(fields) > 0 && fields[0] == "sudo" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return SubsystemNone, nil
	}
	switch fields[0] {
	case "pacman":
		return SubsystemPackageManager, fields
	case "paru":
		return SubsystemAurHelper, fields
	case "systemctl", "journalctl", "timedatectl":
		return SubsystemServiceManager, fields
	case "ip":
		return SubsystemNetwork, fields
	case "launch", "echo":
		return SubsystemLauncher, fields
	default:
		return SubsystemNone, fields
	}
}

// Simulator applies commands to an exclusively-owned State handle.
type Simulator struct{}

// NewSimulator creates a simulator. It holds no state of its own.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Apply executes one command against the state and records it in the
// session history. Unrecognized commands fail deterministically; they
// never crash and never mutate state.
func (sim *Simulator) Apply(cmd string, st *State) Outcome {
	subsystem, fields := Classify(cmd)

	var out Outcome
	switch subsystem {
	case SubsystemPackageManager:
		out = applyPacman(fields, st)
	case SubsystemAurHelper:
		out = applyParu(fields, st)
	case SubsystemServiceManager:
		out = applyServiceManager(fields, st)
	case SubsystemNetwork:
		out = applyIP(fields, st)
	case SubsystemLauncher:
		out = applyLauncher(fields, st)
	case SubsystemNone:
		if len(fields) == 0 {
			out = failure("empty command", 1)
		} else {
			out = failure(fmt.Sprintf("%s: command not found", fields[0]), 127)
		}
	}

	st.record(cmd, out)
	return out
}
