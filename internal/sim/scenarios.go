package sim

import (
	"errors"
	"fmt"
	"sort"
)

// ErrScenarioNotFound is returned for an unknown scenario name. An unknown
// scenario always fails loudly; it never silently no-ops.
var ErrScenarioNotFound = errors.New("scenario not found")

// scenarios are preset state mutations reproducing known failure modes.
var scenarios = map[string]func(*State){
	"audio-broken": func(st *State) {
		st.PipewireMissing = true
		delete(st.Services, "pipewire")
		delete(st.Packages, "pipewire")
	},
	"pacman-broken": func(st *State) {
		st.PacmanBroken = true
	},
	"network-down": func(st *State) {
		st.Online = false
		for iface := range st.Interfaces {
			st.Interfaces[iface] = false
		}
	},
}

// ApplyScenario seeds a deterministic starting condition for a session.
func ApplyScenario(name string, st *State) error {
	mutate, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
	}
	mutate(st)
	return nil
}

// ScenarioNames returns the known scenario names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
