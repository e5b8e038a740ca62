package sim

import (
	"fmt"
	"sort"
	"strings"
)

// applyIP emulates the network subsystem. Reachability is reported from
// current state only; it does not depend on packages or services.
func applyIP(fields []string, st *State) Outcome {
	if len(fields) >= 2 && fields[1] == "link" {
		names := make([]string, 0, len(st.Interfaces))
		for iface := range st.Interfaces {
			names = append(names, iface)
		}
		sort.Strings(names)

		lines := make([]string, 0, len(names))
		for _, iface := range names {
			status := "DOWN"
			if st.Interfaces[iface] {
				status = "UP"
			}
			lines = append(lines, fmt.Sprintf("%s: %s", iface, status))
		}
		return success(strings.Join(lines, "\n"))
	}

	return failure("ip: unknown command", 1)
}

// applyLauncher emulates launching an installed application, plus the
// trivial echo used by the built-in AI self-test.
func applyLauncher(fields []string, st *State) Outcome {
	if fields[0] == "echo" {
		return success(strings.Join(fields[1:], " "))
	}

	if len(fields) < 2 {
		return failure("launch: missing application name", 1)
	}
	app := fields[1]
	if !st.PackageInstalled(app) {
		return failure(fmt.Sprintf("%s: not installed", app), 127)
	}
	return success(fmt.Sprintf("launching %s", app))
}
