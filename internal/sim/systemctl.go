package sim

import (
	"fmt"
	"strings"
)

// applyServiceManager emulates systemctl, journalctl, and timedatectl.
func applyServiceManager(fields []string, st *State) Outcome {
	switch fields[0] {
	case "systemctl":
		return applySystemctl(fields, st)
	case "journalctl":
		return applyJournalctl(fields, st)
	case "timedatectl":
		return success("NTP service: active\nSystem clock synchronized: yes")
	default:
		return failure(fmt.Sprintf("%s: unknown command", fields[0]), 1)
	}
}

func applySystemctl(fields []string, st *State) Outcome {
	var op, unit string
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "--") {
			continue // --user selects the manager instance, irrelevant here
		}
		if op == "" {
			op = f
			continue
		}
		unit = f
	}

	if unit != "" && unit == "pipewire" && st.PipewireMissing {
		return failure("Unit pipewire.service could not be found.", 4)
	}

	switch op {
	case "restart", "start":
		if _, ok := st.Services[unit]; !ok {
			return failure(fmt.Sprintf("Unit %s.service could not be found.", unit), 4)
		}
		st.Services[unit] = ServiceRunning
		if unit == "NetworkManager" {
			st.Online = true
			for iface := range st.Interfaces {
				st.Interfaces[iface] = true
			}
		}
		return success(fmt.Sprintf("Restarting %s", unit))

	case "stop":
		if _, ok := st.Services[unit]; !ok {
			return failure(fmt.Sprintf("Unit %s.service could not be found.", unit), 4)
		}
		st.Services[unit] = ServiceStopped
		return success(fmt.Sprintf("Stopping %s", unit))

	case "status", "is-active":
		state, ok := st.Services[unit]
		if !ok {
			return failure(fmt.Sprintf("Unit %s.service could not be found.", unit), 4)
		}
		if op == "is-active" {
			if state == ServiceRunning {
				return success("active")
			}
			return failure(string(state), 3)
		}
		return success(fmt.Sprintf("%s.service - %s", unit, state))

	case "enable", "disable":
		if _, ok := st.Services[unit]; !ok {
			return failure(fmt.Sprintf("Unit %s.service could not be found.", unit), 4)
		}
		return success(fmt.Sprintf("%sd %s", op, unit))

	default:
		return failure("systemctl: unknown operation", 1)
	}
}

func applyJournalctl(fields []string, st *State) Outcome {
	var unit string
	for i, f := range fields {
		if f == "-u" && i+1 < len(fields) {
			unit = fields[i+1]
		}
	}
	if unit == "" {
		return failure("journalctl: no unit specified", 1)
	}

	state, ok := st.Services[unit]
	if !ok {
		return success(fmt.Sprintf("-- No entries for unit %s.service --", unit))
	}
	return success(fmt.Sprintf("-- Logs for %s.service --\n%s.service: current state %s", unit, unit, state))
}
