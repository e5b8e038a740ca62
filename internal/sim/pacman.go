package sim

import (
	"fmt"
	"strings"

	"github.com/archaid/archaid/internal/plan"
)

// applyPacman emulates the repo package manager. It deliberately cannot
// resolve AUR-only names: that asymmetry is the real pacman/paru split.
func applyPacman(fields []string, st *State) Outcome {
	if st.PacmanBroken {
		return failure("pacman: error while loading shared libraries: libalpm.so.14", 127)
	}

	op, target := pkgOp(fields)
	switch op {
	case "-Qq", "-Q":
		return success(strings.Join(st.InstalledNames(), "\n"))

	case "-S":
		if target == "" {
			return failure("error: no targets specified (use -h for help)", 1)
		}
		if !st.Online {
			return failure("error: failed to retrieve some files", 1)
		}
		if plan.IsAURName(target) {
			return failure(fmt.Sprintf("error: target not found: %s", target), 1)
		}
		st.Packages[target] = "1.0"
		if target == "pipewire" {
			st.PipewireMissing = false
			st.Services["pipewire"] = ServiceRunning
		}
		return success(fmt.Sprintf("resolving dependencies...\ninstalling %s", target))

	case "-R", "-Rs", "-Rsn":
		if target == "" {
			return failure("error: no targets specified (use -h for help)", 1)
		}
		if _, ok := st.Packages[target]; !ok {
			return failure(fmt.Sprintf("error: target not found: %s", target), 1)
		}
		delete(st.Packages, target)
		return success(fmt.Sprintf("removing %s", target))

	case "-Syu":
		if !st.Online {
			return failure("error: failed to synchronize all databases (unable to lock database)", 1)
		}
		return success(":: Synchronizing package databases...\n:: Starting full system upgrade...")

	case "-Sc":
		return success("removing old packages from cache...")

	default:
		return failure("pacman: invalid operation", 1)
	}
}

// pkgOp extracts the operation flag and the last non-flag argument from a
// pacman or paru invocation. --noconfirm and friends are ignored.
func pkgOp(fields []string) (op, target string) {
	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "--"):
			// option flag, not a target
		case strings.HasPrefix(f, "-"):
			if op == "" {
				op = f
			}
		default:
			target = f
		}
	}
	return op, target
}
