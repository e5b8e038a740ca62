package sim

import (
	"fmt"
	"strings"

	"github.com/archaid/archaid/internal/plan"
)

// applyParu emulates the AUR helper. Unlike pacman it resolves AUR-only
// names, and it can see repo packages too.
func applyParu(fields []string, st *State) Outcome {
	op, target := pkgOp(fields)
	switch op {
	case "-Qq", "-Q":
		var aur []string
		for _, name := range st.InstalledNames() {
			if plan.IsAURName(name) {
				aur = append(aur, name)
			}
		}
		return success(strings.Join(aur, "\n"))

	case "-S":
		if target == "" {
			return failure("error: no targets specified", 1)
		}
		if !st.Online {
			return failure("error: failed to retrieve some files", 1)
		}
		st.Packages[target] = "1.0"
		return success(fmt.Sprintf(":: Resolving AUR dependencies...\n:: Installing %s", target))

	case "-R", "-Rsn":
		if target == "" {
			return failure("error: no targets specified", 1)
		}
		if _, ok := st.Packages[target]; !ok {
			return failure(fmt.Sprintf("error: target not found: %s", target), 1)
		}
		delete(st.Packages, target)
		return success(fmt.Sprintf("removing %s", target))

	default:
		return failure("paru: invalid operation", 1)
	}
}
