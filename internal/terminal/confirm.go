package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/archaid/archaid/internal/core"
)

// ErrQuitAll is returned when the user cancels the whole plan. It is the
// controller's abort sentinel, so the remaining steps are skipped cleanly
// rather than reported as a failure.
var ErrQuitAll = core.ErrUserAbort

// Confirm prompts the user for command confirmation on stdin/stdout.
// Returns true if approved, false if skipped, ErrQuitAll if cancelled.
func Confirm(line, reason string) (bool, error) {
	return ConfirmWithIO(line, reason, nil, nil)
}

// ConfirmWithIO prompts the user with provided IO (for testing)
func ConfirmWithIO(line, reason string, input io.Reader, output io.Writer) (bool, error) {
	if input == nil {
		input = os.Stdin
	}
	return ConfirmWithScanner(line, reason, bufio.NewScanner(input), output)
}

// ConfirmWithScanner prompts on an already-open line scanner. Callers that
// interleave prompts with their own line reading must pass their scanner
// here rather than re-wrap the reader: a second buffered scanner reads
// ahead and swallows the answer.
func ConfirmWithScanner(line, reason string, scanner *bufio.Scanner, output io.Writer) (bool, error) {
	if output == nil {
		output = os.Stdout
	}

	fmt.Fprintf(output, "\n⚠️  This command requires confirmation\n\n")
	fmt.Fprintf(output, "Command: %s\n", line)
	if reason != "" {
		fmt.Fprintf(output, "Reason:  %s\n", reason)
	}
	fmt.Fprintf(output, "\n[y] run  [s] skip  [q] cancel all\n> ")

	for scanner.Scan() {
		choice := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch choice {
		case "y", "yes":
			fmt.Fprintln(output, "✓ approved")
			return true, nil
		case "s", "n", "no":
			fmt.Fprintln(output, "⊘ skipped")
			return false, nil
		case "q":
			fmt.Fprintln(output, "✗ cancelled all remaining commands")
			return false, ErrQuitAll
		default:
			fmt.Fprintf(output, "invalid choice, enter y/s/q: ")
		}
	}

	if err := scanner.Err(); err != nil {
		return false, err
	}

	// EOF without an answer counts as a skip.
	return false, nil
}
