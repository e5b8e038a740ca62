package plan

// Risk classifies how a synthesized command must be treated before it runs.
type Risk int

const (
	// RiskSafe marks read-only commands that never need confirmation.
	RiskSafe Risk = iota

	// RiskRequiresConfirm marks mutating commands. Package-mutating
	// commands are never downgraded below this level.
	RiskRequiresConfirm

	// RiskForbidden marks commands the synthesizer already knows cannot
	// run under the current configuration. The gate rejects them.
	RiskForbidden
)

// String returns the risk tag shown next to each plan entry.
func (r Risk) String() string {
	switch r {
	case RiskSafe:
		return "safe"
	case RiskRequiresConfirm:
		return "confirm"
	case RiskForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Command is one concrete shell command with its risk tag and the reason
// it was synthesized.
type Command struct {
	Line   string
	Risk   Risk
	Reason string
}

// Plan is the ordered command sequence synthesized for one intent.
type Plan []Command

// Lines returns the bare command strings in order.
func (p Plan) Lines() []string {
	lines := make([]string, len(p))
	for i, c := range p {
		lines[i] = c.Line
	}
	return lines
}
