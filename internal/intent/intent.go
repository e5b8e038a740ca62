package intent

import "context"

// Action is the closed set of operations archaid knows how to carry out.
type Action int

const (
	ActionUnknown Action = iota
	ActionInstall
	ActionRemove
	ActionOpen
	ActionFix
	ActionUpgrade
	ActionCleanCache
	ActionLogs
	ActionTestAI
)

// String returns the action name used in prompts and plan output.
func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionRemove:
		return "remove"
	case ActionOpen:
		return "open"
	case ActionFix:
		return "fix"
	case ActionUpgrade:
		return "upgrade"
	case ActionCleanCache:
		return "clean-cache"
	case ActionLogs:
		return "logs"
	case ActionTestAI:
		return "test-ai"
	default:
		return "unknown"
	}
}

// Intent is the structured meaning extracted from one user utterance.
// It is immutable once produced by a resolver.
type Intent struct {
	Action Action

	// Target is the package, application, or service the action applies to.
	// Empty when the utterance named an action but no target.
	Target string

	// Modifier narrows a Fix action to one subsystem
	// (sound, internet, bluetooth, time).
	Modifier string
}

// Unknown is the intent returned when no resolver matched.
var Unknown = Intent{Action: ActionUnknown}

// Resolver turns free text into an Intent. The boolean reports whether the
// resolver recognized the input at all; resolvers that do not match must
// leave classification to the next resolver in the chain.
type Resolver interface {
	Resolve(ctx context.Context, text string) (Intent, bool)
}

// Chain tries each resolver in order and returns the first match.
// An empty or exhausted chain yields Unknown.
type Chain []Resolver

// Resolve implements the rules-first, fallback-second contract: the first
// resolver that recognizes the input wins.
func (c Chain) Resolve(ctx context.Context, text string) Intent {
	for _, r := range c {
		if it, ok := r.Resolve(ctx, text); ok {
			return it
		}
	}
	return Unknown
}
