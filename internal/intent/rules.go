package intent

import (
	"context"
	"strings"
)

// verb tables: the leading word decides the action, the rest is the target.
var (
	installWords = map[string]bool{"install": true, "get": true, "add": true}
	removeWords  = map[string]bool{"remove": true, "uninstall": true, "delete": true}
	openWords    = map[string]bool{"open": true, "launch": true, "start": true}
	logsWords    = map[string]bool{"logs": true, "journal": true}
)

// fixSubsystems maps keywords anywhere in the utterance to a Fix modifier.
// Order matters: more specific subsystems are checked first.
var fixSubsystems = []struct {
	keywords []string
	modifier string
}{
	{[]string{"bluetooth"}, "bluetooth"},
	{[]string{"sound", "audio", "pipewire"}, "sound"},
	{[]string{"internet", "network", "wifi"}, "internet"},
	{[]string{"time", "clock", "ntp"}, "time"},
}

// Rules is the deterministic, table-driven resolver. It is always the first
// link in the chain; the LLM fallback only sees input the tables rejected.
type Rules struct{}

// Resolve classifies text against the keyword tables. The returned Intent
// keeps the target in its original casing (package names are case-sensitive).
func (Rules) Resolve(_ context.Context, text string) (Intent, bool) {
	return Match(text)
}

// Match is the bare table matcher. It is shared with the translator
// fallback, which re-parses LLM replies through the same closed vocabulary.
func Match(text string) (Intent, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Unknown, false
	}

	lower := strings.ToLower(trimmed)
	first, rest := splitVerb(trimmed)

	if lower == "test ai" {
		return Intent{Action: ActionTestAI}, true
	}

	switch {
	case installWords[first]:
		return Intent{Action: ActionInstall, Target: rest}, true
	case removeWords[first]:
		return Intent{Action: ActionRemove, Target: rest}, true
	case openWords[first]:
		return Intent{Action: ActionOpen, Target: rest}, true
	case logsWords[first]:
		return Intent{Action: ActionLogs, Target: rest}, true
	}

	if strings.Contains(lower, "upgrade system") || strings.Contains(lower, "update system") || first == "upgrade" {
		return Intent{Action: ActionUpgrade}, true
	}

	if strings.Contains(lower, "clean cache") || strings.Contains(lower, "clear cache") || strings.Contains(lower, "cleanup") {
		return Intent{Action: ActionCleanCache}, true
	}

	// "fix <subsystem>" plus bare mentions like "my sound is broken".
	if first == "fix" || mentionsSubsystem(lower) {
		for _, fs := range fixSubsystems {
			for _, kw := range fs.keywords {
				if strings.Contains(lower, kw) {
					return Intent{Action: ActionFix, Modifier: fs.modifier}, true
				}
			}
		}
	}

	return Unknown, false
}

// splitVerb separates the first lowercased word from the remainder,
// preserving the remainder's original casing.
func splitVerb(text string) (string, string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ""
	}
	first := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), fields[0]))
	return first, rest
}

func mentionsSubsystem(lower string) bool {
	for _, fs := range fixSubsystems {
		for _, kw := range fs.keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
