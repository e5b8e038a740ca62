package intent

import (
	"context"
	"strings"

	"github.com/archaid/archaid/internal/ai"
)

// TranslatorResolver is the LLM fallback link. It asks the external
// translator to restate the utterance inside the closed action vocabulary
// and re-parses the reply with the same rule matcher used for direct input.
// The reply is never trusted as shell text.
type TranslatorResolver struct {
	Translator ai.Translator
}

// Resolve queries the translator. Any transport error, timeout, or
// out-of-vocabulary reply degrades to no-match; the chain then yields
// Unknown instead of surfacing the failure.
func (t TranslatorResolver) Resolve(ctx context.Context, text string) (Intent, bool) {
	if t.Translator == nil {
		return Unknown, false
	}

	reply, err := t.Translator.Translate(ctx, text)
	if err != nil {
		return Unknown, false
	}

	for _, line := range strings.Split(reply, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "`")
		if line == "" || strings.EqualFold(line, "unknown") {
			continue
		}
		if it, ok := Match(line); ok {
			return it, true
		}
	}

	return Unknown, false
}
