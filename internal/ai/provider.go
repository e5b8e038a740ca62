package ai

import "context"

// Message represents a chat message
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// SystemPrompt is the fixed instruction sent with every translation request.
// It pins the model to the closed action vocabulary so the reply can be
// re-parsed by the rule matcher, and forbids destructive output outright.
const SystemPrompt = `You are a command intent translator for an Arch Linux assistant.

Restate the user's request as EXACTLY ONE line using ONLY these forms:
  install <package>
  remove <package>
  open <application>
  fix sound | fix internet | fix bluetooth | fix time
  upgrade system
  clean cache
  logs <service>

Rules:
- Output ONLY the single line, no markdown, no explanation
- If the request does not fit any form, output: unknown
- NEVER output shell commands, pipes, redirects, or anything destructive`

// Translator is the boundary to the external LLM backend. Implementations
// perform one bounded-timeout request; tests substitute a deterministic fake.
type Translator interface {
	Translate(ctx context.Context, input string) (string, error)
}
