package terminal

import (
	"fmt"
	"strings"

	"github.com/archaid/archaid/internal/plan"
	"github.com/charmbracelet/glamour"
)

// Renderer renders markdown plan summaries for the terminal.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a Renderer wrapped to the given width.
func NewRenderer(width int) (*Renderer, error) {
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{term: term}, nil
}

// Render renders markdown, falling back to the raw text on failure.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.term.Render(markdown)
	if err != nil {
		return markdown, nil
	}
	return out, nil
}

// PlanMarkdown formats a plan as a markdown summary for suggest mode.
func PlanMarkdown(p plan.Plan) string {
	if len(p) == 0 {
		return "## Plan\n\nNothing to do.\n"
	}

	var b strings.Builder
	b.WriteString("## Plan\n\n")
	for i, cmd := range p {
		fmt.Fprintf(&b, "%d. `%s` — %s *(%s)*\n", i+1, cmd.Line, cmd.Reason, cmd.Risk)
	}
	b.WriteString("\nRun again with `--apply` to execute.\n")
	return b.String()
}
