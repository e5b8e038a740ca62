// Package tui provides an interactive review screen for a synthesized
// plan: the user walks the command list and approves or rejects each
// entry before anything runs.
package tui

import (
	"fmt"
	"strings"

	"github.com/archaid/archaid/internal/plan"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Decision is the per-command review outcome.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionApproved
	DecisionRejected
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	safeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	confirmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model is the Bubble Tea model for the plan review screen
type model struct {
	commands  plan.Plan
	decisions []Decision
	cursor    int
	done      bool
	aborted   bool
}

func newModel(p plan.Plan) model {
	decisions := make([]Decision, len(p))
	for i, cmd := range p {
		// Safe commands need no review; pre-approve them.
		if cmd.Risk == plan.RiskSafe {
			decisions[i] = DecisionApproved
		}
	}
	return model{commands: p, decisions: decisions}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.commands)-1 {
			m.cursor++
		}
	case "a", "y":
		m.decisions[m.cursor] = DecisionApproved
		if m.cursor < len(m.commands)-1 {
			m.cursor++
		}
	case "r", "n":
		m.decisions[m.cursor] = DecisionRejected
		if m.cursor < len(m.commands)-1 {
			m.cursor++
		}
	case "A":
		for i := range m.decisions {
			m.decisions[i] = DecisionApproved
		}
	case "R":
		for i := range m.decisions {
			m.decisions[i] = DecisionRejected
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the review screen
func (m model) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Review plan") + "\n\n")

	for i, cmd := range m.commands {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		var badge string
		switch cmd.Risk {
		case plan.RiskSafe:
			badge = safeStyle.Render("[safe]")
		default:
			badge = confirmStyle.Render("[confirm]")
		}

		var mark string
		switch m.decisions[i] {
		case DecisionApproved:
			mark = approvedStyle.Render("✓")
		case DecisionRejected:
			mark = rejectedStyle.Render("✗")
		default:
			mark = dimStyle.Render("·")
		}

		fmt.Fprintf(&b, "%s%s %s %s  %s\n", cursor, mark, badge, cmd.Line, dimStyle.Render(cmd.Reason))
	}

	b.WriteString("\n" + dimStyle.Render("a/y approve  r/n reject  A all  R none  enter run approved  q abort"))
	return b.String()
}

// Review presents the plan for interactive approval and returns the
// approved subset in original order. An aborted review returns an empty
// plan: nothing runs unless explicitly approved.
func Review(p plan.Plan) (plan.Plan, error) {
	if len(p) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(newModel(p)).Run()
	if err != nil {
		return nil, err
	}

	m := final.(model)
	if m.aborted {
		return nil, nil
	}

	var approved plan.Plan
	for i, cmd := range m.commands {
		if m.decisions[i] == DecisionApproved {
			approved = append(approved, cmd)
		}
	}
	return approved, nil
}
