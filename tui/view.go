package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/zstatus/internal/statusline/render"
)

var helpKeys = []struct {
	key  string
	desc string
}{
	{"m", "mode"},
	{"n", "new tab"},
	{"tab", "next tab"},
	{"s", "session"},
	{"!", "notify"},
	{"x", "dismiss"},
	{"r", "run commands"},
	{"q", "quit"},
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.line, ""}
	if m.err != nil {
		sections = append(sections, m.renderError())
	}
	if m.lastAction != "" {
		sections = append(sections, m.styles.Action.Render("last click: "+m.lastAction))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderError renders the error line, cut to the terminal width
func (m Model) renderError() string {
	text := "error: " + m.err.Error()
	if m.width > 0 {
		text = render.Truncate(text, m.width)
	}
	return m.styles.Error.Render(text)
}

// renderFooter renders the key help
func (m Model) renderFooter() string {
	parts := make([]string, 0, len(helpKeys))
	for _, k := range helpKeys {
		parts = append(parts, m.styles.Key.Render(k.key)+" "+m.styles.Help.Render(k.desc))
	}
	return strings.Join(parts, m.styles.Help.Render(" · "))
}
