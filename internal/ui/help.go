package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Panels",
			items: []helpItem{
				{"F2", "Forensic analysis"},
				{"F3", "Endpoint tester"},
				{"F4", "Honeypot tester"},
			},
		},
		{
			title: "Form",
			items: []helpItem{
				{"tab", "Next field"},
				{"shift+tab", "Previous field"},
				{"enter", "Send request"},
				{"ctrl+f", "Fill payload from last clip"},
			},
		},
		{
			title: "Outcome",
			items: []helpItem{
				{"pgdn/ctrl+d", "Scroll down"},
				{"pgup/ctrl+u", "Scroll up"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"ctrl+t", "Cycle theme"},
				{"F1", "Toggle help"},
				{"esc", "Close help"},
				{"ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(14)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
