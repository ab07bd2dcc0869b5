package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: logo, panel tabs, engine identity, and
// the active panel's outcome badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("earshot", styles.Logo))

	for _, p := range panelOrder {
		label := panelTitles[p]
		style := styles.MutedText
		if p == m.active {
			style = styles.AccentText.Bold(true)
		}
		parts = append(parts, bg.Render(label, style))
	}

	if m.config != nil {
		parts = append(parts, bg.Render(m.config.Model, styles.FaintText))
	}

	if badge := m.activeStatusBadge(styles, bg); badge != "" {
		parts = append(parts, badge)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// activeStatusBadge renders the outcome status of the active panel, with a
// spinner frame while a request is in flight.
func (m Model) activeStatusBadge(styles Styles, bg BgStyle) string {
	status := m.activeStatus()
	if status == "" {
		return ""
	}
	label := strings.ToUpper(string(status))
	badge := bg.Render(label, styles.StatusStyle(status))
	if m.loading() {
		badge = bg.Render(m.spin.View(), styles.WarningText) + bg.Space() + badge
	}
	return badge
}

// renderCommandBar renders the bottom bar with context-sensitive key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	hint := func(key, desc string) string {
		return bg.Render(key, styles.AccentText) + bg.Space() + bg.Render(desc, styles.MutedText)
	}

	parts := []string{
		hint("enter", "send"),
		hint("tab", "field"),
		hint("F2-F4", "panel"),
	}
	if m.active == PanelProbe && m.lastClip != nil {
		parts = append(parts, hint("ctrl+f", "fill clip"))
	}
	parts = append(parts,
		hint("pgup/pgdn", "scroll"),
		hint("F1", "help"),
		hint("ctrl+c", "quit"),
	)

	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Padding(0, 1)
	return bar.Render(bg.Join(parts, sep))
}
