package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/earshot-tools/earshot/internal/probe"
)

// Theme defines colors for the console.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Per-outcome-status badge colors
	StatusColors map[probe.Status]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Width(14),

		statusColors: t.StatusColors,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header     lipgloss.Style
	Logo       lipgloss.Style
	Panel      lipgloss.Style
	FieldLabel lipgloss.Style

	statusColors map[probe.Status]string
}

// StatusStyle returns the badge style for an outcome status.
func (s Styles) StatusStyle(status probe.Status) lipgloss.Style {
	if color, ok := s.statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}
	return s.MutedText
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24",
		Surface:    "#192330",

		Border:      "#39506d",
		BorderFocus: "#719cd6",

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#575860",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
		Info:    "#63cdcf",

		StatusColors: map[probe.Status]string{
			probe.StatusIdle:    "#738091",
			probe.StatusLoading: "#dbc074",
			probe.StatusSuccess: "#81b29a",
			probe.StatusError:   "#c94f6d",
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#1f1f28",
		Surface:    "#2a2a37",

		Border:      "#54546d",
		BorderFocus: "#7e9cd8",

		Text:    "#dcd7ba",
		Muted:   "#727169",
		Faint:   "#54546d",
		Accent:  "#7e9cd8",
		Success: "#98bb6c",
		Warning: "#e6c384",
		Danger:  "#e82424",
		Info:    "#7fb4ca",

		StatusColors: map[probe.Status]string{
			probe.StatusIdle:    "#727169",
			probe.StatusLoading: "#e6c384",
			probe.StatusSuccess: "#98bb6c",
			probe.StatusError:   "#e82424",
		},
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#0f172a",
		Surface:    "#1e293b",

		Border:      "#334155",
		BorderFocus: "#38bdf8",

		Text:    "#e2e8f0",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#38bdf8",
		Success: "#4ade80",
		Warning: "#facc15",
		Danger:  "#f87171",
		Info:    "#818cf8",

		StatusColors: map[probe.Status]string{
			probe.StatusIdle:    "#94a3b8",
			probe.StatusLoading: "#facc15",
			probe.StatusSuccess: "#4ade80",
			probe.StatusError:   "#f87171",
		},
	}
}
