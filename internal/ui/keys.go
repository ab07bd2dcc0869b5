package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the console. Letters stay free
// for the text inputs, so globals live on function and control keys.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	PanelForensics key.Binding
	PanelProbe     key.Binding
	PanelHoneypot  key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	FillClip  key.Binding

	ScrollDown key.Binding
	ScrollUp   key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),

		PanelForensics: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "Forensics panel"),
		),
		PanelProbe: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "Endpoint tester"),
		),
		PanelHoneypot: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "Honeypot tester"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Send request"),
		),
		FillClip: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "Fill from last clip"),
		),

		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "Scroll outcome down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Scroll outcome up"),
		),
	}
}
