package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/earshot-tools/earshot/internal/clip"
	"github.com/earshot-tools/earshot/internal/config"
	"github.com/earshot-tools/earshot/internal/forensic"
	"github.com/earshot-tools/earshot/internal/prefs"
	"github.com/earshot-tools/earshot/internal/probe"
	"github.com/earshot-tools/earshot/internal/state"
)

// Panel identifies one of the three console panels.
type Panel int

const (
	PanelForensics Panel = iota
	PanelProbe
	PanelHoneypot
)

var panelOrder = []Panel{PanelForensics, PanelProbe, PanelHoneypot}

var panelTitles = map[Panel]string{
	PanelForensics: "Forensics",
	PanelProbe:     "Endpoint",
	PanelHoneypot:  "Honeypot",
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Engine    forensic.Analyzer
	Prober    *probe.Client
	Panels    *state.Panels
	Config    *config.Config
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	engine    forensic.Analyzer
	prober    *probe.Client
	panels    *state.Panels
	config    *config.Config
	prefsPath string

	// UI state
	keys     keyMap
	theme    Theme
	active   Panel
	width    int
	height   int
	ready    bool
	showHelp bool

	// Shared widgets
	spin    spinner.Model
	outcome viewport.Model

	// Panel forms
	forensics form
	probe     form
	honeypot  form

	// Last clip loaded by the forensics panel, reused by ctrl+f.
	lastClip *clip.Clip
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	probeEndpoint := ""
	honeypotEndpoint := ""
	if opts.Config != nil {
		probeEndpoint = opts.Config.ProbeEndpoint
		honeypotEndpoint = opts.Config.HoneypotEndpoint
	}

	theme := GetTheme(themeName)

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))

	m := Model{
		ctx:       ctx,
		engine:    opts.Engine,
		prober:    opts.Prober,
		panels:    opts.Panels,
		config:    opts.Config,
		prefsPath: prefsPath,
		keys:      defaultKeyMap(),
		theme:     theme,
		active:    PanelForensics,
		spin:      spin,
		forensics: newForensicsForm(),
		probe:     newProbeForm(probeEndpoint),
		honeypot:  newHoneypotForm(honeypotEndpoint),
	}
	m.forensics.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutOutcome()
		m.ready = true
		m.refreshOutcome()
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case analysisDoneMsg, probeDoneMsg, honeypotDoneMsg:
		m.refreshOutcome()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderPanel())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.PanelForensics):
		return m, m.switchPanel(PanelForensics)

	case key.Matches(msg, m.keys.PanelProbe):
		return m, m.switchPanel(PanelProbe)

	case key.Matches(msg, m.keys.PanelHoneypot):
		return m, m.switchPanel(PanelHoneypot)

	case key.Matches(msg, m.keys.NextField):
		return m, m.activeForm().Next()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.activeForm().Prev()

	case key.Matches(msg, m.keys.Submit):
		cmd := m.submit()
		m.refreshOutcome()
		return m, cmd

	case key.Matches(msg, m.keys.FillClip):
		if m.active == PanelProbe {
			m.fillFromClip()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.outcome.LineDown(3)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.outcome.LineUp(3)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		return m, nil
	}

	return m, m.activeForm().Update(msg)
}

// submit dispatches the active panel's request.
func (m *Model) submit() tea.Cmd {
	switch m.active {
	case PanelForensics:
		return m.startAnalysis()
	case PanelProbe:
		return m.startProbe()
	case PanelHoneypot:
		return m.startHoneypot()
	}
	return nil
}

// switchPanel moves focus to another panel and rebuilds the outcome view.
func (m *Model) switchPanel(p Panel) tea.Cmd {
	if p == m.active {
		return nil
	}
	m.activeForm().Blur()
	m.active = p
	m.layoutOutcome()
	m.refreshOutcome()
	return m.activeForm().Focus()
}

// activeForm returns the form owned by the active panel.
func (m *Model) activeForm() *form {
	switch m.active {
	case PanelProbe:
		return &m.probe
	case PanelHoneypot:
		return &m.honeypot
	default:
		return &m.forensics
	}
}

// activeStatus returns the outcome status of the active panel.
func (m Model) activeStatus() probe.Status {
	if m.panels == nil {
		return ""
	}
	switch m.active {
	case PanelForensics:
		return m.panels.Analysis.Get().Status
	case PanelProbe:
		return m.panels.Probe.Get().Outcome.Status
	case PanelHoneypot:
		return m.panels.Honeypot.Get().Outcome.Status
	}
	return ""
}

// loading reports whether the active panel has a request in flight.
func (m Model) loading() bool {
	return m.activeStatus() == probe.StatusLoading
}

// layoutOutcome sizes the outcome viewport to the space below the form.
func (m *Model) layoutOutcome() {
	formHeight := len(m.activeForm().inputs)
	// header + command bar + panel border/padding + form + separator
	height := m.height - formHeight - 8
	if height < 3 {
		height = 3
	}
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	m.outcome.Width = width
	m.outcome.Height = height
}

// refreshOutcome rebuilds the outcome viewport from the active panel's
// holder.
func (m *Model) refreshOutcome() {
	if m.panels == nil {
		return
	}
	styles := m.theme.Styles()
	var content string
	switch m.active {
	case PanelForensics:
		content = renderForensicsOutcome(m.panels.Analysis.Get(), styles)
	case PanelProbe:
		content = renderProbeOutcome(m.panels.Probe.Get(), styles)
	case PanelHoneypot:
		content = renderHoneypotOutcome(m.panels.Honeypot.Get(), styles)
	}
	m.outcome.SetContent(content)
	m.outcome.GotoTop()
}

// renderPanel renders the active panel: title, form, and outcome area.
func (m Model) renderPanel() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(panelTitles[m.active]))
	b.WriteString("\n\n")
	b.WriteString(m.activeFormView(styles))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", m.outcome.Width)))
	b.WriteString("\n")
	b.WriteString(m.outcome.View())

	panel := styles.Panel.Width(m.width - 2)
	return panel.Render(b.String())
}

func (m Model) activeFormView(styles Styles) string {
	switch m.active {
	case PanelProbe:
		return m.probe.View(styles)
	case PanelHoneypot:
		return m.honeypot.View(styles)
	default:
		return m.forensics.View(styles)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
