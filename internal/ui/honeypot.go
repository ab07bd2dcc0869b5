package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/earshot-tools/earshot/internal/probe"
	"github.com/earshot-tools/earshot/internal/state"
)

// Honeypot tester fields.
const (
	honeypotFieldEndpoint = iota
	honeypotFieldHeaderName
	honeypotFieldHeaderValue
)

func newHoneypotForm(endpoint string) form {
	return newForm([]fieldSpec{
		{label: "Endpoint", placeholder: "https://trap.example.com/submit", value: endpoint},
		{label: "Header name", placeholder: "X-Trap-Key (optional)"},
		{label: "Header value", placeholder: "value for the custom header"},
	})
}

type honeypotDoneMsg struct{}

// startHoneypot sends the decoy payload at the configured endpoint.
func (m *Model) startHoneypot() tea.Cmd {
	endpoint := m.honeypot.Value(honeypotFieldEndpoint)
	headerName := m.honeypot.Value(honeypotFieldHeaderName)
	headerValue := m.honeypot.Value(honeypotFieldHeaderValue)

	m.panels.Honeypot.Set(state.HoneypotView{
		Endpoint:    endpoint,
		HeaderName:  headerName,
		HeaderValue: headerValue,
		Outcome:     probe.Outcome{Status: probe.StatusLoading},
	})

	ctx := m.ctx
	prober := m.prober
	panels := m.panels

	run := func() tea.Msg {
		outcome := prober.ProbeHoneypot(ctx, endpoint, headerName, headerValue)
		panels.Honeypot.Set(state.HoneypotView{
			Endpoint:    endpoint,
			HeaderName:  headerName,
			HeaderValue: headerValue,
			Outcome:     outcome,
		})
		return honeypotDoneMsg{}
	}
	return tea.Batch(m.spin.Tick, run)
}

// renderHoneypotOutcome renders the status line, the captured response
// headers, and the body exactly as the target returned it.
func renderHoneypotOutcome(view state.HoneypotView, styles Styles) string {
	o := view.Outcome
	switch o.Status {
	case "":
		fallthrough
	case probe.StatusIdle:
		return styles.MutedText.Render("Press enter to send the decoy payload and capture the target's response.")
	case probe.StatusLoading:
		return styles.WarningText.Render("Decoy in flight...")
	}

	var b strings.Builder
	b.WriteString(renderOutcomeLine(o, styles))
	b.WriteString("\n")

	if len(o.Headers) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.InfoText.Render("Response headers"))
		b.WriteString("\n")
		names := make([]string, 0, len(o.Headers))
		for name := range o.Headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(styles.MutedText.Render(name + ": "))
			b.WriteString(styles.Text.Render(o.Headers[name]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.InfoText.Render("Response body"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(o.Body.String()))
	return b.String()
}
