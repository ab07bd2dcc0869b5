package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/earshot-tools/earshot/internal/clip"
	"github.com/earshot-tools/earshot/internal/probe"
	"github.com/earshot-tools/earshot/internal/state"
)

// Endpoint tester fields.
const (
	probeFieldEndpoint = iota
	probeFieldAPIKey
	probeFieldLanguage
	probeFieldAudioFormat
	probeFieldAudioBase64
)

func newProbeForm(endpoint string) form {
	return newForm([]fieldSpec{
		{label: "Endpoint", placeholder: "https://api.example.com/analyze", value: endpoint},
		{label: "API key", placeholder: "value for the x-api-key header"},
		{label: "Language", placeholder: "English"},
		{label: "Audio format", placeholder: "audio/mpeg"},
		{label: "Audio base64", placeholder: "base64 payload (ctrl+f fills from last clip)"},
	})
}

type probeDoneMsg struct{}

// startProbe sends the form as one probe attempt. Field validation lives in
// the probe client, so an incomplete form still produces an error outcome
// without touching the network.
func (m *Model) startProbe() tea.Cmd {
	req := probe.Request{
		Endpoint:    m.probe.Value(probeFieldEndpoint),
		AuthValue:   m.probe.Value(probeFieldAPIKey),
		Language:    m.probe.Value(probeFieldLanguage),
		AudioFormat: m.probe.Value(probeFieldAudioFormat),
		AudioBase64: clip.StripDataURL(m.probe.Value(probeFieldAudioBase64)),
	}

	m.panels.Probe.Set(state.ProbeView{
		Request: req,
		Outcome: probe.Outcome{Status: probe.StatusLoading},
	})

	ctx := m.ctx
	prober := m.prober
	panels := m.panels

	run := func() tea.Msg {
		outcome := prober.Probe(ctx, req)
		panels.Probe.Set(state.ProbeView{Request: req, Outcome: outcome})
		return probeDoneMsg{}
	}
	return tea.Batch(m.spin.Tick, run)
}

// fillFromClip copies the last loaded clip into the payload fields.
func (m *Model) fillFromClip() {
	if m.lastClip == nil {
		return
	}
	m.probe.SetValue(probeFieldAudioFormat, m.lastClip.MIME)
	m.probe.SetValue(probeFieldAudioBase64, m.lastClip.Base64())
	if m.probe.Value(probeFieldLanguage) == "" {
		m.probe.SetValue(probeFieldLanguage, m.forensics.Value(forensicsFieldLanguage))
	}
}

// renderProbeOutcome renders the status line and the normalized response
// body for the endpoint tester.
func renderProbeOutcome(view state.ProbeView, styles Styles) string {
	o := view.Outcome
	switch o.Status {
	case "":
		fallthrough
	case probe.StatusIdle:
		return styles.MutedText.Render("Fill in the endpoint and payload, then press enter to send one request.")
	case probe.StatusLoading:
		return styles.WarningText.Render("Request in flight...")
	}

	var b strings.Builder
	b.WriteString(renderOutcomeLine(o, styles))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(o.Body.String()))
	return b.String()
}

// renderOutcomeLine renders the shared "HTTP <code>  <latency>  <id>" line.
func renderOutcomeLine(o probe.Outcome, styles Styles) string {
	parts := []string{
		styles.StatusStyle(o.Status).Render(strings.ToUpper(string(o.Status))),
		styles.MutedText.Render("HTTP " + formatStatusCode(o.StatusCode)),
		styles.MutedText.Render(formatLatency(o.LatencyMS)),
	}
	if o.AttemptID != "" {
		parts = append(parts, styles.FaintText.Render("attempt "+shortID(o.AttemptID)))
	}
	return strings.Join(parts, "  ")
}
