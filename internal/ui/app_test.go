package ui

import (
	"strings"
	"testing"

	"github.com/earshot-tools/earshot/internal/clip"
	"github.com/earshot-tools/earshot/internal/config"
	"github.com/earshot-tools/earshot/internal/forensic"
	"github.com/earshot-tools/earshot/internal/probe"
	"github.com/earshot-tools/earshot/internal/state"
)

func newTestModel() Model {
	return New(Options{
		Prober: probe.NewClient(),
		Panels: &state.Panels{},
		Config: &config.Config{
			Model:            "test-model",
			ProbeEndpoint:    "https://api.example.com/analyze",
			HoneypotEndpoint: "https://trap.example.com/submit",
		},
		PrefsPath: "/nonexistent/prefs.toml",
	})
}

func TestNewSeedsFormsFromConfig(t *testing.T) {
	m := newTestModel()

	if m.active != PanelForensics {
		t.Fatalf("active panel = %v, want PanelForensics", m.active)
	}
	if got := m.probe.Value(probeFieldEndpoint); got != "https://api.example.com/analyze" {
		t.Fatalf("probe endpoint = %q, want config value", got)
	}
	if got := m.honeypot.Value(honeypotFieldEndpoint); got != "https://trap.example.com/submit" {
		t.Fatalf("honeypot endpoint = %q, want config value", got)
	}
	if got := m.forensics.Value(forensicsFieldLanguage); got != "English" {
		t.Fatalf("default language = %q, want English", got)
	}
}

func TestSwitchPanelChangesActiveForm(t *testing.T) {
	m := newTestModel()

	m.switchPanel(PanelProbe)
	if m.active != PanelProbe {
		t.Fatalf("active panel = %v, want PanelProbe", m.active)
	}
	if m.activeForm() != &m.probe {
		t.Fatalf("activeForm() did not follow the panel switch")
	}

	// Switching to the current panel is a no-op
	m.switchPanel(PanelProbe)
	if m.active != PanelProbe {
		t.Fatalf("re-switch moved active panel to %v", m.active)
	}
}

func TestFillFromClip(t *testing.T) {
	m := newTestModel()
	m.lastClip = &clip.Clip{
		Path: "/tmp/sample.wav",
		MIME: "audio/wav",
		Data: []byte("RIFFdata"),
	}

	m.fillFromClip()

	if got := m.probe.Value(probeFieldAudioFormat); got != "audio/wav" {
		t.Fatalf("audio format = %q, want audio/wav", got)
	}
	if got := m.probe.Value(probeFieldAudioBase64); got != m.lastClip.Base64() {
		t.Fatalf("audio base64 = %q, want clip payload", got)
	}
	if got := m.probe.Value(probeFieldLanguage); got != "English" {
		t.Fatalf("language = %q, want English borrowed from forensics", got)
	}
}

func TestFormNavigationWraps(t *testing.T) {
	f := newForm([]fieldSpec{
		{label: "one"},
		{label: "two"},
		{label: "three"},
	})

	if f.focus != 0 {
		t.Fatalf("initial focus = %d, want 0", f.focus)
	}
	f.Next()
	f.Next()
	f.Next()
	if f.focus != 0 {
		t.Fatalf("focus after wrapping forward = %d, want 0", f.focus)
	}
	f.Prev()
	if f.focus != 2 {
		t.Fatalf("focus after wrapping back = %d, want 2", f.focus)
	}
}

func TestFormValueTrims(t *testing.T) {
	f := newForm([]fieldSpec{{label: "one"}})
	f.SetValue(0, "  padded  ")
	if got := f.Value(0); got != "padded" {
		t.Fatalf("Value = %q, want padded", got)
	}
	if got := f.Value(5); got != "" {
		t.Fatalf("out-of-range Value = %q, want empty", got)
	}
}

func TestRenderForensicsOutcome(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	idle := renderForensicsOutcome(state.AnalysisView{}, styles)
	if !strings.Contains(idle, "forensic verdict") {
		t.Fatalf("idle view = %q, want prompt text", idle)
	}

	ms := int64(420)
	done := renderForensicsOutcome(state.AnalysisView{
		Status:   probe.StatusSuccess,
		ClipPath: "/tmp/sample.mp3",
		ClipMIME: "audio/mpeg",
		Verdict: &forensic.Verdict{
			Classification: forensic.ClassificationAIGenerated,
			Confidence:     0.93,
			Language:       "English",
			Reasoning:      "uniform prosody across phrases",
			SpectralNotes:  "no breath noise below 200Hz",
		},
		LatencyMS: &ms,
	}, styles)
	for _, want := range []string{"AI_GENERATED", "93%", "uniform prosody", "no breath noise"} {
		if !strings.Contains(done, want) {
			t.Fatalf("verdict view missing %q:\n%s", want, done)
		}
	}

	failed := renderForensicsOutcome(state.AnalysisView{
		Status: probe.StatusError,
		Err:    "forensic engine failed to provide a valid JSON report: report is not JSON",
	}, styles)
	if !strings.Contains(failed, "report is not JSON") {
		t.Fatalf("error view = %q, want engine error text", failed)
	}
}

func TestRenderProbeOutcome(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	code := 200
	ms := int64(88)
	view := state.ProbeView{
		Outcome: probe.Outcome{
			AttemptID:  "0a1b2c3d-4e5f-6789-abcd-ef0123456789",
			Status:     probe.StatusSuccess,
			StatusCode: &code,
			LatencyMS:  &ms,
			Body:       probe.Body{Text: `{"verdict":"ok"}`},
		},
	}
	got := renderProbeOutcome(view, styles)
	for _, want := range []string{"HTTP 200", "88ms", "0a1b2c3d", `{"verdict":"ok"}`} {
		if !strings.Contains(got, want) {
			t.Fatalf("probe outcome missing %q:\n%s", want, got)
		}
	}
}

func TestRenderHoneypotOutcome(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()

	code := 403
	view := state.HoneypotView{
		Outcome: probe.Outcome{
			Status:     probe.StatusError,
			StatusCode: &code,
			Headers: map[string]string{
				"Content-Type": "text/plain",
				"Server":       "trap/1.0",
			},
			Body: probe.Body{Text: "Forbidden"},
		},
	}
	got := renderHoneypotOutcome(view, styles)
	for _, want := range []string{"HTTP 403", "Content-Type", "trap/1.0", "Forbidden"} {
		if !strings.Contains(got, want) {
			t.Fatalf("honeypot outcome missing %q:\n%s", want, got)
		}
	}
}
