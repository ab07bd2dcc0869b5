package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/earshot-tools/earshot/internal/clip"
	"github.com/earshot-tools/earshot/internal/probe"
	"github.com/earshot-tools/earshot/internal/state"
)

// Forensics panel fields.
const (
	forensicsFieldClip = iota
	forensicsFieldLanguage
)

func newForensicsForm() form {
	return newForm([]fieldSpec{
		{label: "Clip path", placeholder: "~/recordings/sample.mp3"},
		{label: "Language", placeholder: "English", value: "English"},
	})
}

type analysisDoneMsg struct{}

// startAnalysis loads the clip, marks the panel loading, and launches one
// engine call. The completion writes the terminal view to the holder;
// overlapping submissions race and the last completion wins.
func (m *Model) startAnalysis() tea.Cmd {
	path := expandHome(m.forensics.Value(forensicsFieldClip))
	language := m.forensics.Value(forensicsFieldLanguage)
	if language == "" {
		language = "English"
	}

	m.panels.Analysis.Set(state.AnalysisView{
		Status:   probe.StatusLoading,
		ClipPath: path,
		Language: language,
	})

	ctx := m.ctx
	engine := m.engine
	panels := m.panels

	run := func() tea.Msg {
		attempt := uuid.NewString()
		next := state.AnalysisView{
			AttemptID: attempt,
			ClipPath:  path,
			Language:  language,
		}

		c, err := clip.Load(path)
		if err != nil {
			next.Status = probe.StatusError
			next.Err = err.Error()
			panels.Analysis.Set(next)
			return analysisDoneMsg{}
		}
		next.ClipMIME = c.MIME

		start := time.Now()
		verdict, err := engine.Analyze(ctx, c.Data, c.MIME, language)
		elapsed := time.Since(start).Milliseconds()
		next.LatencyMS = &elapsed

		if err != nil {
			next.Status = probe.StatusError
			next.Err = err.Error()
		} else {
			next.Status = probe.StatusSuccess
			next.Verdict = verdict
		}
		panels.Analysis.Set(next)
		return analysisDoneMsg{}
	}

	m.rememberClip(path)
	return tea.Batch(m.spin.Tick, run)
}

// rememberClip keeps the last successfully loaded clip around so the
// endpoint tester can borrow its payload via ctrl+f.
func (m *Model) rememberClip(path string) {
	if c, err := clip.Load(path); err == nil {
		m.lastClip = &c
	}
}

// renderForensicsOutcome renders the verdict card or the failure message.
func renderForensicsOutcome(view state.AnalysisView, styles Styles) string {
	switch view.Status {
	case "":
		fallthrough
	case probe.StatusIdle:
		return styles.MutedText.Render("Point at an audio clip and press enter to request a forensic verdict.")
	case probe.StatusLoading:
		return styles.WarningText.Render("Interrogating the forensic engine...")
	case probe.StatusError:
		return styles.DangerText.Render(view.Err)
	}

	v := view.Verdict
	if v == nil {
		return styles.DangerText.Render("verdict missing from completed analysis")
	}

	classStyle := styles.DangerText
	if v.IsHuman() {
		classStyle = styles.SuccessText
	}

	bar := confidenceBar(v.Confidence)

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("Classification  "))
	b.WriteString(classStyle.Render(v.Classification))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Confidence      "))
	b.WriteString(styles.AccentText.Render(fmt.Sprintf("%3.0f%% %s", v.Confidence*100, bar)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Language        "))
	b.WriteString(styles.Text.Render(v.Language))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Clip            "))
	b.WriteString(styles.Text.Render(truncateMiddle(view.ClipPath, 50)))
	if view.ClipMIME != "" {
		b.WriteString(styles.FaintText.Render(" (" + view.ClipMIME + ")"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.InfoText.Render("Reasoning"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(v.Reasoning))
	b.WriteString("\n\n")
	b.WriteString(styles.InfoText.Render("Spectral notes"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(v.SpectralNotes))
	return b.String()
}

func confidenceBar(confidence float64) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	filled := int(confidence*20 + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
