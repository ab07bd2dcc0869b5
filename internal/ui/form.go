package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldSpec describes one labelled input in a panel form.
type fieldSpec struct {
	label       string
	placeholder string
	value       string
	width       int
}

// form is a vertical stack of labelled text inputs with one focused at a
// time. Each panel owns one.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(specs []fieldSpec) form {
	f := form{
		labels: make([]string, len(specs)),
		inputs: make([]textinput.Model, len(specs)),
	}
	for i, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Prompt = ""
		in.Width = spec.width
		if in.Width == 0 {
			in.Width = 56
		}
		if spec.value != "" {
			in.SetValue(spec.value)
		}
		f.labels[i] = spec.label
		f.inputs[i] = in
	}
	return f
}

// Focus focuses the current field and blurs the rest.
func (f *form) Focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// Blur blurs every field.
func (f *form) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Next moves focus to the following field, wrapping around.
func (f *form) Next() tea.Cmd {
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.Focus()
}

// Prev moves focus to the preceding field, wrapping around.
func (f *form) Prev() tea.Cmd {
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	return f.Focus()
}

// Update forwards a message to every input so cursor blink and typing
// reach the focused one.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.inputs))
	for i := range f.inputs {
		var cmd tea.Cmd
		f.inputs[i], cmd = f.inputs[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Value returns the trimmed value of field i.
func (f form) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

// SetValue replaces the value of field i.
func (f *form) SetValue(i int, value string) {
	if i < 0 || i >= len(f.inputs) {
		return
	}
	f.inputs[i].SetValue(value)
}

// View renders the labelled fields.
func (f form) View(styles Styles) string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(styles.FieldLabel.Render(f.labels[i]))
		b.WriteString(f.inputs[i].View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
