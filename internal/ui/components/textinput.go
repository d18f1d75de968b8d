package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wortiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with an answer-field look: a label
// above the field and a ✓/✗ marker once graded.
type TextInput struct {
	Model     textinput.Model
	Label     string
	MaxWidth  int
	submitted bool
	valid     bool
}

// NewTextInput creates a new labeled answer input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input field.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	if t.Label == "" {
		return view
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label)
	return label + "\n" + view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input content.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Submit marks the input as graded.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and grading marker.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}

// Focus focuses the underlying field.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the underlying field.
func (t *TextInput) Blur() {
	t.Model.Blur()
}
