package styles

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewSearchInput creates an app search input.
func NewSearchInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Search apps...")
	ti.CharLimit = 256
	return ti
}

// NewScriptArea creates the editor used for custom scripts.
func NewScriptArea(theme *Theme, width, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "notify-send 'hello from the deck'"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(theme.Surface)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(theme.Muted)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Muted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Muted)
	return ta
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
