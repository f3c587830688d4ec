package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchBoxModel wraps the bubbles textinput and reports edits
type SearchBoxModel struct {
	input textinput.Model
}

// NewSearchBox creates an unfocused search box
func NewSearchBox(placeholder string) SearchBoxModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 40

	return SearchBoxModel{input: ti}
}

// Update forwards msg to the input and reports whether the text changed.
func (m SearchBoxModel) Update(msg tea.Msg) (SearchBoxModel, tea.Cmd, bool) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd, m.input.Value() != before
}

// View renders the input
func (m SearchBoxModel) View() string {
	return m.input.View()
}

// Value returns the current text
func (m SearchBoxModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the text
func (m *SearchBoxModel) SetValue(value string) {
	m.input.SetValue(value)
}

// SetWidth sets the visible width
func (m *SearchBoxModel) SetWidth(width int) {
	m.input.Width = width
}

// Focus focuses the input
func (m *SearchBoxModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur unfocuses the input
func (m *SearchBoxModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus
func (m SearchBoxModel) Focused() bool {
	return m.input.Focused()
}
