package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-gallery/internal/tui"
)

// TagBarModel is a horizontal row of toggleable tag buttons. It does not
// own the selection; the caller decides what "active" means.
type TagBarModel struct {
	tags    []string
	cursor  int
	focused bool
}

// NewTagBar creates a tag bar over tags
func NewTagBar(tags []string) TagBarModel {
	return TagBarModel{tags: tags}
}

// Update moves the cursor and returns the tag the user pressed, if any.
func (m TagBarModel) Update(msg tea.Msg) (TagBarModel, string) {
	if !m.focused || len(m.tags) == 0 {
		return m, ""
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, ""
	}

	switch keyMsg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(m.tags)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.tags) - 1
	case " ", "space", "enter":
		return m, m.tags[m.cursor]
	}
	return m, ""
}

// View renders every tag; active tags use the active style and the
// cursor is only drawn while focused.
func (m TagBarModel) View(styles tui.Styles, isActive func(tag string) bool) string {
	if len(m.tags) == 0 {
		return styles.Status.Render("no tags")
	}

	buttons := make([]string, 0, len(m.tags))
	for i, tag := range m.tags {
		style := styles.Tag
		switch {
		case isActive(tag):
			style = styles.TagActive
		case m.focused && i == m.cursor:
			style = styles.TagCursor
		}
		label := tag
		if m.focused && i == m.cursor {
			label = "›" + tag
		}
		buttons = append(buttons, style.Render(label))
	}
	return strings.Join(buttons, " ")
}

// Focus gives the bar keyboard focus
func (m *TagBarModel) Focus() {
	m.focused = true
}

// Blur removes keyboard focus
func (m *TagBarModel) Blur() {
	m.focused = false
}

// Focused reports whether the bar has focus
func (m TagBarModel) Focused() bool {
	return m.focused
}

// Cursor returns the highlighted tag index
func (m TagBarModel) Cursor() int {
	return m.cursor
}

// Len returns the number of tag buttons
func (m TagBarModel) Len() int {
	return len(m.tags)
}
