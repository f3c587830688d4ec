package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/tui"
)

const (
	cardWidth = 34
	cardGap   = 1

	// NoResultsMessage is the "no results" indicator text
	NoResultsMessage = "No projects found. Try a different search or tag."

	linkLabel = "View Design →"
)

// View renders the page
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewSearch())
	b.WriteString("\n")
	b.WriteString(m.viewTags())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render(m.title)
	toggle := m.styles.Toggle.Render(fmt.Sprintf("[%s %s]", m.session.Theme().Glyph(), m.session.Theme()))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + toggle
}

func (m Model) viewSearch() string {
	label := m.styles.Prompt.Render("Search")
	if m.focus == focusSearch {
		label = m.styles.FocusLabel.Render("Search")
	}
	return label + "  " + m.search.View()
}

func (m Model) viewTags() string {
	label := m.styles.Prompt.Render("Tags  ")
	if m.focus == focusTags {
		label = m.styles.FocusLabel.Render("Tags  ")
	}
	return label + "  " + m.tags.View(m.styles, m.session.IsActive)
}

func (m Model) viewStatus() string {
	switch {
	case m.loading:
		return m.styles.Status.Render("loading…")
	case m.session.LoadErr() != nil:
		return m.styles.Status.Render("0 projects")
	}

	status := fmt.Sprintf("%d of %d projects", len(m.session.Results()), len(m.session.Projects()))
	if n := m.session.Filter().ActiveCount(); n > 0 {
		status += fmt.Sprintf(" • %d tag(s) selected", n)
	}
	return m.styles.Status.Render(status)
}

// renderBody is the card area: a loading line, the load error, the no
// results indicator, or the cards.
func (m Model) renderBody() string {
	switch {
	case m.loading:
		return m.styles.Status.Render("Loading projects…")
	case m.session.LoadErr() != nil:
		return m.styles.Error.Render(gallery.LoadErrorMessage)
	case m.session.NoResults():
		return m.styles.NoResults.Render(NoResultsMessage)
	}
	return RenderCards(m.session.Results(), m.styles, m.width)
}

// RenderCards lays out one card per project, left to right and top to
// bottom, in project order.
func RenderCards(projects []models.Project, styles tui.Styles, width int) string {
	if len(projects) == 0 {
		return ""
	}

	columns := width / (cardWidth + cardGap)
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(projects); start += columns {
		end := min(start+columns, len(projects))

		cards := make([]string, 0, end-start)
		for i, p := range projects[start:end] {
			card := renderCard(p, styles)
			if i > 0 {
				card = lipgloss.NewStyle().MarginLeft(cardGap).Render(card)
			}
			cards = append(cards, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(p models.Project, styles tui.Styles) string {
	inner := cardWidth - 4

	image := models.ImagePlaceholder
	if p.HasImage() {
		image = "▣ " + p.Image
	}

	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, styles.CardTag.Render(tag))
	}

	lines := []string{
		styles.CardImage.Render(truncate(image, inner)),
		styles.CardTitle.Width(inner).Render(p.Title),
	}
	if p.Description != "" {
		lines = append(lines, styles.CardDesc.Width(inner).Render(p.Description))
	}
	if len(tags) > 0 {
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " ")))
	}
	lines = append(lines, styles.Link.Render(linkLabel), styles.CardImage.Render(truncate(p.Link, inner)))

	return styles.Card.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
