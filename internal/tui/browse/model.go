// Package browse is the interactive gallery page: a search box, a row of
// tag buttons and a grid of project cards.
package browse

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/source"
	"github.com/jakoblorz/go-gallery/internal/tui"
	"github.com/jakoblorz/go-gallery/internal/tui/components"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows used by everything above and below the card area
	chromeHeight = 9
)

// focusArea is the control receiving keystrokes
type focusArea int

const (
	focusSearch focusArea = iota
	focusTags
)

type loadedMsg struct {
	projects []models.Project
}

type loadFailedMsg struct {
	err error
}

// Options configures the browser
type Options struct {
	Title  string
	Logger *zap.Logger
}

// Model is the bubbletea model of the gallery page
type Model struct {
	ctx     context.Context
	session *gallery.Session
	src     source.Source
	logger  *zap.Logger
	title   string

	search   components.SearchBoxModel
	tags     components.TagBarModel
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	styles   tui.Styles

	focus   focusArea
	loading bool
	width   int
	height  int
}

// NewModel creates the page. The theme is applied immediately; projects
// are fetched when the program starts.
func NewModel(ctx context.Context, session *gallery.Session, src source.Source, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	title := opts.Title
	if title == "" {
		title = "Portfolio"
	}

	theme := session.InitTheme()

	search := components.NewSearchBox("Search projects...")
	search.Focus()

	m := Model{
		ctx:      ctx,
		session:  session,
		src:      src,
		logger:   logger,
		title:    title,
		search:   search,
		tags:     components.NewTagBar(nil),
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:     help.New(),
		keys:     newKeyMap(),
		styles:   tui.NewStyles(theme),
		focus:    focusSearch,
		loading:  true,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.syncViewport()
	return m
}

// Init starts the one-shot load of the project source
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), textinput.Blink)
}

func (m Model) loadCmd() tea.Cmd {
	ctx, src, logger := m.ctx, m.src, m.logger
	return func() tea.Msg {
		logger.Debug("Loading projects", zap.Stringer("source", src))
		projects, err := src.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{projects: projects}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.session.Bind(msg.projects)
		m.tags = components.NewTagBar(m.session.Catalog().Tags())
		if m.focus == focusTags {
			m.tags.Focus()
		}
		m.logger.Info("Loaded projects",
			zap.Int("projects", len(msg.projects)),
			zap.Int("tags", m.session.Catalog().Len()))
		m.syncViewport()
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.session.Fail(msg.err)
		m.syncViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.SetWidth(max(10, msg.Width-12))
		m.viewport.Width = msg.Width
		m.viewport.Height = max(3, msg.Height-chromeHeight)
		m.help.Width = msg.Width
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd, _ = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		if err := m.session.Dispatch(gallery.ToggleTheme()); err != nil {
			m.logger.Warn("Theme toggle not saved", zap.Error(err))
		}
		m.styles = tui.NewStyles(m.session.Theme())
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.SwitchFocus):
		return m.switchFocus()

	case key.Matches(msg, m.keys.ClearFilters):
		m.dispatch(gallery.ClearFilters())
		m.search.SetValue("")
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.Scroll):
		m.scroll(msg.String())
		return m, nil
	}

	if m.focus == focusTags {
		var pressed string
		m.tags, pressed = m.tags.Update(msg)
		if pressed != "" {
			m.dispatch(gallery.ToggleTag(pressed))
			m.syncViewport()
		}
		return m, nil
	}

	var cmd tea.Cmd
	var changed bool
	m.search, cmd, changed = m.search.Update(msg)
	if changed {
		m.dispatch(gallery.Search(m.search.Value()))
		m.syncViewport()
	}
	return m, cmd
}

func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusSearch {
		m.focus = focusTags
		m.search.Blur()
		m.tags.Focus()
		return m, nil
	}

	m.focus = focusSearch
	m.tags.Blur()
	return m, m.search.Focus()
}

func (m *Model) dispatch(ev gallery.Event) {
	if err := m.session.Dispatch(ev); err != nil {
		m.logger.Warn("Event failed", zap.Stringer("event", ev.Kind), zap.Error(err))
	}
}

func (m *Model) scroll(k string) {
	offset := m.viewport.YOffset
	switch k {
	case "up":
		offset--
	case "down":
		offset++
	case "pgup":
		offset -= m.viewport.Height
	case "pgdown":
		offset += m.viewport.Height
	}
	m.viewport.SetYOffset(max(0, offset))
}

// syncViewport re-renders the card area from the session's current
// results, replacing whatever was shown before.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.renderBody())
	m.viewport.GotoTop()
}

// Session exposes the page session
func (m Model) Session() *gallery.Session {
	return m.session
}
