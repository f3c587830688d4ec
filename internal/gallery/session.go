// Package gallery holds the page session: the loaded projects, the tag
// catalog, the visitor's filter state and theme, and the event handlers
// that change them.
package gallery

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"go.uber.org/zap"
)

// LoadErrorMessage replaces the card grid when the source failed
const LoadErrorMessage = "Error loading projects. Please try again later."

// EventKind identifies a user interaction
type EventKind int

const (
	EventSearch EventKind = iota
	EventToggleTag
	EventToggleTheme
	EventClearFilters
)

func (k EventKind) String() string {
	switch k {
	case EventSearch:
		return "search"
	case EventToggleTag:
		return "toggle-tag"
	case EventToggleTheme:
		return "toggle-theme"
	case EventClearFilters:
		return "clear-filters"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a single user interaction
type Event struct {
	Kind EventKind

	// Text is the full search box content for EventSearch
	Text string

	// Tag is the tag button pressed for EventToggleTag
	Tag string
}

// Search builds an EventSearch
func Search(text string) Event { return Event{Kind: EventSearch, Text: text} }

// ToggleTag builds an EventToggleTag
func ToggleTag(tag string) Event { return Event{Kind: EventToggleTag, Tag: tag} }

// ToggleTheme builds an EventToggleTheme
func ToggleTheme() Event { return Event{Kind: EventToggleTheme} }

// ClearFilters builds an EventClearFilters
func ClearFilters() Event { return Event{Kind: EventClearFilters} }

// ErrUnknownEvent is returned by Dispatch for kinds without a handler
var ErrUnknownEvent = errors.New("unknown event")

type handlerFunc func(s *Session, ev Event) error

// handlers is the dispatch table. Filter events need bound data; theme
// events work before (and without) a successful load.
var handlers = map[EventKind]struct {
	needsData bool
	handle    handlerFunc
}{
	EventSearch:       {needsData: true, handle: (*Session).handleSearch},
	EventToggleTag:    {needsData: true, handle: (*Session).handleToggleTag},
	EventClearFilters: {needsData: true, handle: (*Session).handleClearFilters},
	EventToggleTheme:  {needsData: false, handle: (*Session).handleToggleTheme},
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithTagOrder sets how the tag catalog is ordered
func WithTagOrder(order catalog.TagOrder) Option {
	return func(s *Session) { s.order = order }
}

// Session is the state of one page view. It is not safe for concurrent
// use: every event runs to completion before the next one.
type Session struct {
	prefs  preferences.Store
	logger *zap.Logger
	order  catalog.TagOrder

	projects []models.Project
	catalog  catalog.TagCatalog
	filter   models.FilterState
	results  []models.Project
	theme    models.Theme

	bound   bool
	loadErr error
}

// NewSession creates an unbound session. Call InitTheme right away and
// Bind or Fail once the source has answered.
func NewSession(prefs preferences.Store, opts ...Option) *Session {
	s := &Session{
		prefs:   prefs,
		logger:  zap.NewNop(),
		order:   catalog.OrderFirstSeen,
		filter:  models.NewFilterState(),
		results: []models.Project{},
		theme:   models.DefaultTheme,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitTheme reads the stored theme. A store error is logged and the
// default theme is used.
func (s *Session) InitTheme() models.Theme {
	theme, err := preferences.LoadTheme(s.prefs)
	if err != nil {
		s.logger.Warn("Using default theme", zap.Error(err))
	}
	s.theme = theme
	return theme
}

// Bind installs the loaded projects, builds the tag catalog and shows
// every project. Filter events are accepted from now on.
func (s *Session) Bind(projects []models.Project) {
	s.projects = projects
	s.catalog = catalog.BuildTagCatalog(projects, s.order)
	s.loadErr = nil
	s.bound = true
	s.recompute()

	s.logger.Debug("Session bound",
		zap.Int("projects", len(projects)),
		zap.Int("tags", s.catalog.Len()))
}

// Fail records a load failure. The project list stays empty and filter
// events stay inert.
func (s *Session) Fail(err error) {
	s.projects = nil
	s.catalog = catalog.BuildTagCatalog(nil, s.order)
	s.results = []models.Project{}
	s.loadErr = err
	s.bound = false

	s.logger.Error("Error loading projects", zap.Error(err))
}

// Dispatch routes ev to its handler. Filter events before Bind are
// ignored.
func (s *Session) Dispatch(ev Event) error {
	h, ok := handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Kind)
	}
	if h.needsData && !s.bound {
		s.logger.Debug("Ignoring event before data is loaded", zap.Stringer("event", ev.Kind))
		return nil
	}
	return h.handle(s, ev)
}

func (s *Session) handleSearch(ev Event) error {
	s.filter.Search = ev.Text
	s.recompute()
	return nil
}

func (s *Session) handleToggleTag(ev Event) error {
	active := s.filter.ToggleTag(ev.Tag)
	s.logger.Debug("Toggled tag", zap.String("tag", ev.Tag), zap.Bool("active", active))
	s.recompute()
	return nil
}

func (s *Session) handleClearFilters(Event) error {
	s.filter.Clear()
	s.recompute()
	return nil
}

// handleToggleTheme applies the new theme even if persisting it fails.
func (s *Session) handleToggleTheme(Event) error {
	s.theme = s.theme.Toggle()
	if err := preferences.SaveTheme(s.prefs, s.theme); err != nil {
		s.logger.Warn("Theme not persisted", zap.Error(err))
		return err
	}
	return nil
}

func (s *Session) recompute() {
	s.results = catalog.FilterState(s.projects, s.filter)
}

// Results is the filtered project list to render
func (s *Session) Results() []models.Project {
	return s.results
}

// Projects is the full, unfiltered project list
func (s *Session) Projects() []models.Project {
	return s.projects
}

// Catalog is the tag catalog of the full project list
func (s *Session) Catalog() catalog.TagCatalog {
	return s.catalog
}

// Filter is the current filter state
func (s *Session) Filter() models.FilterState {
	return s.filter
}

// IsActive reports whether tag is selected
func (s *Session) IsActive(tag string) bool {
	return s.filter.IsActive(tag)
}

// Theme is the applied theme
func (s *Session) Theme() models.Theme {
	return s.theme
}

// Bound reports whether projects were loaded successfully
func (s *Session) Bound() bool {
	return s.bound
}

// LoadErr is the load failure, if any
func (s *Session) LoadErr() error {
	return s.loadErr
}

// NoResults reports whether the "no results" indicator should show. It
// needs loaded data, so it is never shown while loading or in place of a
// load error.
func (s *Session) NoResults() bool {
	return s.bound && len(s.results) == 0
}
