package add

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-gallery/internal/entry"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/tui"
)

// Flow orchestrates the add command using huh forms.
type Flow struct {
	manager      *entry.Manager
	existingTags []string
	theme        *huh.Theme
}

// Answers holds the raw form values.
type Answers struct {
	Title        string
	Description  string
	Link         string
	Image        string
	SelectedTags []string
	NewTags      string
}

// Result captures the successful output of the flow.
type Result struct {
	Project models.Project
	Path    string
}

// NewFlow constructs a Flow writing into manager's directory. existingTags
// are offered for selection.
func NewFlow(manager *entry.Manager, existingTags []string, theme models.Theme) *Flow {
	return &Flow{
		manager:      manager,
		existingTags: existingTags,
		theme:        tui.NewHuhTheme(theme),
	}
}

// Run executes the forms sequentially; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	answers, err := f.inputDetails()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	if err := f.selectTags(answers); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return f.Create(*answers)
}

// Create writes the entry described by answers.
func (f *Flow) Create(answers Answers) (*Result, error) {
	id, err := f.manager.GenerateID(answers.Title)
	if err != nil {
		return nil, err
	}

	project := BuildProject(id, answers)
	path, err := f.manager.Write(project)
	if err != nil {
		return nil, fmt.Errorf("failed to write entry: %w", err)
	}

	return &Result{Project: project, Path: path}, nil
}

func (f *Flow) inputDetails() (*Answers, error) {
	answers := &Answers{}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&answers.Title).
				Validate(notEmpty("title")),
			huh.NewText().
				Title("Description").
				Lines(4).
				Value(&answers.Description),
			huh.NewInput().
				Title("Link").
				Placeholder("https://").
				Value(&answers.Link).
				Validate(ValidateLink),
			huh.NewInput().
				Title("Image").
				Description("Optional image URL; cards without one show a placeholder.").
				Value(&answers.Image),
		).
			Title("New Project").
			Description("Describe the project card."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}

func (f *Flow) selectTags(answers *Answers) error {
	fields := []huh.Field{}

	if len(f.existingTags) > 0 {
		opts := make([]huh.Option[string], 0, len(f.existingTags))
		for _, tag := range f.existingTags {
			opts = append(opts, huh.NewOption(tag, tag))
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Existing tags").
			Options(opts...).
			Value(&answers.SelectedTags))
	}

	fields = append(fields, huh.NewInput().
		Title("New tags").
		Description("Comma separated.").
		Value(&answers.NewTags))

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")

	form := huh.NewForm(
		huh.NewGroup(fields...).
			Title("Tags").
			Description("Tags become filter buttons in the gallery."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	return form.Run()
}

// BuildProject turns form answers into a record. Selected tags come
// first, followed by new tags in the order typed; duplicates are dropped.
func BuildProject(id string, answers Answers) models.Project {
	tags := []string{}
	seen := map[string]struct{}{}
	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, tag := range answers.SelectedTags {
		add(tag)
	}
	for _, tag := range strings.Split(answers.NewTags, ",") {
		add(tag)
	}

	return models.Project{
		ID:          id,
		Title:       strings.TrimSpace(answers.Title),
		Description: strings.TrimSpace(answers.Description),
		Image:       strings.TrimSpace(answers.Image),
		Link:        strings.TrimSpace(answers.Link),
		Tags:        tags,
	}
}

// ValidateLink accepts absolute URLs and in-page anchors.
func ValidateLink(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("link cannot be empty")
	}
	if strings.HasPrefix(v, "#") {
		return nil
	}
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("link must be an absolute URL")
	}
	return nil
}

func notEmpty(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
