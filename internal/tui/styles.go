package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-gallery/internal/models"
)

var (
	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	subtle  lipgloss.Color
	border  lipgloss.Color
	tagBg   lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeDark: {
		accent:  lipgloss.Color("#7D56F4"),
		text:    lipgloss.Color("#EEEEEE"),
		muted:   lipgloss.Color("#888888"),
		subtle:  lipgloss.Color("#666666"),
		border:  lipgloss.Color("#3C3C3C"),
		tagBg:   lipgloss.Color("#2A2A3A"),
		success: lipgloss.Color("#04B575"),
		danger:  lipgloss.Color("#FF5F5F"),
	},
	models.ThemeLight: {
		accent:  lipgloss.Color("#5A3FC0"),
		text:    lipgloss.Color("#1A1A1A"),
		muted:   lipgloss.Color("#555555"),
		subtle:  lipgloss.Color("#777777"),
		border:  lipgloss.Color("#CCCCCC"),
		tagBg:   lipgloss.Color("#ECE8FB"),
		success: lipgloss.Color("#02804D"),
		danger:  lipgloss.Color("#C00000"),
	},
}

// Styles is the full set of styles for one theme
type Styles struct {
	Theme models.Theme

	Title      lipgloss.Style
	Toggle     lipgloss.Style
	Prompt     lipgloss.Style
	Tag        lipgloss.Style
	TagActive  lipgloss.Style
	TagCursor  lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
	CardDesc   lipgloss.Style
	CardTag    lipgloss.Style
	CardImage  lipgloss.Style
	Link       lipgloss.Style
	NoResults  lipgloss.Style
	Error      lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	FocusLabel lipgloss.Style
}

// NewStyles builds the styles for theme; unknown themes get the default.
func NewStyles(theme models.Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		theme = models.DefaultTheme
		p = palettes[theme]
	}

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		Toggle: lipgloss.NewStyle().
			Foreground(p.muted),
		Prompt: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		Tag: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		TagActive: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.accent).
			Bold(true).
			Padding(0, 1),
		TagCursor: lipgloss.NewStyle().
			Foreground(p.accent).
			Underline(true).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),
		CardDesc: lipgloss.NewStyle().
			Foreground(p.muted),
		CardTag: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.tagBg),
		CardImage: lipgloss.NewStyle().
			Foreground(p.subtle),
		Link: lipgloss.NewStyle().
			Foreground(p.accent).
			Underline(true),
		NoResults: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			Padding(1, 2),
		Error: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			Padding(1, 2),
		Status: lipgloss.NewStyle().
			Foreground(p.subtle),
		Help: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginTop(1),
		FocusLabel: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
	}
}

// NewHuhTheme returns the form theme matching the gallery theme.
func NewHuhTheme(theme models.Theme) *huh.Theme {
	if theme == models.ThemeLight {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}
