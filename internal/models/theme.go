package models

import "fmt"

// Theme is the light/dark display preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	// DefaultTheme is used when nothing (or garbage) is stored.
	DefaultTheme = ThemeDark
)

// IsValid checks if the theme is one of the known values
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Glyph is the icon shown on the theme toggle: it advertises the theme
// the toggle switches to.
func (t Theme) Glyph() string {
	if t == ThemeDark {
		return "☀️"
	}
	return "🌙"
}

// ParseTheme parses a string into a Theme
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid theme: %s (must be dark or light)", s)
	}
	return t, nil
}

// ThemeOrDefault parses s and falls back to DefaultTheme on any error.
func ThemeOrDefault(s string) Theme {
	t, err := ParseTheme(s)
	if err != nil {
		return DefaultTheme
	}
	return t
}
