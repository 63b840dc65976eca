package valueobjects

import "strings"

// Theme is a value object for the UI color scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used for absent or unrecognized preference values
const DefaultTheme = ThemeDark

// ParseTheme maps a stored preference string to a Theme. Absent or
// unrecognized values fall back to the default, never an error.
func ParseTheme(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return DefaultTheme
	}
}

// String returns the string representation of the theme
func (t Theme) String() string {
	return string(t)
}

// IsValid reports whether the theme is one of the enumerated tags
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
