// Package theme models the light/dark color scheme toggle.
package theme

// Theme is the page color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is used when the visitor never toggled.
const Default = Dark

// Parse returns the theme named s, or Default for anything else.
func Parse(s string) Theme {
	if Theme(s) == Light {
		return Light
	}
	return Default
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string { return string(t) }
