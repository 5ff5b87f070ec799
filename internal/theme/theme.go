// Package theme defines the light and dark palettes and the lipgloss styles
// the terminal UI renders with.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Name is a persisted theme preference.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// Parse accepts "light" or "dark" in any case.
func Parse(s string) (Name, bool) {
	switch Name(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return Light, false
	}
}

// Toggle returns the other theme.
func (n Name) Toggle() Name {
	if n == Dark {
		return Light
	}
	return Dark
}

// String returns the persisted form of the theme.
func (n Name) String() string {
	if n == Dark {
		return string(Dark)
	}
	return string(Light)
}

// Palette holds the semantic colors of one theme.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
	ErrorBg    lipgloss.Color
	Border     lipgloss.Color
}

var (
	lightPalette = Palette{
		Background: lipgloss.Color("255"),
		Surface:    lipgloss.Color("254"),
		Text:       lipgloss.Color("235"),
		Muted:      lipgloss.Color("244"),
		Primary:    lipgloss.Color("25"),
		Accent:     lipgloss.Color("166"),
		Error:      lipgloss.Color("160"),
		ErrorBg:    lipgloss.Color("224"),
		Border:     lipgloss.Color("250"),
	}

	darkPalette = Palette{
		Background: lipgloss.Color("235"),
		Surface:    lipgloss.Color("237"),
		Text:       lipgloss.Color("252"),
		Muted:      lipgloss.Color("245"),
		Primary:    lipgloss.Color("99"),
		Accent:     lipgloss.Color("212"),
		Error:      lipgloss.Color("196"),
		ErrorBg:    lipgloss.Color("52"),
		Border:     lipgloss.Color("240"),
	}
)

// PaletteFor returns the palette of the named theme.
func PaletteFor(n Name) Palette {
	if n == Dark {
		return darkPalette
	}
	return lightPalette
}
