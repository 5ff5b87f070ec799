package store

import (
	"context"

	"github.com/alexisbeaulieu97/calcterm/internal/theme"
)

// ThemeKey holds the persisted theme name.
const ThemeKey = "theme"

// Preferences persists the light/dark theme choice.
type Preferences struct {
	backend Backend
}

// NewPreferences returns Preferences persisted through backend.
func NewPreferences(backend Backend) *Preferences {
	return &Preferences{backend: backend}
}

// Theme returns the stored theme. Absent or unrecognised values read as light.
func (p *Preferences) Theme(ctx context.Context) (theme.Name, error) {
	raw, ok, err := p.backend.Get(ctx, ThemeKey)
	if err != nil {
		return theme.Light, err
	}
	if !ok {
		return theme.Light, nil
	}
	name, ok := theme.Parse(raw)
	if !ok {
		return theme.Light, nil
	}
	return name, nil
}

// SetTheme persists name.
func (p *Preferences) SetTheme(ctx context.Context, name theme.Name) error {
	return p.backend.Set(ctx, ThemeKey, name.String())
}

// ToggleTheme flips and persists the theme, returning the new value.
func (p *Preferences) ToggleTheme(ctx context.Context) (theme.Name, error) {
	current, err := p.Theme(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := p.SetTheme(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
