// Package styling is the widget gallery: its model, the messages that
// change it, the pure update and view functions and the keyboard
// subscription.
//
// Nothing in this package touches the toolkit. Package ui drives it:
//
//	app, err := styling.New(theme.All())
//	model := app.NewModel(theme.Default())
//	model = app.Update(model, styling.NextTheme{})
//	tree := app.View(model)
package styling

import (
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/editor"
	"github.com/yllada/styling/theme"
)

// App binds the update, view and theme functions to a theme catalogue.
type App struct {
	themes    theme.Catalogue
	secondary bool
}

// Option configures an App.
type Option func(*App)

// WithSecondaryInput adds the on-screen keyboard test row at the top of
// the page.
func WithSecondaryInput(enabled bool) Option {
	return func(a *App) {
		a.secondary = enabled
	}
}

// New returns an App cycling through themes. The catalogue must not be
// empty.
func New(themes theme.Catalogue, opts ...Option) (*App, error) {
	if err := themes.Validate(); err != nil {
		return nil, err
	}

	a := &App{themes: append(theme.Catalogue(nil), themes...)}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Themes returns a copy of the catalogue.
func (a *App) Themes() theme.Catalogue {
	return append(theme.Catalogue(nil), a.themes...)
}

// NewModel returns the initial model. A theme outside the catalogue is
// replaced by the first catalogue entry.
func (a *App) NewModel(initial theme.Theme) Model {
	if !a.themes.Contains(initial) {
		common.LogWarn("Theme %q is not in the catalogue, using %q", initial.Name, a.themes[0].Name)
		initial = a.themes[0]
	}
	return Model{
		theme:    initial,
		document: editor.New(""),
		slider:   SliderMin,
	}
}

// Theme is the theme resolver: the theme the page is styled with.
func (a *App) Theme(m Model) theme.Theme {
	return m.theme
}
