// Package theme holds the process-wide catalogue of named color themes.
//
// The catalogue is fixed at startup and never mutated: All returns a copy,
// and every Theme is a plain comparable value, so two themes are the same
// theme exactly when they compare equal.
package theme

import (
	"strings"

	"github.com/yllada/styling/common"
)

// Theme is a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// String returns the theme name.
func (t Theme) String() string {
	return t.Name
}

// IsDark reports whether the theme has a dark background.
func (t Theme) IsDark() bool {
	return IsDark(t.Palette.Background)
}

// Catalogue is an ordered list of themes.
type Catalogue []Theme

// Index returns the position of t, or -1 if t is not in the catalogue.
func (c Catalogue) Index(t Theme) int {
	for i, candidate := range c {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Contains reports whether t is a member of the catalogue.
func (c Catalogue) Contains(t Theme) bool {
	return c.Index(t) >= 0
}

// Lookup finds a theme by name, ignoring case and surrounding space.
func (c Catalogue) Lookup(name string) (Theme, error) {
	name = strings.TrimSpace(name)
	for _, t := range c {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Theme{}, common.WrapError(common.ErrUnknownTheme, name)
}

// Names returns the theme names in catalogue order.
func (c Catalogue) Names() []string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t, wrapping at the end. The second result
// is false when t is not in the catalogue.
func (c Catalogue) Next(t Theme) (Theme, bool) {
	i := c.Index(t)
	if i < 0 {
		return t, false
	}
	return c[(i+1)%len(c)], true
}

// Previous returns the theme before t, wrapping at the start. The second
// result is false when t is not in the catalogue.
func (c Catalogue) Previous(t Theme) (Theme, bool) {
	i := c.Index(t)
	if i < 0 {
		return t, false
	}
	if i == 0 {
		return c[len(c)-1], true
	}
	return c[i-1], true
}

// Validate fails with ErrEmptyCatalogue if c has no themes.
func (c Catalogue) Validate() error {
	if len(c) == 0 {
		return common.ErrEmptyCatalogue
	}
	return nil
}

// Default returns the toolkit default theme, the first of All.
func Default() Theme {
	return builtin[0]
}

// All returns a copy of the built-in catalogue.
func All() Catalogue {
	return append(Catalogue(nil), builtin...)
}

var builtin = Catalogue{
	{"Light", mustPalette("#ffffff", "#000000", "#5e7ce2", "#12664f", "#c3423f")},
	{"Dark", mustPalette("#2b2d31", "#e6e6e6", "#5e7ce2", "#12664f", "#c3423f")},
	{"Dracula", mustPalette("#282a36", "#f8f8f2", "#bd93f9", "#50fa7b", "#ff5555")},
	{"Nord", mustPalette("#2e3440", "#eceff4", "#8fbcbb", "#a3be8c", "#bf616a")},
	{"Solarized Light", mustPalette("#fdf6e3", "#657b83", "#2aa198", "#859900", "#dc322f")},
	{"Solarized Dark", mustPalette("#002b36", "#839496", "#2aa198", "#859900", "#dc322f")},
	{"Gruvbox Light", mustPalette("#fbf1c7", "#282828", "#458588", "#98971a", "#cc241d")},
	{"Gruvbox Dark", mustPalette("#282828", "#fbf1c7", "#458588", "#98971a", "#cc241d")},
	{"Catppuccin Latte", mustPalette("#eff1f5", "#4c4f69", "#1e66f5", "#40a02b", "#d20f39")},
	{"Catppuccin Frappé", mustPalette("#303446", "#c6d0f5", "#8caaee", "#a6d189", "#e78284")},
	{"Catppuccin Macchiato", mustPalette("#24273a", "#cad3f5", "#8aadf4", "#a6da95", "#ed8796")},
	{"Catppuccin Mocha", mustPalette("#1e1e2e", "#cdd6f4", "#89b4fa", "#a6e3a1", "#f38ba8")},
	{"Tokyo Night", mustPalette("#1a1b26", "#9aa5ce", "#2ac3de", "#9ece6a", "#f7768e")},
	{"Tokyo Night Storm", mustPalette("#24283b", "#9aa5ce", "#2ac3de", "#9ece6a", "#f7768e")},
	{"Tokyo Night Light", mustPalette("#d5d6db", "#565a6e", "#166775", "#485e30", "#8c4351")},
	{"Kanagawa Wave", mustPalette("#363646", "#dcd7ba", "#7e9cd8", "#76946a", "#c34043")},
	{"Kanagawa Dragon", mustPalette("#181616", "#c5c9c5", "#223249", "#8a9a7b", "#c4746e")},
	{"Kanagawa Lotus", mustPalette("#f2ecbc", "#545464", "#4d699b", "#6f894e", "#c84053")},
	{"Moonfly", mustPalette("#080808", "#bdbdbd", "#80a0ff", "#8cc85f", "#ff5454")},
	{"Nightfly", mustPalette("#011627", "#bdc1c6", "#82aaff", "#a1cd5e", "#fc514e")},
	{"Oxocarbon", mustPalette("#232323", "#d0d0d0", "#00b4ff", "#00c15a", "#f62d0f")},
	{"Ferra", mustPalette("#2b292d", "#fecdb2", "#d1d1e0", "#b1b695", "#e06b75")},
}
