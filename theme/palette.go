package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/yllada/styling/common"
)

// Palette is the small set of base colors a theme is defined by.
// Every other shade is derived from it, see Extended.
type Palette struct {
	Background colorful.Color
	Text       colorful.Color
	Primary    colorful.Color
	Success    colorful.Color
	Danger     colorful.Color
}

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(background, text, primary, success, danger string) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		dst *colorful.Color
		hex string
	}{
		{&p.Background, background},
		{&p.Text, text},
		{&p.Primary, primary},
		{&p.Success, success},
		{&p.Danger, danger},
	} {
		col, err := colorful.Hex(c.hex)
		if err != nil {
			return Palette{}, common.WrapError(common.ErrInvalidColor, fmt.Sprintf("%q", c.hex))
		}
		*c.dst = col
	}
	return p, nil
}

func mustPalette(background, text, primary, success, danger string) Palette {
	p, err := ParsePalette(background, text, primary, success, danger)
	if err != nil {
		panic(err)
	}
	return p
}

// Pair is a fill color and the text color readable on top of it.
type Pair struct {
	Color colorful.Color
	Text  colorful.Color
}

// Shades holds the three variants of a base color used by widgets.
type Shades struct {
	Base   Pair
	Weak   Pair
	Strong Pair
}

// Extended is the full palette widgets are styled from.
type Extended struct {
	Background Shades
	Primary    Shades
	Secondary  Shades
	Success    Shades
	Danger     Shades
	IsDark     bool
}

// Extended derives the weak and strong shades of every base color.
func (p Palette) Extended() Extended {
	return Extended{
		Background: backgroundShades(p.Background, p.Text),
		Primary:    colorShades(p.Primary, p.Background, p.Text),
		Secondary:  secondaryShades(p.Background, p.Text),
		Success:    colorShades(p.Success, p.Background, p.Text),
		Danger:     colorShades(p.Danger, p.Background, p.Text),
		IsDark:     IsDark(p.Background),
	}
}

func backgroundShades(base, text colorful.Color) Shades {
	weak := mix(base, text, 0.15)
	strong := mix(base, text, 0.40)
	return Shades{
		Base:   Pair{base, text},
		Weak:   Pair{weak, readable(weak, text)},
		Strong: Pair{strong, readable(strong, text)},
	}
}

func colorShades(base, background, text colorful.Color) Shades {
	weak := mix(base, background, 0.4)
	strong := deviate(base, 0.1)
	return Shades{
		Base:   Pair{base, readable(base, text)},
		Weak:   Pair{weak, readable(weak, text)},
		Strong: Pair{strong, readable(strong, text)},
	}
}

func secondaryShades(background, text colorful.Color) Shades {
	base := mix(background, text, 0.2)
	weak := mix(background, text, 0.1)
	strong := mix(background, text, 0.3)
	return Shades{
		Base:   Pair{base, readable(base, text)},
		Weak:   Pair{weak, readable(weak, text)},
		Strong: Pair{strong, readable(strong, text)},
	}
}

// IsDark reports whether c is perceptually dark (CIE L* below 0.6).
func IsDark(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l < 0.6
}

func deviate(c colorful.Color, amount float64) colorful.Color {
	h, s, l := c.Hsl()
	if IsDark(c) {
		return colorful.Hsl(h, s, common.Clamp(l+amount, 0, 1))
	}
	return colorful.Hsl(h, s, common.Clamp(l-amount, 0, 1))
}

func mix(a, b colorful.Color, factor float64) colorful.Color {
	return a.BlendLab(b, factor).Clamped()
}

// readable returns text if it stands out on background, otherwise the
// better of black and white.
func readable(background, text colorful.Color) colorful.Color {
	if background.DistanceLab(text) >= 0.5 {
		return text
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	if background.DistanceLab(white) > background.DistanceLab(black) {
		return white
	}
	return black
}
