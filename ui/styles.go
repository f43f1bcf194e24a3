package ui

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/theme"
)

// The style sheet overrides the libadwaita named colors so stock widgets
// follow the palette, then styles the gallery's own classes.
const styleTemplate = `
/* {{.Name}} */
@define-color window_bg_color {{hex .Background.Base.Color}};
@define-color window_fg_color {{hex .Background.Base.Text}};
@define-color view_bg_color {{hex .Background.Base.Color}};
@define-color view_fg_color {{hex .Background.Base.Text}};
@define-color card_bg_color {{hex .Background.Weak.Color}};
@define-color card_fg_color {{hex .Background.Weak.Text}};
@define-color popover_bg_color {{hex .Background.Weak.Color}};
@define-color popover_fg_color {{hex .Background.Weak.Text}};
@define-color accent_color {{hex .Primary.Strong.Color}};
@define-color accent_bg_color {{hex .Primary.Base.Color}};
@define-color accent_fg_color {{hex .Primary.Base.Text}};
@define-color success_color {{hex .Success.Base.Color}};
@define-color success_bg_color {{hex .Success.Base.Color}};
@define-color success_fg_color {{hex .Success.Base.Text}};
@define-color destructive_color {{hex .Danger.Base.Color}};
@define-color destructive_bg_color {{hex .Danger.Base.Color}};
@define-color destructive_fg_color {{hex .Danger.Base.Text}};

window, .{{.Classes.Page}} {
    background-color: {{hex .Background.Base.Color}};
    color: {{hex .Background.Base.Text}};
}

entry, .{{.Classes.Editor}}, .{{.Classes.Editor}} text {
    background-color: {{hex .Background.Base.Color}};
    color: {{hex .Background.Base.Text}};
}

entry, .{{.Classes.Editor}} {
    border: {{.Border}}px solid {{hex .Background.Strong.Color}};
    border-radius: {{.Radius}}px;
}

entry:focus-within, .{{.Classes.Editor}}:focus-within {
    border-color: {{hex .Primary.Strong.Color}};
}

.{{.Classes.Placeholder}} {
    opacity: 0.5;
}
{{range .Buttons}}
button.{{.Class}} {
    background-image: none;
    background-color: {{hex .Shades.Base.Color}};
    color: {{hex .Shades.Base.Text}};
    border-radius: {{$.Radius}}px;
}

button.{{.Class}}:hover {
    background-color: {{hex .Shades.Strong.Color}};
    color: {{hex .Shades.Strong.Text}};
}

button.{{.Class}}:active {
    background-color: {{hex .Shades.Weak.Color}};
    color: {{hex .Shades.Weak.Text}};
}
{{end}}
scale trough, progressbar.{{.Classes.Progress}} trough {
    background-color: {{hex .Background.Strong.Color}};
}

scale highlight, progressbar.{{.Classes.Progress}} progress {
    background-color: {{hex .Primary.Base.Color}};
}

switch:checked, checkbutton check:checked {
    background-color: {{hex .Primary.Base.Color}};
    color: {{hex .Primary.Base.Text}};
}

separator {
    background-color: {{hex .Background.Strong.Color}};
}

.{{.Classes.Card}} {
    background-color: {{hex .Background.Weak.Color}};
    color: {{hex .Background.Weak.Text}};
    border: {{.Border}}px solid {{hex .Background.Strong.Color}};
    border-radius: {{.Radius}}px;
}
{{range .Sizes}}
.{{.Class}} {
    font-size: {{.Points}}pt;
}
{{end}}`

var stylesheet = template.Must(template.New("styles").Funcs(template.FuncMap{
	"hex": func(c colorful.Color) string { return c.Clamped().Hex() },
}).Parse(styleTemplate))

type buttonStyle struct {
	Class  string
	Shades theme.Shades
}

type textSize struct {
	Class  string
	Points string
}

type styleClasses struct {
	Page, Card, Editor, Placeholder, Progress string
}

type styleData struct {
	theme.Extended
	Name    string
	Classes styleClasses
	Buttons []buttonStyle
	Sizes   []textSize
	Border  int
	Radius  int
}

// Stylesheet returns the CSS for t. Sizes are the logical font sizes in
// use; scale multiplies pixel measures. Font sizes are given in points
// and follow the text scale set on the display.
func Stylesheet(t theme.Theme, scale float64, sizes []int) (string, error) {
	ext := t.Palette.Extended()
	data := styleData{
		Extended: ext,
		Name:     t.Name,
		Classes: styleClasses{
			Page:        classPage,
			Card:        classCard,
			Editor:      classEditor,
			Placeholder: classHint,
			Progress:    classProgress,
		},
		Buttons: []buttonStyle{
			{classPrimary, ext.Primary},
			{classSecond, ext.Secondary},
			{classSuccess, ext.Success},
			{classDanger, ext.Danger},
		},
		Border: max(1, int(scale+0.5)),
		Radius: int(2*scale + 0.5),
	}
	for _, size := range sizes {
		// One logical pixel is 0.75pt at 96 DPI.
		data.Sizes = append(data.Sizes, textSize{
			Class:  textSizeClass(size),
			Points: fmt.Sprintf("%g", float64(size)*0.75),
		})
	}

	var buf bytes.Buffer
	if err := stylesheet.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render style sheet for %s: %w", t.Name, err)
	}
	return buf.String(), nil
}

// ThemeResolver keeps the display styled after the current theme.
type ThemeResolver struct {
	provider *gtk.CSSProvider
	scale    float64
	current  string
}

// NewThemeResolver installs an empty application style provider on the
// default display.
func NewThemeResolver(scale float64) *ThemeResolver {
	res := &ThemeResolver{provider: gtk.NewCSSProvider(), scale: scale}

	display := gdk.DisplayGetDefault()
	if display == nil {
		common.LogWarn("No default display, theme will not be applied")
		return res
	}
	gtk.StyleContextAddProviderForDisplay(
		display,
		res.provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
	return res
}

// Apply restyles the display for t. Nothing happens when the style sheet
// did not change.
func (res *ThemeResolver) Apply(t theme.Theme, sizes []int) {
	css, err := Stylesheet(t, res.scale, sizes)
	if err != nil {
		common.LogError("Failed to apply theme: %v", err)
		return
	}
	if css == res.current {
		return
	}

	scheme := adw.ColorSchemeForceLight
	if t.IsDark() {
		scheme = adw.ColorSchemeForceDark
	}
	adw.StyleManagerGetDefault().SetColorScheme(scheme)

	res.provider.LoadFromString(css)
	res.current = css
	common.LogDebug("Style sheet for %s loaded (%d bytes)", t.Name, len(css))
}

// ApplyScale scales text on the default display. Pixel measures are
// scaled by the renderer.
func ApplyScale(scale float64) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}
	settings.SetObjectProperty("gtk-xft-dpi", int(96*1024*scale))
	common.LogInfo("Scale factor set to %g", scale)
}
