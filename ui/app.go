package ui

import (
	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/config"
	"github.com/yllada/styling/styling"
	"github.com/yllada/styling/theme"
)

// Application runs the gallery on the GTK main loop.
//
// User interaction and key presses are queued as messages. A single idle
// callback applies every queued message in order, then restyles and
// re-renders the page once.
type Application struct {
	app      *adw.Application
	window   *MainWindow
	core     *styling.App
	model    styling.Model
	keys     *styling.KeyboardSubscription
	renderer *Renderer[styling.Message]
	resolver *ThemeResolver
	config   *config.Config
	version  string

	queue     []styling.Message
	scheduled bool
	styled    theme.Theme
	sizes     int
}

// NewApplication creates the application around core, starting from
// model.
func NewApplication(core *styling.App, model styling.Model, cfg *config.Config, version string) *Application {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	a := &Application{
		app:     adw.NewApplication(common.AppID, gio.ApplicationFlagsNone),
		core:    core,
		model:   model,
		keys:    styling.NewKeyboardSubscription(),
		config:  cfg,
		version: version,
	}
	a.renderer = NewRenderer(cfg.ScaleFactor, a.Dispatch)

	a.app.ConnectActivate(a.onActivate)
	return a
}

// Run runs the main loop and returns its exit status.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate builds the window the first time the application is
// activated and presents it.
func (a *Application) onActivate() {
	if a.window != nil {
		a.window.Present()
		return
	}

	ApplyScale(a.config.ScaleFactor)
	a.resolver = NewThemeResolver(a.config.ScaleFactor)
	a.setupActions()

	a.window = NewMainWindow(a)
	a.render()
	a.restyle(true)
	a.window.Show()

	common.LogInfo("%s %s started with theme %s", common.AppName, a.version, a.core.Theme(a.model))
}

// setupActions registers the application actions.
func (a *Application) setupActions() {
	// Quit action (Ctrl+Q)
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		a.Quit()
	})
	a.app.AddAction(quitAction)
	a.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// Dispatch queues msg. It must be called on the main loop.
func (a *Application) Dispatch(msg styling.Message) {
	a.queue = append(a.queue, msg)
	if a.scheduled {
		return
	}
	a.scheduled = true
	glib.IdleAdd(a.drain)
}

// HandleKey feeds a raw key event to the subscription. It reports
// whether the key belongs to the subscription, in which case the event
// should not travel further.
func (a *Application) HandleKey(ev styling.KeyEvent) bool {
	if msg, ok := a.keys.Handle(ev); ok {
		a.Dispatch(msg)
	}
	return a.keys.Consumes(ev.Key)
}

// ReleaseKeys forgets held keys, typically when the window loses focus
// and the matching releases will never arrive.
func (a *Application) ReleaseKeys() {
	a.keys.Reset()
}

// drain applies all queued messages and shows the result.
func (a *Application) drain() {
	a.scheduled = false
	queue := a.queue
	a.queue = nil
	if len(queue) == 0 {
		return
	}

	for _, msg := range queue {
		common.LogDebug("Message: %s", styling.Describe(msg))
		a.model = a.core.Update(a.model, msg)
	}

	a.render()
	a.restyle(false)
}

// render shows the view of the current model.
func (a *Application) render() {
	if a.window == nil {
		return
	}
	root, replaced := a.renderer.Render(a.core.View(a.model))
	if replaced {
		a.window.SetContent(root)
	}
}

// restyle applies the current theme when it changed, or when new text
// sizes appeared on the page.
func (a *Application) restyle(force bool) {
	if a.resolver == nil {
		return
	}
	current := a.core.Theme(a.model)
	sizes := a.renderer.TextSizes()
	if !force && current == a.styled && len(sizes) == a.sizes {
		return
	}
	if current != a.styled {
		common.LogInfo("Theme: %s", current)
	}
	a.resolver.Apply(current, sizes)
	a.styled = current
	a.sizes = len(sizes)
}

// Model returns the current model.
func (a *Application) Model() styling.Model {
	return a.model
}

// GetConfig returns the configuration.
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetVersion returns the application version.
func (a *Application) GetVersion() string {
	return a.version
}

// Quit closes the window and stops the main loop.
func (a *Application) Quit() {
	if a.window != nil {
		a.window.Close()
	}
	a.app.Quit()
}
