package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/styling"
)

// MainWindow is the single application window holding the page.
type MainWindow struct {
	app      *Application
	window   *gtk.ApplicationWindow
	scrolled *gtk.ScrolledWindow
}

// NewMainWindow creates the window and attaches the keyboard handling.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{app: app}

	mw.window = gtk.NewApplicationWindow(&app.app.Application)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(1024, 768)

	// The page is centered; it only scrolls when the screen is too small.
	mw.scrolled = gtk.NewScrolledWindow()
	mw.scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	mw.scrolled.SetVExpand(true)
	mw.scrolled.SetHExpand(true)
	mw.window.SetChild(mw.scrolled)

	mw.setupKeys()

	if app.config.Fullscreen {
		mw.window.Fullscreen()
	}
	return mw
}

// setupKeys routes arrow keys to the keyboard subscription.
//
// The controller runs in the capture phase so focus navigation never
// sees the arrows, except when a text field has focus: text fields use
// them to move the cursor and keep them.
func (mw *MainWindow) setupKeys() {
	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)

	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		key := keyFromKeyval(keyval)
		if key != styling.KeyOther && mw.textHasFocus() {
			return false
		}
		return mw.app.HandleKey(styling.KeyEvent{Key: key, Pressed: true})
	})
	keys.ConnectKeyReleased(func(keyval, _ uint, _ gdk.ModifierType) {
		mw.app.HandleKey(styling.KeyEvent{Key: keyFromKeyval(keyval)})
	})
	mw.window.AddController(keys)

	mw.window.NotifyProperty("is-active", func() {
		if !mw.window.IsActive() {
			mw.app.ReleaseKeys()
		}
	})
}

// textHasFocus reports whether keyboard focus is in an editable text
// widget.
func (mw *MainWindow) textHasFocus() bool {
	switch mw.window.Focus().(type) {
	case *gtk.Text, *gtk.TextView, *gtk.Entry:
		return true
	default:
		return false
	}
}

// keyFromKeyval maps GDK key symbols, keypad variants included.
func keyFromKeyval(keyval uint) styling.Key {
	switch keyval {
	case gdk.KEY_Up, gdk.KEY_KP_Up:
		return styling.KeyArrowUp
	case gdk.KEY_Down, gdk.KEY_KP_Down:
		return styling.KeyArrowDown
	case gdk.KEY_Left, gdk.KEY_KP_Left:
		return styling.KeyArrowLeft
	case gdk.KEY_Right, gdk.KEY_KP_Right:
		return styling.KeyArrowRight
	default:
		return styling.KeyOther
	}
}

// SetContent replaces the page shown by the window.
func (mw *MainWindow) SetContent(page gtk.Widgetter) {
	mw.scrolled.SetChild(page)
}

// Show displays the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Present raises the window.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}
