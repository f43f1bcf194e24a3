// Package ui runs the Styling gallery on GTK4 and libadwaita.
//
// The gallery itself is toolkit independent (package styling). This
// package drives it:
//
//   - Application: main loop, message queue and theme switching
//   - MainWindow: fullscreen window and arrow key handling
//   - Renderer: mounts a widget tree into GTK widgets and patches them
//   - ThemeResolver: style sheet generated from the theme palette
//
// # Message Loop
//
// Signal handlers never change the model. They queue a message through
// Application.Dispatch; one idle callback then applies every queued
// message in order, restyles when the theme changed and patches the
// widgets once.
//
// # Patching
//
// Setting a widget property from the renderer emits the same signals as
// user input does. The renderer drops those while it patches, so a
// rendered value never comes back as a message.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Code running elsewhere
// must go through glib.IdleAdd():
//
//	glib.IdleAdd(func() {
//	    app.Dispatch(styling.NextTheme{})
//	})
//
// # File Organization
//
//   - app.go: Application lifecycle and message loop
//   - window.go: Main window and keyboard controller
//   - render.go: Reconciler core and layout helpers
//   - widgets.go: One mounted node type per widget kind
//   - styles.go: Style sheet template and theme resolver
package ui
