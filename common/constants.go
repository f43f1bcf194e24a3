// Package common provides shared constants, types, and utilities
// used across the Styling application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "io.github.yllada.Styling"
	// AppName is the display name of the application.
	AppName = "Styling"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "styling"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "styling.log"
)

// Display scale limits. Every logical unit of the page is multiplied by
// the scale factor before it reaches GTK.
const (
	DefaultScaleFactor = 1.5
	MinScaleFactor     = 1.5
	MaxScaleFactor     = 2.0
)

// Page layout, in logical units.
const (
	PageMaxWidth = 600
	PagePadding  = 20
	PageSpacing  = 20
)

// Log level names accepted in the configuration file.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
