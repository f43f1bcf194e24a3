// Package main provides the entry point for Styling.
// Styling is a GTK4 widget gallery: one page of common widgets styled
// after a palette theme. The arrow keys cycle through the themes.
//
// Features:
//   - Theme picker, text input, text editor, buttons, slider and
//     progress bars, checkbox, toggler, scrollable area and card
//   - Up/Left selects the previous theme, Down/Right the next one
//   - Optional YAML configuration for the start theme and scale factor
//   - Headless theme listing and widget tree dump for development
//
// Usage:
//
//	styling [options]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/styling/cli"
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/config"
	"github.com/yllada/styling/styling"
	"github.com/yllada/styling/theme"
	"github.com/yllada/styling/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// Developer flags
	listThemes = flag.Bool("themes", false, "List the available themes")
	dumpView   = flag.Bool("dump", false, "Print the widget tree of the start page")
)

func main() {
	flag.Parse()

	// Handle help flag
	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	// Configuration problems are reported once logging is set up
	cfg, cfgErr := config.Load()

	logLevel := cfg.Level()
	if *verbose {
		logLevel = common.LevelDebug
	}
	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: cfg.LogFile,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	if cfgErr != nil {
		common.LogWarn("Configuration: %v", cfgErr)
	}

	exitCode := run(cfg)
	common.CloseLogger()
	os.Exit(exitCode)
}

// run starts the requested mode and returns the process exit code.
func run(cfg *config.Config) int {
	themes := theme.All()
	app, err := styling.New(themes, styling.WithSecondaryInput(cfg.SecondaryInput))
	if err != nil {
		common.LogError("Cannot start: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	model := app.NewModel(initialTheme(themes, cfg.Theme))

	// Developer modes need no display
	switch {
	case *listThemes:
		return report(cli.New(os.Stdout).ListThemes(themes, app.Theme(model).Name))
	case *dumpView:
		return report(cli.New(os.Stdout).DumpView(app, model))
	}

	if !gtk.InitCheck() {
		err := common.WrapError(common.ErrToolkitInit, "no display available")
		common.LogError("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Start the GTK application (GUI mode)
	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	application := ui.NewApplication(app, model, cfg, appVersion)
	setupSignalHandler(application)

	exitCode := application.Run(os.Args[:1])
	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	return exitCode
}

// initialTheme resolves the configured theme name, falling back to the
// first theme of the catalogue.
func initialTheme(themes theme.Catalogue, name string) theme.Theme {
	if name == "" {
		return themes[0]
	}
	t, err := themes.Lookup(name)
	if err != nil {
		if errors.Is(err, common.ErrUnknownTheme) {
			common.LogWarn("Configured theme %q is unknown, using %s", name, themes[0])
		}
		return themes[0]
	}
	return t
}

// report prints a CLI error and converts it to an exit code.
func report(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupSignalHandler quits the main loop on SIGINT/SIGTERM.
// The quit request is handed to the main loop; GTK is never touched
// from the signal goroutine.
func setupSignalHandler(app *ui.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		common.LogInfo("Received signal %v, shutting down...", sig)
		glib.IdleAdd(app.Quit)
	}()
}
