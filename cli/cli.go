// Package cli provides the command-line helpers of Styling. They inspect
// the gallery from a terminal without opening a display.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yllada/styling/styling"
	"github.com/yllada/styling/theme"
	"github.com/yllada/styling/widget"
)

// CLI writes reports to a terminal or any other writer.
type CLI struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// New creates a CLI writing to out. Colors are only emitted when out is a
// terminal that supports them.
func New(out io.Writer) *CLI {
	return &CLI{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
}

// ListThemes prints the catalogue in cycling order. The current theme,
// if any, is marked.
func (c *CLI) ListThemes(themes theme.Catalogue, current string) error {
	if len(themes) == 0 {
		fmt.Fprintln(c.out, "No themes available.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \t#\tNAME\tVARIANT\tPALETTE")
	fmt.Fprintln(w, " \t-\t----\t-------\t-------")

	for i, t := range themes {
		mark := " "
		if t.Name == current {
			mark = "*"
		}

		variant := "light"
		if t.IsDark() {
			variant = "dark"
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			mark, i+1, t.Name, variant, c.swatches(t.Palette))
	}

	return w.Flush()
}

// swatches renders the base colors of p as hex codes on their own color.
func (c *CLI) swatches(p theme.Palette) string {
	var out string
	for i, col := range []colorful.Color{p.Background, p.Text, p.Primary, p.Success, p.Danger} {
		if i > 0 {
			out += " "
		}
		hex := col.Clamped().Hex()
		fg := "#000000"
		if theme.IsDark(col) {
			fg = "#ffffff"
		}
		out += c.renderer.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(fg)).
			Render(hex)
	}
	return out
}

// DumpView prints the widget tree the gallery shows for m.
func (c *CLI) DumpView(app *styling.App, m styling.Model) error {
	t := ViewTree[styling.Message](c.renderer, app.View(m))
	_, err := fmt.Fprintln(c.out, t.String())
	return err
}

// ViewTree converts an element tree into a printable tree. Every node is
// labelled with widget.Describe.
func ViewTree[M any](r *lipgloss.Renderer, root widget.Element[M]) *tree.Tree {
	t := tree.Root(widget.Describe[M](root)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.NewStyle().Faint(true).PaddingRight(1)).
		RootStyle(r.NewStyle().Bold(true))

	for _, child := range widget.Children[M](root) {
		if len(widget.Children[M](child)) == 0 {
			t.Child(widget.Describe[M](child))
			continue
		}
		t.Child(ViewTree[M](r, child))
	}
	return t
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Styling - widget gallery

Usage:
  styling [OPTIONS]

Options:
  --version         Show version and exit
  --verbose         Enable verbose logging
  --themes          List the available themes
  --dump            Print the widget tree of the start page
  --help            Show this help message

Keys:
  Up, Left          Previous theme
  Down, Right       Next theme
  Ctrl+Q            Quit

Configuration:
  ~/.config/styling/config.yaml (optional)
    theme: Dracula
    scale_factor: 1.5
    fullscreen: true
    secondary_input: false
    log_level: info
    log_file: false

Notes:
  - Run without options to open the gallery`)
}
