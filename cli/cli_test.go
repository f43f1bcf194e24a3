package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yllada/styling/styling"
	"github.com/yllada/styling/theme"
	"github.com/yllada/styling/widget"
)

func TestListThemes(t *testing.T) {
	var buf bytes.Buffer
	themes := theme.All()

	if err := New(&buf).ListThemes(themes, "Dracula"); err != nil {
		t.Fatalf("ListThemes() error = %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(themes)+2 {
		t.Fatalf("got %d lines, want header plus %d themes:\n%s", len(lines), len(themes), out)
	}
	for i, th := range themes {
		line := lines[i+2]
		if !strings.Contains(line, th.Name) {
			t.Errorf("line %d = %q, want theme %s", i, line, th.Name)
		}
		if !strings.Contains(line, th.Palette.Primary.Clamped().Hex()) {
			t.Errorf("line %d = %q, want primary color", i, line)
		}
		marked := strings.HasPrefix(line, "*")
		if marked != (th.Name == "Dracula") {
			t.Errorf("line %d = %q, marked = %v", i, line, marked)
		}
	}
	if !strings.Contains(lines[2], "light") {
		t.Errorf("first theme should be light: %q", lines[2])
	}
}

func TestListThemes_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).ListThemes(nil, ""); err != nil {
		t.Fatalf("ListThemes() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No themes") {
		t.Errorf("ListThemes(nil) = %q", buf.String())
	}
}

func TestDumpView(t *testing.T) {
	app, err := styling.New(theme.All())
	if err != nil {
		t.Fatal(err)
	}
	m := app.NewModel(theme.Default())
	m = app.Update(m, styling.SliderChanged{Value: 42.5})

	var buf bytes.Buffer
	if err := New(&buf).DumpView(app, m); err != nil {
		t.Fatalf("DumpView() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Center") {
		t.Errorf("dump should start at the root:\n%s", out)
	}
	for _, want := range []string{
		"Column spacing=20 padding=20 max-width=600",
		`Text "Theme:"`,
		"Slider [0, 100] = 42.5",
		"ProgressBar [0, 100] = 42.5",
		`Button "Warning" secondary`,
		`Text "Card Example" size=24`,
		`Toggler "Toggle me!" off`,
		"╰── ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}
}

func TestViewTree_CountsEveryElement(t *testing.T) {
	app, err := styling.New(theme.All())
	if err != nil {
		t.Fatal(err)
	}
	root := app.View(app.NewModel(theme.Default()))

	count := 0
	widget.Walk[styling.Message](root, func(widget.Element[styling.Message]) bool {
		count++
		return true
	})

	out := ViewTree[styling.Message](New(&bytes.Buffer{}).renderer, root).String()
	if lines := len(strings.Split(strings.TrimRight(out, "\n"), "\n")); lines != count {
		t.Errorf("tree has %d lines, want one per element (%d):\n%s", lines, count, out)
	}
}
