package styling

import (
	"strings"
	"testing"

	"github.com/yllada/styling/editor"
	"github.com/yllada/styling/widget"
)

func describeTree(root widget.Element[Message]) string {
	var b strings.Builder
	widget.Walk[Message](root, func(e widget.Element[Message]) bool {
		b.WriteString(widget.Describe[Message](e))
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

func textInputs(root widget.Element[Message]) []widget.TextInput[Message] {
	var inputs []widget.TextInput[Message]
	for _, e := range widget.Collect[Message](root, widget.KindTextInput) {
		inputs = append(inputs, e.(widget.TextInput[Message]))
	}
	return inputs
}

func progressValues(root widget.Element[Message]) []float64 {
	var values []float64
	for _, e := range widget.Collect[Message](root, widget.KindProgressBar) {
		values = append(values, e.(widget.ProgressBar).Value)
	}
	return values
}

func TestView_Layout(t *testing.T) {
	app, m := newTestApp(t, 0)
	root := app.View(m)

	center, ok := root.(widget.Center[Message])
	if !ok {
		t.Fatalf("root = %T, want Center", root)
	}
	page, ok := center.Content.(widget.Column[Message])
	if !ok {
		t.Fatalf("page = %T, want Column", center.Content)
	}
	if page.MaxWidth != 600 || page.Padding != 20 || page.Spacing != 20 {
		t.Errorf("page column = %s", widget.Describe[Message](page))
	}

	want := []widget.Kind{
		widget.KindColumn, // theme picker
		widget.KindRule,
		widget.KindTextInput,
		widget.KindTextEditor,
		widget.KindRow, // buttons
		widget.KindSlider,
		widget.KindProgressBar,
		widget.KindRow, // scrollable, rule, toggles
		widget.KindContainer,
	}
	if len(page.Children) != len(want) {
		t.Fatalf("page has %d children, want %d", len(page.Children), len(want))
	}
	for i, kind := range want {
		if got := page.Children[i].Kind(); got != kind {
			t.Errorf("child %d = %s, want %s", i, got, kind)
		}
	}
}

func TestView_Buttons(t *testing.T) {
	app, m := newTestApp(t, 0)

	buttons := widget.Collect[Message](app.View(m), widget.KindButton)
	want := []struct {
		label string
		style widget.ButtonStyle
	}{
		{"Primary", widget.ButtonPrimary},
		{"Success", widget.ButtonSuccess},
		{"Warning", widget.ButtonSecondary},
		{"Danger", widget.ButtonDanger},
	}
	if len(buttons) != len(want) {
		t.Fatalf("found %d buttons, want %d", len(buttons), len(want))
	}
	for i, w := range want {
		b := buttons[i].(widget.Button[Message])
		if b.Label != w.label || b.Style != w.style {
			t.Errorf("button %d = %s", i, widget.Describe[Message](b))
		}
		if b.OnPress == nil {
			t.Fatalf("button %s is disabled", b.Label)
		}
		if _, ok := b.OnPress().(ButtonPressed); !ok {
			t.Errorf("button %s sends %s", b.Label, Describe(b.OnPress()))
		}
	}
}

// Scenario: one slider value drives both progress bars.
func TestView_ProgressMirrorsSlider(t *testing.T) {
	app, m := newTestApp(t, 0)

	for _, v := range []float64{0, 42.5, 100, 250} {
		m = app.Update(m, SliderChanged{Value: v})
		root := app.View(m)

		values := progressValues(root)
		if len(values) != 2 {
			t.Fatalf("found %d progress bars, want 2", len(values))
		}
		for _, got := range values {
			if got != m.SliderValue() {
				t.Errorf("progress bar = %v, want %v", got, m.SliderValue())
			}
		}

		sliders := widget.Collect[Message](root, widget.KindSlider)
		if len(sliders) != 2 {
			t.Fatalf("found %d sliders, want 2", len(sliders))
		}
		for _, s := range sliders {
			s := s.(widget.Slider[Message])
			if s.Value != m.SliderValue() || s.Min != 0 || s.Max != 100 {
				t.Errorf("slider = %s", widget.Describe[Message](s))
			}
		}
	}
}

func TestView_CardSliderMovesBothBars(t *testing.T) {
	app, m := newTestApp(t, 0)

	sliders := widget.Collect[Message](app.View(m), widget.KindSlider)
	card := sliders[1].(widget.Slider[Message])
	m = app.Update(m, card.OnChange(42.5))

	for _, v := range progressValues(app.View(m)) {
		if v != 42.5 {
			t.Errorf("progress bar = %v after moving the card slider, want 42.5", v)
		}
	}
}

func TestView_Widgets(t *testing.T) {
	app, m := newTestApp(t, 0)
	m = apply(app, m, CheckboxToggled{Checked: true}, InputChanged{Value: "abc"})
	dump := describeTree(app.View(m))

	for _, want := range []string{
		`Text "Theme:"`,
		"Rule horizontal thickness=5",
		`TextInput "abc" placeholder="Type something..."`,
		`TextEditor 0 chars placeholder="Type something here..."`,
		`Text "Scroll me!"`,
		"Space height=800",
		`Text "You did it!"`,
		"Rule vertical thickness=5",
		`Checkbox "Check me!" on`,
		`Toggler "Toggle me!" off`,
		"Container bordered padding=20",
		`Text "Card Example" size=24`,
		"Scrollable height=100",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("view is missing %q:\n%s", want, dump)
		}
	}
	if strings.Contains(dump, "Maliit") {
		t.Error("the secondary input must be hidden by default")
	}
}

func TestView_ThemePicker(t *testing.T) {
	app, m := newTestApp(t, 0)
	m = app.Update(m, NextTheme{})

	lists := widget.Collect[Message](app.View(m), widget.KindPickList)
	if len(lists) != 1 {
		t.Fatalf("found %d pick lists, want 1", len(lists))
	}
	pick := lists[0].(widget.PickList[Message])

	if len(pick.Options) != len(app.Themes()) {
		t.Errorf("picker lists %d themes, want %d", len(pick.Options), len(app.Themes()))
	}
	if pick.Selected != 1 {
		t.Errorf("Selected = %d, want 1", pick.Selected)
	}

	msg, ok := pick.OnSelect(4).(ThemeChanged)
	if !ok || msg.Theme != app.Themes()[4] {
		t.Errorf("OnSelect(4) = %s", Describe(pick.OnSelect(4)))
	}
	if got := app.Update(m, pick.OnSelect(-1)); got.Theme() != m.Theme() {
		t.Error("an out of range selection must keep the theme")
	}
}

func TestView_Callbacks(t *testing.T) {
	app, m := newTestApp(t, 0)
	root := app.View(m)

	input := textInputs(root)[0]
	if msg := input.OnInput("x"); msg != (InputChanged{Value: "x"}) {
		t.Errorf("OnInput = %s", Describe(msg))
	}

	ed := widget.Collect[Message](root, widget.KindTextEditor)[0].(widget.TextEditor[Message])
	if ed.Content != m.Editor() {
		t.Error("the editor element must show the model's document")
	}
	if msg := ed.OnAction(editor.Insert(0, "a")); msg != (EditorChanged{Action: editor.Insert(0, "a")}) {
		t.Errorf("OnAction = %s", Describe(msg))
	}

	check := widget.Collect[Message](root, widget.KindCheckbox)[0].(widget.Checkbox[Message])
	if msg := check.OnToggle(true); msg != (CheckboxToggled{Checked: true}) {
		t.Errorf("checkbox OnToggle = %s", Describe(msg))
	}

	toggler := widget.Collect[Message](root, widget.KindToggler)[0].(widget.Toggler[Message])
	if msg := toggler.OnToggle(true); msg != (TogglerToggled{On: true}) {
		t.Errorf("toggler OnToggle = %s", Describe(msg))
	}
	if toggler.Spacing != 10 {
		t.Errorf("toggler spacing = %v, want 10", toggler.Spacing)
	}
}

func TestView_SecondaryInput(t *testing.T) {
	app, m := newTestApp(t, 0, WithSecondaryInput(true))
	m = app.Update(m, SecondaryInputChanged{Value: "osk"})
	root := app.View(m)

	inputs := textInputs(root)
	if len(inputs) != 2 {
		t.Fatalf("found %d text inputs, want 2", len(inputs))
	}
	if inputs[0].Placeholder != "Maliit input..." || inputs[0].Value != "osk" {
		t.Errorf("secondary input = %+v", inputs[0])
	}
	if !strings.Contains(describeTree(root), `Button "Button"`) {
		t.Error("secondary button missing")
	}
}
