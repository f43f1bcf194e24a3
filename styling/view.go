package styling

import (
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/editor"
	"github.com/yllada/styling/widget"
)

type element = widget.Element[Message]

// View builds the page for m. It is rebuilt after every update.
func (a *App) View(m Model) element {
	content := make([]element, 0, 10)
	if a.secondary {
		content = append(content, a.secondaryRow(m))
	}
	content = append(content,
		a.themePicker(m),
		widget.Rule{Axis: widget.Horizontal, Thickness: 5},
		widget.TextInput[Message]{
			Placeholder: "Type something...",
			Value:       m.input,
			Size:        20,
			Padding:     10,
			OnInput:     func(s string) Message { return InputChanged{Value: s} },
		},
		widget.TextEditor[Message]{
			Content:     m.document,
			Placeholder: "Type something here...",
			Size:        20,
			Padding:     10,
			OnAction:    func(act editor.Action) Message { return EditorChanged{Action: act} },
		},
		widget.Row[Message]{
			Spacing:     10,
			CenterY:     true,
			Homogeneous: true,
			Children: []element{
				styledButton("Primary", widget.ButtonPrimary),
				styledButton("Success", widget.ButtonSuccess),
				styledButton("Warning", widget.ButtonSecondary),
				styledButton("Danger", widget.ButtonDanger),
			},
		},
		slider(m),
		progressBar(m),
		widget.Row[Message]{
			Spacing: 10,
			Height:  100,
			CenterY: true,
			Children: []element{
				widget.Scrollable[Message]{
					Direction: widget.Vertical,
					Width:     widget.Fill,
					Height:    100,
					Content: widget.Column[Message]{Children: []element{
						widget.Text{Content: "Scroll me!"},
						widget.Space{Height: 800},
						widget.Text{Content: "You did it!"},
					}},
				},
				widget.Rule{Axis: widget.Vertical, Thickness: 5},
				widget.Column[Message]{
					Spacing: 20,
					Children: []element{
						widget.Checkbox[Message]{
							Label:    "Check me!",
							Checked:  m.checked,
							OnToggle: func(b bool) Message { return CheckboxToggled{Checked: b} },
						},
						widget.Toggler[Message]{
							Label:    "Toggle me!",
							On:       m.toggled,
							Spacing:  10,
							OnToggle: func(b bool) Message { return TogglerToggled{On: b} },
						},
					},
				},
			},
		},
		widget.Container[Message]{
			Style:   widget.ContainerBordered,
			Padding: 20,
			Width:   widget.Fill,
			Content: widget.Column[Message]{
				Spacing: 20,
				Children: []element{
					widget.Text{Content: "Card Example", Size: 24},
					slider(m),
					progressBar(m),
				},
			},
		},
	)

	return widget.Center[Message]{Content: widget.Column[Message]{
		Children: content,
		Spacing:  common.PageSpacing,
		Padding:  common.PagePadding,
		MaxWidth: common.PageMaxWidth,
	}}
}

func (a *App) themePicker(m Model) element {
	return widget.Column[Message]{
		Spacing: 10,
		Children: []element{
			widget.Text{Content: "Theme:"},
			widget.PickList[Message]{
				Options:  a.themes.Names(),
				Selected: a.themes.Index(m.theme),
				Width:    widget.Fill,
				OnSelect: func(i int) Message {
					if i < 0 || i >= len(a.themes) {
						return ThemeChanged{Theme: m.theme}
					}
					return ThemeChanged{Theme: a.themes[i]}
				},
			},
		},
	}
}

func (a *App) secondaryRow(m Model) element {
	return widget.Row[Message]{
		Spacing: 20,
		CenterY: true,
		Children: []element{
			widget.TextInput[Message]{
				Placeholder: "Maliit input...",
				Value:       m.secondary.value,
				Padding:     20,
				Width:       widget.Fill,
				OnInput:     func(s string) Message { return SecondaryInputChanged{Value: s} },
			},
			widget.Button[Message]{
				Label:   "Button",
				OnPress: func() Message { return SecondaryButtonPressed{} },
			},
		},
	}
}

func styledButton(label string, style widget.ButtonStyle) element {
	return widget.Button[Message]{
		Label:   label,
		Style:   style,
		Padding: 10,
		Width:   widget.Fill,
		OnPress: func() Message { return ButtonPressed{} },
	}
}

func slider(m Model) element {
	return widget.Slider[Message]{
		Min:      SliderMin,
		Max:      SliderMax,
		Value:    m.slider,
		Step:     0.5,
		OnChange: func(v float64) Message { return SliderChanged{Value: v} },
	}
}

func progressBar(m Model) element {
	return widget.ProgressBar{Min: SliderMin, Max: SliderMax, Value: m.slider}
}
