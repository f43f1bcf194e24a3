package styling

import (
	"math"

	"github.com/yllada/styling/common"
)

// Update applies msg to m and returns the resulting model.
func (a *App) Update(m Model, msg Message) Model {
	switch msg := msg.(type) {
	case ThemeChanged:
		if a.themes.Contains(msg.Theme) {
			m.theme = msg.Theme
		}
	case InputChanged:
		m.input = msg.Value
	case EditorChanged:
		m.document.Perform(msg.Action)
	case ButtonPressed:
	case SliderChanged:
		if !math.IsNaN(msg.Value) {
			m.slider = common.Clamp(msg.Value, SliderMin, SliderMax)
		}
	case CheckboxToggled:
		m.checked = msg.Checked
	case TogglerToggled:
		m.toggled = msg.On
	case NextTheme:
		if next, ok := a.themes.Next(m.theme); ok {
			m.theme = next
		}
	case PreviousTheme:
		if previous, ok := a.themes.Previous(m.theme); ok {
			m.theme = previous
		}
	case SecondaryInputChanged:
		m.secondary.value = msg.Value
	case SecondaryButtonPressed:
		m.secondary.toggle = !m.secondary.toggle
	}
	return m
}
