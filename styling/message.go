package styling

import (
	"fmt"

	"github.com/yllada/styling/editor"
	"github.com/yllada/styling/theme"
)

// Message is a user intent. The set of variants is closed: the unexported
// marker keeps other packages from adding their own.
type Message interface {
	isMessage()
}

// ThemeChanged selects a theme from the picker.
type ThemeChanged struct{ Theme theme.Theme }

// PreviousTheme moves to the previous theme of the catalogue, wrapping.
type PreviousTheme struct{}

// NextTheme moves to the next theme of the catalogue, wrapping.
type NextTheme struct{}

// InputChanged carries the full contents of the text input.
type InputChanged struct{ Value string }

// EditorChanged carries one gesture of the text editor.
type EditorChanged struct{ Action editor.Action }

// ButtonPressed is sent by every styled button.
type ButtonPressed struct{}

// SliderChanged carries the new slider value.
type SliderChanged struct{ Value float64 }

// CheckboxToggled carries the new checkbox state.
type CheckboxToggled struct{ Checked bool }

// TogglerToggled carries the new toggler state.
type TogglerToggled struct{ On bool }

// SecondaryInputChanged carries the contents of the on-screen keyboard
// test input.
type SecondaryInputChanged struct{ Value string }

// SecondaryButtonPressed is sent by the button next to the on-screen
// keyboard test input.
type SecondaryButtonPressed struct{}

func (ThemeChanged) isMessage()           {}
func (PreviousTheme) isMessage()          {}
func (NextTheme) isMessage()              {}
func (InputChanged) isMessage()           {}
func (EditorChanged) isMessage()          {}
func (ButtonPressed) isMessage()          {}
func (SliderChanged) isMessage()          {}
func (CheckboxToggled) isMessage()        {}
func (TogglerToggled) isMessage()         {}
func (SecondaryInputChanged) isMessage()  {}
func (SecondaryButtonPressed) isMessage() {}

// Describe renders a message for the debug log.
func Describe(msg Message) string {
	switch msg := msg.(type) {
	case ThemeChanged:
		return "ThemeChanged(" + msg.Theme.Name + ")"
	case InputChanged:
		return fmt.Sprintf("InputChanged(%q)", msg.Value)
	case EditorChanged:
		return "EditorChanged(" + msg.Action.String() + ")"
	case SliderChanged:
		return fmt.Sprintf("SliderChanged(%g)", msg.Value)
	case CheckboxToggled:
		return fmt.Sprintf("CheckboxToggled(%t)", msg.Checked)
	case TogglerToggled:
		return fmt.Sprintf("TogglerToggled(%t)", msg.On)
	case SecondaryInputChanged:
		return fmt.Sprintf("SecondaryInputChanged(%q)", msg.Value)
	case PreviousTheme:
		return "PreviousTheme"
	case NextTheme:
		return "NextTheme"
	case ButtonPressed:
		return "ButtonPressed"
	case SecondaryButtonPressed:
		return "SecondaryButtonPressed"
	default:
		return fmt.Sprintf("%T", msg)
	}
}
