package styling

import (
	"github.com/yllada/styling/editor"
	"github.com/yllada/styling/theme"
)

// Slider bounds shared by both sliders and both progress bars.
const (
	SliderMin = 0.0
	SliderMax = 100.0
)

// Model is a snapshot of the page state. It is a value: Update returns a
// new Model and never changes the one it was given. The editor document
// is the exception, it is shared by reference and edited in place.
type Model struct {
	theme     theme.Theme
	input     string
	document  *editor.Content
	slider    float64
	checked   bool
	toggled   bool
	secondary secondaryInput
}

// secondaryInput is the on-screen keyboard test row. Its toggle has no
// visible effect.
type secondaryInput struct {
	value  string
	toggle bool
}

// Theme returns the selected theme.
func (m Model) Theme() theme.Theme { return m.theme }

// InputValue returns the contents of the text input.
func (m Model) InputValue() string { return m.input }

// Editor returns the editor document.
func (m Model) Editor() *editor.Content { return m.document }

// SliderValue returns the slider value, always within [SliderMin, SliderMax].
func (m Model) SliderValue() float64 { return m.slider }

// Checked returns the checkbox state.
func (m Model) Checked() bool { return m.checked }

// Toggled returns the toggler state.
func (m Model) Toggled() bool { return m.toggled }

// SecondaryValue returns the contents of the on-screen keyboard test input.
func (m Model) SecondaryValue() string { return m.secondary.value }

// Equal reports whether two models hold the same state and share the
// same editor document.
func (m Model) Equal(other Model) bool {
	return m == other
}
