// Package widget is the declarative widget tree the view function returns.
//
// Elements are plain values describing what should be on screen and which
// message each interaction produces. The set of element kinds is closed;
// the application composes them but never defines new ones. Renderers
// (the GTK reconciler in package ui, the tree dump in package cli) switch
// over the concrete types.
//
// M is the application's message type. Elements that never produce a
// message (Text, Rule, Space, ProgressBar) are not parameterized and fit
// into a tree of any message type.
package widget

import "github.com/yllada/styling/editor"

// Kind identifies an element variant.
type Kind int

const (
	KindColumn Kind = iota
	KindRow
	KindCenter
	KindContainer
	KindScrollable
	KindText
	KindRule
	KindSpace
	KindPickList
	KindTextInput
	KindTextEditor
	KindButton
	KindSlider
	KindProgressBar
	KindCheckbox
	KindToggler
)

var kindNames = [...]string{
	KindColumn:      "Column",
	KindRow:         "Row",
	KindCenter:      "Center",
	KindContainer:   "Container",
	KindScrollable:  "Scrollable",
	KindText:        "Text",
	KindRule:        "Rule",
	KindSpace:       "Space",
	KindPickList:    "PickList",
	KindTextInput:   "TextInput",
	KindTextEditor:  "TextEditor",
	KindButton:      "Button",
	KindSlider:      "Slider",
	KindProgressBar: "ProgressBar",
	KindCheckbox:    "Checkbox",
	KindToggler:     "Toggler",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Element is a node of the widget tree.
type Element[M any] interface {
	Kind() Kind
}

// Length is a size along one axis, in logical units. Fill takes all
// available space; Shrink (zero) uses the natural size.
type Length float64

const (
	Shrink Length = 0
	Fill   Length = -1
)

// Axis is the direction of a rule or a scrollable.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Column lays out children top to bottom.
type Column[M any] struct {
	Children []Element[M]
	Spacing  float64
	Padding  float64
	MaxWidth float64
	Width    Length
}

func (Column[M]) Kind() Kind { return KindColumn }

// Row lays out children left to right. Homogeneous rows give every child
// the same width.
type Row[M any] struct {
	Children    []Element[M]
	Spacing     float64
	Height      Length
	CenterY     bool
	Homogeneous bool
}

func (Row[M]) Kind() Kind { return KindRow }

// Center centers its content in the available space.
type Center[M any] struct {
	Content Element[M]
}

func (Center[M]) Kind() Kind { return KindCenter }

// ContainerStyle selects the decoration of a Container.
type ContainerStyle int

const (
	ContainerPlain ContainerStyle = iota
	ContainerBordered
)

// Container wraps a single child with padding and an optional border.
type Container[M any] struct {
	Content Element[M]
	Padding float64
	Width   Length
	Style   ContainerStyle
}

func (Container[M]) Kind() Kind { return KindContainer }

// Scrollable clips its content and scrolls it along Direction.
type Scrollable[M any] struct {
	Content   Element[M]
	Direction Axis
	Width     Length
	Height    Length
}

func (Scrollable[M]) Kind() Kind { return KindScrollable }

// Text is a static label.
type Text struct {
	Content  string
	Size     float64
	Fill     bool
	Centered bool
}

func (Text) Kind() Kind { return KindText }

// Rule is a horizontal or vertical divider.
type Rule struct {
	Axis      Axis
	Thickness float64
}

func (Rule) Kind() Kind { return KindRule }

// Space is empty room of a fixed size.
type Space struct {
	Width  Length
	Height Length
}

func (Space) Kind() Kind { return KindSpace }

// PickList is a drop-down of labelled options.
type PickList[M any] struct {
	Options  []string
	Selected int // -1 when nothing is selected
	Width    Length
	OnSelect func(index int) M
}

func (PickList[M]) Kind() Kind { return KindPickList }

// TextInput is a single-line text field.
type TextInput[M any] struct {
	Placeholder string
	Value       string
	Size        float64
	Padding     float64
	Width       Length
	OnInput     func(value string) M
}

func (TextInput[M]) Kind() Kind { return KindTextInput }

// TextEditor is a multi-line editor over a document it does not own.
type TextEditor[M any] struct {
	Content     *editor.Content
	Placeholder string
	Size        float64
	Padding     float64
	OnAction    func(action editor.Action) M
}

func (TextEditor[M]) Kind() Kind { return KindTextEditor }

// ButtonStyle is the semantic color of a button.
type ButtonStyle int

const (
	ButtonPrimary ButtonStyle = iota
	ButtonSecondary
	ButtonSuccess
	ButtonDanger
)

func (s ButtonStyle) String() string {
	switch s {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonSuccess:
		return "success"
	case ButtonDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Button is a clickable label. A nil OnPress disables it.
type Button[M any] struct {
	Label   string
	Style   ButtonStyle
	Padding float64
	Width   Length
	OnPress func() M
}

func (Button[M]) Kind() Kind { return KindButton }

// Slider selects a value in [Min, Max].
type Slider[M any] struct {
	Min, Max float64
	Value    float64
	Step     float64
	OnChange func(value float64) M
}

func (Slider[M]) Kind() Kind { return KindSlider }

// ProgressBar shows Value within [Min, Max].
type ProgressBar struct {
	Min, Max float64
	Value    float64
}

func (ProgressBar) Kind() Kind { return KindProgressBar }

// Fraction returns the filled share of the bar in [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Max <= p.Min {
		return 0
	}
	f := (p.Value - p.Min) / (p.Max - p.Min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Checkbox is a labelled check box.
type Checkbox[M any] struct {
	Label    string
	Checked  bool
	OnToggle func(checked bool) M
}

func (Checkbox[M]) Kind() Kind { return KindCheckbox }

// Toggler is a labelled switch.
type Toggler[M any] struct {
	Label    string
	On       bool
	Spacing  float64
	OnToggle func(on bool) M
}

func (Toggler[M]) Kind() Kind { return KindToggler }
