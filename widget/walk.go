package widget

import (
	"fmt"
	"strconv"
	"strings"
)

// Children returns the direct children of e, nil for leaves.
func Children[M any](e Element[M]) []Element[M] {
	switch e := e.(type) {
	case Column[M]:
		return e.Children
	case Row[M]:
		return e.Children
	case Center[M]:
		return []Element[M]{e.Content}
	case Container[M]:
		return []Element[M]{e.Content}
	case Scrollable[M]:
		return []Element[M]{e.Content}
	default:
		return nil
	}
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the children of that element.
func Walk[M any](e Element[M], fn func(Element[M]) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children[M](e) {
		Walk[M](child, fn)
	}
}

// Collect returns every element of the tree with the given kind, in
// depth-first order.
func Collect[M any](e Element[M], kind Kind) []Element[M] {
	var found []Element[M]
	Walk[M](e, func(el Element[M]) bool {
		if el.Kind() == kind {
			found = append(found, el)
		}
		return true
	})
	return found
}

// Describe returns a one-line summary of e without its children.
func Describe[M any](e Element[M]) string {
	switch e := e.(type) {
	case Column[M]:
		return fmt.Sprintf("Column spacing=%s padding=%s%s", num(e.Spacing), num(e.Padding), maxWidth(e.MaxWidth))
	case Row[M]:
		return fmt.Sprintf("Row spacing=%s%s", num(e.Spacing), length("height", e.Height))
	case Center[M]:
		return "Center"
	case Container[M]:
		if e.Style == ContainerBordered {
			return fmt.Sprintf("Container bordered padding=%s", num(e.Padding))
		}
		return fmt.Sprintf("Container padding=%s", num(e.Padding))
	case Scrollable[M]:
		return "Scrollable" + length(" height", e.Height)
	case Text:
		if e.Size > 0 {
			return fmt.Sprintf("Text %q size=%s", e.Content, num(e.Size))
		}
		return fmt.Sprintf("Text %q", e.Content)
	case Rule:
		dir := "horizontal"
		if e.Axis == Vertical {
			dir = "vertical"
		}
		return fmt.Sprintf("Rule %s thickness=%s", dir, num(e.Thickness))
	case Space:
		return "Space" + length(" width", e.Width) + length(" height", e.Height)
	case PickList[M]:
		selected := "none"
		if e.Selected >= 0 && e.Selected < len(e.Options) {
			selected = strconv.Quote(e.Options[e.Selected])
		}
		return fmt.Sprintf("PickList %d options, selected %s", len(e.Options), selected)
	case TextInput[M]:
		return fmt.Sprintf("TextInput %q placeholder=%q", e.Value, e.Placeholder)
	case TextEditor[M]:
		chars := 0
		if e.Content != nil {
			chars = e.Content.Len()
		}
		return fmt.Sprintf("TextEditor %d chars placeholder=%q", chars, e.Placeholder)
	case Button[M]:
		state := ""
		if e.OnPress == nil {
			state = " disabled"
		}
		return fmt.Sprintf("Button %q %s%s", e.Label, e.Style, state)
	case Slider[M]:
		return fmt.Sprintf("Slider [%s, %s] = %s", num(e.Min), num(e.Max), num(e.Value))
	case ProgressBar:
		return fmt.Sprintf("ProgressBar [%s, %s] = %s", num(e.Min), num(e.Max), num(e.Value))
	case Checkbox[M]:
		return fmt.Sprintf("Checkbox %q %s", e.Label, onOff(e.Checked))
	case Toggler[M]:
		return fmt.Sprintf("Toggler %q %s", e.Label, onOff(e.On))
	case nil:
		return "<nil>"
	default:
		return e.Kind().String()
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxWidth(v float64) string {
	if v <= 0 {
		return ""
	}
	return " max-width=" + num(v)
}

func length(name string, l Length) string {
	switch {
	case l == Fill:
		return " " + strings.TrimSpace(name) + "=fill"
	case l > 0:
		return " " + strings.TrimSpace(name) + "=" + num(float64(l))
	default:
		return ""
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
