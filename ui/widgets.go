package ui

import (
	"slices"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/styling/editor"
	"github.com/yllada/styling/widget"
)

// CSS classes shared with the style sheet.
const (
	classPage     = "styling-page"
	classCard     = "styling-card"
	classPrimary  = "styling-primary"
	classSecond   = "styling-secondary"
	classSuccess  = "styling-success"
	classDanger   = "styling-danger"
	classEditor   = "styling-editor"
	classHint     = "styling-placeholder"
	classProgress = "styling-progress"
)

var buttonClasses = []string{classPrimary, classSecond, classSuccess, classDanger}

func buttonClass(s widget.ButtonStyle) string {
	switch s {
	case widget.ButtonSecondary:
		return classSecond
	case widget.ButtonSuccess:
		return classSuccess
	case widget.ButtonDanger:
		return classDanger
	default:
		return classPrimary
	}
}

// ═══════════════════════════════════════════════════════════════════
// LAYOUT
// ═══════════════════════════════════════════════════════════════════

type columnNode[M any] struct {
	r     *Renderer[M]
	box   *gtk.Box
	clamp *adw.Clamp
	items children[M]
}

func newColumnNode[M any](r *Renderer[M]) *columnNode[M] {
	n := &columnNode[M]{r: r, box: gtk.NewBox(gtk.OrientationVertical, 0)}
	n.items = children[M]{r: r, box: n.box}
	return n
}

func (n *columnNode[M]) widget() gtk.Widgetter {
	if n.clamp != nil {
		return n.clamp
	}
	return n.box
}

func (n *columnNode[M]) update(e widget.Element[M]) bool {
	col, ok := e.(widget.Column[M])
	if !ok {
		return false
	}
	// Wrapping in a clamp changes the outer widget.
	if (col.MaxWidth > 0) != (n.clamp != nil) {
		if n.clamp != nil || n.box.Parent() != nil {
			return false
		}
		n.clamp = adw.NewClamp()
		n.clamp.SetChild(n.box)
	}
	if n.clamp != nil {
		n.clamp.SetMaximumSize(n.r.px(col.MaxWidth))
		n.clamp.SetTighteningThreshold(n.r.px(col.MaxWidth))
	}

	n.box.SetSpacing(n.r.px(col.Spacing))
	n.r.setPadding(n.box, col.Padding)
	n.r.setWidth(n.widget(), col.Width)
	n.items.sync(col.Children)
	return true
}

type rowNode[M any] struct {
	r       *Renderer[M]
	box     *gtk.Box
	centerY bool
	items   children[M]
}

func newRowNode[M any](r *Renderer[M]) *rowNode[M] {
	n := &rowNode[M]{r: r, box: gtk.NewBox(gtk.OrientationHorizontal, 0)}
	n.items = children[M]{r: r, box: n.box, prepare: n.prepare}
	return n
}

func (n *rowNode[M]) widget() gtk.Widgetter { return n.box }

func (n *rowNode[M]) update(e widget.Element[M]) bool {
	row, ok := e.(widget.Row[M])
	if !ok {
		return false
	}
	n.centerY = row.CenterY
	n.box.SetSpacing(n.r.px(row.Spacing))
	n.box.SetHomogeneous(row.Homogeneous)
	n.r.setHeight(n.box, row.Height)
	n.items.sync(row.Children)
	return true
}

// prepare aligns children vertically. Rules and scrollables keep the
// full row height.
func (n *rowNode[M]) prepare(w gtk.Widgetter, e widget.Element[M]) {
	base := gtk.BaseWidget(w)
	switch e.Kind() {
	case widget.KindRule, widget.KindScrollable:
		base.SetVAlign(gtk.AlignFill)
	default:
		if n.centerY {
			base.SetVAlign(gtk.AlignCenter)
		} else {
			base.SetVAlign(gtk.AlignFill)
		}
	}
}

type centerNode[M any] struct {
	r     *Renderer[M]
	box   *gtk.Box
	items children[M]
}

func newCenterNode[M any](r *Renderer[M]) *centerNode[M] {
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	box.SetHExpand(true)
	box.SetVExpand(true)
	box.AddCSSClass(classPage)

	n := &centerNode[M]{r: r, box: box}
	n.items = children[M]{r: r, box: box, prepare: n.prepare}
	return n
}

func (n *centerNode[M]) widget() gtk.Widgetter { return n.box }

func (n *centerNode[M]) update(e widget.Element[M]) bool {
	c, ok := e.(widget.Center[M])
	if !ok {
		return false
	}
	n.items.sync([]widget.Element[M]{c.Content})
	return true
}

func (n *centerNode[M]) prepare(w gtk.Widgetter, e widget.Element[M]) {
	base := gtk.BaseWidget(w)
	base.SetVAlign(gtk.AlignCenter)
	base.SetVExpand(true)
	// A clamp centers its child itself once it has the full width.
	if col, ok := e.(widget.Column[M]); ok && col.MaxWidth > 0 {
		base.SetHAlign(gtk.AlignFill)
		return
	}
	base.SetHAlign(gtk.AlignCenter)
}

type containerNode[M any] struct {
	r     *Renderer[M]
	box   *gtk.Box
	items children[M]
}

func newContainerNode[M any](r *Renderer[M]) *containerNode[M] {
	n := &containerNode[M]{r: r, box: gtk.NewBox(gtk.OrientationVertical, 0)}
	n.items = children[M]{r: r, box: n.box}
	return n
}

func (n *containerNode[M]) widget() gtk.Widgetter { return n.box }

func (n *containerNode[M]) update(e widget.Element[M]) bool {
	c, ok := e.(widget.Container[M])
	if !ok {
		return false
	}
	n.r.setWidth(n.box, c.Width)
	if c.Style == widget.ContainerBordered {
		setClass(n.box, classCard, classCard)
	} else {
		setClass(n.box, "", classCard)
	}

	n.items.sync([]widget.Element[M]{c.Content})
	n.r.setPadding(n.items.nodes[0].widget(), c.Padding)
	return true
}

type scrollableNode[M any] struct {
	r        *Renderer[M]
	scrolled *gtk.ScrolledWindow
	child    node[M]
}

func newScrollableNode[M any](r *Renderer[M]) *scrollableNode[M] {
	scrolled := gtk.NewScrolledWindow()
	scrolled.SetPropagateNaturalHeight(false)
	return &scrollableNode[M]{r: r, scrolled: scrolled}
}

func (n *scrollableNode[M]) widget() gtk.Widgetter { return n.scrolled }

func (n *scrollableNode[M]) update(e widget.Element[M]) bool {
	s, ok := e.(widget.Scrollable[M])
	if !ok {
		return false
	}
	if s.Direction == widget.Horizontal {
		n.scrolled.SetPolicy(gtk.PolicyAutomatic, gtk.PolicyNever)
	} else {
		n.scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	}
	n.r.setWidth(n.scrolled, s.Width)
	n.r.setHeight(n.scrolled, s.Height)
	if s.Height > 0 {
		n.scrolled.SetMinContentHeight(n.r.px(float64(s.Height)))
		n.scrolled.SetMaxContentHeight(n.r.px(float64(s.Height)))
	}

	if n.child == nil || !n.child.update(s.Content) {
		n.child = n.r.mount(s.Content)
		n.scrolled.SetChild(n.child.widget())
	}
	return true
}

// ═══════════════════════════════════════════════════════════════════
// STATIC CONTENT
// ═══════════════════════════════════════════════════════════════════

type textNode[M any] struct {
	r     *Renderer[M]
	label *gtk.Label
	size  string
}

func newTextNode[M any](r *Renderer[M]) *textNode[M] {
	label := gtk.NewLabel("")
	label.SetWrap(true)
	return &textNode[M]{r: r, label: label}
}

func (n *textNode[M]) widget() gtk.Widgetter { return n.label }

func (n *textNode[M]) update(e widget.Element[M]) bool {
	t, ok := e.(widget.Text)
	if !ok {
		return false
	}
	if n.label.Text() != t.Content {
		n.label.SetText(t.Content)
	}

	size := n.r.sizeClass(t.Size)
	setClass(n.label, size, n.size)
	n.size = size

	n.label.SetHExpand(t.Fill)
	if t.Centered {
		n.label.SetXAlign(0.5)
		n.label.SetJustify(gtk.JustifyCenter)
	} else {
		n.label.SetXAlign(0)
		n.label.SetJustify(gtk.JustifyLeft)
	}
	return true
}

type ruleNode[M any] struct {
	r         *Renderer[M]
	axis      widget.Axis
	separator *gtk.Separator
}

func newRuleNode[M any](r *Renderer[M], axis widget.Axis) *ruleNode[M] {
	orientation := gtk.OrientationHorizontal
	if axis == widget.Vertical {
		orientation = gtk.OrientationVertical
	}
	return &ruleNode[M]{r: r, axis: axis, separator: gtk.NewSeparator(orientation)}
}

func (n *ruleNode[M]) widget() gtk.Widgetter { return n.separator }

func (n *ruleNode[M]) update(e widget.Element[M]) bool {
	rule, ok := e.(widget.Rule)
	if !ok || rule.Axis != n.axis {
		return false
	}
	thickness := n.r.px(rule.Thickness)
	if rule.Axis == widget.Vertical {
		n.separator.SetSizeRequest(thickness, -1)
	} else {
		n.separator.SetSizeRequest(-1, thickness)
	}
	return true
}

type spaceNode[M any] struct {
	r   *Renderer[M]
	box *gtk.Box
}

func newSpaceNode[M any](r *Renderer[M]) *spaceNode[M] {
	return &spaceNode[M]{r: r, box: gtk.NewBox(gtk.OrientationVertical, 0)}
}

func (n *spaceNode[M]) widget() gtk.Widgetter { return n.box }

func (n *spaceNode[M]) update(e widget.Element[M]) bool {
	s, ok := e.(widget.Space)
	if !ok {
		return false
	}
	n.r.setWidth(n.box, s.Width)
	n.r.setHeight(n.box, s.Height)
	return true
}

type progressBarNode[M any] struct {
	bar *gtk.ProgressBar
}

func newProgressBarNode[M any](*Renderer[M]) *progressBarNode[M] {
	bar := gtk.NewProgressBar()
	bar.SetHExpand(true)
	bar.AddCSSClass(classProgress)
	return &progressBarNode[M]{bar: bar}
}

func (n *progressBarNode[M]) widget() gtk.Widgetter { return n.bar }

func (n *progressBarNode[M]) update(e widget.Element[M]) bool {
	p, ok := e.(widget.ProgressBar)
	if !ok {
		return false
	}
	if f := p.Fraction(); n.bar.Fraction() != f {
		n.bar.SetFraction(f)
	}
	return true
}

// ═══════════════════════════════════════════════════════════════════
// INTERACTIVE
// ═══════════════════════════════════════════════════════════════════

type pickListNode[M any] struct {
	r        *Renderer[M]
	dropDown *gtk.DropDown
	options  []string
	el       widget.PickList[M]
}

func newPickListNode[M any](r *Renderer[M]) *pickListNode[M] {
	n := &pickListNode[M]{r: r}
	n.dropDown = gtk.NewDropDown(gtk.NewStringList(nil), nil)
	n.dropDown.NotifyProperty("selected", func() {
		if n.el.OnSelect == nil {
			return
		}
		index := -1
		if selected := n.dropDown.Selected(); selected != gtk.INVALID_LIST_POSITION {
			index = int(selected)
		}
		r.send(func() M { return n.el.OnSelect(index) })
	})
	return n
}

func (n *pickListNode[M]) widget() gtk.Widgetter { return n.dropDown }

func (n *pickListNode[M]) update(e widget.Element[M]) bool {
	p, ok := e.(widget.PickList[M])
	if !ok {
		return false
	}
	n.el = p

	if !slices.Equal(n.options, p.Options) {
		n.options = slices.Clone(p.Options)
		n.dropDown.SetModel(gtk.NewStringList(n.options))
	}

	selected := uint(gtk.INVALID_LIST_POSITION)
	if p.Selected >= 0 && p.Selected < len(p.Options) {
		selected = uint(p.Selected)
	}
	if n.dropDown.Selected() != selected {
		n.dropDown.SetSelected(selected)
	}

	n.r.setWidth(n.dropDown, p.Width)
	n.dropDown.SetSensitive(p.OnSelect != nil)
	return true
}

type textInputNode[M any] struct {
	r     *Renderer[M]
	entry *gtk.Entry
	size  string
	el    widget.TextInput[M]
}

func newTextInputNode[M any](r *Renderer[M]) *textInputNode[M] {
	n := &textInputNode[M]{r: r, entry: gtk.NewEntry()}
	n.entry.ConnectChanged(func() {
		if n.el.OnInput == nil {
			return
		}
		value := n.entry.Text()
		r.send(func() M { return n.el.OnInput(value) })
	})
	return n
}

func (n *textInputNode[M]) widget() gtk.Widgetter { return n.entry }

func (n *textInputNode[M]) update(e widget.Element[M]) bool {
	in, ok := e.(widget.TextInput[M])
	if !ok {
		return false
	}
	n.el = in

	if n.entry.Text() != in.Value {
		n.entry.SetText(in.Value)
	}
	n.entry.SetPlaceholderText(in.Placeholder)
	n.entry.SetEditable(in.OnInput != nil)

	size := n.r.sizeClass(in.Size)
	setClass(n.entry, size, n.size)
	n.size = size

	// Entry padding is inner space; the height grows by twice the padding.
	height := -1
	if in.Padding > 0 {
		height = n.r.px(2*in.Padding + lineHeight(in.Size))
	}
	n.entry.SetSizeRequest(widthRequest(gtk.BaseWidget(n.entry)), height)
	n.r.setWidth(n.entry, in.Width)
	return true
}

// lineHeight estimates the height of one line of text of the given size.
func lineHeight(size float64) float64 {
	if size <= 0 {
		size = 16
	}
	return size * 1.3
}

type textEditorNode[M any] struct {
	r           *Renderer[M]
	overlay     *gtk.Overlay
	view        *gtk.TextView
	buffer      *gtk.TextBuffer
	placeholder *gtk.Label
	size        string
	el          widget.TextEditor[M]
}

func newTextEditorNode[M any](r *Renderer[M]) *textEditorNode[M] {
	n := &textEditorNode[M]{r: r}

	n.view = gtk.NewTextView()
	n.view.SetWrapMode(gtk.WrapWordChar)
	n.view.SetHExpand(true)
	n.view.AddCSSClass(classEditor)
	n.buffer = n.view.Buffer()

	n.placeholder = gtk.NewLabel("")
	n.placeholder.SetHAlign(gtk.AlignStart)
	n.placeholder.SetVAlign(gtk.AlignStart)
	n.placeholder.SetCanTarget(false)
	n.placeholder.AddCSSClass(classHint)

	n.overlay = gtk.NewOverlay()
	n.overlay.SetChild(n.view)
	n.overlay.AddOverlay(n.placeholder)

	// The buffer applies the edit itself; the document catches up when
	// the message is handled and the next patch finds nothing to do.
	n.buffer.ConnectInsertText(func(location *gtk.TextIter, text string, _ int) {
		offset := location.Offset()
		n.sendAction(editor.Insert(offset, text))
	})
	n.buffer.ConnectDeleteRange(func(start, end *gtk.TextIter) {
		from, to := start.Offset(), end.Offset()
		n.sendAction(editor.Delete(from, to))
	})
	n.buffer.ConnectChanged(func() {
		n.placeholder.SetVisible(n.buffer.CharCount() == 0)
	})
	n.buffer.NotifyProperty("cursor-position", func() {
		start, end, selected := n.buffer.SelectionBounds()
		if selected {
			n.sendAction(editor.Select(start.Offset(), end.Offset()))
			return
		}
		n.sendAction(editor.Move(start.Offset()))
	})
	return n
}

func (n *textEditorNode[M]) sendAction(act editor.Action) {
	if n.el.OnAction == nil {
		return
	}
	n.r.send(func() M { return n.el.OnAction(act) })
}

func (n *textEditorNode[M]) widget() gtk.Widgetter { return n.overlay }

func (n *textEditorNode[M]) update(e widget.Element[M]) bool {
	ed, ok := e.(widget.TextEditor[M])
	if !ok {
		return false
	}
	n.el = ed

	var want string
	if ed.Content != nil {
		want = ed.Content.Text()
	}
	current := n.buffer.Text(n.buffer.StartIter(), n.buffer.EndIter(), true)
	if current != want {
		start, end, insert := editor.Diff(current, want)
		if start < end {
			n.buffer.Delete(n.buffer.IterAtOffset(start), n.buffer.IterAtOffset(end))
		}
		if insert != "" {
			n.buffer.Insert(n.buffer.IterAtOffset(start), insert)
		}
	}

	n.placeholder.SetText(ed.Placeholder)
	n.placeholder.SetVisible(n.buffer.CharCount() == 0)
	n.view.SetEditable(ed.OnAction != nil)

	size := n.r.sizeClass(ed.Size)
	setClass(n.view, size, n.size)
	setClass(n.placeholder, size, n.size)
	n.size = size

	pad := n.r.px(ed.Padding)
	n.view.SetTopMargin(pad)
	n.view.SetBottomMargin(pad)
	n.view.SetLeftMargin(pad)
	n.view.SetRightMargin(pad)
	n.r.setPadding(n.placeholder, ed.Padding)
	return true
}

type buttonNode[M any] struct {
	r      *Renderer[M]
	button *gtk.Button
	label  *gtk.Label
	el     widget.Button[M]
}

func newButtonNode[M any](r *Renderer[M]) *buttonNode[M] {
	n := &buttonNode[M]{r: r, button: gtk.NewButton(), label: gtk.NewLabel("")}
	n.label.SetHExpand(true)
	n.label.SetJustify(gtk.JustifyCenter)
	n.button.SetChild(n.label)
	n.button.ConnectClicked(func() {
		if n.el.OnPress == nil {
			return
		}
		r.send(n.el.OnPress)
	})
	return n
}

func (n *buttonNode[M]) widget() gtk.Widgetter { return n.button }

func (n *buttonNode[M]) update(e widget.Element[M]) bool {
	b, ok := e.(widget.Button[M])
	if !ok {
		return false
	}
	n.el = b

	if n.label.Text() != b.Label {
		n.label.SetText(b.Label)
	}
	setClass(n.button, buttonClass(b.Style), buttonClasses...)
	n.button.SetSensitive(b.OnPress != nil)
	n.r.setPadding(n.label, b.Padding)
	n.r.setWidth(n.button, b.Width)
	return true
}

type sliderNode[M any] struct {
	r     *Renderer[M]
	scale *gtk.Scale
	el    widget.Slider[M]
}

func newSliderNode[M any](r *Renderer[M], s widget.Slider[M]) *sliderNode[M] {
	step := s.Step
	if step <= 0 {
		step = (s.Max - s.Min) / 100
	}
	n := &sliderNode[M]{r: r}
	n.scale = gtk.NewScaleWithRange(gtk.OrientationHorizontal, s.Min, s.Max, step)
	n.scale.SetDrawValue(false)
	n.scale.SetHExpand(true)
	n.scale.ConnectValueChanged(func() {
		if n.el.OnChange == nil {
			return
		}
		value := n.scale.Value()
		r.send(func() M { return n.el.OnChange(value) })
	})
	return n
}

func (n *sliderNode[M]) widget() gtk.Widgetter { return n.scale }

func (n *sliderNode[M]) update(e widget.Element[M]) bool {
	s, ok := e.(widget.Slider[M])
	if !ok {
		return false
	}
	adj := n.scale.Adjustment()
	if adj.Lower() != s.Min || adj.Upper() != s.Max {
		n.scale.SetRange(s.Min, s.Max)
	}
	n.el = s

	if n.scale.Value() != s.Value {
		n.scale.SetValue(s.Value)
	}
	n.scale.SetSensitive(s.OnChange != nil)
	return true
}

type checkboxNode[M any] struct {
	check *gtk.CheckButton
	el    widget.Checkbox[M]
}

func newCheckboxNode[M any](r *Renderer[M]) *checkboxNode[M] {
	n := &checkboxNode[M]{check: gtk.NewCheckButtonWithLabel("")}
	n.check.ConnectToggled(func() {
		if n.el.OnToggle == nil {
			return
		}
		active := n.check.Active()
		r.send(func() M { return n.el.OnToggle(active) })
	})
	return n
}

func (n *checkboxNode[M]) widget() gtk.Widgetter { return n.check }

func (n *checkboxNode[M]) update(e widget.Element[M]) bool {
	c, ok := e.(widget.Checkbox[M])
	if !ok {
		return false
	}
	n.el = c

	if n.check.Label() != c.Label {
		n.check.SetLabel(c.Label)
	}
	if n.check.Active() != c.Checked {
		n.check.SetActive(c.Checked)
	}
	n.check.SetSensitive(c.OnToggle != nil)
	return true
}

type togglerNode[M any] struct {
	r     *Renderer[M]
	box   *gtk.Box
	label *gtk.Label
	sw    *gtk.Switch
	el    widget.Toggler[M]
}

func newTogglerNode[M any](r *Renderer[M]) *togglerNode[M] {
	n := &togglerNode[M]{
		r:     r,
		box:   gtk.NewBox(gtk.OrientationHorizontal, 0),
		label: gtk.NewLabel(""),
		sw:    gtk.NewSwitch(),
	}
	n.label.SetXAlign(0)
	n.sw.SetVAlign(gtk.AlignCenter)
	n.box.Append(n.label)
	n.box.Append(n.sw)

	n.sw.NotifyProperty("active", func() {
		if n.el.OnToggle == nil {
			return
		}
		active := n.sw.Active()
		r.send(func() M { return n.el.OnToggle(active) })
	})
	return n
}

func (n *togglerNode[M]) widget() gtk.Widgetter { return n.box }

func (n *togglerNode[M]) update(e widget.Element[M]) bool {
	t, ok := e.(widget.Toggler[M])
	if !ok {
		return false
	}
	n.el = t

	if n.label.Text() != t.Label {
		n.label.SetText(t.Label)
	}
	n.label.SetVisible(t.Label != "")
	n.box.SetSpacing(n.r.px(t.Spacing))
	if n.sw.Active() != t.On {
		n.sw.SetActive(t.On)
	}
	n.sw.SetSensitive(t.OnToggle != nil)
	return true
}
