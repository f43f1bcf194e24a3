package ui

import (
	"fmt"
	"math"
	"sort"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/styling/common"
	"github.com/yllada/styling/widget"
)

// node is an element mounted into GTK widgets.
type node[M any] interface {
	// widget returns the outermost GTK widget of the node.
	widget() gtk.Widgetter
	// update applies e to the mounted widgets. It returns false when e is
	// of another kind and the node has to be mounted again.
	update(e widget.Element[M]) bool
}

// Renderer turns element trees into GTK widgets. The first Render mounts
// the tree; later calls patch the mounted widgets in place and only
// rebuild subtrees whose shape changed.
//
// Signal handlers installed by the renderer forward the message of the
// element currently on screen to the dispatch function. Signals emitted
// while the renderer itself changes a widget are not forwarded.
type Renderer[M any] struct {
	scale    float64
	dispatch func(M)
	patching bool
	root     node[M]
	sizes    map[int]bool
}

// NewRenderer returns a renderer multiplying every logical unit by scale
// and sending user interaction to dispatch.
func NewRenderer[M any](scale float64, dispatch func(M)) *Renderer[M] {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer[M]{
		scale:    scale,
		dispatch: dispatch,
		sizes:    make(map[int]bool),
	}
}

// Render shows e. It returns the root widget and whether it differs from
// the one returned by the previous call.
func (r *Renderer[M]) Render(e widget.Element[M]) (root gtk.Widgetter, replaced bool) {
	r.patching = true
	defer func() { r.patching = false }()

	if r.root != nil && r.root.update(e) {
		return r.root.widget(), false
	}
	r.root = r.mount(e)
	return r.root.widget(), true
}

// TextSizes returns the font sizes used by mounted text, in logical
// units, ascending.
func (r *Renderer[M]) TextSizes() []int {
	sizes := make([]int, 0, len(r.sizes))
	for size := range r.sizes {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

func (r *Renderer[M]) mount(e widget.Element[M]) node[M] {
	var n node[M]
	switch e.(type) {
	case widget.Column[M]:
		n = newColumnNode(r)
	case widget.Row[M]:
		n = newRowNode(r)
	case widget.Center[M]:
		n = newCenterNode(r)
	case widget.Container[M]:
		n = newContainerNode(r)
	case widget.Scrollable[M]:
		n = newScrollableNode(r)
	case widget.Text:
		n = newTextNode(r)
	case widget.Rule:
		n = newRuleNode(r, e.(widget.Rule).Axis)
	case widget.Space:
		n = newSpaceNode(r)
	case widget.PickList[M]:
		n = newPickListNode(r)
	case widget.TextInput[M]:
		n = newTextInputNode(r)
	case widget.TextEditor[M]:
		n = newTextEditorNode(r)
	case widget.Button[M]:
		n = newButtonNode(r)
	case widget.Slider[M]:
		n = newSliderNode(r, e.(widget.Slider[M]))
	case widget.ProgressBar:
		n = newProgressBarNode(r)
	case widget.Checkbox[M]:
		n = newCheckboxNode(r)
	case widget.Toggler[M]:
		n = newTogglerNode(r)
	default:
		panic(fmt.Sprintf("ui: cannot mount %T", e))
	}

	if !n.update(e) {
		panic(fmt.Sprintf("ui: %T rejected its own element", n))
	}
	return n
}

// send forwards the message built by msg unless the renderer is patching.
// A nil msg means the element has no handler.
func (r *Renderer[M]) send(msg func() M) {
	if r.patching || msg == nil {
		return
	}
	r.dispatch(msg())
}

// px converts logical units to pixels.
func (r *Renderer[M]) px(v float64) int {
	return int(math.Round(v * r.scale))
}

// sizeClass registers a font size and returns the CSS class the style
// sheet defines for it. Zero selects the default size.
func (r *Renderer[M]) sizeClass(size float64) string {
	if size <= 0 {
		return ""
	}
	logical := int(math.Round(size))
	if !r.sizes[logical] {
		r.sizes[logical] = true
		common.LogDebug("Text size %d registered", logical)
	}
	return textSizeClass(logical)
}

func textSizeClass(size int) string {
	return fmt.Sprintf("text-size-%d", size)
}

// setPadding sets the same margin on all four sides.
func (r *Renderer[M]) setPadding(w gtk.Widgetter, padding float64) {
	base := gtk.BaseWidget(w)
	px := r.px(padding)
	base.SetMarginTop(px)
	base.SetMarginBottom(px)
	base.SetMarginStart(px)
	base.SetMarginEnd(px)
}

// setWidth applies a Length along the horizontal axis.
func (r *Renderer[M]) setWidth(w gtk.Widgetter, width widget.Length) {
	base := gtk.BaseWidget(w)
	switch {
	case width == widget.Fill:
		base.SetHExpand(true)
		base.SetSizeRequest(-1, heightRequest(base))
	case width > 0:
		base.SetHExpand(false)
		base.SetSizeRequest(r.px(float64(width)), heightRequest(base))
	default:
		base.SetHExpand(false)
		base.SetSizeRequest(-1, heightRequest(base))
	}
}

// setHeight applies a Length along the vertical axis.
func (r *Renderer[M]) setHeight(w gtk.Widgetter, height widget.Length) {
	base := gtk.BaseWidget(w)
	switch {
	case height == widget.Fill:
		base.SetVExpand(true)
		base.SetSizeRequest(widthRequest(base), -1)
	case height > 0:
		base.SetVExpand(false)
		base.SetSizeRequest(widthRequest(base), r.px(float64(height)))
	default:
		base.SetVExpand(false)
		base.SetSizeRequest(widthRequest(base), -1)
	}
}

func widthRequest(w *gtk.Widget) int {
	width, _ := w.SizeRequest()
	return width
}

func heightRequest(w *gtk.Widget) int {
	_, height := w.SizeRequest()
	return height
}

// setClass makes class the only class of w from the given group.
func setClass(w gtk.Widgetter, class string, group ...string) {
	base := gtk.BaseWidget(w)
	for _, c := range group {
		if c != class && base.HasCSSClass(c) {
			base.RemoveCSSClass(c)
		}
	}
	if class != "" && !base.HasCSSClass(class) {
		base.AddCSSClass(class)
	}
}

// children keeps the children of a box in sync with a list of elements.
type children[M any] struct {
	r     *Renderer[M]
	box   *gtk.Box
	nodes []node[M]
	// prepare runs on every child widget after it is mounted or patched.
	prepare func(w gtk.Widgetter, e widget.Element[M])
}

func (c *children[M]) sync(elems []widget.Element[M]) {
	if len(elems) != len(c.nodes) {
		for _, n := range c.nodes {
			c.box.Remove(n.widget())
		}
		c.nodes = c.nodes[:0]
		for _, e := range elems {
			n := c.r.mount(e)
			c.box.Append(n.widget())
			c.nodes = append(c.nodes, n)
		}
	} else {
		for i, e := range elems {
			if c.nodes[i].update(e) {
				continue
			}
			n := c.r.mount(e)
			var prev gtk.Widgetter
			if i > 0 {
				prev = c.nodes[i-1].widget()
			}
			c.box.InsertChildAfter(n.widget(), prev)
			c.box.Remove(c.nodes[i].widget())
			c.nodes[i] = n
		}
	}

	if c.prepare != nil {
		for i, e := range elems {
			c.prepare(c.nodes[i].widget(), e)
		}
	}
}
