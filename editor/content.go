// Package editor provides the document behind the multi-line text editor.
//
// A Content is the one piece of application state that is mutated in place:
// the editor widget reports every gesture as an Action and the owner applies
// it with Perform. Everything else about the document is opaque.
package editor

import "strings"

// Content is a plain-text document with a cursor and an optional selection.
type Content struct {
	text      []rune
	cursor    int
	anchor    int
	revision  uint64
	lineCache []string
}

// New returns a document holding text, cursor at the end.
func New(text string) *Content {
	c := &Content{text: []rune(text)}
	c.cursor = len(c.text)
	c.anchor = c.cursor
	return c
}

// Perform applies a to the document. Offsets outside the document are
// clamped and reversed ranges are normalized. A nil document ignores a.
func (c *Content) Perform(a Action) {
	if c == nil {
		return
	}
	start, end := c.span(a.Start, a.End)

	switch a.Kind {
	case ActionMove:
		c.cursor, c.anchor = start, start
	case ActionSelect:
		c.anchor, c.cursor = start, end
	case ActionInsert:
		if a.Text == "" {
			return
		}
		ins := []rune(a.Text)
		text := make([]rune, 0, len(c.text)+len(ins))
		text = append(text, c.text[:start]...)
		text = append(text, ins...)
		text = append(text, c.text[start:]...)
		c.text = text
		c.cursor = start + len(ins)
		c.anchor = c.cursor
		c.changed()
	case ActionDelete:
		if start == end {
			return
		}
		c.text = append(c.text[:start:start], c.text[end:]...)
		c.cursor, c.anchor = start, start
		c.changed()
	}
}

func (c *Content) span(a, b int) (int, int) {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > len(c.text) {
			return len(c.text)
		}
		return v
	}
	a, b = clamp(a), clamp(b)
	if b < a {
		a, b = b, a
	}
	return a, b
}

func (c *Content) changed() {
	c.revision++
	c.lineCache = nil
}

// Text returns the whole document. A nil document is empty.
func (c *Content) Text() string {
	if c == nil {
		return ""
	}
	return string(c.text)
}

// Len returns the document length in characters.
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.text)
}

// IsEmpty reports whether the document has no text.
func (c *Content) IsEmpty() bool {
	return c.Len() == 0
}

// Cursor returns the cursor offset.
func (c *Content) Cursor() int {
	return c.cursor
}

// Selection returns the selected text, empty when nothing is selected.
func (c *Content) Selection() string {
	start, end := c.span(c.anchor, c.cursor)
	return string(c.text[start:end])
}

// Revision increases with every edit, so a renderer can skip unchanged
// documents without comparing text.
func (c *Content) Revision() uint64 {
	return c.revision
}

// Lines returns the document split at newlines. An empty document has
// one empty line.
func (c *Content) Lines() []string {
	if c.lineCache == nil {
		c.lineCache = strings.Split(string(c.text), "\n")
	}
	return append([]string(nil), c.lineCache...)
}

// Diff returns the single replacement turning from into to: the rune
// range [start, end) of from is replaced by insert. Both strings sharing
// a prefix and suffix keeps the replacement minimal.
func Diff(from, to string) (start, end int, insert string) {
	a, b := []rune(from), []rune(to)

	for start < len(a) && start < len(b) && a[start] == b[start] {
		start++
	}
	endA, endB := len(a), len(b)
	for endA > start && endB > start && a[endA-1] == b[endB-1] {
		endA--
		endB--
	}
	return start, endA, string(b[start:endB])
}
