package editor

import "fmt"

// ActionKind tells which edit an Action describes.
type ActionKind int

const (
	// ActionMove places the cursor at Start.
	ActionMove ActionKind = iota
	// ActionSelect selects the range [Start, End).
	ActionSelect
	// ActionInsert inserts Text at Start.
	ActionInsert
	// ActionDelete removes the range [Start, End).
	ActionDelete
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionSelect:
		return "select"
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is an editing gesture reported by the editor widget.
// Offsets count characters (runes), not bytes.
type Action struct {
	Kind  ActionKind
	Start int
	End   int
	Text  string
}

// Move returns an action placing the cursor at offset.
func Move(offset int) Action {
	return Action{Kind: ActionMove, Start: offset, End: offset}
}

// Select returns an action selecting [start, end).
func Select(start, end int) Action {
	return Action{Kind: ActionSelect, Start: start, End: end}
}

// Insert returns an action inserting text at offset.
func Insert(offset int, text string) Action {
	return Action{Kind: ActionInsert, Start: offset, End: offset, Text: text}
}

// Delete returns an action removing [start, end).
func Delete(start, end int) Action {
	return Action{Kind: ActionDelete, Start: start, End: end}
}

// IsEdit reports whether the action changes the text.
func (a Action) IsEdit() bool {
	return a.Kind == ActionInsert || a.Kind == ActionDelete
}

func (a Action) String() string {
	switch a.Kind {
	case ActionInsert:
		return fmt.Sprintf("insert %q at %d", a.Text, a.Start)
	case ActionMove:
		return fmt.Sprintf("move to %d", a.Start)
	default:
		return fmt.Sprintf("%s [%d, %d)", a.Kind, a.Start, a.End)
	}
}
