package styling

// Key is a keyboard key as far as the subscription cares.
type Key int

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	default:
		return "Other"
	}
}

// KeyEvent is a raw key press or release. Repeat is set when the toolkit
// itself flags auto-repeat; toolkits that do not are handled by tracking
// held keys.
type KeyEvent struct {
	Key     Key
	Pressed bool
	Repeat  bool
}

// KeyboardSubscription turns raw key events into theme navigation:
// ArrowUp and ArrowLeft select the previous theme, ArrowDown and
// ArrowRight the next one. Only the initial press of a key counts.
type KeyboardSubscription struct {
	held map[Key]bool
}

// NewKeyboardSubscription returns a subscription with no keys held.
func NewKeyboardSubscription() *KeyboardSubscription {
	return &KeyboardSubscription{held: make(map[Key]bool)}
}

// Handle filters ev. The second result is false when ev maps to no
// message.
func (s *KeyboardSubscription) Handle(ev KeyEvent) (Message, bool) {
	if !ev.Pressed {
		delete(s.held, ev.Key)
		return nil, false
	}
	if ev.Repeat || s.held[ev.Key] {
		return nil, false
	}

	var msg Message
	switch ev.Key {
	case KeyArrowUp, KeyArrowLeft:
		msg = PreviousTheme{}
	case KeyArrowDown, KeyArrowRight:
		msg = NextTheme{}
	default:
		return nil, false
	}
	s.held[ev.Key] = true
	return msg, true
}

// Reset forgets all held keys, e.g. when the window loses focus and
// releases are no longer delivered.
func (s *KeyboardSubscription) Reset() {
	clear(s.held)
}

// Consumes reports whether the subscription claims k, so the toolkit
// should not act on it as well.
func (s *KeyboardSubscription) Consumes(k Key) bool {
	return k != KeyOther
}
