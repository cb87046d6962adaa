package key

import "fmt"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Byte is the input byte for KeyByte and the letter for KeyCtrl.
	Byte byte
}

// ByteEvent creates an event for a plain input byte.
func ByteEvent(b byte) Event {
	return Event{Key: KeyByte, Byte: b}
}

// CtrlEvent creates an event for Ctrl plus a lower-case letter.
func CtrlEvent(letter byte) Event {
	return Event{Key: KeyCtrl, Byte: letter}
}

// SpecialEvent creates an event for a special key.
func SpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsByte reports whether the event is the plain byte b.
func (e Event) IsByte(b byte) bool {
	return e.Key == KeyByte && e.Byte == b
}

// IsCtrl reports whether the event is Ctrl plus letter.
func (e Event) IsCtrl(letter byte) bool {
	return e.Key == KeyCtrl && e.Byte == letter
}

// String returns a canonical string representation.
func (e Event) String() string {
	switch e.Key {
	case KeyByte:
		return fmt.Sprintf("%q", e.Byte)
	case KeyCtrl:
		return "C-" + string(e.Byte)
	default:
		return "<" + e.Key.String() + ">"
	}
}
