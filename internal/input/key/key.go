// Package key decodes raw terminal input into key events.
package key

import "strconv"

// Key identifies what was pressed. Plain bytes and Ctrl chords carry the
// byte itself in Event.Byte.
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyByte is a plain input byte: printable ASCII or part of a UTF-8
	// sequence. The document is byte oriented, so it is inserted as is.
	KeyByte

	// KeyCtrl is Ctrl plus a letter; Event.Byte holds the lower-case letter.
	KeyCtrl
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyByte:      "Byte",
	KeyCtrl:      "Ctrl",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// IsArrowKey reports whether k is one of the four arrow keys.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}
