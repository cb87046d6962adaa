// Package mode defines the editor modes.
//
// Mode is owned by the main loop; the renderer and status line only read
// it to decide what to draw.
package mode

// Mode is the current input mode of the editor.
type Mode uint8

const (
	// View is the navigation mode.
	View Mode = iota

	// Insert edits the document at the cursor.
	Insert

	// Command edits and runs a command line.
	Command

	// Quit ends the main loop.
	Quit
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case View:
		return "VIEW"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	case Quit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the status line prefix for the mode, or "" if the mode has none.
func (m Mode) Tag() string {
	switch m {
	case View:
		return "VIEW — "
	case Insert:
		return "INSERT — "
	default:
		return ""
	}
}
