// Package statusline builds the bottom terminal row: the mode, file and
// cursor summary, or the live command line in COMMAND mode.
package statusline

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/core"
)

// NoName is shown in place of the filename of an unnamed document.
const NoName = "[No Name]"

// width measures status text independent of the locale.
var width = &runewidth.Condition{StrictEmojiNeutral: true}

// StatusLine renders the status row.
type StatusLine struct {
	message string // transient message, cleared by the main loop
	frame   *core.Frame
}

// New creates a status line.
func New() *StatusLine {
	return &StatusLine{frame: core.NewFrame()}
}

// SetMessage displays msg after the file summary until it is cleared.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage removes the current message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
}

// Message returns the current message.
func (s *StatusLine) Message() string {
	return s.message
}

// Summary returns the left-aligned text for non-command modes.
func (s *StatusLine) Summary(st renderer.State) string {
	name := st.Doc.Filename()
	if name == "" {
		name = NoName
	}
	text := fmt.Sprintf("%s%s %dL", st.Mode.Tag(), name, st.Doc.NumRows())
	if st.Doc.Dirty() {
		text += " [+]"
	}
	if s.message != "" {
		text += " | " + s.message
	}
	return text
}

// Coordinates returns the 1-based row and column of the bounded cursor.
func Coordinates(st renderer.State) string {
	p := st.Doc.Bound(st.Cursor)
	return fmt.Sprintf("%d, %d", p.Row+1, p.Col+1)
}

// Render draws the status row and writes it to w in one call, leaving the
// terminal cursor at restore.
func (s *StatusLine) Render(w io.Writer, st renderer.State, restore core.Position) error {
	f := s.frame
	f.Reset()

	rows, cols := st.View.Rows(), st.View.Cols()

	f.HideCursor()
	f.Move(rows, 1)

	if st.Mode == mode.Command {
		if st.Command != nil {
			f.WriteString(st.Command.Text())
		}
		f.EraseLineRight()
	} else {
		coords := Coordinates(st)
		at := cols - len(coords)
		if at < 1 {
			at = 1
		}
		budget := at - 2
		if budget < 0 {
			budget = 0
		}
		f.WriteString(width.Truncate(s.Summary(st), budget, ""))
		f.EraseLineRight()
		f.Move(rows, at)
		f.WriteString(coords)
	}

	f.MoveTo(restore)
	f.ShowCursor()
	return f.Flush(w)
}
