// Package gutter draws the fixed-width line number column to the left of
// the document content.
package gutter

import "github.com/dshills/quill/internal/renderer/core"

// DefaultColor is the 256-color palette index used for line numbers.
const DefaultColor = 240

// Gutter renders line number labels into a frame.
type Gutter struct {
	width   int
	color   int
	mode    LineNumberMode
	current int
}

// New creates a gutter of the given width. A width of zero disables it.
func New(width, color int, mode LineNumberMode) *Gutter {
	if width < 0 {
		width = 0
	}
	return &Gutter{width: width, color: color, mode: mode}
}

// Width returns the number of columns the gutter occupies.
func (g *Gutter) Width() int {
	return g.width
}

// SetCurrentLine sets the cursor row for relative numbering.
func (g *Gutter) SetCurrentLine(row int) {
	g.current = row
}

// Render appends the colored label for document row to f.
// The label is exactly Width() bytes: the number right-justified in
// Width()-1 columns plus one separating space.
func (g *Gutter) Render(f *core.Frame, row int) {
	if g.width == 0 {
		return
	}
	f.Foreground(g.color)
	f.WriteString(Label(g.mode.Number(row, g.current), g.width-1))
	_ = f.WriteByte(' ')
	f.ResetColor()
}
