// Package viewport maps logical document positions onto wrapped screen rows.
//
// All geometry derives from one forward glyph walk (Walk), shared by the
// visual height computation, the fold computation and the renderer, so the
// displayed content and the computed cursor placement cannot disagree.
package viewport

// MinWrapWidth is the narrowest wrap width; a wide glyph always fits on
// an otherwise empty subline.
const MinWrapWidth = 2

// Viewport is the visible window of a document.
// The bottom terminal row is reserved for the status line.
type Viewport struct {
	// TopRow is the first document row shown.
	TopRow int

	// Gutter is the fixed width of the line number column.
	Gutter int

	rows int
	cols int
}

// New creates a viewport for a terminal of the given size.
func New(rows, cols, gutter int) *Viewport {
	v := &Viewport{Gutter: gutter}
	v.Resize(rows, cols)
	return v
}

// Resize updates the terminal dimensions.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v.rows = rows
	v.cols = cols
}

// Rows returns the terminal height.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the terminal width.
func (v *Viewport) Cols() int {
	return v.cols
}

// Height returns the number of visual rows available for content.
func (v *Viewport) Height() int {
	if v.rows <= 1 {
		return 1
	}
	return v.rows - 1
}

// WrapWidth returns the number of glyph columns per subline. One column at
// the right edge stays free for a cursor sitting past a full subline.
func (v *Viewport) WrapWidth() int {
	w := v.cols - v.Gutter - 1
	if w < MinWrapWidth {
		return MinWrapWidth
	}
	return w
}

// StatusRow returns the 1-based terminal row of the status line.
func (v *Viewport) StatusRow() int {
	return v.rows
}
