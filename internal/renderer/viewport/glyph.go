package viewport

// TabWidth is the visual width of a tab glyph.
const TabWidth = 2

// GlyphWidth returns the visual width of a byte: TabWidth for a tab and 1
// for everything else.
func GlyphWidth(b byte) int {
	if b == '\t' {
		return TabWidth
	}
	return 1
}

// VisualLength returns the summed glyph widths of text.
func VisualLength(text []byte) int {
	n := 0
	for _, b := range text {
		n += GlyphWidth(b)
	}
	return n
}

// Glyph describes where one byte of a row lands on screen.
type Glyph struct {
	Index   int  // byte offset in the row
	Line    int  // subline, 0 for the first visual row of the row
	X       int  // column within the subline
	Width   int  // visual width
	Wrapped bool // first glyph of a continuation subline
}

// Walk lays text out under wrap width and calls fn for every glyph in order.
// A glyph of width g starting at column x moves to a new subline when
// x > 0 and x+g > wrap. Walk stops early when fn returns false.
//
// It returns the number of sublines used and the column just past the last
// placed glyph. An empty row occupies one subline.
func Walk(text []byte, wrap int, fn func(g Glyph) bool) (lines, endX int) {
	if wrap < MinWrapWidth {
		wrap = MinWrapWidth
	}
	line, x := 0, 0
	for i, b := range text {
		g := Glyph{Index: i, Width: GlyphWidth(b)}
		if x > 0 && x+g.Width > wrap {
			line++
			x = 0
			g.Wrapped = true
		}
		g.Line, g.X = line, x
		if fn != nil && !fn(g) {
			return line + 1, x
		}
		x += g.Width
	}
	return line + 1, x
}

// VisualHeight returns the number of visual rows text occupies.
// An empty row counts as one.
func VisualHeight(text []byte, wrap int) int {
	lines, _ := Walk(text, wrap, nil)
	return lines
}
