package viewport

import "github.com/dshills/quill/internal/engine/rowstore"

// LargestDisplayedPoint returns the fold: the last point of the document
// that is on screen with the current TopRow. Every point at or before the
// fold (and at or after TopRow) is visible.
//
// If the last row shown only partly fits, the column is the offset of the
// last byte whose glyph starts on a visible subline; otherwise it is the
// row length.
func (v *Viewport) LargestDisplayedPoint(doc *rowstore.Document) rowstore.Point {
	height := v.Height()
	wrap := v.WrapWidth()
	top := v.topRow(doc)

	used := 0
	for r := top; r < doc.NumRows(); r++ {
		text := doc.Row(r).Bytes()
		h := VisualHeight(text, wrap)
		if used+h > height {
			remaining := height - used
			col := 0
			Walk(text, wrap, func(g Glyph) bool {
				if g.Line >= remaining {
					return false
				}
				col = g.Index
				return true
			})
			return rowstore.Point{Row: r, Col: col}
		}
		used += h
		if used == height {
			return rowstore.Point{Row: r, Col: len(text)}
		}
	}
	return doc.End()
}

// AdjustScroll moves TopRow so the bounded cursor is on screen.
// A cursor above the viewport snaps TopRow to the cursor row. Otherwise
// TopRow advances one row at a time until the cursor is at or before the
// fold; it never passes the cursor row itself.
func (v *Viewport) AdjustScroll(doc *rowstore.Document, cursor rowstore.Point) {
	cursor = doc.Bound(cursor)
	v.TopRow = v.topRow(doc)

	if cursor.Row < v.TopRow {
		v.TopRow = cursor.Row
		return
	}
	for v.TopRow < cursor.Row && cursor.After(v.LargestDisplayedPoint(doc)) {
		v.TopRow++
	}
}

// topRow returns TopRow clamped into the document.
func (v *Viewport) topRow(doc *rowstore.Document) int {
	top := v.TopRow
	if top >= doc.NumRows() {
		top = doc.NumRows() - 1
	}
	if top < 0 {
		top = 0
	}
	return top
}
