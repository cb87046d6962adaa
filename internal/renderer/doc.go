// Package renderer draws the visible part of a document to the terminal.
//
// Every call to Draw recomputes the whole content frame from the current
// state and emits it with a single write:
//
//	hide cursor
//	for each row from TopRow while screen rows remain:
//	    gutter label, glyphs (wrapping onto sublines), erase to end of line
//	marker on every row past the end of the document
//	move cursor, show cursor
//
// The cursor position is resolved during the same glyph walk that writes
// the row, so the displayed text and the cursor never disagree.
//
// Subpackages:
//   - core: frame buffer and control sequences
//   - viewport: wrap geometry, fold and scrolling
//   - gutter: line number labels
//   - statusline: the bottom status row
//   - backend: terminal access
package renderer
