// Package cmdline holds the editable command line shown on the status row.
package cmdline

import "github.com/dshills/quill/internal/engine/rowstore"

// Buffer is a single editable row plus its cursor column.
type Buffer struct {
	row rowstore.Row
	col int
}

// New creates an empty command buffer.
func New() *Buffer {
	return &Buffer{}
}

// Start clears the buffer and seeds it with prefix (":" or "/").
func (b *Buffer) Start(prefix byte) {
	b.row.Reset()
	b.col = 0
	b.Insert(prefix)
}

// Reset clears the buffer.
func (b *Buffer) Reset() {
	b.row.Reset()
	b.col = 0
}

// Insert adds ch at the cursor and advances it.
func (b *Buffer) Insert(ch byte) {
	if b.row.Insert(b.col, ch) {
		b.col++
	}
}

// Backspace removes the byte before the cursor.
// It returns false if the cursor is at the start.
func (b *Buffer) Backspace() bool {
	if b.col == 0 || !b.row.Delete(b.col-1) {
		return false
	}
	b.col--
	return true
}

// Delete removes the byte under the cursor.
func (b *Buffer) Delete() bool {
	return b.row.Delete(b.col)
}

// Left moves the cursor one byte left.
func (b *Buffer) Left() {
	if b.col > 0 {
		b.col--
	}
}

// Right moves the cursor one byte right.
func (b *Buffer) Right() {
	if b.col < b.row.Len() {
		b.col++
	}
}

// Home moves the cursor to the start.
func (b *Buffer) Home() {
	b.col = 0
}

// End moves the cursor past the last byte.
func (b *Buffer) End() {
	b.col = b.row.Len()
}

// Row returns the command text as a row. Callers must not mutate it.
func (b *Buffer) Row() *rowstore.Row {
	return &b.row
}

// Text returns the command text.
func (b *Buffer) Text() string {
	return b.row.String()
}

// Len returns the command length in bytes.
func (b *Buffer) Len() int {
	return b.row.Len()
}

// Col returns the 0-based cursor column.
func (b *Buffer) Col() int {
	return b.col
}
