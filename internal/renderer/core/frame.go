// Package core provides the terminal frame buffer shared by the renderer
// and the status line. A Frame accumulates text and control sequences and
// is flushed to the terminal with a single write.
package core

import (
	"bytes"
	"io"
	"strconv"

	"github.com/muesli/termenv"
)

// Control sequences emitted by the renderer.
const (
	ClearScreenSeq    = termenv.CSI + "2J"
	EraseLineRightSeq = termenv.CSI + termenv.EraseLineRightSeq
	EraseLineLeftSeq  = termenv.CSI + termenv.EraseLineLeftSeq
	HideCursorSeq     = termenv.CSI + termenv.HideCursorSeq
	ShowCursorSeq     = termenv.CSI + termenv.ShowCursorSeq
	ResetColorSeq     = termenv.CSI + "m"
)

// Position is a 1-based terminal cell.
type Position struct {
	Row int
	Col int
}

// Frame is a growable output buffer for one atomic terminal update.
type Frame struct {
	buf bytes.Buffer
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Move appends a cursor-position sequence for the 1-based row and column.
func (f *Frame) Move(row, col int) {
	f.buf.WriteString(termenv.CSI)
	f.buf.WriteString(strconv.Itoa(row))
	f.buf.WriteByte(';')
	f.buf.WriteString(strconv.Itoa(col))
	f.buf.WriteByte('H')
}

// MoveTo appends a cursor-position sequence for p.
func (f *Frame) MoveTo(p Position) {
	f.Move(p.Row, p.Col)
}

// ClearScreen appends the clear-screen sequence.
func (f *Frame) ClearScreen() {
	f.buf.WriteString(ClearScreenSeq)
}

// EraseLineRight appends erase-to-end-of-line.
func (f *Frame) EraseLineRight() {
	f.buf.WriteString(EraseLineRightSeq)
}

// EraseLineLeft appends erase-to-start-of-line.
func (f *Frame) EraseLineLeft() {
	f.buf.WriteString(EraseLineLeftSeq)
}

// HideCursor appends the hide-cursor sequence.
func (f *Frame) HideCursor() {
	f.buf.WriteString(HideCursorSeq)
}

// ShowCursor appends the show-cursor sequence.
func (f *Frame) ShowCursor() {
	f.buf.WriteString(ShowCursorSeq)
}

// Foreground appends a 256-color foreground sequence.
func (f *Frame) Foreground(code int) {
	f.buf.WriteString(termenv.CSI)
	f.buf.WriteString(termenv.ANSI256Color(code).Sequence(false))
	f.buf.WriteByte('m')
}

// ResetColor appends the attribute reset sequence.
func (f *Frame) ResetColor() {
	f.buf.WriteString(ResetColorSeq)
}

// Write appends p to the frame. It never fails.
func (f *Frame) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// WriteString appends s to the frame.
func (f *Frame) WriteString(s string) {
	f.buf.WriteString(s)
}

// WriteByte appends b to the frame.
func (f *Frame) WriteByte(b byte) error {
	return f.buf.WriteByte(b)
}

// Bytes returns the accumulated frame.
func (f *Frame) Bytes() []byte {
	return f.buf.Bytes()
}

// Len returns the accumulated length in bytes.
func (f *Frame) Len() int {
	return f.buf.Len()
}

// Reset discards the accumulated frame.
func (f *Frame) Reset() {
	f.buf.Reset()
}

// Flush writes the whole frame with one call to w and resets the frame.
func (f *Frame) Flush(w io.Writer) error {
	if f.buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(f.buf.Bytes())
	f.buf.Reset()
	return err
}
