package app

import (
	"github.com/dshills/quill/internal/engine/rowstore"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
)

// HandleKey applies one key event. It returns ErrQuit once the editor
// has entered QUIT mode.
func (e *Editor) HandleKey(ev key.Event) error {
	e.status.ClearMessage()

	switch e.mode {
	case mode.View:
		e.handleView(ev)
	case mode.Insert:
		e.handleInsert(ev)
	case mode.Command:
		e.handleCommand(ev)
	}

	if e.mode == mode.Quit {
		return ErrQuit
	}
	e.view.AdjustScroll(e.doc, e.cursor)
	return nil
}

// handleMove applies navigation keys shared by VIEW and INSERT.
// It reports whether ev was a navigation key.
func (e *Editor) handleMove(ev key.Event) bool {
	switch ev.Key {
	case key.KeyLeft:
		e.moveLeft()
	case key.KeyRight:
		e.moveRight()
	case key.KeyUp:
		e.moveRows(-1)
	case key.KeyDown:
		e.moveRows(1)
	case key.KeyHome:
		e.cursor.Col = 0
	case key.KeyEnd:
		e.cursor.Col = e.doc.RowLen(e.cursor.Row)
	case key.KeyPageUp:
		e.moveRows(-e.view.Height())
	case key.KeyPageDown:
		e.moveRows(e.view.Height())
	default:
		return false
	}
	return true
}

func (e *Editor) handleView(ev key.Event) {
	if e.handleMove(ev) {
		return
	}
	if ev.IsCtrl('s') {
		e.save("")
		return
	}
	if ev.Key != key.KeyByte {
		return
	}

	switch ev.Byte {
	case 'h':
		e.moveLeft()
	case 'l':
		e.moveRight()
	case 'k':
		e.moveRows(-1)
	case 'j':
		e.moveRows(1)
	case '0':
		e.cursor.Col = 0
	case '$':
		e.cursor.Col = e.doc.RowLen(e.cursor.Row)
	case 'g':
		e.cursor = rowstore.Point{}
	case 'G':
		e.cursor = rowstore.Point{Row: e.doc.NumRows() - 1}
	case 'i':
		e.cursor = e.doc.Bound(e.cursor)
		e.mode = mode.Insert
	case 'a':
		e.cursor = e.doc.Bound(e.cursor)
		if e.cursor.Col < e.doc.RowLen(e.cursor.Row) {
			e.cursor.Col++
		}
		e.mode = mode.Insert
	case 'o':
		row := e.doc.Bound(e.cursor).Row + 1
		if err := e.doc.NewRow(row); err != nil {
			e.logger.Error("open row failed", "row", row, "error", err)
			return
		}
		e.cursor = rowstore.Point{Row: row}
		e.mode = mode.Insert
	case 'x':
		e.cursor = e.doc.Bound(e.cursor)
		e.doc.DeleteChar(e.cursor.Row, e.cursor.Col)
	case ':', '/':
		e.cmd.Start(ev.Byte)
		e.mode = mode.Command
	case 'n':
		e.searchNext(e.search)
	}
}

func (e *Editor) handleInsert(ev key.Event) {
	if e.handleMove(ev) {
		return
	}

	switch ev.Key {
	case key.KeyEscape:
		e.cursor = e.doc.Bound(e.cursor)
		e.mode = mode.View
	case key.KeyByte:
		e.insert(ev.Byte)
	case key.KeyTab:
		e.insert('\t')
	case key.KeyEnter:
		e.splitLine()
	case key.KeyBackspace:
		e.backspace()
	case key.KeyDelete:
		e.deleteForward()
	case key.KeyCtrl:
		if ev.Byte == 's' {
			e.save("")
		}
	}
}

func (e *Editor) handleCommand(ev key.Event) {
	switch ev.Key {
	case key.KeyByte:
		e.cmd.Insert(ev.Byte)
	case key.KeyTab:
		e.cmd.Insert('\t')
	case key.KeyBackspace:
		if !e.cmd.Backspace() || e.cmd.Len() == 0 {
			e.cancelCommand()
		}
	case key.KeyDelete:
		e.cmd.Delete()
	case key.KeyLeft:
		e.cmd.Left()
	case key.KeyRight:
		e.cmd.Right()
	case key.KeyHome:
		e.cmd.Home()
	case key.KeyEnd:
		e.cmd.End()
	case key.KeyEscape:
		e.cancelCommand()
	case key.KeyEnter:
		line := e.cmd.Text()
		e.cancelCommand()
		if err := e.Execute(line); err != nil {
			e.status.SetMessage(err.Error())
		}
	}
}

func (e *Editor) cancelCommand() {
	e.cmd.Reset()
	e.mode = mode.View
}

// moveLeft and moveRight first bound the column so that stepping from a
// column past the row end lands next to the last byte.
func (e *Editor) moveLeft() {
	e.cursor = e.doc.Bound(e.cursor)
	if e.cursor.Col > 0 {
		e.cursor.Col--
	}
}

func (e *Editor) moveRight() {
	e.cursor = e.doc.Bound(e.cursor)
	if e.cursor.Col < e.doc.RowLen(e.cursor.Row) {
		e.cursor.Col++
	}
}

// moveRows moves vertically by n rows, keeping the logical column.
func (e *Editor) moveRows(n int) {
	row := e.cursor.Row + n
	if row < 0 {
		row = 0
	}
	if last := e.doc.NumRows() - 1; row > last {
		row = last
	}
	e.cursor.Row = row
}

func (e *Editor) insert(ch byte) {
	e.cursor = e.doc.Bound(e.cursor)
	if e.doc.InsertChar(e.cursor.Row, e.cursor.Col, ch) {
		e.cursor.Col++
	}
}

func (e *Editor) splitLine() {
	e.cursor = e.doc.Bound(e.cursor)
	if err := e.doc.SplitRow(e.cursor.Row, e.cursor.Col); err != nil {
		e.logger.Error("split failed", "at", e.cursor.String(), "error", err)
		return
	}
	e.cursor = rowstore.Point{Row: e.cursor.Row + 1}
}

func (e *Editor) backspace() {
	e.cursor = e.doc.Bound(e.cursor)
	if e.cursor.Col > 0 {
		if e.doc.DeleteChar(e.cursor.Row, e.cursor.Col-1) {
			e.cursor.Col--
		}
		return
	}
	if e.cursor.Row == 0 {
		return
	}
	prevLen := e.doc.RowLen(e.cursor.Row - 1)
	if err := e.doc.DelCatRow(e.cursor.Row); err != nil {
		e.logger.Error("join failed", "row", e.cursor.Row, "error", err)
		return
	}
	e.cursor = rowstore.Point{Row: e.cursor.Row - 1, Col: prevLen}
}

func (e *Editor) deleteForward() {
	e.cursor = e.doc.Bound(e.cursor)
	if e.cursor.Col < e.doc.RowLen(e.cursor.Row) {
		e.doc.DeleteChar(e.cursor.Row, e.cursor.Col)
		return
	}
	if e.cursor.Row+1 < e.doc.NumRows() {
		if err := e.doc.DelCatRow(e.cursor.Row + 1); err != nil {
			e.logger.Error("join failed", "row", e.cursor.Row+1, "error", err)
		}
	}
}
