// Package rowstore provides the row-oriented document model for the editor.
//
// A Document is an ordered, contiguous sequence of Rows. Every Row owns its
// bytes exclusively; viewports and cursors refer to rows by index and to
// bytes by offset, never by holding copies of row content.
//
// The package provides:
//
//   - Byte-level row mutation (InsertChar, DeleteChar)
//   - Structural mutation (NewRow, DeleteRow, SplitRow, DelCatRow)
//   - A total order over Points used for cursor and fold comparisons
//   - Loading and saving newline-delimited text
//   - Forward, wrapping substring search
//
// Basic usage:
//
//	doc := rowstore.NewDocument("notes.txt")
//	doc.InsertChar(0, 0, 'h')
//	doc.InsertChar(0, 1, 'i')
//	_ = doc.SplitRow(0, 1) // rows: "h", "i"
//	_ = doc.DelCatRow(1)   // rows: "hi"
//
// A Document always holds at least one row. Character operations report
// failure with a false result and never partially mutate; structural
// operations return ErrRowOutOfRange or ErrPosOutOfRange on bad input.
//
// Documents are not safe for concurrent use. The editor touches them from
// a single goroutine.
package rowstore
