package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/quill/internal/engine/rowstore"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer/statusline"
)

// Execute runs a command line. Lines starting with '/' search; lines
// starting with ':' are editor commands:
//
//	:w [path]   write (to path, which becomes the filename)
//	:q          quit, refused with unsaved changes
//	:q!         quit without saving
//	:wq         write and quit
//	:x          write if modified, then quit
//	:<N>        go to row N
//
// Errors are meant for the status line.
func (e *Editor) Execute(line string) error {
	if line == "" {
		return nil
	}

	switch line[0] {
	case '/':
		needle := []byte(line[1:])
		if len(needle) == 0 {
			needle = e.search
		}
		return e.searchNext(needle)
	case ':':
		return e.runCommand(strings.TrimSpace(line[1:]))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, line)
	}
}

func (e *Editor) runCommand(cmd string) error {
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
		return nil
	case "w":
		return e.save(arg)
	case "q":
		if e.doc.Dirty() {
			return fmt.Errorf("%w (add ! to override)", ErrUnsavedChanges)
		}
		e.mode = mode.Quit
	case "q!":
		e.mode = mode.Quit
	case "wq":
		if err := e.save(arg); err != nil {
			return err
		}
		e.mode = mode.Quit
	case "x":
		if e.doc.Dirty() {
			if err := e.save(arg); err != nil {
				return err
			}
		}
		e.mode = mode.Quit
	default:
		n, err := strconv.Atoi(name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}
		e.gotoRow(n)
	}
	return nil
}

// gotoRow moves to the 1-based row n, clamped into the document.
func (e *Editor) gotoRow(n int) {
	row := n - 1
	if row < 0 {
		row = 0
	}
	if last := e.doc.NumRows() - 1; row > last {
		row = last
	}
	e.cursor = rowstore.Point{Row: row}
}

// save writes the document to path, or to its filename when path is empty.
// A failed write to a new path keeps the previous filename.
func (e *Editor) save(path string) error {
	prev := e.doc.Filename()
	if path != "" {
		e.doc.SetFilename(path)
	}
	target := displayName(e.doc.Filename())

	if err := e.doc.Save(); err != nil {
		e.doc.SetFilename(prev)
		opErr := NewOperationError("save", target, err)
		e.logger.Error("save failed", "file", target, "error", err)
		e.status.SetMessage(opErr.Error())
		return opErr
	}

	e.logger.Info("saved", "file", target, "rows", e.doc.NumRows())
	e.status.SetMessage(fmt.Sprintf("%q %dL written", target, e.doc.NumRows()))
	return nil
}

// searchNext moves the cursor to the next match of needle after it.
func (e *Editor) searchNext(needle []byte) error {
	if len(needle) == 0 {
		return nil
	}
	e.search = append(e.search[:0:0], needle...)

	p, ok := e.doc.Search(e.doc.Bound(e.cursor), needle)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrPatternNotFound, needle)
		e.status.SetMessage(err.Error())
		return err
	}
	e.cursor = p
	return nil
}

// displayName is the filename shown in messages.
func displayName(name string) string {
	if name == "" {
		return statusline.NoName
	}
	return name
}
