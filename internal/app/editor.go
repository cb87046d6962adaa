package app

import (
	"io"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine/rowstore"
	"github.com/dshills/quill/internal/input/cmdline"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer"
	"github.com/dshills/quill/internal/renderer/statusline"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// Editor is the single-owner editing state: document, viewport, cursor,
// mode and command line. It is only touched by the main loop goroutine.
type Editor struct {
	doc    *rowstore.Document
	view   *viewport.Viewport
	cursor rowstore.Point
	mode   mode.Mode
	cmd    *cmdline.Buffer

	// last search pattern, reused by "n" and an empty "/"
	search []byte

	renderer *renderer.Renderer
	status   *statusline.StatusLine
	logger   *Logger
}

// NewEditor creates an editor for doc on a rows x cols terminal.
func NewEditor(doc *rowstore.Document, rows, cols int, cfg *config.Config, logger *Logger) *Editor {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = NullLogger
	}
	e := &Editor{
		doc:      doc,
		view:     viewport.New(rows, cols, cfg.Editor.GutterWidth),
		mode:     mode.View,
		cmd:      cmdline.New(),
		renderer: renderer.New(rendererOptions(cfg)),
		status:   statusline.New(),
		logger:   logger.WithComponent("editor"),
	}
	return e
}

func rendererOptions(cfg *config.Config) renderer.Options {
	return renderer.Options{
		GutterColor:     cfg.Editor.LineNumberColor,
		EmptyLineMarker: cfg.Editor.EmptyLineMarker,
		LineNumbers:     cfg.LineNumberMode(),
	}
}

// Document returns the edited document.
func (e *Editor) Document() *rowstore.Document {
	return e.doc
}

// Viewport returns the viewport.
func (e *Editor) Viewport() *viewport.Viewport {
	return e.view
}

// Cursor returns the logical cursor. Its column may exceed the row length;
// see Document.Bound.
func (e *Editor) Cursor() rowstore.Point {
	return e.cursor
}

// Mode returns the current mode.
func (e *Editor) Mode() mode.Mode {
	return e.mode
}

// Message returns the status line message.
func (e *Editor) Message() string {
	return e.status.Message()
}

// SetMessage shows msg on the status line until the next key.
func (e *Editor) SetMessage(msg string) {
	e.status.SetMessage(msg)
}

// State returns the snapshot the renderer draws from.
func (e *Editor) State() renderer.State {
	return renderer.State{
		Doc:     e.doc,
		View:    e.view,
		Cursor:  e.cursor,
		Mode:    e.mode,
		Command: e.cmd,
	}
}

// Draw writes the content frame and then the status frame to w.
func (e *Editor) Draw(w io.Writer) error {
	st := e.State()
	pos, err := e.renderer.Draw(w, st)
	if err != nil {
		return err
	}
	return e.status.Render(w, st, pos)
}

// Resize applies new terminal dimensions, clamps the cursor into the
// document and scrolls it into view.
func (e *Editor) Resize(rows, cols int) {
	e.view.Resize(rows, cols)
	e.cursor = e.doc.Bound(e.cursor)
	e.view.AdjustScroll(e.doc, e.cursor)
}

// ApplyConfig re-applies display settings.
func (e *Editor) ApplyConfig(cfg *config.Config) {
	e.view.Gutter = cfg.Editor.GutterWidth
	e.renderer.SetOptions(rendererOptions(cfg))
	e.view.AdjustScroll(e.doc, e.cursor)
}
