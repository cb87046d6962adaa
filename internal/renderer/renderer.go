package renderer

import (
	"io"

	"github.com/dshills/quill/internal/engine/rowstore"
	"github.com/dshills/quill/internal/input/cmdline"
	"github.com/dshills/quill/internal/input/mode"
	"github.com/dshills/quill/internal/renderer/core"
	"github.com/dshills/quill/internal/renderer/gutter"
	"github.com/dshills/quill/internal/renderer/viewport"
)

// tabGlyph is what a tab byte renders as.
const tabGlyph = "  "

// State is everything one frame is computed from.
type State struct {
	Doc     *rowstore.Document
	View    *viewport.Viewport
	Cursor  rowstore.Point
	Mode    mode.Mode
	Command *cmdline.Buffer
}

// Options configures the renderer.
type Options struct {
	GutterColor     int                   // 256-color index for line numbers
	EmptyLineMarker string                // drawn on rows past the document end
	LineNumbers     gutter.LineNumberMode // absolute, relative or hybrid
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		GutterColor:     gutter.DefaultColor,
		EmptyLineMarker: "~",
		LineNumbers:     gutter.LineNumberAbsolute,
	}
}

// Renderer produces content frames.
type Renderer struct {
	opts  Options
	frame *core.Frame
}

// New creates a renderer.
func New(opts Options) *Renderer {
	if opts.EmptyLineMarker == "" {
		opts.EmptyLineMarker = "~"
	}
	return &Renderer{
		opts:  opts,
		frame: core.NewFrame(),
	}
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetOptions replaces the options; the next Draw uses them.
func (r *Renderer) SetOptions(opts Options) {
	if opts.EmptyLineMarker == "" {
		opts.EmptyLineMarker = r.opts.EmptyLineMarker
	}
	r.opts = opts
}

// Draw renders the content area for s and writes it to w in one call.
// It returns the screen position the terminal cursor was moved to.
func (r *Renderer) Draw(w io.Writer, s State) (core.Position, error) {
	f := r.frame
	f.Reset()

	doc, v := s.Doc, s.View
	height := v.Height()
	wrap := v.WrapWidth()
	cursor := doc.Bound(s.Cursor)

	g := gutter.New(v.Gutter, r.opts.GutterColor, r.opts.LineNumbers)
	g.SetCurrentLine(cursor.Row)
	left := g.Width()

	top := v.TopRow
	if top >= doc.NumRows() {
		top = doc.NumRows() - 1
	}
	if top < 0 {
		top = 0
	}

	f.HideCursor()

	pos := core.Position{Row: 1, Col: left + 1}
	vr := 1
	for row := top; row < doc.NumRows() && vr <= height; row++ {
		text := doc.Row(row).Bytes()
		f.Move(vr, 1)
		g.Render(f, row)

		onCursor := row == cursor.Row
		resolved := false
		if onCursor && len(text) == 0 {
			pos = core.Position{Row: vr, Col: left + 1}
			resolved = true
		}

		lastEnd := 0
		viewport.Walk(text, wrap, func(gl viewport.Glyph) bool {
			if gl.Wrapped {
				if vr+1 > height {
					return false
				}
				f.EraseLineRight()
				vr++
				f.Move(vr, left+1)
				f.EraseLineLeft()
			}
			if onCursor && !resolved && gl.Index == cursor.Col {
				pos = core.Position{Row: vr, Col: left + gl.X + 1}
				resolved = true
			}
			if b := text[gl.Index]; b == '\t' {
				f.WriteString(tabGlyph)
			} else {
				_ = f.WriteByte(b)
			}
			lastEnd = gl.X + gl.Width
			return true
		})
		if onCursor && !resolved {
			pos = core.Position{Row: vr, Col: left + lastEnd + 1}
		}

		f.EraseLineRight()
		vr++
	}

	for ; vr <= height; vr++ {
		f.Move(vr, 1)
		f.WriteString(r.opts.EmptyLineMarker)
		f.EraseLineRight()
	}

	if s.Mode == mode.Command {
		col := 1
		if s.Command != nil {
			col = s.Command.Col() + 1
		}
		pos = core.Position{Row: v.Rows(), Col: col}
	}

	f.MoveTo(pos)
	f.ShowCursor()
	return pos, f.Flush(w)
}
