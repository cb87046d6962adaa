package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/quill/internal/engine/rowstore"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/input/mode"
)

func newTestEditor(lines ...string) *Editor {
	doc := rowstore.NewDocumentFromLines("", lines...)
	return NewEditor(doc, 10, 40, nil, nil)
}

// send decodes raw terminal input and feeds every event to the editor.
// It returns the first error from HandleKey.
func send(t *testing.T, e *Editor, input string) error {
	t.Helper()
	for _, ev := range key.Decode([]byte(input)) {
		if err := e.HandleKey(ev); err != nil {
			return err
		}
	}
	return nil
}

func lines(e *Editor) string {
	return strings.Join(e.Document().Lines(), "|")
}

func TestEditorInsertText(t *testing.T) {
	e := newTestEditor()

	if err := send(t, e, "ihello\x1b"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := lines(e); got != "hello" {
		t.Errorf("lines = %q, want %q", got, "hello")
	}
	if e.Mode() != mode.View {
		t.Errorf("mode = %v, want VIEW", e.Mode())
	}
	if want := (rowstore.Point{Row: 0, Col: 5}); e.Cursor() != want {
		t.Errorf("cursor = %v, want %v", e.Cursor(), want)
	}
	if !e.Document().Dirty() {
		t.Error("document should be dirty after insert")
	}
}

func TestEditorInsertKeys(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		start  rowstore.Point
		input  string
		want   string
		cursor rowstore.Point
	}{
		{"enter splits", []string{"abcd"}, rowstore.Point{Col: 2}, "\r", "ab|cd", rowstore.Point{Row: 1}},
		{"enter at end", []string{"ab"}, rowstore.Point{Col: 2}, "\r", "ab|", rowstore.Point{Row: 1}},
		{"backspace deletes", []string{"abc"}, rowstore.Point{Col: 2}, "\x7f", "ac", rowstore.Point{Col: 1}},
		{"backspace joins", []string{"ab", "cd"}, rowstore.Point{Row: 1}, "\x7f", "abcd", rowstore.Point{Col: 2}},
		{"backspace at origin", []string{"ab"}, rowstore.Point{}, "\x7f", "ab", rowstore.Point{}},
		{"delete under cursor", []string{"abc"}, rowstore.Point{Col: 1}, "\x1b[3~", "ac", rowstore.Point{Col: 1}},
		{"delete joins next", []string{"ab", "cd"}, rowstore.Point{Col: 2}, "\x1b[3~", "abcd", rowstore.Point{Col: 2}},
		{"delete at document end", []string{"ab"}, rowstore.Point{Col: 2}, "\x1b[3~", "ab", rowstore.Point{Col: 2}},
		{"tab", []string{"ab"}, rowstore.Point{Col: 1}, "\t", "a\tb", rowstore.Point{Col: 2}},
		{"insert at bounded column", []string{"abcdef", "ab"}, rowstore.Point{Row: 1, Col: 5}, "x", "abcdef|abx", rowstore.Point{Row: 1, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(tt.lines...)
			e.cursor = tt.start
			e.mode = mode.Insert

			if err := send(t, e, tt.input); err != nil {
				t.Fatalf("send: %v", err)
			}
			if got := lines(e); got != tt.want {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if e.Cursor() != tt.cursor {
				t.Errorf("cursor = %v, want %v", e.Cursor(), tt.cursor)
			}
		})
	}
}

func TestEditorNavigation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rowstore.Point
	}{
		{"down keeps column", "$j", rowstore.Point{Row: 1, Col: 6}},
		{"down twice restores column", "$jj", rowstore.Point{Row: 2, Col: 6}},
		{"right from past end bounds first", "$jl", rowstore.Point{Row: 1, Col: 2}},
		{"left from past end bounds first", "$jh", rowstore.Point{Row: 1, Col: 1}},
		{"up at top", "k", rowstore.Point{}},
		{"down at bottom", "jjjj", rowstore.Point{Row: 2}},
		{"left at start", "h", rowstore.Point{}},
		{"right at end", "$l", rowstore.Point{Col: 6}},
		{"arrow keys", "\x1b[B\x1b[C", rowstore.Point{Row: 1, Col: 1}},
		{"home", "$\x1b[H", rowstore.Point{}},
		{"end", "\x1b[F", rowstore.Point{Col: 6}},
		{"last row", "G", rowstore.Point{Row: 2}},
		{"first row", "G$g", rowstore.Point{}},
		{"zero", "ll0", rowstore.Point{}},
		{"page down clamps", "\x1b[6~", rowstore.Point{Row: 2}},
		{"page up clamps", "G\x1b[5~", rowstore.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor("abcdef", "ab", "abcdef")
			if err := send(t, e, tt.input); err != nil {
				t.Fatalf("send: %v", err)
			}
			if e.Cursor() != tt.want {
				t.Errorf("cursor = %v, want %v", e.Cursor(), tt.want)
			}
			if e.Mode() != mode.View {
				t.Errorf("mode = %v, want VIEW", e.Mode())
			}
		})
	}
}

func TestEditorViewCommands(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		cursor rowstore.Point
		mode   mode.Mode
	}{
		{"x deletes", "lx", "ac|de", rowstore.Point{Col: 1}, mode.View},
		{"x at end is noop", "$x", "abc|de", rowstore.Point{Col: 3}, mode.View},
		{"o opens below", "o", "abc||de", rowstore.Point{Row: 1}, mode.Insert},
		{"o then type", "oxy\x1b", "abc|xy|de", rowstore.Point{Row: 1, Col: 2}, mode.View},
		{"a appends after cursor", "az", "azbc|de", rowstore.Point{Col: 2}, mode.Insert},
		{"a at end", "$az", "abcz|de", rowstore.Point{Col: 4}, mode.Insert},
		{"i inserts before", "li-", "a-bc|de", rowstore.Point{Col: 2}, mode.Insert},
		{"plain keys ignored", "qzZ", "abc|de", rowstore.Point{}, mode.View},
		{"colon opens command", ":", "abc|de", rowstore.Point{}, mode.Command},
		{"slash opens command", "/", "abc|de", rowstore.Point{}, mode.Command},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor("abc", "de")
			if err := send(t, e, tt.input); err != nil {
				t.Fatalf("send: %v", err)
			}
			if got := lines(e); got != tt.want {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if e.Cursor() != tt.cursor {
				t.Errorf("cursor = %v, want %v", e.Cursor(), tt.cursor)
			}
			if e.Mode() != tt.mode {
				t.Errorf("mode = %v, want %v", e.Mode(), tt.mode)
			}
		})
	}
}

func TestEditorCommandLineEditing(t *testing.T) {
	e := newTestEditor("abc")

	send(t, e, ":wq")
	if got := e.cmd.Text(); got != ":wq" {
		t.Fatalf("command = %q, want %q", got, ":wq")
	}

	send(t, e, "\x1b[D\x7f")
	if got := e.cmd.Text(); got != ":q" {
		t.Errorf("after backspace command = %q, want %q", got, ":q")
	}

	send(t, e, "\x1b[H\x1b[3~")
	if got := e.cmd.Text(); got != "q" {
		t.Errorf("after delete command = %q, want %q", got, "q")
	}

	send(t, e, "\x1b")
	if e.Mode() != mode.View {
		t.Errorf("escape: mode = %v, want VIEW", e.Mode())
	}
	if e.cmd.Len() != 0 {
		t.Errorf("escape: command = %q, want empty", e.cmd.Text())
	}
}

func TestEditorBackspaceCancelsEmptyCommand(t *testing.T) {
	e := newTestEditor("abc")

	send(t, e, ":\x7f")
	if e.Mode() != mode.View {
		t.Errorf("mode = %v, want VIEW", e.Mode())
	}

	send(t, e, ":x\x1b[H\x7f")
	if e.Mode() != mode.View {
		t.Errorf("backspace at start: mode = %v, want VIEW", e.Mode())
	}
}

func TestEditorMessageClearedOnKey(t *testing.T) {
	e := newTestEditor("abc")
	e.SetMessage("hello")

	send(t, e, "l")
	if got := e.Message(); got != "" {
		t.Errorf("message = %q, want empty", got)
	}
}

func TestEditorResizeBoundsCursor(t *testing.T) {
	e := newTestEditor("abc", "de")
	e.cursor = rowstore.Point{Row: 1, Col: 9}

	e.Resize(5, 20)

	if want := (rowstore.Point{Row: 1, Col: 2}); e.Cursor() != want {
		t.Errorf("cursor = %v, want %v", e.Cursor(), want)
	}
	if e.Viewport().Rows() != 5 || e.Viewport().Cols() != 20 {
		t.Errorf("viewport = %dx%d, want 5x20", e.Viewport().Rows(), e.Viewport().Cols())
	}
}

func TestEditorScrollsToCursor(t *testing.T) {
	var rows []string
	for i := 0; i < 30; i++ {
		rows = append(rows, "line")
	}
	e := newTestEditor(rows...)

	send(t, e, "G")
	top := e.Viewport().TopRow
	if top == 0 {
		t.Fatalf("TopRow = 0 after moving to the last row")
	}
	if bottom := top + e.Viewport().Height() - 1; bottom != 29 {
		t.Errorf("last visible row = %d, want 29", bottom)
	}

	send(t, e, "g")
	if e.Viewport().TopRow != 0 {
		t.Errorf("TopRow = %d after g, want 0", e.Viewport().TopRow)
	}
}

func TestEditorDraw(t *testing.T) {
	e := newTestEditor("hello")
	var buf bytes.Buffer

	if err := e.Draw(&buf); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"hello", "VIEW", "[No Name]", "1L", "1, 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q: %q", want, out)
		}
	}
}
