package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operation(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name  string
		first Operation
		next  Operation
		want  Operation
	}{
		{"write write", OpWrite, OpWrite, OpWrite},
		{"create write", OpCreate, OpWrite, OpCreate},
		{"write remove", OpWrite, OpRemove, OpRemove},
		{"remove create", OpRemove, OpCreate, OpCreate},
		{"rename write", OpRename, OpWrite, OpWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0 := time.Now()
			t1 := t0.Add(time.Second)
			got := coalesce(coalesce(nil, Event{Op: tt.first, Time: t0}), Event{Op: tt.next, Time: t1})
			if got.Op != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got.Op)
			}
			if !got.Time.Equal(t1) {
				t.Error("coalesced event should carry the latest time")
			}
		})
	}
}

func TestConvertOp(t *testing.T) {
	if _, ok := convertOp(fsnotify.Chmod); ok {
		t.Error("chmod should be dropped")
	}
	if op, ok := convertOp(fsnotify.Write); !ok || op != OpWrite {
		t.Errorf("expected write, got %v %v", op, ok)
	}
	if op, _ := convertOp(fsnotify.Create | fsnotify.Write); op != OpCreate {
		t.Errorf("expected create to win over write, got %v", op)
	}
}

func TestWatcherDeliversChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("a = 2\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case ev := <-w.Events():
		if ev.Path != w.Path() {
			t.Errorf("expected path %q, got %q", w.Path(), ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	// The burst is delivered once.
	select {
	case ev := <-w.Events():
		t.Errorf("burst should coalesce, got extra event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("Events should be closed after Close")
	}
	if err := w.Close(); err != ErrClosed {
		t.Errorf("second Close should return ErrClosed, got %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "config.toml")); err == nil {
		t.Error("expected error for missing directory")
	}
}
