package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/quill/internal/renderer/backend"
)

func newTestApp(t *testing.T, files ...string) *Application {
	t.Helper()
	app, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		Files:      files,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app
}

func TestNewDefaults(t *testing.T) {
	app := newTestApp(t)

	if app.Editor() == nil {
		t.Fatal("Editor() = nil")
	}
	if got := app.Editor().Document().NumRows(); got != 1 {
		t.Errorf("NumRows = %d, want 1", got)
	}
	if app.Config().Editor.GutterWidth != 5 {
		t.Errorf("GutterWidth = %d, want 5", app.Config().Editor.GutterWidth)
	}
	if app.Session() == "" {
		t.Error("Session() is empty")
	}
	if app.IsRunning() {
		t.Error("IsRunning() before Run")
	}
}

func TestNewLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, path)
	doc := app.Editor().Document()
	if doc.Filename() != path {
		t.Errorf("Filename = %q, want %q", doc.Filename(), path)
	}
	if got := strings.Join(doc.Lines(), "|"); got != "one|two" {
		t.Errorf("lines = %q, want %q", got, "one|two")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\ngutter_width = 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(Options{ConfigPath: path})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "config" {
		t.Fatalf("error = %v, want config InitError", err)
	}
}

func TestNewFlagOverrides(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quill.log")
	app, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		LogLevel:   "debug",
		LogFile:    logPath,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.Config().Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", app.Config().Log.Level)
	}
	if !app.Logger().Enabled(LogLevelDebug) {
		t.Error("debug logging not enabled")
	}
	app.Shutdown()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "session="+app.Session()) {
		t.Errorf("log missing session attribute:\n%s", data)
	}
}

func TestNewInvalidLogLevelFlag(t *testing.T) {
	_, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
		LogLevel:   "loud",
	})
	if err == nil {
		t.Fatal("New accepted log level \"loud\"")
	}
}

func TestRunWithoutBackend(t *testing.T) {
	app := newTestApp(t)

	if err := app.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run error = %v, want ErrNoBackend", err)
	}
}

func TestRunQuit(t *testing.T) {
	app := newTestApp(t)
	b := backend.NewNullBackend(6, 30, ":q\r")
	if err := app.SetBackend(b); err != nil {
		t.Fatal(err)
	}

	err := app.Run(context.Background())
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run error = %v, want ErrQuit", err)
	}
	if b.Started() {
		t.Error("backend not stopped after Run")
	}
	if app.IsRunning() {
		t.Error("IsRunning() after Run returned")
	}
	if !strings.Contains(b.Output(), "VIEW") {
		t.Errorf("no status line drawn: %q", b.Output())
	}
	if vp := app.Editor().Viewport(); vp.Rows() != 6 || vp.Cols() != 30 {
		t.Errorf("viewport = %dx%d, want 6x30", vp.Rows(), vp.Cols())
	}
}

func TestRunInputEOF(t *testing.T) {
	app := newTestApp(t)
	b := backend.NewNullBackend(6, 30, "ihi", "\x1b")
	app.SetBackend(b)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v, want nil on end of input", err)
	}
	if got := app.Editor().Document().Lines(); len(got) != 1 || got[0] != "hi" {
		t.Errorf("lines = %q, want [hi]", got)
	}
}

func TestRunDirtyQuitRefused(t *testing.T) {
	app := newTestApp(t)
	b := backend.NewNullBackend(6, 120, "ix\x1b", ":q\r")
	app.SetBackend(b)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v, want nil (quit refused, then end of input)", err)
	}
	if !strings.Contains(b.Output(), "unsaved changes") {
		t.Error("refusal message not drawn")
	}
}

// blockingBackend reads nothing until it is stopped.
type blockingBackend struct {
	*backend.NullBackend
	once    sync.Once
	stopped chan struct{}
}

func newBlockingBackend() *blockingBackend {
	return &blockingBackend{
		NullBackend: backend.NewNullBackend(6, 30),
		stopped:     make(chan struct{}),
	}
}

func (b *blockingBackend) Read(p []byte) (int, error) {
	<-b.stopped
	return b.NullBackend.Read(p)
}

func (b *blockingBackend) Stop() error {
	b.once.Do(func() { close(b.stopped) })
	return b.NullBackend.Stop()
}

func TestRunContextCancel(t *testing.T) {
	app := newTestApp(t)
	b := newBlockingBackend()
	app.SetBackend(b)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()

	deadline := time.Now().Add(time.Second)
	for !app.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := app.SetBackend(b); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend while running = %v, want ErrAlreadyRunning", err)
	}
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestHandleResize(t *testing.T) {
	app := newTestApp(t)
	b := backend.NewNullBackend(6, 30)
	app.SetBackend(b)

	b.Resize(12, 50)
	app.handleResize()

	vp := app.Editor().Viewport()
	if vp.Rows() != 12 || vp.Cols() != 50 {
		t.Errorf("viewport = %dx%d, want 12x50", vp.Rows(), vp.Cols())
	}
}

func TestReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	app, err := New(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Shutdown()

	if err := os.WriteFile(path, []byte("[editor]\ngutter_width = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app.reloadConfig()
	if got := app.Editor().Viewport().Gutter; got != 0 {
		t.Errorf("Gutter = %d after reload, want 0", got)
	}

	if err := os.WriteFile(path, []byte("[editor]\ngutter_width = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app.reloadConfig()
	if got := app.Editor().Viewport().Gutter; got != 0 {
		t.Errorf("invalid reload changed Gutter to %d", got)
	}
	if msg := app.Editor().Message(); !strings.HasPrefix(msg, "config: ") {
		t.Errorf("message = %q, want config error", msg)
	}
}

func TestWatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	app, err := New(Options{ConfigPath: path, WatchConfig: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.watcher == nil {
		t.Fatal("watcher not started")
	}

	app.Shutdown()
	app.Shutdown()
}
