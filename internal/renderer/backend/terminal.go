//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package backend

import (
	"errors"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNoSize is returned when the terminal size cannot be determined.
var ErrNoSize = errors.New("terminal size unavailable")

// Terminal implements Backend on the controlling tty.
type Terminal struct {
	tty           tcell.Tty
	resizeHandler func()
	mu            sync.Mutex
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, err
	}
	t := &Terminal{tty: tty}
	tty.NotifyResize(t.resized)
	return t, nil
}

func (t *Terminal) Start() error {
	return t.tty.Start()
}

// Stop drains pending output and restores the terminal.
func (t *Terminal) Stop() error {
	_ = t.tty.Drain()
	return t.tty.Stop()
}

// Close stops the terminal and releases the tty.
func (t *Terminal) Close() error {
	return t.tty.Close()
}

func (t *Terminal) Size() (int, int, error) {
	ws, err := t.tty.WindowSize()
	if err == nil && ws.Width > 0 && ws.Height > 0 {
		return ws.Height, ws.Width, nil
	}

	// Fall back to stdout when the tty reports nothing useful.
	cols, rows, serr := term.GetSize(int(os.Stdout.Fd()))
	if serr == nil && cols > 0 && rows > 0 {
		return rows, cols, nil
	}
	if err != nil {
		return 0, 0, err
	}
	return 0, 0, ErrNoSize
}

func (t *Terminal) OnResize(callback func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeHandler = callback
}

func (t *Terminal) resized() {
	t.mu.Lock()
	handler := t.resizeHandler
	t.mu.Unlock()

	if handler != nil {
		handler()
	}
}

func (t *Terminal) Read(p []byte) (int, error) {
	return t.tty.Read(p)
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}

// Ensure Terminal implements Backend.
var _ Backend = (*Terminal)(nil)
