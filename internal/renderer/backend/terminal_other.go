//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package backend

import "errors"

// ErrNoSize is returned when the terminal size cannot be determined.
var ErrNoSize = errors.New("terminal size unavailable")

// ErrUnsupported is returned on platforms without a controlling tty.
var ErrUnsupported = errors.New("terminal backend not supported on this platform")

// Terminal is unavailable on this platform.
type Terminal struct{}

// NewTerminal always fails on this platform.
func NewTerminal() (*Terminal, error) {
	return nil, ErrUnsupported
}

func (t *Terminal) Start() error                { return ErrUnsupported }
func (t *Terminal) Stop() error                 { return nil }
func (t *Terminal) Close() error                { return nil }
func (t *Terminal) Size() (int, int, error)     { return 0, 0, ErrNoSize }
func (t *Terminal) OnResize(callback func())    {}
func (t *Terminal) Read(p []byte) (int, error)  { return 0, ErrUnsupported }
func (t *Terminal) Write(p []byte) (int, error) { return 0, ErrUnsupported }
