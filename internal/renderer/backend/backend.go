// Package backend provides the terminal the editor reads keys from and
// writes frames to.
package backend

import (
	"bytes"
	"io"
	"sync"
)

// Backend is a raw-mode terminal.
type Backend interface {
	io.ReadWriter

	// Start puts the terminal into raw mode.
	// Must be called before any other methods.
	Start() error

	// Stop restores the terminal state saved by Start.
	Stop() error

	// Size returns the current terminal dimensions.
	Size() (rows, cols int, err error)

	// OnResize registers a callback for terminal resize events.
	// The callback may run on any goroutine.
	OnResize(callback func())
}

// NullBackend is an in-memory backend for testing.
// Reads return the scripted input chunks in order, then io.EOF.
type NullBackend struct {
	mu            sync.Mutex
	rows, cols    int
	input         [][]byte
	writes        [][]byte
	started       bool
	resizeHandler func()
}

// NewNullBackend creates a null backend with the given dimensions and
// scripted input.
func NewNullBackend(rows, cols int, input ...string) *NullBackend {
	b := &NullBackend{rows: rows, cols: cols}
	for _, chunk := range input {
		b.input = append(b.input, []byte(chunk))
	}
	return b
}

func (b *NullBackend) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = true
	return nil
}

func (b *NullBackend) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = false
	return nil
}

// Started reports whether the backend is between Start and Stop.
func (b *NullBackend) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

func (b *NullBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows, b.cols, nil
}

func (b *NullBackend) OnResize(callback func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resizeHandler = callback
}

// Read returns the next scripted chunk. A chunk larger than p is split
// across calls.
func (b *NullBackend) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.input) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.input[0])
	if n < len(b.input[0]) {
		b.input[0] = b.input[0][n:]
	} else {
		b.input = b.input[1:]
	}
	return n, nil
}

// Write records p as one write.
func (b *NullBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes = append(b.writes, bytes.Clone(p))
	return len(p), nil
}

// Writes returns every recorded write.
func (b *NullBackend) Writes() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.writes...)
}

// Output returns all recorded writes concatenated.
func (b *NullBackend) Output() string {
	return string(bytes.Join(b.Writes(), nil))
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(rows, cols int) {
	b.mu.Lock()
	b.rows = rows
	b.cols = cols
	handler := b.resizeHandler
	b.mu.Unlock()

	if handler != nil {
		handler()
	}
}
