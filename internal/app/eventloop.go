package app

import (
	"context"
	"errors"
	"io"

	"github.com/dshills/quill/internal/config/watcher"
	"github.com/dshills/quill/internal/input/key"
	"github.com/dshills/quill/internal/renderer/core"
)

// inputBufferSize is the largest chunk read from the terminal at once.
const inputBufferSize = 256

// Run starts the terminal and runs the main loop until the editor quits,
// input ends or ctx is cancelled. Quitting returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Start(); err != nil {
		return NewOperationError("start", "terminal", err)
	}
	defer func() {
		if err := app.backend.Stop(); err != nil {
			app.logger.Error("terminal restore failed", "error", err)
		}
	}()

	resize := make(chan struct{}, 1)
	app.backend.OnResize(func() {
		select {
		case resize <- struct{}{}:
		default:
		}
	})
	defer app.backend.OnResize(nil)

	app.handleResize()
	app.clearScreen()
	defer app.clearScreen()
	app.redraw()

	done := make(chan struct{})
	defer close(done)
	keys := make(chan []key.Event)
	go app.readInput(done, keys)

	var reload <-chan watcher.Event
	if app.watcher != nil {
		reload = app.watcher.Events()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case events, ok := <-keys:
			if !ok {
				return nil
			}
			for _, ev := range events {
				if err := app.editor.HandleKey(ev); err != nil {
					app.logger.Info("quit", "dirty", app.editor.Document().Dirty())
					return err
				}
			}
			app.redraw()

		case <-resize:
			app.handleResize()
			app.redraw()

		case _, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			app.reloadConfig()
			app.redraw()
		}
	}
}

// readInput decodes terminal reads until the backend reports an error or
// done is closed. It closes out when it returns.
func (app *Application) readInput(done <-chan struct{}, out chan<- []key.Event) {
	defer close(out)

	buf := make([]byte, inputBufferSize)
	for {
		n, err := app.backend.Read(buf)
		if n > 0 {
			select {
			case out <- key.Decode(buf[:n]):
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case <-done:
				// reads fail once the terminal is stopped
			default:
				if !errors.Is(err, io.EOF) {
					app.logger.Error("input read failed", "error", err)
				}
			}
			return
		}
		if n == 0 {
			select {
			case <-done:
				return
			default:
			}
		}
	}
}

// handleResize re-queries the terminal size and re-fits the editor.
func (app *Application) handleResize() {
	rows, cols, err := app.backend.Size()
	if err != nil || rows <= 0 || cols <= 0 {
		app.logger.Warn("terminal size unavailable", "error", err)
		rows, cols = defaultRows, defaultCols
	}
	app.logger.Debug("resize", "rows", rows, "cols", cols)
	app.editor.Resize(rows, cols)
}

func (app *Application) redraw() {
	if err := app.editor.Draw(app.backend); err != nil {
		app.logger.Error("draw failed", "error", err)
	}
}

func (app *Application) clearScreen() {
	f := core.NewFrame()
	f.ClearScreen()
	f.Move(1, 1)
	if err := f.Flush(app.backend); err != nil {
		app.logger.Error("clear failed", "error", err)
	}
}
