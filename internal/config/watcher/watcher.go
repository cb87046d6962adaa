// Package watcher reports changes to the configuration file for live
// reload.
//
// The containing directory is watched so that editors which save by
// writing a temporary file and renaming it over the original are seen.
// Bursts of events for the file are coalesced into one.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by operations on a closed watcher.
var ErrClosed = errors.New("watcher closed")

// Event is one coalesced change to the watched file.
type Event struct {
	Path string    // absolute path of the file
	Op   Operation // net effect of the coalesced changes
	Time time.Time // time of the last change
}

// Operation is the kind of change.
type Operation int

const (
	OpWrite Operation = iota
	OpCreate
	OpRemove
	OpRename
)

var opNames = [...]string{
	OpWrite:  "write",
	OpCreate: "create",
	OpRemove: "remove",
	OpRename: "rename",
}

func (op Operation) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before an event is
// delivered.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors one file for changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration

	events chan Event
	errors chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// New starts watching the file at path. The file need not exist yet,
// but its directory must.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		debounce: 100 * time.Millisecond,
		events:   make(chan Event, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the coalesced event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. Errors are dropped if not received.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := ErrClosed
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// processLoop filters fsnotify events for the watched file and delivers
// them once the debounce delay has passed without further changes.
func (w *Watcher) processLoop() {
	defer w.wg.Done()
	defer close(w.events)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending *Event
	for {
		select {
		case <-w.done:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(fsEvent.Name) != w.path {
				continue
			}
			op, ok := convertOp(fsEvent.Op)
			if !ok {
				continue
			}
			pending = coalesce(pending, Event{Path: w.path, Op: op, Time: time.Now()})
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case w.events <- *pending:
			case <-w.done:
				return
			}
			pending = nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// coalesce merges a new event into the pending one:
//   - any + remove => remove
//   - create + write => create
//   - write + write => write (latest time)
func coalesce(pending *Event, event Event) *Event {
	if pending == nil {
		return &event
	}

	merged := *pending
	merged.Time = event.Time
	switch event.Op {
	case OpRemove, OpCreate:
		merged.Op = event.Op
	case OpWrite:
		if pending.Op == OpRemove || pending.Op == OpRename {
			merged.Op = OpWrite
		}
	default:
		merged.Op = event.Op
	}
	return &merged
}

// convertOp maps an fsnotify operation; chmod-only events are dropped.
func convertOp(fsOp fsnotify.Op) (Operation, bool) {
	switch {
	case fsOp.Has(fsnotify.Remove):
		return OpRemove, true
	case fsOp.Has(fsnotify.Rename):
		return OpRename, true
	case fsOp.Has(fsnotify.Create):
		return OpCreate, true
	case fsOp.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}
