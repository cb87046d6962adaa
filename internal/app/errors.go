package app

import "errors"

var (
	// ErrQuit is returned by Run when the editor quits normally.
	ErrQuit = errors.New("quit")

	ErrAlreadyRunning = errors.New("already running")
	ErrNoBackend      = errors.New("no terminal backend")

	// Command line errors, shown on the status line.
	ErrUnsavedChanges  = errors.New("unsaved changes")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrPatternNotFound = errors.New("pattern not found")
)

// OperationError is a failed editor operation on a target such as a file.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

// NewOperationError wraps err as the failure of op on target.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	s := e.Op
	if e.Target != "" {
		s += " " + e.Target
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *OperationError) Unwrap() error { return e.Err }

// InitError reports a component that failed during startup.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }
