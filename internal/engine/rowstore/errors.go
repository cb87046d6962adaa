package rowstore

import "errors"

// Errors returned by rowstore operations.
var (
	// ErrRowOutOfRange indicates a row index outside an operation's precondition.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrPosOutOfRange indicates a byte offset outside the row.
	ErrPosOutOfRange = errors.New("byte offset out of range")

	// ErrNoFilename indicates a save was requested for a document without a path.
	ErrNoFilename = errors.New("no file name")
)
