package config

import (
	"errors"
	"fmt"

	"github.com/dshills/quill/internal/config/loader"
)

var (
	// ErrTypeMismatch matches every *TypeError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed matches every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError reports a config file with a syntax error.
type ParseError = loader.ParseError

// ValidationError is a setting whose value is out of range.
type ValidationError struct {
	Path    string // dotted setting path, e.g. editor.gutter_width
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s, got %v", e.Path, e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// TypeError is a setting whose value has the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s must be %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *TypeError) Is(target error) bool { return target == ErrTypeMismatch }
