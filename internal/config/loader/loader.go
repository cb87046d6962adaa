// Package loader reads configuration sources into nested maps.
//
// A File parses TOML or YAML, chosen by extension; Env maps QUILL_*
// variables onto setting paths. Maps from several sources are combined
// with DeepMerge, later sources winning.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for a config file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Loader yields one layer of settings. A source that does not exist
// yields a nil map and no error.
type Loader interface {
	Load() (map[string]any, error)
}

// ParseError reports a config file that could not be decoded.
// Line and Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse ")
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ":%d", e.Column)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// File is a config file on disk.
type File struct {
	Path   string
	Format Format

	readFile func(string) ([]byte, error)
}

// ForPath returns a File for path, with the format taken from its
// extension: .toml is TOML, .yaml and .yml are YAML.
func ForPath(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Format: format, readFile: os.ReadFile}, nil
}

// FormatOf returns the format for the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads and decodes the file. A missing file is not an error.
func (f *File) Load() (map[string]any, error) {
	data, err := f.readFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", f.Path, err)
	}
	return f.Format.Decode(f.Path, data)
}

// DeepMerge merges src into dst and returns dst. Nested maps merge key by
// key; any other src value replaces the dst value.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[key] = v
			continue
		}
		if cur, ok := dst[key].(map[string]any); ok {
			dst[key] = DeepMerge(cur, sub)
		} else {
			dst[key] = sub
		}
	}
	return dst
}
