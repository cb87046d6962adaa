package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format uint8

const (
	FormatTOML Format = iota + 1
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Decode parses data into a settings map. source names the input in errors.
// Empty input decodes to an empty map.
func (f Format) Decode(source string, data []byte) (map[string]any, error) {
	settings := map[string]any{}
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &settings)
	case FormatYAML:
		err = yaml.Unmarshal(data, &settings)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, parseError(source, err)
	}
	return settings, nil
}

func parseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Err: err}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}
	return pe
}
