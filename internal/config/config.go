package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/quill/internal/config/loader"
	"github.com/dshills/quill/internal/renderer/gutter"
)

// Limits on editor settings.
const (
	MinGutterWidth = 2
	MaxGutterWidth = 12
	MaxColor       = 255
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "QUILL_"

// Config holds all editor settings.
type Config struct {
	Editor EditorConfig
	Log    LogConfig

	// Path is the config file the settings were read from, if any.
	Path string
}

// EditorConfig configures the display.
type EditorConfig struct {
	// GutterWidth is the line number column width; 0 disables it.
	GutterWidth int
	// LineNumberColor is the 256-color palette index for line numbers.
	LineNumberColor int
	// EmptyLineMarker is drawn on rows past the end of the document.
	EmptyLineMarker string
	// LineNumbers is "absolute", "relative" or "hybrid".
	LineNumbers string
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string
	// File is the log destination; empty discards logs.
	File string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			GutterWidth:     5,
			LineNumberColor: gutter.DefaultColor,
			EmptyLineMarker: "~",
			LineNumbers:     gutter.LineNumberAbsolute.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// defaultMap returns the defaults in the loaders' map form.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"editor": map[string]any{
			"gutter_width":      d.Editor.GutterWidth,
			"line_number_color": d.Editor.LineNumberColor,
			"empty_line_marker": d.Editor.EmptyLineMarker,
			"line_numbers":      d.Editor.LineNumbers,
		},
		"log": map[string]any{
			"level": d.Log.Level,
			"file":  d.Log.File,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quill", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "quill", "config.toml")
}

// Load resolves defaults, the file at path and QUILL_* environment
// variables. A missing file is not an error. An empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	return LoadWith(path, loader.NewEnv(EnvPrefix))
}

// LoadWith is Load with an explicit environment source; env may be nil.
func LoadWith(path string, env loader.Loader) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	file, err := loader.ForPath(path)
	if err != nil {
		return nil, err
	}
	fromFile, err := file.Load()
	if err != nil {
		return nil, err
	}

	merged := loader.DeepMerge(defaultMap(), fromFile)
	if env != nil {
		fromEnv, err := env.Load()
		if err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, fromEnv)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, err
	}
	if fromFile != nil {
		cfg.Path = path
	}
	return cfg, nil
}

// fromMap decodes a merged settings map. Unknown keys are ignored.
func fromMap(m map[string]any) (*Config, error) {
	cfg := Default()
	var errs []error

	get := func(section, key string) (any, bool) {
		sec, ok := m[section].(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := sec[key]
		return v, ok
	}
	setInt := func(section, key string, dst *int) {
		if v, ok := get(section, key); ok {
			n, err := toInt(section+"."+key, v)
			if err != nil {
				errs = append(errs, err)
				return
			}
			*dst = n
		}
	}
	setString := func(section, key string, dst *string) {
		if v, ok := get(section, key); ok {
			s, ok := v.(string)
			if !ok {
				errs = append(errs, &TypeError{Path: section + "." + key, Expected: "string", Actual: fmt.Sprintf("%T", v)})
				return
			}
			*dst = s
		}
	}

	setInt("editor", "gutter_width", &cfg.Editor.GutterWidth)
	setInt("editor", "line_number_color", &cfg.Editor.LineNumberColor)
	setString("editor", "empty_line_marker", &cfg.Editor.EmptyLineMarker)
	setString("editor", "line_numbers", &cfg.Editor.LineNumbers)
	setString("log", "level", &cfg.Log.Level)
	setString("log", "file", &cfg.Log.File)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func toInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("%T", v)}
}

// Validate checks every setting against its allowed range.
func (c *Config) Validate() error {
	var errs []error

	if w := c.Editor.GutterWidth; w != 0 && (w < MinGutterWidth || w > MaxGutterWidth) {
		errs = append(errs, &ValidationError{
			Path:    "editor.gutter_width",
			Message: fmt.Sprintf("must be 0 or between %d and %d", MinGutterWidth, MaxGutterWidth),
			Value:   w,
		})
	}
	if col := c.Editor.LineNumberColor; col < 0 || col > MaxColor {
		errs = append(errs, &ValidationError{
			Path:    "editor.line_number_color",
			Message: fmt.Sprintf("must be between 0 and %d", MaxColor),
			Value:   col,
		})
	}
	if c.Editor.EmptyLineMarker == "" {
		errs = append(errs, &ValidationError{
			Path:    "editor.empty_line_marker",
			Message: "must not be empty",
			Value:   c.Editor.EmptyLineMarker,
		})
	}
	if _, err := gutter.ParseLineNumberMode(c.Editor.LineNumbers); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "editor.line_numbers",
			Message: "must be absolute, relative or hybrid",
			Value:   c.Editor.LineNumbers,
		})
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be debug, info, warn or error",
			Value:   c.Log.Level,
		})
	}

	return errors.Join(errs...)
}

// LineNumberMode returns the parsed line number mode.
// Unknown values fall back to absolute.
func (c *Config) LineNumberMode() gutter.LineNumberMode {
	m, _ := gutter.ParseLineNumberMode(c.Editor.LineNumbers)
	return m
}
