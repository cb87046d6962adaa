package loader

import (
	"os"
	"strconv"
	"strings"
)

// envAliases name the variables whose setting path cannot be derived from
// the variable name. Keys omit the prefix.
var envAliases = map[string]string{
	"LOG_LEVEL":         "log.level",
	"LOG_FILE":          "log.file",
	"GUTTER_WIDTH":      "editor.gutter_width",
	"LINE_NUMBER_COLOR": "editor.line_number_color",
}

// Env reads settings from environment variables. Besides the aliases,
// <PREFIX><SECTION>_<NAME> sets section.name, lower-cased; for example
// QUILL_EDITOR_EMPTY_LINE_MARKER sets editor.empty_line_marker.
type Env struct {
	prefix  string
	environ func() []string
}

// NewEnv creates an environment source for variables starting with prefix,
// which should include the trailing underscore.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix, environ: os.Environ}
}

// Load collects every matching variable. A set but empty variable counts.
func (e *Env) Load() (map[string]any, error) {
	settings := make(map[string]any)
	for _, kv := range e.environ() {
		name, value, _ := strings.Cut(kv, "=")
		rest, ok := strings.CutPrefix(name, e.prefix)
		if !ok {
			continue
		}
		path, ok := envAliases[rest]
		if !ok {
			path = envPath(rest)
		}
		if path != "" {
			setPath(settings, path, coerce(value))
		}
	}
	return settings, nil
}

// envPath maps SECTION_NAME to section.name, or "" without a name part.
func envPath(rest string) string {
	section, name, ok := strings.Cut(rest, "_")
	if !ok || section == "" || name == "" {
		return ""
	}
	return strings.ToLower(section) + "." + strings.ToLower(name)
}

// coerce turns integers and boolean words into typed values.
// "0" and "1" stay integers.
func coerce(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

func setPath(m map[string]any, path string, v any) {
	keys := strings.Split(path, ".")
	for _, k := range keys[:len(keys)-1] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			m[k] = sub
		}
		m = sub
	}
	m[keys[len(keys)-1]] = v
}
