// Package app wires the editor together: configuration, logging, the
// terminal backend and the main loop that owns all editing state.
package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/config/watcher"
	"github.com/dshills/quill/internal/engine/rowstore"
	"github.com/dshills/quill/internal/renderer/backend"
)

// Fallback terminal size when the backend cannot report one.
const (
	defaultRows = 24
	defaultCols = 80
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	// Empty uses the default location.
	ConfigPath string

	// Files are files to open on startup. Only the first is edited.
	Files []string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogFile overrides the configured log file when set.
	LogFile string

	// WatchConfig enables live reload of the configuration file.
	WatchConfig bool
}

// Application is the central coordinator.
type Application struct {
	opts    Options
	config  *config.Config
	logger  *Logger
	logFile io.Closer
	session string

	editor  *Editor
	backend backend.Backend
	watcher *watcher.Watcher

	running      atomic.Bool
	shutdownOnce sync.Once
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		opts:    opts,
		config:  cfg,
		session: uuid.NewString(),
	}

	if err := app.setupLogging(); err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}

	doc := rowstore.NewDocument("")
	if len(opts.Files) > 0 {
		doc, err = rowstore.LoadFile(opts.Files[0])
		if err != nil {
			app.Shutdown()
			return nil, &InitError{Component: "document", Err: err}
		}
	}
	app.editor = NewEditor(doc, defaultRows, defaultCols, cfg, app.logger)

	if opts.WatchConfig {
		app.startWatcher()
	}

	app.logger.Info("started",
		"file", doc.Filename(),
		"rows", doc.NumRows(),
		"config", cfg.Path,
	)
	return app, nil
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (app *Application) setupLogging() error {
	var out io.Writer = io.Discard
	if path := app.config.Log.File; path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}
	app.logger = NewLogger(LoggerConfig{
		Level:   ParseLogLevel(app.config.Log.Level),
		Output:  out,
		Session: app.session,
	})
	return nil
}

// startWatcher watches the config file. Failure only disables live reload.
func (app *Application) startWatcher() {
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		app.logger.Debug("config directory missing, live reload disabled", "path", path)
		return
	}
	w, err := watcher.New(path)
	if err != nil {
		app.logger.Warn("config watch failed", "path", path, "error", err)
		return
	}
	app.watcher = w
}

// reloadConfig re-reads the configuration after a file change and applies
// the display and log settings. An invalid file keeps the current settings.
func (app *Application) reloadConfig() {
	cfg, err := loadConfig(app.opts)
	if err != nil {
		app.logger.Warn("config reload failed", "error", err)
		app.editor.SetMessage("config: " + firstLine(err.Error()))
		return
	}
	app.config = cfg
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.editor.ApplyConfig(cfg)
	app.logger.Info("config reloaded", "config", cfg.Path)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// SetBackend sets the terminal the application runs on.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Editor returns the editing state.
func (app *Application) Editor() *Editor {
	return app.editor
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Session returns the identifier attached to every log line of this run.
func (app *Application) Session() string {
	return app.session
}

// IsRunning returns whether the main loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown releases resources. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		var errs []error
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil && !errors.Is(err, watcher.ErrClosed) {
				errs = append(errs, err)
			}
		}
		if app.logger != nil {
			app.logger.Info("shutdown")
		}
		if app.logFile != nil {
			errs = append(errs, app.logFile.Close())
		}
		if err := errors.Join(errs...); err != nil {
			_, _ = io.WriteString(os.Stderr, "shutdown: "+err.Error()+"\n")
		}
	})
}
