// Package app wires the engine, the compositor and a terminal backend into
// the annotext front-end and runs its event loop.
//
// Everything that touches the engine or the compositor runs on the event
// loop goroutine. Input events arrive from a polling goroutine and lesson
// reloads from the lesson watcher, both through channels, so the engine
// stays single-threaded.
package app

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/annotext/internal/config"
	"github.com/dshills/annotext/internal/engine"
	"github.com/dshills/annotext/internal/lesson"
	"github.com/dshills/annotext/internal/renderer/backend"
	"github.com/dshills/annotext/internal/renderer/compositor"
	"github.com/dshills/annotext/internal/renderer/statusline"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means the
	// default user config path.
	ConfigPath string

	// LessonPath is the lesson to open. Empty opens the built-in sample.
	LessonPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives log lines. Nil discards them, since the terminal
	// is owned by the backend while the application runs.
	LogOutput io.Writer

	// ReadOnly forces the text to be read-only regardless of config.
	ReadOnly bool

	// Watch reloads the lesson when its file changes.
	Watch bool
}

// Application is the annotext front-end.
type Application struct {
	mu sync.Mutex

	opts    Options
	config  *config.Config
	lesson  *lesson.Lesson
	logger  *Logger
	metrics *Metrics

	engine     *engine.Engine
	compositor *compositor.Compositor
	backend    backend.Backend
	watcher    *lesson.Watcher

	// pressed tracks the left button between a press and its release.
	pressed    bool
	statusline *statusline.StatusLine

	// textInvalidated is set between an edit's text and region
	// notifications.
	textInvalidated bool

	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// New creates an application: it loads the config and the lesson and
// builds the engine and compositor.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:       opts,
		metrics:    NewMetrics(),
		statusline: statusline.New(),
		done:       make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// SetBackend sets the display. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and runs the event loop until the user
// quits, the backend closes or Shutdown is called.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.resize(b.Size())
	app.logger.Info("running lesson %q", app.lesson.Title)

	err := app.eventLoop()
	s := app.metrics.Snapshot()
	app.logger.Debug("handled %d events, rendered %d frames (avg %v, max %v)",
		s.EventCount, s.RenderCount, s.AvgRender, s.MaxRender)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Shutdown stops the event loop and the lesson watcher. It is safe to call
// more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() {
		close(app.done)
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("closing lesson watcher: %v", err)
			}
		}
	})
}

// IsRunning reports whether the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Engine returns the text engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Compositor returns the layer compositor.
func (app *Application) Compositor() *compositor.Compositor {
	return app.compositor
}

// Config returns the loaded configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Lesson returns the current lesson.
func (app *Application) Lesson() *lesson.Lesson {
	return app.lesson
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the event loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Status returns the last status message.
func (app *Application) Status() string {
	msg, _ := app.statusline.Message()
	return msg
}
