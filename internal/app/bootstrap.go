package app

import (
	"fmt"
	"io"

	"github.com/dshills/annotext/internal/config"
	"github.com/dshills/annotext/internal/engine"
	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/engine/tracking"
	"github.com/dshills/annotext/internal/lesson"
	"github.com/dshills/annotext/internal/renderer/compositor"
	"github.com/dshills/annotext/internal/renderer/gutter"
	"github.com/dshills/annotext/internal/renderer/highlight"
	"github.com/dshills/annotext/internal/renderer/pointer"
)

// bootstrap initializes the components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	levelName := cfg.Log.Level
	if app.opts.LogLevel != "" {
		levelName = app.opts.LogLevel
	}
	level, ok := ParseLogLevel(levelName)
	if !ok {
		return &InitError{Component: "logger", Err: fmt.Errorf("unknown log level %q", levelName)}
	}
	out := app.opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	app.logger = NewLogger(LoggerConfig{Level: level, Output: out, Prefix: "annotext"})
	app.logger.Debug("config loaded from %s", path)

	// 3. Lesson
	l, err := app.loadLesson()
	if err != nil {
		return &InitError{Component: "lesson", Err: err}
	}
	app.lesson = l
	app.warnUnanchored(l)

	// 4. Engine
	detector, err := tracking.NewDetector(cfg.Regions.Detector)
	if err != nil {
		return &InitError{Component: "engine", Err: err}
	}
	app.engine = engine.New(l.Source,
		engine.WithReadOnly(cfg.View.ReadOnly || app.opts.ReadOnly),
		engine.WithRegionCreation(cfg.View.AllowRegionCreate),
		engine.WithDetector(detector),
		engine.WithStoreOptions(
			region.WithPalette(cfg.PaletteColors()),
			region.WithNamePrefix(cfg.Regions.NamePrefix),
			region.WithMaxCharSelection(cfg.Regions.MaxCharSelection),
		),
		engine.WithLogger(app.logger.WithComponent("engine")),
	)

	// 5. Compositor
	app.compositor = compositor.New(app.engine,
		compositor.WithHighlighter(highlight.NewChroma(l.Language, cfg.View.Style)),
		compositor.WithMetrics(fontMetrics(cfg.Font)),
		compositor.WithGutter(gutter.Config{
			ShowLineNumbers: cfg.View.ShowLineNumbers,
			MinWidth:        cfg.View.MinLineNumberWidth,
		}),
		compositor.WithMaxVisibleLines(cfg.View.MaxVisibleLines),
		compositor.WithIndex(l.Index()),
		compositor.WithLogger(app.logger.WithComponent("compositor")),
	)

	// Re-anchoring has finished by the time either observer runs. An edit
	// notifies text observers and then region observers; TextChanged has
	// already regenerated the region layers by then.
	app.engine.OnTextChange(func(string) {
		app.compositor.Invalidate(compositor.TextChanged)
		app.textInvalidated = true
	})
	app.engine.OnRegionsChange(func(regions []region.Region) {
		if app.textInvalidated {
			app.textInvalidated = false
		} else {
			app.compositor.Invalidate(compositor.RegionsChanged)
		}
		app.logger.Debug("%d regions", len(regions))
	})

	// 6. Lesson watcher
	if app.opts.Watch && app.opts.LessonPath != "" {
		w, err := lesson.NewWatcher(app.opts.LessonPath)
		if err != nil {
			// Non-fatal: the lesson just won't reload.
			app.logger.Warn("lesson reload disabled: %v", err)
		} else {
			app.watcher = w
		}
	}

	app.syncStatus()
	return nil
}

func (app *Application) loadLesson() (*lesson.Lesson, error) {
	if app.opts.LessonPath == "" {
		return lesson.Parse("sample.yaml", []byte(sampleLesson))
	}
	return lesson.Load(app.opts.LessonPath)
}

// fontMetrics builds the pointer metrics for the configured font.
func fontMetrics(fc config.FontConfig) pointer.Metrics {
	font := pointer.FontMetrics{
		CharWidth:   fc.CharWidth,
		Height:      fc.LineHeight,
		PaddingTop:  fc.PaddingTop,
		PaddingLeft: fc.PaddingLeft,
	}
	if fc.Measure == config.MeasureRuneWidth {
		return pointer.NewCellMetrics(font)
	}
	return font
}
