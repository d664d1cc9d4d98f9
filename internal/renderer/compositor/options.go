package compositor

import (
	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/explain"
	"github.com/dshills/annotext/internal/renderer/gutter"
	"github.com/dshills/annotext/internal/renderer/highlight"
	"github.com/dshills/annotext/internal/renderer/pointer"
)

// Logger is the logging interface used by the compositor.
type Logger = region.Logger

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Compositor during creation.
type Option func(*Compositor)

// WithHighlighter sets the syntax highlighter. The default paints plain text.
func WithHighlighter(h highlight.Highlighter) Option {
	return func(c *Compositor) {
		c.highlighter = h
	}
}

// WithMetrics sets the font metrics used for pointer mapping and scrolling.
func WithMetrics(m pointer.Metrics) Option {
	return func(c *Compositor) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithGutter configures the line number gutter.
func WithGutter(cfg gutter.Config) Option {
	return func(c *Compositor) {
		c.gutterConfig = cfg
	}
}

// WithMaxVisibleLines caps the number of lines shown. Zero means the full
// height.
func WithMaxVisibleLines(n int) Option {
	return func(c *Compositor) {
		c.maxVisibleLines = max(n, 0)
	}
}

// WithIndex sets the explanation index used in explain mode.
func WithIndex(idx *explain.Index) Option {
	return func(c *Compositor) {
		c.index = idx
	}
}

// WithSize sets the initial surface size in cells.
func WithSize(width, height int) Option {
	return func(c *Compositor) {
		c.width, c.height = max(width, 0), max(height, 0)
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(c *Compositor) {
		if l != nil {
			c.logger = l
		}
	}
}
