package engine

import (
	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/engine/tracking"
)

// Logger is the logging interface used by the engine.
type Logger = region.Logger

// Option configures an Engine during creation.
type Option func(*Engine)

// WithReadOnly sets whether edits are rejected.
func WithReadOnly(readOnly bool) Option {
	return func(e *Engine) {
		e.readOnly = readOnly
	}
}

// WithRegionCreation sets whether selections may be committed as regions.
func WithRegionCreation(allowed bool) Option {
	return func(e *Engine) {
		e.storeOpts = append(e.storeOpts, region.WithCreationAllowed(allowed))
	}
}

// WithDetector sets the change detector used to re-anchor regions.
func WithDetector(d tracking.Detector) Option {
	return func(e *Engine) {
		e.storeOpts = append(e.storeOpts, region.WithDetector(d))
	}
}

// WithStoreOptions passes options through to the region store.
func WithStoreOptions(opts ...region.Option) Option {
	return func(e *Engine) {
		e.storeOpts = append(e.storeOpts, opts...)
	}
}

// WithLogger sets the logger for the engine and its region store.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
			e.storeOpts = append(e.storeOpts, region.WithLogger(l))
		}
	}
}
