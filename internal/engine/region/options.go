package region

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/annotext/internal/engine/tracking"
)

// Logger receives debug output about ignored or clamped operations.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Store during creation.
type Option func(*Store)

// WithDetector sets the change detector used for re-anchoring.
func WithDetector(d tracking.Detector) Option {
	return func(s *Store) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithPalette sets the color palette.
func WithPalette(palette []Color) Option {
	return func(s *Store) {
		if len(palette) > 0 {
			s.palette = append([]Color(nil), palette...)
		}
	}
}

// WithNamePrefix sets the prefix of generated region names.
func WithNamePrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.namePrefix = prefix
		}
	}
}

// WithMaxCharSelection sets the longest selection that may become a
// character region.
func WithMaxCharSelection(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxCharSelection = n
		}
	}
}

// WithCreationAllowed sets whether Create is initially enabled.
func WithCreationAllowed(allowed bool) Option {
	return func(s *Store) {
		s.allowCreate = allowed
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the region ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// newTimeOrderedID returns a UUIDv7, which sorts by creation time.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
