package lesson

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLesson indicates a lesson that parsed but fails validation.
	ErrInvalidLesson = errors.New("invalid lesson")

	// ErrWatcherClosed indicates use of a closed watcher.
	ErrWatcherClosed = errors.New("watcher closed")
)

// ParseError is returned when a lesson file is not valid YAML or has
// unknown fields.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
