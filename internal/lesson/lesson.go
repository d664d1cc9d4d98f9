package lesson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/annotext/internal/explain"
)

// Lesson is one unit of lesson content.
type Lesson struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	// File is the name the source would have on disk. It only feeds
	// language detection.
	File         string          `yaml:"file"`
	Source       string          `yaml:"source"`
	Explanations []explain.Entry `yaml:"explanations"`
	// MinRegions is how many regions the surrounding workflow expects
	// before it lets the learner move on.
	MinRegions int `yaml:"min_regions"`

	// Path is where the lesson was loaded from.
	Path string `yaml:"-"`
}

// Index builds the explanation index for the lesson.
func (l *Lesson) Index() *explain.Index {
	return explain.NewIndex(l.Explanations)
}

// Load reads and parses a lesson file.
func Load(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lesson %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses lesson YAML. name is used in errors and for Path.
func Parse(name string, data []byte) (*Lesson, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Lesson
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return nil, newParseError(name, err)
	}
	l.Path = name

	if err := l.validate(); err != nil {
		return nil, err
	}
	if l.Language == "" {
		l.Language = DetectLanguage(l.File, l.Source)
	}
	return &l, nil
}

func (l *Lesson) validate() error {
	if l.MinRegions < 0 {
		return fmt.Errorf("%w: min_regions must not be negative", ErrInvalidLesson)
	}
	for i, e := range l.Explanations {
		if e.Line < 1 {
			return fmt.Errorf("%w: explanation %d: line must be at least 1", ErrInvalidLesson, i+1)
		}
		if strings.TrimSpace(e.Description) == "" {
			return fmt.Errorf("%w: explanation %d: empty description", ErrInvalidLesson, i+1)
		}
	}
	return nil
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func newParseError(path string, err error) *ParseError {
	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	pe := &ParseError{Path: path, Message: strings.TrimPrefix(msg, "yaml: "), Err: err}
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}
