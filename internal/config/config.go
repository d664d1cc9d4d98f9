package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/engine/tracking"
	"github.com/dshills/annotext/internal/renderer/core"
)

// Font measure modes.
const (
	MeasureMonospace = "monospace"
	MeasureRuneWidth = "runewidth"
)

// Config is the complete set of settings.
type Config struct {
	Font    FontConfig    `toml:"font"`
	Regions RegionsConfig `toml:"regions"`
	View    ViewConfig    `toml:"view"`
	Log     LogConfig     `toml:"log"`
}

// FontConfig holds the metrics used for pointer mapping.
type FontConfig struct {
	CharWidth   float64 `toml:"char_width"`
	LineHeight  float64 `toml:"line_height"`
	PaddingTop  float64 `toml:"padding_top"`
	PaddingLeft float64 `toml:"padding_left"`
	// Measure selects fixed-width arithmetic or rune-width measurement.
	Measure string `toml:"measure"`
}

// RegionsConfig controls region creation and re-anchoring.
type RegionsConfig struct {
	Palette          []string `toml:"palette"`
	NamePrefix       string   `toml:"name_prefix"`
	MaxCharSelection int      `toml:"max_char_selection"`
	Detector         string   `toml:"detector"`
}

// ViewConfig controls the text surface.
type ViewConfig struct {
	MaxVisibleLines    int    `toml:"max_visible_lines"`
	ReadOnly           bool   `toml:"read_only"`
	AllowRegionCreate  bool   `toml:"allow_region_create"`
	ShowLineNumbers    bool   `toml:"show_line_numbers"`
	MinLineNumberWidth int    `toml:"min_line_number_width"`
	Style              string `toml:"style"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	palette := make([]string, len(region.DefaultPalette))
	for i, c := range region.DefaultPalette {
		palette[i] = string(c)
	}
	return &Config{
		Font: FontConfig{
			CharWidth:  1,
			LineHeight: 1,
			Measure:    MeasureRuneWidth,
		},
		Regions: RegionsConfig{
			Palette:          palette,
			NamePrefix:       region.DefaultNamePrefix,
			MaxCharSelection: region.DefaultMaxCharSelection,
			Detector:         tracking.SingleHunk,
		},
		View: ViewConfig{
			AllowRegionCreate:  true,
			ShowLineNumbers:    true,
			MinLineNumberWidth: 3,
			Style:              "monokai",
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the user config path, or "" when the home
// directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "annotext", "config.toml")
}

// Load reads the config at path from the OS file system.
func Load(path string) (*Config, error) {
	return LoadFS(OSFS{}, path)
}

// LoadFS reads the config at path over the defaults. A missing file, or an
// empty path, yields the defaults.
func LoadFS(fsys FileSystem, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, newParseError(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
		return pe
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = fmt.Sprintf("unknown key %q", strings.Join(first.Key(), "."))
	}
	return pe
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Font.CharWidth <= 0 {
		return invalid("font.char_width", "must be positive, got %v", c.Font.CharWidth)
	}
	if c.Font.LineHeight <= 0 {
		return invalid("font.line_height", "must be positive, got %v", c.Font.LineHeight)
	}
	if c.Font.PaddingTop < 0 || c.Font.PaddingLeft < 0 {
		return invalid("font.padding", "must not be negative")
	}
	if c.Font.Measure != MeasureMonospace && c.Font.Measure != MeasureRuneWidth {
		return invalid("font.measure", "unknown mode %q", c.Font.Measure)
	}

	if len(c.Regions.Palette) == 0 {
		return invalid("regions.palette", "must not be empty")
	}
	for _, hex := range c.Regions.Palette {
		if _, err := core.ColorFromHex(hex); err != nil {
			return invalid("regions.palette", "%v", err)
		}
	}
	if c.Regions.MaxCharSelection < 1 {
		return invalid("regions.max_char_selection", "must be at least 1, got %d", c.Regions.MaxCharSelection)
	}
	if _, err := tracking.NewDetector(c.Regions.Detector); err != nil {
		return invalid("regions.detector", "%v", err)
	}

	if c.View.MaxVisibleLines < 0 {
		return invalid("view.max_visible_lines", "must not be negative")
	}
	if c.View.MinLineNumberWidth < 1 {
		return invalid("view.min_line_number_width", "must be at least 1")
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return invalid("log.level", "unknown level %q", c.Log.Level)
	}
	return nil
}

// PaletteColors returns the palette as region colors.
func (c *Config) PaletteColors() []region.Color {
	out := make([]region.Color, len(c.Regions.Palette))
	for i, hex := range c.Regions.Palette {
		out[i] = region.Color(hex)
	}
	return out
}
