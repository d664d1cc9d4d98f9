// Package gutter formats the line-number column to the left of the text.
package gutter

import "strconv"

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables the column. When false the gutter is zero
	// width.
	ShowLineNumbers bool

	// MinWidth is the minimum number of digit cells.
	MinWidth int
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{ShowLineNumbers: true, MinWidth: 3}
}

// Gutter sizes and formats line numbers for a given line count.
type Gutter struct {
	config    Config
	lineCount int
	width     int
}

// New creates a gutter for a one-line text.
func New(config Config) *Gutter {
	g := &Gutter{config: config}
	g.SetLineCount(1)
	return g
}

// SetLineCount recomputes the width for a new line count. It reports
// whether the width changed.
func (g *Gutter) SetLineCount(n int) bool {
	g.lineCount = max(n, 1)
	w := calculateWidth(g.config, g.lineCount)
	changed := w != g.width
	g.width = w
	return changed
}

// Width returns the total width in cells, including the trailing
// separator space.
func (g *Gutter) Width() int {
	return g.width
}

// Format returns the padded label for a 1-based line, or blanks for lines
// past the end of the text.
func (g *Gutter) Format(line int) string {
	if g.width == 0 {
		return ""
	}
	if line < 1 || line > g.lineCount {
		return PadLeft("", g.width)
	}
	return PadLeft(strconv.Itoa(line), g.width-1) + " "
}

func calculateWidth(c Config, lineCount int) int {
	if !c.ShowLineNumbers {
		return 0
	}
	return max(len(strconv.Itoa(lineCount)), c.MinWidth, 1) + 1
}

// PadLeft right-aligns s in width cells.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	b := make([]byte, width-len(s), width)
	for i := range b {
		b[i] = ' '
	}
	return string(append(b, s...))
}
