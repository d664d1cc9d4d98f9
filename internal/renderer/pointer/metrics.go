package pointer

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// epsilon absorbs float rounding so that a pixel produced by
// PositionToPixel maps back to the same position.
const epsilon = 1e-9

// Metrics describes how text is laid out on the surface.
type Metrics interface {
	// LineHeight is the height of one line in pixels.
	LineHeight() float64

	// Padding returns the top and left padding of the text area.
	Padding() (top, left float64)

	// XForChar returns the x offset, relative to the left padding, of the
	// character at index char on a line with the given text.
	XForChar(lineText string, char int) float64

	// CharAtX returns the character index at x, relative to the left
	// padding. The result is never negative.
	CharAtX(lineText string, x float64) int
}

// FontMetrics is the fixed-width font configuration.
type FontMetrics struct {
	CharWidth   float64
	Height      float64
	PaddingTop  float64
	PaddingLeft float64
}

// DefaultFontMetrics is one pixel per terminal cell.
func DefaultFontMetrics() FontMetrics {
	return FontMetrics{CharWidth: 1, Height: 1}
}

func (m FontMetrics) charWidth() float64 {
	if m.CharWidth <= 0 {
		return 1
	}
	return m.CharWidth
}

func (m FontMetrics) LineHeight() float64 {
	if m.Height <= 0 {
		return 1
	}
	return m.Height
}

func (m FontMetrics) Padding() (top, left float64) {
	return m.PaddingTop, m.PaddingLeft
}

func (m FontMetrics) XForChar(_ string, char int) float64 {
	return float64(max(char, 0)) * m.charWidth()
}

func (m FontMetrics) CharAtX(_ string, x float64) int {
	return max(floor(x/m.charWidth()), 0)
}

// CellMetrics measures runes with go-runewidth, so a double-width rune
// takes two character widths. Positions past the end of the line continue
// at one width per character.
type CellMetrics struct {
	FontMetrics
	cond *runewidth.Condition
}

// NewCellMetrics creates measured metrics on top of a font configuration.
func NewCellMetrics(font FontMetrics) CellMetrics {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return CellMetrics{FontMetrics: font, cond: cond}
}

func (m CellMetrics) width(r rune) int {
	if m.cond == nil {
		return runewidth.RuneWidth(r)
	}
	return m.cond.RuneWidth(r)
}

func (m CellMetrics) XForChar(lineText string, char int) float64 {
	char = max(char, 0)
	cells := 0
	i := 0
	for _, r := range lineText {
		if i == char {
			break
		}
		cells += max(m.width(r), 1)
		i++
	}
	cells += char - i
	return float64(cells) * m.charWidth()
}

func (m CellMetrics) CharAtX(lineText string, x float64) int {
	target := max(floor(x/m.charWidth()), 0)
	cells := 0
	i := 0
	for _, r := range lineText {
		w := max(m.width(r), 1)
		if target < cells+w {
			return i
		}
		cells += w
		i++
	}
	return i + target - cells
}

func floor(v float64) int {
	return int(math.Floor(v + epsilon))
}
