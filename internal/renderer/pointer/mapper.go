package pointer

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// Point is a pixel coordinate on the text surface.
type Point struct {
	X, Y float64
}

// LineSource returns the text of a 1-based line. A nil LineSource is
// treated as all lines being empty.
type LineSource func(line int) string

// Mapper converts between pixels and text positions.
type Mapper struct {
	metrics Metrics
}

// NewMapper creates a mapper. Nil metrics default to DefaultFontMetrics.
func NewMapper(m Metrics) *Mapper {
	if m == nil {
		m = DefaultFontMetrics()
	}
	return &Mapper{metrics: m}
}

// Metrics returns the metrics in use.
func (m *Mapper) Metrics() Metrics {
	return m.metrics
}

// PixelToPosition maps a pixel in surface coordinates to a position.
// The result has Line >= 1 and Char >= 0; clamping to the text is left to
// the caller.
func (m *Mapper) PixelToPosition(x, y float64, scroll viewport.Scroll, lines LineSource) buffer.Position {
	padTop, padLeft := m.metrics.Padding()
	line := max(floor((y+scroll.Top-padTop)/m.metrics.LineHeight())+1, 1)
	return buffer.Position{
		Line: line,
		Char: m.metrics.CharAtX(text(lines, line), x+scroll.Left-padLeft),
	}
}

// PositionToPixel maps a position to the top-left pixel of its character
// in content coordinates, that is with no scroll applied.
func (m *Mapper) PositionToPixel(line, char int, lines LineSource) Point {
	padTop, padLeft := m.metrics.Padding()
	line = max(line, 1)
	return Point{
		X: padLeft + m.metrics.XForChar(text(lines, line), char),
		Y: padTop + float64(line-1)*m.metrics.LineHeight(),
	}
}

// ToSurface converts a content coordinate to a surface coordinate by
// removing the scroll offset.
func (m *Mapper) ToSurface(p Point, scroll viewport.Scroll) Point {
	return Point{X: p.X - scroll.Left, Y: p.Y - scroll.Top}
}

// Clamp limits pos to the lines and characters that exist in t.
func Clamp(pos buffer.Position, t *buffer.Text) buffer.Position {
	line := t.ClampLine(pos.Line)
	return buffer.Position{Line: line, Char: min(max(pos.Char, 0), t.LineLen(line))}
}

func text(lines LineSource, line int) string {
	if lines == nil {
		return ""
	}
	return lines(line)
}
