package layer

import (
	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// shade darkens region colors enough to keep text readable on top.
var shade = core.ColorFromRGB(0, 0, 0)

// BackgroundLayer tints whole lines covered by line regions.
type BackgroundLayer struct {
	base
	lines []core.Color
}

// NewBackground creates the line region layer.
func NewBackground() *BackgroundLayer {
	return &BackgroundLayer{base: base{kind: Background}}
}

func (l *BackgroundLayer) Regenerate(s Snapshot) {
	l.regenerated()
	l.lines = l.lines[:0]
	if s.Regions == nil {
		return
	}
	for _, c := range s.Regions.LineBackgrounds(s.Text.LineCount()) {
		l.lines = append(l.lines, tint(c, 0.65))
	}
}

// LineColor returns the tint of a 1-based line.
func (l *BackgroundLayer) LineColor(line int) core.Color {
	if line < 1 || line > len(l.lines) {
		return core.ColorDefault
	}
	return l.lines[line-1]
}

func (l *BackgroundLayer) Paint(f *Frame, vp *viewport.State) {
	first := vp.FirstLine()
	for row := range f.Rows(vp) {
		c := l.LineColor(first + row)
		if c.IsDefault() {
			continue
		}
		for x := f.GutterWidth; x < f.Width; x++ {
			f.Restyle(x, row, func(s core.Style) core.Style { return s.WithBackground(c) })
		}
	}
}

func tint(c region.Color, amount float64) core.Color {
	if c == "" {
		return core.ColorDefault
	}
	col := core.MustHex(string(c))
	if col.IsDefault() {
		return col
	}
	return col.Blend(shade, amount)
}
