package layer

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

type charMark struct {
	line, start, end int
	color            core.Color
}

// CharMarkLayer highlights the exact characters of character regions.
type CharMarkLayer struct {
	base
	text  *buffer.Text
	marks []charMark
}

// NewCharMark creates the character region layer.
func NewCharMark() *CharMarkLayer {
	return &CharMarkLayer{base: base{kind: CharMark}, text: buffer.Empty()}
}

func (l *CharMarkLayer) Regenerate(s Snapshot) {
	l.regenerated()
	l.text = s.Text
	l.marks = l.marks[:0]
	if s.Regions == nil {
		return
	}
	for _, r := range s.Regions.CharRegions() {
		l.marks = append(l.marks, charMark{
			line:  r.Line,
			start: r.StartChar,
			end:   r.EndChar,
			color: tint(r.Color, 0.3),
		})
	}
}

// Marks returns the number of character marks.
func (l *CharMarkLayer) Marks() int {
	return len(l.marks)
}

func (l *CharMarkLayer) Paint(f *Frame, vp *viewport.State) {
	for _, m := range l.marks {
		f.EachChar(vp, m.line, l.text.Line(m.line), func(char int, _ rune, x, y int) {
			if char < m.start || char >= m.end {
				return
			}
			f.Restyle(x, y, func(s core.Style) core.Style {
				return s.WithBackground(m.color).WithAttributes(core.AttrBold)
			})
		})
	}
}
