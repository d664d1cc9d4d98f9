package layer

import (
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/gutter"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// GutterLayer draws line numbers.
type GutterLayer struct {
	base
	gutter *gutter.Gutter
	style  core.Style
}

// NewGutter creates the line number layer.
func NewGutter(cfg gutter.Config) *GutterLayer {
	return &GutterLayer{
		base:   base{kind: Gutter},
		gutter: gutter.New(cfg),
		style:  core.DefaultStyle().WithAttributes(core.AttrDim),
	}
}

// Width returns the gutter width for the current line count.
func (l *GutterLayer) Width() int {
	return l.gutter.Width()
}

func (l *GutterLayer) Regenerate(s Snapshot) {
	l.regenerated()
	l.gutter.SetLineCount(s.Text.LineCount())
}

func (l *GutterLayer) Paint(f *Frame, vp *viewport.State) {
	first := vp.FirstLine()
	for row := range f.Rows(vp) {
		x := 0
		for _, r := range l.gutter.Format(first + row) {
			if x >= f.GutterWidth {
				break
			}
			f.SetRune(x, row, r, l.style)
			x++
		}
	}
}
