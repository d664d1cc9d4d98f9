package layer

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/renderer/highlight"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// SyntaxLayer draws the text colored by a highlighter. Highlighting is the
// most expensive regeneration, so it only runs when the text changes.
type SyntaxLayer struct {
	base
	highlighter highlight.Highlighter
	text        *buffer.Text
	spans       highlight.Lines
}

// NewSyntax creates the syntax layer. A nil highlighter paints plain text.
func NewSyntax(h highlight.Highlighter) *SyntaxLayer {
	if h == nil {
		h = highlight.Plain{}
	}
	return &SyntaxLayer{base: base{kind: Syntax}, highlighter: h, text: buffer.Empty()}
}

// SetHighlighter replaces the highlighter. It takes effect on the next
// Regenerate.
func (l *SyntaxLayer) SetHighlighter(h highlight.Highlighter) {
	if h == nil {
		h = highlight.Plain{}
	}
	l.highlighter = h
}

func (l *SyntaxLayer) Regenerate(s Snapshot) {
	l.regenerated()
	l.text = s.Text
	l.spans = l.highlighter.Highlight(s.Text.Raw())
}

func (l *SyntaxLayer) Paint(f *Frame, vp *viewport.State) {
	first := vp.FirstLine()
	for row := range f.Rows(vp) {
		line := first + row
		if line > l.text.LineCount() {
			return
		}
		f.EachChar(vp, line, l.text.Line(line), func(char int, r rune, x, y int) {
			f.SetRune(x, y, r, l.spans.StyleAt(line, char))
		})
	}
}
