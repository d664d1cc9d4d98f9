package layer

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/selection"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// InputLayer is the interactive surface: it shows the selection and owns
// the caret.
type InputLayer struct {
	base
	text      *buffer.Text
	selection *selection.Machine
	caret     int
	style     core.Style
}

// NewInput creates the input layer over a selection machine.
func NewInput(sel *selection.Machine) *InputLayer {
	if sel == nil {
		sel = selection.New()
	}
	return &InputLayer{
		base:      base{kind: Input},
		text:      buffer.Empty(),
		selection: sel,
		style:     core.DefaultStyle().WithAttributes(core.AttrReverse),
	}
}

// Selection returns the selection machine.
func (l *InputLayer) Selection() *selection.Machine {
	return l.selection
}

// Caret returns the caret offset.
func (l *InputLayer) Caret() int {
	return l.caret
}

// SetCaret moves the caret, clamped to the text.
func (l *InputLayer) SetCaret(offset int) {
	l.caret = l.text.ClampOffset(offset)
}

// CaretPosition returns the caret as a line and character.
func (l *InputLayer) CaretPosition() buffer.Position {
	return l.text.PositionOf(l.caret)
}

// CaretCell returns the frame cell of the caret, if visible.
func (l *InputLayer) CaretCell(f *Frame, vp *viewport.State) (x, y int, ok bool) {
	pos := l.CaretPosition()
	y, ok = f.Row(vp, pos.Line)
	if !ok {
		return 0, 0, false
	}
	x = f.Column(vp, l.text.Line(pos.Line), pos.Char)
	return x, y, x >= f.GutterWidth && x < f.Width
}

func (l *InputLayer) Regenerate(s Snapshot) {
	l.regenerated()
	l.text = s.Text
	l.caret = l.text.ClampOffset(l.caret)
}

func (l *InputLayer) Paint(f *Frame, vp *viewport.State) {
	span, ok := l.selection.Selection()
	if !ok || span.IsEmpty() {
		return
	}
	start := l.text.PositionOf(span.Start)
	end := l.text.PositionOf(span.End)
	for line := start.Line; line <= end.Line; line++ {
		from, to := 0, l.text.LineLen(line)
		if line == start.Line {
			from = start.Char
		}
		if line == end.Line {
			to = end.Char
		}
		f.EachChar(vp, line, l.text.Line(line), func(char int, _ rune, x, y int) {
			if char >= from && char < to {
				f.Restyle(x, y, func(s core.Style) core.Style { return l.style.Over(s) })
			}
		})
	}
}
