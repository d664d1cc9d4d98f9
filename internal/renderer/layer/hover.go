package layer

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// Tooltip is an explanation shown next to hovered code.
type Tooltip struct {
	Text    string
	Snippet string

	// Line and Char anchor the tooltip at the start of the hovered word.
	Line int
	Char int

	// X and Y are the surface pixel of the tooltip's top-left corner: the
	// anchor character's pixel, one line lower.
	X, Y float64
}

// HoverLayer underlines the word under the pointer and draws its tooltip.
type HoverLayer struct {
	base
	text *buffer.Text

	active     bool
	line       int
	start, end int
	tooltip    *Tooltip

	wordStyle core.Style
	tipStyle  core.Style
}

// NewHover creates the hover layer.
func NewHover() *HoverLayer {
	return &HoverLayer{
		base:      base{kind: Hover},
		text:      buffer.Empty(),
		wordStyle: core.DefaultStyle().WithAttributes(core.AttrUnderline),
		tipStyle:  core.DefaultStyle().WithAttributes(core.AttrReverse),
	}
}

// Set marks characters [start, end) of line as hovered, with an optional
// tooltip.
func (l *HoverLayer) Set(line, start, end int, tip *Tooltip) {
	l.active = true
	l.line, l.start, l.end = line, start, end
	l.tooltip = tip
}

// Clear removes the hover state.
func (l *HoverLayer) Clear() {
	l.active = false
	l.tooltip = nil
}

// Tooltip returns the current tooltip.
func (l *HoverLayer) Tooltip() (Tooltip, bool) {
	if !l.active || l.tooltip == nil {
		return Tooltip{}, false
	}
	return *l.tooltip, true
}

// Regenerate drops hover state, which refers to text that has changed.
func (l *HoverLayer) Regenerate(s Snapshot) {
	l.regenerated()
	l.text = s.Text
	l.Clear()
}

func (l *HoverLayer) Paint(f *Frame, vp *viewport.State) {
	if !l.active {
		return
	}
	lineText := l.text.Line(l.line)
	f.EachChar(vp, l.line, lineText, func(char int, _ rune, x, y int) {
		if char >= l.start && char < l.end {
			f.Restyle(x, y, func(s core.Style) core.Style { return l.wordStyle.Over(s) })
		}
	})
	if l.tooltip != nil {
		l.paintTooltip(f, vp, lineText)
	}
}

func (l *HoverLayer) paintTooltip(f *Frame, vp *viewport.State, lineText string) {
	row, ok := f.Row(vp, l.line)
	if !ok {
		return
	}
	if row+1 < f.Rows(vp) {
		row++
	} else if row > 0 {
		row--
	}

	label := " " + l.tooltip.Text + " "
	avail := f.Width - f.GutterWidth
	if avail <= 0 {
		return
	}
	label = core.Truncate(label, avail)
	width := core.StringWidth(label)

	x := f.Column(vp, lineText, l.tooltip.Char)
	x = min(max(x, f.GutterWidth), f.Width-width)
	for _, r := range label {
		f.Set(x, row, core.Cell{Rune: r, Width: core.RuneWidth(r), Style: l.tipStyle})
		x += max(core.RuneWidth(r), 1)
	}
}
