// Package compositor stacks the layers of the text surface and keeps them
// in step.
//
// The compositor owns the single viewport.State that every layer paints
// from. Scrolling updates that state and synchronizes every layer before
// returning. Text and region changes regenerate only the layers that
// depend on what changed: a text change rebuilds everything, a region
// change rebuilds the background and character mark layers and leaves the
// syntax layer's highlighting alone.
//
// A Compositor is not safe for concurrent use. It is driven from the
// event loop goroutine, together with the engine it reads from.
package compositor

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/explain"
	"github.com/dshills/annotext/internal/renderer/backend"
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/gutter"
	"github.com/dshills/annotext/internal/renderer/highlight"
	"github.com/dshills/annotext/internal/renderer/layer"
	"github.com/dshills/annotext/internal/renderer/pointer"
	"github.com/dshills/annotext/internal/renderer/selection"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// Source provides the content the layers are generated from.
// engine.Engine satisfies it.
type Source interface {
	Buffer() *buffer.Text
	Store() *region.Store
}

// Change describes what changed in the source.
type Change uint8

const (
	// TextChanged means the text was replaced. Every layer regenerates.
	TextChanged Change = 1 << iota

	// RegionsChanged means regions were created, moved or removed.
	RegionsChanged
)

// Default surface size in cells, used until Resize is called.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Compositor owns the layer stack and the shared viewport.
type Compositor struct {
	source Source

	width, height   int
	maxVisibleLines int

	metrics      pointer.Metrics
	mapper       *pointer.Mapper
	vp           *viewport.State
	gutterConfig gutter.Config
	highlighter  highlight.Highlighter
	index        *explain.Index
	logger       Logger

	selection *selection.Machine

	gutter     *layer.GutterLayer
	background *layer.BackgroundLayer
	syntax     *layer.SyntaxLayer
	charmark   *layer.CharMarkLayer
	hover      *layer.HoverLayer
	input      *layer.InputLayer
	layers     []layer.Layer

	explainMode bool
	frames      uint64
}

// New creates a compositor over src and generates every layer.
func New(src Source, opts ...Option) *Compositor {
	c := &Compositor{
		source:       src,
		width:        DefaultWidth,
		height:       DefaultHeight,
		metrics:      pointer.DefaultFontMetrics(),
		gutterConfig: gutter.DefaultConfig(),
		logger:       nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mapper = pointer.NewMapper(c.metrics)
	c.selection = selection.New()
	c.gutter = layer.NewGutter(c.gutterConfig)
	c.background = layer.NewBackground()
	c.syntax = layer.NewSyntax(c.highlighter)
	c.charmark = layer.NewCharMark()
	c.hover = layer.NewHover()
	c.input = layer.NewInput(c.selection)
	c.layers = []layer.Layer{c.gutter, c.background, c.syntax, c.charmark, c.hover, c.input}

	c.vp = viewport.New(c.metrics.LineHeight(), columnWidth(c.metrics), 0, 0)
	c.vp.MaxVisibleLines = c.maxVisibleLines

	c.Invalidate(TextChanged)
	return c
}

// columnWidth is the pixel width of one terminal column.
func columnWidth(m pointer.Metrics) float64 {
	if w := m.XForChar("", 1); w > 0 {
		return w
	}
	return 1
}

// Invalidate regenerates the layers that depend on what changed.
func (c *Compositor) Invalidate(ch Change) {
	snap := layer.Snapshot{Text: c.source.Buffer(), Regions: c.source.Store()}
	if snap.Text == nil {
		snap.Text = buffer.Empty()
	}

	switch {
	case ch&TextChanged != 0:
		for _, l := range c.layers {
			l.Regenerate(snap)
		}
		c.selection.Clear()
		c.setContent(snap.Text)
		c.logger.Debug("text changed, regenerated %d layers", len(c.layers))
	case ch&RegionsChanged != 0:
		c.background.Regenerate(snap)
		c.charmark.Regenerate(snap)
		c.logger.Debug("regions changed, regenerated background and char marks")
	}
}

func (c *Compositor) setContent(text *buffer.Text) {
	widest := 0
	for _, line := range text.Lines() {
		widest = max(widest, core.StringWidth(line))
	}
	c.vp.SetContent(text.LineCount(), widest)
	c.layout()
}

// layout sizes the viewport to the text area and resynchronizes scroll.
func (c *Compositor) layout() {
	c.vp.Resize(c.height, max(c.width-c.gutter.Width(), 1))
	c.syncScroll()
}

func (c *Compositor) syncScroll() viewport.Scroll {
	sc := c.vp.Scroll
	for _, l := range c.layers {
		l.SyncScroll(sc)
	}
	return sc
}

// Resize sets the surface size in cells.
func (c *Compositor) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.layout()
}

// Size returns the surface size in cells.
func (c *Compositor) Size() (width, height int) {
	return c.width, c.height
}

// GutterWidth returns the gutter width in cells.
func (c *Compositor) GutterWidth() int {
	return min(c.gutter.Width(), c.width)
}

// SetMaxVisibleLines caps the number of lines shown. Zero means the full
// height.
func (c *Compositor) SetMaxVisibleLines(n int) {
	c.maxVisibleLines = max(n, 0)
	c.vp.MaxVisibleLines = c.maxVisibleLines
	c.layout()
}

// Scroll moves the viewport to the given pixel offset, clamped to the
// content, and synchronizes every layer before returning the applied
// offset.
func (c *Compositor) Scroll(top, left float64) viewport.Scroll {
	c.vp.SetScroll(viewport.Scroll{Top: top, Left: left})
	return c.syncScroll()
}

// ScrollBy scrolls by whole lines and columns.
func (c *Compositor) ScrollBy(lines, cols int) viewport.Scroll {
	c.vp.ScrollBy(lines, cols)
	return c.syncScroll()
}

// ScrollOffset returns the current scroll offset.
func (c *Compositor) ScrollOffset() viewport.Scroll {
	return c.vp.Scroll
}

// LayerScrolls returns the scroll offset each layer last synchronized to.
func (c *Compositor) LayerScrolls() map[layer.Kind]viewport.Scroll {
	out := make(map[layer.Kind]viewport.Scroll, len(c.layers))
	for _, l := range c.layers {
		out[l.Kind()] = l.AppliedScroll()
	}
	return out
}

// Generation returns how many times the layer of the given kind has
// regenerated.
func (c *Compositor) Generation(kind layer.Kind) int {
	if l := c.Layer(kind); l != nil {
		return l.Generation()
	}
	return 0
}

// Layer returns the layer of the given kind.
func (c *Compositor) Layer(kind layer.Kind) layer.Layer {
	for _, l := range c.layers {
		if l.Kind() == kind {
			return l
		}
	}
	return nil
}

// Layers returns the layers bottom to top.
func (c *Compositor) Layers() []layer.Layer {
	return append([]layer.Layer(nil), c.layers...)
}

// Viewport returns the shared viewport state.
func (c *Compositor) Viewport() *viewport.State {
	return c.vp
}

// Mapper returns the pointer mapper.
func (c *Compositor) Mapper() *pointer.Mapper {
	return c.mapper
}

// SetHighlighter replaces the syntax highlighter and regenerates the syntax
// layer.
func (c *Compositor) SetHighlighter(h highlight.Highlighter) {
	c.highlighter = h
	c.syntax.SetHighlighter(h)
	c.syntax.Regenerate(layer.Snapshot{Text: c.source.Buffer(), Regions: c.source.Store()})
}

// SetIndex replaces the explanation index and drops the current hover.
func (c *Compositor) SetIndex(idx *explain.Index) {
	c.index = idx
	c.hover.Clear()
}

// PositionAt maps a surface pixel in the text area to a position clamped
// to the text.
func (c *Compositor) PositionAt(x, y float64) buffer.Position {
	text := c.source.Buffer()
	return pointer.Clamp(c.mapper.PixelToPosition(x, y, c.vp.Scroll, text.Line), text)
}

// OffsetAt maps a surface pixel in the text area to a character offset.
func (c *Compositor) OffsetAt(x, y float64) int {
	return c.source.Buffer().OffsetOf(c.PositionAt(x, y))
}

// PixelFor returns the surface pixel of a position's top-left corner.
func (c *Compositor) PixelFor(pos buffer.Position) pointer.Point {
	text := c.source.Buffer()
	return c.mapper.ToSurface(c.mapper.PositionToPixel(pos.Line, pos.Char, text.Line), c.vp.Scroll)
}

// CellPixel returns the surface pixel at the center of a frame cell, so a
// terminal pointer event can be fed to PositionAt. ok is false for cells
// in the gutter or outside the visible rows.
func (c *Compositor) CellPixel(col, row int) (p pointer.Point, ok bool) {
	gw := c.GutterWidth()
	if col < gw || col >= c.width || row < 0 || row >= min(c.height, c.vp.VisibleLines()) {
		return pointer.Point{}, false
	}
	padTop, padLeft := c.metrics.Padding()
	lh, cw := c.metrics.LineHeight(), columnWidth(c.metrics)
	content := pointer.Point{
		X: padLeft + (float64(col-gw+c.vp.FirstColumn())+0.5)*cw,
		Y: padTop + (float64(row+c.vp.FirstLine()-1)+0.5)*lh,
	}
	return c.mapper.ToSurface(content, c.vp.Scroll), true
}

// Selection returns the selection machine.
func (c *Compositor) Selection() *selection.Machine {
	return c.selection
}

// PointerDown starts a selection at a surface pixel and moves the caret
// there.
func (c *Compositor) PointerDown(x, y float64) {
	offset := c.OffsetAt(x, y)
	c.selection.PointerDown(offset)
	c.input.SetCaret(offset)
}

// PointerDrag extends the selection while the pointer is held.
func (c *Compositor) PointerDrag(x, y float64) {
	if c.selection.State() != selection.Selecting {
		return
	}
	offset := c.OffsetAt(x, y)
	c.selection.PointerDrag(offset)
	c.input.SetCaret(offset)
}

// PointerUp finishes a selection and returns the resulting state.
func (c *Compositor) PointerUp(x, y float64) selection.State {
	if c.selection.State() != selection.Selecting {
		return c.selection.State()
	}
	offset := c.OffsetAt(x, y)
	c.input.SetCaret(offset)
	return c.selection.PointerUp(offset)
}

// TakeSelection returns the ready selection and returns the machine to
// Idle. The caller commits the span as a region.
func (c *Compositor) TakeSelection() (buffer.Span, bool) {
	return c.selection.Commit()
}

// Caret returns the caret offset.
func (c *Compositor) Caret() int {
	return c.input.Caret()
}

// CaretPosition returns the caret as a line and character.
func (c *Compositor) CaretPosition() buffer.Position {
	return c.input.CaretPosition()
}

// SetCaret moves the caret and scrolls it into view.
func (c *Compositor) SetCaret(offset int) {
	c.input.SetCaret(offset)
	c.revealCaret()
}

// MoveCaret moves the caret by lines and characters. Moving across lines
// keeps the character column where the target line allows it.
func (c *Compositor) MoveCaret(lines, chars int) {
	text := c.source.Buffer()
	offset := c.input.Caret()
	if lines != 0 {
		pos := text.PositionOf(offset)
		pos.Line = text.ClampLine(pos.Line + lines)
		offset = text.OffsetOf(pos)
	}
	c.SetCaret(offset + chars)
}

func (c *Compositor) revealCaret() {
	pos := c.input.CaretPosition()
	col := core.StringWidth(string([]rune(c.source.Buffer().Line(pos.Line))[:pos.Char]))
	c.vp.EnsureVisible(pos.Line, col)
	c.syncScroll()
}

// SetExplainMode turns hover explanations on or off. Turning it off clears
// the hover layer.
func (c *Compositor) SetExplainMode(on bool) {
	c.explainMode = on
	if !on {
		c.hover.Clear()
	}
}

// ExplainMode reports whether hover explanations are on.
func (c *Compositor) ExplainMode() bool {
	return c.explainMode
}

// Hover handles a pointer move to a surface pixel. In explain mode the word
// under the pointer is marked and, when the explanation index has an entry
// for the line, a tooltip is placed one line below the word.
func (c *Compositor) Hover(x, y float64) (layer.Tooltip, bool) {
	if !c.explainMode {
		return layer.Tooltip{}, false
	}

	text := c.source.Buffer()
	raw := c.mapper.PixelToPosition(x, y, c.vp.Scroll, text.Line)
	if raw.Line > text.LineCount() {
		c.hover.Clear()
		return layer.Tooltip{}, false
	}
	pos := pointer.Clamp(raw, text)
	lineText := text.Line(pos.Line)
	start, end, word := text.WordAt(pos.Line, pos.Char)

	entry, ok := c.index.Lookup(explain.Query{
		Line:     pos.Line,
		Snippet:  word,
		LineText: lineText,
		Char:     pos.Char,
	})
	if !ok {
		c.hover.Set(pos.Line, start, end, nil)
		return layer.Tooltip{}, false
	}

	anchor := c.mapper.PositionToPixel(pos.Line, start, text.Line)
	anchor.Y += c.metrics.LineHeight()
	at := c.mapper.ToSurface(anchor, c.vp.Scroll)

	tip := layer.Tooltip{
		Text:    entry.Description,
		Snippet: word,
		Line:    pos.Line,
		Char:    start,
		X:       at.X,
		Y:       at.Y,
	}
	c.hover.Set(pos.Line, start, end, &tip)
	c.logger.Debug("hover %v: explanation for line %d", pos, entry.Line)
	return tip, true
}

// Tooltip returns the tooltip currently shown.
func (c *Compositor) Tooltip() (layer.Tooltip, bool) {
	return c.hover.Tooltip()
}

// ClearHover removes the hover marking and tooltip.
func (c *Compositor) ClearHover() {
	c.hover.Clear()
}

// Compose paints every layer, bottom to top, into a new frame.
func (c *Compositor) Compose() *layer.Frame {
	f := layer.NewFrame(c.width, c.height, c.GutterWidth())
	for _, l := range c.layers {
		l.Paint(f, c.vp)
	}
	return f
}

// Render composes a frame and writes it to b. Cells outside the frame are
// left untouched, so callers may draw around the surface before Render
// shows the screen.
func (c *Compositor) Render(b backend.Backend) {
	f := c.Compose()
	for y := range f.Height {
		for x := range f.Width {
			cell := f.Get(x, y)
			if cell.Rune == 0 {
				continue
			}
			b.SetCell(x, y, cell)
		}
	}
	if x, y, ok := c.input.CaretCell(f, c.vp); ok {
		b.ShowCursor(x, y)
	} else {
		b.HideCursor()
	}
	b.Show()
	c.frames++
}

// FrameCount returns the number of frames rendered.
func (c *Compositor) FrameCount() uint64 {
	return c.frames
}
