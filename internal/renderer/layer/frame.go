package layer

import (
	"github.com/dshills/annotext/internal/renderer/core"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// Frame is the cell grid layers paint into. Columns [0, GutterWidth) hold
// the gutter; the text area starts at GutterWidth. Row 0 shows the first
// visible line.
type Frame struct {
	Width       int
	Height      int
	GutterWidth int
	cells       [][]core.Cell
}

// NewFrame creates a blank frame.
func NewFrame(width, height, gutterWidth int) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{Width: width, Height: height, GutterWidth: min(max(gutterWidth, 0), width)}
	f.cells = make([][]core.Cell, height)
	for y := range f.cells {
		f.cells[y] = make([]core.Cell, width)
		for x := range f.cells[y] {
			f.cells[y][x] = core.EmptyCell()
		}
	}
	return f
}

// Get returns a cell, or an empty cell outside the frame.
func (f *Frame) Get(x, y int) core.Cell {
	if !f.inside(x, y) {
		return core.EmptyCell()
	}
	return f.cells[y][x]
}

// Set replaces a cell. Positions outside the frame are ignored.
func (f *Frame) Set(x, y int, c core.Cell) {
	if f.inside(x, y) {
		f.cells[y][x] = c
	}
}

// SetRune places a rune, keeping the cell's current style underneath s.
// A double-width rune also claims the next cell.
func (f *Frame) SetRune(x, y int, r rune, s core.Style) {
	if !f.inside(x, y) {
		return
	}
	if r == '\t' {
		r = ' '
	}
	cell := f.cells[y][x]
	cell.Rune = r
	cell.Width = core.RuneWidth(r)
	cell.Style = s.Over(cell.Style)
	f.cells[y][x] = cell
	if cell.Width == 2 && f.inside(x+1, y) {
		f.cells[y][x+1] = core.Cell{Style: cell.Style}
	}
}

// Restyle applies fn to a cell's style.
func (f *Frame) Restyle(x, y int, fn func(core.Style) core.Style) {
	if f.inside(x, y) {
		f.cells[y][x].Style = fn(f.cells[y][x].Style)
	}
}

// Rows returns the number of text rows the frame shows for vp.
func (f *Frame) Rows(vp *viewport.State) int {
	return min(f.Height, vp.VisibleLines())
}

// Row returns the frame row of a 1-based line, and whether it is visible.
func (f *Frame) Row(vp *viewport.State, line int) (int, bool) {
	row := line - vp.FirstLine()
	return row, row >= 0 && row < f.Rows(vp)
}

// EachChar walks the characters of a visible line and calls fn with the
// frame column of each character that falls inside the text area.
func (f *Frame) EachChar(vp *viewport.State, line int, text string, fn func(char int, r rune, x, y int)) {
	y, ok := f.Row(vp, line)
	if !ok {
		return
	}
	x := f.GutterWidth - vp.FirstColumn()
	char := 0
	for _, r := range text {
		if x >= f.Width {
			return
		}
		if x >= f.GutterWidth {
			fn(char, r, x, y)
		}
		x += max(core.RuneWidth(r), 1)
		char++
	}
}

// Column returns the frame column of a character on a line.
func (f *Frame) Column(vp *viewport.State, text string, char int) int {
	x := f.GutterWidth - vp.FirstColumn()
	i := 0
	for _, r := range text {
		if i == char {
			return x
		}
		x += max(core.RuneWidth(r), 1)
		i++
	}
	return x + (char - i)
}

func (f *Frame) inside(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}
