// Package viewport holds the scroll and size state shared by every layer
// of the text surface.
//
// Scroll offsets are in pixels, in the same units as the font metrics used
// for pointer mapping. In the terminal front-end a pixel is one cell.
package viewport

import "math"

// Scroll is a scroll offset in pixels.
type Scroll struct {
	Top  float64
	Left float64
}

// State is the viewport value owned by the compositor. Every layer paints
// from the same State, so they can never disagree on scroll position.
type State struct {
	Scroll Scroll

	// LineHeight and CharWidth convert pixels to lines and columns.
	LineHeight float64
	CharWidth  float64

	// Rows and Cols are the size of the text area in lines and columns.
	Rows int
	Cols int

	// MaxVisibleLines caps Rows when positive.
	MaxVisibleLines int

	// Lines and Columns describe the content: its line count and the
	// width of its longest line.
	Lines   int
	Columns int
}

// New creates a State with the given metrics and size.
func New(lineHeight, charWidth float64, rows, cols int) *State {
	s := &State{LineHeight: lineHeight, CharWidth: charWidth, Lines: 1}
	s.Resize(rows, cols)
	return s
}

func (s *State) lineHeight() float64 {
	if s.LineHeight <= 0 {
		return 1
	}
	return s.LineHeight
}

func (s *State) charWidth() float64 {
	if s.CharWidth <= 0 {
		return 1
	}
	return s.CharWidth
}

// Resize sets the text area size and re-clamps the scroll offset.
func (s *State) Resize(rows, cols int) {
	s.Rows = max(rows, 0)
	s.Cols = max(cols, 0)
	s.Scroll = s.Clamp(s.Scroll)
}

// SetContent records the content size and re-clamps the scroll offset.
func (s *State) SetContent(lines, columns int) {
	s.Lines = max(lines, 1)
	s.Columns = max(columns, 0)
	s.Scroll = s.Clamp(s.Scroll)
}

// VisibleLines returns how many lines fit, honoring MaxVisibleLines.
func (s *State) VisibleLines() int {
	if s.MaxVisibleLines > 0 && s.MaxVisibleLines < s.Rows {
		return s.MaxVisibleLines
	}
	return s.Rows
}

// MaxScroll returns the largest allowed scroll offset.
func (s *State) MaxScroll() Scroll {
	return Scroll{
		Top:  float64(max(s.Lines-s.VisibleLines(), 0)) * s.lineHeight(),
		Left: float64(max(s.Columns-s.Cols+1, 0)) * s.charWidth(),
	}
}

// Clamp limits sc to [0, MaxScroll].
func (s *State) Clamp(sc Scroll) Scroll {
	limit := s.MaxScroll()
	return Scroll{
		Top:  math.Min(math.Max(sc.Top, 0), limit.Top),
		Left: math.Min(math.Max(sc.Left, 0), limit.Left),
	}
}

// SetScroll clamps and stores sc and returns the applied offset.
func (s *State) SetScroll(sc Scroll) Scroll {
	s.Scroll = s.Clamp(sc)
	return s.Scroll
}

// ScrollBy moves the offset by whole lines and columns.
func (s *State) ScrollBy(lines, cols int) Scroll {
	return s.SetScroll(Scroll{
		Top:  s.Scroll.Top + float64(lines)*s.lineHeight(),
		Left: s.Scroll.Left + float64(cols)*s.charWidth(),
	})
}

// FirstLine returns the 1-based line at the top of the viewport.
func (s *State) FirstLine() int {
	return int(math.Floor(s.Scroll.Top/s.lineHeight()+1e-9)) + 1
}

// FirstColumn returns the 0-based column at the left edge.
func (s *State) FirstColumn() int {
	return int(math.Floor(s.Scroll.Left/s.charWidth() + 1e-9))
}

// VisibleRange returns the first and last visible lines, inclusive.
func (s *State) VisibleRange() (first, last int) {
	first = s.FirstLine()
	last = min(first+s.VisibleLines()-1, s.Lines)
	return first, last
}

// EnsureVisible scrolls the minimum amount needed to show (line, col).
func (s *State) EnsureVisible(line, col int) Scroll {
	first, _ := s.VisibleRange()
	sc := s.Scroll
	rows := max(s.VisibleLines(), 1)
	switch {
	case line < first:
		sc.Top = float64(line-1) * s.lineHeight()
	case line > first+rows-1:
		sc.Top = float64(line-rows) * s.lineHeight()
	}

	left := s.FirstColumn()
	cols := max(s.Cols, 1)
	switch {
	case col < left:
		sc.Left = float64(col) * s.charWidth()
	case col > left+cols-1:
		sc.Left = float64(col-cols+1) * s.charWidth()
	}
	return s.SetScroll(sc)
}
