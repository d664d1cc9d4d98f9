// Package statusline draws the bottom row of the display: the lesson title,
// region progress, mode flags, the last message and the caret position.
package statusline

import (
	"fmt"
	"strings"

	"github.com/dshills/annotext/internal/renderer/backend"
	"github.com/dshills/annotext/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

const separator = "  |  "

var (
	barStyle     = core.DefaultStyle().WithAttributes(core.AttrReverse)
	doneStyle    = barStyle.WithAttributes(core.AttrBold)
	warningStyle = core.DefaultStyle().WithBackground(core.MustHex("#F59E0B")).WithForeground(core.MustHex("#000000"))
	errorStyle   = core.DefaultStyle().WithBackground(core.MustHex("#EF4444")).WithForeground(core.MustHex("#FFFFFF")).WithAttributes(core.AttrBold)
)

// StatusLine renders the bottom status line.
type StatusLine struct {
	title string

	regions    int
	minRegions int

	explain  bool
	readOnly bool

	// Caret position, 1-based line and 0-based char.
	line int
	char int

	message     string
	messageType MessageType

	width int
}

// New creates an empty status line.
func New() *StatusLine {
	return &StatusLine{line: 1}
}

// SetTitle sets the lesson title.
func (s *StatusLine) SetTitle(title string) {
	s.title = title
}

// SetRegions sets the region count and how many the lesson asks for. want
// of zero hides the target.
func (s *StatusLine) SetRegions(count, want int) {
	s.regions, s.minRegions = count, want
}

// SetExplain sets the explain mode flag.
func (s *StatusLine) SetExplain(on bool) {
	s.explain = on
}

// SetReadOnly sets the read-only flag.
func (s *StatusLine) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

// SetPosition sets the caret position shown on the right.
func (s *StatusLine) SetPosition(line, char int) {
	s.line, s.char = line, char
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Done reports whether the lesson's region target has been reached.
func (s *StatusLine) Done() bool {
	return s.minRegions > 0 && s.regions >= s.minRegions
}

// Text returns the left-hand text of the status line.
func (s *StatusLine) Text() string {
	parts := s.parts()
	if s.message != "" {
		parts = append(parts, s.message)
	}
	return strings.Join(parts, separator)
}

func (s *StatusLine) parts() []string {
	parts := []string{" " + s.title}

	switch {
	case s.minRegions <= 0:
		parts = append(parts, fmt.Sprintf("regions %d", s.regions))
	case s.Done():
		parts = append(parts, fmt.Sprintf("regions %d/%d ok", s.regions, s.minRegions))
	default:
		parts = append(parts, fmt.Sprintf("regions %d/%d", s.regions, s.minRegions))
	}

	if s.explain {
		parts = append(parts, "EXPLAIN")
	}
	if s.readOnly {
		parts = append(parts, "READ-ONLY")
	}
	return parts
}

// Position returns the right-hand caret text, 1-based for display.
func (s *StatusLine) Position() string {
	return fmt.Sprintf("Ln %d, Col %d ", max(s.line, 1), s.char+1)
}

// Render draws the status line at the given row. The message takes the
// style of its type. The caret position is right-aligned when it fits.
func (s *StatusLine) Render(b backend.Backend, row int) {
	style := barStyle
	if s.Done() {
		style = doneStyle
	}
	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, core.NewStyledCell(' ', style))
	}

	pos := s.Position()
	posWidth := core.StringWidth(pos)
	limit := s.width
	if posWidth+1 < s.width {
		limit = s.width - posWidth - 1
	}

	col := s.draw(b, 0, row, limit, strings.Join(s.parts(), separator), style)
	if s.message != "" {
		col = s.draw(b, col, row, limit, separator, style)
		s.draw(b, col, row, limit, s.message, s.messageStyle(style))
	}

	if limit < s.width {
		s.draw(b, s.width-posWidth, row, s.width, pos, style)
	}
}

func (s *StatusLine) messageStyle(bar core.Style) core.Style {
	switch s.messageType {
	case MessageError:
		return errorStyle
	case MessageWarning:
		return warningStyle
	default:
		return bar
	}
}

// draw writes text from col, stopping before limit, and returns the next
// free column.
func (s *StatusLine) draw(b backend.Backend, col, row, limit int, text string, style core.Style) int {
	for _, r := range text {
		cell := core.NewStyledCell(r, style)
		w := max(cell.Width, 1)
		if col+w > limit {
			break
		}
		b.SetCell(col, row, cell)
		for i := 1; i < w; i++ {
			b.SetCell(col+i, row, core.Cell{Style: style})
		}
		col += w
	}
	return col
}
