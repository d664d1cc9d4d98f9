package buffer

import "strings"

// Text is an immutable snapshot of source text split into lines.
type Text struct {
	raw   string
	lines []string

	// lineRunes[i] is the rune length of lines[i], without its newline.
	lineRunes []int

	// lineStarts[i] is the rune offset at which lines[i] begins.
	lineStarts []int

	runeLen int
}

// New creates a Text from raw source. The raw string is split on '\n';
// an empty string yields a single empty line.
func New(raw string) *Text {
	lines := strings.Split(raw, "\n")
	t := &Text{
		raw:        raw,
		lines:      lines,
		lineRunes:  make([]int, len(lines)),
		lineStarts: make([]int, len(lines)),
	}

	offset := 0
	for i, line := range lines {
		n := len([]rune(line))
		t.lineStarts[i] = offset
		t.lineRunes[i] = n
		offset += n + 1
	}
	t.runeLen = offset - 1

	return t
}

// Empty returns a Text with no content.
func Empty() *Text {
	return New("")
}

// Raw returns the original source string.
func (t *Text) Raw() string {
	if t == nil {
		return ""
	}
	return t.raw
}

// Len returns the length of the text in characters.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return t.runeLen
}

// LineCount returns the number of lines. It is always at least 1.
func (t *Text) LineCount() int {
	if t == nil {
		return 1
	}
	return len(t.lines)
}

// Lines returns a copy of the lines.
func (t *Text) Lines() []string {
	if t == nil {
		return []string{""}
	}
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Line returns the content of the given 1-based line without its newline.
// Out-of-range lines return an empty string.
func (t *Text) Line(line int) string {
	if t == nil || line < 1 || line > len(t.lines) {
		return ""
	}
	return t.lines[line-1]
}

// LineLen returns the character length of the given 1-based line.
func (t *Text) LineLen(line int) int {
	if t == nil || line < 1 || line > len(t.lines) {
		return 0
	}
	return t.lineRunes[line-1]
}

// HasNewline reports whether the given line is terminated by a newline.
// Only the last line lacks one.
func (t *Text) HasNewline(line int) bool {
	return t != nil && line >= 1 && line < len(t.lines)
}

// ClampLine clamps a 1-based line number into [1, LineCount()].
func (t *Text) ClampLine(line int) int {
	if line < 1 {
		return 1
	}
	if n := t.LineCount(); line > n {
		return n
	}
	return line
}

// ClampOffset clamps a character offset into [0, Len()].
func (t *Text) ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if n := t.Len(); offset > n {
		return n
	}
	return offset
}

// LineStartOffset returns the character offset of the first character of
// the given 1-based line. The line is clamped.
func (t *Text) LineStartOffset(line int) int {
	if t == nil {
		return 0
	}
	return t.lineStarts[t.ClampLine(line)-1]
}

// PositionOf converts a character offset to a line/character position by
// walking cumulative line lengths. The offset is clamped. An offset that
// points at a newline maps to the end of that line.
func (t *Text) PositionOf(offset int) Position {
	if t == nil {
		return Position{Line: 1}
	}
	offset = t.ClampOffset(offset)

	lo, hi := 0, len(t.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Position{Line: lo + 1, Char: offset - t.lineStarts[lo]}
}

// OffsetOf converts a position to a character offset. Line and character
// are clamped to the text.
func (t *Text) OffsetOf(pos Position) int {
	if t == nil {
		return 0
	}
	line := t.ClampLine(pos.Line)
	char := pos.Char
	if char < 0 {
		char = 0
	}
	if n := t.lineRunes[line-1]; char > n {
		char = n
	}
	return t.lineStarts[line-1] + char
}

// Slice returns the text between two character offsets. The offsets are
// clamped and ordered.
func (t *Text) Slice(start, end int) string {
	if t == nil {
		return ""
	}
	span := Span{Start: t.ClampOffset(start), End: t.ClampOffset(end)}.Normalize()
	if span.IsEmpty() {
		return ""
	}
	runes := []rune(t.raw)
	return string(runes[span.Start:span.End])
}
