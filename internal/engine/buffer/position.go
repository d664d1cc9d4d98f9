package buffer

import "fmt"

// Position is a line/character location in a Text.
// Line is 1-based, Char is a 0-based rune column within the line.
type Position struct {
	Line int
	Char int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Char)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Char < other.Char:
		return -1
	case p.Char > other.Char:
		return 1
	}
	return 0
}

// Span is a half-open range of character offsets [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no characters.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Normalize returns the span with Start <= End.
func (s Span) Normalize() Span {
	if s.End < s.Start {
		return Span{Start: s.End, End: s.Start}
	}
	return s
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}
