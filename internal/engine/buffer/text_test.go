package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLineBookkeeping(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		lineCount int
		length    int
	}{
		{"empty", "", 1, 0},
		{"single line", "hello", 1, 5},
		{"trailing newline", "a\n", 2, 2},
		{"three lines", "a\nb\nc", 3, 5},
		{"multibyte", "héllo\nwörld", 2, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := New(tt.raw)
			if got := text.LineCount(); got != tt.lineCount {
				t.Errorf("LineCount() = %d, want %d", got, tt.lineCount)
			}
			if got := text.Len(); got != tt.length {
				t.Errorf("Len() = %d, want %d", got, tt.length)
			}
			if got := text.Raw(); got != tt.raw {
				t.Errorf("Raw() = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestLineAccess(t *testing.T) {
	text := New("alpha\nbeta\ngamma")

	if got := text.Line(2); got != "beta" {
		t.Errorf("Line(2) = %q, want beta", got)
	}
	if got := text.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
	if got := text.Line(4); got != "" {
		t.Errorf("Line(4) = %q, want empty", got)
	}
	if got := text.LineLen(3); got != 5 {
		t.Errorf("LineLen(3) = %d, want 5", got)
	}
	if !text.HasNewline(2) || text.HasNewline(3) {
		t.Error("only the last line should lack a newline")
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, text.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestPositionOf(t *testing.T) {
	text := New("a\nb\nc")

	tests := []struct {
		offset int
		want   Position
	}{
		{-3, Position{Line: 1, Char: 0}},
		{0, Position{Line: 1, Char: 0}},
		{1, Position{Line: 1, Char: 1}}, // the newline after "a"
		{2, Position{Line: 2, Char: 0}},
		{3, Position{Line: 2, Char: 1}},
		{4, Position{Line: 3, Char: 0}},
		{5, Position{Line: 3, Char: 1}},
		{99, Position{Line: 3, Char: 1}},
	}

	for _, tt := range tests {
		if got := text.PositionOf(tt.offset); got != tt.want {
			t.Errorf("PositionOf(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	text := New("func main() {\n\tfmt.Println(\"hi\")\n}\n")

	for offset := 0; offset <= text.Len(); offset++ {
		pos := text.PositionOf(offset)
		if got := text.OffsetOf(pos); got != offset {
			t.Fatalf("OffsetOf(PositionOf(%d)) = %d (pos %v)", offset, got, pos)
		}
	}
}

func TestOffsetOfClamps(t *testing.T) {
	text := New("ab\ncd")

	if got := text.OffsetOf(Position{Line: 9, Char: 9}); got != 5 {
		t.Errorf("OffsetOf past end = %d, want 5", got)
	}
	if got := text.OffsetOf(Position{Line: 1, Char: 7}); got != 2 {
		t.Errorf("OffsetOf past line end = %d, want 2", got)
	}
	if got := text.OffsetOf(Position{Line: -1, Char: -1}); got != 0 {
		t.Errorf("OffsetOf negative = %d, want 0", got)
	}
}

func TestSlice(t *testing.T) {
	text := New("héllo\nworld")

	if got := text.Slice(1, 4); got != "éll" {
		t.Errorf("Slice(1,4) = %q", got)
	}
	if got := text.Slice(4, 1); got != "éll" {
		t.Errorf("reversed Slice = %q", got)
	}
	if got := text.Slice(3, 3); got != "" {
		t.Errorf("empty Slice = %q", got)
	}
	if got := text.Slice(6, 100); got != "world" {
		t.Errorf("clamped Slice = %q", got)
	}
}

func TestNilText(t *testing.T) {
	var text *Text

	if text.LineCount() != 1 || text.Len() != 0 || text.Raw() != "" {
		t.Error("nil Text should behave like an empty text")
	}
	if got := text.PositionOf(4); got != (Position{Line: 1}) {
		t.Errorf("PositionOf on nil = %v", got)
	}
}

func TestWordAt(t *testing.T) {
	text := New("f = open(x_1)")

	tests := []struct {
		char       int
		start, end int
		word       string
	}{
		{0, 0, 1, "f"},
		{1, 1, 2, " "},
		{5, 4, 8, "open"},
		{9, 9, 12, "x_1"},
		{12, 12, 13, ")"},
		{40, 13, 13, ""},
	}

	for _, tt := range tests {
		start, end, word := text.WordAt(1, tt.char)
		if start != tt.start || end != tt.end || word != tt.word {
			t.Errorf("WordAt(1, %d) = (%d, %d, %q), want (%d, %d, %q)",
				tt.char, start, end, word, tt.start, tt.end, tt.word)
		}
	}
}
