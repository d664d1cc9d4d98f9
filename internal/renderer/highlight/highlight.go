// Package highlight turns source text into styled spans for the syntax
// layer. The transform is opaque to the compositor: it hands over the
// whole text and paints whatever spans come back.
package highlight

import "github.com/dshills/annotext/internal/renderer/core"

// Span styles the characters [Start, End) of one line.
type Span struct {
	Start int
	End   int
	Style core.Style
}

// Lines holds the spans of each line; index 0 is line 1.
type Lines [][]Span

// At returns the spans for a 1-based line.
func (l Lines) At(line int) []Span {
	if line < 1 || line > len(l) {
		return nil
	}
	return l[line-1]
}

// StyleAt returns the style of a character, or the default style.
func (l Lines) StyleAt(line, char int) core.Style {
	for _, s := range l.At(line) {
		if char >= s.Start && char < s.End {
			return s.Style
		}
	}
	return core.DefaultStyle()
}

// Highlighter styles a complete source text.
type Highlighter interface {
	Highlight(source string) Lines
}

// Func adapts a function to Highlighter.
type Func func(source string) Lines

func (f Func) Highlight(source string) Lines {
	return f(source)
}

// Plain produces no spans.
type Plain struct{}

func (Plain) Highlight(string) Lines { return nil }
