package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/annotext/internal/renderer/core"
)

// DefaultStyleName is the chroma style used when none is configured.
const DefaultStyleName = "monokai"

// Chroma highlights with a chroma lexer and style.
type Chroma struct {
	language string
	style    *chroma.Style
}

// NewChroma creates a highlighter. An empty or unknown language is
// detected from the text on every call; an unknown style falls back to
// chroma's default.
func NewChroma(language, styleName string) *Chroma {
	if styleName == "" {
		styleName = DefaultStyleName
	}
	return &Chroma{language: language, style: styles.Get(styleName)}
}

// Base returns the style of plain text, which the syntax layer paints
// under every span.
func (c *Chroma) Base() core.Style {
	entry := c.style.Get(chroma.Background)
	s := core.DefaultStyle()
	if entry.Colour.IsSet() {
		s.Foreground = fromColour(entry.Colour)
	}
	return s
}

// Highlight tokenizes source and returns spans for every token whose
// style differs from plain text.
func (c *Chroma) Highlight(source string) Lines {
	if source == "" {
		return nil
	}

	lexer := chroma.Coalesce(c.lexer(source))
	tokens, err := chroma.Tokenise(lexer, nil, source)
	if err != nil {
		return nil
	}

	base := c.style.Get(chroma.Text).Colour
	out := Lines{nil}
	line, col := 0, 0

	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		style, styled := resolve(c.style.Get(tok.Type), base)
		start := col
		for _, r := range tok.Value {
			if r != '\n' {
				col++
				continue
			}
			if styled && col > start {
				out[line] = append(out[line], Span{Start: start, End: col, Style: style})
			}
			out = append(out, nil)
			line++
			col, start = 0, 0
		}
		if styled && col > start {
			out[line] = append(out[line], Span{Start: start, End: col, Style: style})
		}
	}
	return out
}

func (c *Chroma) lexer(source string) chroma.Lexer {
	if c.language != "" {
		if l := lexers.Get(c.language); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

func resolve(entry chroma.StyleEntry, base chroma.Colour) (core.Style, bool) {
	s := core.DefaultStyle()
	if entry.Bold == chroma.Yes {
		s.Attributes |= core.AttrBold
	}
	if entry.Italic == chroma.Yes {
		s.Attributes |= core.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		s.Attributes |= core.AttrUnderline
	}
	if entry.Colour.IsSet() && entry.Colour != base {
		s.Foreground = fromColour(entry.Colour)
	}
	return s, s != core.DefaultStyle()
}

func fromColour(c chroma.Colour) core.Color {
	return core.ColorFromRGB(c.Red(), c.Green(), c.Blue())
}
