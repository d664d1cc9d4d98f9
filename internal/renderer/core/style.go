package core

// Attribute is a set of text attributes.
type Attribute uint8

const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has reports whether a contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle uses the terminal's default colors and no attributes.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns s with the foreground replaced.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns s with the background replaced.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithAttributes returns s with attrs added.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes |= attrs
	return s
}

// Over paints s on top of below: non-default colors of s win and
// attributes are combined.
func (s Style) Over(below Style) Style {
	out := below
	if !s.Foreground.IsDefault() {
		out.Foreground = s.Foreground
	}
	if !s.Background.IsDefault() {
		out.Background = s.Background
	}
	out.Attributes |= s.Attributes
	return out
}
