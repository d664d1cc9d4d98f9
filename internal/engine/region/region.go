package region

import (
	"fmt"
	"time"
)

// Color is a region color as a "#RRGGBB" hex string.
type Color string

// Info holds the fields shared by every region kind.
type Info struct {
	// ID uniquely identifies the region. IDs sort in creation order.
	ID string

	// Name is the display label, "Function N" by default.
	Name string

	// Color is assigned from the palette by creation order.
	Color Color

	// OriginalContent is the selected text captured at creation.
	OriginalContent string

	// CreatedAt is the creation time.
	CreatedAt time.Time

	// Seq is the 0-based creation sequence number within the store.
	Seq int
}

// Region is a LineRegion or a CharRegion.
type Region interface {
	// RegionInfo returns the shared region fields.
	RegionInfo() Info

	// Lines returns the 1-based inclusive line range covered.
	Lines() (start, end int)

	// IsCharacterLevel reports whether the region is a sub-line span.
	IsCharacterLevel() bool

	// ContainsLine reports whether the given line is covered.
	ContainsLine(line int) bool

	// String returns a short description of the region.
	String() string

	withInfo(info Info) Region
}

// LineRegion covers whole lines.
type LineRegion struct {
	Info

	StartLine int
	EndLine   int
}

// RegionInfo implements Region.
func (r LineRegion) RegionInfo() Info { return r.Info }

// Lines implements Region.
func (r LineRegion) Lines() (start, end int) { return r.StartLine, r.EndLine }

// IsCharacterLevel implements Region.
func (r LineRegion) IsCharacterLevel() bool { return false }

// ContainsLine implements Region.
func (r LineRegion) ContainsLine(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// String implements Region.
func (r LineRegion) String() string {
	return fmt.Sprintf("%s lines %d-%d", r.Name, r.StartLine, r.EndLine)
}

func (r LineRegion) withInfo(info Info) Region {
	r.Info = info
	return r
}

// CharRegion covers the characters [StartChar, EndChar) of one line.
type CharRegion struct {
	Info

	Line      int
	StartChar int
	EndChar   int
}

// RegionInfo implements Region.
func (r CharRegion) RegionInfo() Info { return r.Info }

// Lines implements Region.
func (r CharRegion) Lines() (start, end int) { return r.Line, r.Line }

// IsCharacterLevel implements Region.
func (r CharRegion) IsCharacterLevel() bool { return true }

// ContainsLine implements Region.
func (r CharRegion) ContainsLine(line int) bool { return line == r.Line }

// ContainsChar reports whether the given position falls inside the span.
func (r CharRegion) ContainsChar(line, char int) bool {
	return line == r.Line && char >= r.StartChar && char < r.EndChar
}

// String implements Region.
func (r CharRegion) String() string {
	return fmt.Sprintf("%s line %d chars %d-%d", r.Name, r.Line, r.StartChar, r.EndChar)
}

func (r CharRegion) withInfo(info Info) Region {
	r.Info = info
	return r
}

var (
	_ Region = LineRegion{}
	_ Region = CharRegion{}
)
