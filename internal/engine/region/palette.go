package region

// DefaultPalette is the fixed set of region colors, cycled by creation order.
var DefaultPalette = []Color{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
}

// DefaultNamePrefix is the prefix of generated region names.
const DefaultNamePrefix = "Function"

// DefaultMaxCharSelection is the longest selection that may become a
// character region.
const DefaultMaxCharSelection = 50

// colorFor returns the palette color for the given creation sequence.
func colorFor(palette []Color, seq int) Color {
	if len(palette) == 0 {
		return ""
	}
	return palette[seq%len(palette)]
}

// Classify reports whether a single-line selection of selectedLen characters
// on a line of lineLen characters is small enough to be a character region:
// at most maxChars and at most half the line. lineLen counts the line's
// terminating newline when it has one.
func Classify(selectedLen, lineLen, maxChars int) bool {
	if selectedLen <= 0 {
		return false
	}
	return selectedLen <= maxChars && selectedLen <= lineLen/2
}
