// Package pointer maps between pixel coordinates on the text surface and
// (line, character) positions in the text.
//
// Mapping is arithmetic over font metrics, never a measurement of rendered
// glyphs, so it is O(1) per line and deterministic:
//
//	line = floor((y + scrollTop - paddingTop) / lineHeight) + 1
//	char = floor((x + scrollLeft - paddingLeft) / charWidth)
//
// FontMetrics implements exactly this for monospace rendering. CellMetrics
// is a measured variant that accounts for double-width runes; it is
// injected through the same Metrics interface, so callers are unaffected
// by the choice.
package pointer
