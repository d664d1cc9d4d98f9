// Package region manages user-tagged ranges over a text buffer.
//
// A region is either a [LineRegion], covering a 1-based inclusive range of
// whole lines, or a [CharRegion], covering a character span on one line.
// Both embed [Info], which carries the identity, display name, palette color
// and the verbatim text captured when the region was created.
//
// The [Store] owns every region. Callers never mutate a region directly:
// regions are created from a selection with [Store.Create], moved by
// [Store.Reanchor] after each text edit, and removed with [Store.Remove]
// or [Store.Reset].
//
// # Re-anchoring
//
// On every edit the store asks its [tracking.Detector] for the line edits
// between the old and new text and shifts each region:
//
//   - lines inserted before a region move it down
//   - lines inserted inside a region grow it
//   - deletions mirror insertions
//
// Character regions then try to find their original text on the shifted
// line(s) and snap to the exact occurrence nearest their previous column.
// When the text is gone, the shifted line range is kept; a character span
// that no longer fits its line is widened to a line region.
//
// All store operations are total. Degenerate input such as an empty
// selection or out-of-range offsets is clamped or ignored, never reported
// as an error.
package region
