// Package buffer provides the immutable text snapshot the annotation engine
// works over.
//
// A Text is created from a raw string and never changes afterwards. Every
// edit produces a new Text; the previous one is kept only long enough for
// change detection to diff against it.
//
// Position Types:
//
//   - Offset: a character (rune) offset into the raw string, 0-based
//   - Position: a 1-based line with a 0-based character column
//
// All conversion functions clamp out-of-range input rather than failing, so
// callers handling pointer or selection events never need to validate first.
package buffer
