package buffer

import "unicode"

// isWordRune reports whether r belongs to an identifier-like word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordAt returns the word touching the given character of a 1-based line.
// start and end are rune columns of the half-open word range. When the
// character is not on a word, the single character under it is returned;
// past the end of the line an empty word at the line end is returned.
func (t *Text) WordAt(line, char int) (start, end int, word string) {
	runes := []rune(t.Line(line))
	if char < 0 {
		char = 0
	}
	if char >= len(runes) {
		return len(runes), len(runes), ""
	}

	if !isWordRune(runes[char]) {
		return char, char + 1, string(runes[char])
	}

	start = char
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end = char
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return start, end, string(runes[start:end])
}
