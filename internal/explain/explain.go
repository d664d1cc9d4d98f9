// Package explain maps hovered code to the explanation written for it.
package explain

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Entry is an explanation anchored to a code snippet on a line.
type Entry struct {
	// Line is the 1-based line the snippet appears on.
	Line int `yaml:"line"`
	// Code is a literal substring expected on that line.
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// Query describes what is under the pointer.
type Query struct {
	Line int
	// Snippet is the word under the pointer. It is carried for display;
	// matching uses LineText and Char.
	Snippet  string
	LineText string
	// Char is the 0-based character position on the line.
	Char int
}

// Index is a read-only lookup table of entries grouped by line.
type Index struct {
	byLine map[int][]Entry
	count  int
}

// NewIndex builds an index. Entries keep their order within a line.
func NewIndex(entries []Entry) *Index {
	idx := &Index{byLine: make(map[int][]Entry)}
	for _, e := range entries {
		idx.byLine[e.Line] = append(idx.byLine[e.Line], e)
		idx.count++
	}
	return idx
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.count
}

// ForLine returns the entries for a line in their original order.
func (idx *Index) ForLine(line int) []Entry {
	if idx == nil {
		return nil
	}
	entries := idx.byLine[line]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds the explanation for a hovered position.
//
// The first entry on the line whose trimmed code occurs in the line text
// with Char inside that occurrence wins. Failing that, the first entry on
// the line is returned regardless of Char. ok is false only when the line
// has no entries.
func (idx *Index) Lookup(q Query) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	entries := idx.byLine[q.Line]
	if len(entries) == 0 {
		return Entry{}, false
	}
	for _, e := range entries {
		start, end, ok := Span(e, q.LineText)
		if ok && q.Char >= start && q.Char < end {
			return e, true
		}
	}
	return entries[0], true
}

// Span returns the character range of the first occurrence of the entry's
// trimmed code in lineText.
func Span(e Entry, lineText string) (start, end int, ok bool) {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		return 0, 0, false
	}
	i := strings.Index(lineText, code)
	if i < 0 {
		return 0, 0, false
	}
	start = utf8.RuneCountInString(lineText[:i])
	return start, start + utf8.RuneCountInString(code), true
}

// Unanchored returns the entries whose code does not occur on their line.
// Such entries can only be reached through the line fallback.
func (idx *Index) Unanchored(line func(int) string) []Entry {
	if idx == nil || line == nil {
		return nil
	}
	var out []Entry
	for _, entries := range idx.byLine {
		for _, e := range entries {
			if _, _, ok := Span(e, line(e.Line)); !ok {
				out = append(out, e)
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Line, b.Line)
	})
	return out
}
