package tracking

import (
	"fmt"
	"strings"
)

// EditKind categorizes a line edit.
type EditKind uint8

const (
	// EditInsert indicates lines were inserted.
	EditInsert EditKind = iota

	// EditDelete indicates lines were deleted.
	EditDelete
)

// String returns a human-readable representation of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// LineEdit is a single line-shift event.
type LineEdit struct {
	// Kind is insert or delete.
	Kind EditKind

	// Position is the 1-based line at which the edit happens.
	Position int

	// Count is the number of lines inserted or deleted. Always > 0.
	Count int
}

// String returns a human-readable representation of the edit.
func (e LineEdit) String() string {
	return fmt.Sprintf("%s %d@%d", e.Kind, e.Count, e.Position)
}

// Delta is the ordered set of line edits between two texts.
type Delta struct {
	Edits []LineEdit
}

// IsEmpty returns true if no lines were inserted or deleted.
func (d Delta) IsEmpty() bool {
	return len(d.Edits) == 0
}

// Insertions returns the insert edits in order.
func (d Delta) Insertions() []LineEdit {
	return d.filter(EditInsert)
}

// Deletions returns the delete edits in order.
func (d Delta) Deletions() []LineEdit {
	return d.filter(EditDelete)
}

func (d Delta) filter(kind EditKind) []LineEdit {
	var out []LineEdit
	for _, e := range d.Edits {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// NetLines returns the total change in line count.
func (d Delta) NetLines() int {
	n := 0
	for _, e := range d.Edits {
		if e.Kind == EditInsert {
			n += e.Count
		} else {
			n -= e.Count
		}
	}
	return n
}

// String returns a human-readable summary of the delta.
func (d Delta) String() string {
	if d.IsEmpty() {
		return "no line changes"
	}
	parts := make([]string, len(d.Edits))
	for i, e := range d.Edits {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
