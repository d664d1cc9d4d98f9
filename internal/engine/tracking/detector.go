package tracking

import "fmt"

// Detector names accepted by NewDetector.
const (
	SingleHunk = "single-hunk"
	Myers      = "myers"
)

// Detector computes the line edits that turn oldLines into newLines.
type Detector interface {
	Detect(oldLines, newLines []string) Delta
}

// NewDetector returns the detector registered under name. An empty name
// selects the single-hunk detector.
func NewDetector(name string) (Detector, error) {
	switch name {
	case "", SingleHunk:
		return SingleHunkDetector{}, nil
	case Myers:
		return NewMyersDetector(DefaultDiffOptions()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDetector, name)
	}
}

// SingleHunkDetector attributes the whole line-count difference to the first
// line at which the two texts diverge.
//
// When the line counts are equal nothing is reported, even if line contents
// changed. When no divergence exists within the shorter text, the edit is
// placed just after its last line.
type SingleHunkDetector struct{}

// Detect implements Detector.
func (SingleHunkDetector) Detect(oldLines, newLines []string) Delta {
	oldCount, newCount := len(oldLines), len(newLines)

	switch {
	case newCount > oldCount:
		return Delta{Edits: []LineEdit{{
			Kind:     EditInsert,
			Position: firstDivergence(oldLines, newLines, oldCount),
			Count:    newCount - oldCount,
		}}}
	case newCount < oldCount:
		return Delta{Edits: []LineEdit{{
			Kind:     EditDelete,
			Position: firstDivergence(oldLines, newLines, newCount),
			Count:    oldCount - newCount,
		}}}
	default:
		return Delta{}
	}
}

// firstDivergence returns the 1-based line of the first mismatch within the
// first n lines, or n+1 when they all match.
func firstDivergence(oldLines, newLines []string, n int) int {
	for i := 0; i < n; i++ {
		if oldLines[i] != newLines[i] {
			return i + 1
		}
	}
	return n + 1
}

var (
	_ Detector = SingleHunkDetector{}
	_ Detector = (*MyersDetector)(nil)
)
