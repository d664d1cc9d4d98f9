package region

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/engine/tracking"
)

// Store owns the set of regions over one text surface.
type Store struct {
	mu sync.RWMutex

	regions []Region
	seq     int

	allowCreate      bool
	detector         tracking.Detector
	palette          []Color
	namePrefix       string
	maxCharSelection int

	logger Logger
	now    func() time.Time
	newID  func() string
}

// NewStore creates an empty store. Region creation is allowed by default.
func NewStore(opts ...Option) *Store {
	s := &Store{
		allowCreate:      true,
		detector:         tracking.SingleHunkDetector{},
		palette:          append([]Color(nil), DefaultPalette...),
		namePrefix:       DefaultNamePrefix,
		maxCharSelection: DefaultMaxCharSelection,
		logger:           nopLogger{},
		now:              time.Now,
		newID:            newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCreationAllowed enables or disables Create.
func (s *Store) SetCreationAllowed(allowed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowCreate = allowed
}

// CreationAllowed reports whether Create is enabled.
func (s *Store) CreationAllowed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowCreate
}

// SetDetector replaces the change detector.
func (s *Store) SetDetector(d tracking.Detector) {
	if d == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detector = d
}

// Create tags the selected characters of buf as a new region.
//
// It is a no-op, returning false, when creation is disabled, the selection
// is empty, or the selection holds nothing but newlines. Trailing newlines
// are trimmed before the line range is computed so a region never ends on
// an extra blank line.
func (s *Store) Create(sel buffer.Span, buf *buffer.Text) (Region, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.allowCreate {
		s.logger.Debug("region creation disabled, ignoring selection %v", sel)
		return nil, false
	}
	if buf == nil {
		return nil, false
	}

	sel = buffer.Span{Start: buf.ClampOffset(sel.Start), End: buf.ClampOffset(sel.End)}.Normalize()
	if sel.IsEmpty() {
		s.logger.Debug("empty selection, no region created")
		return nil, false
	}

	content := strings.TrimRight(buf.Slice(sel.Start, sel.End), "\r\n")
	length := utf8.RuneCountInString(content)
	if length == 0 {
		s.logger.Debug("selection %v holds only newlines, no region created", sel)
		return nil, false
	}

	start := buf.PositionOf(sel.Start)
	end := buf.PositionOf(sel.Start + length - 1)

	info := Info{
		ID:              s.newID(),
		Name:            fmt.Sprintf("%s %d", s.namePrefix, s.seq+1),
		Color:           colorFor(s.palette, s.seq),
		OriginalContent: content,
		CreatedAt:       s.now(),
		Seq:             s.seq,
	}

	var r Region
	if start.Line == end.Line && Classify(length, terminatedLen(buf, start.Line), s.maxCharSelection) {
		r = CharRegion{Info: info, Line: start.Line, StartChar: start.Char, EndChar: start.Char + length}
	} else {
		r = LineRegion{Info: info, StartLine: start.Line, EndLine: end.Line}
	}

	s.seq++
	s.regions = append(s.regions, r)
	return r, true
}

// terminatedLen is the line's length including its newline, if any.
func terminatedLen(buf *buffer.Text, line int) int {
	n := buf.LineLen(line)
	if buf.HasNewline(line) {
		n++
	}
	return n
}

// Reanchor moves every region from its position in oldBuf to the matching
// position in newBuf and returns the updated regions in creation order.
func (s *Store) Reanchor(oldBuf, newBuf *buffer.Text) []Region {
	s.mu.Lock()
	defer s.mu.Unlock()

	if oldBuf == nil || newBuf == nil || len(s.regions) == 0 {
		return s.list()
	}

	delta := s.detector.Detect(oldBuf.Lines(), newBuf.Lines())
	for i, r := range s.regions {
		s.regions[i] = s.reanchor(r, delta, newBuf)
	}
	return s.list()
}

func (s *Store) reanchor(r Region, delta tracking.Delta, buf *buffer.Text) Region {
	switch r := r.(type) {
	case LineRegion:
		r.StartLine, r.EndLine = shiftLines(r.StartLine, r.EndLine, delta, buf.LineCount())
		return r

	case CharRegion:
		start, end := shiftLines(r.Line, r.Line, delta, buf.LineCount())

		if line, col, ok := locate(buf, start, end, r.OriginalContent, r.StartChar); ok {
			r.Line = line
			r.StartChar = col
			r.EndChar = col + utf8.RuneCountInString(r.OriginalContent)
			return r
		}

		if start == end && r.EndChar <= buf.LineLen(start) {
			r.Line = start
			return r
		}

		s.logger.Debug("region %s lost its text, widening to lines %d-%d", r.ID, start, end)
		return LineRegion{Info: r.Info, StartLine: start, EndLine: end}
	}
	return r
}

// shiftLines applies the delta's edits to a line range.
func shiftLines(start, end int, delta tracking.Delta, lineCount int) (int, int) {
	for _, e := range delta.Edits {
		n := e.Count
		if e.Kind == tracking.EditDelete {
			n = -n
		}
		switch {
		case e.Position < start:
			start += n
			end += n
		case e.Position <= end:
			end += n
		}
	}

	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	if lineCount < 1 {
		lineCount = 1
	}
	if start > lineCount {
		start = lineCount
	}
	if end > lineCount {
		end = lineCount
	}
	return start, end
}

// locate finds content on lines [start, end], preferring the first line
// that contains it and, within that line, the occurrence whose column is
// closest to near.
func locate(buf *buffer.Text, start, end int, content string, near int) (line, col int, ok bool) {
	if content == "" {
		return 0, 0, false
	}
	for line = start; line <= end; line++ {
		best := -1
		for _, c := range occurrences(buf.Line(line), content) {
			if best < 0 || abs(c-near) < abs(best-near) {
				best = c
			}
		}
		if best >= 0 {
			return line, best, true
		}
	}
	return 0, 0, false
}

// occurrences returns the rune columns of every, possibly overlapping,
// occurrence of sub in s.
func occurrences(s, sub string) []int {
	var cols []int
	offset := 0
	for {
		idx := strings.Index(s[offset:], sub)
		if idx < 0 {
			return cols
		}
		at := offset + idx
		cols = append(cols, utf8.RuneCountInString(s[:at]))
		_, size := utf8.DecodeRuneInString(s[at:])
		offset = at + size
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Remove deletes the region with the given ID.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.regions {
		if r.RegionInfo().ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return true
		}
	}
	return false
}

// Rename changes a region's display name.
func (s *Store) Rename(id, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.regions {
		info := r.RegionInfo()
		if info.ID == id {
			info.Name = name
			s.regions[i] = r.withInfo(info)
			return true
		}
	}
	return false
}

// Get returns the region with the given ID.
func (s *Store) Get(id string) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.regions {
		if r.RegionInfo().ID == id {
			return r, true
		}
	}
	return nil, false
}

// At returns the most recently created region covering the position,
// preferring character regions that contain the exact character.
func (s *Store) At(pos buffer.Position) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lineMatch Region
	for i := len(s.regions) - 1; i >= 0; i-- {
		switch r := s.regions[i].(type) {
		case CharRegion:
			if r.ContainsChar(pos.Line, pos.Char) {
				return r, true
			}
		case LineRegion:
			if lineMatch == nil && r.ContainsLine(pos.Line) {
				lineMatch = r
			}
		}
	}
	return lineMatch, lineMatch != nil
}

// List returns the regions in creation order.
func (s *Store) List() []Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list()
}

func (s *Store) list() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Len returns the number of regions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regions)
}

// Reset removes every region and restarts naming and coloring.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = nil
	s.seq = 0
}

// CharRegions returns the character regions in creation order.
func (s *Store) CharRegions() []CharRegion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []CharRegion
	for _, r := range s.regions {
		if cr, ok := r.(CharRegion); ok {
			out = append(out, cr)
		}
	}
	return out
}

// LineBackgrounds returns, for each line 1..lineCount at index line-1, the
// color of the latest line region covering it, or "" for none.
func (s *Store) LineBackgrounds(lineCount int) []Color {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lineCount < 0 {
		lineCount = 0
	}
	out := make([]Color, lineCount)
	for _, r := range s.regions {
		lr, ok := r.(LineRegion)
		if !ok {
			continue
		}
		for line := lr.StartLine; line <= lr.EndLine && line <= lineCount; line++ {
			out[line-1] = lr.Color
		}
	}
	return out
}

// SortedByPosition returns the regions ordered by start line, then start
// character, then creation order.
func SortedByPosition(regions []Region) []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	sort.SliceStable(out, func(i, j int) bool {
		si, _ := out[i].Lines()
		sj, _ := out[j].Lines()
		if si != sj {
			return si < sj
		}
		return startChar(out[i]) < startChar(out[j])
	})
	return out
}

func startChar(r Region) int {
	if cr, ok := r.(CharRegion); ok {
		return cr.StartChar
	}
	return 0
}
