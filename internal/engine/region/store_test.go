package region

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/engine/tracking"
)

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// newTestStore returns a store with deterministic IDs and timestamps.
func newTestStore(opts ...Option) *Store {
	n := 0
	base := []Option{
		WithClock(func() time.Time { return testTime }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("r%d", n)
		}),
	}
	return NewStore(append(base, opts...)...)
}

// mustCreate creates a region from the first occurrence of sel in text.
func mustCreate(t *testing.T, s *Store, text *buffer.Text, sel string) Region {
	t.Helper()
	idx := strings.Index(text.Raw(), sel)
	if idx < 0 {
		t.Fatalf("%q not found in text", sel)
	}
	start := len([]rune(text.Raw()[:idx]))
	r, ok := s.Create(buffer.Span{Start: start, End: start + len([]rune(sel))}, text)
	if !ok {
		t.Fatalf("Create(%q) was a no-op", sel)
	}
	return r
}

func TestCreateSingleCharacterScenario(t *testing.T) {
	s := newTestStore()
	text := buffer.New("a\nb\nc")

	r, ok := s.Create(buffer.Span{Start: 2, End: 3}, text)
	if !ok {
		t.Fatal("Create returned no region")
	}

	want := CharRegion{
		Info: Info{
			ID:              "r1",
			Name:            "Function 1",
			Color:           DefaultPalette[0],
			OriginalContent: "b",
			CreatedAt:       testTime,
		},
		Line:      2,
		StartChar: 0,
		EndChar:   1,
	}
	if diff := cmp.Diff(Region(want), r); diff != "" {
		t.Errorf("Create() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateNoOps(t *testing.T) {
	text := buffer.New("one\ntwo\n\n")

	t.Run("empty selection", func(t *testing.T) {
		s := newTestStore()
		if _, ok := s.Create(buffer.Span{Start: 2, End: 2}, text); ok {
			t.Error("empty selection created a region")
		}
	})

	t.Run("only newlines", func(t *testing.T) {
		s := newTestStore()
		if _, ok := s.Create(buffer.Span{Start: 7, End: 9}, text); ok {
			t.Error("newline-only selection created a region")
		}
	})

	t.Run("creation disabled", func(t *testing.T) {
		s := newTestStore(WithCreationAllowed(false))
		if _, ok := s.Create(buffer.Span{Start: 0, End: 3}, text); ok {
			t.Error("disabled store created a region")
		}
		s.SetCreationAllowed(true)
		if _, ok := s.Create(buffer.Span{Start: 0, End: 3}, text); !ok {
			t.Error("re-enabled store did not create a region")
		}
	})

	t.Run("nil buffer", func(t *testing.T) {
		s := newTestStore()
		if _, ok := s.Create(buffer.Span{Start: 0, End: 3}, nil); ok {
			t.Error("nil buffer created a region")
		}
	})

	if got := newTestStore().Len(); got != 0 {
		t.Errorf("fresh store Len() = %d", got)
	}
}

func TestCreateTrimsTrailingNewlines(t *testing.T) {
	s := newTestStore()
	text := buffer.New("func a() {\n\treturn\n}\n\nnext")

	// Select lines 1-3 including the newline after "}" and the blank line.
	r, ok := s.Create(buffer.Span{Start: 0, End: 22}, text)
	if !ok {
		t.Fatal("Create returned no region")
	}
	lr, isLine := r.(LineRegion)
	if !isLine {
		t.Fatalf("got %T, want LineRegion", r)
	}
	if lr.StartLine != 1 || lr.EndLine != 3 {
		t.Errorf("lines = %d-%d, want 1-3", lr.StartLine, lr.EndLine)
	}
	if lr.OriginalContent != "func a() {\n\treturn\n}" {
		t.Errorf("OriginalContent = %q", lr.OriginalContent)
	}
}

func TestCreateClampsAndOrdersSelection(t *testing.T) {
	s := newTestStore()
	text := buffer.New("first line\nsecond line")

	r, ok := s.Create(buffer.Span{Start: 500, End: -4}, text)
	if !ok {
		t.Fatal("Create returned no region")
	}
	start, end := r.Lines()
	if start != 1 || end != 2 {
		t.Errorf("lines = %d-%d, want 1-2", start, end)
	}
}

func TestCreateSpansSelectedLines(t *testing.T) {
	raw := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}"
	text := buffer.New(raw)

	for s := 0; s < text.Len(); s++ {
		for e := s + 1; e <= text.Len(); e++ {
			if strings.HasSuffix(text.Slice(s, e), "\n") {
				continue // trimmed case covered separately
			}
			store := newTestStore()
			r, ok := store.Create(buffer.Span{Start: s, End: e}, text)
			if !ok {
				t.Fatalf("Create(%d,%d) was a no-op", s, e)
			}
			start, end := r.Lines()
			if want := text.PositionOf(s).Line; start != want {
				t.Fatalf("Create(%d,%d) start = %d, want %d", s, e, start, want)
			}
			if want := text.PositionOf(e - 1).Line; end != want {
				t.Fatalf("Create(%d,%d) end = %d, want %d", s, e, end, want)
			}
		}
	}
}

func TestClassification(t *testing.T) {
	// Line 1 holds 10 characters plus its newline.
	text := buffer.New("0123456789\nx")
	lineLen := 11

	for l := 1; l <= 10; l++ {
		s := newTestStore()
		r, ok := s.Create(buffer.Span{Start: 0, End: l}, text)
		if !ok {
			t.Fatalf("Create(0,%d) was a no-op", l)
		}
		want := l <= min(DefaultMaxCharSelection, lineLen/2)
		if got := r.IsCharacterLevel(); got != want {
			t.Errorf("selection of %d chars: IsCharacterLevel() = %v, want %v", l, got, want)
		}
	}
}

// The line length used for classification counts the terminating newline.
// This departs from a half-of-visible-characters rule: "ab" on "abc\n" is
// 2 <= 4/2 and so character-level, where counting only "abc" gives 3/2 = 1
// and a line region. The newline is counted so that a single character on
// a one-character line that is not the last ("a\nb\nc") stays
// character-level.
func TestClassificationCountsNewline(t *testing.T) {
	tests := []struct {
		text string
		sel  buffer.Span
		want bool
	}{
		{"abc\nx", buffer.Span{Start: 0, End: 2}, true},
		{"abc", buffer.Span{Start: 0, End: 2}, false},
		{"a\nb\nc", buffer.Span{Start: 2, End: 3}, true},
		{"a\nb\nc", buffer.Span{Start: 4, End: 5}, false},
	}

	for _, tt := range tests {
		s := newTestStore()
		r, ok := s.Create(tt.sel, buffer.New(tt.text))
		if !ok {
			t.Fatalf("Create(%v) on %q was a no-op", tt.sel, tt.text)
		}
		if got := r.IsCharacterLevel(); got != tt.want {
			t.Errorf("Create(%v) on %q: IsCharacterLevel() = %v, want %v", tt.sel, tt.text, got, tt.want)
		}
	}
}

func TestClassifyMaxChars(t *testing.T) {
	if Classify(51, 200, DefaultMaxCharSelection) {
		t.Error("51 characters should exceed the limit")
	}
	if !Classify(50, 200, DefaultMaxCharSelection) {
		t.Error("50 characters on a long line should be character level")
	}
	if Classify(0, 200, DefaultMaxCharSelection) {
		t.Error("empty selection should never classify")
	}
}

func TestColorsAndNamesFollowCreationOrder(t *testing.T) {
	palette := []Color{"#111111", "#222222"}
	s := newTestStore(WithPalette(palette), WithNamePrefix("Block"))
	text := buffer.New("a\nb\nc\nd")

	var got []Info
	for i := 0; i < 3; i++ {
		r, ok := s.Create(buffer.Span{Start: i * 2, End: i*2 + 1}, text)
		if !ok {
			t.Fatalf("Create #%d was a no-op", i)
		}
		got = append(got, r.RegionInfo())
	}

	wantColors := []Color{"#111111", "#222222", "#111111"}
	for i, info := range got {
		if info.Color != wantColors[i] {
			t.Errorf("region %d color = %s, want %s", i, info.Color, wantColors[i])
		}
		if want := fmt.Sprintf("Block %d", i+1); info.Name != want {
			t.Errorf("region %d name = %q, want %q", i, info.Name, want)
		}
		if info.Seq != i {
			t.Errorf("region %d seq = %d", i, info.Seq)
		}
	}

	// Removing a region does not reuse its sequence number.
	s.Remove(got[2].ID)
	r, _ := s.Create(buffer.Span{Start: 6, End: 7}, text)
	if r.RegionInfo().Name != "Block 4" {
		t.Errorf("name after remove = %q, want Block 4", r.RegionInfo().Name)
	}

	s.Reset()
	r, _ = s.Create(buffer.Span{Start: 0, End: 1}, text)
	if r.RegionInfo().Name != "Block 1" || r.RegionInfo().Color != "#111111" {
		t.Errorf("after Reset got %q %s", r.RegionInfo().Name, r.RegionInfo().Color)
	}
}

func TestReanchorIdempotent(t *testing.T) {
	s := newTestStore()
	text := buffer.New("x = x + 1\ny = x\nz = y\nreturn z")

	mustCreate(t, s, text, "y = x\nz = y")
	// Second "x" on the line: the first occurrence must not steal it.
	if _, ok := s.Create(buffer.Span{Start: 4, End: 5}, text); !ok {
		t.Fatal("Create was a no-op")
	}
	before := s.List()

	after := s.Reanchor(text, buffer.New(text.Raw()))
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("Reanchor(T, T) changed regions (-before +after):\n%s", diff)
	}
}

func TestReanchorLineShifts(t *testing.T) {
	five := "l1\nl2\nl3\nl4\nl5"

	tests := []struct {
		name      string
		select_   string
		updated   string
		wantStart int
		wantEnd   int
	}{
		{"insert two lines at top", "l3", "n1\nn2\n" + five, 5, 5},
		{"insert inside range", "l2\nl3\nl4", "l1\nl2\nx\nl3\nl4\nl5", 2, 5},
		{"insert after range", "l2", "l1\nl2\nl3\nnew\nl4\nl5", 2, 2},
		{"insert at first line grows", "l3", "l1\nl2\nnew\nl3\nl4\nl5", 3, 4},
		{"delete before", "l4", "l2\nl3\nl4\nl5", 3, 3},
		{"delete inside range", "l2\nl3\nl4", "l1\nl2\nl4\nl5", 2, 3},
		{"delete covering start clamps", "l2", "l5", 1, 1},
		{"substitution keeps range", "l2\nl3", "l1\nL2\nl3\nl4\nl5", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			text := buffer.New(five)
			mustCreate(t, s, text, tt.select_)

			regions := s.Reanchor(text, buffer.New(tt.updated))
			if len(regions) != 1 {
				t.Fatalf("got %d regions", len(regions))
			}
			start, end := regions[0].Lines()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("lines = %d-%d, want %d-%d", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReanchorPropertyInsertBefore(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	text := buffer.New(strings.Join(lines, "\n"))

	for startLine := 2; startLine <= 6; startLine++ {
		for k := 1; k <= 3; k++ {
			for at := 1; at < startLine; at++ {
				s := newTestStore()
				sel := strings.Join(lines[startLine-1:startLine+1], "\n")
				mustCreate(t, s, text, sel)

				inserted := make([]string, k)
				for i := range inserted {
					inserted[i] = fmt.Sprintf("new%d", i)
				}
				updated := append(append(append([]string{}, lines[:at-1]...), inserted...), lines[at-1:]...)

				r := s.Reanchor(text, buffer.New(strings.Join(updated, "\n")))[0]
				start, end := r.Lines()
				if start != startLine+k || end != startLine+1+k {
					t.Fatalf("start %d, insert %d at %d: got %d-%d", startLine, k, at, start, end)
				}
			}
		}
	}
}

func TestReanchorCharacterRegions(t *testing.T) {
	t.Run("same-line edit relocates exactly", func(t *testing.T) {
		s := newTestStore()
		text := buffer.New("x = foo(bar)\nnext")
		mustCreate(t, s, text, "foo")

		r := s.Reanchor(text, buffer.New("xy = foo(bar)\nnext"))[0]
		want := CharRegion{Info: r.RegionInfo(), Line: 1, StartChar: 5, EndChar: 8}
		if diff := cmp.Diff(Region(want), r); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lines inserted above", func(t *testing.T) {
		s := newTestStore()
		text := buffer.New("a\nx = foo(bar)")
		mustCreate(t, s, text, "foo")

		r := s.Reanchor(text, buffer.New("new\na\nx = foo(bar)"))[0]
		cr, ok := r.(CharRegion)
		if !ok {
			t.Fatalf("got %T, want CharRegion", r)
		}
		if cr.Line != 3 || cr.StartChar != 4 || cr.EndChar != 7 {
			t.Errorf("got line %d chars %d-%d, want 3 4-7", cr.Line, cr.StartChar, cr.EndChar)
		}
	})

	t.Run("line split collapses back to one line", func(t *testing.T) {
		s := newTestStore()
		text := buffer.New("a\nvalue := compute(x)\nb")
		mustCreate(t, s, text, "compute")

		// Enter pressed at the start of line 2 pushes its text to line 3.
		r := s.Reanchor(text, buffer.New("a\n\nvalue := compute(x)\nb"))[0]
		cr, ok := r.(CharRegion)
		if !ok {
			t.Fatalf("got %T, want CharRegion", r)
		}
		if cr.Line != 3 || cr.StartChar != 9 {
			t.Errorf("got line %d char %d, want 3 9", cr.Line, cr.StartChar)
		}
	})

	t.Run("text gone keeps offsets that still fit", func(t *testing.T) {
		s := newTestStore()
		text := buffer.New("x = foo(bar)\nnext")
		mustCreate(t, s, text, "foo")

		r := s.Reanchor(text, buffer.New("x = baz(bar)\nnext"))[0]
		cr, ok := r.(CharRegion)
		if !ok {
			t.Fatalf("got %T, want CharRegion", r)
		}
		if cr.Line != 1 || cr.StartChar != 4 || cr.EndChar != 7 {
			t.Errorf("got line %d chars %d-%d", cr.Line, cr.StartChar, cr.EndChar)
		}
	})

	t.Run("text gone from a short line widens to line region", func(t *testing.T) {
		s := newTestStore()
		text := buffer.New("x = foo(bar)\nnext")
		created := mustCreate(t, s, text, "foo")

		r := s.Reanchor(text, buffer.New("x\nnext"))[0]
		lr, ok := r.(LineRegion)
		if !ok {
			t.Fatalf("got %T, want LineRegion", r)
		}
		if lr.StartLine != 1 || lr.EndLine != 1 {
			t.Errorf("got lines %d-%d", lr.StartLine, lr.EndLine)
		}
		if lr.ID != created.RegionInfo().ID {
			t.Error("widening must keep the region identity")
		}
	})
}

func TestReanchorMultiHunk(t *testing.T) {
	old := buffer.New("a\nb\nc\nd\ne")
	updated := buffer.New("a\nX\nb\nc\nd")

	t.Run("single hunk keeps the documented limitation", func(t *testing.T) {
		s := newTestStore()
		mustCreate(t, s, old, "c\nd")
		start, end := s.Reanchor(old, updated)[0].Lines()
		if start != 3 || end != 4 {
			t.Errorf("got %d-%d, want unchanged 3-4", start, end)
		}
	})

	t.Run("myers follows both hunks", func(t *testing.T) {
		s := newTestStore(WithDetector(tracking.NewMyersDetector(tracking.DefaultDiffOptions())))
		mustCreate(t, s, old, "c\nd")
		start, end := s.Reanchor(old, updated)[0].Lines()
		if start != 4 || end != 5 {
			t.Errorf("got %d-%d, want 4-5", start, end)
		}
	})
}

func TestReanchorNilBuffers(t *testing.T) {
	s := newTestStore()
	text := buffer.New("a\nb")
	mustCreate(t, s, text, "a\nb")

	if got := s.Reanchor(nil, text); len(got) != 1 {
		t.Errorf("Reanchor(nil, text) returned %d regions", len(got))
	}
	if got := s.Reanchor(text, nil); len(got) != 1 {
		t.Errorf("Reanchor(text, nil) returned %d regions", len(got))
	}
}

func TestStoreQueries(t *testing.T) {
	s := newTestStore()
	text := buffer.New("alpha\nbeta gamma delta epsilon\ngamma\ndelta")

	block := mustCreate(t, s, text, "gamma\ndelta")
	word := mustCreate(t, s, text, "gamma")
	top := mustCreate(t, s, text, "alpha\nbeta gamma delta epsilon")

	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d", got)
	}

	list := s.List()
	for i, want := range []Region{block, word, top} {
		if list[i].RegionInfo().ID != want.RegionInfo().ID {
			t.Errorf("List()[%d] = %s, want creation order", i, list[i])
		}
	}

	sorted := SortedByPosition(list)
	if sorted[0].RegionInfo().ID != top.RegionInfo().ID {
		t.Errorf("SortedByPosition()[0] = %s", sorted[0])
	}

	if r, ok := s.At(buffer.Position{Line: 2, Char: 6}); !ok || r.RegionInfo().ID != word.RegionInfo().ID {
		t.Errorf("At(2:6) = %v, want the character region", r)
	}
	if r, ok := s.At(buffer.Position{Line: 2, Char: 0}); !ok || r.RegionInfo().ID != top.RegionInfo().ID {
		t.Errorf("At(2:0) = %v, want the top line region", r)
	}
	if _, ok := s.At(buffer.Position{Line: 9}); ok {
		t.Error("At(9) found a region")
	}

	bg := s.LineBackgrounds(text.LineCount())
	want := []Color{top.RegionInfo().Color, top.RegionInfo().Color, block.RegionInfo().Color, block.RegionInfo().Color}
	if diff := cmp.Diff(want, bg); diff != "" {
		t.Errorf("LineBackgrounds() mismatch (-want +got):\n%s", diff)
	}

	if got := s.CharRegions(); len(got) != 1 || got[0].ID != word.RegionInfo().ID {
		t.Errorf("CharRegions() = %v", got)
	}

	if !s.Rename(word.RegionInfo().ID, "Loop body") {
		t.Fatal("Rename returned false")
	}
	if r, _ := s.Get(word.RegionInfo().ID); r.RegionInfo().Name != "Loop body" {
		t.Errorf("Name after rename = %q", r.RegionInfo().Name)
	}

	if !s.Remove(block.RegionInfo().ID) {
		t.Fatal("Remove returned false")
	}
	if s.Remove(block.RegionInfo().ID) {
		t.Error("second Remove returned true")
	}
	if _, ok := s.Get(block.RegionInfo().ID); ok {
		t.Error("removed region still present")
	}
}

func TestDefaultIDsAreOrdered(t *testing.T) {
	s := NewStore()
	text := buffer.New("a\nb\nc")

	r1, _ := s.Create(buffer.Span{Start: 0, End: 1}, text)
	r2, _ := s.Create(buffer.Span{Start: 2, End: 3}, text)

	if r1.RegionInfo().ID == r2.RegionInfo().ID {
		t.Fatal("IDs are not unique")
	}
	if r1.RegionInfo().ID > r2.RegionInfo().ID {
		t.Errorf("IDs not in creation order: %s > %s", r1.RegionInfo().ID, r2.RegionInfo().ID)
	}
}
