package explain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	open := Entry{Line: 6, Code: "f", Description: "file handle"}
	call := Entry{Line: 6, Code: " open(x) ", Description: "opens x"}
	other := Entry{Line: 2, Code: "import", Description: "imports"}
	idx := NewIndex([]Entry{open, call, other})

	const line6 = "f = open(x)"

	tests := []struct {
		name   string
		query  Query
		want   Entry
		wantOK bool
	}{
		{"exact match on first entry", Query{Line: 6, LineText: line6, Char: 0}, open, true},
		{"exact match on trimmed code", Query{Line: 6, LineText: line6, Char: 5}, call, true},
		{"end of occurrence is exclusive", Query{Line: 6, LineText: "f = open(x) ", Char: 11}, open, true},
		{"line fallback", Query{Line: 6, LineText: line6, Char: 3}, open, true},
		{"code missing from line", Query{Line: 2, LineText: "package main", Char: 1}, other, true},
		{"no entries on line", Query{Line: 3, LineText: "x", Char: 0}, Entry{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.Lookup(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Lookup ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupScenario(t *testing.T) {
	entry := Entry{Line: 6, Code: "f", Description: "..."}
	idx := NewIndex([]Entry{entry})

	for _, char := range []int{0, 10} {
		got, ok := idx.Lookup(Query{Line: 6, LineText: "f = open(x)", Char: char})
		if !ok || got != entry {
			t.Errorf("Lookup(char=%d) = %v, %v", char, got, ok)
		}
	}
}

func TestSpanRuneColumns(t *testing.T) {
	start, end, ok := Span(Entry{Code: "λ"}, "héllo λ")
	if !ok || start != 6 || end != 7 {
		t.Errorf("Span = %d,%d,%v, want 6,7,true", start, end, ok)
	}
	if _, _, ok := Span(Entry{Code: "   "}, "anything"); ok {
		t.Error("blank code should not match")
	}
}

func TestForLineAndLen(t *testing.T) {
	idx := NewIndex([]Entry{
		{Line: 1, Code: "a"},
		{Line: 1, Code: "b"},
		{Line: 4, Code: "c"},
	})
	if idx.Len() != 3 {
		t.Errorf("Len() = %d", idx.Len())
	}
	got := idx.ForLine(1)
	want := []Entry{{Line: 1, Code: "a"}, {Line: 1, Code: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForLine(1) mismatch (-want +got):\n%s", diff)
	}
	got[0].Code = "mutated"
	if idx.ForLine(1)[0].Code != "a" {
		t.Error("ForLine returned shared storage")
	}
	if len(idx.ForLine(9)) != 0 {
		t.Error("ForLine(9) should be empty")
	}
}

func TestUnanchored(t *testing.T) {
	lines := map[int]string{1: "x := 1", 2: "return x"}
	idx := NewIndex([]Entry{
		{Line: 2, Code: "missing"},
		{Line: 1, Code: "x"},
		{Line: 1, Code: "nope"},
	})
	got := idx.Unanchored(func(n int) string { return lines[n] })
	want := []Entry{{Line: 1, Code: "nope"}, {Line: 2, Code: "missing"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unanchored mismatch (-want +got):\n%s", diff)
	}
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	if _, ok := idx.Lookup(Query{Line: 1}); ok {
		t.Error("nil index matched")
	}
	if idx.Len() != 0 || idx.ForLine(1) != nil {
		t.Error("nil index not empty")
	}
}
