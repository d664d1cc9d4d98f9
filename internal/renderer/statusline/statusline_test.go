package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/annotext/internal/renderer/backend"
	"github.com/dshills/annotext/internal/renderer/core"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *StatusLine)
		want  string
	}{
		{
			name:  "no target",
			setup: func(s *StatusLine) { s.SetRegions(2, 0) },
			want:  " Lesson  |  regions 2",
		},
		{
			name:  "below target",
			setup: func(s *StatusLine) { s.SetRegions(1, 3) },
			want:  " Lesson  |  regions 1/3",
		},
		{
			name:  "target reached",
			setup: func(s *StatusLine) { s.SetRegions(3, 3) },
			want:  " Lesson  |  regions 3/3 ok",
		},
		{
			name: "flags and message",
			setup: func(s *StatusLine) {
				s.SetExplain(true)
				s.SetReadOnly(true)
				s.SetMessage("created Function 1", MessageInfo)
			},
			want: " Lesson  |  regions 0  |  EXPLAIN  |  READ-ONLY  |  created Function 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetTitle("Lesson")
			tt.setup(s)
			if got := s.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	s := New()
	s.SetMessage("reload failed", MessageError)
	if msg, typ := s.Message(); msg != "reload failed" || typ != MessageError {
		t.Errorf("Message() = %q, %v", msg, typ)
	}
	s.ClearMessage()
	if msg, typ := s.Message(); msg != "" || typ != MessageNone {
		t.Errorf("after ClearMessage: %q, %v", msg, typ)
	}
}

func TestRender(t *testing.T) {
	b := backend.NewNullBackend(40, 2)
	s := New()
	s.SetTitle("Lesson")
	s.SetRegions(1, 2)
	s.SetPosition(3, 4)
	s.Resize(40)

	s.Render(b, 1)

	want := " Lesson  |  regions 1/2" + strings.Repeat(" ", 5) + "Ln 3, Col 5 "
	if got := b.Row(1); got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
	if !b.GetCell(0, 1).Style.Attributes.Has(core.AttrReverse) {
		t.Error("status bar is not reversed")
	}
	if got := b.Row(0); strings.TrimSpace(got) != "" {
		t.Errorf("row 0 = %q, want untouched", got)
	}
}

func TestRenderMessageStyle(t *testing.T) {
	b := backend.NewNullBackend(60, 1)
	s := New()
	s.SetTitle("T")
	s.SetMessage("bad", MessageError)
	s.Resize(60)

	s.Render(b, 0)

	prefix := " T  |  regions 0  |  "
	cell := b.GetCell(len(prefix), 0)
	if cell.Rune != 'b' {
		t.Fatalf("cell = %q, want 'b'", cell.Rune)
	}
	if cell.Style != errorStyle {
		t.Errorf("message style = %+v, want error style", cell.Style)
	}
	if b.GetCell(0, 0).Style != barStyle {
		t.Error("title lost the bar style")
	}
}

func TestRenderTruncates(t *testing.T) {
	b := backend.NewNullBackend(20, 1)
	s := New()
	s.SetTitle("A very long lesson title")
	s.Resize(20)

	s.Render(b, 0)

	row := b.Row(0)
	if len([]rune(row)) != 20 {
		t.Fatalf("row %q has %d cells, want 20", row, len([]rune(row)))
	}
	if !strings.HasSuffix(row, "Ln 1, Col 1 ") {
		t.Errorf("row = %q, want position on the right", row)
	}
	if !strings.HasPrefix(row, " A very ") {
		t.Errorf("row = %q", row)
	}
}

func TestDone(t *testing.T) {
	s := New()
	if s.Done() {
		t.Error("Done() with no target")
	}
	s.SetRegions(2, 2)
	if !s.Done() {
		t.Error("Done() = false at target")
	}
}
