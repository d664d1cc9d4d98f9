package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

type failFS struct{}

func (failFS) ReadFile(string) ([]byte, error) {
	return nil, fs.ErrPermission
}

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", "/missing.toml"} {
		cfg, err := LoadFS(memFS{}, path)
		if err != nil {
			t.Fatalf("LoadFS(%q): %v", path, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("LoadFS(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() invalid: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	fsys := memFS{"/c.toml": `
[font]
char_width = 7.5
line_height = 18
padding_left = 4
measure = "monospace"

[regions]
palette = ["#112233", "#abc"]
detector = "myers"

[view]
max_visible_lines = 25
read_only = true

[log]
level = "debug"
`}
	cfg, err := LoadFS(fsys, "/c.toml")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	want := Default()
	want.Font = FontConfig{CharWidth: 7.5, LineHeight: 18, PaddingLeft: 4, Measure: MeasureMonospace}
	want.Regions.Palette = []string{"#112233", "#abc"}
	want.Regions.Detector = "myers"
	want.View.MaxVisibleLines = 25
	want.View.ReadOnly = true
	want.Log.Level = "debug"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.PaletteColors(); len(got) != 2 || got[1] != "#abc" {
		t.Errorf("PaletteColors() = %v", got)
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLine int
	}{
		{"syntax", "[font\nchar_width = 1\n", 0},
		{"unknown key", "[font]\nchar_width = 1\ncolour = 3\n", 3},
		{"unknown table", "[theme]\nname = \"x\"\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(memFS{"/c.toml": tt.data}, "/c.toml")
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if pe.Path != "/c.toml" {
				t.Errorf("Path = %q", pe.Path)
			}
			if tt.wantLine > 0 && pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%v)", pe.Line, tt.wantLine, pe)
			}
		})
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero char width", "[font]\nchar_width = 0\n"},
		{"negative padding", "[font]\npadding_top = -1\n"},
		{"bad measure", "[font]\nmeasure = \"guess\"\n"},
		{"empty palette", "[regions]\npalette = []\n"},
		{"bad color", "[regions]\npalette = [\"blue\"]\n"},
		{"zero max chars", "[regions]\nmax_char_selection = 0\n"},
		{"bad detector", "[regions]\ndetector = \"patience\"\n"},
		{"negative lines", "[view]\nmax_visible_lines = -2\n"},
		{"gutter width", "[view]\nmin_line_number_width = 0\n"},
		{"log level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(memFS{"/c.toml": tt.data}, "/c.toml")
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadReadError(t *testing.T) {
	_, err := LoadFS(failFS{}, "/c.toml")
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("err = %v, want ErrPermission", err)
	}
}
