package bingo

// Notes:
// - ParseTemplate: classification of category, free and literal tokens
// - ParseTemplate: rejection of empty, ragged and malformed grids
// - Markers: validation of empty and colliding markers
// - LoadTemplate: missing files map to ErrMissingInput

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testMarkers = Markers{
	Categories: map[string]string{"c": "company", "h": "hollywood", "f": "football"},
}

// ---------------------------------------------------------------------------
// TestParseTemplate - token classification
// ---------------------------------------------------------------------------

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate(strings.NewReader("c, c ,c\nh,e,h\nf,Lunch,f\n"), testMarkers)
	if err != nil {
		t.Fatalf("ParseTemplate() unexpected error: %v", err)
	}

	if tmpl.Rows() != 3 || tmpl.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", tmpl.Rows(), tmpl.Cols())
	}

	tests := []struct {
		i, j      int
		wantKind  CellKind
		wantValue string
	}{
		{0, 0, CellCategory, "c"},
		{0, 1, CellCategory, "c"},
		{1, 1, CellFree, "e"},
		{2, 1, CellLiteral, "Lunch"},
		{2, 2, CellCategory, "f"},
	}
	for _, tt := range tests {
		got := tmpl.Cell(tt.i, tt.j)
		if got.Kind != tt.wantKind || got.Value != tt.wantValue {
			t.Errorf("Cell(%d, %d) = {%v %q}, want {%v %q}", tt.i, tt.j, got.Kind, got.Value, tt.wantKind, tt.wantValue)
		}
	}
}

func TestParseTemplate_CustomFreeMarker(t *testing.T) {
	t.Parallel()

	m := Markers{Categories: map[string]string{"c": "company"}, Free: "*"}
	tmpl, err := ParseTemplate(strings.NewReader("c,*\ne,c\n"), m)
	if err != nil {
		t.Fatalf("ParseTemplate() unexpected error: %v", err)
	}

	if got := tmpl.Cell(0, 1).Kind; got != CellFree {
		t.Errorf("Cell(0, 1).Kind = %v, want free", got)
	}
	if got := tmpl.Cell(1, 0).Kind; got != CellLiteral {
		t.Errorf("Cell(1, 0).Kind = %v, want literal (e is not the free marker)", got)
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		markers Markers
		wantErr error
	}{
		{"empty input", "", testMarkers, ErrEmptyTemplate},
		{"ragged rows", "c,c,c\nh,e\n", testMarkers, ErrRaggedTemplate},
		{"bare quote", "c,\"c\nh\n", testMarkers, ErrTemplateParse},
		{
			name:    "empty category marker",
			input:   "c",
			markers: Markers{Categories: map[string]string{" ": "blank"}},
			wantErr: ErrInvalidMarker,
		},
		{
			name:    "category collides with free marker",
			input:   "c",
			markers: Markers{Categories: map[string]string{"e": "extra"}},
			wantErr: ErrInvalidMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTemplate(strings.NewReader(tt.input), tt.markers)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseTemplate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTemplate_Occurrences - category cell counts
// ---------------------------------------------------------------------------

func TestTemplate_Occurrences(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate(strings.NewReader("c,c,c\nh,e,h\nf,f,x\n"), testMarkers)
	if err != nil {
		t.Fatalf("ParseTemplate() unexpected error: %v", err)
	}

	got := tmpl.Occurrences()
	want := map[string]int{"c": 3, "h": 2, "f": 2}
	if len(got) != len(want) {
		t.Fatalf("Occurrences() = %v, want %v", got, want)
	}
	for marker, n := range want {
		if got[marker] != n {
			t.Errorf("Occurrences()[%q] = %d, want %d", marker, got[marker], n)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadTemplate - file loading
// ---------------------------------------------------------------------------

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTemplate(filepath.Join(t.TempDir(), "nope.csv"), testMarkers)
		if !errors.Is(err, ErrMissingInput) {
			t.Errorf("LoadTemplate() error = %v, want ErrMissingInput", err)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "template.csv")
		if err := os.WriteFile(path, []byte("c,e\nh,f\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		tmpl, err := LoadTemplate(path, testMarkers)
		if err != nil {
			t.Fatalf("LoadTemplate() unexpected error: %v", err)
		}
		if tmpl.Rows() != 2 || tmpl.Cols() != 2 {
			t.Errorf("dimensions = %dx%d, want 2x2", tmpl.Rows(), tmpl.Cols())
		}
	})

	t.Run("parse error names the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ragged.csv")
		if err := os.WriteFile(path, []byte("c,c\nh\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		_, err := LoadTemplate(path, testMarkers)
		if !errors.Is(err, ErrRaggedTemplate) {
			t.Fatalf("LoadTemplate() error = %v, want ErrRaggedTemplate", err)
		}
		if !strings.Contains(err.Error(), "ragged.csv") {
			t.Errorf("error %q should mention the file", err)
		}
	})
}
