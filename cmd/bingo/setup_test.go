package main

// Notes:
// - applyWordsFlags / markersFor: we test marker binding against the default
//   categories.
// - readBoardDir: ordering is numeric, so bingo_board_10 comes after
//   bingo_board_2.
// - pagePixels: exact sizes at 100 dpi keep the arithmetic readable.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	bingo "github.com/alnah/go-bingo"
	"github.com/alnah/go-bingo/internal/assets"
	"github.com/alnah/go-bingo/internal/config"
)

// ---------------------------------------------------------------------------
// TestApplyWordsFlags - Binding word lists to markers
// ---------------------------------------------------------------------------

func TestApplyWordsFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []string
		want    []config.Category
		wantErr error
	}{
		{
			name:   "rebind existing marker",
			values: []string{"c=office.txt"},
			want: []config.Category{
				{Marker: "c", Name: "company", Words: "office.txt"},
				{Marker: "h", Name: "hollywood", Words: "hollywood"},
				{Marker: "f", Name: "football", Words: "football"},
			},
		},
		{
			name:   "rename existing marker",
			values: []string{"f:soccer=soccer.txt"},
			want: []config.Category{
				{Marker: "c", Name: "company", Words: "company"},
				{Marker: "h", Name: "hollywood", Words: "hollywood"},
				{Marker: "f", Name: "soccer", Words: "soccer.txt"},
			},
		},
		{
			name:   "append new marker",
			values: []string{" s : snacks = snacks.txt "},
			want: []config.Category{
				{Marker: "c", Name: "company", Words: "company"},
				{Marker: "h", Name: "hollywood", Words: "hollywood"},
				{Marker: "f", Name: "football", Words: "football"},
				{Marker: "s", Name: "snacks", Words: "snacks.txt"},
			},
		},
		{
			name:   "new marker without name",
			values: []string{"x=x.txt"},
			want: []config.Category{
				{Marker: "c", Name: "company", Words: "company"},
				{Marker: "h", Name: "hollywood", Words: "hollywood"},
				{Marker: "f", Name: "football", Words: "football"},
				{Marker: "x", Name: "x", Words: "x.txt"},
			},
		},
		{name: "missing equals", values: []string{"c"}, wantErr: ErrInvalidWordsFlag},
		{name: "empty marker", values: []string{"=words.txt"}, wantErr: ErrInvalidWordsFlag},
		{name: "empty path", values: []string{"c= "}, wantErr: ErrInvalidWordsFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			err := applyWordsFlags(tt.values, cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.Categories); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkersFor - Template token table
// ---------------------------------------------------------------------------

func TestMarkersFor(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Categories = append(cfg.Categories, config.Category{Marker: " s ", Words: "snacks.txt"})
	cfg.FreeSpace.Marker = "*"

	want := bingo.Markers{
		Categories: map[string]string{"c": "company", "h": "hollywood", "f": "football", "s": " s "},
		Free:       "*",
	}
	if diff := cmp.Diff(want, markersFor(cfg)); diff != "" {
		t.Errorf("markers mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestLoadPools - Word lists per category
// ---------------------------------------------------------------------------

func TestLoadPools(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "snacks.txt", "Chips\nChips\nDip\n")

	cfg := config.DefaultConfig()
	cfg.Categories = []config.Category{
		{Marker: "c", Name: "company", Words: "company"},
		{Marker: "s", Name: "snacks", Words: path},
		{Marker: "z", Name: "empty"},
	}

	pools, err := loadPools(cfg, assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("loadPools() error = %v", err)
	}
	if pools["c"].Len() == 0 {
		t.Error("embedded company list is empty")
	}
	if diff := cmp.Diff([]string{"Chips", "Dip"}, pools["s"].Words); diff != "" {
		t.Errorf("snacks mismatch (-want +got):\n%s", diff)
	}
	if pools["z"].Len() != 0 || pools["z"].Name != "empty" {
		t.Errorf("empty pool = %+v", pools["z"])
	}

	cfg.Categories = []config.Category{{Marker: "s", Name: "snacks", Words: filepath.Join(dir, "missing.txt")}}
	if _, err := loadPools(cfg, assets.NewEmbeddedLoader()); !errors.Is(err, bingo.ErrMissingInput) {
		t.Errorf("error = %v, want ErrMissingInput", err)
	}
}

// ---------------------------------------------------------------------------
// TestBoardIndex - Board file name parsing
// ---------------------------------------------------------------------------

func TestBoardIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"bingo_board_1.csv", 1, true},
		{"bingo_board_42.csv", 42, true},
		{"bingo_board_0.csv", 0, false},
		{"bingo_board_-3.csv", 0, false},
		{"bingo_board_x.csv", 0, false},
		{"bingo_board_1.txt", 0, false},
		{"board_1.csv", 0, false},
		{"bingo_boards.pdf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := boardIndex(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("boardIndex(%q) = %d, %v, want %d, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadBoardDir - Loading a board directory
// ---------------------------------------------------------------------------

func TestReadBoardDir(t *testing.T) {
	t.Parallel()

	t.Run("numeric order and ignored files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "bingo_board_10.csv", "j\n")
		writeFile(t, dir, "bingo_board_2.csv", "b\n")
		writeFile(t, dir, "bingo_board_1.csv", "a\n")
		writeFile(t, dir, "notes.txt", "ignore me\n")
		if err := os.Mkdir(filepath.Join(dir, "bingo_board_3.csv"), 0o755); err != nil {
			t.Fatal(err)
		}

		boards, err := readBoardDir(dir)
		if err != nil {
			t.Fatalf("readBoardDir() error = %v", err)
		}
		var got []string
		for _, b := range boards {
			got = append(got, b.Cells[0][0])
		}
		if diff := cmp.Diff([]string{"a", "b", "j"}, got); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		if boards[2].Index != 10 {
			t.Errorf("last index = %d, want 10", boards[2].Index)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		if _, err := readBoardDir(t.TempDir()); !errors.Is(err, ErrNoBoardFiles) {
			t.Errorf("error = %v, want ErrNoBoardFiles", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := readBoardDir(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPagePixels - Raster page sizes
// ---------------------------------------------------------------------------

func TestPagePixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  config.PageConfig
		wantW int
		wantH int
	}{
		{"letter portrait", config.PageConfig{Size: "letter", Orientation: "portrait"}, 850, 1100},
		{"letter landscape", config.PageConfig{Size: "Letter", Orientation: "landscape"}, 1100, 850},
		{"legal", config.PageConfig{Size: "legal"}, 850, 1400},
		{"unknown uses a4", config.PageConfig{Size: "tabloid"}, 827, 1169},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := pagePixels(tt.page, 100)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("pagePixels() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFitSettings - Render config to fit parameters
// ---------------------------------------------------------------------------

func TestFitSettings(t *testing.T) {
	t.Parallel()

	r := config.DefaultConfig().Render
	r.MinFontSize = 0
	r.Padding = 5

	got := fitSettings(r)
	if got.MinSize != bingo.DefaultFitSettings().MinSize {
		t.Errorf("MinSize = %v, want default when unset", got.MinSize)
	}
	if got.Padding != 5 || got.LineSpacing != config.DefaultLineGap {
		t.Errorf("Padding, LineSpacing = %v, %v", got.Padding, got.LineSpacing)
	}
}
