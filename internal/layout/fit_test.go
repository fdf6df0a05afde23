package layout

// Notes:
// - fixedMeasurer: every rune is 0.5*size wide, a line is exactly size tall
// - Fit: size never exceeds InitialSize, shrinks monotonically, floors on overflow
// - Wrap: greedy packing, over-long words sit alone
// - Measure: block height includes spacing between lines only

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// fixedMeasurer is a monospace metrics provider for deterministic tests.
type fixedMeasurer struct{}

func (fixedMeasurer) Width(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.5
}

func (fixedMeasurer) LineHeight(size float64) float64 { return size }

// countingMeasurer records the sizes Fit tries.
type countingMeasurer struct {
	fixedMeasurer
	sizes []float64
}

func (m *countingMeasurer) LineHeight(size float64) float64 {
	m.sizes = append(m.sizes, size)
	return size
}

// ---------------------------------------------------------------------------
// TestInitialSize - starting font size
// ---------------------------------------------------------------------------

func TestInitialSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		box  Box
		opt  Options
		want float64
	}{
		{"square box", Box{W: 100, H: 100}, DefaultOptions(), 30},
		{"shorter side wins", Box{W: 200, H: 50}, DefaultOptions(), 15},
		{"floored", Box{W: 99, H: 99}, DefaultOptions(), 29},
		{"custom scale", Box{W: 100, H: 100}, Options{InitialScale: 0.5}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := InitialSize(tt.box, tt.opt); got != tt.want {
				t.Errorf("InitialSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFit - shrink-to-fit search
// ---------------------------------------------------------------------------

func TestFit(t *testing.T) {
	t.Parallel()

	opt := Options{InitialScale: 0.3, MinSize: 6, Padding: 5, LineSpacing: 2}

	tests := []struct {
		name         string
		text         string
		box          Box
		wantSize     float64
		wantLines    []string
		wantOverflow bool
	}{
		{
			// initial 30: "Acme" is 60 wide, usable 90.
			name:      "short word fits at initial size",
			text:      "Acme",
			box:       Box{W: 100, H: 100},
			wantSize:  30,
			wantLines: []string{"Acme"},
		},
		{
			// at 30 the two lines are 45 and 75 wide, 62 tall.
			name:      "wraps at initial size",
			text:      "Tom Hanks",
			box:       Box{W: 100, H: 100},
			wantSize:  30,
			wantLines: []string{"Tom", "Hanks"},
		},
		{
			// "Washington" only fits the usable 90 once size <= 18.
			name:      "shrinks until the longest word fits",
			text:      "Denzel Washington",
			box:       Box{W: 100, H: 100},
			wantSize:  18,
			wantLines: []string{"Denzel", "Washington"},
		},
		{
			name:      "surrounding whitespace ignored",
			text:      "  Acme  ",
			box:       Box{W: 100, H: 100},
			wantSize:  30,
			wantLines: []string{"Acme"},
		},
		{
			// initial 6 = floor; 22 runes at 6 is 66 wide, usable 20.
			name:         "overflow at floor keeps unwrapped text",
			text:         "Supercalifragilistic x",
			box:          Box{W: 30, H: 20},
			wantSize:     6,
			wantLines:    []string{"Supercalifragilistic x"},
			wantOverflow: true,
		},
		{
			// initial 3 is below MinSize: floor drops to the initial size.
			name:         "tiny box floors at initial size",
			text:         "Acme",
			box:          Box{W: 10, H: 10},
			wantSize:     3,
			wantLines:    []string{"Acme"},
			wantOverflow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Fit(tt.text, tt.box, fixedMeasurer{}, opt)
			if got.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", got.Size, tt.wantSize)
			}
			if diff := cmp.Diff(tt.wantLines, got.Lines); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
			if got.Overflow != tt.wantOverflow {
				t.Errorf("Overflow = %v, want %v", got.Overflow, tt.wantOverflow)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFit_InitialBelowMinSize - small cells try their initial size
// ---------------------------------------------------------------------------

func TestFit_InitialBelowMinSize(t *testing.T) {
	t.Parallel()

	// initial floor(20*0.3) = 6 is below MinSize 8; "Hi" is 6x6 at size 6.
	opt := Options{InitialScale: 0.3, MinSize: 8}

	got := Fit("Hi", Box{W: 20, H: 20}, fixedMeasurer{}, opt)
	if got.Overflow {
		t.Errorf("Overflow = true, want false for text that fits at the initial size")
	}
	if got.Size != 6 {
		t.Errorf("Size = %v, want 6", got.Size)
	}
	if diff := cmp.Diff([]string{"Hi"}, got.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}

	got = Fit("Supercalifragilistic", Box{W: 20, H: 20}, fixedMeasurer{}, opt)
	if !got.Overflow || got.Size != 6 {
		t.Errorf("Fit(long) = size %v overflow %v, want size 6 with overflow", got.Size, got.Overflow)
	}
}

func TestFit_EmptyText(t *testing.T) {
	t.Parallel()

	got := Fit("   ", Box{W: 100, H: 100}, fixedMeasurer{}, DefaultOptions())
	if got.Size != 30 || len(got.Lines) != 0 || got.Overflow {
		t.Errorf("Fit(blank) = %+v, want size 30, no lines, no overflow", got)
	}
}

func TestFit_ResultFitsBox(t *testing.T) {
	t.Parallel()

	opt := DefaultOptions()
	box := Box{W: 120, H: 80}
	texts := []string{
		"Acme",
		"Denzel Washington",
		"International Business Machines Corporation",
		"a b c d e f g h i j k l m n o p",
	}

	for _, text := range texts {
		got := Fit(text, box, fixedMeasurer{}, opt)
		if got.Overflow {
			continue
		}
		if got.Width > box.W-2*opt.Padding || got.Height > box.H-2*opt.Padding {
			t.Errorf("Fit(%q) block %.1fx%.1f exceeds usable box", text, got.Width, got.Height)
		}
		if strings.Join(got.Lines, " ") != text {
			t.Errorf("Fit(%q) lines %q lost words", text, got.Lines)
		}
	}
}

func TestFit_MonotonicSearch(t *testing.T) {
	t.Parallel()

	m := &countingMeasurer{}
	box := Box{W: 40, H: 40}
	res := Fit("Supercalifragilistic", box, m, DefaultOptions())

	initial := InitialSize(box, DefaultOptions())
	if res.Size > initial {
		t.Errorf("Size = %v exceeds initial %v", res.Size, initial)
	}
	for i := 1; i < len(m.sizes); i++ {
		if m.sizes[i] > m.sizes[i-1] {
			t.Fatalf("sizes tried %v are not monotonically non-increasing", m.sizes)
		}
	}
	if len(m.sizes) == 0 || m.sizes[0] != initial {
		t.Errorf("first size tried = %v, want %v", m.sizes, initial)
	}
}

func TestFit_Terminates(t *testing.T) {
	t.Parallel()

	// Degenerate options must not loop forever.
	opts := []Options{
		{InitialScale: 0.3, MinSize: 0},
		{InitialScale: 0.3, MinSize: -5},
		{InitialScale: 0, MinSize: 6},
	}
	for _, opt := range opts {
		res := Fit("word", Box{W: 50, H: 50}, fixedMeasurer{}, opt)
		if math.IsNaN(res.Size) || res.Size < 0 {
			t.Errorf("Fit() with %+v returned size %v", opt, res.Size)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWrap - greedy line packing
// ---------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		// size 10: every rune is 5 wide.
		{"empty", "", 100, nil},
		{"single line", "ab cd", 100, []string{"ab cd"}},
		{"exact fit", "ab cd", 25, []string{"ab cd"}},
		{"breaks", "ab cd ef", 25, []string{"ab cd", "ef"}},
		{"long word alone", "ab abcdefghij cd", 25, []string{"ab", "abcdefghij", "cd"}},
		{"collapses whitespace", "ab   cd\tef", 100, []string{"ab cd ef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Wrap(tt.text, tt.maxWidth, 10, fixedMeasurer{})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMeasure - block dimensions
// ---------------------------------------------------------------------------

func TestMeasure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lines        []string
		wantW, wantH float64
	}{
		{"no lines", nil, 0, 0},
		{"one line", []string{"abcd"}, 20, 10},
		{"three lines", []string{"ab", "abcdef", "a"}, 30, 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, h := Measure(tt.lines, 10, fixedMeasurer{}, 2)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Measure() = (%v, %v), want (%v, %v)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
