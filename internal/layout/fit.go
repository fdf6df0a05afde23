package layout

import (
	"math"
	"strings"
)

// Default fit parameters.
const (
	DefaultInitialScale = 0.3
	DefaultMinSize      = 6
	DefaultPadding      = 3
	DefaultLineSpacing  = 2
)

// Measurer reports font metrics for a single font at arbitrary sizes.
type Measurer interface {
	// Width returns the advance width of s set at size.
	Width(s string, size float64) float64
	// LineHeight returns the height of one line of text set at size.
	LineHeight(size float64) float64
}

// Box is the area available for one cell, in the measurer's units.
type Box struct {
	W, H float64
}

// Options tunes the shrink-to-fit search.
type Options struct {
	InitialScale float64 // initial size as a fraction of the cell's shorter side
	MinSize      float64 // smallest size tried before giving up
	Padding      float64 // inset applied on every side of the box
	LineSpacing  float64 // extra gap between consecutive lines
}

// DefaultOptions returns the fit parameters used when none are configured.
func DefaultOptions() Options {
	return Options{
		InitialScale: DefaultInitialScale,
		MinSize:      DefaultMinSize,
		Padding:      DefaultPadding,
		LineSpacing:  DefaultLineSpacing,
	}
}

// Result is the outcome of Fit.
type Result struct {
	Size     float64  // chosen font size
	Lines    []string // wrapped lines to draw, top to bottom
	Width    float64  // widest line at Size
	Height   float64  // block height at Size, including line spacing
	Overflow bool     // true when no size fit and the floor was accepted
}

// InitialSize returns the starting font size for a box.
func InitialSize(box Box, opt Options) float64 {
	return math.Floor(math.Min(box.W, box.H) * opt.InitialScale)
}

// Fit picks the largest size, stepping down one unit at a time from the
// initial size, whose wrapped text fits inside the padded box. When the
// initial size is already below MinSize it is the only size tried. When no
// size fits, the unwrapped text is returned at the floor size with
// Overflow set. The returned size never exceeds InitialSize(box, opt).
func Fit(text string, box Box, m Measurer, opt Options) Result {
	initial := InitialSize(box, opt)
	usableW := box.W - 2*opt.Padding
	usableH := box.H - 2*opt.Padding

	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Size: initial}
	}

	// A box too small for MinSize still gets one try at its initial size.
	floor := math.Max(math.Min(opt.MinSize, initial), 0)
	for size := initial; size >= floor && size > 0; size-- {
		lines := Wrap(text, usableW, size, m)
		w, h := Measure(lines, size, m, opt.LineSpacing)
		if w <= usableW && h <= usableH {
			return Result{Size: size, Lines: lines, Width: w, Height: h}
		}
	}

	lines := []string{text}
	w, h := Measure(lines, floor, m, opt.LineSpacing)
	return Result{Size: floor, Lines: lines, Width: w, Height: h, Overflow: true}
}

// Wrap greedily packs words into lines no wider than maxWidth at size.
// A word wider than maxWidth is placed on its own line and left to overflow.
func Wrap(text string, maxWidth, size float64, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.Width(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// Measure returns the width of the widest line and the total block height.
func Measure(lines []string, size float64, m Measurer, spacing float64) (width, height float64) {
	if len(lines) == 0 {
		return 0, 0
	}
	for _, line := range lines {
		width = math.Max(width, m.Width(line, size))
	}
	n := float64(len(lines))
	height = n*m.LineHeight(size) + (n-1)*spacing
	return width, height
}
