package bingo

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// pointsPerInch converts inch-based settings into PDF points.
const pointsPerInch = 72.0

// PageSettings configures the page of a blank (text-grid) document.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// fpdfSize maps the page size to the name fpdf expects.
func (p *PageSettings) fpdfSize() string {
	switch strings.ToLower(p.Size) {
	case PageSizeLetter:
		return "Letter"
	case PageSizeLegal:
		return "Legal"
	default:
		return "A4"
	}
}

// fpdfOrientation maps the orientation to the fpdf "P"/"L" code.
func (p *PageSettings) fpdfOrientation() string {
	if strings.ToLower(p.Orientation) == OrientationLandscape {
		return "L"
	}
	return "P"
}

// isValidPageSize checks if size is a known page size (case-insensitive).
// Empty means the default size.
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case "", PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
// Empty means portrait.
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case "", OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// GridBox places the board grid on the page, in page units (points for blank
// documents, pixels for image backgrounds). A zero box means automatic placement.
type GridBox struct {
	X, Y float64 // top-left corner
	Size float64 // side of the square grid
}

// IsZero reports whether the box requests automatic placement.
func (g GridBox) IsZero() bool {
	return g.X == 0 && g.Y == 0 && g.Size == 0
}

// Validate checks that an explicit box lies inside a page of the given size.
func (g GridBox) Validate(pageW, pageH float64) error {
	if g.IsZero() {
		return nil
	}
	if g.Size <= 0 || g.X < 0 || g.Y < 0 {
		return fmt.Errorf("%w: x=%.1f y=%.1f size=%.1f", ErrInvalidGridBox, g.X, g.Y, g.Size)
	}
	if g.X+g.Size > pageW || g.Y+g.Size > pageH {
		return fmt.Errorf("%w: box exceeds page %.1fx%.1f", ErrInvalidGridBox, pageW, pageH)
	}
	return nil
}
