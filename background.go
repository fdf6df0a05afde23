package bingo

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
)

// DefaultDPI is the raster resolution used when none is given.
const DefaultDPI = 150.0

// Background is the page strategy a Renderer draws boards on.
// Use BlankBackground for vector text pages, RasterBackground for a plain
// raster page, or ImageBackground to overlay a template image.
type Background interface {
	// open prepares a document canvas with the given cell font.
	open(src fontSource, logger *slog.Logger) (canvas, error)
	// decorated reports whether the renderer draws cell borders and titles.
	decorated() bool
	// margin returns the page inset used by automatic grid placement.
	margin() float64
}

// BlankBackground renders vector text into a blank paginated document.
// A nil page uses DefaultPageSettings.
func BlankBackground(page *PageSettings) Background {
	if page == nil {
		page = DefaultPageSettings()
	}
	return &blankBackground{page: page}
}

type blankBackground struct {
	page *PageSettings
}

func (b *blankBackground) decorated() bool { return true }

func (b *blankBackground) margin() float64 { return b.page.Margin * pointsPerInch }

func (b *blankBackground) open(src fontSource, logger *slog.Logger) (canvas, error) {
	if err := b.page.Validate(); err != nil {
		return nil, err
	}
	return newPDFCanvas(b.page, src, logger)
}

// RasterBackground renders onto a white canvas of w x h pixels, embedded in
// the PDF at dpi. Cell borders are drawn by the renderer.
func RasterBackground(w, h int, dpi float64) Background {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &rasterBackground{w: w, h: h, dpi: dpi}
}

// ImageBackground replicates img once per board and draws cell text over it.
// The image is expected to carry its own grid artwork.
func ImageBackground(img image.Image, dpi float64) Background {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	b := img.Bounds()
	return &rasterBackground{w: b.Dx(), h: b.Dy(), dpi: dpi, base: imaging.Clone(img)}
}

// LoadImageBackground opens a template image, optionally scaling it to width
// pixels (0 keeps the original size).
func LoadImageBackground(path string, width int, dpi float64) (Background, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: background %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrBackgroundLoad, err)
	}
	if width > 0 && width != img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return ImageBackground(img, dpi), nil
}

type rasterBackground struct {
	w, h int
	dpi  float64
	base *image.NRGBA // nil for a blank white page
}

func (b *rasterBackground) decorated() bool { return b.base == nil }

func (b *rasterBackground) margin() float64 {
	if b.base != nil {
		return 0
	}
	return DefaultMargin * b.dpi
}

func (b *rasterBackground) open(src fontSource, _ *slog.Logger) (canvas, error) {
	if b.w <= 0 || b.h <= 0 {
		return nil, fmt.Errorf("%w: raster size %dx%d", ErrInvalidRenderer, b.w, b.h)
	}
	f, err := parseFont(src)
	if err != nil {
		return nil, err
	}
	return newRasterCanvas(b, f), nil
}
