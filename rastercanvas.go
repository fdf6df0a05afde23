package bingo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/alnah/go-bingo/internal/layout"
)

// rasterCanvas draws text into an image per page and embeds each image as a
// full-page PNG. Sizes and coordinates are in pixels.
type rasterCanvas struct {
	pdfDoc
	bg      *rasterBackground
	font    *opentype.Font
	faces   map[float64]font.Face
	img     *image.NRGBA
	pages   int
	faceErr error
}

func newRasterCanvas(bg *rasterBackground, f *opentype.Font) *rasterCanvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: pxToPt(bg.w, bg.dpi),
			Ht: pxToPt(bg.h, bg.dpi),
		},
	})
	return &rasterCanvas{
		pdfDoc: newPDFDoc(doc),
		bg:     bg,
		font:   f,
		faces:  make(map[float64]font.Face),
	}
}

func pxToPt(px int, dpi float64) float64 {
	return float64(px) * pointsPerInch / dpi
}

// face returns a cached face for size. Failures are recorded and surface from
// finishPage, since Measurer methods cannot return errors.
func (c *rasterCanvas) face(size float64) font.Face {
	size = math.Max(size, 1)
	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		if c.faceErr == nil {
			c.faceErr = fmt.Errorf("%w: size %.0f: %v", ErrFontParse, size, err)
		}
		return nil
	}
	c.faces[size] = f
	return f
}

func (c *rasterCanvas) Width(s string, size float64) float64 {
	f := c.face(size)
	if f == nil {
		return 0
	}
	return fromFixed(font.MeasureString(f, s))
}

func (c *rasterCanvas) LineHeight(size float64) float64 {
	f := c.face(size)
	if f == nil {
		return size
	}
	m := f.Metrics()
	return fromFixed(m.Ascent + m.Descent)
}

func (c *rasterCanvas) pageSize() (float64, float64) {
	return float64(c.bg.w), float64(c.bg.h)
}

// startPage replicates the background, or starts a white page.
func (c *rasterCanvas) startPage() error {
	if c.bg.base != nil {
		c.img = imaging.Clone(c.bg.base)
	} else {
		c.img = imaging.New(c.bg.w, c.bg.h, color.White)
	}
	c.doc.AddPage()
	return c.err()
}

// strokeRect draws a border roughly one point wide.
func (c *rasterCanvas) strokeRect(r layout.Rect) {
	t := int(math.Max(1, math.Round(c.bg.dpi/pointsPerInch)))
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H))
	ink := image.NewUniform(color.Black)
	for _, edge := range []image.Rectangle{
		image.Rect(x0, y0, x1, y0+t),
		image.Rect(x0, y1-t, x1, y1),
		image.Rect(x0, y0, x0+t, y1),
		image.Rect(x1-t, y0, x1, y1),
	} {
		draw.Draw(c.img, edge, ink, image.Point{}, draw.Src)
	}
}

func (c *rasterCanvas) drawLine(s string, p layout.Point, size float64) {
	f := c.face(size)
	if f == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.Black),
		Face: f,
		Dot:  fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y) + f.Metrics().Ascent},
	}
	d.DrawString(s)
}

// finishPage encodes the page raster and places it full-bleed on the PDF page.
func (c *rasterCanvas) finishPage() error {
	if c.faceErr != nil {
		return c.faceErr
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, c.img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %v", ErrImageEncode, err)
	}

	c.pages++
	name := fmt.Sprintf("page-%d", c.pages)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	c.doc.RegisterImageOptionsReader(name, opts, &buf)
	w, h := c.doc.GetPageSize()
	c.doc.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")
	return c.err()
}

func (c *rasterCanvas) snapshot() image.Image { return c.img }

func (c *rasterCanvas) close() {
	for size, f := range c.faces {
		_ = f.Close()
		delete(c.faces, size)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
