package bingo

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-bingo/internal/layout"
)

// Font families registered with fpdf.
const (
	cellFontFamily    = "cell"
	defaultFontFamily = "Helvetica"
)

// pdfCanvas draws vector text with fpdf. Sizes are in points.
type pdfCanvas struct {
	pdfDoc
	family string
	tr     func(string) string // encodes text for the active font
	w, h   float64
}

// newPDFCanvas sets up a blank document. A configured font that cannot be read
// degrades to the core Helvetica font with a warning.
func newPDFCanvas(page *PageSettings, src fontSource, logger *slog.Logger) (*pdfCanvas, error) {
	doc := fpdf.New(page.fpdfOrientation(), "pt", page.fpdfSize(), "")
	c := &pdfCanvas{
		pdfDoc: newPDFDoc(doc),
		family: defaultFontFamily,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
	}

	if src.configured() {
		data, err := src.load()
		if err != nil {
			logger.Warn("cell font unavailable, using Helvetica", "error", err)
		} else {
			doc.AddUTF8FontFromBytes(cellFontFamily, "", data)
			if doc.Err() {
				return nil, fmt.Errorf("%w: %v", ErrFontParse, doc.Error())
			}
			c.family = cellFontFamily
			c.tr = func(s string) string { return s }
		}
	}

	doc.SetFont(c.family, "", 12)
	c.w, c.h = doc.GetPageSize()
	return c, nil
}

func (c *pdfCanvas) Width(s string, size float64) float64 {
	c.doc.SetFontSize(size)
	return c.doc.GetStringWidth(c.tr(s))
}

// LineHeight is the em size: fpdf centres a line of text inside it.
func (c *pdfCanvas) LineHeight(size float64) float64 {
	return size
}

func (c *pdfCanvas) pageSize() (float64, float64) { return c.w, c.h }

func (c *pdfCanvas) startPage() error {
	c.doc.AddPage()
	return c.err()
}

func (c *pdfCanvas) strokeRect(r layout.Rect) {
	c.doc.Rect(r.X, r.Y, r.W, r.H, "D")
}

func (c *pdfCanvas) drawLine(s string, p layout.Point, size float64) {
	c.doc.SetFontSize(size)
	text := c.tr(s)
	c.doc.SetXY(p.X, p.Y)
	c.doc.CellFormat(c.doc.GetStringWidth(text), c.LineHeight(size), text, "", 0, "LM", false, 0, "")
}

func (c *pdfCanvas) finishPage() error { return c.err() }

func (c *pdfCanvas) snapshot() image.Image { return nil }

func (c *pdfCanvas) close() {}
