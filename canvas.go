package bingo

import (
	"fmt"
	"image"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-bingo/internal/layout"
)

// canvas is one backend's drawing surface. Coordinates are in the backend's
// units (points or pixels) with the origin at the top-left of the page.
type canvas interface {
	layout.Measurer

	// pageSize returns the page dimensions in canvas units.
	pageSize() (w, h float64)
	startPage() error
	strokeRect(r layout.Rect)
	// drawLine draws s with its line box's top-left corner at p.
	drawLine(s string, p layout.Point, size float64)
	finishPage() error
	// snapshot returns the current page raster, or nil for vector pages.
	snapshot() image.Image
	output(w io.Writer) error
	close()
}

// pdfDoc holds the fpdf document shared by both backends.
type pdfDoc struct {
	doc *fpdf.Fpdf
}

func newPDFDoc(doc *fpdf.Fpdf) pdfDoc {
	doc.SetMargins(0, 0, 0)
	doc.SetCellMargin(0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("go-bingo", true)
	doc.SetTitle("Bingo boards", true)
	return pdfDoc{doc: doc}
}

// err reports the document's sticky error, if any.
func (d pdfDoc) err() error {
	if d.doc.Err() {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, d.doc.Error())
	}
	return nil
}

func (d pdfDoc) output(w io.Writer) error {
	if err := d.err(); err != nil {
		return err
	}
	if err := d.doc.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}
