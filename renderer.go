package bingo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/alnah/go-bingo/internal/layout"
)

// titleBand is the height of the title area as a fraction of the page height.
const titleBand = 0.06

// FitSettings tunes the per-cell shrink-to-fit search.
// Sizes are in backend units: points for blank pages, pixels for raster pages.
type FitSettings struct {
	InitialScale float64 // initial size as a fraction of the cell's shorter side
	MinSize      float64 // floor below which text is accepted as overflowing
	Padding      float64 // inset on every side of a cell
	LineSpacing  float64 // gap between wrapped lines
}

// DefaultFitSettings returns the fit parameters used when none are configured.
func DefaultFitSettings() FitSettings {
	d := layout.DefaultOptions()
	return FitSettings{
		InitialScale: d.InitialScale,
		MinSize:      d.MinSize,
		Padding:      d.Padding,
		LineSpacing:  d.LineSpacing,
	}
}

func (f FitSettings) options() layout.Options {
	return layout.Options{
		InitialScale: f.InitialScale,
		MinSize:      f.MinSize,
		Padding:      f.Padding,
		LineSpacing:  f.LineSpacing,
	}
}

// Validate rejects settings the fit search cannot work with.
func (f FitSettings) Validate() error {
	if f.InitialScale <= 0 || f.InitialScale > 1 {
		return fmt.Errorf("%w: initial scale %.2f (must be in (0, 1])", ErrInvalidRenderer, f.InitialScale)
	}
	if f.MinSize <= 0 {
		return fmt.Errorf("%w: minimum font size %.1f", ErrInvalidRenderer, f.MinSize)
	}
	if f.Padding < 0 || f.LineSpacing < 0 {
		return fmt.Errorf("%w: padding and line spacing must not be negative", ErrInvalidRenderer)
	}
	return nil
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithFont sets the TrueType/OpenType font file used for cell text.
func WithFont(path string) RenderOption {
	return func(r *Renderer) {
		r.font.Path = path
	}
}

// WithFontData sets the cell font from bytes; it takes precedence over WithFont.
func WithFontData(data []byte) RenderOption {
	return func(r *Renderer) {
		r.font.Data = data
	}
}

// WithFit overrides the shrink-to-fit parameters.
func WithFit(f FitSettings) RenderOption {
	return func(r *Renderer) {
		r.fit = f
	}
}

// WithGridBox places the grid explicitly instead of centring it on the page.
func WithGridBox(g GridBox) RenderOption {
	return func(r *Renderer) {
		r.grid = g
	}
}

// WithTitles toggles the "Board N" heading on decorated backgrounds.
func WithTitles(on bool) RenderOption {
	return func(r *Renderer) {
		r.titles = on
	}
}

// WithLogger sets the logger for non-fatal rendering issues. Nil disables logging.
func WithLogger(l *slog.Logger) RenderOption {
	return func(r *Renderer) {
		if l == nil {
			l = newNopLogger()
		}
		r.logger = l
	}
}

// WithImageSink receives every raster page after it is drawn, e.g. to save
// per-board PNGs. It is not called for vector pages.
func WithImageSink(fn func(Board, image.Image) error) RenderOption {
	return func(r *Renderer) {
		r.sink = fn
	}
}

// Renderer lays out boards on pages and assembles one combined PDF.
type Renderer struct {
	bg     Background
	font   fontSource
	fit    FitSettings
	grid   GridBox
	titles bool
	logger *slog.Logger
	sink   func(Board, image.Image) error
}

// NewRenderer creates a Renderer for the given background strategy.
func NewRenderer(bg Background, opts ...RenderOption) (*Renderer, error) {
	if bg == nil {
		return nil, fmt.Errorf("%w: nil background", ErrInvalidRenderer)
	}
	r := &Renderer{
		bg:     bg,
		fit:    DefaultFitSettings(),
		titles: true,
		logger: newNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.fit.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Render draws one page per board, in order, and writes the combined PDF to w.
// Nothing is written unless every page succeeds. The context is checked
// between pages.
func (r *Renderer) Render(ctx context.Context, w io.Writer, boards []Board) error {
	if len(boards) == 0 {
		return ErrNoBoards
	}
	rows, cols := boards[0].Rows(), boards[0].Cols()
	for _, b := range boards {
		if !sameShape(b, rows, cols) {
			return fmt.Errorf("%w: board %d", ErrBoardShape, b.Index)
		}
	}

	c, err := r.bg.open(r.font, r.logger)
	if err != nil {
		return err
	}
	defer c.close()

	pageW, pageH := c.pageSize()
	if err := r.grid.Validate(pageW, pageH); err != nil {
		return err
	}
	grid, header := r.geometry(pageW, pageH, rows, cols)

	for _, b := range boards {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.renderPage(c, b, grid, header); err != nil {
			return fmt.Errorf("rendering board %d: %w", b.Index, err)
		}
	}

	var buf bytes.Buffer
	if err := c.output(&buf); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// geometry computes the grid once per document, plus the title area (zero
// when titles are off or the background is undecorated).
func (r *Renderer) geometry(pageW, pageH float64, rows, cols int) (layout.Grid, layout.Rect) {
	margin := r.bg.margin()
	var header layout.Rect
	if r.titles && r.bg.decorated() {
		header = layout.Rect{X: margin, Y: margin, W: pageW - 2*margin, H: pageH * titleBand}
	}

	if !r.grid.IsZero() {
		return layout.Grid{X: r.grid.X, Y: r.grid.Y, Size: r.grid.Size, Rows: rows, Cols: cols}, header
	}
	return layout.AutoGrid(pageW, pageH, margin, header.H, rows, cols), header
}

func (r *Renderer) renderPage(c canvas, b Board, grid layout.Grid, header layout.Rect) error {
	if err := c.startPage(); err != nil {
		return err
	}

	if header.H > 0 {
		r.drawText(c, b.Title(), header, layout.Options{InitialScale: 0.6, MinSize: r.fit.MinSize})
	}

	opt := r.fit.options()
	for i, row := range b.Cells {
		for j, text := range row {
			cell := grid.Cell(i, j)
			if r.bg.decorated() {
				c.strokeRect(cell)
			}
			res := r.drawText(c, text, cell, opt)
			if res.Overflow {
				r.logger.Warn("text overflows cell at minimum font size",
					"board", b.Index, "row", i+1, "col", j+1, "text", text, "size", res.Size)
			}
		}
	}

	if err := c.finishPage(); err != nil {
		return err
	}
	if r.sink != nil {
		if img := c.snapshot(); img != nil {
			if err := r.sink(b, img); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawText fits text into box and draws it centred on both axes.
func (r *Renderer) drawText(c canvas, text string, box layout.Rect, opt layout.Options) layout.Result {
	res := layout.Fit(text, box.Box(), c, opt)
	for i, p := range layout.Place(box, res, c, opt.LineSpacing) {
		c.drawLine(res.Lines[i], p, res.Size)
	}
	return res
}

func sameShape(b Board, rows, cols int) bool {
	if len(b.Cells) != rows {
		return false
	}
	for _, row := range b.Cells {
		if len(row) != cols {
			return false
		}
	}
	return true
}
