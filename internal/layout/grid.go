package layout

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Box returns the rectangle's size as a fit box.
func (r Rect) Box() Box { return Box{W: r.W, H: r.H} }

// Grid splits a square region into rows x cols equal cells.
type Grid struct {
	X, Y, Size float64
	Rows, Cols int
}

// AutoGrid returns the largest square grid that fits the page inside margin,
// leaving headerH free above it, centred horizontally.
func AutoGrid(pageW, pageH, margin, headerH float64, rows, cols int) Grid {
	availW := pageW - 2*margin
	availH := pageH - 2*margin - headerH
	size := math.Max(math.Min(availW, availH), 0)
	return Grid{
		X:    margin + (availW-size)/2,
		Y:    margin + headerH,
		Size: size,
		Rows: rows,
		Cols: cols,
	}
}

// CellW returns the width of one cell.
func (g Grid) CellW() float64 { return g.Size / float64(g.Cols) }

// CellH returns the height of one cell.
func (g Grid) CellH() float64 { return g.Size / float64(g.Rows) }

// Cell returns the bounds of the cell at row i, column j.
func (g Grid) Cell(i, j int) Rect {
	w, h := g.CellW(), g.CellH()
	return Rect{X: g.X + float64(j)*w, Y: g.Y + float64(i)*h, W: w, H: h}
}

// Point is a position in page units.
type Point struct {
	X, Y float64
}

// Place returns the top-left corner of each line of res when the block is
// centred on both axes inside r. spacing must match the value given to Fit.
func Place(r Rect, res Result, m Measurer, spacing float64) []Point {
	lineH := m.LineHeight(res.Size)
	top := r.Y + (r.H-res.Height)/2
	pos := make([]Point, len(res.Lines))
	for i, line := range res.Lines {
		pos[i] = Point{
			X: r.X + (r.W-m.Width(line, res.Size))/2,
			Y: top + float64(i)*(lineH+spacing),
		}
	}
	return pos
}
