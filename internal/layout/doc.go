// Package layout fits cell text into a fixed box.
//
// Fit is a pure function of the text, the box and a Measurer; it performs a
// greedy word wrap at each candidate size and shrinks one unit at a time until
// the wrapped block fits or the minimum size is reached. Backends supply the
// Measurer: PDF core/TrueType metrics for vector pages, opentype faces for
// raster pages.
package layout
