// Package bingo generates randomized bingo boards and renders them to PDF.
//
// # Quick Start
//
// Parse a template, load one word pool per category, generate boards and
// render them into a single document:
//
//	markers := bingo.Markers{Categories: map[string]string{"c": "company", "h": "hollywood"}}
//	tmpl, err := bingo.LoadTemplate("template.csv", markers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	company, _ := bingo.LoadWordPool("company", "commercial_brands.txt")
//	hollywood, _ := bingo.LoadWordPool("hollywood", "hollywood_actors.txt")
//	pools := bingo.Pools{"c": company, "h": hollywood}
//
//	boards, err := bingo.NewGenerator().Generate(tmpl, pools, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, _ := bingo.NewRenderer(bingo.BlankBackground(nil))
//	var buf bytes.Buffer
//	if err := r.Render(ctx, &buf, boards); err != nil {
//	    log.Fatal(err)
//	}
//
// # Templates
//
// A template is a comma-separated grid. Each token is one of:
//
//   - a category marker, filled from that category's word pool
//   - the free-space marker ("e" by default), printed as the free label
//   - anything else, copied verbatim to every board
//
// Each board shuffles a fresh copy of every pool, so boards are independent.
// A category with fewer words than cells leaves the extra cells empty; use
// Shortfalls to report them ahead of time.
//
// # Rendering
//
// A Renderer draws one page per board on a pluggable Background:
//
//   - BlankBackground draws vector text and cell borders on a paginated
//     document. A missing font falls back to Helvetica.
//   - RasterBackground rasterizes a white page with drawn borders.
//   - ImageBackground draws text over a template image replicated per board.
//
// Raster backgrounds require a font (WithFont or WithFontData). Cell text is
// shrunk and wrapped until it fits; text that does not fit at the minimum
// size is drawn anyway and reported through the logger set by WithLogger.
//
// The document is assembled in memory and written only when every page
// succeeded.
package bingo
