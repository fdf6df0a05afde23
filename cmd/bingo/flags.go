package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	assetPath string
	quiet     bool
	verbose   bool
}

// pageFlags holds blank page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// renderFlags holds flags that shape the PDF.
type renderFlags struct {
	mode       string
	font       string
	background string
	dpi        float64
	minFont    float64
	padding    float64
	noTitle    bool
	pdf        string
	imagesDir  string
	page       pageFlags
}

// boardFlags holds flags that shape the generated boards.
type boardFlags struct {
	count      int
	template   string
	words      []string // marker=path or marker:name=path
	freeMarker string
	freeLabel  string
	seed       uint64
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	board     boardFlags
	render    renderFlags
	outputDir string
	noPDF     bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// renderCmdFlags holds all flags for the render command.
type renderCmdFlags struct {
	common  commonFlags
	render  renderFlags
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/ and words/ overriding built-ins")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addBoardFlags adds board generation flags to a FlagSet.
func addBoardFlags(fs *flag.FlagSet, f *boardFlags) {
	fs.IntVarP(&f.count, "count", "n", 0, "number of boards (default 5)")
	fs.StringVarP(&f.template, "template", "t", "", "template name or CSV path (default classic)")
	fs.StringArrayVar(&f.words, "words", nil, "word list per category: marker=path or marker:name=path (repeatable)")
	fs.StringVar(&f.freeMarker, "free-marker", "", "template token for the free space (default e)")
	fs.StringVar(&f.freeLabel, "free-label", "", "text printed in the free space (default FREE)")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed for reproducible boards (0 = random)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.mode, "mode", "m", "", "render mode: text, image")
	fs.StringVar(&f.font, "font", "", "TrueType/OpenType font file")
	fs.StringVar(&f.background, "background", "", "template image for image mode")
	fs.Float64Var(&f.dpi, "dpi", 0, "raster resolution for image mode (default 150)")
	fs.Float64Var(&f.minFont, "min-font", 0, "smallest font size before text overflows (default 6)")
	fs.Float64Var(&f.padding, "padding", 0, "space between cell border and text")
	fs.BoolVar(&f.noTitle, "no-title", false, "omit the board title above the grid")
	fs.StringVar(&f.pdf, "pdf", "", "combined PDF path (default <output-dir>/bingo_boards.pdf)")
	fs.StringVar(&f.imagesDir, "images", "", "directory for per-board PNGs (image mode)")
	addPageFlags(fs, &f.page)
}

// newGenerateFlagSet registers every generate flag on a fresh FlagSet.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for board CSV files (default bingo_csv)")
	fs.BoolVar(&f.noPDF, "no-pdf", false, "write CSV files only")

	addCommonFlags(fs, &f.common)
	addBoardFlags(fs, &f.board)
	addRenderFlags(fs, &f.render)
	return fs
}

// newRenderFlagSet registers every render flag on a fresh FlagSet.
func newRenderFlagSet(f *renderCmdFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printGenerateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderCmdFlags, []string, error) {
	f := &renderCmdFlags{}
	fs := newRenderFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printRenderUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}
