package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"

	bingo "github.com/alnah/go-bingo"
	"github.com/alnah/go-bingo/internal/assets"
	"github.com/alnah/go-bingo/internal/config"
	"github.com/alnah/go-bingo/internal/fileutil"
	"github.com/alnah/go-bingo/internal/hints"
)

// pageInches holds portrait page dimensions for blank raster pages.
var pageInches = map[string][2]float64{
	bingo.PageSizeLetter: {8.5, 11},
	bingo.PageSizeA4:     {8.27, 11.69},
	bingo.PageSizeLegal:  {8.5, 14},
}

// loadConfig returns the config named by --config, then BINGO_CONFIG, and
// otherwise a copy of the environment's defaults.
func loadConfig(flagConfig string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	if name == "" {
		if env.Config == nil {
			return config.DefaultConfig(), nil
		}
		cfg := *env.Config
		cfg.Categories = slices.Clone(env.Config.Categories)
		return &cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configSearchPaths lists where a config name is looked up, for hints.
func configSearchPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return []string{name}
	}
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := fileutil.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, name+".yaml"))
	}
	return paths
}

// resolveLoader returns the asset loader for a run. A custom asset path, from
// --asset-path or BINGO_ASSET_PATH, overrides built-in assets by name.
func resolveLoader(flagPath string, envCfg *envConfig, env *Environment) (assets.AssetLoader, error) {
	path := flagPath
	if path == "" {
		path = envCfg.AssetPath
	}
	if path == "" {
		if env.AssetLoader == nil {
			return assets.NewEmbeddedLoader(), nil
		}
		return env.AssetLoader, nil
	}
	return assets.NewAssetResolver(path)
}

// applyWordsFlags binds --words values to categories. A value is either
// marker=path or marker:name=path; an existing marker is rebound, a new one
// is appended.
func applyWordsFlags(values []string, cfg *config.Config) error {
	for _, v := range values {
		binding, path, ok := strings.Cut(v, "=")
		marker, name, _ := strings.Cut(binding, ":")
		marker = strings.TrimSpace(marker)
		path = strings.TrimSpace(path)
		if !ok || marker == "" || path == "" {
			return fmt.Errorf("%w: %q (want marker=path or marker:name=path)", ErrInvalidWordsFlag, v)
		}

		i := slices.IndexFunc(cfg.Categories, func(c config.Category) bool { return c.Marker == marker })
		if i < 0 {
			cfg.Categories = append(cfg.Categories, config.Category{Marker: marker, Name: marker})
			i = len(cfg.Categories) - 1
		}
		cfg.Categories[i].Words = path
		if name = strings.TrimSpace(name); name != "" {
			cfg.Categories[i].Name = name
		}
	}
	return nil
}

// categoryName returns the display name of a category, falling back to its marker.
func categoryName(c config.Category) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Marker
}

// markersFor builds the template token table from the config.
func markersFor(cfg *config.Config) bingo.Markers {
	m := bingo.Markers{
		Categories: make(map[string]string, len(cfg.Categories)),
		Free:       cfg.FreeSpace.Marker,
	}
	for _, c := range cfg.Categories {
		m.Categories[strings.TrimSpace(c.Marker)] = categoryName(c)
	}
	return m
}

// loadTemplate reads the configured template, either a built-in name or a CSV file.
func loadTemplate(cfg *config.Config, loader assets.AssetLoader) (*bingo.Template, error) {
	markers := markersFor(cfg)

	if !config.IsAssetName(cfg.Template) {
		t, err := bingo.LoadTemplate(cfg.Template, markers)
		if errors.Is(err, bingo.ErrMissingInput) {
			return nil, fmt.Errorf("%w%s", err, hints.ForMissingInput())
		}
		return t, err
	}

	data, err := loader.Load(assets.Template, cfg.Template)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			names, _ := loader.Names(assets.Template)
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(names))
		}
		return nil, err
	}

	t, err := bingo.ParseTemplate(bytes.NewReader(data), markers)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", cfg.Template, err)
	}
	return t, nil
}

// loadPools reads the word list of every category. A category without a
// word list gets an empty pool.
func loadPools(cfg *config.Config, loader assets.AssetLoader) (bingo.Pools, error) {
	pools := make(bingo.Pools, len(cfg.Categories))
	for _, c := range cfg.Categories {
		marker := strings.TrimSpace(c.Marker)
		name := categoryName(c)

		switch {
		case c.Words == "":
			pools[marker] = bingo.WordPool{Name: name}

		case config.IsAssetName(c.Words):
			data, err := loader.Load(assets.WordList, c.Words)
			if err != nil {
				return nil, fmt.Errorf("category %s: %w", name, err)
			}
			words, err := bingo.LoadWords(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("category %s: %w", name, err)
			}
			pools[marker] = bingo.WordPool{Name: name, Words: words}

		default:
			pool, err := bingo.LoadWordPool(name, c.Words)
			if err != nil {
				if errors.Is(err, bingo.ErrMissingInput) {
					return nil, fmt.Errorf("category %s: %w%s", name, err, hints.ForMissingInput())
				}
				return nil, fmt.Errorf("category %s: %w", name, err)
			}
			pools[marker] = pool
		}
	}
	return pools, nil
}

// generateBoards loads inputs and generates cfg.Count boards. Categories
// that cannot fill every cell are reported to warn, which may be nil.
func generateBoards(cfg *config.Config, loader assets.AssetLoader, warn io.Writer) ([]bingo.Board, error) {
	tmpl, err := loadTemplate(cfg, loader)
	if err != nil {
		return nil, err
	}

	pools, err := loadPools(cfg, loader)
	if err != nil {
		return nil, err
	}

	if warn != nil {
		for _, s := range bingo.Shortfalls(tmpl, pools) {
			name := s.Name
			if name == "" {
				name = s.Marker
			}
			fmt.Fprintf(warn, "warning: some cells will be blank%s\n", hints.ForShortfall(name, s.Words, s.Cells))
		}
	}

	var opts []bingo.GeneratorOption
	if cfg.FreeSpace.Label != "" {
		opts = append(opts, bingo.WithFreeLabel(cfg.FreeSpace.Label))
	}
	if cfg.Seed != 0 {
		opts = append(opts, bingo.WithSeed(cfg.Seed))
	}
	return bingo.NewGenerator(opts...).Generate(tmpl, pools, cfg.Count)
}

// writeBoardCSVs writes one bingo_board_<n>.csv per board into dir, then
// removes board files left by an earlier, larger run so that render only
// sees this run's boards. It returns the number of files removed.
func writeBoardCSVs(boards []bingo.Board, dir string) (int, error) {
	written := make(map[int]bool, len(boards))
	for _, b := range boards {
		var buf bytes.Buffer
		if err := bingo.WriteBoardCSV(&buf, b); err != nil {
			return 0, err
		}
		path := filepath.Join(dir, b.Name()+".csv")
		if err := fileutil.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
			return 0, fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
		}
		written[b.Index] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %s: %v", ErrWriteOutput, dir, err)
	}
	removed := 0
	for _, entry := range entries {
		index, ok := boardIndex(entry.Name())
		if !ok || entry.IsDir() || written[index] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("%w: removing %s: %v", ErrWriteOutput, path, err)
		}
		removed++
	}
	return removed, nil
}

// fitSettings maps render config onto the font-fit parameters.
func fitSettings(r config.RenderConfig) bingo.FitSettings {
	fit := bingo.DefaultFitSettings()
	if r.MinFontSize > 0 {
		fit.MinSize = r.MinFontSize
	}
	fit.Padding = r.Padding
	fit.LineSpacing = r.LineSpacing
	return fit
}

// backgroundFor selects the page strategy for the configured mode.
func backgroundFor(cfg *config.Config) (bingo.Background, error) {
	r := cfg.Render
	if !strings.EqualFold(r.Mode, config.ModeImage) {
		return bingo.BlankBackground(&bingo.PageSettings{
			Size:        r.Page.Size,
			Orientation: r.Page.Orientation,
			Margin:      r.Page.Margin,
		}), nil
	}

	if r.Background != "" {
		return bingo.LoadImageBackground(r.Background, 0, r.DPI)
	}

	dpi := r.DPI
	if dpi <= 0 {
		dpi = bingo.DefaultDPI
	}
	w, h := pagePixels(r.Page, dpi)
	return bingo.RasterBackground(w, h, dpi), nil
}

// pagePixels returns the raster size of a page at dpi. Unknown sizes use A4.
func pagePixels(p config.PageConfig, dpi float64) (int, int) {
	dims, ok := pageInches[strings.ToLower(p.Size)]
	if !ok {
		dims = pageInches[bingo.PageSizeA4]
	}
	w, h := int(dims[0]*dpi), int(dims[1]*dpi)
	if strings.EqualFold(p.Orientation, bingo.OrientationLandscape) {
		w, h = h, w
	}
	return w, h
}

// newBoardRenderer builds a renderer from the config.
func newBoardRenderer(cfg *config.Config, logger *slog.Logger) (*bingo.Renderer, error) {
	bg, err := backgroundFor(cfg)
	if err != nil {
		return nil, err
	}

	r := cfg.Render
	opts := []bingo.RenderOption{
		bingo.WithFit(fitSettings(r)),
		bingo.WithTitles(r.Title),
		bingo.WithLogger(logger),
		bingo.WithGridBox(bingo.GridBox{X: r.Grid.X, Y: r.Grid.Y, Size: r.Grid.Size}),
	}
	if r.Font != "" {
		opts = append(opts, bingo.WithFont(r.Font))
	}
	if cfg.Output.ImagesDir != "" && strings.EqualFold(r.Mode, config.ModeImage) {
		opts = append(opts, bingo.WithImageSink(savePNG(cfg.Output.ImagesDir)))
	}
	return bingo.NewRenderer(bg, opts...)
}

// savePNG returns an image sink writing <dir>/bingo_board_<n>.png.
func savePNG(dir string) func(bingo.Board, image.Image) error {
	return func(b bingo.Board, img image.Image) error {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		path := filepath.Join(dir, b.Name()+".png")
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
		}
		return nil
	}
}

// renderPDF renders boards into memory.
func renderPDF(ctx context.Context, boards []bingo.Board, cfg *config.Config, logger *slog.Logger) ([]byte, error) {
	renderer, err := newBoardRenderer(cfg, logger)
	if err != nil {
		return nil, withRenderHint(err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(ctx, &buf, boards); err != nil {
		return nil, withRenderHint(err)
	}
	return buf.Bytes(), nil
}

// writePDF renders boards and writes the document to cfg.PDFPath().
func writePDF(ctx context.Context, boards []bingo.Board, cfg *config.Config, logger *slog.Logger) (string, error) {
	data, err := renderPDF(ctx, boards, cfg, logger)
	if err != nil {
		return "", err
	}
	return savePDF(data, cfg)
}

// savePDF writes a rendered document to cfg.PDFPath().
func savePDF(data []byte, cfg *config.Config) (string, error) {
	path := cfg.PDFPath()
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
	}
	return path, nil
}

// withRenderHint appends the font hint to font errors.
func withRenderHint(err error) error {
	if errors.Is(err, bingo.ErrMissingFont) || errors.Is(err, bingo.ErrFontParse) {
		return fmt.Errorf("%w%s", err, hints.ForMissingFont())
	}
	return err
}
