package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/alnah/go-bingo/internal/fileutil"
	"github.com/alnah/go-bingo/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength     = 4096
	MaxMarkerLength   = 8
	MaxNameLength     = 100
	MaxLabelLength    = 50
	MaxCategories     = 64
	MaxCount          = 10000
	MaxDPI            = 1200
	MaxFontSize       = 500
	MaxPageSizeLength = 10 // "letter", "a4", "legal"
)

// Render modes.
const (
	ModeText  = "text"
	ModeImage = "image"
)

// Defaults.
const (
	DefaultTemplate   = "classic"
	DefaultCount      = 5
	DefaultCSVDir     = "bingo_csv"
	DefaultPDFName    = "bingo_boards.pdf"
	DefaultFreeMarker = "e"
	DefaultFreeLabel  = "FREE"
	DefaultDPI        = 150
	DefaultMinFont    = 6
	DefaultPadding    = 3
	DefaultLineGap    = 2
	DefaultMargin     = 0.5
)

// Config holds everything a generate or render run needs.
type Config struct {
	Template   string          `yaml:"template"` // path or embedded template name
	Count      int             `yaml:"count"`
	Seed       uint64          `yaml:"seed"` // 0 = random
	FreeSpace  FreeSpaceConfig `yaml:"freeSpace"`
	Categories []Category      `yaml:"categories"`
	Output     OutputConfig    `yaml:"output"`
	Render     RenderConfig    `yaml:"render"`
}

// FreeSpaceConfig defines the free-space marker and the label printed for it.
type FreeSpaceConfig struct {
	Marker string `yaml:"marker"`
	Label  string `yaml:"label"`
}

// Category binds a template marker to a word list file.
type Category struct {
	Marker string `yaml:"marker"`
	Name   string `yaml:"name"`
	Words  string `yaml:"words"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	CSVDir    string `yaml:"csvDir"`    // per-board CSV files
	PDF       string `yaml:"pdf"`       // empty = <csvDir>/bingo_boards.pdf
	ImagesDir string `yaml:"imagesDir"` // per-board PNGs in image mode (empty = none)
}

// RenderConfig defines page rendering options.
type RenderConfig struct {
	Mode        string     `yaml:"mode"`       // "text" or "image"
	Font        string     `yaml:"font"`       // TTF/OTF path
	Background  string     `yaml:"background"` // template image (image mode)
	DPI         float64    `yaml:"dpi"`
	MinFontSize float64    `yaml:"minFontSize"`
	Padding     float64    `yaml:"padding"`
	LineSpacing float64    `yaml:"lineSpacing"`
	Title       bool       `yaml:"title"`
	Page        PageConfig `yaml:"page"`
	Grid        GridConfig `yaml:"grid"`
}

// PageConfig defines the blank page used in text mode.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// GridConfig places the grid explicitly. All zero means automatic placement.
type GridConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// DefaultConfig returns the configuration used when no file is given: the
// embedded classic template and the embedded company, hollywood and football
// word lists.
func DefaultConfig() *Config {
	return &Config{
		Template:  DefaultTemplate,
		Count:     DefaultCount,
		FreeSpace: FreeSpaceConfig{Marker: DefaultFreeMarker, Label: DefaultFreeLabel},
		Categories: []Category{
			{Marker: "c", Name: "company", Words: "company"},
			{Marker: "h", Name: "hollywood", Words: "hollywood"},
			{Marker: "f", Name: "football", Words: "football"},
		},
		Output: OutputConfig{CSVDir: DefaultCSVDir},
		Render: RenderConfig{
			Mode:        ModeText,
			DPI:         DefaultDPI,
			MinFontSize: DefaultMinFont,
			Padding:     DefaultPadding,
			LineSpacing: DefaultLineGap,
			Title:       true,
			Page:        PageConfig{Size: "a4", Orientation: "portrait", Margin: DefaultMargin},
		},
	}
}

// PDFPath returns the combined document path, defaulting inside the CSV folder.
func (c *Config) PDFPath() string {
	if c.Output.PDF != "" {
		return c.Output.PDF
	}
	return filepath.Join(c.Output.CSVDir, DefaultPDFName)
}

// Validate checks ranges, enumerations and field lengths.
// Called by LoadConfig, and again by the CLI after flags are merged.
func (c *Config) Validate() error {
	if c.Count < 0 || c.Count > MaxCount {
		return fmt.Errorf("%w: count: must be between 0 and %d, got %d", ErrInvalidValue, MaxCount, c.Count)
	}
	if err := validateFieldLength("template", c.Template, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("freeSpace.marker", c.FreeSpace.Marker, MaxMarkerLength); err != nil {
		return err
	}
	if err := validateFieldLength("freeSpace.label", c.FreeSpace.Label, MaxLabelLength); err != nil {
		return err
	}

	if err := c.validateCategories(); err != nil {
		return err
	}

	for field, path := range map[string]string{
		"output.csvDir":     c.Output.CSVDir,
		"output.pdf":        c.Output.PDF,
		"output.imagesDir":  c.Output.ImagesDir,
		"render.font":       c.Render.Font,
		"render.background": c.Render.Background,
	} {
		if err := validateFieldLength(field, path, MaxPathLength); err != nil {
			return err
		}
	}

	return c.Render.validate()
}

func (c *Config) validateCategories() error {
	if len(c.Categories) > MaxCategories {
		return fmt.Errorf("%w: categories: at most %d, got %d", ErrInvalidValue, MaxCategories, len(c.Categories))
	}

	free := c.FreeSpace.Marker
	if free == "" {
		free = DefaultFreeMarker
	}

	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		marker := strings.TrimSpace(cat.Marker)
		if marker == "" {
			return fmt.Errorf("%w: %s.marker: required", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field+".marker", cat.Marker, MaxMarkerLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".name", cat.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".words", cat.Words, MaxPathLength); err != nil {
			return err
		}
		if seen[marker] {
			return fmt.Errorf("%w: %s.marker: duplicate marker %q", ErrInvalidValue, field, marker)
		}
		if marker == free {
			return fmt.Errorf("%w: %s.marker: %q is the free-space marker", ErrInvalidValue, field, marker)
		}
		seen[marker] = true
	}
	return nil
}

func (r *RenderConfig) validate() error {
	switch strings.ToLower(r.Mode) {
	case "", ModeText, ModeImage:
	default:
		return fmt.Errorf("%w: render.mode: %q (must be text or image)", ErrInvalidValue, r.Mode)
	}
	if r.DPI < 0 || r.DPI > MaxDPI {
		return fmt.Errorf("%w: render.dpi: must be between 0 and %d, got %.0f", ErrInvalidValue, MaxDPI, r.DPI)
	}
	if r.MinFontSize < 0 || r.MinFontSize > MaxFontSize {
		return fmt.Errorf("%w: render.minFontSize: must be between 0 and %d, got %.1f", ErrInvalidValue, MaxFontSize, r.MinFontSize)
	}
	if r.Padding < 0 || r.LineSpacing < 0 {
		return fmt.Errorf("%w: render.padding and render.lineSpacing must not be negative", ErrInvalidValue)
	}
	if r.Grid.X < 0 || r.Grid.Y < 0 || r.Grid.Size < 0 {
		return fmt.Errorf("%w: render.grid: coordinates must not be negative", ErrInvalidValue)
	}
	if err := validateFieldLength("render.page.size", r.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values. Relative
// paths inside the file are resolved against the file's directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := yamlutil.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	// An explicit list replaces the default categories rather than merging.
	cfg.Categories = nil
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(filepath.Dir(configPath))
	return cfg, nil
}

// resolvePaths makes file references relative to the config file's directory.
// Embedded asset names (no separator, no extension) are left alone.
func (c *Config) resolvePaths(base string) {
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	relFile := func(p string) string {
		if IsAssetName(p) {
			return p
		}
		return rel(p)
	}

	c.Template = relFile(c.Template)
	for i := range c.Categories {
		c.Categories[i].Words = relFile(c.Categories[i].Words)
	}
	c.Render.Font = rel(c.Render.Font)
	c.Render.Background = rel(c.Render.Background)
}

// IsAssetName reports whether s names an embedded asset rather than a file:
// it has no path separator and no extension.
func IsAssetName(s string) bool {
	return s != "" && !fileutil.IsFilePath(s) && filepath.Ext(s) == ""
}

// resolveConfigPath searches for a config file by name in standard locations.
// A name that already carries a .yaml or .yml extension is used as is when it
// exists in the current directory.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-bingo/
func resolveConfigPath(name string) (string, error) {
	if ext := filepath.Ext(name); (ext == ".yaml" || ext == ".yml") && fileutil.FileExists(name) {
		return name, nil
	}

	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if dir, err := fileutil.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
