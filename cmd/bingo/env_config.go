package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-bingo/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // BINGO_CONFIG: config file name or path
	AssetPath  string // BINGO_ASSET_PATH: custom templates/ and words/ directory

	Template  string // BINGO_TEMPLATE: template name or path
	Count     int    // BINGO_COUNT: number of boards
	Seed      uint64 // BINGO_SEED: random seed
	OutputDir string // BINGO_OUTPUT_DIR: CSV directory

	Mode       string // BINGO_MODE: text or image
	Font       string // BINGO_FONT: font file
	Background string // BINGO_BACKGROUND: template image
	PageSize   string // BINGO_PAGE_SIZE: a4, letter, legal
}

// knownEnvVars lists valid BINGO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BINGO_CONFIG":     true,
	"BINGO_ASSET_PATH": true,
	"BINGO_TEMPLATE":   true,
	"BINGO_COUNT":      true,
	"BINGO_SEED":       true,
	"BINGO_OUTPUT_DIR": true,
	"BINGO_MODE":       true,
	"BINGO_FONT":       true,
	"BINGO_BACKGROUND": true,
	"BINGO_PAGE_SIZE":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("BINGO_CONFIG"),
		AssetPath:  os.Getenv("BINGO_ASSET_PATH"),
		Template:   os.Getenv("BINGO_TEMPLATE"),
		OutputDir:  os.Getenv("BINGO_OUTPUT_DIR"),
		Mode:       os.Getenv("BINGO_MODE"),
		Font:       os.Getenv("BINGO_FONT"),
		Background: os.Getenv("BINGO_BACKGROUND"),
		PageSize:   os.Getenv("BINGO_PAGE_SIZE"),
	}

	if count := os.Getenv("BINGO_COUNT"); count != "" {
		if n, err := strconv.Atoi(count); err == nil && n >= 0 {
			cfg.Count = n
		}
	}

	if seed := os.Getenv("BINGO_SEED"); seed != "" {
		if s, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Seed = s
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized BINGO_* variables.
// Helps catch typos like BINGO_TEMPLTE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "BINGO_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A value is only taken when the config still holds its default, which gives:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later by the command's merge step)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	defaults := config.DefaultConfig()

	if env.Template != "" && cfg.Template == defaults.Template {
		cfg.Template = env.Template
	}
	if env.Count > 0 && cfg.Count == defaults.Count {
		cfg.Count = env.Count
	}
	if env.Seed != 0 && cfg.Seed == 0 {
		cfg.Seed = env.Seed
	}
	if env.OutputDir != "" && cfg.Output.CSVDir == defaults.Output.CSVDir {
		cfg.Output.CSVDir = env.OutputDir
	}

	if env.Mode != "" && cfg.Render.Mode == defaults.Render.Mode {
		cfg.Render.Mode = env.Mode
	}
	if env.Font != "" && cfg.Render.Font == "" {
		cfg.Render.Font = env.Font
	}
	if env.Background != "" && cfg.Render.Background == "" {
		cfg.Render.Background = env.Background
	}
	if env.PageSize != "" && cfg.Render.Page.Size == defaults.Render.Page.Size {
		cfg.Render.Page.Size = env.PageSize
	}
}
