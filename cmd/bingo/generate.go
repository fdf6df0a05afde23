package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bingo/internal/config"
)

// runGenerate creates boards, writes their CSV files and renders the combined PDF.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadConfig(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeGenerateFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loader, err := resolveLoader(flags.common.assetPath, envCfg, env)
	if err != nil {
		return fmt.Errorf("asset path: %w", err)
	}
	logger := newLogger(env.Stderr, flags.common)

	var warn io.Writer
	if !flags.common.quiet {
		warn = env.Stderr
	}

	start := env.Now()
	boards, err := generateBoards(cfg, loader, warn)
	if err != nil {
		return err
	}

	// Render before touching the output directory so a missing font or
	// background leaves nothing behind.
	var pdf []byte
	if !flags.noPDF && len(boards) > 0 {
		if pdf, err = renderPDF(ctx, boards, cfg, logger); err != nil {
			return err
		}
	}

	stale, err := writeBoardCSVs(boards, cfg.Output.CSVDir)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Generated %d boards in %s\n", len(boards), cfg.Output.CSVDir)
		if stale > 0 {
			fmt.Fprintf(env.Stderr, "removed %d board files from an earlier run\n", stale)
		}
	}

	if pdf == nil {
		return nil
	}
	path, err := savePDF(pdf, cfg)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "done in %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// mergeGenerateFlags applies flags that were set on the command line.
func mergeGenerateFlags(flags *generateFlags, cfg *config.Config) error {
	changed := flags.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("count") {
		cfg.Count = flags.board.count
	}
	if changed("template") {
		cfg.Template = flags.board.template
	}
	if changed("free-marker") {
		cfg.FreeSpace.Marker = flags.board.freeMarker
	}
	if changed("free-label") {
		cfg.FreeSpace.Label = flags.board.freeLabel
	}
	if changed("seed") {
		cfg.Seed = flags.board.seed
	}
	if changed("output-dir") {
		cfg.Output.CSVDir = flags.outputDir
	}
	if err := applyWordsFlags(flags.board.words, cfg); err != nil {
		return err
	}

	mergeRenderFlags(&flags.render, changed, cfg)
	return nil
}

// mergeRenderFlags applies render flags that were set on the command line.
func mergeRenderFlags(f *renderFlags, changed func(string) bool, cfg *config.Config) {
	r := &cfg.Render
	if changed("mode") {
		r.Mode = f.mode
	}
	if changed("font") {
		r.Font = f.font
	}
	if changed("background") {
		r.Background = f.background
	}
	if changed("dpi") {
		r.DPI = f.dpi
	}
	if changed("min-font") {
		r.MinFontSize = f.minFont
	}
	if changed("padding") {
		r.Padding = f.padding
	}
	if f.noTitle {
		r.Title = false
	}
	if changed("page-size") {
		r.Page.Size = f.page.size
	}
	if changed("orientation") {
		r.Page.Orientation = f.page.orientation
	}
	if changed("margin") {
		r.Page.Margin = f.page.margin
	}
	if changed("pdf") {
		cfg.Output.PDF = f.pdf
	}
	if changed("images") {
		cfg.Output.ImagesDir = f.imagesDir
	}
}
