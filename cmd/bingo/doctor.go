package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	bingo "github.com/alnah/go-bingo"
	"github.com/alnah/go-bingo/internal/config"
	"github.com/alnah/go-bingo/internal/fileutil"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string         `json:"status"`
	Config    string         `json:"config"`
	Template  templateInfo   `json:"template"`
	WordLists []wordListInfo `json:"word_lists"`
	Render    renderInfo     `json:"render"`
	System    systemInfo     `json:"system"`
	Warnings  []string       `json:"warnings,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

// templateInfo describes the resolved template.
type templateInfo struct {
	Source string `json:"source"`
	Loaded bool   `json:"loaded"`
	Rows   int    `json:"rows,omitempty"`
	Cols   int    `json:"cols,omitempty"`
}

// wordListInfo describes one category's word list against the template.
type wordListInfo struct {
	Marker string `json:"marker"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Words  int    `json:"words"`
	Cells  int    `json:"cells"`
}

// renderInfo holds the sample render outcome.
type renderInfo struct {
	Mode      string `json:"mode"`
	Font      string `json:"font,omitempty"`
	Rendered  bool   `json:"rendered"`
	Bytes     int    `json:"bytes,omitempty"`
	Overflows int    `json:"overflows"`
}

// systemInfo holds output checks.
type systemInfo struct {
	OutputDir      string `json:"output_dir"`
	OutputWritable bool   `json:"output_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags := &generateFlags{}
	fs := newGenerateFlagSet(flags)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printDoctorUsage(env.Stderr) }
	jsonOutput := fs.Bool("json", false, "machine-readable output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	flags.changed = fs.Changed

	result := runDoctor(flags, env)

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(flags *generateFlags, env *Environment) *doctorResult {
	result := &doctorResult{Status: statusReady}
	defer result.finish()

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg, env)
	if err != nil {
		result.fail(err)
		return result
	}
	result.Config = configSource(flags.common.config, envCfg)

	applyEnvConfig(envCfg, cfg)
	if err := mergeGenerateFlags(flags, cfg); err != nil {
		result.fail(err)
		return result
	}
	if err := cfg.Validate(); err != nil {
		result.fail(err)
		return result
	}

	loader, err := resolveLoader(flags.common.assetPath, envCfg, env)
	if err != nil {
		result.fail(err)
		return result
	}

	result.System.OutputDir = cfg.Output.CSVDir
	result.System.OutputWritable = checkWritable(cfg.Output.CSVDir)
	if !result.System.OutputWritable {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", cfg.Output.CSVDir))
	}

	result.Template.Source = cfg.Template
	tmpl, err := loadTemplate(cfg, loader)
	if err != nil {
		result.fail(err)
		return result
	}
	result.Template.Loaded = true
	result.Template.Rows, result.Template.Cols = tmpl.Rows(), tmpl.Cols()

	pools, err := loadPools(cfg, loader)
	if err != nil {
		result.fail(err)
		return result
	}
	checkWordLists(result, cfg, tmpl, pools)
	checkSampleRender(result, cfg, tmpl, pools)
	return result
}

// configSource names where the configuration came from.
func configSource(flagConfig string, envCfg *envConfig) string {
	switch {
	case flagConfig != "":
		return flagConfig
	case envCfg.ConfigPath != "":
		return envCfg.ConfigPath + " (BINGO_CONFIG)"
	default:
		return "built-in defaults"
	}
}

// checkWordLists reports every category and warns when one cannot fill its cells.
func checkWordLists(result *doctorResult, cfg *config.Config, tmpl *bingo.Template, pools bingo.Pools) {
	occurrences := tmpl.Occurrences()
	for _, c := range cfg.Categories {
		marker := strings.TrimSpace(c.Marker)
		info := wordListInfo{
			Marker: marker,
			Name:   categoryName(c),
			Source: c.Words,
			Words:  pools[marker].Len(),
			Cells:  occurrences[marker],
		}
		result.WordLists = append(result.WordLists, info)

		switch {
		case info.Cells == 0:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Category %q is not used by the template", info.Name))
		case info.Words < info.Cells:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Category %q has %d words for %d cells; some cells will be blank", info.Name, info.Words, info.Cells))
		}
	}
}

// checkSampleRender renders one seeded board to nowhere and counts overflow warnings.
func checkSampleRender(result *doctorResult, cfg *config.Config, tmpl *bingo.Template, pools bingo.Pools) {
	result.Render.Mode = cfg.Render.Mode
	result.Render.Font = cfg.Render.Font

	opts := []bingo.GeneratorOption{bingo.WithSeed(1)}
	if cfg.FreeSpace.Label != "" {
		opts = append(opts, bingo.WithFreeLabel(cfg.FreeSpace.Label))
	}
	boards, err := bingo.NewGenerator(opts...).Generate(tmpl, pools, 1)
	if err != nil {
		result.fail(err)
		return
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	sample := *cfg
	sample.Output.ImagesDir = ""
	data, err := renderPDF(context.Background(), boards, &sample, logger)
	if err != nil {
		result.fail(err)
		return
	}
	result.Render.Rendered = true
	result.Render.Bytes = len(data)
	result.Render.Overflows = strings.Count(logs.String(), "overflows")
	if result.Render.Overflows > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d cells of the sample board overflow at the minimum font size", result.Render.Overflows))
	}
	if cfg.Render.Font == "" && !strings.EqualFold(cfg.Render.Mode, config.ModeImage) {
		result.Warnings = append(result.Warnings, "No font configured; text mode falls back to Helvetica (Latin-1 only)")
	}
}

// checkWritable probes dir, or its nearest existing parent, with a temp file.
func checkWritable(dir string) bool {
	probe := dir
	for !fileutil.DirExists(probe) {
		parent := filepath.Dir(probe)
		if parent == probe {
			return false
		}
		probe = parent
	}

	f, err := os.CreateTemp(probe, ".bingo-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// fail records a fatal check error.
func (r *doctorResult) fail(err error) {
	// Hints are for the terminal; keep the first line only.
	msg, _, _ := strings.Cut(err.Error(), "\n")
	r.Errors = append(r.Errors, msg)
}

// finish derives the final status.
func (r *doctorResult) finish() {
	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "bingo doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Inputs")
	if r.Config != "" {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Config)
	}
	if r.Template.Loaded {
		fmt.Fprintf(w, "  [OK] Template: %s (%dx%d)\n", r.Template.Source, r.Template.Rows, r.Template.Cols)
	} else if r.Template.Source != "" {
		fmt.Fprintf(w, "  [ERROR] Template: %s\n", r.Template.Source)
	}
	for _, wl := range r.WordLists {
		tag := "[OK]"
		if wl.Words < wl.Cells || wl.Cells == 0 {
			tag = "[WARN]"
		}
		fmt.Fprintf(w, "  %s Words %s (%s): %d words for %d cells\n", tag, wl.Marker, wl.Name, wl.Words, wl.Cells)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Rendering")
	if r.Render.Rendered {
		fmt.Fprintf(w, "  [OK] Sample board rendered (%s mode, %d bytes)\n", r.Render.Mode, r.Render.Bytes)
	} else {
		fmt.Fprintln(w, "  [ERROR] Sample board not rendered")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.OutputWritable {
		fmt.Fprintf(w, "  [OK] Output directory: %s\n", r.System.OutputDir)
	} else {
		fmt.Fprintf(w, "  [ERROR] Output directory: %s\n", r.System.OutputDir)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
