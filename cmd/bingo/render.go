package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	bingo "github.com/alnah/go-bingo"
)

// Board file naming written by generate and read back by render.
const (
	boardFilePrefix = "bingo_board_"
	boardFileExt    = ".csv"
)

// runRender rebuilds the combined PDF from a folder of board CSV files.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional[1:], " "))
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
	if len(positional) == 1 {
		cfg.Output.CSVDir = positional[0]
	}
	mergeRenderFlags(&flags.render, flags.changed, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	boards, err := readBoardDir(cfg.Output.CSVDir)
	if err != nil {
		return err
	}

	path, err := writePDF(ctx, boards, cfg, newLogger(env.Stderr, flags.common))
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Rendered %d boards to %s\n", len(boards), path)
	}
	return nil
}

// readBoardDir loads every bingo_board_<n>.csv in dir, ordered by n.
// Other files are ignored.
func readBoardDir(dir string) ([]bingo.Board, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading board directory: %w", err)
	}

	var boards []bingo.Board
	for _, entry := range entries {
		index, ok := boardIndex(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		b, err := readBoardFile(filepath.Join(dir, entry.Name()), index)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}

	if len(boards) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoBoardFiles, dir)
	}
	slices.SortFunc(boards, func(a, b bingo.Board) int { return a.Index - b.Index })
	return boards, nil
}

// boardIndex extracts n from "bingo_board_<n>.csv".
func boardIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, boardFilePrefix)
	if !ok {
		return 0, false
	}
	num, ok := strings.CutSuffix(rest, boardFileExt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func readBoardFile(path string, index int) (bingo.Board, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the listed directory
	if err != nil {
		return bingo.Board{}, fmt.Errorf("opening board: %w", err)
	}
	defer f.Close()

	b, err := bingo.ReadBoardCSV(f, index)
	if err != nil {
		return bingo.Board{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
