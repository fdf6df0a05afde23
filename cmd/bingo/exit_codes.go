package main

import (
	"errors"
	"os"

	bingo "github.com/alnah/go-bingo"
	"github.com/alnah/go-bingo/internal/assets"
	"github.com/alnah/go-bingo/internal/config"
)

// Exit codes for the bingo CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Boards generated or rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or markers
	ExitIO      = 3 // Missing input, permission denied, write failure
	ExitRender  = 4 // Font, background image or PDF errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, bingo.ErrMissingFont) ||
		errors.Is(err, bingo.ErrFontParse) ||
		errors.Is(err, bingo.ErrBackgroundLoad) ||
		errors.Is(err, bingo.ErrPDFGeneration) ||
		errors.Is(err, bingo.ErrImageEncode) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, bingo.ErrMissingInput) ||
		errors.Is(err, bingo.ErrWordListRead) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoBoardFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, bingo.ErrEmptyTemplate) ||
		errors.Is(err, bingo.ErrRaggedTemplate) ||
		errors.Is(err, bingo.ErrTemplateParse) ||
		errors.Is(err, bingo.ErrInvalidMarker) ||
		errors.Is(err, bingo.ErrInvalidCount) ||
		errors.Is(err, bingo.ErrBoardParse) ||
		errors.Is(err, bingo.ErrBoardShape) ||
		errors.Is(err, bingo.ErrInvalidGridBox) ||
		errors.Is(err, bingo.ErrInvalidRenderer) ||
		errors.Is(err, bingo.ErrInvalidPageSize) ||
		errors.Is(err, bingo.ErrInvalidOrientation) ||
		errors.Is(err, bingo.ErrInvalidMargin) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrWordListNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidWordsFlag) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
