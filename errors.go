package bingo

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrMissingInput   = errors.New("input file not found")
	ErrEmptyTemplate  = errors.New("template has no cells")
	ErrRaggedTemplate = errors.New("template rows have different lengths")
	ErrTemplateParse  = errors.New("failed to parse template")
	ErrWordListRead   = errors.New("failed to read word list")
	ErrInvalidMarker  = errors.New("invalid marker")
	ErrInvalidCount   = errors.New("invalid board count")
	ErrBoardParse     = errors.New("failed to parse board")

	// Rendering errors.
	ErrMissingFont     = errors.New("font resource not found")
	ErrFontParse       = errors.New("failed to parse font")
	ErrBackgroundLoad  = errors.New("failed to load background image")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrImageEncode     = errors.New("failed to encode page image")
	ErrNoBoards        = errors.New("no boards to render")
	ErrBoardShape      = errors.New("board shape differs from first board")
	ErrInvalidGridBox  = errors.New("invalid grid box")
	ErrInvalidRenderer = errors.New("invalid renderer configuration")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
