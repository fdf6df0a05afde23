package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrWordListNotFound = errors.New("word list not found")

	// ErrInvalidAssetName is returned for empty names and names holding a
	// path separator or dot.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath is returned when --asset-path is not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	ErrAssetRead     = errors.New("failed to read asset")
	ErrPathTraversal = errors.New("path traversal detected")
)
