package assets

import (
	"fmt"
	"strings"
)

// Kind identifies a family of assets stored as {dir}/{name}{ext}.
type Kind struct {
	dir      string
	ext      string
	notFound error
}

// Asset kinds.
var (
	Template = Kind{dir: "templates", ext: ".csv", notFound: ErrTemplateNotFound}
	WordList = Kind{dir: "words", ext: ".txt", notFound: ErrWordListNotFound}
)

// String returns the kind's directory name.
func (k Kind) String() string { return k.dir }

func (k Kind) file(name string) string { return k.dir + "/" + name + k.ext }

func (k Kind) missing(name string) error { return fmt.Errorf("%w: %q", k.notFound, name) }

// AssetLoader defines the contract for loading board templates and word lists.
type AssetLoader interface {
	// Load returns the raw content of the named asset.
	// Returns the kind's not-found error if the asset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	Load(kind Kind, name string) ([]byte, error)

	// Names lists the available assets of a kind, sorted.
	Names(kind Kind) ([]string, error)
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
