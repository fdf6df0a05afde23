package assets

import (
	"embed"
	"io/fs"
	"slices"
	"strings"
)

//go:embed templates/*.csv words/*.txt
var embedded embed.FS

// EmbeddedLoader loads the built-in templates and word lists.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load reads a built-in asset by name, without extension.
func (e *EmbeddedLoader) Load(kind Kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := embedded.ReadFile(kind.file(name))
	if err != nil {
		return nil, kind.missing(name)
	}
	return content, nil
}

// Names lists the built-in assets of a kind.
func (e *EmbeddedLoader) Names(kind Kind) ([]string, error) {
	entries, err := fs.ReadDir(embedded, kind.dir)
	if err != nil {
		return nil, nil
	}
	return namesFromEntries(entries, kind.ext), nil
}

func namesFromEntries(entries []fs.DirEntry, ext string) []string {
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
