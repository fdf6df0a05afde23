// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"

	"github.com/alnah/go-bingo/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run 'bingo init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, fileutil.AppName) {
			hint += "; or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingInput returns hints for a missing template or word list.
func ForMissingInput() string {
	return format("paths in a config file are relative to the file; use --words marker=path for word lists")
}

// ForTemplateNotFound lists the embedded templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available templates: " + strings.Join(available, ", ") + "; or pass a .csv path")
}

// ForMissingFont returns hints for font errors in image mode.
func ForMissingFont() string {
	return format("image mode needs a TrueType/OpenType font: use --font /path/to/font.ttf, or --mode text")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForShortfall explains why some cells will be blank.
func ForShortfall(name string, words, cells int) string {
	return format(fmt.Sprintf("category %q has %d words for %d cells; add words to fill every cell", name, words, cells))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
