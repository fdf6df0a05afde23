package bingo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFreeMarker is the template token for the free space.
const DefaultFreeMarker = "e"

// CellKind classifies a template cell.
type CellKind int

// Template cell kinds.
const (
	CellLiteral  CellKind = iota // copied verbatim to every board
	CellCategory                 // filled from the category's word pool
	CellFree                     // replaced by the free-space label
)

// String returns the kind name used in diagnostics.
func (k CellKind) String() string {
	switch k {
	case CellCategory:
		return "category"
	case CellFree:
		return "free"
	default:
		return "literal"
	}
}

// Cell is one template position.
// For category cells Value holds the marker, otherwise the literal text.
type Cell struct {
	Kind  CellKind
	Value string
}

// Markers tells ParseTemplate how to classify tokens.
type Markers struct {
	Categories map[string]string // marker -> category name
	Free       string            // free-space marker (default "e")
}

// Validate rejects empty markers and a free marker that collides with a category.
func (m Markers) Validate() error {
	for marker := range m.Categories {
		if strings.TrimSpace(marker) == "" {
			return fmt.Errorf("%w: empty category marker", ErrInvalidMarker)
		}
		if marker == m.free() {
			return fmt.Errorf("%w: %q is both a category and the free-space marker", ErrInvalidMarker, marker)
		}
	}
	return nil
}

func (m Markers) free() string {
	if m.Free == "" {
		return DefaultFreeMarker
	}
	return m.Free
}

// Template is an immutable grid of cell codes shared by every generated board.
type Template struct {
	cells [][]Cell
	cols  int
}

// ParseTemplate reads a comma-separated grid and classifies each token.
func ParseTemplate(r io.Reader, m Markers) (*Template, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTemplate
	}

	t := &Template{cols: len(records[0])}
	free := m.free()
	for i, record := range records {
		if len(record) != t.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedTemplate, i+1, len(record), t.cols)
		}
		row := make([]Cell, len(record))
		for j, token := range record {
			token = strings.TrimSpace(token)
			switch {
			case token == free:
				row[j] = Cell{Kind: CellFree, Value: token}
			case isCategory(m, token):
				row[j] = Cell{Kind: CellCategory, Value: token}
			default:
				row[j] = Cell{Kind: CellLiteral, Value: token}
			}
		}
		t.cells = append(t.cells, row)
	}

	if t.cols == 0 {
		return nil, ErrEmptyTemplate
	}
	return t, nil
}

func isCategory(m Markers, token string) bool {
	_, ok := m.Categories[token]
	return ok
}

// LoadTemplate opens and parses a template file.
// A missing file yields ErrMissingInput.
func LoadTemplate(path string, m Markers) (*Template, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: template %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()

	t, err := ParseTemplate(f, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Rows returns the number of template rows.
func (t *Template) Rows() int { return len(t.cells) }

// Cols returns the number of template columns.
func (t *Template) Cols() int { return t.cols }

// Cell returns the cell at row i, column j.
func (t *Template) Cell(i, j int) Cell { return t.cells[i][j] }

// Occurrences counts category cells per marker.
func (t *Template) Occurrences() map[string]int {
	counts := make(map[string]int)
	for _, row := range t.cells {
		for _, c := range row {
			if c.Kind == CellCategory {
				counts[c.Value]++
			}
		}
	}
	return counts
}
