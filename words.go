package bingo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordPool is the ordered, duplicate-free word list of one category.
// A pool is never shuffled in place; the generator works on copies.
type WordPool struct {
	Name  string
	Words []string
}

// Len returns the number of words in the pool.
func (p WordPool) Len() int { return len(p.Words) }

// Pools maps a category marker to its word pool.
type Pools map[string]WordPool

// LoadWords reads one label per line. Lines are trimmed and NFC-normalized,
// blank lines are skipped and later duplicates are dropped.
func LoadWords(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListRead, err)
	}
	return words, nil
}

// LoadWordPool reads the word list at path into a named pool.
// A missing file yields ErrMissingInput.
func LoadWordPool(name, path string) (WordPool, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return WordPool{}, fmt.Errorf("%w: word list %s", ErrMissingInput, path)
		}
		return WordPool{}, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	words, err := LoadWords(f)
	if err != nil {
		return WordPool{}, fmt.Errorf("%s: %w", path, err)
	}
	return WordPool{Name: name, Words: words}, nil
}

// Shortfall describes a category with fewer words than template cells.
type Shortfall struct {
	Marker string
	Name   string
	Words  int
	Cells  int
}

// Shortfalls lists categories whose pool cannot fill every template cell.
// Missing pools count as empty. Results are ordered by marker.
func Shortfalls(t *Template, pools Pools) []Shortfall {
	var out []Shortfall
	for marker, cells := range t.Occurrences() {
		pool := pools[marker]
		if pool.Len() < cells {
			out = append(out, Shortfall{Marker: marker, Name: pool.Name, Words: pool.Len(), Cells: cells})
		}
	}
	slices.SortFunc(out, func(a, b Shortfall) int {
		return strings.Compare(a.Marker, b.Marker)
	})
	return out
}
