package bingo

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
)

// fontSource describes where cell text gets its glyphs.
// Data wins over Path; both empty means "no font configured".
type fontSource struct {
	Path string
	Data []byte
}

func (s fontSource) configured() bool {
	return len(s.Data) > 0 || s.Path != ""
}

// load returns the raw font bytes.
// A configured path that does not exist yields ErrMissingFont.
func (s fontSource) load() ([]byte, error) {
	if len(s.Data) > 0 {
		return s.Data, nil
	}
	if s.Path == "" {
		return nil, fmt.Errorf("%w: no font configured", ErrMissingFont)
	}
	data, err := os.ReadFile(s.Path) // #nosec G304 -- font path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFont, s.Path)
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingFont, err)
	}
	return data, nil
}

// parseFont loads and parses the font for raster rendering.
func parseFont(src fontSource) (*opentype.Font, error) {
	data, err := src.load()
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontParse, err)
	}
	return f, nil
}
