package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a parsed TrueType or OpenType font. One Source creates faces
// at any size and is safe to share.
type Source struct {
	data []byte
	font *opentype.Font
	name string
}

// NewSource parses font data. The data slice is copied.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	s := &Source{
		data: append([]byte(nil), data...),
		font: f,
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewSourceFromFile loads a Source from a font file.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return NewSource(data)
}

// Name returns the family name stored in the font, or "".
func (s *Source) Name() string { return s.name }

// Data returns the raw font bytes. The caller must not modify them.
func (s *Source) Data() []byte { return s.data }
