package typeface

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a parsed font file. It is immutable after construction and can
// produce faces of any size.
type Source struct {
	name string
	sfnt *sfnt.Font

	// shaping is the go-text view of the same bytes; nil when go-text cannot
	// parse the file, in which case faces fall back to sfnt advances.
	shaping *font.Font

	buffers sync.Pool
}

// NewSource parses data as a TrueType or OpenType font.
func NewSource(name string, data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: parse %q: %w", name, err)
	}
	s := &Source{
		name: name,
		sfnt: f,
		buffers: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}
	if face, err := font.ParseTTF(bytes.NewReader(data)); err == nil {
		s.shaping = face.Font
	}
	return s, nil
}

// Name returns the family name the source was resolved under.
func (s *Source) Name() string { return s.name }

// Face returns a face of the given pixel size.
func (s *Source) Face(size float64) *Face {
	return newFace(s, size)
}

func (s *Source) buffer() *sfnt.Buffer { return s.buffers.Get().(*sfnt.Buffer) }

func (s *Source) release(b *sfnt.Buffer) { s.buffers.Put(b) }
