package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/caption/internal/logging"
)

// Format is a catalog file encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatTOML
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Catalog is a set of styles keyed by name.
type Catalog struct {
	styles map[string]*Style
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{styles: make(map[string]*Style)}
}

// LoadCatalog reads a JSON or TOML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read catalog: %w", err)
	}
	cat, err := ParseCatalog(data, format)
	if err != nil {
		return nil, fmt.Errorf("style: %s: %w", path, err)
	}
	logging.Logger().Debug("style: catalog loaded", "path", path, "styles", len(cat.styles))
	return cat, nil
}

// ParseCatalog decodes catalog bytes. TOML is converted to the JSON schema
// first so both formats share one decoder.
func ParseCatalog(data []byte, format Format) (*Catalog, error) {
	if format == FormatTOML {
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		var err error
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("normalize toml: %w", err)
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	cat := NewCatalog()
	for name, entry := range raw {
		var s Style
		if err := json.Unmarshal(entry, &s); err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		cat.Add(name, &s)
	}
	return cat, nil
}

// Add stores s under name. An empty s.Name is set to name.
func (c *Catalog) Add(name string, s *Style) {
	if s.Name == "" {
		s.Name = name
	}
	c.styles[name] = s
}

// Get returns a copy of the named style.
func (c *Catalog) Get(name string) (*Style, error) {
	s, ok := c.styles[name]
	if !ok {
		return nil, &UnknownStyleError{Name: name, Available: c.Names()}
	}
	return s.Clone(), nil
}

// Names returns the style names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.styles))
	for name := range c.styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of styles.
func (c *Catalog) Len() int { return len(c.styles) }

// Encode writes the catalog in the given format.
func (c *Catalog) Encode(w io.Writer, format Format) error {
	data, err := json.MarshalIndent(c.styles, "", "  ")
	if err != nil {
		return fmt.Errorf("style: encode catalog: %w", err)
	}
	if format == FormatJSON {
		_, err = w.Write(append(data, '\n'))
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("style: encode catalog: %w", err)
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("style: encode toml: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Save writes the catalog to path, choosing the format from its extension.
func (c *Catalog) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
