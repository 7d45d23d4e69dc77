package typeface

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultName is the family name that always maps to the built-in face.
const DefaultName = "default"

// Resolver maps a font family name to raw TrueType/OpenType bytes.
// Implementations return an error wrapping ErrNotFound when the name is
// unknown to them.
type Resolver interface {
	Resolve(name string) ([]byte, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) ([]byte, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(name string) ([]byte, error) { return f(name) }

// MapResolver serves fonts from memory.
type MapResolver map[string][]byte

// Resolve implements Resolver.
func (m MapResolver) Resolve(name string) ([]byte, error) {
	if data, ok := m[name]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// fontExts are tried in order when a name has no extension.
var fontExts = []string{"", ".ttf", ".otf", ".TTF", ".OTF"}

// DirResolver looks fonts up on a filesystem. A name that is itself a path to
// an existing file is read directly; otherwise each directory is searched for
// name, name.ttf and name.otf in order.
type DirResolver struct {
	Dirs []string

	// FS, when set, replaces the OS filesystem. Dirs are then interpreted
	// relative to FS.
	FS fs.FS
}

// Resolve implements Resolver.
func (r DirResolver) Resolve(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	if data, err := r.read(name); err == nil {
		return data, nil
	}
	if filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	for _, dir := range r.Dirs {
		for _, ext := range fontExts {
			if ext != "" && strings.EqualFold(filepath.Ext(name), ext) {
				continue
			}
			if data, err := r.read(filepath.Join(dir, name+ext)); err == nil {
				return data, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q in %v", ErrNotFound, name, r.Dirs)
}

func (r DirResolver) read(path string) ([]byte, error) {
	if r.FS != nil {
		return fs.ReadFile(r.FS, filepath.ToSlash(path))
	}
	return os.ReadFile(path)
}

// Chain tries each resolver in order and returns the first hit.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(name string) ([]byte, error) {
	var errs []error
	for _, r := range c {
		if r == nil {
			continue
		}
		data, err := r.Resolve(name)
		if err == nil {
			return data, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil, errors.Join(errs...)
}

// Builtin resolves the families bundled with the package: "default" and
// "Go-Bold" map to Go Bold, "Go-Regular" to Go Regular.
var Builtin Resolver = MapResolver{
	DefaultName:  gobold.TTF,
	"Go-Bold":    gobold.TTF,
	"Go-Regular": goregular.TTF,
}

// Default returns the bytes of the built-in fallback face.
func Default() []byte { return gobold.TTF }
