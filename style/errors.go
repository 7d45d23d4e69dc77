package style

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for style package.
var (
	// ErrUnknownStyle is matched by *UnknownStyleError.
	ErrUnknownStyle = errors.New("style: unknown style")

	// ErrEmptyCatalog is returned when a catalog file defines no styles.
	ErrEmptyCatalog = errors.New("style: catalog has no styles")

	// ErrUnsupportedFormat is returned for catalog files that are neither
	// JSON nor TOML.
	ErrUnsupportedFormat = errors.New("style: unsupported catalog format")
)

// UnknownStyleError reports a lookup of a style name the catalog does not
// define, together with the names it does define.
type UnknownStyleError struct {
	Name      string
	Available []string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("style: unknown style %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Is makes errors.Is(err, ErrUnknownStyle) succeed.
func (e *UnknownStyleError) Is(target error) bool {
	return target == ErrUnknownStyle
}
