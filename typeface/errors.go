package typeface

import "errors"

// Sentinel errors for typeface package.
var (
	// ErrNotFound is returned by a Resolver that has no font for a name.
	ErrNotFound = errors.New("typeface: font not found")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")
)
