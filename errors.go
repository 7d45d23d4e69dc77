package caption

import "errors"

var (
	// ErrNilStyle is returned by New when no style is given.
	ErrNilStyle = errors.New("caption: nil style")

	// ErrInvalidResolution is returned by New for a non-positive canvas size.
	ErrInvalidResolution = errors.New("caption: invalid resolution")

	// ErrInvalidFPS is returned by RenderFrames for a non-positive frame rate.
	ErrInvalidFPS = errors.New("caption: invalid frame rate")
)
