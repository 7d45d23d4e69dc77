package caption

import (
	"image"

	"github.com/gogpu/caption/canvas"
	"github.com/gogpu/caption/typeface"
)

// Default canvas size: a portrait short-form video.
const (
	DefaultWidth  = 1080
	DefaultHeight = 1920

	defaultWordsPerWindow = 3
)

// Option configures a Compositor during creation.
//
// Example:
//
//	c, err := caption.New(words, s,
//	    caption.WithResolution(1920, 1080),
//	    caption.WithPosition(canvas.Top),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation. Pointer
// fields override the style's layout when set.
type options struct {
	width, height  int
	position       *canvas.Anchor
	safeZones      *bool
	wordsPerWindow int
	offset         *image.Point
	fonts          *typeface.Cache
	resolver       typeface.Resolver
}

func defaultOptions() options {
	return options{width: DefaultWidth, height: DefaultHeight}
}

// WithResolution sets the canvas size in pixels.
func WithResolution(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithPosition overrides the style's vertical anchor.
func WithPosition(p canvas.Anchor) Option {
	return func(o *options) {
		o.position = &p
	}
}

// WithSafeZones overrides the style's safe-zone flag.
func WithSafeZones(enabled bool) Option {
	return func(o *options) {
		o.safeZones = &enabled
	}
}

// WithWordsPerWindow overrides the style's window size.
func WithWordsPerWindow(n int) Option {
	return func(o *options) {
		o.wordsPerWindow = n
	}
}

// WithOffset overrides the style's placement offset.
func WithOffset(dx, dy int) Option {
	return func(o *options) {
		p := image.Pt(dx, dy)
		o.offset = &p
	}
}

// WithFonts shares a font cache between compositors.
// It takes precedence over WithFontResolver.
func WithFonts(c *typeface.Cache) Option {
	return func(o *options) {
		o.fonts = c
	}
}

// WithFontResolver sets where font families are looked up. The built-in
// face is always the last resort.
func WithFontResolver(r typeface.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}
