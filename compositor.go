package caption

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/caption/canvas"
	"github.com/gogpu/caption/effect"
	"github.com/gogpu/caption/style"
	"github.com/gogpu/caption/typeface"
)

// trailing is how long the last window may stay queryable after the last
// word ends.
const trailing = 1.0

// Compositor renders one word list in one style at one resolution.
//
// Thread safety: a Compositor is immutable after New and safe for
// concurrent use.
type Compositor struct {
	style    *style.Style
	spec     effect.Spec
	fonts    *typeface.Cache
	words    []Word
	windows  []Window
	area     canvas.SafeArea
	anchor   image.Point
	offset   image.Point
	duration float64
	animated bool
}

// Frame is one rendered subtitle and where it was placed.
type Frame struct {
	// Image is the full canvas, transparent outside Rect.
	Image *image.RGBA

	Time float64

	// Window and Highlight index the active window and its spoken word.
	// Highlight is -1 between words.
	Window    int
	Highlight int

	// Rect is where the effect bitmap landed on the canvas.
	Rect image.Rectangle

	// Scale is the downscale applied to fit the safe area, 1 when none.
	Scale float64

	// Box and Words are the effect's layout geometry in canvas coordinates.
	Box   image.Rectangle
	Words []effect.WordBox
}

// New binds words and s to a canvas. The style is copied, so later changes
// to s do not affect the Compositor.
func New(words []Word, s *style.Style, opts ...Option) (*Compositor, error) {
	if s == nil {
		return nil, ErrNilStyle
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, o.width, o.height)
	}

	n := s.Clone().Normalized()
	st := &n
	spec, err := effect.FromStyle(st)
	if err != nil {
		return nil, fmt.Errorf("caption: style %q: %w", st.Name, err)
	}
	if err := effect.Validate(spec); err != nil {
		return nil, fmt.Errorf("caption: style %q: %w", st.Name, err)
	}

	position := st.Layout.Position
	if o.position != nil {
		position = *o.position
	}
	safeZones := st.Layout.SafeZonesEnabled()
	if o.safeZones != nil {
		safeZones = *o.safeZones
	}
	perWindow := st.Layout.WordsPerWindow
	if o.wordsPerWindow > 0 {
		perWindow = o.wordsPerWindow
	}
	offset := image.Pt(st.Layout.Offset.X, st.Layout.Offset.Y)
	if o.offset != nil {
		offset = *o.offset
	}
	fonts := o.fonts
	if fonts == nil {
		fonts = typeface.NewCache(o.resolver)
	}

	words = slices.Clone(words)
	area := canvas.NewSafeArea(o.width, o.height, safeZones)
	c := &Compositor{
		style:    st,
		spec:     spec,
		fonts:    fonts,
		words:    words,
		windows:  Segment(words, perWindow),
		area:     area,
		anchor:   area.Point(position),
		offset:   offset,
		duration: duration(words),
		animated: animated(spec),
	}
	Logger().Info("caption: compositor ready",
		"style", st.Name, "effect", st.Effect, "words", len(words),
		"windows", len(c.windows), "width", o.width, "height", o.height)
	return c, nil
}

func duration(words []Word) float64 {
	if len(words) == 0 {
		return 0
	}
	end := math.Inf(-1)
	for _, w := range words {
		end = max(end, w.End)
	}
	return end + trailing
}

// animated reports whether the effect output depends on time.
func animated(spec effect.Spec) bool {
	g, ok := spec.(effect.Glow)
	return ok && g.Pulse.Enabled
}

// Duration returns the last word's end plus one second, or 0 without words.
func (c *Compositor) Duration() float64 { return c.duration }

// Windows returns a copy of the display windows.
func (c *Compositor) Windows() []Window { return slices.Clone(c.windows) }

// Style returns a copy of the normalized style.
func (c *Compositor) Style() *style.Style { return c.style.Clone() }

// SafeArea returns the canvas safe area.
func (c *Compositor) SafeArea() canvas.SafeArea { return c.area }

// Animated reports whether frames inside one word depend on the exact time.
func (c *Compositor) Animated() bool { return c.animated }

// Locate returns the active window and highlighted word at t. When windows
// overlap, the first one in order wins; likewise for words. word is -1
// between words. ok is false outside [0, Duration] or between windows.
func (c *Compositor) Locate(t float64) (window, word int, ok bool) {
	if t < 0 || t > c.duration {
		return -1, -1, false
	}
	for i, w := range c.windows {
		if w.Contains(t) {
			return i, w.Highlight(t), true
		}
	}
	return -1, -1, false
}

// Render returns the canvas at t, or nil when no subtitle is visible.
func (c *Compositor) Render(t float64) *image.RGBA {
	f, ok := c.RenderFrame(t)
	if !ok {
		return nil
	}
	return f.Image
}

// RenderFrame renders the canvas at t along with its layout. ok is false
// when no subtitle is visible.
func (c *Compositor) RenderFrame(t float64) (f Frame, ok bool) {
	wi, hi, ok := c.Locate(t)
	if !ok {
		return Frame{}, false
	}
	res := effect.RenderResult(c.spec, effect.Input{
		Words:        c.windows[wi].Texts(),
		Highlight:    hi,
		Time:         t,
		CanvasWidth:  c.area.Width,
		CanvasHeight: c.area.Height,
		SafeMargin:   c.area.Margins.Sides,
	}, c.fonts)

	img := canvas.Fit(res.Image, c.area.Span(), c.area.Height)
	scale := 1.0
	if src := res.Image.Bounds().Dx(); src > 0 && img != res.Image {
		scale = float64(img.Bounds().Dx()) / float64(src)
	}

	dst := image.NewRGBA(c.area.Bounds())
	r := canvas.Place(dst, img, c.area, c.anchor, c.offset)

	f = Frame{
		Image:     dst,
		Time:      t,
		Window:    wi,
		Highlight: hi,
		Rect:      r,
		Scale:     scale,
		Box:       transform(res.Box, scale, r.Min),
		Words:     make([]effect.WordBox, len(res.Words)),
	}
	for i, w := range res.Words {
		w.Rect = transform(w.Rect, scale, r.Min)
		f.Words[i] = w
	}
	return f, true
}

// transform maps a rectangle from effect-image space to canvas space.
func transform(r image.Rectangle, scale float64, origin image.Point) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	if scale != 1 {
		r = image.Rect(
			int(math.Floor(float64(r.Min.X)*scale)), int(math.Floor(float64(r.Min.Y)*scale)),
			int(math.Ceil(float64(r.Max.X)*scale)), int(math.Ceil(float64(r.Max.Y)*scale)),
		)
	}
	return r.Add(origin)
}

// FrameKey identifies the pixels of a frame. Two times with equal keys
// render identical canvases, except that animated styles only resolve time
// to the millisecond.
type FrameKey struct {
	Window    int
	Highlight int

	// Tick is the time in milliseconds for animated styles and 0 otherwise.
	Tick int64
}

// FrameKey returns the key of the frame at t. ok is false when no subtitle
// is visible.
func (c *Compositor) FrameKey(t float64) (key FrameKey, ok bool) {
	wi, hi, ok := c.Locate(t)
	if !ok {
		return FrameKey{}, false
	}
	key = FrameKey{Window: wi, Highlight: hi}
	if c.animated {
		key.Tick = int64(math.Round(t * 1000))
	}
	return key, true
}
