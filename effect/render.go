package effect

import (
	"image"
	"strings"

	"github.com/gogpu/caption/internal/logging"
	"github.com/gogpu/caption/style"
	"github.com/gogpu/caption/typeface"
)

// Input is the text and context of one render call.
type Input struct {
	// Words of the active window, untransformed.
	Words []string

	// Highlight is the index into Words of the word being spoken, or -1.
	Highlight int

	// Time is the query time in seconds, read by pulsing glows only.
	Time float64

	CanvasWidth  int
	CanvasHeight int

	// SafeMargin is the horizontal margin the background effect keeps
	// its box inside.
	SafeMargin int
}

// highlighted reports whether any word of the window is highlighted.
func (in Input) highlighted() bool {
	return in.Highlight >= 0 && in.Highlight < len(in.Words)
}

// WordBox locates one rendered word inside the result image.
type WordBox struct {
	Text        string
	Rect        image.Rectangle
	Color       style.RGB
	Highlighted bool
}

// Result is a rendered caption and the geometry it was laid out with.
type Result struct {
	Image *image.RGBA

	// Box is the background box drawn behind the text: the whole window for
	// Background and DeepDiver, the highlighted word for WordHighlight.
	// It is empty for effects without a box.
	Box image.Rectangle

	// Words is filled by the per-word effects.
	Words []WordBox

	// Size is the font size actually used after any fitting.
	Size float64
}

// Render draws the window with spec. An empty window yields an empty image.
func Render(spec Spec, in Input, fonts *typeface.Cache) *image.RGBA {
	return RenderResult(spec, in, fonts).Image
}

// RenderResult is Render plus layout geometry.
func RenderResult(spec Spec, in Input, fonts *typeface.Cache) Result {
	if fonts == nil {
		fonts = defaultFonts
	}
	if len(in.Words) == 0 || strings.TrimSpace(strings.Join(in.Words, "")) == "" {
		return Result{Image: image.NewRGBA(image.Rectangle{})}
	}

	switch s := spec.(type) {
	case Simple:
		return renderSimple(s, in, fonts)
	case Outline:
		return renderOutline(s, in, fonts)
	case Background:
		return renderBackground(s, in, fonts)
	case Glow:
		return renderGlow(s, in, fonts)
	case DualGlow:
		return renderDualGlow(s, in, fonts)
	case TextShadow:
		return renderTextShadow(s, in, fonts)
	case WordHighlight:
		return renderWordHighlight(s, in, fonts)
	case DeepDiver:
		return renderDeepDiver(s, in, fonts)
	}

	logging.Logger().Warn("effect: unsupported spec, drawing plain text", "spec", spec)
	var t Text
	if spec != nil {
		t = spec.typography()
	}
	if t.Size <= 0 {
		t.Size = style.DefaultFontSize
	}
	return renderSimple(Simple{Text: t, Color: style.RGB{R: 255, G: 255, B: 255}}, in, fonts)
}

var defaultFonts = typeface.NewCache(nil)
