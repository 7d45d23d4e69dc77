package canvas

import (
	"image"

	"github.com/gogpu/caption/style"
)

// Anchor selects the vertical placement of a caption.
type Anchor = style.Position

// Anchors.
const (
	Bottom = style.PositionBottom
	Center = style.PositionCenter
	Top    = style.PositionTop
)

// anchorInset is the distance between the top or bottom margin and the
// caption center.
const anchorInset = 50

// Margins are the screen-edge exclusion sizes in pixels.
type Margins struct {
	Top, Bottom, Sides int
}

var (
	// SafeZoneMargins keep captions clear of platform overlays on a
	// portrait short-form video.
	SafeZoneMargins = Margins{Top: 220, Bottom: 450, Sides: 100}

	// RelaxedMargins are used when safe zones are disabled.
	RelaxedMargins = Margins{Top: 50, Bottom: 50, Sides: 50}
)

// clamp limits every margin to a quarter of the matching canvas dimension so
// small or landscape canvases keep a usable area.
func (m Margins) clamp(w, h int) Margins {
	return Margins{
		Top:    min(m.Top, h/4),
		Bottom: min(m.Bottom, h/4),
		Sides:  min(m.Sides, w/4),
	}
}

// SafeArea is the region of a canvas captions may occupy.
type SafeArea struct {
	Width, Height int
	Margins       Margins
}

// NewSafeArea returns the safe area of a w×h canvas.
func NewSafeArea(w, h int, safeZones bool) SafeArea {
	m := RelaxedMargins
	if safeZones {
		m = SafeZoneMargins
	}
	return SafeArea{Width: max(w, 0), Height: max(h, 0), Margins: m.clamp(max(w, 0), max(h, 0))}
}

// Left returns the leftmost x a caption may cover.
func (a SafeArea) Left() int { return a.Margins.Sides }

// Right returns the x just past the rightmost column a caption may cover.
func (a SafeArea) Right() int { return a.Width - a.Margins.Sides }

// Span returns the width between Left and Right.
func (a SafeArea) Span() int { return max(a.Right()-a.Left(), 0) }

// Bounds returns the canvas rectangle.
func (a SafeArea) Bounds() image.Rectangle { return image.Rect(0, 0, a.Width, a.Height) }

// Point returns the point a caption is centered on for anchor.
func (a SafeArea) Point(anchor Anchor) image.Point {
	x := a.Width / 2
	switch anchor {
	case Top:
		return image.Pt(x, a.Margins.Top+anchorInset)
	case Center:
		return image.Pt(x, a.Height/2)
	default:
		return image.Pt(x, a.Height-a.Margins.Bottom-anchorInset)
	}
}
