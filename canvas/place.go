package canvas

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/caption/internal/blend"
)

// Fit returns src uniformly scaled down to at most maxW×maxH. src itself is
// returned when it already fits.
func Fit(src *image.RGBA, maxW, maxH int) *image.RGBA {
	b := src.Bounds()
	if b.Empty() || (b.Dx() <= maxW && b.Dy() <= maxH) {
		return src
	}
	if maxW <= 0 || maxH <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	k := min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*k))
	h := max(1, int(float64(b.Dy())*k))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Place composites src onto dst centered on p shifted by offset. The result
// is clamped into the safe band horizontally and into the canvas vertically.
// Place returns the rectangle src was drawn at.
func Place(dst, src *image.RGBA, area SafeArea, p, offset image.Point) image.Rectangle {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	x := p.X - w/2 + offset.X
	y := p.Y - h/2 + offset.Y
	x = max(area.Left(), min(x, area.Right()-w))
	y = max(0, min(y, area.Height-h))

	r := image.Rect(x, y, x+w, y+h)
	blend.Over(dst, src, r.Min)
	return r
}

// Cover scales src to fill a w×h image, cropping the overflowing axis
// around the center.
func Cover(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	sb := src.Bounds()
	if sb.Empty() || dst.Bounds().Empty() {
		return dst
	}
	if sb.Dx() == w && sb.Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
		return dst
	}
	k := max(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	cw := min(sb.Dx(), int(float64(w)/k+0.5))
	ch := min(sb.Dy(), int(float64(h)/k+0.5))
	x0 := sb.Min.X + (sb.Dx()-cw)/2
	y0 := sb.Min.Y + (sb.Dy()-ch)/2
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, image.Rect(x0, y0, x0+cw, y0+ch), draw.Src, nil)
	return dst
}

// Compose returns background covered to the size of overlay with overlay
// composited on top.
func Compose(background image.Image, overlay *image.RGBA) *image.RGBA {
	b := overlay.Bounds()
	dst := Cover(background, b.Dx(), b.Dy())
	blend.Over(dst, overlay, image.Point{})
	return dst
}
