package filter

import (
	"image"
	"math"
)

// Chamfer weights approximating Euclidean distance on the pixel grid.
const (
	orthogonal = 1
	diagonal   = math.Sqrt2
)

// Distance is an unsigned distance field measuring, for every pixel, how far
// it lies from the nearest pixel covered by the source mask.
type Distance struct {
	rect   image.Rectangle
	source *image.Alpha
	d      []float32
}

// NewDistance computes the distance field of m. A pixel counts as inside when
// its coverage is at least half.
func NewDistance(m *image.Alpha) *Distance {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	d := make([]float32, w*h)

	inf := float32(w + h)
	for y := range h {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x, v := range row {
			if v >= 128 {
				d[y*w+x] = 0
			} else {
				d[y*w+x] = inf
			}
		}
	}

	relax := func(i int, nx, ny int, cost float32) {
		if nx < 0 || ny < 0 || nx >= w || ny >= h {
			return
		}
		if c := d[ny*w+nx] + cost; c < d[i] {
			d[i] = c
		}
	}

	for y := range h {
		for x := range w {
			i := y*w + x
			relax(i, x-1, y, orthogonal)
			relax(i, x-1, y-1, diagonal)
			relax(i, x, y-1, orthogonal)
			relax(i, x+1, y-1, diagonal)
		}
	}
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			i := y*w + x
			relax(i, x+1, y, orthogonal)
			relax(i, x+1, y+1, diagonal)
			relax(i, x, y+1, orthogonal)
			relax(i, x-1, y+1, diagonal)
		}
	}

	return &Distance{rect: b, source: m, d: d}
}

// Bounds returns the rectangle the field covers.
func (f *Distance) Bounds() image.Rectangle { return f.rect }

// At returns the distance of pixel (x, y), or +Inf outside the field.
func (f *Distance) At(x, y int) float64 {
	if !image.Pt(x, y).In(f.rect) {
		return math.Inf(1)
	}
	return float64(f.d[(y-f.rect.Min.Y)*f.rect.Dx()+x-f.rect.Min.X])
}

// Dilate returns the source mask grown by radius pixels, the coverage a
// stroke of width radius around the shape would produce. The antialiased
// edge of the source is preserved where it exceeds the stroke coverage.
func (f *Distance) Dilate(radius float64) *image.Alpha {
	out := image.NewAlpha(f.rect)
	w := f.rect.Dx()
	for y := range f.rect.Dy() {
		src := f.source.Pix[y*f.source.Stride : y*f.source.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := range w {
			cov := radius + 0.5 - float64(f.d[y*w+x])
			v := src[x]
			if cov > 0 {
				if c := clampUint8(float32(min(cov, 1) * 255)); c > v {
					v = c
				}
			}
			dst[x] = v
		}
	}
	return out
}
