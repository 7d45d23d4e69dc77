package raster

import "math"

// kappa places cubic control points so that a quarter circle is matched
// within 0.03% radial error.
const kappa = 0.5522847498

// Rect is an axis-aligned rectangle in float pixels.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// RoundedRect appends a rectangle with circular corners of the given radius.
// The radius is clamped to half the shorter side.
func (p *Path) RoundedRect(r Rect, radius float32) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	radius = float32(math.Min(float64(radius), float64(min(r.Width(), r.Height())/2)))
	if radius <= 0 {
		p.MoveTo(r.MinX, r.MinY)
		p.LineTo(r.MaxX, r.MinY)
		p.LineTo(r.MaxX, r.MaxY)
		p.LineTo(r.MinX, r.MaxY)
		p.Close()
		return
	}

	k := radius * kappa
	p.MoveTo(r.MinX+radius, r.MinY)
	p.LineTo(r.MaxX-radius, r.MinY)
	p.CubeTo(r.MaxX-radius+k, r.MinY, r.MaxX, r.MinY+radius-k, r.MaxX, r.MinY+radius)
	p.LineTo(r.MaxX, r.MaxY-radius)
	p.CubeTo(r.MaxX, r.MaxY-radius+k, r.MaxX-radius+k, r.MaxY, r.MaxX-radius, r.MaxY)
	p.LineTo(r.MinX+radius, r.MaxY)
	p.CubeTo(r.MinX+radius-k, r.MaxY, r.MinX, r.MaxY-radius+k, r.MinX, r.MaxY-radius)
	p.LineTo(r.MinX, r.MinY+radius)
	p.CubeTo(r.MinX, r.MinY+radius-k, r.MinX+radius-k, r.MinY, r.MinX+radius, r.MinY)
	p.Close()
}
