// Package raster turns vector outlines into antialiased coverage masks.
//
// Coordinates are float32 pixels relative to the destination mask's minimum
// point, Y pointing down. Filling delegates scan conversion to
// golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbQuad
	verbCube
	verbClose
)

type segment struct {
	verb verb
	pts  [3][2]float32
}

// Path is a sequence of closed contours.
type Path struct {
	segs []segment
	open bool
}

// MoveTo starts a new contour, closing the previous one.
func (p *Path) MoveTo(x, y float32) {
	if p.open {
		p.Close()
	}
	p.segs = append(p.segs, segment{verb: verbMove, pts: [3][2]float32{{x, y}}})
	p.open = true
}

// LineTo adds a straight edge.
func (p *Path) LineTo(x, y float32) {
	p.segs = append(p.segs, segment{verb: verbLine, pts: [3][2]float32{{x, y}}})
}

// QuadTo adds a quadratic Bézier.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.segs = append(p.segs, segment{verb: verbQuad, pts: [3][2]float32{{cx, cy}, {x, y}}})
}

// CubeTo adds a cubic Bézier.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.segs = append(p.segs, segment{verb: verbCube, pts: [3][2]float32{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current contour.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.segs = append(p.segs, segment{verb: verbClose})
	p.open = false
}

// Empty reports whether the path has no contours.
func (p *Path) Empty() bool { return len(p.segs) == 0 }

// Fill rasterizes the path onto dst, compositing coverage with source-over
// so repeated fills accumulate.
func (p *Path) Fill(dst *image.Alpha) {
	if p.Empty() {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, s := range p.segs {
		switch s.verb {
		case verbMove:
			z.MoveTo(s.pts[0][0], s.pts[0][1])
		case verbLine:
			z.LineTo(s.pts[0][0], s.pts[0][1])
		case verbQuad:
			z.QuadTo(s.pts[0][0], s.pts[0][1], s.pts[1][0], s.pts[1][1])
		case verbCube:
			z.CubeTo(s.pts[0][0], s.pts[0][1], s.pts[1][0], s.pts[1][1], s.pts[2][0], s.pts[2][1])
		case verbClose:
			z.ClosePath()
		}
	}
	if p.open {
		z.ClosePath()
	}
	z.Draw(dst, b, image.Opaque, image.Point{})
}
