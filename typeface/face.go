package typeface

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/caption/internal/raster"
)

// Metrics are vertical font metrics in pixels. Descent is positive.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns the distance between consecutive baselines.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent + m.LineGap }

// Bounds is an ink rectangle in pixels relative to the pen origin on the
// baseline, Y pointing down. Ascenders have negative MinY.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether the rectangle encloses no ink.
func (b Bounds) Empty() bool { return b.MinX >= b.MaxX || b.MinY >= b.MaxY }

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest rectangle containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Face is a Source at one pixel size.
type Face struct {
	src     *Source
	size    float64
	ppem    fixed.Int26_6
	metrics Metrics
}

func newFace(src *Source, size float64) *Face {
	f := &Face{src: src, size: size, ppem: fixed.Int26_6(math.Round(size * 64))}

	buf := src.buffer()
	defer src.release(buf)
	if m, err := src.sfnt.Metrics(buf, f.ppem, font.HintingNone); err == nil {
		f.metrics = Metrics{
			Ascent:  fixedToFloat(m.Ascent),
			Descent: fixedToFloat(m.Descent),
			LineGap: math.Max(0, fixedToFloat(m.Height)-fixedToFloat(m.Ascent)-fixedToFloat(m.Descent)),
		}
	} else {
		f.metrics = Metrics{Ascent: size * 0.8, Descent: size * 0.2}
	}
	return f
}

// Size returns the pixel size.
func (f *Face) Size() float64 { return f.size }

// Source returns the parsed font the face was cut from.
func (f *Face) Source() *Source { return f.src }

// Metrics returns the vertical metrics.
func (f *Face) Metrics() Metrics { return f.metrics }

// Advance returns the shaped width of s.
func (f *Face) Advance(s string) float64 {
	return f.Shape(s).Advance
}

// Bounds returns the ink rectangle of s drawn with its pen origin at (0, 0).
func (f *Face) Bounds(s string) Bounds {
	run := f.Shape(s)
	buf := f.src.buffer()
	defer f.src.release(buf)

	var out Bounds
	for _, g := range run.Glyphs {
		r, _, err := f.src.sfnt.GlyphBounds(buf, g.ID, f.ppem, font.HintingNone)
		if err != nil {
			continue
		}
		out = out.Union(Bounds{
			MinX: g.X + fixedToFloat(r.Min.X),
			MinY: g.Y + fixedToFloat(r.Min.Y),
			MaxX: g.X + fixedToFloat(r.Max.X),
			MaxY: g.Y + fixedToFloat(r.Max.Y),
		})
	}
	return out
}

// DrawMask rasterizes s into dst with the pen origin on the baseline at
// (x, y) in dst's coordinate space. Coverage accumulates over existing
// content.
func (f *Face) DrawMask(dst *image.Alpha, s string, x, y float64) {
	var p raster.Path
	f.appendOutline(&p, f.Shape(s), x-float64(dst.Bounds().Min.X), y-float64(dst.Bounds().Min.Y))
	p.Fill(dst)
}

// appendOutline adds the glyph contours of run to p with the pen origin at
// (x, y) in path space.
func (f *Face) appendOutline(p *raster.Path, run Run, x, y float64) {
	buf := f.src.buffer()
	defer f.src.release(buf)

	for _, g := range run.Glyphs {
		segs, err := f.src.sfnt.LoadGlyph(buf, g.ID, f.ppem, nil)
		if err != nil {
			continue
		}
		ox, oy := float32(x+g.X), float32(y+g.Y)
		pt := func(v fixed.Point26_6) (float32, float32) {
			return ox + float32(v.X)/64, oy + float32(v.Y)/64
		}
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				p.MoveTo(pt(s.Args[0]))
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				cx, cy := pt(s.Args[0])
				ex, ey := pt(s.Args[1])
				p.QuadTo(cx, cy, ex, ey)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := pt(s.Args[0])
				c2x, c2y := pt(s.Args[1])
				ex, ey := pt(s.Args[2])
				p.CubeTo(c1x, c1y, c2x, c2y, ex, ey)
			}
		}
		p.Close()
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
