package blend

import (
	"image"
	"image/color"
)

// sourceOver composites a premultiplied source pixel over a destination pixel:
// S + D*(1-Sa).
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// Over composites src over dst with src's bounds origin placed at p.
// Pixels falling outside dst are dropped.
func Over(dst, src *image.RGBA, p image.Point) {
	if dst == nil || src == nil {
		return
	}
	sb := src.Bounds()
	delta := p.Sub(sb.Min)
	r := sb.Add(delta).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X-delta.X, y-delta.Y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.Pix[si : si+4 : si+4]
			if sa := s[3]; sa != 0 {
				d := dst.Pix[di : di+4 : di+4]
				if sa == 255 {
					copy(d, s)
				} else {
					d[0], d[1], d[2], d[3] = sourceOver(s[0], s[1], s[2], sa, d[0], d[1], d[2], d[3])
				}
			}
			si += 4
			di += 4
		}
	}
}

// Mask paints c through the coverage mask onto dst with source-over.
// c is straight (non-premultiplied) RGBA; opacity further scales c.A.
// The mask and dst share one coordinate space.
func Mask(dst *image.RGBA, mask *image.Alpha, c color.NRGBA, opacity float64) {
	if dst == nil || mask == nil {
		return
	}
	alpha := Scale(c.A, opacity)
	if alpha == 0 {
		return
	}
	r := dst.Bounds().Intersect(mask.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			if m := mask.Pix[mi]; m != 0 {
				sa := mulDiv255(m, alpha)
				d := dst.Pix[di : di+4 : di+4]
				d[0], d[1], d[2], d[3] = sourceOver(
					mulDiv255(c.R, sa), mulDiv255(c.G, sa), mulDiv255(c.B, sa), sa,
					d[0], d[1], d[2], d[3])
			}
			mi++
			di += 4
		}
	}
}
