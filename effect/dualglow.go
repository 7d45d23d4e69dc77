package effect

import (
	"image"

	"github.com/gogpu/caption/internal/filter"
	"github.com/gogpu/caption/typeface"
)

// renderDualGlow glows every word separately in its normal or highlighted
// look. Rows wider than MaxWidthRatio of the canvas are scaled down.
func renderDualGlow(s DualGlow, in Input, fonts *typeface.Cache) Result {
	r := fitRow(fonts, s.Font, s.Size, s.words(in), s.MaxWidthRatio*float64(in.CanvasWidth))
	asc, h := lineBox(r.face)

	reach := max(s.Normal.Radius, s.Highlighted.Radius, 0)
	pad := float64(max(1, reach/3)+filter.Reach(float64(reach/4))) + edge

	c := newCanvas(r.width+2*pad, h+2*pad)
	masks := make([]*image.Alpha, len(r.slots))
	words := make([]WordBox, len(r.slots))
	for i, sl := range r.slots {
		look := s.Normal
		if i == in.Highlight {
			look = s.Highlighted
		}
		m := c.mask()
		r.face.DrawMask(m, sl.text, pad+sl.x, pad+asc)
		masks[i] = m
		words[i] = WordBox{
			Text:        sl.text,
			Rect:        rectF(pad+sl.x, pad, pad+sl.x+sl.width, pad+h),
			Color:       look.Text,
			Highlighted: i == in.Highlight,
		}

		n := look.Radius
		if n <= 0 || look.Intensity <= 0 {
			continue
		}
		layers := make([]filter.Layer, 0, n)
		for layer := n; layer >= 1; layer-- {
			layers = append(layers, filter.Layer{
				Radius:  float64(max(1, layer/3)),
				Opacity: look.Intensity * float64(layer) / float64(n) * 0.3,
			})
		}
		halo := filter.Halo(filter.NewDistance(m), layers)
		c.paint(filter.Blur(halo, float64(n/4)), look.Glow, 1)
	}
	for i, m := range masks {
		c.paint(m, words[i].Color, 1)
	}
	return Result{Image: c.img, Words: words, Size: r.face.Size()}
}
