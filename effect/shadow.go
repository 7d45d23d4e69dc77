package effect

import (
	"image"

	"github.com/gogpu/caption/internal/filter"
	"github.com/gogpu/caption/typeface"
)

// Spread factors and opacity scales of the near and far shadow.
const (
	nearSpread  = 1.7
	nearOpacity = 0.75
	farSpread   = 2.3
	farOpacity  = 0.65
)

// shadowLayer is one blurred, dilated copy of a word.
type shadowLayer struct {
	spread float64
	sigma  float64
}

func newShadowLayer(blur, spread float64) shadowLayer {
	half := int(blur) / 2
	return shadowLayer{spread: float64(int(float64(half) * spread)), sigma: float64(half)}
}

func (l shadowLayer) reach() float64 {
	return l.spread + float64(filter.Reach(l.sigma))
}

// boosted returns the highlighted opacity: explicit when set, otherwise the
// normal opacity scaled by boost and capped at 1.
func boosted(normal, explicit, boost float64) float64 {
	if explicit > 0 {
		return min(explicit, 1)
	}
	return min(normal*boost, 1)
}

// renderTextShadow draws two soft shadows per word in that word's own
// color, the far one behind the near one, then the crisp words.
func renderTextShadow(s TextShadow, in Input, fonts *typeface.Cache) Result {
	r := fitRow(fonts, s.Font, s.Size, s.words(in), s.MaxWidthRatio*float64(in.CanvasWidth))
	asc, h := lineBox(r.face)

	near := newShadowLayer(s.Blur1, nearSpread)
	far := newShadowLayer(s.Blur2, farSpread)
	pad := max(near.reach(), far.reach()) + edge

	c := newCanvas(r.width+2*pad, h+2*pad)
	masks := make([]*image.Alpha, len(r.slots))
	words := make([]WordBox, len(r.slots))
	for i, sl := range r.slots {
		col, op1, op2 := s.Normal, s.Opacity1, s.Opacity2
		hl := i == in.Highlight
		if hl {
			col = s.Highlighted
			op1 = boosted(s.Opacity1, s.HighlightOpacity1, s.Boost)
			op2 = boosted(s.Opacity2, s.HighlightOpacity2, s.Boost)
		}
		m := c.mask()
		r.face.DrawMask(m, sl.text, pad+sl.x, pad+asc)
		masks[i] = m
		words[i] = WordBox{
			Text:        sl.text,
			Rect:        rectF(pad+sl.x, pad, pad+sl.x+sl.width, pad+h),
			Color:       col,
			Highlighted: hl,
		}

		dist := filter.NewDistance(m)
		if far.sigma > 0 && op2 > 0 {
			c.paint(filter.Blur(dist.Dilate(far.spread), far.sigma), col, op2*farOpacity)
		}
		if near.sigma > 0 && op1 > 0 {
			c.paint(filter.Blur(dist.Dilate(near.spread), near.sigma), col, op1*nearOpacity)
		}
	}
	for i, m := range masks {
		c.paint(m, words[i].Color, 1)
	}
	return Result{Image: c.img, Words: words, Size: r.face.Size()}
}
