package effect

import (
	"math"

	"github.com/gogpu/caption/internal/filter"
	"github.com/gogpu/caption/typeface"
)

// edge is the transparent margin kept around glyphs so antialiasing is not
// clipped.
const edge = 2

func renderSimple(s Simple, in Input, fonts *typeface.Cache) Result {
	size := s.size(in.highlighted())
	b := setBlock(fonts.Face(s.Font, size), joined(s.words(in)), s.Alignment, s.LineHeight)

	c := newCanvas(b.width+2*edge, b.height+2*edge)
	m := c.mask()
	b.draw(m, edge, edge)
	c.paint(m, s.Color, 1)
	return Result{Image: c.img, Size: size}
}

func renderOutline(s Outline, in Input, fonts *typeface.Cache) Result {
	size := s.size(in.highlighted())
	b := setBlock(fonts.Face(s.Font, size), joined(s.words(in)), s.Alignment, s.LineHeight)

	width := max(s.Width, 0)
	pad := math.Ceil(width) + edge
	c := newCanvas(b.width+2*pad, b.height+2*pad)
	m := c.mask()
	b.draw(m, pad, pad)
	if width > 0 {
		c.paint(filter.NewDistance(m).Dilate(width), s.OutlineColor, 1)
	}
	c.paint(m, s.Color, 1)
	return Result{Image: c.img, Size: size}
}

// renderBackground shrinks the font by ShrinkStep until the padded box fits
// between the safe margins or MinSize is reached.
func renderBackground(s Background, in Input, fonts *typeface.Cache) Result {
	hl := in.highlighted()
	size := s.size(hl)
	text := joined(s.words(in))

	outline := math.Ceil(max(s.OutlineWidth, 0))
	limit := float64(in.CanvasWidth-2*in.SafeMargin) - 2*s.Padding.X - 2*outline
	step := s.ShrinkStep
	if step <= 0 || step >= 1 {
		step = 0.95
	}
	minSize := max(s.MinSize, 1)

	b := setBlock(fonts.Face(s.Font, size), text, s.Alignment, s.LineHeight)
	for limit > 0 && b.width > limit && size > minSize {
		size = max(minSize, size*step)
		b = setBlock(fonts.Face(s.Font, size), text, s.Alignment, s.LineHeight)
	}

	c := newCanvas(b.width+2*s.Padding.X, b.height+2*s.Padding.Y)
	box := c.img.Bounds()
	col := s.Box
	if hl {
		col = s.BoxHighlighted.Add(s.Boost)
	}
	c.fillRoundedRect(box, s.CornerRadius, col, min(max(s.Opacity, 0), 1))

	m := c.mask()
	b.draw(m, (float64(box.Dx())-b.width)/2, (float64(box.Dy())-b.height)/2)
	if outline > 0 {
		c.paint(filter.NewDistance(m).Dilate(s.OutlineWidth), s.OutlineColor, 1)
	}
	c.paint(m, s.Color, 1)
	return Result{Image: c.img, Box: box, Size: size}
}
