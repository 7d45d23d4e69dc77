package effect

import "github.com/gogpu/caption/typeface"

// renderWordHighlight draws a rounded box behind the highlighted word only.
// Other words get WordBox when it is set and no box otherwise.
func renderWordHighlight(s WordHighlight, in Input, fonts *typeface.Cache) Result {
	r := fitRow(fonts, s.Font, s.Size, s.words(in), s.MaxWidthRatio*float64(in.CanvasWidth))
	asc, h := lineBox(r.face)
	px, py := s.Padding.X, s.Padding.Y

	c := newCanvas(r.width+2*px, h+2*py)
	res := Result{Image: c.img, Words: make([]WordBox, len(r.slots)), Size: r.face.Size()}
	m := c.mask()
	for i, sl := range r.slots {
		box := rectF(sl.x, 0, sl.x+sl.width+2*px, h+2*py)
		switch {
		case i == in.Highlight:
			c.fillRoundedRect(box, s.CornerRadius, s.Box, 1)
			res.Box = box
		case s.WordBox != nil:
			c.fillRoundedRect(box, s.CornerRadius, *s.WordBox, 1)
		}
		r.face.DrawMask(m, sl.text, px+sl.x, py+asc)
		res.Words[i] = WordBox{
			Text:        sl.text,
			Rect:        rectF(px+sl.x, py, px+sl.x+sl.width, py+h),
			Color:       s.Color,
			Highlighted: i == in.Highlight,
		}
	}
	c.paint(m, s.Color, 1)
	return res
}

// renderDeepDiver draws one rounded box behind the whole window, the active
// word in Active and the rest in Inactive. The box hugs the ink horizontally
// and the font's ascent and descent vertically, so its height does not jump
// between windows.
func renderDeepDiver(s DeepDiver, in Input, fonts *typeface.Cache) Result {
	r := fitRow(fonts, s.Font, s.Size, s.words(in), s.MaxWidthRatio*float64(in.CanvasWidth))
	asc, h := lineBox(r.face)
	px, py := s.Padding.X, s.Padding.Y

	minX, maxX := 0.0, r.width
	var ink typeface.Bounds
	for _, sl := range r.slots {
		b := r.face.Bounds(sl.text)
		if b.Empty() {
			continue
		}
		b.MinX += sl.x
		b.MaxX += sl.x
		ink = ink.Union(b)
	}
	if !ink.Empty() {
		minX, maxX = ink.MinX, ink.MaxX
	}

	c := newCanvas(maxX-minX+2*px, h+2*py)
	box := c.img.Bounds()
	c.fillRoundedRect(box, s.CornerRadius, s.Box, 1)

	ox := px - minX
	active, inactive := c.mask(), c.mask()
	res := Result{Image: c.img, Box: box, Words: make([]WordBox, len(r.slots)), Size: r.face.Size()}
	for i, sl := range r.slots {
		dst, col := inactive, s.Inactive
		if i == in.Highlight {
			dst, col = active, s.Active
		}
		r.face.DrawMask(dst, sl.text, ox+sl.x, py+asc)
		res.Words[i] = WordBox{
			Text:        sl.text,
			Rect:        rectF(ox+sl.x, py, ox+sl.x+sl.width, py+h),
			Color:       col,
			Highlighted: i == in.Highlight,
		}
	}
	c.paint(inactive, s.Inactive, 1)
	c.paint(active, s.Active, 1)
	return res
}

