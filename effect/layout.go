package effect

import (
	"image"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/caption/internal/blend"
	"github.com/gogpu/caption/internal/raster"
	"github.com/gogpu/caption/style"
	"github.com/gogpu/caption/typeface"
)

// transform applies the letter-case rule to s. Casers carry state, so one
// is built per call.
func transform(s string, t style.TextTransform) string {
	switch t {
	case style.TransformUpper:
		return cases.Upper(language.Und).String(s)
	case style.TransformLower:
		return cases.Lower(language.Und).String(s)
	case style.TransformTitle:
		return cases.Title(language.Und).String(s)
	}
	return s
}

// words returns the transformed, non-empty words of in. Empty entries are
// kept so indices line up with Input.Highlight.
func (t Text) words(in Input) []string {
	out := make([]string, len(in.Words))
	for i, w := range in.Words {
		out[i] = transform(strings.TrimSpace(w), t.Transform)
	}
	return out
}

// line is one laid-out line of a text block.
type line struct {
	text     string
	x        float64
	baseline float64
	width    float64
}

// block is multi-line text laid out with its top-left at (0, 0).
type block struct {
	face   *typeface.Face
	lines  []line
	width  float64
	height float64
}

// setBlock lays out text, splitting on newlines and aligning each line
// within the widest one.
func setBlock(face *typeface.Face, text string, align style.Alignment, lineHeight float64) block {
	m := face.Metrics()
	h := m.Ascent + m.Descent
	if lineHeight <= 0 {
		lineHeight = style.DefaultLineHeight
	}
	step := h + face.Size()*(lineHeight-1)

	parts := strings.Split(text, "\n")
	b := block{face: face, lines: make([]line, len(parts))}
	for i, p := range parts {
		w := face.Advance(p)
		b.lines[i] = line{text: p, baseline: m.Ascent + float64(i)*step, width: w}
		b.width = max(b.width, w)
	}
	for i := range b.lines {
		switch align {
		case style.AlignLeft:
		case style.AlignRight:
			b.lines[i].x = b.width - b.lines[i].width
		default:
			b.lines[i].x = (b.width - b.lines[i].width) / 2
		}
	}
	b.height = h + float64(len(parts)-1)*step
	return b
}

// draw rasterizes the block with its top-left at (x, y).
func (b block) draw(dst *image.Alpha, x, y float64) {
	for _, l := range b.lines {
		b.face.DrawMask(dst, l.text, x+l.x, y+l.baseline)
	}
}

// slot is one word placed on a single-line row.
type slot struct {
	text  string
	x     float64
	width float64
}

// row is a single line of words separated by one space advance.
type row struct {
	face  *typeface.Face
	slots []slot
	width float64
}

func setRow(face *typeface.Face, words []string) row {
	space := face.Advance(" ")
	r := row{face: face, slots: make([]slot, len(words))}
	x := 0.0
	for i, w := range words {
		adv := face.Advance(w)
		r.slots[i] = slot{text: w, x: x, width: adv}
		x += adv
		if i < len(words)-1 {
			x += space
		}
	}
	r.width = x
	return r
}

// fitRow lays out words at size, scaling the size down once, proportionally,
// when the row is wider than limit.
func fitRow(fonts *typeface.Cache, family string, size float64, words []string, limit float64) row {
	r := setRow(fonts.Face(family, size), words)
	if limit > 0 && r.width > limit {
		size = math.Max(1, math.Floor(size*limit/r.width))
		r = setRow(fonts.Face(family, size), words)
	}
	return r
}

// lineBox returns the metric height of one line of face.
func lineBox(face *typeface.Face) (ascent, height float64) {
	m := face.Metrics()
	return m.Ascent, m.Ascent + m.Descent
}

// canvas is the content-sized image an effect paints into, layer by layer.
type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h float64) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))}
}

// mask returns an empty coverage mask covering the whole canvas.
func (c *canvas) mask() *image.Alpha {
	return image.NewAlpha(c.img.Bounds())
}

func (c *canvas) paint(m *image.Alpha, col style.RGB, opacity float64) {
	blend.Mask(c.img, m, col.NRGBA(255), opacity)
}

// fillRoundedRect paints a rounded rectangle directly.
func (c *canvas) fillRoundedRect(r image.Rectangle, radius float64, col style.RGB, opacity float64) {
	var p raster.Path
	p.RoundedRect(raster.Rect{
		MinX: float32(r.Min.X), MinY: float32(r.Min.Y),
		MaxX: float32(r.Max.X), MaxY: float32(r.Max.Y),
	}, float32(radius))
	m := c.mask()
	p.Fill(m)
	c.paint(m, col, opacity)
}

// rectF rounds a float rectangle outward to pixels.
func rectF(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}

// joined returns the non-empty words separated by single spaces.
func joined(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}
	return sb.String()
}
