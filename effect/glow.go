package effect

import (
	"math"

	"github.com/gogpu/caption/internal/filter"
	"github.com/gogpu/caption/typeface"
)

// Pulse radius bounds: the glow radius sweeps from pulseRadius to
// 2·pulseRadius as the intensity goes from 0 to 1.
const pulseRadius = 10

// PulseAt returns the glow intensity and radius of a pulsing glow at time t.
// The intensity follows a raised cosine between base·p.Min and base·p.Max,
// peaking at t = 0 and at every whole period after it.
func PulseAt(p Pulse, base, t float64) (intensity, radius float64) {
	phase := (1 + math.Cos(2*math.Pi*p.Frequency*t)) / 2
	intensity = base * (p.Min + (p.Max-p.Min)*phase)
	return intensity, pulseRadius + pulseRadius*intensity
}

// renderGlow stacks N dilated copies of the text, the outermost strongest,
// blurs them and draws the crisp text on top.
func renderGlow(s Glow, in Input, fonts *typeface.Cache) Result {
	hl := in.highlighted()
	size := s.size(hl)
	b := setBlock(fonts.Face(s.Font, size), joined(s.words(in)), s.Alignment, s.LineHeight)

	intensity, radius := s.Intensity, s.Radius
	col := s.GlowColor
	switch {
	case hl:
		intensity = s.HighlightIntensity
		col = s.GlowHighlighted.Mul(s.HighlightMultiplier)
	case s.Pulse.Enabled:
		intensity, radius = PulseAt(s.Pulse, s.Intensity, in.Time)
	}

	n := max(int(radius), 0)
	sigma := float64(n / 2)
	pad := float64(2*n+filter.Reach(sigma)) + edge

	c := newCanvas(b.width+2*pad, b.height+2*pad)
	m := c.mask()
	b.draw(m, pad, pad)

	if n > 0 && intensity > 0 {
		layers := make([]filter.Layer, 0, n)
		for i := n; i >= 1; i-- {
			layers = append(layers, filter.Layer{
				Radius:  float64(2 * i),
				Opacity: intensity * float64(i) / float64(n),
			})
		}
		halo := filter.Halo(filter.NewDistance(m), layers)
		c.paint(filter.Blur(halo, sigma), col, 1)
	}
	c.paint(m, s.Color, 1)
	return Result{Image: c.img, Size: size}
}
