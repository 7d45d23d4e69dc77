package style

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color with the given alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Add brightens every channel by delta, saturating at 0 and 255.
func (c RGB) Add(delta int) RGB {
	return RGB{clampChannel(int(c.R) + delta), clampChannel(int(c.G) + delta), clampChannel(int(c.B) + delta)}
}

// Mul scales every channel by k, saturating at 255.
func (c RGB) Mul(k float64) RGB {
	return RGB{clampChannel(int(float64(c.R) * k)), clampChannel(int(float64(c.G) * k)), clampChannel(int(float64(c.B) * k))}
}

// Hex returns the "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalJSON encodes the color as [r, g, b].
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

// UnmarshalJSON accepts [r, g, b], [r, g, b, a] (alpha ignored) or "#rrggbb".
func (c *RGB) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("style: color must be [r,g,b] or \"#rrggbb\": %w", err)
	}
	if len(parts) < 3 {
		return fmt.Errorf("style: color %s needs three channels", b)
	}
	*c = RGB{clampChannel(int(parts[0])), clampChannel(int(parts[1])), clampChannel(int(parts[2]))}
	return nil
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("style: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("style: invalid hex color %q: %w", s, err)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Colors maps a role name (text, outline, glow_highlighted, ...) to a color.
type Colors map[string]RGB
