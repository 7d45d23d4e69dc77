package style

import (
	"encoding/json"
	"strings"

	"github.com/gogpu/caption/internal/logging"
)

// Params holds effect-specific knobs. Nested tables are addressed with dotted
// keys, e.g. "pulse.frequency".
type Params map[string]any

// lookup walks a dotted key through nested maps.
func (p Params) lookup(key string) (any, bool) {
	var cur any = map[string]any(p)
	for part := range strings.SplitSeq(key, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Params:
		return m, true
	}
	return nil, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func asPad(v any) (Pad, bool) {
	if p, ok := v.(Pad); ok {
		return p, true
	}
	if f, ok := asFloat(v); ok {
		return Pad{X: f, Y: f}, true
	}
	m, ok := asMap(v)
	if !ok {
		return Pad{}, false
	}
	var pad Pad
	var found bool
	for _, k := range []string{"x", "horizontal"} {
		if f, ok := asFloat(m[k]); ok {
			pad.X, found = f, true
			break
		}
	}
	for _, k := range []string{"y", "vertical"} {
		if f, ok := asFloat(m[k]); ok {
			pad.Y, found = f, true
			break
		}
	}
	return pad, found
}

// Float returns the numeric parameter key, falling back to the defaults table.
func (s *Style) Float(key string) float64 {
	if v, ok := s.Params.lookup(key); ok {
		if f, ok := asFloat(v); ok {
			return f
		}
		s.mistyped(key, v)
	}
	d, _ := DefaultParam(s.Effect, key)
	f, _ := asFloat(d)
	return f
}

// Int returns Float(key) truncated toward zero.
func (s *Style) Int(key string) int {
	return int(s.Float(key))
}

// Bool returns the boolean parameter key, falling back to the defaults table.
func (s *Style) Bool(key string) bool {
	if v, ok := s.Params.lookup(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
		s.mistyped(key, v)
	}
	d, _ := DefaultParam(s.Effect, key)
	b, _ := d.(bool)
	return b
}

// Pad returns a padding parameter given either as a number or as {x, y}.
func (s *Style) Pad(key string) Pad {
	if v, ok := s.Params.lookup(key); ok {
		if p, ok := asPad(v); ok {
			return p
		}
		s.mistyped(key, v)
	}
	d, _ := DefaultParam(s.Effect, key)
	p, _ := asPad(d)
	return p
}

// Has reports whether the descriptor sets key explicitly.
func (s *Style) Has(key string) bool {
	_, ok := s.Params.lookup(key)
	return ok
}

func (s *Style) mistyped(key string, v any) {
	logging.Logger().Debug("style: parameter has unexpected type, using default",
		"style", s.Name, "key", key, "value", v)
}

// Color returns the color of role key, trying legacy aliases and then the
// defaults table.
func (s *Style) Color(key string) RGB {
	if c, ok := s.LookupColor(key); ok {
		return c
	}
	return DefaultColor(s.Effect, key)
}

// LookupColor returns the color the descriptor sets for key or one of its
// aliases, without consulting defaults.
func (s *Style) LookupColor(key string) (RGB, bool) {
	if c, ok := s.Colors[key]; ok {
		return c, true
	}
	for _, alias := range colorAliases[key] {
		if c, ok := s.Colors[alias]; ok {
			return c, true
		}
	}
	return RGB{}, false
}
