package style

import (
	"strings"
)

// Style is one caption style.
type Style struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Effect      EffectType `json:"effect_type"`
	Typography  Typography `json:"typography"`
	Colors      Colors     `json:"colors,omitempty"`
	Params      Params     `json:"effect_parameters,omitempty"`
	Layout      Layout     `json:"layout"`
}

// Typography describes the font and how text is set.
type Typography struct {
	FontFamily          string        `json:"font_family,omitempty"`
	FontSize            float64       `json:"font_size,omitempty"`
	FontSizeHighlighted float64       `json:"font_size_highlighted,omitempty"`
	Transform           TextTransform `json:"text_transform,omitempty"`
	Alignment           Alignment     `json:"alignment,omitempty"`
	LineHeight          float64       `json:"line_height,omitempty"`
}

// Layout describes where the caption sits on the canvas.
type Layout struct {
	Position Position `json:"position,omitempty"`

	// SafeZones selects platform safe margins; nil means enabled.
	SafeZones *bool `json:"safe_zones,omitempty"`

	WordsPerWindow int `json:"words_per_window,omitempty"`

	// Offset shifts the placed caption in pixels before clamping.
	Offset Offset `json:"offset,omitzero"`
}

// Offset is a pixel displacement.
type Offset struct {
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
}

// SafeZonesEnabled reports the effective safe-zone flag.
func (l Layout) SafeZonesEnabled() bool {
	return l.SafeZones == nil || *l.SafeZones
}

// Normalized returns a copy with typography and layout defaults filled in.
// Colors and effect parameters are left alone; their defaults apply at lookup.
func (s Style) Normalized() Style {
	t := &s.Typography
	if t.FontSize <= 0 {
		t.FontSize = DefaultFontSize
	}
	if t.FontSizeHighlighted <= 0 {
		t.FontSizeHighlighted = t.FontSize
	}
	if t.LineHeight <= 0 {
		t.LineHeight = DefaultLineHeight
	}
	if s.Layout.WordsPerWindow <= 0 {
		s.Layout.WordsPerWindow = DefaultWordsPerWindow
	}
	return s
}

// Clone returns a deep copy.
func (s *Style) Clone() *Style {
	c := *s
	if s.Colors != nil {
		c.Colors = make(Colors, len(s.Colors))
		for k, v := range s.Colors {
			c.Colors[k] = v
		}
	}
	c.Params = cloneParams(s.Params)
	if s.Layout.SafeZones != nil {
		v := *s.Layout.SafeZones
		c.Layout.SafeZones = &v
	}
	return &c
}

func cloneParams(p Params) Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if m, ok := asMap(v); ok {
			v = map[string]any(cloneParams(m))
		}
		out[k] = v
	}
	return out
}

// TextTransform changes letter case before rendering.
type TextTransform uint8

const (
	TransformNone TextTransform = iota
	TransformUpper
	TransformLower
	TransformTitle
)

var transformNames = [...]string{"none", "uppercase", "lowercase", "capitalize"}

func (t TextTransform) String() string {
	if int(t) < len(transformNames) {
		return transformNames[t]
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler.
func (t TextTransform) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText accepts CSS names (uppercase) and short forms (upper).
func (t *TextTransform) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "uppercase", "upper":
		*t = TransformUpper
	case "lowercase", "lower":
		*t = TransformLower
	case "capitalize", "title":
		*t = TransformTitle
	default:
		*t = TransformNone
	}
	return nil
}

// Alignment positions lines within a multi-line block.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

var alignmentNames = [...]string{"center", "left", "right"}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "center"
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values center.
func (a *Alignment) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "left", "start":
		*a = AlignLeft
	case "right", "end":
		*a = AlignRight
	default:
		*a = AlignCenter
	}
	return nil
}

// Position is the vertical anchor of the caption.
type Position uint8

const (
	PositionBottom Position = iota
	PositionCenter
	PositionTop
)

var positionNames = [...]string{"bottom", "center", "top"}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return "bottom"
}

// ParsePosition maps a name to a Position; unknown names anchor at the bottom.
func ParsePosition(s string) (Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom", "":
		return PositionBottom, true
	case "center", "middle":
		return PositionCenter, true
	case "top":
		return PositionTop, true
	}
	return PositionBottom, false
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(b []byte) error {
	*p, _ = ParsePosition(string(b))
	return nil
}
