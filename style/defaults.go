package style

// Typography defaults.
const (
	DefaultFontSize       = 60
	DefaultLineHeight     = 1.1
	DefaultWordsPerWindow = 3
)

// Pad is a horizontal and vertical padding in pixels.
type Pad struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// defaults holds the fallback value of every color and effect parameter,
// per effect family. Keys absent from a family fall through to common.
type defaults struct {
	colors map[string]RGB
	params map[string]any
}

var (
	white = RGB{255, 255, 255}
	black = RGB{0, 0, 0}
)

var common = defaults{
	colors: map[string]RGB{
		"text":       white,
		"outline":    black,
		"background": black,
		"glow":       white,
	},
	params: map[string]any{
		"outline_width": 0.0,
	},
}

var effectDefaults = map[EffectType]defaults{
	EffectOutline: {
		params: map[string]any{
			"outline_width": 3.0,
		},
	},
	EffectBackground: {
		params: map[string]any{
			"background_padding":         Pad{X: 20, Y: 10},
			"background_opacity":         1.0,
			"rounded_corners":            0.0,
			"highlight_brightness_boost": 0.0,
			"shrink_step":                0.95,
			"min_font_size":              12.0,
		},
	},
	EffectGlow: {
		params: map[string]any{
			"glow_radius":                15.0,
			"glow_intensity":             0.8,
			"glow_intensity_highlighted": 1.2,
			"highlight_color_multiplier": 1.0,
			"pulse.enabled":              false,
			"pulse.frequency":            0.5,
			"pulse.min_intensity":        0.3,
			"pulse.max_intensity":        1.0,
		},
	},
	EffectDualGlow: {
		colors: map[string]RGB{
			"text_normal":      white,
			"text_highlighted": {255, 64, 64},
			"glow_normal":      white,
			"glow_highlighted": {255, 0, 0},
		},
		params: map[string]any{
			"glow_radius_normal":         12.0,
			"glow_radius_highlighted":    15.0,
			"glow_intensity_normal":      0.4,
			"glow_intensity_highlighted": 0.6,
			"max_width_ratio":            0.9,
		},
	},
	EffectTextShadow: {
		colors: map[string]RGB{
			"text_normal":      white,
			"text_highlighted": {255, 255, 0},
		},
		params: map[string]any{
			"shadow_blur_1":           18.0,
			"shadow_blur_2":           27.0,
			"shadow_opacity_1":        0.8,
			"shadow_opacity_2":        0.6,
			"highlight_opacity_boost": 1.2,
			"max_width_ratio":         0.9,
		},
	},
	EffectWordHighlight: {
		colors: map[string]RGB{
			"highlight_background": {138, 43, 226},
		},
		params: map[string]any{
			"background_padding": Pad{X: 20, Y: 10},
			"corner_radius":      15.0,
			"max_width_ratio":    0.9,
		},
	},
	EffectDeepDiver: {
		colors: map[string]RGB{
			"active_text":   black,
			"inactive_text": {128, 128, 128},
			"background":    {192, 192, 192},
		},
		params: map[string]any{
			"background_padding": Pad{X: 40, Y: 15},
			"corner_radius":      25.0,
			"max_width_ratio":    0.85,
		},
	},
}

// colorAliases lists older key names accepted for a color role.
var colorAliases = map[string][]string{
	"text": {"normal"},
}

// DefaultColor returns the fallback color of key for effect.
func DefaultColor(effect EffectType, key string) RGB {
	if c, ok := effectDefaults[effect].colors[key]; ok {
		return c
	}
	if c, ok := common.colors[key]; ok {
		return c
	}
	return white
}

// DefaultParam returns the fallback value of an effect parameter and whether
// the table defines one.
func DefaultParam(effect EffectType, key string) (any, bool) {
	if v, ok := effectDefaults[effect].params[key]; ok {
		return v, true
	}
	v, ok := common.params[key]
	return v, ok
}
