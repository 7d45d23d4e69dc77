package style

import (
	"fmt"
	"strings"

	"github.com/gogpu/caption/internal/logging"
)

// EffectType selects the renderer family of a style.
type EffectType uint8

const (
	// EffectSimple draws plain centered text. It is the zero value and the
	// fallback for unrecognized effect names.
	EffectSimple EffectType = iota
	// EffectOutline strokes the text outline before filling it.
	EffectOutline
	// EffectBackground draws the text over a padded, optionally rounded box.
	EffectBackground
	// EffectGlow surrounds the text with a blurred halo, optionally pulsing.
	EffectGlow
	// EffectDualGlow glows each word in its normal or highlighted colors.
	EffectDualGlow
	// EffectTextShadow casts two blurred shadows tinted with each word's color.
	EffectTextShadow
	// EffectWordHighlight draws a box behind the highlighted word only.
	EffectWordHighlight
	// EffectDeepDiver draws one shared box and recolors the active word.
	EffectDeepDiver
)

var effectNames = [...]string{
	EffectSimple:        "simple",
	EffectOutline:       "outline",
	EffectBackground:    "background",
	EffectGlow:          "glow",
	EffectDualGlow:      "dual_glow",
	EffectTextShadow:    "text_shadow",
	EffectWordHighlight: "word_highlight",
	EffectDeepDiver:     "deep_diver",
}

// EffectTypes lists every effect type in declaration order.
func EffectTypes() []EffectType {
	out := make([]EffectType, len(effectNames))
	for i := range effectNames {
		out[i] = EffectType(i)
	}
	return out
}

// String returns the catalog name of the effect.
func (e EffectType) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("EffectType(%d)", uint8(e))
}

// ParseEffectType maps a catalog name to its EffectType. Matching ignores
// case and treats '-' like '_'.
func ParseEffectType(s string) (EffectType, bool) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "" {
		return EffectSimple, true
	}
	for i, name := range effectNames {
		if name == norm {
			return EffectType(i), true
		}
	}
	return EffectSimple, false
}

// MarshalText implements encoding.TextMarshaler.
func (e EffectType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// EffectSimple and are logged.
func (e *EffectType) UnmarshalText(b []byte) error {
	t, ok := ParseEffectType(string(b))
	if !ok {
		logging.Logger().Warn("style: unknown effect type, using simple", "effect_type", string(b))
	}
	*e = t
	return nil
}
