package effect

import (
	"errors"
	"fmt"

	"github.com/gogpu/caption/style"
)

// ErrUnsupportedEffect is returned for an effect type no renderer handles.
var ErrUnsupportedEffect = errors.New("effect: unsupported effect")

// Text holds the typography every family shares.
type Text struct {
	Font          string
	Size          float64
	HighlightSize float64
	Transform     style.TextTransform
	Alignment     style.Alignment
	LineHeight    float64
}

// size returns the font size for the highlighted or plain variant.
func (t Text) size(highlighted bool) float64 {
	if highlighted && t.HighlightSize > 0 {
		return t.HighlightSize
	}
	return t.Size
}

// Spec is the resolved parameter set of one effect family.
type Spec interface {
	typography() Text
}

func (s Simple) typography() Text        { return s.Text }
func (s Outline) typography() Text       { return s.Text }
func (s Background) typography() Text    { return s.Text }
func (s Glow) typography() Text          { return s.Text }
func (s DualGlow) typography() Text      { return s.Text }
func (s TextShadow) typography() Text    { return s.Text }
func (s WordHighlight) typography() Text { return s.Text }
func (s DeepDiver) typography() Text     { return s.Text }

// Simple draws plain text.
type Simple struct {
	Text
	Color style.RGB
}

// Outline strokes the glyph outlines, then fills them.
type Outline struct {
	Text
	Color        style.RGB
	OutlineColor style.RGB
	Width        float64
}

// Background draws text over a padded box that shrinks the font until the
// box fits between the safe margins.
type Background struct {
	Text
	Color          style.RGB
	Box            style.RGB
	BoxHighlighted style.RGB
	Boost          int
	Padding        style.Pad
	Opacity        float64
	CornerRadius   float64
	OutlineColor   style.RGB
	OutlineWidth   float64
	ShrinkStep     float64
	MinSize        float64
}

// Pulse animates a glow's intensity with a cosine of the query time.
type Pulse struct {
	Enabled   bool
	Frequency float64
	Min       float64
	Max       float64
}

// Glow surrounds the text with a blurred halo.
type Glow struct {
	Text
	Color               style.RGB
	GlowColor           style.RGB
	GlowHighlighted     style.RGB
	Radius              float64
	Intensity           float64
	HighlightIntensity  float64
	HighlightMultiplier float64
	Pulse               Pulse
}

// Look is the per-word appearance in the two-tone glow.
type Look struct {
	Text      style.RGB
	Glow      style.RGB
	Radius    int
	Intensity float64
}

// DualGlow glows each word in its normal or highlighted look.
type DualGlow struct {
	Text
	Normal        Look
	Highlighted   Look
	MaxWidthRatio float64
}

// TextShadow casts two blurred shadows tinted with each word's own color.
type TextShadow struct {
	Text
	Normal        style.RGB
	Highlighted   style.RGB
	Blur1, Blur2  float64
	Opacity1      float64
	Opacity2      float64
	Boost         float64
	MaxWidthRatio float64

	// HighlightOpacity1 and HighlightOpacity2 replace Opacity*Boost for the
	// highlighted word when positive.
	HighlightOpacity1 float64
	HighlightOpacity2 float64
}

// WordHighlight puts a box behind the highlighted word only.
type WordHighlight struct {
	Text
	Color         style.RGB
	Box           style.RGB
	WordBox       *style.RGB
	Padding       style.Pad
	CornerRadius  float64
	MaxWidthRatio float64
}

// DeepDiver draws one box behind the whole window and recolors the active
// word.
type DeepDiver struct {
	Text
	Active        style.RGB
	Inactive      style.RGB
	Box           style.RGB
	Padding       style.Pad
	CornerRadius  float64
	MaxWidthRatio float64
}

// FromStyle resolves s into the Spec of its effect family. Missing colors
// and parameters take their documented defaults.
func FromStyle(s *style.Style) (Spec, error) {
	n := s.Normalized()
	s = &n
	t := Text{
		Font:          s.Typography.FontFamily,
		Size:          s.Typography.FontSize,
		HighlightSize: s.Typography.FontSizeHighlighted,
		Transform:     s.Typography.Transform,
		Alignment:     s.Typography.Alignment,
		LineHeight:    s.Typography.LineHeight,
	}

	switch s.Effect {
	case style.EffectSimple:
		return Simple{Text: t, Color: s.Color("text")}, nil

	case style.EffectOutline:
		return Outline{
			Text:         t,
			Color:        s.Color("text"),
			OutlineColor: s.Color("outline"),
			Width:        s.Float("outline_width"),
		}, nil

	case style.EffectBackground:
		box := s.Color("background")
		hl, ok := s.LookupColor("background_highlighted")
		if !ok {
			hl = box
		}
		return Background{
			Text:           t,
			Color:          s.Color("text"),
			Box:            box,
			BoxHighlighted: hl,
			Boost:          s.Int("highlight_brightness_boost"),
			Padding:        s.Pad("background_padding"),
			Opacity:        s.Float("background_opacity"),
			CornerRadius:   s.Float("rounded_corners"),
			OutlineColor:   s.Color("outline"),
			OutlineWidth:   s.Float("outline_width"),
			ShrinkStep:     s.Float("shrink_step"),
			MinSize:        s.Float("min_font_size"),
		}, nil

	case style.EffectGlow:
		glow := s.Color("glow")
		hl, ok := s.LookupColor("glow_highlighted")
		if !ok {
			hl = glow
		}
		return Glow{
			Text:                t,
			Color:               s.Color("text"),
			GlowColor:           glow,
			GlowHighlighted:     hl,
			Radius:              s.Float("glow_radius"),
			Intensity:           s.Float("glow_intensity"),
			HighlightIntensity:  s.Float("glow_intensity_highlighted"),
			HighlightMultiplier: s.Float("highlight_color_multiplier"),
			Pulse: Pulse{
				Enabled:   s.Bool("pulse.enabled"),
				Frequency: s.Float("pulse.frequency"),
				Min:       s.Float("pulse.min_intensity"),
				Max:       s.Float("pulse.max_intensity"),
			},
		}, nil

	case style.EffectDualGlow:
		return DualGlow{
			Text: t,
			Normal: Look{
				Text:      s.Color("text_normal"),
				Glow:      s.Color("glow_normal"),
				Radius:    s.Int("glow_radius_normal"),
				Intensity: s.Float("glow_intensity_normal"),
			},
			Highlighted: Look{
				Text:      s.Color("text_highlighted"),
				Glow:      s.Color("glow_highlighted"),
				Radius:    s.Int("glow_radius_highlighted"),
				Intensity: s.Float("glow_intensity_highlighted"),
			},
			MaxWidthRatio: s.Float("max_width_ratio"),
		}, nil

	case style.EffectTextShadow:
		return TextShadow{
			Text:              t,
			Normal:            s.Color("text_normal"),
			Highlighted:       s.Color("text_highlighted"),
			Blur1:             s.Float("shadow_blur_1"),
			Blur2:             s.Float("shadow_blur_2"),
			Opacity1:          s.Float("shadow_opacity_1"),
			Opacity2:          s.Float("shadow_opacity_2"),
			Boost:             s.Float("highlight_opacity_boost"),
			HighlightOpacity1: s.Float("shadow_opacity_1_highlighted"),
			HighlightOpacity2: s.Float("shadow_opacity_2_highlighted"),
			MaxWidthRatio:     s.Float("max_width_ratio"),
		}, nil

	case style.EffectWordHighlight:
		spec := WordHighlight{
			Text:          t,
			Color:         s.Color("text"),
			Box:           s.Color("highlight_background"),
			Padding:       s.Pad("background_padding"),
			CornerRadius:  s.Float("corner_radius"),
			MaxWidthRatio: s.Float("max_width_ratio"),
		}
		if c, ok := s.LookupColor("word_background"); ok {
			spec.WordBox = &c
		}
		return spec, nil

	case style.EffectDeepDiver:
		return DeepDiver{
			Text:          t,
			Active:        s.Color("active_text"),
			Inactive:      s.Color("inactive_text"),
			Box:           s.Color("background"),
			Padding:       s.Pad("background_padding"),
			CornerRadius:  s.Float("corner_radius"),
			MaxWidthRatio: s.Float("max_width_ratio"),
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedEffect, s.Effect)
}

// Validate reports whether spec is one of the families Render handles.
func Validate(spec Spec) error {
	switch spec.(type) {
	case Simple, Outline, Background, Glow, DualGlow, TextShadow, WordHighlight, DeepDiver:
		return nil
	case nil:
		return fmt.Errorf("%w: nil spec", ErrUnsupportedEffect)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedEffect, spec)
}
