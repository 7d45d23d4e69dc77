package style

import (
	"encoding/json"
	"maps"
)

// wireTypography carries typography.colors, the layout older catalogs use
// for colors.
type wireTypography struct {
	Typography
	Colors Colors `json:"colors,omitempty"`
}

// wireShadow is the CSS-like text_shadow block of older catalogs.
type wireShadow struct {
	ShadowBlur   *float64 `json:"shadowBlur"`
	ExtraShadows []struct {
		Blur *float64 `json:"blur"`
	} `json:"extraShadows"`
}

// UnmarshalJSON decodes a catalog entry. Colors found under typography.colors
// are merged under top-level colors (top-level wins); a top-level text_shadow
// block becomes shadow_blur_1 and shadow_blur_2 parameters unless those are
// already set.
func (s *Style) UnmarshalJSON(b []byte) error {
	type plain Style
	var w struct {
		plain
		Typography wireTypography `json:"typography"`
		TextShadow *wireShadow    `json:"text_shadow"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = Style(w.plain)
	s.Typography = w.Typography.Typography

	if len(w.Typography.Colors) > 0 {
		merged := make(Colors, len(w.Typography.Colors)+len(s.Colors))
		maps.Copy(merged, w.Typography.Colors)
		maps.Copy(merged, s.Colors)
		s.Colors = merged
	}

	if sh := w.TextShadow; sh != nil {
		if s.Params == nil {
			s.Params = Params{}
		}
		if _, ok := s.Params["shadow_blur_1"]; !ok && sh.ShadowBlur != nil {
			s.Params["shadow_blur_1"] = *sh.ShadowBlur
		}
		if _, ok := s.Params["shadow_blur_2"]; !ok && len(sh.ExtraShadows) > 0 && sh.ExtraShadows[0].Blur != nil {
			s.Params["shadow_blur_2"] = *sh.ExtraShadows[0].Blur
		}
	}
	return nil
}
