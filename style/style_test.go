package style

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const legacyCatalog = `{
  "neon_pulse": {
    "name": "Neon Pulse",
    "effect_type": "glow",
    "typography": {
      "font_family": "Montserrat-Bold",
      "font_size": 72,
      "font_size_highlighted": 80,
      "text_transform": "uppercase",
      "colors": {"normal": [255, 255, 255], "glow": [0, 255, 255]}
    },
    "effect_parameters": {
      "glow_radius": 20,
      "pulse": {"enabled": true, "frequency": 2}
    },
    "layout": {"position": "center", "safe_zones": false}
  },
  "cinematic": {
    "effect_type": "text_shadow",
    "typography": {"font_family": "Anton", "colors": {"text_normal": "#ffffff", "text_highlighted": "#ff0"}},
    "text_shadow": {"shadowBlur": 10, "extraShadows": [{"blur": 30}]}
  },
  "mystery": {
    "effect_type": "sparkle",
    "typography": {}
  }
}`

func parseLegacy(t *testing.T) *Catalog {
	t.Helper()
	cat, err := ParseCatalog([]byte(legacyCatalog), FormatJSON)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	return cat
}

func TestParseCatalogLegacyColors(t *testing.T) {
	s, err := parseLegacy(t).Get("neon_pulse")
	if err != nil {
		t.Fatal(err)
	}
	if s.Effect != EffectGlow {
		t.Errorf("Effect = %v, want glow", s.Effect)
	}
	if got := s.Color("glow"); got != (RGB{0, 255, 255}) {
		t.Errorf("Color(glow) = %v, want cyan", got)
	}
	if got := s.Color("text"); got != (RGB{255, 255, 255}) {
		t.Errorf("Color(text) via alias = %v, want white", got)
	}
	if s.Typography.Transform != TransformUpper {
		t.Errorf("Transform = %v, want uppercase", s.Typography.Transform)
	}
	if s.Layout.Position != PositionCenter || s.Layout.SafeZonesEnabled() {
		t.Errorf("Layout = %+v, want center without safe zones", s.Layout)
	}
}

func TestParseCatalogTextShadowBlock(t *testing.T) {
	s, err := parseLegacy(t).Get("cinematic")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Float("shadow_blur_1"); got != 10 {
		t.Errorf("shadow_blur_1 = %v, want 10", got)
	}
	if got := s.Float("shadow_blur_2"); got != 30 {
		t.Errorf("shadow_blur_2 = %v, want 30", got)
	}
	if got := s.Color("text_highlighted"); got != (RGB{255, 255, 0}) {
		t.Errorf("text_highlighted = %v, want yellow", got)
	}
}

func TestUnknownEffectTypeFallsBackToSimple(t *testing.T) {
	s, err := parseLegacy(t).Get("mystery")
	if err != nil {
		t.Fatal(err)
	}
	if s.Effect != EffectSimple {
		t.Errorf("Effect = %v, want simple", s.Effect)
	}
}

func TestGetUnknownStyle(t *testing.T) {
	_, err := parseLegacy(t).Get("karaoke")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("err = %v, want ErrUnknownStyle", err)
	}
	var use *UnknownStyleError
	if !errors.As(err, &use) {
		t.Fatalf("err = %T, want *UnknownStyleError", err)
	}
	want := []string{"cinematic", "mystery", "neon_pulse"}
	if !reflect.DeepEqual(use.Available, want) {
		t.Errorf("Available = %v, want %v", use.Available, want)
	}
	if !strings.Contains(err.Error(), "karaoke") || !strings.Contains(err.Error(), "neon_pulse") {
		t.Errorf("message %q should name the style and the alternatives", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	cat := parseLegacy(t)
	a, _ := cat.Get("neon_pulse")
	a.Colors["glow"] = RGB{1, 2, 3}
	a.Params["pulse"].(map[string]any)["frequency"] = 9.0

	b, _ := cat.Get("neon_pulse")
	if b.Color("glow") == (RGB{1, 2, 3}) {
		t.Error("mutating a returned style changed the catalog colors")
	}
	if b.Float("pulse.frequency") != 2 {
		t.Error("mutating a returned style changed the catalog params")
	}
}

func TestParseCatalogErrors(t *testing.T) {
	if _, err := ParseCatalog([]byte(`{}`), FormatJSON); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty catalog err = %v, want ErrEmptyCatalog", err)
	}
	if _, err := ParseCatalog([]byte(`{"a": {"typography": 5}}`), FormatJSON); err == nil {
		t.Error("malformed style should fail to load")
	}
	if _, err := ParseCatalog([]byte(`not json`), FormatJSON); err == nil {
		t.Error("malformed catalog should fail to load")
	}
	if _, err := LoadCatalog("styles.yaml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("yaml err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParamDefaults(t *testing.T) {
	tests := []struct {
		effect EffectType
		key    string
		want   float64
	}{
		{EffectOutline, "outline_width", 3},
		{EffectBackground, "outline_width", 0},
		{EffectGlow, "glow_intensity_highlighted", 1.2},
		{EffectDualGlow, "glow_intensity_highlighted", 0.6},
		{EffectGlow, "pulse.frequency", 0.5},
		{EffectTextShadow, "shadow_blur_2", 27},
		{EffectDeepDiver, "max_width_ratio", 0.85},
		{EffectSimple, "no_such_key", 0},
	}
	for _, tt := range tests {
		t.Run(tt.effect.String()+"/"+tt.key, func(t *testing.T) {
			s := &Style{Effect: tt.effect}
			if got := s.Float(tt.key); got != tt.want {
				t.Errorf("Float(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestPadForms(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Pad
	}{
		{"scalar", 12.0, Pad{12, 12}},
		{"table", map[string]any{"x": 30.0, "y": 5.0}, Pad{30, 5}},
		{"css names", map[string]any{"horizontal": 8, "vertical": 4}, Pad{8, 4}},
		{"wrong type", "wide", Pad{20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Style{Effect: EffectBackground, Params: Params{"background_padding": tt.value}}
			if got := s.Pad("background_padding"); got != tt.want {
				t.Errorf("Pad = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorDefaults(t *testing.T) {
	s := &Style{Effect: EffectDeepDiver}
	if got := s.Color("background"); got != (RGB{192, 192, 192}) {
		t.Errorf("deep diver background = %v, want light grey", got)
	}
	s.Effect = EffectBackground
	if got := s.Color("background"); got != (RGB{0, 0, 0}) {
		t.Errorf("background default = %v, want black", got)
	}
	if got := s.Color("unheard_of"); got != (RGB{255, 255, 255}) {
		t.Errorf("unknown role = %v, want white", got)
	}
}

func TestNormalized(t *testing.T) {
	n := Style{}.Normalized()
	if n.Typography.FontSize != DefaultFontSize || n.Typography.FontSizeHighlighted != DefaultFontSize {
		t.Errorf("font sizes = %v/%v, want %v", n.Typography.FontSize, n.Typography.FontSizeHighlighted, DefaultFontSize)
	}
	if n.Typography.LineHeight != DefaultLineHeight || n.Layout.WordsPerWindow != DefaultWordsPerWindow {
		t.Errorf("Normalized = %+v", n)
	}
	if !n.Layout.SafeZonesEnabled() {
		t.Error("safe zones should default to enabled")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatTOML} {
		cat := parseLegacy(t)

		var buf bytes.Buffer
		if err := cat.Encode(&buf, format); err != nil {
			t.Fatalf("Encode(%d): %v", format, err)
		}
		again, err := ParseCatalog(buf.Bytes(), format)
		if err != nil {
			t.Fatalf("ParseCatalog(%d): %v\n%s", format, err, buf.String())
		}

		for _, name := range cat.Names() {
			a, _ := cat.Get(name)
			b, _ := again.Get(name)
			if !reflect.DeepEqual(normalizeNumbers(a), normalizeNumbers(b)) {
				t.Errorf("format %d: style %q changed across round trip\n got %+v\nwant %+v", format, name, b, a)
			}
		}
	}
}

// normalizeNumbers re-encodes params so int and float spellings compare equal.
func normalizeNumbers(s *Style) *Style {
	c := s.Clone()
	var walk func(m map[string]any)
	walk = func(m map[string]any) {
		for k, v := range m {
			switch n := v.(type) {
			case int64:
				m[k] = float64(n)
			case map[string]any:
				walk(n)
			}
		}
	}
	walk(c.Params)
	return c
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	cat := parseLegacy(t)
	for _, name := range []string{"styles.json", "styles.toml"} {
		path := filepath.Join(dir, name)
		if err := cat.Save(path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		loaded, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("LoadCatalog(%s): %v", name, err)
		}
		if loaded.Len() != cat.Len() {
			t.Errorf("%s: Len = %d, want %d", name, loaded.Len(), cat.Len())
		}
	}
}

func TestLoadTOMLCatalog(t *testing.T) {
	const doc = `
[bold_box]
effect_type = "background"

[bold_box.typography]
font_family = "Go-Bold"
font_size = 64

[bold_box.colors]
background = [20, 20, 20]
text = "#ffcc00"

[bold_box.effect_parameters]
background_padding = { x = 30, y = 12 }
rounded_corners = 18
`
	cat, err := ParseCatalog([]byte(doc), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	s, err := cat.Get("bold_box")
	if err != nil {
		t.Fatal(err)
	}
	if s.Effect != EffectBackground || s.Typography.FontSize != 64 {
		t.Errorf("style = %+v", s)
	}
	if got := s.Pad("background_padding"); got != (Pad{30, 12}) {
		t.Errorf("padding = %+v, want {30 12}", got)
	}
	if got := s.Color("text"); got != (RGB{255, 204, 0}) {
		t.Errorf("text = %v, want #ffcc00", got)
	}
}

func TestEffectTypeText(t *testing.T) {
	for _, e := range EffectTypes() {
		b, _ := e.MarshalText()
		var back EffectType
		if err := back.UnmarshalText(b); err != nil || back != e {
			t.Errorf("%v round-tripped to %v (%v)", e, back, err)
		}
	}
	if e, ok := ParseEffectType("Word-Highlight"); !ok || e != EffectWordHighlight {
		t.Errorf("ParseEffectType(Word-Highlight) = %v, %v", e, ok)
	}
}

func TestColorHelpers(t *testing.T) {
	c := RGB{250, 100, 0}
	if got := c.Add(10); got != (RGB{255, 110, 10}) {
		t.Errorf("Add = %v", got)
	}
	if got := c.Mul(1.5); got != (RGB{255, 150, 0}) {
		t.Errorf("Mul = %v", got)
	}
	if c.Hex() != "#fa6400" {
		t.Errorf("Hex = %s", c.Hex())
	}
	if _, err := ParseHex("#12"); err == nil {
		t.Error("ParseHex should reject short input")
	}
}

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()
	if cat.Len() != len(EffectTypes()) {
		t.Fatalf("Len = %d, want %d", cat.Len(), len(EffectTypes()))
	}
	for _, e := range EffectTypes() {
		s, err := cat.Get(e.String())
		if err != nil {
			t.Fatalf("Get(%v): %v", e, err)
		}
		if s.Effect != e || s.Name != e.String() {
			t.Errorf("style %q has effect %v", s.Name, s.Effect)
		}
	}
}
