package effect

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/caption/style"
	"github.com/gogpu/caption/typeface"
)

var fonts = typeface.NewCache(nil)

func input(words ...string) Input {
	return Input{Words: words, Highlight: -1, CanvasWidth: 1080, CanvasHeight: 1920, SafeMargin: 100}
}

func mustSpec(t *testing.T, s *style.Style) Spec {
	t.Helper()
	spec, err := FromStyle(s)
	if err != nil {
		t.Fatalf("FromStyle: %v", err)
	}
	return spec
}

func opaque(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestFromStyleDefaults(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectGlow})
	g, ok := spec.(Glow)
	if !ok {
		t.Fatalf("spec = %T, want Glow", spec)
	}
	if g.Radius != 15 || g.Intensity != 0.8 || g.HighlightIntensity != 1.2 {
		t.Errorf("glow defaults = %v/%v/%v", g.Radius, g.Intensity, g.HighlightIntensity)
	}
	if g.Pulse.Enabled {
		t.Error("pulse enabled by default")
	}
	if g.Size != style.DefaultFontSize || g.HighlightSize != style.DefaultFontSize {
		t.Errorf("sizes = %v/%v", g.Size, g.HighlightSize)
	}

	d := mustSpec(t, &style.Style{Effect: style.EffectDualGlow}).(DualGlow)
	if d.Highlighted.Intensity != 0.6 || d.Normal.Radius != 12 {
		t.Errorf("dual glow defaults = %+v", d)
	}

	dd := mustSpec(t, &style.Style{Effect: style.EffectDeepDiver}).(DeepDiver)
	if dd.Padding != (style.Pad{X: 40, Y: 15}) || dd.MaxWidthRatio != 0.85 {
		t.Errorf("deep diver defaults = %+v", dd)
	}
}

func TestFromStyleOverrides(t *testing.T) {
	s := &style.Style{
		Effect: style.EffectBackground,
		Colors: style.Colors{
			"background":             {R: 10, G: 20, B: 30},
			"background_highlighted": {R: 200, G: 0, B: 0},
		},
		Params: style.Params{
			"background_padding":         map[string]any{"x": 8.0, "y": 4.0},
			"highlight_brightness_boost": 30,
		},
	}
	b := mustSpec(t, s).(Background)
	if b.Padding != (style.Pad{X: 8, Y: 4}) {
		t.Errorf("padding = %+v", b.Padding)
	}
	if b.Boost != 30 || b.BoxHighlighted != (style.RGB{R: 200}) {
		t.Errorf("highlight = %v %v", b.Boost, b.BoxHighlighted)
	}
}

func TestFromStyleUnsupported(t *testing.T) {
	_, err := FromStyle(&style.Style{Effect: style.EffectType(200)})
	if !errors.Is(err, ErrUnsupportedEffect) {
		t.Fatalf("err = %v, want ErrUnsupportedEffect", err)
	}
}

func TestValidate(t *testing.T) {
	for _, e := range style.EffectTypes() {
		spec := mustSpec(t, &style.Style{Effect: e})
		if err := Validate(spec); err != nil {
			t.Errorf("Validate(%v) = %v", e, err)
		}
	}
	if err := Validate(nil); !errors.Is(err, ErrUnsupportedEffect) {
		t.Errorf("Validate(nil) = %v", err)
	}
}

func TestRenderEveryEffectDeterministic(t *testing.T) {
	for _, e := range style.EffectTypes() {
		t.Run(e.String(), func(t *testing.T) {
			spec := mustSpec(t, &style.Style{Effect: e})
			in := input("hey", "hello", "there")
			in.Highlight = 1
			a := Render(spec, in, fonts)
			b := Render(spec, in, fonts)
			if a.Bounds().Empty() || opaque(a) == 0 {
				t.Fatal("nothing rendered")
			}
			if a.Bounds() != b.Bounds() || !bytes.Equal(a.Pix, b.Pix) {
				t.Error("repeated render differs")
			}
		})
	}
}

func TestRenderEmptyWindow(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectOutline})
	for _, words := range [][]string{nil, {""}, {"  "}} {
		img := Render(spec, input(words...), fonts)
		if !img.Bounds().Empty() {
			t.Errorf("Render(%q) bounds = %v, want empty", words, img.Bounds())
		}
	}
}

func TestOutlineGrowsImage(t *testing.T) {
	simple := Render(mustSpec(t, &style.Style{Effect: style.EffectSimple}), input("word"), fonts)
	outline := Render(mustSpec(t, &style.Style{Effect: style.EffectOutline}), input("word"), fonts)
	if outline.Bounds().Dx() <= simple.Bounds().Dx() {
		t.Errorf("outline width %d <= simple width %d", outline.Bounds().Dx(), simple.Bounds().Dx())
	}
	if opaque(outline) <= opaque(simple) {
		t.Error("outline covers no more pixels than plain text")
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		in   string
		t    style.TextTransform
		want string
	}{
		{"Hello World", style.TransformNone, "Hello World"},
		{"Hello World", style.TransformUpper, "HELLO WORLD"},
		{"Hello World", style.TransformLower, "hello world"},
		{"hello world", style.TransformTitle, "Hello World"},
		{"straße", style.TransformUpper, "STRASSE"},
	}
	for _, tt := range tests {
		if got := transform(tt.in, tt.t); got != tt.want {
			t.Errorf("transform(%q, %v) = %q, want %q", tt.in, tt.t, got, tt.want)
		}
	}
}

func TestPulseAt(t *testing.T) {
	p := Pulse{Enabled: true, Frequency: 0.5, Min: 0.3, Max: 1}
	hi, rhi := PulseAt(p, 0.8, 0)
	lo, rlo := PulseAt(p, 0.8, 1/(2*p.Frequency))
	if hi <= lo || rhi <= rlo {
		t.Fatalf("PulseAt peak %v/%v not above trough %v/%v", hi, rhi, lo, rlo)
	}
	if want := 0.8; hi < want-1e-9 || hi > want+1e-9 {
		t.Errorf("peak intensity = %v, want %v", hi, want)
	}
	if want := 0.24; lo < want-1e-9 || lo > want+1e-9 {
		t.Errorf("trough intensity = %v, want %v", lo, want)
	}
	mid, _ := PulseAt(p, 0.8, 0.5)
	if mid <= lo || mid >= hi {
		t.Errorf("quarter-period intensity %v not between %v and %v", mid, lo, hi)
	}
}

func TestPulsingGlowDependsOnTime(t *testing.T) {
	s := &style.Style{
		Effect: style.EffectGlow,
		Params: style.Params{"pulse": map[string]any{"enabled": true, "frequency": 0.5}},
	}
	spec := mustSpec(t, s)

	at := func(ts float64) *image.RGBA {
		in := input("pulse")
		in.Time = ts
		return Render(spec, in, fonts)
	}
	a, b := at(0), at(1.0)
	if a.Bounds() == b.Bounds() && bytes.Equal(a.Pix, b.Pix) {
		t.Error("glow identical at peak and trough of the pulse")
	}
	if opaque(a) <= opaque(b) {
		t.Errorf("peak glow covers %d pixels, trough %d", opaque(a), opaque(b))
	}
	again := at(0)
	if !bytes.Equal(a.Pix, again.Pix) {
		t.Error("same time rendered differently")
	}
}

func TestPulseIgnoredWhenHighlighted(t *testing.T) {
	s := &style.Style{
		Effect: style.EffectGlow,
		Params: style.Params{"pulse": map[string]any{"enabled": true}},
	}
	spec := mustSpec(t, s)
	in := input("pulse")
	in.Highlight = 0
	a := Render(spec, in, fonts)
	in.Time = 1
	b := Render(spec, in, fonts)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("highlighted glow changed with time")
	}
}

func TestBackgroundShrinksToSafeWidth(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectBackground})
	res := RenderResult(spec, input(strings.Repeat("W", 40)), fonts)
	if res.Size >= style.DefaultFontSize {
		t.Errorf("size = %v, want shrunk below %v", res.Size, style.DefaultFontSize)
	}
	if w := res.Box.Dx(); w > 1080-2*100 {
		t.Errorf("box width = %d, want <= 880", w)
	}
	if res.Box != res.Image.Bounds() {
		t.Errorf("box %v != image bounds %v", res.Box, res.Image.Bounds())
	}
}

func TestBackgroundStopsAtMinSize(t *testing.T) {
	s := &style.Style{Effect: style.EffectBackground, Params: style.Params{"min_font_size": 40.0}}
	res := RenderResult(mustSpec(t, s), input(strings.Repeat("W", 80)), fonts)
	if res.Size != 40 {
		t.Errorf("size = %v, want 40", res.Size)
	}
}

func TestBackgroundBoxColor(t *testing.T) {
	s := &style.Style{
		Effect: style.EffectBackground,
		Colors: style.Colors{"background": {R: 0, G: 0, B: 200}},
	}
	res := RenderResult(mustSpec(t, s), input("box"), fonts)
	c := res.Image.RGBAAt(1, 1)
	if c.B != 200 || c.A != 255 {
		t.Errorf("corner pixel = %+v, want opaque blue", c)
	}
}

func countHighlighted(words []WordBox) int {
	n := 0
	for _, w := range words {
		if w.Highlighted {
			n++
		}
	}
	return n
}

func TestDeepDiverSingleActiveWord(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectDeepDiver}).(DeepDiver)
	in := input("one", "two", "three")
	in.Highlight = 2
	res := RenderResult(spec, in, fonts)

	if n := countHighlighted(res.Words); n != 1 {
		t.Fatalf("%d highlighted words, want 1", n)
	}
	for i, w := range res.Words {
		want := spec.Inactive
		if i == 2 {
			want = spec.Active
		}
		if w.Color != want {
			t.Errorf("word %d color = %v, want %v", i, w.Color, want)
		}
		if !w.Rect.In(res.Box) {
			t.Errorf("word %d rect %v outside box %v", i, w.Rect, res.Box)
		}
	}
	if c := res.Image.RGBAAt(res.Box.Dx()/2, 1); c.R != 192 || c.A != 255 {
		t.Errorf("box pixel = %+v, want opaque grey", c)
	}
}

func TestDeepDiverFitsCanvas(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectDeepDiver})
	in := input("extraordinarily", "long", "subtitle", "words")
	in.Highlight = 0
	res := RenderResult(spec, in, fonts)
	if res.Size >= style.DefaultFontSize {
		t.Errorf("size = %v, want scaled down", res.Size)
	}
	if res.Image.Bounds().Dx() > 1080 {
		t.Errorf("width = %d wider than canvas", res.Image.Bounds().Dx())
	}
}

func TestDualGlowSingleHighlight(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectDualGlow}).(DualGlow)
	in := input("a", "b", "c")
	in.Highlight = 1
	res := RenderResult(spec, in, fonts)
	if n := countHighlighted(res.Words); n != 1 {
		t.Fatalf("%d highlighted words, want 1", n)
	}
	if res.Words[1].Color != spec.Highlighted.Text || res.Words[0].Color != spec.Normal.Text {
		t.Errorf("word colors = %v, %v", res.Words[0].Color, res.Words[1].Color)
	}

	in.Highlight = -1
	if n := countHighlighted(RenderResult(spec, in, fonts).Words); n != 0 {
		t.Errorf("%d highlighted words without highlight, want 0", n)
	}
}

func TestDualGlowAutoFit(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectDualGlow})
	res := RenderResult(spec, input(strings.Repeat("M", 30)), fonts)
	if res.Size >= style.DefaultFontSize {
		t.Errorf("size = %v, want scaled down", res.Size)
	}
}

func TestTextShadowHighlightedColor(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectTextShadow}).(TextShadow)
	in := input("soft", "shadow")
	in.Highlight = 0
	res := RenderResult(spec, in, fonts)
	if res.Words[0].Color != spec.Highlighted || res.Words[1].Color != spec.Normal {
		t.Errorf("word colors = %v, %v", res.Words[0].Color, res.Words[1].Color)
	}
	if r := res.Words[0].Rect; r.Min.X <= 0 || r.Min.Y <= 0 {
		t.Errorf("word rect %v leaves no room for the shadow", r)
	}
}

func TestBoosted(t *testing.T) {
	if got := boosted(0.5, 0, 1.2); got != 0.6 {
		t.Errorf("boosted = %v, want 0.6", got)
	}
	if got := boosted(0.9, 0, 1.2); got != 1 {
		t.Errorf("boosted = %v, want capped 1", got)
	}
	if got := boosted(0.5, 0.7, 1.2); got != 0.7 {
		t.Errorf("boosted = %v, want explicit 0.7", got)
	}
}

func TestWordHighlightBoxOnlyBehindHighlighted(t *testing.T) {
	spec := mustSpec(t, &style.Style{Effect: style.EffectWordHighlight}).(WordHighlight)
	in := input("hey", "hello")
	in.Highlight = 0
	res := RenderResult(spec, in, fonts)

	if res.Box.Empty() {
		t.Fatal("no highlight box")
	}
	if !res.Words[0].Rect.In(res.Box) {
		t.Errorf("highlighted word %v outside box %v", res.Words[0].Rect, res.Box)
	}
	c := res.Image.RGBAAt(res.Box.Min.X+res.Box.Dx()/2, res.Box.Min.Y+1)
	if c.R != spec.Box.R || c.G != spec.Box.G || c.B != spec.Box.B || c.A != 255 {
		t.Errorf("box pixel = %+v, want %v", c, spec.Box)
	}
	hello := res.Words[1].Rect
	if c := res.Image.RGBAAt((hello.Min.X+hello.Max.X)/2, 1); c.A != 0 {
		t.Errorf("pixel above unhighlighted word = %+v, want transparent", c)
	}

	in.Highlight = -1
	if res := RenderResult(spec, in, fonts); !res.Box.Empty() {
		t.Errorf("box %v drawn without highlight", res.Box)
	}
}

func TestWordHighlightNormalBackground(t *testing.T) {
	s := &style.Style{
		Effect: style.EffectWordHighlight,
		Colors: style.Colors{"word_background": {R: 40, G: 40, B: 40}},
	}
	in := input("hey", "hello")
	in.Highlight = 0
	res := RenderResult(mustSpec(t, s), in, fonts)
	hello := res.Words[1].Rect
	if c := res.Image.RGBAAt((hello.Min.X+hello.Max.X)/2, 1); c.R != 40 || c.A != 255 {
		t.Errorf("pixel above unhighlighted word = %+v, want word background", c)
	}
}
