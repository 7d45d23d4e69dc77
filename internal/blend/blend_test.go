package blend

import (
	"image"
	"image/color"
	"testing"
)

func TestSourceOverOpaqueSourceWins(t *testing.T) {
	r, g, b, a := sourceOver(200, 100, 50, 255, 10, 20, 30, 255)
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("sourceOver = (%d,%d,%d,%d), want (200,100,50,255)", r, g, b, a)
	}
}

func TestSourceOverTransparentSourceKeepsDest(t *testing.T) {
	r, g, b, a := sourceOver(0, 0, 0, 0, 10, 20, 30, 40)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("sourceOver = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{100, 255, 100},
		{128, 128, 64},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestOverClipsToDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	Over(dst, src, image.Pt(2, 2))

	if got := dst.RGBAAt(3, 3); got.A != 255 {
		t.Errorf("pixel (3,3) alpha = %d, want 255", got.A)
	}
	if got := dst.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("pixel (1,1) alpha = %d, want 0", got.A)
	}
}

func TestOverHonoursSourceOrigin(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src := image.NewRGBA(image.Rect(10, 10, 12, 12))
	src.SetRGBA(10, 10, color.RGBA{255, 0, 0, 255})

	Over(dst, src, image.Pt(5, 5))

	if got := dst.RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (5,5) = %v, want opaque red", got)
	}
}

func TestMaskPremultiplies(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.Pix[0] = 255
	mask.Pix[1] = 0

	Mask(dst, mask, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.5)

	got := dst.RGBAAt(0, 0)
	if got.A < 127 || got.A > 129 || got.R != got.A {
		t.Errorf("half-opacity white = %v, want premultiplied ~(128,128,128,128)", got)
	}
	if got := dst.RGBAAt(1, 0); got.A != 0 {
		t.Errorf("uncovered pixel alpha = %d, want 0", got.A)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		c       byte
		opacity float64
		want    byte
	}{
		{255, 1, 255},
		{255, 2, 255},
		{255, -1, 0},
		{200, 0.5, 100},
	}
	for _, tt := range tests {
		if got := Scale(tt.c, tt.opacity); got != tt.want {
			t.Errorf("Scale(%d, %v) = %d, want %d", tt.c, tt.opacity, got, tt.want)
		}
	}
}
