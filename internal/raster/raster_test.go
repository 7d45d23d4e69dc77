package raster

import (
	"image"
	"testing"
)

func sum(m *image.Alpha) int {
	total := 0
	for _, v := range m.Pix {
		total += int(v)
	}
	return total
}

func TestFillRectangle(t *testing.T) {
	var p Path
	p.RoundedRect(Rect{MinX: 2, MinY: 2, MaxX: 8, MaxY: 6}, 0)

	m := image.NewAlpha(image.Rect(0, 0, 10, 10))
	p.Fill(m)

	if got := sum(m); got != 6*4*255 {
		t.Errorf("coverage = %d, want %d", got, 6*4*255)
	}
	if m.AlphaAt(1, 1).A != 0 || m.AlphaAt(4, 4).A != 255 {
		t.Error("rectangle filled in the wrong place")
	}
}

func TestFillRelativeToMaskOrigin(t *testing.T) {
	var p Path
	p.RoundedRect(Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, 0)

	m := image.NewAlpha(image.Rect(10, 10, 14, 14))
	p.Fill(m)

	if m.AlphaAt(10, 10).A != 255 {
		t.Error("path coordinates should be relative to the mask minimum")
	}
	if m.AlphaAt(13, 13).A != 0 {
		t.Error("unexpected coverage outside the rectangle")
	}
}

func TestRoundedCornersTrimCoverage(t *testing.T) {
	square := image.NewAlpha(image.Rect(0, 0, 40, 40))
	var sq Path
	sq.RoundedRect(Rect{MaxX: 40, MaxY: 40}, 0)
	sq.Fill(square)

	rounded := image.NewAlpha(image.Rect(0, 0, 40, 40))
	var rp Path
	rp.RoundedRect(Rect{MaxX: 40, MaxY: 40}, 10)
	rp.Fill(rounded)

	if rounded.AlphaAt(0, 0).A != 0 {
		t.Error("corner pixel should be outside a rounded rectangle")
	}
	if rounded.AlphaAt(20, 20).A != 255 {
		t.Error("center should stay covered")
	}
	if sum(rounded) >= sum(square) {
		t.Error("rounding should remove coverage")
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	var p Path
	p.RoundedRect(Rect{MaxX: 10, MaxY: 4}, 50)
	m := image.NewAlpha(image.Rect(0, 0, 10, 4))
	p.Fill(m)
	if m.AlphaAt(5, 2).A == 0 {
		t.Error("pill shape should cover its center")
	}
}

func TestEmptyPath(t *testing.T) {
	var p Path
	if !p.Empty() {
		t.Error("zero Path should be empty")
	}
	m := image.NewAlpha(image.Rect(0, 0, 4, 4))
	p.Fill(m)
	if sum(m) != 0 {
		t.Error("empty path should not paint")
	}
}

func TestMoveToClosesPreviousContour(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(4, 0)
	p.LineTo(4, 4)
	p.MoveTo(6, 6)
	p.LineTo(8, 6)
	p.LineTo(8, 8)

	closes := 0
	for _, s := range p.segs {
		if s.verb == verbClose {
			closes++
		}
	}
	if closes != 1 {
		t.Errorf("close verbs = %d, want 1 before Fill", closes)
	}
}
