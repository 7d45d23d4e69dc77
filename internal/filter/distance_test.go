package filter

import (
	"math"
	"testing"
)

func TestDistanceInsideIsZero(t *testing.T) {
	f := NewDistance(squareMask(20, 6))
	if d := f.At(10, 10); d != 0 {
		t.Errorf("At(center) = %v, want 0", d)
	}
	if d := f.At(-1, 0); !math.IsInf(d, 1) {
		t.Errorf("At(outside field) = %v, want +Inf", d)
	}
}

func TestDistanceGrowsAway(t *testing.T) {
	f := NewDistance(squareMask(20, 6)) // square covers [7, 13)
	if d := f.At(13, 10); d != 1 {
		t.Errorf("At(13,10) = %v, want 1", d)
	}
	if d := f.At(16, 10); d != 4 {
		t.Errorf("At(16,10) = %v, want 4", d)
	}
	if d := f.At(14, 14); math.Abs(d-2*math.Sqrt2) > 1e-4 {
		t.Errorf("At(14,14) = %v, want 2√2", d)
	}
}

func TestDilateGrowsCoverage(t *testing.T) {
	m := squareMask(30, 6)
	f := NewDistance(m)

	prev := coverage(m)
	for _, r := range []float64{1, 2, 4, 6} {
		got := coverage(f.Dilate(r))
		if got <= prev {
			t.Errorf("Dilate(%v) coverage %d not larger than %d", r, got, prev)
		}
		prev = got
	}
}

func TestDilateZeroKeepsShape(t *testing.T) {
	m := squareMask(20, 6)
	out := NewDistance(m).Dilate(0)
	// A zero radius adds no ring around the shape.
	if v := out.Pix[10*out.Stride+13]; v != 0 {
		t.Errorf("neighbor coverage = %d, want 0", v)
	}
	if coverage(out) != coverage(m) {
		t.Errorf("coverage = %d, want %d", coverage(out), coverage(m))
	}
}
