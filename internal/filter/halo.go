package filter

import "image"

// Layer is one concentric ring of a halo: the shape dilated by Radius pixels
// and painted at Opacity.
type Layer struct {
	Radius  float64
	Opacity float64
}

// Halo stacks the layers over one another in a single color and returns the
// accumulated coverage. Stacking uses source-over on alpha, so overlapping
// layers build up as 1 - Π(1 - opacity·coverage).
func Halo(f *Distance, layers []Layer) *image.Alpha {
	out := image.NewAlpha(f.Bounds())
	if len(layers) == 0 {
		return out
	}

	acc := getBuffer(len(out.Pix))
	defer putBuffer(acc)

	w := f.rect.Dx()
	for _, l := range layers {
		if l.Opacity <= 0 {
			continue
		}
		op := float32(min(l.Opacity, 1))
		ring := f.Dilate(l.Radius)
		for y := range f.rect.Dy() {
			row := ring.Pix[y*ring.Stride : y*ring.Stride+w]
			for x, v := range row {
				if v == 0 {
					continue
				}
				a := op * float32(v) / 255
				i := y*w + x
				acc[i] = acc[i] + a - acc[i]*a
			}
		}
	}

	for y := range f.rect.Dy() {
		for x := range w {
			out.Pix[y*out.Stride+x] = clampUint8(acc[y*w+x] * 255)
		}
	}
	return out
}
