package filter

import "image"

// squareMask returns a size×size mask with an opaque square of side n at its
// center.
func squareMask(size, n int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	lo := (size - n) / 2
	for y := lo; y < lo+n; y++ {
		for x := lo; x < lo+n; x++ {
			m.Pix[y*m.Stride+x] = 255
		}
	}
	return m
}

// coverage sums all mask values.
func coverage(m *image.Alpha) int {
	total := 0
	for _, v := range m.Pix {
		total += int(v)
	}
	return total
}
