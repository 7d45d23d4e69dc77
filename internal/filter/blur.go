package filter

import (
	"image"
	"sync"
)

// Blur returns a Gaussian-blurred copy of m with standard deviation sigma.
// Pixels outside m count as transparent, so coverage fades toward the edges
// instead of smearing them; callers pad masks by Reach(sigma) beforehand.
func Blur(m *image.Alpha, sigma float64) *image.Alpha {
	b := m.Bounds()
	if sigma <= 0 || b.Empty() {
		return Clone(m)
	}
	out := image.NewAlpha(b)

	w, h := b.Dx(), b.Dy()
	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2

	tmp := getBuffer(w * h)
	defer putBuffer(tmp)

	// Horizontal pass: m -> tmp.
	for y := range h {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		dst := tmp[y*w : (y+1)*w]
		for x := range w {
			var acc float32
			lo, hi := max(0, x-half), min(w-1, x+half)
			for sx := lo; sx <= hi; sx++ {
				if v := row[sx]; v != 0 {
					acc += float32(v) * kernel[sx-x+half]
				}
			}
			dst[x] = acc
		}
	}

	// Vertical pass: tmp -> out.
	for y := range h {
		lo, hi := max(0, y-half), min(h-1, y+half)
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := range w {
			var acc float32
			for sy := lo; sy <= hi; sy++ {
				acc += tmp[sy*w+x] * kernel[sy-y+half]
			}
			dst[x] = clampUint8(acc)
		}
	}
	return out
}

// Clone returns a copy of m with its own pixel buffer.
func Clone(m *image.Alpha) *image.Alpha {
	b := m.Bounds()
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(b.Min.X, y):], m.Pix[m.PixOffset(b.Min.X, y):m.PixOffset(b.Max.X, y)])
	}
	return out
}

type floatBuffer struct {
	data []float32
}

var bufferPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// getBuffer returns a zeroed scratch slice of length n.
func getBuffer(n int) []float32 {
	fb := bufferPool.Get().(*floatBuffer)
	if cap(fb.data) < n {
		fb.data = make([]float32, n)
	}
	buf := fb.data[:n]
	clear(buf)
	return buf
}

func putBuffer(buf []float32) {
	if cap(buf) > 8<<20 {
		return
	}
	bufferPool.Put(&floatBuffer{data: buf})
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
