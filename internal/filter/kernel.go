package filter

import (
	"math"

	"github.com/gogpu/caption/internal/cache"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with the given
// standard deviation. The kernel spans 2*ceil(3σ)+1 taps, which covers 99.7%
// of the distribution. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernels memoizes kernels keyed by sigma quantized to 0.01.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a shared kernel for sigma. Callers must not
// modify the returned slice.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}

// Reach returns how many pixels a blur with the given sigma spreads coverage
// beyond the source shape.
func Reach(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}
