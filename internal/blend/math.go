// Package blend composites premultiplied RGBA pixels.
//
// The div255 helpers avoid integer division by using shifts; mulDiv255 runs
// once per channel per pixel in every blend.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

// div255 divides x by 255 using the shift approximation (x + 255) >> 8.
// For alpha blending inputs (0..255*255) the result stays within [0, 255].
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 returns a*b/255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// Scale returns c scaled by an opacity in [0, 1], rounded to the nearest byte.
func Scale(c byte, opacity float64) byte {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 1:
		return c
	}
	return byte(float64(c)*opacity + 0.5)
}
