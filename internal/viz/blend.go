package viz

import "image/color"

// Blend mixes from toward to by t, clamped to [0, 1].
func Blend(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
