package core

import "math"

const defaultEpsilon = 1e-12

// MaxIntensity is the largest storable 8-bit intensity.
const MaxIntensity = 255

// Clamp limits value to [lo, hi]. NaN is returned unchanged.
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Quantize rounds v half to even and clips it into [0, 255].
// NaN maps to 0.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(Clamp(math.RoundToEven(v), 0, MaxIntensity))
}

// QuantizeInto quantizes src into dst. Only min(len(dst), len(src)) values are written.
func QuantizeInto(dst []uint8, src []float64) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Quantize(src[i])
	}
}

// NearlyEqual reports whether a and b agree within eps, absolute or
// relative to the larger magnitude. eps <= 0 selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	diff := math.Abs(a - b)
	return diff <= eps || diff <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// FlushResidue converts values within 1e-9 of zero to exact zero.
// FFT round-off leaves residues around 1e-13 where the exact result is 0.
func FlushResidue(x float64) float64 {
	const epsilon = 1e-9
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}
