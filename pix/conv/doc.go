// Package conv provides the convolution back ends behind the linear image
// filters.
//
// The package offers two strategies in addition to the window engine's direct
// evaluation:
//
//   - Separable: a rank-one kernel k = col ⊗ row is applied as one horizontal
//     and one vertical 1D pass, O(k) instead of O(k²) work per pixel.
//   - FFT: the plane and kernel are transformed with 2D FFTs, multiplied and
//     transformed back, which wins for large kernels.
//
// Both operate on planes that the caller has already padded by the kernel
// radius, and return the "valid" region, so border handling stays with the
// caller's boundary policy:
//
//	padded := border.Reflect.Pad(plane, h, w, r)
//	out, err := conv.SeparableValid(padded, h+2*r, w+2*r, col, row)
//
// All routines compute correlations (no kernel flip), matching the window
// engine's weighted sum.
package conv
