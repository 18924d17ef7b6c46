// Package kernel generates the square, odd-sized weight matrices used by the
// linear filters: identity, mean, gaussian, sharpen and the four base Sobel
// orientations.
//
// Kernels are immutable values. Weights are applied as a correlation: the
// weight at (dy, dx) multiplies the sample at the same window offset, with
// (Radius, Radius) at the center.
//
// # Sobel orientations
//
// Only 0°, 45°, 90° and 135° are stored. A 180° rotation of any Sobel kernel
// equals its negation, so Sobel(180) through Sobel(315) are derived with
// Negate:
//
//	k0, _ := kernel.Sobel(kernel.Angle0)
//	k180, _ := kernel.Sobel(kernel.Angle180) // == k0.Negate() == k0.Rotate180()
//
// # Gaussian sigma
//
// Gaussian(k, sigma) with sigma <= 0 uses DefaultSigma(k) = max(k/6, 0.5), so
// that ±3 sigma spans the kernel.
package kernel
