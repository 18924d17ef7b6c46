// Package filter implements the linear (kernel) and median neighborhood
// filters.
//
// # Linear filters
//
// ApplyKernel evaluates Σ k[dy,dx]·src[y+dy-r, x+dx-r, c] for every pixel and
// channel, with out-of-range samples resolved by the boundary policy. The
// weighted sum is a correlation: kernels are not flipped. Results are rounded
// half to even and clipped to [0, 255]; ApplyKernelField keeps the signed
// float intermediate instead.
//
// Three evaluation methods are available through core.WithMethod:
//
//   - core.MethodDirect (default): the window engine, exact and deterministic.
//   - core.MethodSeparable: two 1D passes when the kernel factors as an outer
//     product; other kernels silently fall back to direct evaluation.
//   - core.MethodFFT: frequency-domain correlation over the padded plane.
//
// The alternative methods agree with direct evaluation within one intensity
// level after quantization.
//
// # Median filter
//
// Median replaces every sample by the median of its (2r+1)² neighborhood in
// the same channel. The selected element is the lower middle one, which for
// square odd windows is the exact median.
package filter
