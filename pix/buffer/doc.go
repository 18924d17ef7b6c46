// Package buffer provides the 8-bit pixel buffer shared by every pixel
// operation, a float64 Field for signed or unclipped intermediates, and a
// scratch pool for allocation-friendly processing.
//
// Buffers are laid out row-major with interleaved channels: the value of
// channel c at row y, column x lives at Pix()[(y*Width+x)*Channels+c].
// Operations never modify their input buffers; each returns a freshly
// allocated result.
package buffer
