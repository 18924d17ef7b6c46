package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-pix/pix/core"
)

// Field is a float64 grid with the same layout as Buffer. It holds signed or
// out-of-range intermediates before they are quantized.
type Field struct {
	shape Shape
	data  []float64
}

// NewField returns a zero-filled field.
func NewField(s Shape) (*Field, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, s)
	}
	return &Field{shape: s, data: make([]float64, s.Len())}, nil
}

// FieldFrom returns b widened to float64.
func FieldFrom(b *Buffer) *Field {
	data := make([]float64, len(b.pix))
	for i, v := range b.pix {
		data[i] = float64(v)
	}
	return &Field{shape: b.shape, data: data}
}

// Shape returns the field dimensions.
func (f *Field) Shape() Shape { return f.shape }

// Data returns the backing store.
func (f *Field) Data() []float64 { return f.data }

// At returns the value of channel c at (y, x).
func (f *Field) At(y, x, c int) float64 {
	return f.data[(y*f.shape.Width+x)*f.shape.Channels+c]
}

// Set stores v at (y, x, c).
func (f *Field) Set(y, x, c int, v float64) {
	f.data[(y*f.shape.Width+x)*f.shape.Channels+c] = v
}

// Row returns the values of row y, all channels interleaved.
func (f *Field) Row(y int) []float64 {
	stride := f.shape.Width * f.shape.Channels
	return f.data[y*stride : (y+1)*stride]
}

// SetChannelPlane stores a row-major single-channel plane into channel c.
func (f *Field) SetChannelPlane(c int, plane []float64) {
	ch := f.shape.Channels
	for i := range f.shape.Height * f.shape.Width {
		f.data[i*ch+c] = plane[i]
	}
}

// Quantize rounds every value half to even and clips it into a new Buffer.
func (f *Field) Quantize() *Buffer {
	out := &Buffer{shape: f.shape, pix: make([]uint8, len(f.data))}
	core.QuantizeInto(out.pix, f.data)
	return out
}
