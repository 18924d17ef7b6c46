package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer constructors and shape checks.
var (
	ErrInvalidShape  = errors.New("buffer: invalid shape")
	ErrShapeMismatch = errors.New("buffer: shape mismatch")
)

// Shape describes the dimensions of a pixel grid.
type Shape struct {
	Height   int
	Width    int
	Channels int
}

// Valid reports whether every dimension is positive.
func (s Shape) Valid() bool {
	return s.Height > 0 && s.Width > 0 && s.Channels > 0
}

// Len returns the number of stored values.
func (s Shape) Len() int {
	return s.Height * s.Width * s.Channels
}

// String formats the shape as HxWxC.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// Buffer is a dense grid of 8-bit intensities.
type Buffer struct {
	shape Shape
	pix   []uint8
}

// New returns a zero-filled buffer.
func New(height, width, channels int) (*Buffer, error) {
	s := Shape{Height: height, Width: width, Channels: channels}
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, s)
	}
	return &Buffer{shape: s, pix: make([]uint8, s.Len())}, nil
}

// FromPix returns a buffer holding a copy of pix.
func FromPix(height, width, channels int, pix []uint8) (*Buffer, error) {
	b, err := New(height, width, channels)
	if err != nil {
		return nil, err
	}
	if len(pix) != len(b.pix) {
		return nil, fmt.Errorf("%w: %d values for %v", ErrInvalidShape, len(pix), b.shape)
	}
	copy(b.pix, pix)
	return b, nil
}

// MustFromPix is like FromPix but panics on error.
func MustFromPix(height, width, channels int, pix []uint8) *Buffer {
	b, err := FromPix(height, width, channels, pix)
	if err != nil {
		panic(err)
	}
	return b
}

// NewLike returns a zero-filled buffer with the same shape as b.
func NewLike(b *Buffer) *Buffer {
	return &Buffer{shape: b.shape, pix: make([]uint8, len(b.pix))}
}

// NewShape returns a zero-filled buffer with the given shape.
func NewShape(s Shape) (*Buffer, error) {
	return New(s.Height, s.Width, s.Channels)
}

// Shape returns the buffer dimensions.
func (b *Buffer) Shape() Shape { return b.shape }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.shape.Height }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.shape.Width }

// Channels returns the number of interleaved channels.
func (b *Buffer) Channels() int { return b.shape.Channels }

// Len returns the number of stored values.
func (b *Buffer) Len() int { return len(b.pix) }

// Index returns the offset of (y, x, c) in Pix.
func (b *Buffer) Index(y, x, c int) int {
	return (y*b.shape.Width+x)*b.shape.Channels + c
}

// At returns the intensity of channel c at (y, x).
func (b *Buffer) At(y, x, c int) uint8 {
	return b.pix[b.Index(y, x, c)]
}

// Pix returns the backing store. Callers that did not allocate the buffer
// must treat it as read-only.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// Row returns the values of row y, all channels interleaved.
func (b *Buffer) Row(y int) []uint8 {
	stride := b.shape.Width * b.shape.Channels
	return b.pix[y*stride : (y+1)*stride]
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{shape: b.shape, pix: pix}
}

// SameShape reports whether b and other have identical dimensions.
func (b *Buffer) SameShape(other *Buffer) bool {
	return other != nil && b.shape == other.shape
}

// Equal reports whether b and other have the same shape and values.
func (b *Buffer) Equal(other *Buffer) bool {
	if !b.SameShape(other) {
		return false
	}
	for i, v := range b.pix {
		if other.pix[i] != v {
			return false
		}
	}
	return true
}

// CheckSameShape returns ErrShapeMismatch when a and b differ in any dimension.
func CheckSameShape(a, b *Buffer) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil buffer", ErrShapeMismatch)
	}
	if a.shape != b.shape {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}

// ChannelPlane writes channel c as float64 values into dst, row-major.
// dst must hold Height*Width values.
func (b *Buffer) ChannelPlane(dst []float64, c int) {
	ch := b.shape.Channels
	for i := range b.shape.Height * b.shape.Width {
		dst[i] = float64(b.pix[i*ch+c])
	}
}
