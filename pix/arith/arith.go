package arith

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

// Errors returned by arithmetic operations.
var (
	ErrInvalidGamma = errors.New("arith: gamma must be positive")
	ErrNilBuffer    = errors.New("arith: nil buffer")
)

// rowOp writes op(a[i], b[i]) to dst[i]. dst may alias a.
type rowOp func(dst, a, b []float64)

func addRow(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subRow(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulRow(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

func divRow(dst, a, b []float64) {
	for i := range dst {
		if b[i] == 0 {
			dst[i] = 0
			continue
		}
		dst[i] = a[i] / b[i]
	}
}

// Add returns a + b, saturated at 255.
func Add(a, b *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
	return binary(a, b, addRow, opts)
}

// Subtract returns a - b, saturated at 0.
func Subtract(a, b *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
	return binary(a, b, subRow, opts)
}

// Multiply returns a · b, saturated at 255.
func Multiply(a, b *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
	return binary(a, b, mulRow, opts)
}

// Divide returns a / b rounded half to even, with x/0 = 0.
func Divide(a, b *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
	return binary(a, b, divRow, opts)
}

// AddScalar returns src + v.
func AddScalar(src *buffer.Buffer, v float64, opts ...core.Option) (*buffer.Buffer, error) {
	return scalar(src, v, addRow, opts)
}

// SubtractScalar returns src - v.
func SubtractScalar(src *buffer.Buffer, v float64, opts ...core.Option) (*buffer.Buffer, error) {
	return scalar(src, v, subRow, opts)
}

// MultiplyScalar returns src · v.
func MultiplyScalar(src *buffer.Buffer, v float64, opts ...core.Option) (*buffer.Buffer, error) {
	return scalar(src, v, mulRow, opts)
}

// DivideScalar returns src / v, or an all-zero buffer when v is 0.
func DivideScalar(src *buffer.Buffer, v float64, opts ...core.Option) (*buffer.Buffer, error) {
	return scalar(src, v, divRow, opts)
}

func binary(a, b *buffer.Buffer, op rowOp, opts []core.Option) (*buffer.Buffer, error) {
	if a == nil || b == nil {
		return nil, ErrNilBuffer
	}
	if err := buffer.CheckSameShape(a, b); err != nil {
		return nil, err
	}
	return rows(a, op, func(dst []float64, y int) { widen(dst, b.Row(y)) }, opts), nil
}

func scalar(src *buffer.Buffer, v float64, op rowOp, opts []core.Option) (*buffer.Buffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}
	return rows(src, op, func(dst []float64, _ int) {
		for i := range dst {
			dst[i] = v
		}
	}, opts), nil
}

// rows evaluates op row by row: dst = op(src row, operand row).
func rows(src *buffer.Buffer, op rowOp, operand func(dst []float64, y int), opts []core.Option) *buffer.Buffer {
	out := buffer.NewLike(src)
	stride := src.Width() * src.Channels()
	cfg := core.ApplyOptions(opts...)

	cfg.ForRows(src.Height(), func(start, end int) {
		lhs := buffer.Scratch.Get(stride)
		rhs := buffer.Scratch.Get(stride)
		defer buffer.Scratch.Put(lhs)
		defer buffer.Scratch.Put(rhs)

		for y := start; y < end; y++ {
			widen(lhs, src.Row(y))
			operand(rhs, y)
			op(lhs, lhs, rhs)
			core.QuantizeInto(out.Row(y), lhs)
		}
	})
	return out
}

func widen(dst []float64, src []uint8) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// GammaCorrect returns 255·(src/255)^gamma per sample.
func GammaCorrect(src *buffer.Buffer, gamma float64, opts ...core.Option) (*buffer.Buffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}
	if math.IsNaN(gamma) || gamma <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGamma, gamma)
	}

	var lut [256]uint8
	for v := range lut {
		lut[v] = core.Quantize(core.MaxIntensity * math.Pow(float64(v)/core.MaxIntensity, gamma))
	}

	out := buffer.NewLike(src)
	cfg := core.ApplyOptions(opts...)
	cfg.ForRows(src.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			dst := out.Row(y)
			for i, v := range src.Row(y) {
				dst[i] = lut[v]
			}
		}
	})
	return out, nil
}
