package kernel

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pix/pix/core"
)

// Errors returned by kernel constructors.
var (
	ErrSizeMismatch = errors.New("kernel: side length must be odd and positive")
	ErrNotSquare    = errors.New("kernel: matrix is not square")
	ErrInvalidAngle = errors.New("kernel: unsupported sobel angle")
)

// Kernel is an immutable square weight matrix with odd side length.
type Kernel struct {
	size    int
	weights []float64
}

func checkSize(size int) error {
	if size <= 0 || size%2 == 0 {
		return fmt.Errorf("%w: %d", ErrSizeMismatch, size)
	}
	return nil
}

// New returns a kernel of the given side length holding a copy of weights
// in row-major order.
func New(size int, weights []float64) (Kernel, error) {
	if err := checkSize(size); err != nil {
		return Kernel{}, err
	}
	if len(weights) != size*size {
		return Kernel{}, fmt.Errorf("%w: %d weights for side %d", ErrNotSquare, len(weights), size)
	}
	return Kernel{size: size, weights: append([]float64(nil), weights...)}, nil
}

// FromRows returns a kernel from a square matrix.
func FromRows(rows [][]float64) (Kernel, error) {
	size := len(rows)
	if err := checkSize(size); err != nil {
		return Kernel{}, err
	}
	weights := make([]float64, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return Kernel{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), size)
		}
		weights = append(weights, row...)
	}
	return Kernel{size: size, weights: weights}, nil
}

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows [][]float64) Kernel {
	k, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate returns ErrSizeMismatch for the zero Kernel.
func (k Kernel) Validate() error {
	if err := checkSize(k.size); err != nil {
		return err
	}
	if len(k.weights) != k.size*k.size {
		return ErrNotSquare
	}
	return nil
}

// Size returns the side length 2r+1.
func (k Kernel) Size() int { return k.size }

// Radius returns r.
func (k Kernel) Radius() int { return k.size / 2 }

// At returns the weight at row dy, column dx.
func (k Kernel) At(dy, dx int) float64 {
	return k.weights[dy*k.size+dx]
}

// Weights returns a row-major copy of the weights.
func (k Kernel) Weights() []float64 {
	return append([]float64(nil), k.weights...)
}

// Rows returns a copy of the weights as a matrix.
func (k Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.size)
	for i := range rows {
		rows[i] = append([]float64(nil), k.weights[i*k.size:(i+1)*k.size]...)
	}
	return rows
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float64 {
	s := 0.0
	for _, w := range k.weights {
		s += w
	}
	return s
}

// Scale returns k with every weight multiplied by f.
func (k Kernel) Scale(f float64) Kernel {
	out := Kernel{size: k.size, weights: make([]float64, len(k.weights))}
	for i, w := range k.weights {
		out.weights[i] = w * f
	}
	return out
}

// Negate returns k with every weight negated. Zero weights stay +0.
func (k Kernel) Negate() Kernel {
	out := Kernel{size: k.size, weights: make([]float64, len(k.weights))}
	for i, w := range k.weights {
		out.weights[i] = 0 - w
	}
	return out
}

// Sub returns k - other elementwise.
func (k Kernel) Sub(other Kernel) (Kernel, error) {
	if k.size != other.size {
		return Kernel{}, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, k.size, other.size)
	}
	out := Kernel{size: k.size, weights: make([]float64, len(k.weights))}
	for i, w := range k.weights {
		out.weights[i] = w - other.weights[i]
	}
	return out, nil
}

// Rotate180 returns k rotated by 180 degrees about its center.
func (k Kernel) Rotate180() Kernel {
	n := len(k.weights)
	out := Kernel{size: k.size, weights: make([]float64, n)}
	for i, w := range k.weights {
		out.weights[n-1-i] = w
	}
	return out
}

// Equal reports whether k and other have the same size and weights within
// eps (see core.NearlyEqual; eps <= 0 selects 1e-12).
func (k Kernel) Equal(other Kernel, eps float64) bool {
	if k.size != other.size || len(k.weights) != len(other.weights) {
		return false
	}
	for i, w := range k.weights {
		if !core.NearlyEqual(w, other.weights[i], eps) {
			return false
		}
	}
	return true
}
