package kernel

import (
	"fmt"
	"math"
)

// Identity returns the k x k kernel with 1 at the center.
func Identity(k int) (Kernel, error) {
	if err := checkSize(k); err != nil {
		return Kernel{}, err
	}
	w := make([]float64, k*k)
	w[(k*k)/2] = 1
	return Kernel{size: k, weights: w}, nil
}

// Mean returns the k x k box kernel with uniform weights 1/k².
func Mean(k int) (Kernel, error) {
	if err := checkSize(k); err != nil {
		return Kernel{}, err
	}
	w := make([]float64, k*k)
	v := 1 / float64(k*k)
	for i := range w {
		w[i] = v
	}
	return Kernel{size: k, weights: w}, nil
}

// DefaultSigma returns the sigma Gaussian uses when none is given: max(k/6, 0.5).
func DefaultSigma(k int) float64 {
	return math.Max(float64(k)/6, 0.5)
}

// Gaussian returns a k x k kernel with weights proportional to
// exp(-(i²+j²)/(2σ²)) at integer offsets (i, j) from the center,
// normalized to sum to 1. sigma <= 0 selects DefaultSigma(k).
func Gaussian(k int, sigma float64) (Kernel, error) {
	if err := checkSize(k); err != nil {
		return Kernel{}, err
	}
	if sigma <= 0 || math.IsNaN(sigma) {
		sigma = DefaultSigma(k)
	}

	r := k / 2
	w := make([]float64, k*k)
	twoSigma2 := 2 * sigma * sigma
	total := 0.0
	for i := -r; i <= r; i++ {
		for j := -r; j <= r; j++ {
			v := math.Exp(-float64(i*i+j*j) / twoSigma2)
			w[(i+r)*k+(j+r)] = v
			total += v
		}
	}
	for i := range w {
		w[i] /= total
	}
	return Kernel{size: k, weights: w}, nil
}

var sharpen3 = []float64{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// Sharpen returns a center-emphasizing kernel. For k == 3 it is the classic
// [[0,-1,0],[-1,5,-1],[0,-1,0]]; larger sizes use 2·Identity(k) - Mean(k).
// Both sum to 1, so flat regions are preserved.
func Sharpen(k int) (Kernel, error) {
	if err := checkSize(k); err != nil {
		return Kernel{}, err
	}
	if k == 3 {
		return New(3, sharpen3)
	}
	id, _ := Identity(k)
	mean, _ := Mean(k)
	return id.Scale(2).Sub(mean)
}

// Angle is a Sobel gradient orientation in degrees.
type Angle int

// Supported orientations. The last four are negations of the first four.
const (
	Angle0   Angle = 0
	Angle45  Angle = 45
	Angle90  Angle = 90
	Angle135 Angle = 135
	Angle180 Angle = 180
	Angle225 Angle = 225
	Angle270 Angle = 270
	Angle315 Angle = 315
)

// BaseAngles lists the orientations with stored Sobel tables.
var BaseAngles = []Angle{Angle0, Angle45, Angle90, Angle135}

// IsBase reports whether a has a stored Sobel table.
func (a Angle) IsBase() bool {
	_, ok := sobelTables[a]
	return ok
}

func (a Angle) String() string {
	return fmt.Sprintf("%d°", int(a))
}

var sobelTables = map[Angle][]float64{
	Angle0: {
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	},
	Angle45: {
		0, 1, 2,
		-1, 0, 1,
		-2, -1, 0,
	},
	Angle90: {
		1, 2, 1,
		0, 0, 0,
		-1, -2, -1,
	},
	Angle135: {
		2, 1, 0,
		1, 0, -1,
		0, -1, -2,
	},
}

// Sobel returns the 3x3 Sobel kernel for the given orientation. Angles of
// 180° and above are obtained by negating the kernel 180° away.
func Sobel(a Angle) (Kernel, error) {
	if w, ok := sobelTables[a]; ok {
		return New(3, w)
	}
	if w, ok := sobelTables[a-180]; ok && a >= Angle180 {
		base, err := New(3, w)
		if err != nil {
			return Kernel{}, err
		}
		return base.Negate(), nil
	}
	return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidAngle, int(a))
}
