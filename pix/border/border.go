// Package border maps out-of-range sample coordinates to in-range ones for
// windowed filters.
package border

import (
	"errors"
	"fmt"

	hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"
)

// ErrUnknownPolicy is returned for Policy values outside the defined set.
var ErrUnknownPolicy = errors.New("border: unknown policy")

// Policy selects how samples outside the image are sourced.
type Policy int

const (
	// Zero treats every outside sample as intensity 0.
	Zero Policy = iota

	// Replicate clamps to the nearest edge pixel: aaa|abc|ccc.
	Replicate

	// Reflect mirrors across the edge, repeating the edge pixel: cba|abc|cba.
	Reflect

	// Wrap tiles the image periodically: abc|abc|abc.
	Wrap
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Zero:
		return "zero"
	case Replicate:
		return "replicate"
	case Reflect:
		return "reflect"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Validate returns ErrUnknownPolicy for undefined values.
func (p Policy) Validate() error {
	if p < Zero || p > Wrap {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return nil
}

// Parse returns the policy with the given name.
func Parse(name string) (Policy, error) {
	for p := Zero; p <= Wrap; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Index maps coordinate i on an axis of length n. It returns ok=false when the
// sample must be filled with zero instead of read.
func (p Policy) Index(i, n int) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}

	switch p {
	case Replicate:
		return hwyimage.Clamp(i, n), true
	case Reflect:
		return hwyimage.Mirror(i, n), true
	case Wrap:
		return hwyimage.Wrap(i, n), true
	default:
		return 0, false
	}
}

// Pad returns a (h+2r) x (w+2r) copy of the row-major plane with the border
// filled according to the policy.
func (p Policy) Pad(plane []float64, h, w, r int) []float64 {
	pw := w + 2*r
	out := make([]float64, (h+2*r)*pw)
	for py := range h + 2*r {
		sy, oky := p.Index(py-r, h)
		if !oky {
			continue
		}
		for px := range pw {
			sx, okx := p.Index(px-r, w)
			if !okx {
				continue
			}
			out[py*pw+px] = plane[sy*w+sx]
		}
	}
	return out
}
