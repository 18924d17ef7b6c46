// Package edge detects intensity gradients by combining Sobel responses.
//
// Each requested orientation is filtered separately into a signed float
// field; the fields are then combined per pixel and channel as
// sqrt(Σ r²), rounded half to even and clipped to [0, 255].
package edge

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
	"github.com/cwbudde/algo-pix/pix/filter"
	"github.com/cwbudde/algo-pix/pix/kernel"
)

// ErrEmptyAngleSet is returned when no orientation is requested.
var ErrEmptyAngleSet = errors.New("edge: empty angle set")

// DefaultAngles are the horizontal and vertical orientations.
var DefaultAngles = []kernel.Angle{kernel.Angle0, kernel.Angle90}

// Detect returns the gradient magnitude of src over the given orientations.
// Angles must be a non-empty subset of kernel.BaseAngles; duplicates count once.
func Detect(src *buffer.Buffer, angles []kernel.Angle, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	field, err := DetectField(src, angles, policy, opts...)
	if err != nil {
		return nil, err
	}
	return field.Quantize(), nil
}

// Sobel is Detect with DefaultAngles.
func Sobel(src *buffer.Buffer, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	return Detect(src, DefaultAngles, policy, opts...)
}

// DetectField returns the unquantized gradient magnitude.
func DetectField(src *buffer.Buffer, angles []kernel.Angle, policy border.Policy, opts ...core.Option) (*buffer.Field, error) {
	responses, err := Responses(src, angles, policy, opts...)
	if err != nil {
		return nil, err
	}

	out, err := buffer.NewField(src.Shape())
	if err != nil {
		return nil, err
	}
	acc := out.Data()
	zeros := make([]float64, len(acc))

	vecmath.Magnitude(acc, responses[0].Data(), zeros)
	for _, r := range responses[1:] {
		vecmath.Magnitude(acc, acc, r.Data())
	}
	return out, nil
}

// Responses returns one signed response field per distinct orientation, in
// the order the orientations first appear.
func Responses(src *buffer.Buffer, angles []kernel.Angle, policy border.Policy, opts ...core.Option) ([]*buffer.Field, error) {
	unique, err := distinct(angles)
	if err != nil {
		return nil, err
	}

	fields := make([]*buffer.Field, 0, len(unique))
	for _, a := range unique {
		k, err := kernel.Sobel(a)
		if err != nil {
			return nil, err
		}
		f, err := filter.ApplyKernelField(src, k, policy, opts...)
		if err != nil {
			return nil, fmt.Errorf("edge: angle %v: %w", a, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func distinct(angles []kernel.Angle) ([]kernel.Angle, error) {
	if len(angles) == 0 {
		return nil, ErrEmptyAngleSet
	}
	unique := make([]kernel.Angle, 0, len(angles))
	for _, a := range angles {
		if !a.IsBase() {
			return nil, fmt.Errorf("%w: %d", kernel.ErrInvalidAngle, int(a))
		}
		if !slices.Contains(unique, a) {
			unique = append(unique, a)
		}
	}
	return unique, nil
}
