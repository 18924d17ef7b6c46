package filter

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/conv"
	"github.com/cwbudde/algo-pix/pix/core"
	"github.com/cwbudde/algo-pix/pix/kernel"
	"github.com/cwbudde/algo-pix/pix/window"
)

// ApplyKernel correlates src with k and returns the rounded, clipped result.
func ApplyKernel(src *buffer.Buffer, k kernel.Kernel, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	field, err := ApplyKernelField(src, k, policy, opts...)
	if err != nil {
		return nil, err
	}
	return field.Quantize(), nil
}

// ApplyKernelField correlates src with k and returns the unclipped result.
func ApplyKernelField(src *buffer.Buffer, k kernel.Kernel, policy border.Policy, opts ...core.Option) (*buffer.Field, error) {
	if src == nil {
		return nil, window.ErrNilBuffer
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	cfg := core.ApplyOptions(opts...)
	switch cfg.Method {
	case core.MethodSeparable:
		if col, row, ok := k.Separate(); ok {
			if glog.V(2) {
				glog.Infof("filter: %dx%d kernel separable on %v", k.Size(), k.Size(), src.Shape())
			}
			return planeField(src, k.Radius(), policy, func(padded []float64, ph, pw int) ([]float64, error) {
				return conv.SeparableValid(padded, ph, pw, col, row)
			})
		}
		if glog.V(2) {
			glog.Infof("filter: %dx%d kernel has rank > 1, using direct", k.Size(), k.Size())
		}
	case core.MethodFFT:
		r := k.Radius()
		plan, err := conv.NewFFT2D(src.Height()+2*r, src.Width()+2*r, k.Weights(), k.Size())
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		if glog.V(2) {
			glog.Infof("filter: %dx%d kernel via fft on %v", k.Size(), k.Size(), src.Shape())
		}
		return planeField(src, r, policy, func(padded []float64, _, _ int) ([]float64, error) {
			out, err := plan.CorrelateValid(padded)
			for i, v := range out {
				out[i] = core.FlushResidue(v)
			}
			return out, err
		})
	}

	return window.ApplyField(src, k.Radius(), policy, weightedSum(k), opts...)
}

// ApplyMatrix is ApplyKernel for a raw square matrix with odd side length.
func ApplyMatrix(src *buffer.Buffer, rows [][]float64, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	k, err := kernel.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return ApplyKernel(src, k, policy, opts...)
}

// weightedSum returns the reducer Σ w[i]·sample[i] per channel.
func weightedSum(k kernel.Kernel) window.Reducer {
	weights := k.Weights()
	return func(nb *window.Neighborhood, dst []float64) {
		values := nb.Values()
		ch := nb.Channels
		for i, w := range weights {
			if w == 0 {
				continue
			}
			samples := values[i*ch : (i+1)*ch]
			for c, v := range samples {
				dst[c] += w * float64(v)
			}
		}
	}
}

// planeField pads each channel plane of src by r and stores the valid
// output of run into a new field.
func planeField(src *buffer.Buffer, r int, policy border.Policy, run func(padded []float64, ph, pw int) ([]float64, error)) (*buffer.Field, error) {
	out, err := buffer.NewField(src.Shape())
	if err != nil {
		return nil, err
	}

	h, w := src.Height(), src.Width()
	plane := buffer.Scratch.Get(h * w)
	defer buffer.Scratch.Put(plane)

	for c := range src.Channels() {
		src.ChannelPlane(plane, c)
		padded := policy.Pad(plane, h, w, r)
		result, err := run(padded, h+2*r, w+2*r)
		if err != nil {
			return nil, fmt.Errorf("filter: channel %d: %w", c, err)
		}
		out.SetChannelPlane(c, result)
	}
	return out, nil
}

// Mean applies the k x k box filter.
func Mean(src *buffer.Buffer, k int, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	kern, err := kernel.Mean(k)
	if err != nil {
		return nil, err
	}
	return ApplyKernel(src, kern, policy, opts...)
}

// Gaussian applies a k x k gaussian blur. sigma <= 0 selects
// kernel.DefaultSigma(k).
func Gaussian(src *buffer.Buffer, k int, sigma float64, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	kern, err := kernel.Gaussian(k, sigma)
	if err != nil {
		return nil, err
	}
	return ApplyKernel(src, kern, policy, opts...)
}

// Sharpen applies kernel.Sharpen(k).
func Sharpen(src *buffer.Buffer, k int, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	kern, err := kernel.Sharpen(k)
	if err != nil {
		return nil, err
	}
	return ApplyKernel(src, kern, policy, opts...)
}
