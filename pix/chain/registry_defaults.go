package chain

import (
	"slices"

	"github.com/cwbudde/algo-pix/pix/arith"
	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
	"github.com/cwbudde/algo-pix/pix/edge"
	"github.com/cwbudde/algo-pix/pix/filter"
	"github.com/cwbudde/algo-pix/pix/gray"
)

type scalarOp func(*buffer.Buffer, float64, ...core.Option) (*buffer.Buffer, error)

func scalarStage(op scalarOp, def float64) Factory {
	return func(p Params) (Stage, error) {
		v := p.GetNum("value", def)
		return StageFunc(func(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
			return op(src, v, opts...)
		}), nil
	}
}

// linearStage wraps a kernel filter reading "border" and "method" once at
// build time.
func linearStage(run func(src *buffer.Buffer, policy border.Policy, p Params, opts []core.Option) (*buffer.Buffer, error)) Factory {
	return func(p Params) (Stage, error) {
		policy, err := p.policy()
		if err != nil {
			return nil, err
		}
		method, err := p.method()
		if err != nil {
			return nil, err
		}
		return StageFunc(func(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
			return run(src, policy, p, append(slices.Clip(opts), method))
		}), nil
	}
}

// DefaultRegistry returns a Registry pre-populated with all built-in stages.
//
//nolint:funlen
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("add", scalarStage(arith.AddScalar, 0))
	r.MustRegister("subtract", scalarStage(arith.SubtractScalar, 0))
	r.MustRegister("multiply", scalarStage(arith.MultiplyScalar, 1))
	r.MustRegister("divide", scalarStage(arith.DivideScalar, 1))

	r.MustRegister("gamma", func(p Params) (Stage, error) {
		g := p.GetNum("gamma", 1)
		return StageFunc(func(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
			return arith.GammaCorrect(src, g, opts...)
		}), nil
	})
	r.MustRegister("gray", func(p Params) (Stage, error) {
		mode, err := gray.ParseMode(p.GetStr("mode", gray.Standard.String()))
		if err != nil {
			return nil, err
		}
		return StageFunc(func(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
			return gray.ToGrayscale(src, mode, opts...)
		}), nil
	})
	r.MustRegister("rgb", func(Params) (Stage, error) {
		return StageFunc(func(src *buffer.Buffer, _ ...core.Option) (*buffer.Buffer, error) {
			return gray.ToRGB(src)
		}), nil
	})

	r.MustRegister("mean", linearStage(func(src *buffer.Buffer, policy border.Policy, p Params, opts []core.Option) (*buffer.Buffer, error) {
		return filter.Mean(src, p.GetInt("size", 3), policy, opts...)
	}))
	r.MustRegister("gaussian", linearStage(func(src *buffer.Buffer, policy border.Policy, p Params, opts []core.Option) (*buffer.Buffer, error) {
		return filter.Gaussian(src, p.GetInt("size", 3), p.GetNum("sigma", 0), policy, opts...)
	}))
	r.MustRegister("sharpen", linearStage(func(src *buffer.Buffer, policy border.Policy, p Params, opts []core.Option) (*buffer.Buffer, error) {
		return filter.Sharpen(src, p.GetInt("size", 3), policy, opts...)
	}))
	r.MustRegister("sobel", func(p Params) (Stage, error) {
		angles, err := p.angles(edge.DefaultAngles)
		if err != nil {
			return nil, err
		}
		return linearStage(func(src *buffer.Buffer, policy border.Policy, _ Params, opts []core.Option) (*buffer.Buffer, error) {
			return edge.Detect(src, angles, policy, opts...)
		})(p)
	})

	r.MustRegister("median", func(p Params) (Stage, error) {
		policy, err := p.policy()
		if err != nil {
			return nil, err
		}
		radius := p.GetInt("radius", 1)
		return StageFunc(func(src *buffer.Buffer, opts ...core.Option) (*buffer.Buffer, error) {
			return filter.Median(src, radius, policy, opts...)
		}), nil
	})

	return r
}
