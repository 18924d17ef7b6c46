package core

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"github.com/golang/glog"
)

// Method selects how linear filters evaluate a kernel.
type Method int

const (
	// MethodDirect evaluates every window with the sliding-window engine.
	// Results are exact for every kernel.
	MethodDirect Method = iota

	// MethodSeparable runs one horizontal and one vertical 1D pass when the
	// kernel factors into an outer product. Non-separable kernels fall back
	// to MethodDirect.
	MethodSeparable

	// MethodFFT convolves each channel plane in the frequency domain.
	MethodFFT
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodSeparable:
		return "separable"
	case MethodFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = errors.New("core: unknown method")

// ParseMethod returns the method with the given name.
func ParseMethod(name string) (Method, error) {
	for m := MethodDirect; m <= MethodFFT; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return MethodDirect, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Config defines common execution settings shared by the pixel operations.
type Config struct {
	// Workers is the number of row partitions processed concurrently.
	// Values below 2 run serially.
	Workers int

	// Pool, when set, is used instead of spawning a temporary pool.
	// The library never closes a caller-supplied pool.
	Pool *workerpool.Pool

	// Method selects the linear filtering back end.
	Method Method
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns serial execution with direct convolution.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Method:  MethodDirect,
	}
}

// WithWorkers sets the number of concurrent row partitions.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithPool runs row partitions on an existing worker pool.
func WithPool(pool *workerpool.Pool) Option {
	return func(cfg *Config) {
		cfg.Pool = pool
	}
}

// WithMethod sets the linear filtering back end.
func WithMethod(method Method) Option {
	return func(cfg *Config) {
		if method >= MethodDirect && method <= MethodFFT {
			cfg.Method = method
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ForRows calls fn over disjoint row ranges covering [0, rows).
// Partitions run concurrently when the config allows it; fn must only
// write to the rows it was handed.
func (cfg Config) ForRows(rows int, fn func(start, end int)) {
	if rows <= 0 {
		return
	}

	switch {
	case cfg.Pool != nil:
		if glog.V(2) {
			glog.Infof("core: %d rows on shared pool (%d workers)", rows, cfg.Pool.NumWorkers())
		}
		cfg.Pool.ParallelFor(rows, fn)
	case cfg.Workers > 1 && rows > 1:
		if glog.V(2) {
			glog.Infof("core: %d rows on %d workers", rows, cfg.Workers)
		}
		pool := workerpool.New(cfg.Workers)
		defer pool.Close()
		pool.ParallelFor(rows, fn)
	default:
		fn(0, rows)
	}
}
