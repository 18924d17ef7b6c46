package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT2D correlates fixed-size planes with one kernel in the frequency domain.
// A plan is reusable across planes of the configured size; it is not safe
// for concurrent use.
type FFT2D struct {
	// Kernel in frequency domain
	kernelFFT []complex128

	// Configuration
	planeH, planeW int // padded input plane size
	kernelSize     int
	fftH, fftW     int // power-of-two transform sizes

	// FFT plans
	rowPlan *algofft.Plan[complex128]
	colPlan *algofft.Plan[complex128]

	// Scratch buffers
	work   []complex128
	column []complex128
}

// NewFFT2D prepares a correlator for planeH x planeW planes and a square
// kernel of side size given row-major in weights.
func NewFFT2D(planeH, planeW int, weights []float64, size int) (*FFT2D, error) {
	if planeH <= 0 || planeW <= 0 {
		return nil, ErrEmptyInput
	}
	if size <= 0 || len(weights) != size*size {
		return nil, ErrEmptyKernel
	}
	if size > planeH || size > planeW {
		return nil, fmt.Errorf("%w: kernel larger than plane", ErrLengthMismatch)
	}

	fftH := nextPowerOf2(planeH + size - 1)
	fftW := nextPowerOf2(planeW + size - 1)

	rowPlan, err := algofft.NewPlan64(fftW)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}
	colPlan := rowPlan
	if fftH != fftW {
		colPlan, err = algofft.NewPlan64(fftH)
		if err != nil {
			return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
		}
	}

	f := &FFT2D{
		kernelFFT:  make([]complex128, fftH*fftW),
		planeH:     planeH,
		planeW:     planeW,
		kernelSize: size,
		fftH:       fftH,
		fftW:       fftW,
		rowPlan:    rowPlan,
		colPlan:    colPlan,
		work:       make([]complex128, fftH*fftW),
		column:     make([]complex128, fftH),
	}

	// Correlation is convolution with the kernel rotated by 180 degrees.
	n := size * size
	for i, w := range weights {
		r := n - 1 - i
		f.kernelFFT[(r/size)*fftW+r%size] = complex(w, 0)
	}
	if err := f.transform(f.kernelFFT, true); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return f, nil
}

// CorrelateValid returns the (planeH-size+1) x (planeW-size+1) valid
// correlation of plane with the kernel.
func (f *FFT2D) CorrelateValid(plane []float64) ([]float64, error) {
	if len(plane) != f.planeH*f.planeW {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, f.planeH*f.planeW, len(plane))
	}

	clear(f.work)
	for y := range f.planeH {
		for x := range f.planeW {
			f.work[y*f.fftW+x] = complex(plane[y*f.planeW+x], 0)
		}
	}

	if err := f.transform(f.work, true); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	for i := range f.work {
		f.work[i] *= f.kernelFFT[i]
	}
	if err := f.transform(f.work, false); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	k := f.kernelSize
	oh := f.planeH - k + 1
	ow := f.planeW - k + 1
	out := make([]float64, oh*ow)
	for y := range oh {
		src := f.work[(y+k-1)*f.fftW+(k-1):]
		for x := range ow {
			out[y*ow+x] = real(src[x])
		}
	}
	return out, nil
}

// transform runs a separable 2D FFT in place: every row, then every column.
func (f *FFT2D) transform(data []complex128, forward bool) error {
	run := func(p *algofft.Plan[complex128], s []complex128) error {
		if forward {
			return p.Forward(s, s)
		}
		return p.Inverse(s, s)
	}

	for y := range f.fftH {
		row := data[y*f.fftW : (y+1)*f.fftW]
		if err := run(f.rowPlan, row); err != nil {
			return err
		}
	}

	for x := range f.fftW {
		for y := range f.fftH {
			f.column[y] = data[y*f.fftW+x]
		}
		if err := run(f.colPlan, f.column); err != nil {
			return err
		}
		for y := range f.fftH {
			data[y*f.fftW+x] = f.column[y]
		}
	}
	return nil
}
