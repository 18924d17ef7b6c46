package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// DirectTo performs direct linear convolution of a and b into dst, which
// must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	clear(dst)
	for i, av := range a {
		if av == 0 {
			continue
		}
		out := dst[i : i+len(b)]
		for j, bv := range b {
			out[j] += av * bv
		}
	}
}

// validPart returns the fully overlapping part of a full convolution of
// lengths lenA >= lenB.
func validPart(full []float64, lenA, lenB int) []float64 {
	return full[lenB-1 : lenA]
}

// Correlator computes valid 1D correlations against a fixed kernel by
// convolving with the reversed kernel. It reuses one scratch buffer and is
// not safe for concurrent use.
type Correlator struct {
	reversed []float64
	full     []float64
}

// NewCorrelator prepares a correlator for kernel k.
func NewCorrelator(k []float64) (*Correlator, error) {
	if len(k) == 0 {
		return nil, ErrEmptyKernel
	}
	rev := make([]float64, len(k))
	for i, v := range k {
		rev[len(k)-1-i] = v
	}
	return &Correlator{reversed: rev}, nil
}

// ValidTo writes dst[i] = Σ_j a[i+j]·k[j]. dst must have length
// len(a) - len(k) + 1.
func (c *Correlator) ValidTo(dst, a []float64) error {
	n := len(c.reversed)
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if n > len(a) || len(dst) != len(a)-n+1 {
		return ErrLengthMismatch
	}

	size := len(a) + n - 1
	if cap(c.full) < size {
		c.full = make([]float64, size)
	}
	full := c.full[:size]
	DirectTo(full, a, c.reversed)
	copy(dst, validPart(full, len(a), n))
	return nil
}

// CorrelateValidTo is a one-shot Correlator.ValidTo.
func CorrelateValidTo(dst, a, k []float64) error {
	c, err := NewCorrelator(k)
	if err != nil {
		return err
	}
	return c.ValidTo(dst, a)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
