package conv

import "fmt"

// SeparableValid correlates a padded ph x pw row-major plane with the
// outer-product kernel col ⊗ row and returns the valid
// (ph-len(col)+1) x (pw-len(row)+1) region.
func SeparableValid(plane []float64, ph, pw int, col, row []float64) ([]float64, error) {
	if len(plane) == 0 {
		return nil, ErrEmptyInput
	}
	if len(col) == 0 || len(row) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(plane) != ph*pw {
		return nil, fmt.Errorf("%w: %d values for %dx%d plane", ErrLengthMismatch, len(plane), ph, pw)
	}
	oh := ph - len(col) + 1
	ow := pw - len(row) + 1
	if oh <= 0 || ow <= 0 {
		return nil, fmt.Errorf("%w: kernel larger than plane", ErrLengthMismatch)
	}

	horizontal, err := NewCorrelator(row)
	if err != nil {
		return nil, err
	}
	vertical, err := NewCorrelator(col)
	if err != nil {
		return nil, err
	}

	// Horizontal pass over every padded row.
	tmp := make([]float64, ph*ow)
	for y := range ph {
		if err := horizontal.ValidTo(tmp[y*ow:(y+1)*ow], plane[y*pw:(y+1)*pw]); err != nil {
			return nil, err
		}
	}

	// Vertical pass column by column.
	out := make([]float64, oh*ow)
	column := make([]float64, ph)
	result := make([]float64, oh)
	for x := range ow {
		for y := range ph {
			column[y] = tmp[y*ow+x]
		}
		if err := vertical.ValidTo(result, column); err != nil {
			return nil, err
		}
		for y, v := range result {
			out[y*ow+x] = v
		}
	}

	return out, nil
}
