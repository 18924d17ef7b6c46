package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// separableTol is the largest second-to-first singular value ratio treated as rank one.
const separableTol = 1e-10

// Separate factors k into column and row vectors with k[i][j] = col[i]*row[j].
// ok is false when k has rank greater than one.
func (k Kernel) Separate() (col, row []float64, ok bool) {
	if k.Validate() != nil {
		return nil, nil, false
	}

	n := k.size
	a := mat.NewDense(n, n, k.Weights())

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, nil, false
	}

	values := svd.Values(nil)
	if values[0] == 0 {
		return make([]float64, n), make([]float64, n), true
	}
	if len(values) > 1 && values[1] > separableTol*values[0] {
		return nil, nil, false
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	scale := math.Sqrt(values[0])
	col = make([]float64, n)
	row = make([]float64, n)
	for i := range n {
		col[i] = u.At(i, 0) * scale
		row[i] = v.At(i, 0) * scale
	}
	return col, row, true
}

// IsSeparable reports whether k is an outer product of two vectors.
func (k Kernel) IsSeparable() bool {
	_, _, ok := k.Separate()
	return ok
}
