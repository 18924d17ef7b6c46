package filter

import (
	"github.com/ajroetker/go-highway/hwy/contrib/sort"

	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
	"github.com/cwbudde/algo-pix/pix/window"
)

// Median replaces each sample by the median of the (2r+1)² samples of the
// same channel around it.
func Median(src *buffer.Buffer, radius int, policy border.Policy, opts ...core.Option) (*buffer.Buffer, error) {
	return window.Apply(src, radius, policy, medianReducer(), opts...)
}

// medianReducer selects per channel. Partitions may call it concurrently,
// so scratch is local to each call.
func medianReducer() window.Reducer {
	return func(nb *window.Neighborhood, dst []float64) {
		var stack [81]int32 // up to 9x9 without allocating
		scratch := stack[:0]
		for c := range dst {
			scratch = nb.Channel(c, scratch)
			dst[c] = float64(lowerMedian(scratch))
		}
	}
}

// lowerMedian returns the element of rank (n-1)/2. values is reordered.
func lowerMedian(values []int32) int32 {
	k := (len(values) - 1) / 2
	sort.NthElement(values, k)
	return values[k]
}
