// Package window implements the sliding-window engine that every spatial
// filter is built on.
//
// The engine visits each output pixel, gathers the (2r+1)x(2r+1) neighborhood
// of every channel, sourcing samples outside the image through a
// border.Policy, and hands it to a caller-supplied reduction:
//
//	out, err := window.Apply(src, 1, border.Replicate, func(nb *window.Neighborhood, dst []float64) {
//	    for c := range dst {
//	        dst[c] = float64(nb.At(1, 1, c)) // identity
//	    }
//	})
//
// Apply quantizes the reduction results (round half to even, clip to
// [0, 255]); ApplyField keeps them as float64 for signed intermediates.
//
// Rows can be processed concurrently with core.WithWorkers or core.WithPool.
// Every partition owns its scratch neighborhood and reads only the immutable
// input, so serial and parallel runs produce identical output.
package window
