package stats_test

import (
	"fmt"

	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/stats"
)

func ExampleCalculate() {
	b := buffer.MustFromPix(1, 4, 1, []uint8{10, 20, 30, 40})
	s := stats.Calculate(b)[0]
	fmt.Printf("mean=%.1f min=%d max=%d std=%.3f\n", s.Mean, s.Min, s.Max, s.StdDev)

	// Output:
	// mean=25.0 min=10 max=40 std=11.180
}
