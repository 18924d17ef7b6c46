package arith_test

import (
	"fmt"

	"github.com/cwbudde/algo-pix/pix/arith"
	"github.com/cwbudde/algo-pix/pix/buffer"
)

func ExampleAdd() {
	a := buffer.MustFromPix(1, 3, 1, []uint8{100, 200, 250})
	b := buffer.MustFromPix(1, 3, 1, []uint8{100, 100, 10})

	sum, err := arith.Add(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum.Pix())
	// Output: [200 255 255]
}

func ExampleGammaCorrect() {
	src := buffer.MustFromPix(1, 4, 1, []uint8{0, 64, 128, 255})

	out, err := arith.GammaCorrect(src, 0.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Pix())
	// Output: [0 128 181 255]
}
