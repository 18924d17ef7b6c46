// Package arith provides saturating elementwise arithmetic on pixel buffers.
//
// Every operation widens samples to float64, computes the exact result, then
// rounds half to even and clips into [0, 255]:
//
//	Add(200, 200)      = 255
//	Subtract(10, 20)   = 0
//	Divide(7, 2)       = 4 (3.5 rounds to even)
//	Divide(x, 0)       = 0
//
// Division by zero yields zero so that every operation is total.
//
// GammaCorrect maps v to 255·(v/255)^gamma through a 256-entry lookup table.
package arith
