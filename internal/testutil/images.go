package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-pix/pix/buffer"
)

// Ramp returns a buffer whose value at (y, x, c) is (y*w+x)*ch+c, wrapped at 256.
// A 5x5x1 ramp holds 0..24.
func Ramp(h, w, ch int) *buffer.Buffer {
	b := mustNew(h, w, ch)
	for i := range b.Pix() {
		b.Pix()[i] = uint8(i)
	}
	return b
}

// Constant returns a buffer with every value set to v.
func Constant(h, w, ch int, v uint8) *buffer.Buffer {
	b := mustNew(h, w, ch)
	for i := range b.Pix() {
		b.Pix()[i] = v
	}
	return b
}

// Impulse returns a constant buffer with one pixel (all channels) set to peak.
func Impulse(h, w, ch int, background, peak uint8, y, x int) *buffer.Buffer {
	b := Constant(h, w, ch, background)
	for c := range ch {
		b.Pix()[b.Index(y, x, c)] = peak
	}
	return b
}

// Checkerboard returns alternating 0/255 squares of the given size.
func Checkerboard(h, w, ch, square int) *buffer.Buffer {
	b := mustNew(h, w, ch)
	for y := range h {
		for x := range w {
			v := uint8(0)
			if ((x/square)+(y/square))%2 == 0 {
				v = 255
			}
			for c := range ch {
				b.Pix()[b.Index(y, x, c)] = v
			}
		}
	}
	return b
}

// DeterministicNoise returns uniformly distributed intensities with a fixed seed.
func DeterministicNoise(seed int64, h, w, ch int) *buffer.Buffer {
	b := mustNew(h, w, ch)
	rng := rand.New(rand.NewSource(seed))
	for i := range b.Pix() {
		b.Pix()[i] = uint8(rng.Intn(256))
	}
	return b
}

func mustNew(h, w, ch int) *buffer.Buffer {
	b, err := buffer.New(h, w, ch)
	if err != nil {
		panic(err)
	}
	return b
}
