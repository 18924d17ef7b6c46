package conv

import "testing"

func BenchmarkSeparableValid(b *testing.B) {
	const ph, pw = 264, 264
	plane := testPlane(ph, pw)
	taps := make([]float64, 9)
	for i := range taps {
		taps[i] = 1.0 / 9
	}
	for b.Loop() {
		if _, err := SeparableValid(plane, ph, pw, taps, taps); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFFT2D(b *testing.B) {
	const ph, pw, size = 264, 264, 9
	plane := testPlane(ph, pw)
	k := make([]float64, size*size)
	for i := range k {
		k[i] = 1.0 / float64(len(k))
	}
	f, err := NewFFT2D(ph, pw, k, size)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		if _, err := f.CorrelateValid(plane); err != nil {
			b.Fatal(err)
		}
	}
}
