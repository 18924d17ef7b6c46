package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pix/internal/testutil"
	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
	"github.com/cwbudde/algo-pix/pix/window"
)

func TestMedianRemovesSalt(t *testing.T) {
	src := testutil.Impulse(5, 5, 1, 100, 255, 2, 2)
	want := testutil.Constant(5, 5, 1, 100)
	for _, p := range []border.Policy{border.Replicate, border.Reflect, border.Wrap} {
		got, err := Median(src, 1, p)
		if err != nil {
			t.Fatalf("%v: %v", p, err)
		}
		testutil.RequireBuffersEqual(t, got, want)
	}
}

func TestMedianRemovesSaltZeroPolicy(t *testing.T) {
	// Interior windows never touch the border; corner windows hold
	// four samples and five zeros.
	src := testutil.Impulse(5, 5, 1, 100, 255, 2, 2)
	got, err := Median(src, 1, border.Zero)
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if v := got.At(y, x, 0); v != 100 {
				t.Fatalf("interior (%d,%d) = %d, want 100", y, x, v)
			}
		}
	}
	for _, c := range [][2]int{{0, 0}, {0, 4}, {4, 0}, {4, 4}} {
		if v := got.At(c[0], c[1], 0); v != 0 {
			t.Fatalf("corner (%d,%d) = %d, want 0", c[0], c[1], v)
		}
	}
	if row := got.Row(0); row[1] != 100 || row[2] != 100 || row[3] != 100 {
		t.Fatalf("top edge = %v, want 100 between the corners", row)
	}
}

func TestMedianRadiusZeroIsIdentity(t *testing.T) {
	src := testutil.DeterministicNoise(4, 5, 6, 3)
	got, err := Median(src, 0, border.Zero)
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	testutil.RequireBuffersEqual(t, got, src)
}

func TestMedianPerChannel(t *testing.T) {
	// Channel 0 carries salt, channel 1 a flat 7.
	pix := make([]uint8, 3*3*2)
	for i := range 9 {
		pix[2*i+1] = 7
	}
	pix[2*4] = 200
	src := buffer.MustFromPix(3, 3, 2, pix)

	got, err := Median(src, 1, border.Replicate)
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	for y := range 3 {
		for x := range 3 {
			if v := got.At(y, x, 0); v != 0 {
				t.Fatalf("(%d,%d,0) = %d, want 0", y, x, v)
			}
			if v := got.At(y, x, 1); v != 7 {
				t.Fatalf("(%d,%d,1) = %d, want 7", y, x, v)
			}
		}
	}
}

func TestMedianZeroPolicyCorner(t *testing.T) {
	// The corner window holds four 50s and five zero samples.
	src := testutil.Constant(3, 3, 1, 50)
	got, err := Median(src, 1, border.Zero)
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	if v := got.At(0, 0, 0); v != 0 {
		t.Fatalf("corner = %d, want 0", v)
	}
	if v := got.At(0, 1, 0); v != 50 {
		t.Fatalf("edge = %d, want 50", v)
	}
}

func TestMedianParallelMatchesSerial(t *testing.T) {
	src := testutil.DeterministicNoise(6, 25, 13, 3)
	want, err := Median(src, 2, border.Reflect)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	got, err := Median(src, 2, border.Reflect, core.WithWorkers(3))
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	testutil.RequireBuffersEqual(t, got, want)
}

func TestMedianLargeWindow(t *testing.T) {
	// 11x11 exceeds the stack scratch.
	src := testutil.Impulse(12, 12, 1, 30, 250, 6, 6)
	got, err := Median(src, 5, border.Replicate)
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	testutil.RequireBuffersEqual(t, got, testutil.Constant(12, 12, 1, 30))
}

func TestLowerMedian(t *testing.T) {
	tests := []struct {
		in   []int32
		want int32
	}{
		{[]int32{5}, 5},
		{[]int32{3, 1, 2}, 2},
		{[]int32{4, 1, 3, 2}, 2},
		{[]int32{9, 9, 1, 1, 5}, 5},
	}
	for _, tc := range tests {
		if got := lowerMedian(append([]int32(nil), tc.in...)); got != tc.want {
			t.Errorf("lowerMedian(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMedianErrors(t *testing.T) {
	src := testutil.Constant(2, 2, 1, 1)
	if _, err := Median(src, -1, border.Zero); !errors.Is(err, window.ErrInvalidRadius) {
		t.Fatalf("negative radius: got %v", err)
	}
	if _, err := Median(nil, 1, border.Zero); !errors.Is(err, window.ErrNilBuffer) {
		t.Fatalf("nil buffer: got %v", err)
	}
}
