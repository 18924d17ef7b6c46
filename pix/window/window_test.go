package window

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pix/internal/testutil"
	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

var policies = []border.Policy{border.Zero, border.Replicate, border.Reflect, border.Wrap}

func center(nb *Neighborhood, dst []float64) {
	for c := range dst {
		dst[c] = float64(nb.At(nb.Radius, nb.Radius, c))
	}
}

func sum(nb *Neighborhood, dst []float64) {
	for dy := range nb.Size {
		for dx := range nb.Size {
			for c := range dst {
				dst[c] += float64(nb.At(dy, dx, c))
			}
		}
	}
}

func mean(nb *Neighborhood, dst []float64) {
	sum(nb, dst)
	n := float64(nb.Size * nb.Size)
	for c := range dst {
		dst[c] /= n
	}
}

func TestApplyCenterIsIdentity(t *testing.T) {
	src := testutil.DeterministicNoise(1, 7, 9, 3)
	for _, p := range policies {
		for _, r := range []int{0, 1, 3} {
			got, err := Apply(src, r, p, center)
			if err != nil {
				t.Fatalf("%v r=%d: %v", p, r, err)
			}
			testutil.RequireBuffersEqual(t, got, src)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	src := testutil.Ramp(4, 4, 1)
	orig := src.Clone()
	if _, err := Apply(src, 1, border.Reflect, sum); err != nil {
		t.Fatal(err)
	}
	testutil.RequireBuffersEqual(t, src, orig)
}

func TestApplyFieldBorderSums(t *testing.T) {
	// 2x2 image of ones: with zero fill the corner 3x3 window sees 4 ones,
	// with replicate it sees 9.
	src := testutil.Constant(2, 2, 1, 1)

	zero, err := ApplyField(src, 1, border.Zero, sum)
	if err != nil {
		t.Fatal(err)
	}
	if got := zero.At(0, 0, 0); got != 4 {
		t.Fatalf("zero fill corner sum = %v, want 4", got)
	}

	rep, err := ApplyField(src, 1, border.Replicate, sum)
	if err != nil {
		t.Fatal(err)
	}
	if got := rep.At(1, 1, 0); got != 9 {
		t.Fatalf("replicate corner sum = %v, want 9", got)
	}
}

func TestApplyQuantizes(t *testing.T) {
	src := testutil.Constant(3, 3, 1, 200)
	got, err := Apply(src, 1, border.Replicate, sum)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireBuffersEqual(t, got, testutil.Constant(3, 3, 1, 255))
}

func TestNeighborhoodLayout(t *testing.T) {
	src := testutil.Ramp(3, 3, 1)
	var seen []int32
	_, err := ApplyField(src, 1, border.Zero, func(nb *Neighborhood, dst []float64) {
		if nb.Y == 1 && nb.X == 1 {
			seen = nb.Channel(0, nil)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range seen {
		if int(v) != i {
			t.Fatalf("center window = %v, want 0..8", seen)
		}
	}
	if len(seen) != 9 {
		t.Fatalf("len = %d, want 9", len(seen))
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	src := testutil.DeterministicNoise(42, 31, 17, 3)
	serial, err := Apply(src, 2, border.Reflect, mean)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Apply(src, 2, border.Reflect, mean, core.WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireBuffersEqual(t, parallel, serial)
}

func TestApplyErrors(t *testing.T) {
	src := testutil.Constant(2, 2, 1, 0)

	if _, err := Apply(src, -1, border.Zero, center); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("negative radius: %v, want ErrInvalidRadius", err)
	}
	if _, err := Apply(nil, 1, border.Zero, center); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil buffer: %v, want ErrNilBuffer", err)
	}
	if _, err := Apply(src, 1, border.Zero, nil); !errors.Is(err, ErrNilReducer) {
		t.Errorf("nil reducer: %v, want ErrNilReducer", err)
	}
	if _, err := Apply(src, 1, border.Policy(17), center); !errors.Is(err, border.ErrUnknownPolicy) {
		t.Errorf("bad policy: %v, want ErrUnknownPolicy", err)
	}
}

func TestShapePreserved(t *testing.T) {
	src, _ := buffer.New(3, 5, 4)
	got, err := Apply(src, 2, border.Wrap, center)
	if err != nil {
		t.Fatal(err)
	}
	if got.Shape() != src.Shape() {
		t.Fatalf("shape = %v, want %v", got.Shape(), src.Shape())
	}
}
