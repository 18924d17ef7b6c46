package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-pix/pix/buffer"
)

// RequireBuffersEqual fails t if got and want differ in shape or any value.
func RequireBuffersEqual(t *testing.T, got, want *buffer.Buffer) {
	t.Helper()
	RequireBuffersWithin(t, got, want, 0)
}

// RequireBuffersWithin fails t if got and want differ in shape or if any
// value pair differs by more than tol intensity levels.
func RequireBuffersWithin(t *testing.T, got, want *buffer.Buffer, tol int) {
	t.Helper()
	if got == nil || want == nil {
		t.Fatalf("nil buffer: got %v, want %v", got, want)
	}
	if got.Shape() != want.Shape() {
		t.Fatalf("shape mismatch: got %v, want %v", got.Shape(), want.Shape())
	}
	ch := got.Channels()
	for i, g := range got.Pix() {
		w := want.Pix()[i]
		if d := int(g) - int(w); d > tol || -d > tol {
			px := i / ch
			t.Fatalf("(y=%d, x=%d, c=%d): got %d, want %d (tol %d)",
				px/got.Width(), px%got.Width(), i%ch, g, w, tol)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute intensity difference between two
// buffers. Returns an error if the shapes differ.
func MaxAbsDiff(a, b *buffer.Buffer) (int, error) {
	if a.Shape() != b.Shape() {
		return 0, fmt.Errorf("shape mismatch: %v vs %v", a.Shape(), b.Shape())
	}
	maxDiff := 0
	for i, v := range a.Pix() {
		d := int(v) - int(b.Pix()[i])
		if d < 0 {
			d = -d
		}
		maxDiff = max(maxDiff, d)
	}
	return maxDiff, nil
}
