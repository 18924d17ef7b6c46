package border

import (
	"errors"
	"testing"
)

func TestIndex(t *testing.T) {
	const n = 4
	tests := []struct {
		policy Policy
		in     []int
		want   []int
		ok     []bool
	}{
		{
			policy: Zero,
			in:     []int{-2, -1, 0, 3, 4, 5},
			want:   []int{0, 0, 0, 3, 0, 0},
			ok:     []bool{false, false, true, true, false, false},
		},
		{
			policy: Replicate,
			in:     []int{-2, -1, 0, 3, 4, 5},
			want:   []int{0, 0, 0, 3, 3, 3},
			ok:     []bool{true, true, true, true, true, true},
		},
		{
			policy: Reflect,
			in:     []int{-2, -1, 0, 3, 4, 5},
			want:   []int{1, 0, 0, 3, 3, 2},
			ok:     []bool{true, true, true, true, true, true},
		},
		{
			policy: Wrap,
			in:     []int{-2, -1, 0, 3, 4, 5},
			want:   []int{2, 3, 0, 3, 0, 1},
			ok:     []bool{true, true, true, true, true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			for i, in := range tt.in {
				got, ok := tt.policy.Index(in, n)
				if ok != tt.ok[i] || (ok && got != tt.want[i]) {
					t.Errorf("Index(%d) = (%d, %v), want (%d, %v)", in, got, ok, tt.want[i], tt.ok[i])
				}
			}
		})
	}
}

func TestIndexSinglePixelAxis(t *testing.T) {
	for _, p := range []Policy{Replicate, Reflect, Wrap} {
		for _, i := range []int{-3, -1, 1, 2} {
			if got, ok := p.Index(i, 1); !ok || got != 0 {
				t.Errorf("%v.Index(%d, 1) = (%d, %v), want (0, true)", p, i, got, ok)
			}
		}
	}
}

func TestValidateAndParse(t *testing.T) {
	if err := Policy(9).Validate(); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("Validate() = %v, want ErrUnknownPolicy", err)
	}
	for p := Zero; p <= Wrap; p++ {
		got, err := Parse(p.String())
		if err != nil || got != p {
			t.Fatalf("Parse(%q) = (%v, %v)", p.String(), got, err)
		}
	}
	if _, err := Parse("mirror"); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("Parse(mirror) error = %v", err)
	}
}

func TestPad(t *testing.T) {
	plane := []float64{
		1, 2,
		3, 4,
	}

	got := Replicate.Pad(plane, 2, 2, 1)
	want := []float64{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Replicate.Pad()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	zero := Zero.Pad(plane, 2, 2, 1)
	if zero[0] != 0 || zero[5] != 1 || zero[15] != 0 {
		t.Fatalf("Zero.Pad() = %v", zero)
	}
}
