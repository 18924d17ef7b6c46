package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithWorkers(4), WithMethod(MethodFFT))
	if cfg.Workers != 4 {
		t.Fatalf("workers = %d, want 4", cfg.Workers)
	}
	if cfg.Method != MethodFFT {
		t.Fatalf("method = %v, want fft", cfg.Method)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(WithWorkers(0), WithMethod(Method(42)), nil)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestMethodString(t *testing.T) {
	tests := map[Method]string{
		MethodDirect:    "direct",
		MethodSeparable: "separable",
		MethodFFT:       "fft",
		Method(-1):      "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Method(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodDirect, MethodSeparable, MethodFFT} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("winograd"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("unknown: got %v", err)
	}
}

func TestForRowsCoversEveryRowOnce(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	configs := map[string]Config{
		"serial":  DefaultConfig(),
		"workers": ApplyOptions(WithWorkers(4)),
		"pool":    ApplyOptions(WithPool(pool)),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			const rows = 37
			var mu sync.Mutex
			seen := make([]int, rows)

			cfg.ForRows(rows, func(start, end int) {
				mu.Lock()
				defer mu.Unlock()
				for y := start; y < end; y++ {
					seen[y]++
				}
			})

			for y, n := range seen {
				if n != 1 {
					t.Fatalf("row %d visited %d times", y, n)
				}
			}
		})
	}
}

func TestForRowsEmpty(t *testing.T) {
	called := false
	DefaultConfig().ForRows(0, func(int, int) { called = true })
	if called {
		t.Fatal("fn called for zero rows")
	}
}
