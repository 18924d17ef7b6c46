package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolveEntries(t *testing.T) {
	got := resolveEntries([]string{"Gaussian", " sobel-90 ", "nope"})
	if len(got) != 2 || got[0].name != "gaussian" || got[1].name != "sobel-90" {
		t.Fatalf("got %v", got)
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(registry) {
		t.Fatalf("got %d names, want %d", len(lines), len(registry))
	}
	if lines[0] != "gaussian" {
		t.Fatalf("first name %q, want gaussian", lines[0])
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	entries := resolveEntries([]string{"mean", "sharpen", "sobel-0"})
	if err := printAnalysis(&buf, entries, 3, 0, true); err != nil {
		t.Fatalf("printAnalysis: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"mean", "sharpen", "sobel-0",
		"1.0000", // mean and sharpen sum
		"true",   // mean and sobel are rank one
		"false",  // sharpen is not
		"sobel-0:\n -1.0000   0.0000   1.0000",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintAnalysisRejectsEvenSize(t *testing.T) {
	var buf bytes.Buffer
	if err := printAnalysis(&buf, resolveEntries([]string{"mean"}), 4, 0, false); err == nil {
		t.Fatal("even size accepted")
	}
}
