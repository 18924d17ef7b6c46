// Package stats summarizes pixel buffers and compares them.
package stats

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

// ErrNilBuffer is returned for nil inputs.
var ErrNilBuffer = errors.New("stats: nil buffer")

// ChannelStats holds the statistics of one channel.
type ChannelStats struct {
	Count    int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      uint8
	Max      uint8
	Range    uint8 // max - min
}

// Calculate returns one ChannelStats per channel of b, computed in a single
// pass with Welford's online update.
func Calculate(b *buffer.Buffer) []ChannelStats {
	if b == nil {
		return nil
	}

	ch := b.Channels()
	out := make([]ChannelStats, ch)
	m2 := make([]float64, ch)
	for c := range out {
		out[c].Min = core.MaxIntensity
	}

	for i, v := range b.Pix() {
		s := &out[i%ch]
		x := float64(v)

		s.Count++
		delta := x - s.Mean
		s.Mean += delta / float64(s.Count)
		m2[i%ch] += delta * (x - s.Mean)

		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}

	for c := range out {
		s := &out[c]
		s.Variance = m2[c] / float64(s.Count)
		s.StdDev = math.Sqrt(s.Variance)
		s.Range = s.Max - s.Min
	}
	return out
}

// Histogram counts the occurrences of each intensity in channel c.
func Histogram(b *buffer.Buffer, c int) [256]int {
	var h [256]int
	if b == nil || c < 0 || c >= b.Channels() {
		return h
	}
	pix := b.Pix()
	for i := c; i < len(pix); i += b.Channels() {
		h[pix[i]]++
	}
	return h
}

// MSE returns the mean squared difference between a and b.
func MSE(a, b *buffer.Buffer) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilBuffer
	}
	if err := buffer.CheckSameShape(a, b); err != nil {
		return 0, err
	}

	var sum float64
	bp := b.Pix()
	for i, v := range a.Pix() {
		d := float64(v) - float64(bp[i])
		sum += d * d
	}
	return sum / float64(a.Len()), nil
}

// PSNR returns the peak signal-to-noise ratio of a against b in decibels:
// 10·log10(255²/MSE). Identical buffers give +Inf.
func PSNR(a, b *buffer.Buffer) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(core.MaxIntensity*core.MaxIntensity/mse), nil
}
