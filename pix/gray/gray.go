// Package gray reduces color buffers to a single intensity channel.
package gray

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

// Errors returned by the converters.
var (
	ErrUnsupportedChannelCount = errors.New("gray: unsupported channel count")
	ErrUnknownMode             = errors.New("gray: unknown mode")
	ErrNilBuffer               = errors.New("gray: nil buffer")
)

// Mode selects how channels are reduced.
type Mode int

const (
	// Standard is the luma sum 0.299·R + 0.587·G + 0.114·B.
	Standard Mode = iota

	// Mean is (R + G + B) / 3.
	Mean

	// RedOnly, GreenOnly and BlueOnly project a single channel unchanged.
	RedOnly
	GreenOnly
	BlueOnly
)

// Luma weights for Standard.
const (
	WeightR = 0.299
	WeightG = 0.587
	WeightB = 0.114
)

var modeNames = map[Mode]string{
	Standard:  "standard",
	Mean:      "mean",
	RedOnly:   "red",
	GreenOnly: "green",
	BlueOnly:  "blue",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ToGrayscale returns a one-channel buffer. Weighted modes need at least
// three channels; projections need the selected channel. Channels past the
// third (alpha) are ignored.
func ToGrayscale(src *buffer.Buffer, mode Mode, opts ...core.Option) (*buffer.Buffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}

	reduce, need, err := reducer(mode)
	if err != nil {
		return nil, err
	}
	if src.Channels() < need {
		return nil, fmt.Errorf("%w: %s needs %d channels, got %d",
			ErrUnsupportedChannelCount, mode, need, src.Channels())
	}

	out, err := buffer.New(src.Height(), src.Width(), 1)
	if err != nil {
		return nil, err
	}

	ch := src.Channels()
	cfg := core.ApplyOptions(opts...)
	cfg.ForRows(src.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			in, dst := src.Row(y), out.Row(y)
			for x := range dst {
				dst[x] = reduce(in[x*ch : (x+1)*ch])
			}
		}
	})
	return out, nil
}

// reducer returns the per-pixel reduction and the channel count it reads.
func reducer(mode Mode) (func(px []uint8) uint8, int, error) {
	switch mode {
	case Standard:
		return func(px []uint8) uint8 {
			return core.Quantize(WeightR*float64(px[0]) + WeightG*float64(px[1]) + WeightB*float64(px[2]))
		}, 3, nil
	case Mean:
		return func(px []uint8) uint8 {
			return core.Quantize(float64(int(px[0])+int(px[1])+int(px[2])) / 3)
		}, 3, nil
	case RedOnly, GreenOnly, BlueOnly:
		c := int(mode - RedOnly)
		return func(px []uint8) uint8 { return px[c] }, c + 1, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// ToRGB replicates a one-channel buffer into three identical channels.
func ToRGB(src *buffer.Buffer) (*buffer.Buffer, error) {
	if src == nil {
		return nil, ErrNilBuffer
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: ToRGB needs 1 channel, got %d", ErrUnsupportedChannelCount, src.Channels())
	}

	pix := make([]uint8, 0, src.Len()*3)
	for _, v := range src.Pix() {
		pix = append(pix, v, v, v)
	}
	return buffer.FromPix(src.Height(), src.Width(), 3, pix)
}
