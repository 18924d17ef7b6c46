package window

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pix/pix/border"
	"github.com/cwbudde/algo-pix/pix/buffer"
	"github.com/cwbudde/algo-pix/pix/core"
)

// Errors returned by the engine.
var (
	ErrInvalidRadius = errors.New("window: invalid radius")
	ErrNilBuffer     = errors.New("window: nil buffer")
	ErrNilReducer    = errors.New("window: nil reducer")
)

// Reducer folds a neighborhood into one value per channel, written to dst
// (len(dst) == nb.Channels). dst is zeroed before every call.
type Reducer func(nb *Neighborhood, dst []float64)

// Neighborhood holds the samples around one output pixel. Samples are laid
// out as [(dy*Size+dx)*Channels + c] with dy, dx in [0, Size).
type Neighborhood struct {
	Radius   int
	Size     int
	Channels int
	Y, X     int // center coordinate in the source image

	values []uint8
}

func newNeighborhood(radius, channels int) *Neighborhood {
	size := 2*radius + 1
	return &Neighborhood{
		Radius:   radius,
		Size:     size,
		Channels: channels,
		values:   make([]uint8, size*size*channels),
	}
}

// At returns the sample of channel c at window offset (dy, dx), where (0, 0)
// is the top-left corner and (Radius, Radius) the center.
func (nb *Neighborhood) At(dy, dx, c int) uint8 {
	return nb.values[(dy*nb.Size+dx)*nb.Channels+c]
}

// Values returns every sample of the window, channels interleaved.
func (nb *Neighborhood) Values() []uint8 {
	return nb.values
}

// Channel appends the Size*Size samples of channel c to dst[:0] and returns it.
func (nb *Neighborhood) Channel(c int, dst []int32) []int32 {
	dst = dst[:0]
	for i := c; i < len(nb.values); i += nb.Channels {
		dst = append(dst, int32(nb.values[i]))
	}
	return dst
}

// gather fills nb with the window centered on (y, x).
func (nb *Neighborhood) gather(src *buffer.Buffer, policy border.Policy, y, x int) {
	h, w, ch := src.Height(), src.Width(), src.Channels()
	pix := src.Pix()
	nb.Y, nb.X = y, x

	i := 0
	for dy := -nb.Radius; dy <= nb.Radius; dy++ {
		sy, oky := policy.Index(y+dy, h)
		for dx := -nb.Radius; dx <= nb.Radius; dx++ {
			sx, okx := policy.Index(x+dx, w)
			if !oky || !okx {
				for c := range ch {
					nb.values[i+c] = 0
				}
				i += ch
				continue
			}
			off := (sy*w + sx) * ch
			copy(nb.values[i:i+ch], pix[off:off+ch])
			i += ch
		}
	}
}

// Apply runs reduce over every pixel of src and returns the quantized result.
func Apply(src *buffer.Buffer, radius int, policy border.Policy, reduce Reducer, opts ...core.Option) (*buffer.Buffer, error) {
	field, err := ApplyField(src, radius, policy, reduce, opts...)
	if err != nil {
		return nil, err
	}
	return field.Quantize(), nil
}

// ApplyField runs reduce over every pixel of src and returns the raw results.
func ApplyField(src *buffer.Buffer, radius int, policy border.Policy, reduce Reducer, opts ...core.Option) (*buffer.Field, error) {
	if err := validate(src, radius, policy, reduce); err != nil {
		return nil, err
	}

	out, err := buffer.NewField(src.Shape())
	if err != nil {
		return nil, err
	}

	cfg := core.ApplyOptions(opts...)
	ch := src.Channels()

	cfg.ForRows(src.Height(), func(start, end int) {
		nb := newNeighborhood(radius, ch)
		for y := start; y < end; y++ {
			row := out.Row(y)
			for x := range src.Width() {
				nb.gather(src, policy, y, x)
				dst := row[x*ch : (x+1)*ch]
				clear(dst)
				reduce(nb, dst)
			}
		}
	})

	return out, nil
}

func validate(src *buffer.Buffer, radius int, policy border.Policy, reduce Reducer) error {
	if src == nil {
		return ErrNilBuffer
	}
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	if reduce == nil {
		return ErrNilReducer
	}
	return policy.Validate()
}
