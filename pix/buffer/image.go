package buffer

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts a decoded image into a buffer with 1 (gray), 3 (RGB)
// or 4 (RGBA, non-premultiplied) channels.
func FromImage(img image.Image, channels int) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidShape)
	}
	bounds := img.Bounds()
	rect := image.Rect(0, 0, bounds.Dx(), bounds.Dy())

	switch channels {
	case 1:
		gray := image.NewGray(rect)
		draw.Draw(gray, rect, img, bounds.Min, draw.Src)
		b, err := New(rect.Dy(), rect.Dx(), 1)
		if err != nil {
			return nil, err
		}
		for y := range rect.Dy() {
			copy(b.Row(y), gray.Pix[y*gray.Stride:y*gray.Stride+rect.Dx()])
		}
		return b, nil
	case 3, 4:
		nrgba := image.NewNRGBA(rect)
		draw.Draw(nrgba, rect, img, bounds.Min, draw.Src)
		b, err := New(rect.Dy(), rect.Dx(), channels)
		if err != nil {
			return nil, err
		}
		for y := range rect.Dy() {
			src := nrgba.Pix[y*nrgba.Stride:]
			dst := b.Row(y)
			for x := range rect.Dx() {
				copy(dst[x*channels:(x+1)*channels], src[x*4:x*4+channels])
			}
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %d channels cannot be converted from an image", ErrInvalidShape, channels)
	}
}

// Image returns b as an *image.Gray (1 channel) or *image.NRGBA (3 or 4
// channels, opaque when there is no alpha channel).
func (b *Buffer) Image() (image.Image, error) {
	rect := image.Rect(0, 0, b.shape.Width, b.shape.Height)
	ch := b.shape.Channels

	switch ch {
	case 1:
		gray := image.NewGray(rect)
		for y := range b.shape.Height {
			copy(gray.Pix[y*gray.Stride:], b.Row(y))
		}
		return gray, nil
	case 3, 4:
		nrgba := image.NewNRGBA(rect)
		for y := range b.shape.Height {
			src := b.Row(y)
			dst := nrgba.Pix[y*nrgba.Stride:]
			for x := range b.shape.Width {
				copy(dst[x*4:x*4+ch], src[x*ch:(x+1)*ch])
				if ch == 3 {
					dst[x*4+3] = 0xff
				}
			}
		}
		return nrgba, nil
	default:
		return nil, fmt.Errorf("%w: %d channels have no image representation", ErrInvalidShape, ch)
	}
}
