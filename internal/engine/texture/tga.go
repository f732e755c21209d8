package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	tgaUncompressed = 2
	tgaRLE          = 10
)

const tgaHeaderSize = 18

var (
	// ErrTruncated is returned when image data ends early.
	ErrTruncated = errors.New("texture: data truncated")
	// ErrUnsupported is returned for image variants the decoders do not handle.
	ErrUnsupported = errors.New("texture: unsupported format")
)

// tgaReader walks true-color TGA pixel data. Rows are stored bottom to top
// unless bit 5 of the descriptor is set.
type tgaReader struct {
	img         *image.RGBA
	data        []byte
	pos         int
	bpp         int
	topToBottom bool
}

func (r *tgaReader) pixel() (color.RGBA, bool) {
	if r.pos+r.bpp > len(r.data) {
		return color.RGBA{}, false
	}
	p := r.data[r.pos : r.pos+r.bpp]
	r.pos += r.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

func (r *tgaReader) set(i int, c color.RGBA) {
	w, h := r.img.Rect.Dx(), r.img.Rect.Dy()
	x, y := i%w, i/w
	if !r.topToBottom {
		y = h - 1 - y
	}
	r.img.SetRGBA(x, y, c)
}

// DecodeTGA decodes an uncompressed or RLE true-color TGA image with 24 or
// 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga header: %w", ErrTruncated)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bits := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga color map: %w", ErrUnsupported)
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, fmt.Errorf("tga type %d: %w", imageType, ErrUnsupported)
	}
	if bits != 24 && bits != 32 {
		return nil, fmt.Errorf("tga depth %d: %w", bits, ErrUnsupported)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga id field: %w", ErrTruncated)
	}

	r := &tgaReader{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		data:        data[offset:],
		bpp:         bits / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	count := width * height
	if imageType == tgaUncompressed {
		if len(r.data) < count*r.bpp {
			return nil, fmt.Errorf("tga pixels: %w", ErrTruncated)
		}
		for i := range count {
			c, _ := r.pixel()
			r.set(i, c)
		}
		return r.img, nil
	}

	// RLE packets: the high bit selects a repeated pixel or a raw run
	for i := 0; i < count && r.pos < len(r.data); {
		packet := r.data[r.pos]
		r.pos++
		run := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				break
			}
			for ; run > 0 && i < count; run-- {
				r.set(i, c)
				i++
			}
			continue
		}
		for ; run > 0 && i < count; run-- {
			c, ok := r.pixel()
			if !ok {
				break
			}
			r.set(i, c)
			i++
		}
	}
	return r.img, nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return rgba
}
