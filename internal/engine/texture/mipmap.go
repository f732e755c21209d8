package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Mipmaps returns img followed by successively halved copies down to 1×1.
// Odd sizes round down, never below 1.
func Mipmaps(img *image.RGBA) []*image.RGBA {
	if img == nil {
		return nil
	}
	chain := []*image.RGBA{img}
	cur := img
	for cur.Rect.Dx() > 1 || cur.Rect.Dy() > 1 {
		w := max(cur.Rect.Dx()/2, 1)
		h := max(cur.Rect.Dy()/2, 1)
		next := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.BiLinear.Scale(next, next.Rect, cur, cur.Rect, draw.Src, nil)
		chain = append(chain, next)
		cur = next
	}
	return chain
}
