// Package texture generates the procedural bread texture and loads, saves
// and mipmaps material images.
package texture

import (
	"image"

	"github.com/Faultbox/hearth/internal/engine/noise"
)

// rgb is a working color in [0, 1] per channel.
type rgb struct{ r, g, b float32 }

func (c rgb) mix(o rgb, t float32) rgb {
	return rgb{c.r*(1-t) + o.r*t, c.g*(1-t) + o.g*t, c.b*(1-t) + o.b*t}
}

func (c rgb) mul(r, g, b float32) rgb {
	return rgb{c.r * r, c.g * g, c.b * b}
}

var (
	crumbColor  = rgb{0.98, 0.94, 0.82}
	pocketColor = rgb{0.82, 0.76, 0.60}
)

// airPocket is one scale of crumb holes. Noise above threshold darkens the
// crumb, shaped by power and capped at strength.
type airPocket struct {
	freq      float32
	seed      int
	threshold float32
	power     int
	strength  float32
}

var airPockets = []airPocket{
	{freq: 0.012, seed: 42, threshold: 0.35, power: 3, strength: 0.7},
	{freq: 0.028, seed: 137, threshold: 0.38, power: 2, strength: 0.55},
	{freq: 0.06, seed: 293, threshold: 0.4, power: 2, strength: 0.45},
	{freq: 0.12, seed: 419, threshold: 0.42, power: 1, strength: 0.35},
	{freq: 0.25, seed: 587, threshold: 0.45, power: 1, strength: 0.25},
}

func (a airPocket) darkness(x, y float32, seedOffset int) float32 {
	n := noise.Smooth(x*a.freq, y*a.freq, a.seed+seedOffset)
	if n <= a.threshold {
		return 0
	}
	t := (n - a.threshold) / (1 - a.threshold)
	v := t
	for range a.power - 1 {
		v *= t
	}
	return v * a.strength
}

// Bread renders a size×size crumb texture. seed 1 gives the stock texture;
// other seeds shift every noise layer.
func Bread(size, seed int) *image.RGBA {
	size = max(size, 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	off := (seed - 1) * 2003

	for py := range size {
		for px := range size {
			c := breadPixel(px, py, off)
			i := img.PixOffset(px, py)
			img.Pix[i+0] = toByte(c.r)
			img.Pix[i+1] = toByte(c.g)
			img.Pix[i+2] = toByte(c.b)
			img.Pix[i+3] = 255
		}
	}
	return img
}

func breadPixel(px, py, off int) rgb {
	x, y := float32(px), float32(py)

	v := noise.SmoothFractal(x*0.006, y*0.006, 1+off, 4) - 0.5
	c := rgb{crumbColor.r + v*0.08, crumbColor.g + v*0.06, crumbColor.b + v*0.05}

	var dark float32
	for _, a := range airPockets {
		dark = max(dark, a.darkness(x, y, off))
	}
	c = c.mix(pocketColor, dark)

	grain := noise.Smooth(x*0.5, y*0.5, 701+off)*0.4 +
		noise.Smooth(x*0.8, y*0.8, 811+off)*0.35 +
		(noise.Lattice(px, py, 919+off)*0.5+0.5)*0.25
	c = c.mul(0.92+grain*0.16, 0.92+grain*0.16, 0.90+grain*0.20)

	// speckles: dark anywhere, bright only outside pockets
	if noise.Lattice(px, py, 1009+off) > 0.92 {
		c = c.mul(0.75, 0.70, 0.65)
	}
	if noise.Lattice(px, py, 1013+off) > 0.94 && dark < 0.2 {
		c = c.mul(1.15, 1.12, 1.08)
		c = rgb{min(c.r, 1), min(c.g, 1), min(c.b, 1)}
	}
	return c
}

func toByte(v float32) uint8 {
	return uint8(min(255, max(0, v*255)))
}
