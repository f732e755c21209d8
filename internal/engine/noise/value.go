package noise

import "github.com/chewxy/math32"

// LatticeFunc yields a value for an integer lattice point.
type LatticeFunc func(xi, yi, seed int) float32

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func interpolate(x, y float32, seed int, cell LatticeFunc) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	xi, yi := int(fx), int(fy)
	u := smoothstep(x - fx)
	v := smoothstep(y - fy)

	n00 := cell(xi, yi, seed)
	n10 := cell(xi+1, yi, seed)
	n01 := cell(xi, yi+1, seed)
	n11 := cell(xi+1, yi+1, seed)

	nx0 := n00*(1-u) + n10*u
	nx1 := n01*(1-u) + n11*u
	return nx0*(1-v) + nx1*v
}

func hashCell(xi, yi, seed int) float32 {
	return Hash(float32(xi), float32(yi), seed)
}

// Value is smoothstep-eased bilinear value noise over Hash. It is the crust
// noise used by the organic meshes.
func Value(x, y float32, seed int) float32 {
	return interpolate(x, y, seed, hashCell)
}

// Smooth is value noise evaluated directly on the integer Lattice, without
// the hundredths quantization of Hash. The procedural textures use it.
func Smooth(x, y float32, seed int) float32 {
	return interpolate(x, y, seed, Lattice)
}

func fractal(x, y float32, seed, octaves int, base func(x, y float32, seed int) float32) float32 {
	if octaves < 1 {
		return 0
	}
	var total, maxValue float32
	amplitude, frequency := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		total += base(x*frequency, y*frequency, seed+i*100) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return total / maxValue
}

// Fractal sums octaves of Value at doubling frequency and halving amplitude,
// normalized by the total amplitude. Octave i is seeded with seed+i*100.
func Fractal(x, y float32, seed, octaves int) float32 {
	return fractal(x, y, seed, octaves, Value)
}

// SmoothFractal is Fractal over Smooth.
func SmoothFractal(x, y float32, seed, octaves int) float32 {
	return fractal(x, y, seed, octaves, Smooth)
}
