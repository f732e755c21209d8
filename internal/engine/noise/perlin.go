package noise

import "github.com/chewxy/math32"

// perm is Ken Perlin's reference permutation, doubled to avoid index wrapping.
var perm = func() [512]int {
	base := [256]int{
		151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142,
		8, 99, 37, 240, 21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117,
		35, 11, 32, 57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71,
		134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41,
		55, 46, 245, 40, 244, 102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89,
		18, 169, 200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226,
		250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182,
		189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43,
		172, 9, 129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97,
		228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239,
		107, 49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
		138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	}
	var p [512]int
	for i := range p {
		p[i] = base[i&255]
	}
	return p
}()

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

func grad(hash int, x, z float32) float32 {
	h := hash & 15
	u := z
	if h < 8 {
		u = x
	}
	var v float32
	switch {
	case h < 4:
		v = z
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Perlin evaluates 2D gradient noise. The result is zero on every integer
// lattice point.
func Perlin(x, z float32) float32 {
	fx, fz := math32.Floor(x), math32.Floor(z)
	X := int(fx) & 255
	Z := int(fz) & 255
	x -= fx
	z -= fz
	u := fade(x)
	v := fade(z)

	a := perm[X] + Z
	b := perm[X+1] + Z
	return lerp(v,
		lerp(u, grad(perm[a], x, z), grad(perm[b], x-1, z)),
		lerp(u, grad(perm[a+1], x, z-1), grad(perm[b+1], x-1, z-1)),
	)
}

// PerlinFractal sums octaves of Perlin, scaling amplitude by persistence and
// frequency by lacunarity each octave, normalized by the total amplitude.
func PerlinFractal(x, z float32, octaves int, persistence, lacunarity float32) float32 {
	if octaves < 1 {
		return 0
	}
	var total, maxValue float32
	amplitude, frequency := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		total += Perlin(x*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}
