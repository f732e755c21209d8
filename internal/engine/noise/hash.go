// Package noise provides the deterministic noise functions used for surface
// detail, terrain height and procedural textures. Every function is a pure
// function of its arguments.
package noise

import "github.com/chewxy/math32"

// Lattice returns a pseudo-random value in [-1, 1] for an integer lattice
// point. Arithmetic wraps as 32-bit signed integers.
func Lattice(xi, yi, seed int) float32 {
	n := int32(xi) + int32(yi)*57 + int32(seed)*131
	n = (n << 13) ^ n
	m := n*(n*n*15731+789221) + 1376312589
	return 1 - float32(m&0x7fffffff)/1073741824
}

// Hash quantizes x and y to hundredths and hashes the resulting lattice
// point. It is not spatially continuous.
func Hash(x, y float32, seed int) float32 {
	return Lattice(int(math32.Floor(x*100)), int(math32.Floor(y*100)), seed)
}
