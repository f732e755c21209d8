// Package debug provides debug visualization geometry.
package debug

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
)

// WireframeVertexCount is the number of endpoints in a box wireframe (12 edges × 2).
const WireframeVertexCount = 24

// DefaultPadding is the default padding for selection boxes.
const DefaultPadding = 0.05

// boxEdges indexes corners by bit: 1 = max X, 2 = max Y, 4 = max Z.
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top face
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical edges
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// Wireframe returns line-list endpoints outlining b grown by padding on
// every side.
func Wireframe(b mesh.Bounds, padding float32) []math.Vec3 {
	pad := math.V3(padding, padding, padding)
	lo := b.Min.Sub(pad)
	hi := b.Max.Add(pad)

	corner := func(i int) math.Vec3 {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		return c
	}

	out := make([]math.Vec3, 0, WireframeVertexCount)
	for _, e := range boxEdges {
		out = append(out, corner(e[0]), corner(e[1]))
	}
	return out
}

// Floats flattens line endpoints to x, y, z triples.
func Floats(points []math.Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}
