package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
)

func TestWireframe(t *testing.T) {
	b := mesh.Bounds{Min: math.V3(-1, 0, -2), Max: math.V3(1, 3, 2)}
	lines := Wireframe(b, 0)
	assert.Len(t, lines, WireframeVertexCount)

	for i := 0; i < len(lines); i += 2 {
		a, c := lines[i], lines[i+1]
		// every edge runs along exactly one axis
		diff := 0
		for _, d := range []float32{a.X - c.X, a.Y - c.Y, a.Z - c.Z} {
			if d != 0 {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "edge %d", i/2)
	}

	for _, p := range lines {
		assert.Contains(t, []float32{-1, 1}, p.X)
		assert.Contains(t, []float32{0, 3}, p.Y)
		assert.Contains(t, []float32{-2, 2}, p.Z)
	}
}

func TestWireframePadding(t *testing.T) {
	b := mesh.Bounds{Min: math.V3(0, 0, 0), Max: math.V3(1, 1, 1)}
	lines := Wireframe(b, 0.5)
	for _, p := range lines {
		assert.Contains(t, []float32{-0.5, 1.5}, p.X)
	}
	assert.Len(t, Floats(lines), WireframeVertexCount*3)
}
