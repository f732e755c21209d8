package primitive

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// Surfaces of revolution around Y use U = 1 - theta/2π on their sides so
// the texture is not mirrored when seen from outside, and planar U = x+0.5,
// V = 0.5-z on their caps.

func sideU(theta float32) float32 {
	return 1 - theta/(2*math32.Pi)
}

func ring(r, y, theta float32) math.Vec3 {
	sin, cos := math32.Sincos(theta)
	return math.V3(r*cos, y, r*sin)
}

func capUV(p math.Vec3) math.Vec2 {
	return math.V2(p.X+0.5, 0.5-p.Z)
}

// revolvedTangent returns the closed-form direction of increasing U: +X on
// caps and the circumferential direction on sides.
func revolvedTangent(isCap func(c mesh.Corner) bool) mesh.AnalyticBasis {
	return func(c mesh.Corner) math.Vec3 {
		if isCap(c) {
			return math.V3(1, 0, 0)
		}
		theta := (1 - c.UV.X) * 2 * math32.Pi
		sin, cos := math32.Sincos(theta)
		return math.V3(sin, 0, -cos)
	}
}

// addCap emits one wedge of a flat disc at height y, split into rings
// concentric rings. The innermost ring is a single triangle.
func addCap(b *mesh.Builder, y float32, up bool, rings int, theta1, theta2 float32) {
	normal := math.V3(0, -1, 0)
	if up {
		normal = math.V3(0, 1, 0)
		theta1, theta2 = theta2, theta1
	}
	corner := func(p math.Vec3) mesh.Corner {
		return mesh.C(p, normal, capUV(p))
	}

	step := radius / float32(rings)
	for i := 0; i < rings; i++ {
		r1 := step * float32(i)
		r2 := step * float32(i+1)
		o1 := corner(ring(r2, y, theta1))
		o2 := corner(ring(r2, y, theta2))
		if i == 0 {
			b.AddTriangle(corner(math.V3(0, y, 0)), o1, o2)
			continue
		}
		i1 := corner(ring(r1, y, theta1))
		i2 := corner(ring(r1, y, theta2))
		b.AddTile(i1, i2, o1, o2)
	}
}
