package primitive

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

var coneTangent = revolvedTangent(func(c mesh.Corner) bool {
	return c.Normal.Y < -0.5
})

// coneNormal is the gradient of the implicit cone x²+z² = ((1-2y)/2)²,
// with the apex pointing straight up.
func coneNormal(p math.Vec3) math.Vec3 {
	if p.X*p.X+p.Z*p.Z < 1e-8 && p.Y > 0.49 {
		return math.V3(0, 1, 0)
	}
	return math.V3(2*p.X, 1-2*p.Y, 2*p.Z).Normalize()
}

// GenerateCone builds a cone of base radius 0.5 with its apex at y=0.5.
// stacks sets slope subdivisions and bottom cap rings, wedges the number of
// angular slices.
func GenerateCone(stacks, wedges int) *mesh.Buffer {
	stacks = max(stacks, MinLinear)
	wedges = max(wedges, MinAngular)
	b := mesh.NewBuilder(coneTangent, wedges*(stacks*2-1)*6)

	corner := func(r, y, theta float32) mesh.Corner {
		p := ring(r, y, theta)
		return mesh.C(p, coneNormal(p), math.V2(sideU(theta), 0.5-y))
	}

	thetaStep := 2 * math32.Pi / float32(wedges)
	yStep := 1 / float32(stacks)
	for j := 0; j < wedges; j++ {
		theta1 := float32(j) * thetaStep
		theta2 := float32(j+1) * thetaStep

		addCap(b, -0.5, false, stacks, theta1, theta2)

		for i := 0; i < stacks; i++ {
			y1 := -0.5 + float32(i)*yStep
			y2 := -0.5 + float32(i+1)*yStep
			r1 := radius * (0.5 - y1)
			r2 := radius * (0.5 - y2)
			bl := corner(r1, y1, theta2)
			br := corner(r1, y1, theta1)
			if i == stacks-1 {
				b.AddTriangle(corner(0, 0.5, theta2), bl, br)
				continue
			}
			b.AddTile(corner(r2, y2, theta2), corner(r2, y2, theta1), bl, br)
		}
	}
	return b.Buffer()
}
