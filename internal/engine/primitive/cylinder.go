package primitive

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

var cylinderTangent = revolvedTangent(func(c mesh.Corner) bool {
	return math32.Abs(c.Normal.Y) > 0.5
})

// GenerateCylinder builds a cylinder of radius 0.5 and height 1. stacks sets
// side subdivisions and cap rings, wedges the number of angular slices.
func GenerateCylinder(stacks, wedges int) *mesh.Buffer {
	stacks = max(stacks, MinLinear)
	wedges = max(wedges, MinAngular)
	b := mesh.NewBuilder(cylinderTangent, wedges*(stacks*3-1)*6)

	corner := func(y, theta float32) mesh.Corner {
		p := ring(radius, y, theta)
		return mesh.C(p, math.V3(p.X, 0, p.Z).Normalize(), math.V2(sideU(theta), 0.5-y))
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
			b.AddTile(corner(y2, theta2), corner(y2, theta1), corner(y1, theta2), corner(y1, theta1))
		}
		addCap(b, 0.5, true, stacks, theta1, theta2)
	}
	return b.Buffer()
}
