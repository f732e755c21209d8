package primitive

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

func spherePoint(phi, theta float32) math.Vec3 {
	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	return math.V3(radius*sinPhi*cosTheta, radius*cosPhi, -radius*sinPhi*sinTheta)
}

// sphereTangent is the longitude direction recovered from U = theta/2π. It
// stays well defined at the poles.
var sphereTangent = mesh.AnalyticBasis(func(c mesh.Corner) math.Vec3 {
	sinTheta, cosTheta := math32.Sincos(c.UV.X * 2 * math32.Pi)
	return math.V3(-sinTheta, 0, -cosTheta)
})

// GenerateSphere builds a UV sphere of radius 0.5 with bands latitude bands
// and wedges longitude wedges. UVs are equirectangular: U follows longitude,
// V runs from the north pole (0) to the south pole (1).
func GenerateSphere(bands, wedges int) *mesh.Buffer {
	bands = max(bands, MinBands)
	wedges = max(wedges, MinAngular)
	b := mesh.NewBuilder(sphereTangent, wedges*(bands-1)*6)

	corner := func(phi, theta float32) mesh.Corner {
		p := spherePoint(phi, theta)
		uv := math.V2(theta/(2*math32.Pi), phi/math32.Pi)
		return mesh.C(p, p.Normalize(), uv)
	}

	phiStep := math32.Pi / float32(bands)
	thetaStep := 2 * math32.Pi / float32(wedges)
	for j := 0; j < wedges; j++ {
		theta1 := float32(j) * thetaStep
		theta2 := float32(j+1) * thetaStep
		for i := 0; i < bands; i++ {
			phi1 := float32(i) * phiStep
			phi2 := float32(i+1) * phiStep
			tl := corner(phi1, theta1)
			tr := corner(phi1, theta2)
			bl := corner(phi2, theta1)
			br := corner(phi2, theta2)
			// pole bands collapse one edge of the tile
			switch i {
			case 0:
				b.AddTriangle(tl, bl, br)
			case bands - 1:
				b.AddTriangle(tl, br, tr)
			default:
				b.AddTile(tl, tr, bl, br)
			}
		}
	}
	return b.Buffer()
}
