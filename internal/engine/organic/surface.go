// Package organic generates the procedural bread meshes (baguette and loaf)
// and scatters instances of them across a scene.
package organic

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// surfacePoint is a displaced vertex with the outward normal of the
// undisplaced base surface.
type surfacePoint struct {
	pos     math.Vec3
	outward math.Vec3
	uv      math.Vec2
}

// addFacet emits one flat-shaded triangle facing the base surface's
// outward side. A facet folded over by displacement has its corners swapped
// so the winding keeps agreeing with the stored normal.
func addFacet(b *mesh.Builder, p0, p1, p2 surfacePoint) {
	hint := p0.outward.Add(p1.outward).Add(p2.outward)
	if p1.pos.Sub(p0.pos).Cross(p2.pos.Sub(p0.pos)).Dot(hint) < 0 {
		p1, p2 = p2, p1
	}
	n := mesh.FaceNormal(p0.pos, p1.pos, p2.pos, hint)
	b.AddTriangle(
		mesh.C(p0.pos, n, p0.uv),
		mesh.C(p1.pos, n, p1.uv),
		mesh.C(p2.pos, n, p2.uv),
	)
}

// addTile emits a quad with the fixed (tl, bl, br) (tl, br, tr) split.
func addTile(b *mesh.Builder, tl, tr, bl, br surfacePoint) {
	addFacet(b, tl, bl, br)
	addFacet(b, tl, br, tr)
}

// cosineFalloff maps a distance inside width to a depth profile that is
// 1 at the center and 0 at the edge.
func cosineFalloff(dist, width float32) float32 {
	if dist >= width {
		return 0
	}
	return (math32.Cos(dist/width*math32.Pi) + 1) * 0.5
}
