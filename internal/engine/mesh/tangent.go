package mesh

import (
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// degenerateDet is the smallest UV-gradient determinant that still yields a
// usable tangent.
const degenerateDet = 1e-8

// TangentFromUV solves the UV gradient of a triangle for the direction of
// increasing U. ok is false when the UV mapping is degenerate.
func TangentFromUV(p0, p1, p2 math.Vec3, uv0, uv1, uv2 math.Vec2) (tangent math.Vec3, ok bool) {
	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)
	d1 := uv1.Sub(uv0)
	d2 := uv2.Sub(uv0)

	det := d1.X*d2.Y - d2.X*d1.Y
	if math32.Abs(det) < degenerateDet {
		return math.Vec3{}, false
	}
	f := 1 / det
	t := edge1.Scale(d2.Y).Sub(edge2.Scale(d1.Y)).Scale(f)
	if !t.IsFinite() || t.LengthSqr() == 0 {
		return math.Vec3{}, false
	}
	return t.Normalize(), true
}

// FaceNormal returns the unit normal of triangle (a, b, c), flipped if needed
// so it lies in the same hemisphere as fallback. Degenerate triangles return
// fallback.
func FaceNormal(a, b, c, fallback math.Vec3) math.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if !n.IsFinite() || n.LengthSqr() < 1e-20 {
		return fallback.Normalize()
	}
	n = n.Normalize()
	if n.Dot(fallback) < 0 {
		n = n.Neg()
	}
	return n
}

// Basis builds the tangent and bitangent of an orthonormal frame around the
// unit normal n. The tangent is raw projected onto the tangent plane; if
// raw is (nearly) parallel to n an arbitrary perpendicular is used instead.
// The bitangent is n × t, so dot(t × b, n) is always +1.
func Basis(n, raw math.Vec3) (t, b math.Vec3) {
	t = raw.Sub(n.Scale(n.Dot(raw)))
	if !t.IsFinite() || t.LengthSqr() <= 1e-6*raw.LengthSqr() {
		t = Perpendicular(n)
	}
	t = t.Normalize()
	// second pass removes rounding left by the first projection
	t = t.Sub(n.Scale(n.Dot(t))).Normalize()
	b = n.Cross(t).Normalize()
	return t, b
}

// Perpendicular returns some unit vector orthogonal to n.
func Perpendicular(n math.Vec3) math.Vec3 {
	axis := math.V3(1, 0, 0)
	if math32.Abs(n.X) >= 0.9 {
		axis = math.V3(0, 1, 0)
	}
	return axis.Sub(n.Scale(n.Dot(axis))).Normalize()
}

// Corner is a triangle corner before its tangent frame is resolved.
type Corner struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// C is shorthand for a Corner.
func C(position, normal math.Vec3, uv math.Vec2) Corner {
	return Corner{Position: position, Normal: normal, UV: uv}
}

// TangentBasis supplies raw tangent directions for the corners of a
// triangle. Builder projects them into an orthonormal frame with Basis.
type TangentBasis interface {
	Tangents(a, b, c Corner) [3]math.Vec3
}

// DerivedBasis uses the triangle's UV gradient for all three corners.
type DerivedBasis struct{}

// Tangents implements TangentBasis.
func (DerivedBasis) Tangents(a, b, c Corner) [3]math.Vec3 {
	t, ok := TangentFromUV(a.Position, b.Position, c.Position, a.UV, b.UV, c.UV)
	if !ok {
		t = math.Vec3{}
	}
	return [3]math.Vec3{t, t, t}
}

// AnalyticBasis computes a closed-form tangent for each corner, for surfaces
// whose direction of increasing U is known exactly.
type AnalyticBasis func(c Corner) math.Vec3

// Tangents implements TangentBasis.
func (f AnalyticBasis) Tangents(a, b, c Corner) [3]math.Vec3 {
	return [3]math.Vec3{f(a), f(b), f(c)}
}
