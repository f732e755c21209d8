// Package picking casts rays from screen space into the scene.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
)

// Ray is a half line; Direction is unit length.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts pixel coordinates to a world-space ray through the
// camera described by viewProj.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, viewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	inv := viewProj.Inverse()
	near := inv.TransformPoint(math.V3(ndcX, ndcY, -1))
	far := inv.TransformPoint(math.V3(ndcX, ndcY, 1))

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	if math32.Abs(r.Direction.Y) < 0.001 {
		return 0, 0, false // Parallel
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, false // Behind the origin
	}

	p := r.At(t)
	return p.X, p.Z, true
}

// IntersectBounds runs the slab test against an axis-aligned box. It returns
// the entry distance, or the exit distance when the ray starts inside.
func (r Ray) IntersectBounds(box mesh.Bounds) (t float32, hit bool) {
	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	for axis := range 3 {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// Nearest returns the index of the closest box the ray hits, or -1.
func (r Ray) Nearest(boxes []mesh.Bounds) (index int, t float32) {
	index = -1
	for i, b := range boxes {
		d, hit := r.IntersectBounds(b)
		if hit && (index < 0 || d < t) {
			index, t = i, d
		}
	}
	return index, t
}
