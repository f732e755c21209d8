// Package shadow computes the light-space matrices for directional shadow
// mapping.
package shadow

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// DefaultResolution is the default shadow map resolution.
const DefaultResolution = 2048

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// FromBounds converts mesh bounds.
func FromBounds(b mesh.Bounds) AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

// Center returns the center point of the AABB.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB) Radius() float32 {
	return b.Max.Sub(b.Min).Scale(0.5).Length()
}

// Extend returns the smallest box holding both b and o.
func (b AABB) Extend(o AABB) AABB {
	return AABB{
		Min: math.V3(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: math.V3(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

// Transform returns the box around b's eight corners moved by m.
func (b AABB) Transform(m math.Mat4) AABB {
	var out AABB
	for i := range 8 {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		p := m.TransformPoint(c)
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out = out.Extend(AABB{Min: p, Max: p})
	}
	return out
}

// lightUp picks an up vector that is not parallel to the light.
func lightUp(toLight math.Vec3) math.Vec3 {
	if math32.Abs(toLight.Y) > 0.99 {
		return math.V3(0, 0, 1)
	}
	return math.V3(0, 1, 0)
}

// DirectionalLightMatrix computes the light view-projection for a shadow
// map covering the whole scene. toLight is the unit direction towards the
// light, the opposite of the direction it shines.
func DirectionalLightMatrix(toLight math.Vec3, sceneBounds AABB) math.Mat4 {
	center := sceneBounds.Center()
	radius := sceneBounds.Radius()

	// far enough out to see the whole scene
	lightDistance := radius * 2
	lightPos := center.Add(toLight.Scale(lightDistance))

	view := math.LookAt(lightPos, center, lightUp(toLight))

	// padding avoids edge artifacts
	padding := radius * 0.1
	halfSize := radius + padding
	near := float32(0.1)
	far := lightDistance + radius + padding

	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far)
	return proj.Mul(view)
}

// TightLightMatrix computes a light matrix that follows the camera, covering
// only the area around it. The radius grows with camera distance but never
// exceeds the scene.
func TightLightMatrix(toLight math.Vec3, sceneBounds AABB, cameraPos math.Vec3, cameraDistance float32) math.Mat4 {
	center := sceneBounds.Center()
	focusCenter := math.V3(cameraPos.X, center.Y, cameraPos.Z)

	shadowRadius := max(cameraDistance*1.5, 10)
	shadowRadius = min(shadowRadius, sceneBounds.Radius())

	sceneHeight := sceneBounds.Max.Y - sceneBounds.Min.Y
	lightDistance := shadowRadius + sceneHeight
	lightPos := focusCenter.Add(toLight.Scale(lightDistance))

	view := math.LookAt(lightPos, focusCenter, lightUp(toLight))

	padding := shadowRadius * 0.1
	halfSize := shadowRadius + padding
	near := float32(0.1)
	far := lightDistance + sceneHeight + padding

	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far)
	return proj.Mul(view)
}
