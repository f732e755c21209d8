package camera

import (
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/pkg/math"
)

// DefaultHeightAngle is used when the scene leaves the field of view unset.
const DefaultHeightAngle = 0.785398 // 45 degrees

// SceneCamera is the camera described by a scene file.
type SceneCamera struct {
	Position    math.Vec3
	Look        math.Vec3
	Up          math.Vec3
	HeightAngle float32 // radians
}

// FromScene builds a SceneCamera from parsed camera data.
func FromScene(d scene.CameraData) SceneCamera {
	c := SceneCamera{
		Position:    d.Pos.XYZ(),
		Look:        d.Look.XYZ(),
		Up:          d.Up.XYZ(),
		HeightAngle: d.HeightAngle,
	}
	if c.Look.LengthSqr() == 0 {
		c.Look = math.V3(0, 0, -1)
	}
	if c.Up.LengthSqr() == 0 {
		c.Up = math.V3(0, 1, 0)
	}
	if c.HeightAngle <= 0 {
		c.HeightAngle = DefaultHeightAngle
	}
	return c
}

// ViewMatrix looks from Position along Look.
func (c SceneCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Look.Normalize()), c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio and clip planes.
func (c SceneCamera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Perspective(c.HeightAngle, aspect, near, far)
}

// ViewProjection combines projection and view.
func (c SceneCamera) ViewProjection(aspect, near, far float32) math.Mat4 {
	return c.ProjectionMatrix(aspect, near, far).Mul(c.ViewMatrix())
}
